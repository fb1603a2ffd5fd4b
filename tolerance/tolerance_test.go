// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tolerance

import (
	"testing"

	"github.com/gomlx/nnconform/driver"
	"github.com/gomlx/nnconform/testmodel"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func float32OutputModel(expected ...float32) *testmodel.Model {
	return &testmodel.Model{
		Operands: []testmodel.Operand{
			{Type: driver.TensorFloat32, Dimensions: []uint32{uint32(len(expected))},
				Lifetime: driver.SubgraphOutput, Data: testmodel.Float32Bytes(expected...)},
		},
		OutputIndexes: []uint32{0},
	}
}

func TestCompareFloat32(t *testing.T) {
	comparator := New()
	model := float32OutputModel(1, 2, 3, 4)

	require.NoError(t, comparator.Compare(model, [][]byte{testmodel.Float32Bytes(1, 2, 3, 4)}))
	// Drift within abs+rel tolerance passes.
	require.NoError(t, comparator.Compare(model, [][]byte{testmodel.Float32Bytes(1.0000099, 2, 3, 4)}))

	err := comparator.Compare(model, [][]byte{testmodel.Float32Bytes(1.1, 2, 3, 4)})
	require.Error(t, err)
	require.Contains(t, err.Error(), "output 0 element 0")
}

func TestCompareRelaxedWidensTolerance(t *testing.T) {
	comparator := New()
	model := float32OutputModel(1, 2, 3, 4)
	drifted := [][]byte{testmodel.Float32Bytes(1.003, 2, 3, 4)}
	require.Error(t, comparator.Compare(model, drifted))

	model.IsRelaxed = true
	require.NoError(t, comparator.Compare(model, drifted))
}

func TestCompareQuant8Slack(t *testing.T) {
	comparator := New()
	model := &testmodel.Model{
		Operands: []testmodel.Operand{
			{Type: driver.TensorQuant8Asymm, Dimensions: []uint32{3}, Scale: 1, ZeroPoint: 128,
				Lifetime: driver.SubgraphOutput, Data: []byte{100, 128, 200}},
		},
		OutputIndexes: []uint32{0},
	}
	require.NoError(t, comparator.Compare(model, [][]byte{{101, 127, 200}}))
	require.Error(t, comparator.Compare(model, [][]byte{{102, 128, 200}}))
}

func TestCompareFloat16(t *testing.T) {
	comparator := New()
	encode := func(values ...float32) []byte {
		data := make([]byte, 2*len(values))
		for i, v := range values {
			bits := float16.Fromfloat32(v).Bits()
			data[2*i] = byte(bits)
			data[2*i+1] = byte(bits >> 8)
		}
		return data
	}
	model := &testmodel.Model{
		Operands: []testmodel.Operand{
			{Type: driver.TensorFloat16, Dimensions: []uint32{2},
				Lifetime: driver.SubgraphOutput, Data: encode(1, -2)},
		},
		OutputIndexes: []uint32{0},
	}
	require.NoError(t, comparator.Compare(model, [][]byte{encode(1.001, -2)}))
	require.Error(t, comparator.Compare(model, [][]byte{encode(1.5, -2)}))
}

func TestCompareInt32Exact(t *testing.T) {
	comparator := New()
	model := &testmodel.Model{
		Operands: []testmodel.Operand{
			{Type: driver.TensorInt32, Dimensions: []uint32{2},
				Lifetime: driver.SubgraphOutput, Data: []byte{1, 0, 0, 0, 2, 0, 0, 0}},
		},
		OutputIndexes: []uint32{0},
	}
	require.NoError(t, comparator.Compare(model, [][]byte{{1, 0, 0, 0, 2, 0, 0, 0}}))
	require.Error(t, comparator.Compare(model, [][]byte{{1, 0, 0, 0, 3, 0, 0, 0}}))
}

func TestCompareBufferCountAndSize(t *testing.T) {
	comparator := New()
	model := float32OutputModel(1, 2)
	require.Error(t, comparator.Compare(model, nil))
	require.Error(t, comparator.Compare(model, [][]byte{{1, 2, 3}}))
}
