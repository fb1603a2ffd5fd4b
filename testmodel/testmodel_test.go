// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package testmodel

import (
	"testing"

	"github.com/gomlx/nnconform/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFilters(t *testing.T) {
	all := Models(nil)
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].Name, all[i].Name, "corpus must be ordered by name")
	}

	coupling := Models(Quant8Coupling)
	require.Len(t, coupling, 1)
	require.Equal(t, "add_quant8", coupling[0].Name)

	runnable := Models(NotExpectFailure)
	require.Len(t, runnable, len(all))
}

func TestGet(t *testing.T) {
	require.NotNil(t, Get("add_float32"))
	require.Nil(t, Get("no_such_model"))
}

func TestHasQuant8CoupledOperands(t *testing.T) {
	assert.True(t, Get("add_quant8").HasQuant8CoupledOperands())
	assert.False(t, Get("add_float32").HasQuant8CoupledOperands())
}

func TestConvertQuant8AsymmOperandsToSigned(t *testing.T) {
	model := Get("add_quant8")
	signed := ConvertQuant8AsymmOperandsToSigned(model)

	for i := range signed.Operands {
		op := &signed.Operands[i]
		orig := &model.Operands[i]
		require.Equal(t, driver.TensorQuant8AsymmSigned, op.Type)
		require.Equal(t, orig.ZeroPoint-128, op.ZeroPoint)
		require.Equal(t, orig.Scale, op.Scale)
		require.Len(t, op.Data, len(orig.Data))
		for j := range op.Data {
			require.Equal(t, orig.Data[j]^0x80, op.Data[j])
		}
	}

	// The original is untouched.
	require.Equal(t, driver.TensorQuant8Asymm, model.Operands[0].Type)
	require.Equal(t, int32(128), model.Operands[0].ZeroPoint)

	// The two encodings represent the same real values.
	for i := range model.Operands {
		orig, conv := &model.Operands[i], &signed.Operands[i]
		for j := range orig.Data {
			origReal := (float64(orig.Data[j]) - float64(orig.ZeroPoint)) * float64(orig.Scale)
			convReal := (float64(int8(conv.Data[j])) - float64(conv.ZeroPoint)) * float64(conv.Scale)
			require.Equal(t, origReal, convReal)
		}
	}
}

func TestValidatePanics(t *testing.T) {
	require.Panics(t, func() {
		(&Model{
			Operands:      []Operand{{Type: driver.TensorFloat32, Lifetime: driver.SubgraphInput}},
			InputIndexes:  []uint32{3},
			OutputIndexes: []uint32{0},
		}).Validate()
	})
	require.Panics(t, func() {
		(&Model{
			Operands: []Operand{
				{Type: driver.TensorFloat32, Lifetime: driver.ConstantCopy}, // no data
			},
		}).Validate()
	})
}

func TestFloat32Bytes(t *testing.T) {
	data := Float32Bytes(1.5, -2, 0)
	require.Len(t, data, 12)
	require.Equal(t, []float32{1.5, -2, 0}, Float32Values(data))
}
