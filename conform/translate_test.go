// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import (
	"sort"
	"testing"

	"github.com/gomlx/nnconform/driver"
	"github.com/gomlx/nnconform/testmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingAllocator always reports allocation failure.
type failingAllocator struct{}

func (failingAllocator) Allocate(size uint32) driver.Pool {
	return driver.HeapAllocator{}.Allocate(0)
}

func TestTranslateIdempotence(t *testing.T) {
	for _, named := range testmodel.Models(nil) {
		t.Run(named.Name, func(t *testing.T) {
			alloc := driver.HeapAllocator{}
			first := Translate(named.Model, alloc)
			second := Translate(named.Model, alloc)

			require.Equal(t, first.OperandValues, second.OperandValues)
			require.Equal(t, first.InputIndexes, second.InputIndexes)
			require.Equal(t, first.OutputIndexes, second.OutputIndexes)
			require.Equal(t, first.Operations, second.Operations)
			require.Len(t, second.Operands, len(first.Operands))
			for i := range first.Operands {
				require.Equal(t, first.Operands[i].Location, second.Operands[i].Location)
			}
			require.Len(t, second.Pools, len(first.Pools))
			for i := range first.Pools {
				require.Equal(t, first.Pools[i].Map(), second.Pools[i].Map())
			}
		})
	}
}

func TestTranslateAlignmentAndNoOverlap(t *testing.T) {
	type span struct{ offset, length uint32 }
	for _, named := range testmodel.Models(nil) {
		t.Run(named.Name, func(t *testing.T) {
			wire := Translate(named.Model, driver.HeapAllocator{})
			spans := map[driver.OperandLifetime][]span{}
			for i := range wire.Operands {
				op := &wire.Operands[i]
				if op.Lifetime != driver.ConstantCopy && op.Lifetime != driver.ConstantReference {
					continue
				}
				assert.Zero(t, op.Location.Offset%driver.BufferAlignment,
					"operand %d offset %d not aligned", i, op.Location.Offset)
				spans[op.Lifetime] = append(spans[op.Lifetime], span{op.Location.Offset, op.Location.Length})
			}
			for lifetime, ss := range spans {
				sort.Slice(ss, func(i, j int) bool { return ss[i].offset < ss[j].offset })
				for i := 1; i < len(ss); i++ {
					assert.GreaterOrEqual(t, ss[i].offset, ss[i-1].offset+ss[i-1].length,
						"%s spans overlap", lifetime)
				}
			}
		})
	}
}

func TestTranslateStorageClasses(t *testing.T) {
	// No constant references: no pool gets allocated.
	wire := Translate(testmodel.Get("add_float32"), driver.HeapAllocator{})
	require.Empty(t, wire.Pools)
	require.Equal(t, testmodel.Float32Bytes(0.5, -1.5, 2, -4), wire.OperandValues[:16])

	// One constant reference: exactly one pool holding its bytes.
	wire = Translate(testmodel.Get("mul_relu_float32"), driver.HeapAllocator{})
	require.Len(t, wire.Pools, 1)
	require.Equal(t, testmodel.Float32Bytes(2, 2, 2, 2), wire.Pools[0].Map()[:16])
	require.Empty(t, wire.OperandValues)
}

func TestTranslateChannelQuant(t *testing.T) {
	model := &testmodel.Model{
		Operands: []testmodel.Operand{
			{Type: driver.TensorQuant8SymmPerChannel, Dimensions: []uint32{2, 2},
				Lifetime: driver.ConstantCopy, Data: []byte{1, 2, 3, 4},
				ChannelQuant: &driver.SymmPerChannelQuantParams{Scales: []float32{0.5, 0.25}, ChannelDim: 0}},
			{Type: driver.TensorQuant8Asymm, Dimensions: []uint32{2, 2}, Scale: 0.5,
				Lifetime: driver.SubgraphInput, Data: []byte{0, 0, 0, 0}},
		},
		InputIndexes: []uint32{1},
	}
	wire := Translate(model, driver.HeapAllocator{})
	require.NotNil(t, wire.Operands[0].ChannelQuant)
	require.Equal(t, []float32{0.5, 0.25}, wire.Operands[0].ChannelQuant.Scales)
	require.Nil(t, wire.Operands[1].ChannelQuant)
}

func TestTranslatePoolFailureIsEnvironmentFault(t *testing.T) {
	model := testmodel.Get("mul_relu_float32") // has a constant reference
	defer func() {
		p := recover()
		require.NotNil(t, p, "expected a panic")
		require.IsType(t, &EnvironmentFault{}, p)
	}()
	Translate(model, failingAllocator{})
}
