// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import (
	"testing"

	"github.com/gomlx/nnconform/driver"
	"github.com/gomlx/nnconform/testmodel"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestLayout(t *testing.T) {
	model := testmodel.Get("add_float32")
	request := BuildRequest(model, driver.HeapAllocator{})

	require.Len(t, request.Inputs, 1)
	require.Len(t, request.Outputs, 1)
	require.Len(t, request.Pools, 2)

	in := request.Inputs[0].Location
	require.Equal(t, uint32(inputPoolIndex), in.PoolIndex)
	require.Zero(t, in.Offset)
	require.Equal(t, uint32(16), in.Length)

	out := request.Outputs[0].Location
	require.Equal(t, uint32(outputPoolIndex), out.PoolIndex)
	require.Zero(t, out.Offset)
	require.Equal(t, uint32(16), out.Length)

	// Input values were copied in; output space starts zeroed.
	require.Equal(t, model.Input(0).Data, request.Pools[inputPoolIndex].Map()[:16])
	for _, b := range request.Pools[outputPoolIndex].Map() {
		require.Zero(t, b)
	}
}

func TestBuildRequestAlignsArguments(t *testing.T) {
	// Two quant8 inputs of 3 bytes each must land on separate aligned blocks.
	model := &testmodel.Model{
		Operands: []testmodel.Operand{
			{Type: driver.TensorQuant8Asymm, Dimensions: []uint32{3}, Scale: 1,
				Lifetime: driver.SubgraphInput, Data: []byte{1, 2, 3}},
			{Type: driver.TensorQuant8Asymm, Dimensions: []uint32{3}, Scale: 1,
				Lifetime: driver.SubgraphInput, Data: []byte{4, 5, 6}},
		},
		InputIndexes: []uint32{0, 1},
	}
	request := BuildRequest(model, driver.HeapAllocator{})
	require.Equal(t, uint32(0), request.Inputs[0].Location.Offset)
	require.Equal(t, uint32(driver.BufferAlignment), request.Inputs[1].Location.Offset)
	mapped := request.Pools[inputPoolIndex].Map()
	require.Equal(t, []byte{1, 2, 3}, mapped[0:3])
	require.Equal(t, []byte{4, 5, 6}, mapped[driver.BufferAlignment:driver.BufferAlignment+3])
}

func TestShrinkOutput(t *testing.T) {
	model := testmodel.Get("add_float32")
	request := BuildRequest(model, driver.HeapAllocator{})
	ShrinkOutput(request, 0)
	require.Equal(t, uint32(15), request.Outputs[0].Location.Length)

	// Shrinking is only legal while the length stays above one byte.
	request.Outputs[0].Location.Length = 1
	require.Panics(t, func() { ShrinkOutput(request, 0) })
}

func TestBlankOutputDimensions(t *testing.T) {
	wire := Translate(testmodel.Get("mul_relu_float32"), driver.HeapAllocator{})
	BlankOutputDimensions(wire)
	for _, idx := range wire.OutputIndexes {
		for _, dim := range wire.Operands[idx].Dimensions {
			require.Zero(t, dim)
		}
	}
	// Non-output operands keep their dimensions.
	require.Equal(t, []uint32{2, 2}, wire.Operands[wire.InputIndexes[0]].Dimensions)
}

func TestOutputBuffers(t *testing.T) {
	model := testmodel.Get("add_float32")
	request := BuildRequest(model, driver.HeapAllocator{})
	copy(request.Pools[outputPoolIndex].Map(), testmodel.Float32Bytes(9, 8, 7, 6))
	buffers := OutputBuffers(request)
	require.Len(t, buffers, 1)
	require.Equal(t, []float32{9, 8, 7, 6}, testmodel.Float32Values(buffers[0]))
}
