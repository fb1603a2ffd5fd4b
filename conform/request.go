// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/nnconform/driver"
	"github.com/gomlx/nnconform/testmodel"
)

// Request pool layout: all inputs live in pool 0, all outputs in pool 1.
// The model's constant-reference pool is separate and owned by the wire model.
const (
	inputPoolIndex  = 0
	outputPoolIndex = 1
)

// BuildRequest creates a submittable request for the model: one pool holding
// every input value at aligned offsets, and one pool sized to hold every
// expected output. Input data is copied in; output space is left zeroed.
//
// The request is built fresh per evaluation and owned by it. Allocation
// failures are environment faults and abort the test.
func BuildRequest(model *testmodel.Model, alloc driver.Allocator) *driver.Request {
	inputs := make([]driver.RequestArgument, len(model.InputIndexes))
	var inputSize uint32
	for i := range model.InputIndexes {
		op := model.Input(i)
		inputs[i] = driver.RequestArgument{
			Location: driver.DataLocation{PoolIndex: inputPoolIndex, Offset: inputSize, Length: op.ByteSize()},
		}
		inputSize += op.AlignedByteSize()
	}

	outputs := make([]driver.RequestArgument, len(model.OutputIndexes))
	var outputSize uint32
	for i := range model.OutputIndexes {
		op := model.Output(i)
		outputs[i] = driver.RequestArgument{
			Location: driver.DataLocation{PoolIndex: outputPoolIndex, Offset: outputSize, Length: op.ByteSize()},
		}
		outputSize += op.AlignedByteSize()
	}

	inputPool := allocatePool(alloc, inputSize, "input")
	outputPool := allocatePool(alloc, outputSize, "output")

	mapped := inputPool.Map()
	if inputSize > 0 && mapped == nil {
		envFaultf("mapping input pool failed")
	}
	for i := range model.InputIndexes {
		copy(mapped[inputs[i].Location.Offset:], model.Input(i).Data)
	}

	return &driver.Request{
		Inputs:  inputs,
		Outputs: outputs,
		Pools:   []driver.Pool{inputPool, outputPool},
	}
}

func allocatePool(alloc driver.Allocator, size uint32, what string) driver.Pool {
	pool := alloc.Allocate(size)
	if size > 0 && pool.Size() == 0 {
		envFaultf("allocating %d bytes %s pool failed", size, what)
	}
	return pool
}

// ShrinkOutput decreases the addressed output's byte length by one, turning
// the request into an undersized-buffer probe. The output's length must be
// greater than one; callers must skip the scenario otherwise.
func ShrinkOutput(request *driver.Request, outputIndex int) {
	length := &request.Outputs[outputIndex].Location.Length
	if *length <= 1 {
		exceptions.Panicf("conform.ShrinkOutput: output %d has length %d, need > 1", outputIndex, *length)
	}
	*length--
}

// BlankOutputDimensions sets every dimension of every declared output operand
// of the wire model to 0, signaling "shape unknown" to the driver. Used only
// for the dynamic-shape test kind, before the model is prepared.
func BlankOutputDimensions(model *driver.Model) {
	for _, idx := range model.OutputIndexes {
		dims := model.Operands[idx].Dimensions
		for i := range dims {
			dims[i] = 0
		}
	}
}

// OutputBuffers retrieves the output byte ranges of an executed request, one
// slice per declared output, aliasing the request's output pool.
func OutputBuffers(request *driver.Request) [][]byte {
	mapped := request.Pools[outputPoolIndex].Map()
	if mapped == nil {
		envFaultf("mapping output pool failed")
	}
	buffers := make([][]byte, len(request.Outputs))
	for i, out := range request.Outputs {
		loc := out.Location
		buffers[i] = mapped[loc.Offset : loc.Offset+loc.Length]
	}
	return buffers
}
