// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import (
	"github.com/dustin/go-humanize"
	"github.com/gomlx/nnconform/driver"
	"github.com/gomlx/nnconform/testmodel"
	"k8s.io/klog/v2"
)

// Translate converts an abstract test model into the driver wire model.
//
// Constant data is partitioned into two storage classes: ConstantCopy
// operands are inlined into Model.OperandValues, ConstantReference operands
// go into a single shared memory pool allocated from alloc. Each constant
// block is placed at an offset rounded up to driver.BufferAlignment, so mixed
// width constants remain individually aligned. Operations are copied with
// indices unchanged.
//
// Translate is deterministic: the same model yields byte-identical wire
// content. Pool allocation or mapping failures are harness-environment
// faults and abort the test via panic, they are never reported as a driver
// result.
func Translate(model *testmodel.Model, alloc driver.Allocator) *driver.Model {
	operands := make([]driver.Operand, len(model.Operands))
	var constCopySize, constRefSize uint32
	for i := range model.Operands {
		op := &model.Operands[i]

		var loc driver.DataLocation
		switch op.Lifetime {
		case driver.ConstantCopy:
			loc = driver.DataLocation{PoolIndex: 0, Offset: constCopySize, Length: op.ByteSize()}
			constCopySize += op.AlignedByteSize()
		case driver.ConstantReference:
			loc = driver.DataLocation{PoolIndex: 0, Offset: constRefSize, Length: op.ByteSize()}
			constRefSize += op.AlignedByteSize()
		}

		var channelQuant *driver.SymmPerChannelQuantParams
		if op.Type == driver.TensorQuant8SymmPerChannel {
			channelQuant = &driver.SymmPerChannelQuantParams{
				Scales:     append([]float32(nil), op.ChannelQuant.Scales...),
				ChannelDim: op.ChannelQuant.ChannelDim,
			}
		}

		operands[i] = driver.Operand{
			Type:              op.Type,
			Dimensions:        append([]uint32(nil), op.Dimensions...),
			NumberOfConsumers: op.NumberOfConsumers,
			Scale:             op.Scale,
			ZeroPoint:         op.ZeroPoint,
			Lifetime:          op.Lifetime,
			Location:          loc,
			ChannelQuant:      channelQuant,
		}
	}

	operations := make([]driver.Operation, len(model.Operations))
	for i, op := range model.Operations {
		operations[i] = driver.Operation{
			Type:    op.Type,
			Inputs:  append([]uint32(nil), op.Inputs...),
			Outputs: append([]uint32(nil), op.Outputs...),
		}
	}

	// Inline constant copies.
	operandValues := make([]byte, constCopySize)
	for i := range model.Operands {
		op := &model.Operands[i]
		if op.Lifetime == driver.ConstantCopy {
			copy(operandValues[operands[i].Location.Offset:], op.Data)
		}
	}

	// Shared memory for constant references, at most one pool per model.
	var pools []driver.Pool
	if constRefSize > 0 {
		pool := alloc.Allocate(constRefSize)
		if pool.Size() == 0 {
			envFaultf("allocating %s constant pool failed", humanize.Bytes(uint64(constRefSize)))
		}
		mapped := pool.Map()
		if mapped == nil {
			envFaultf("mapping %s constant pool failed", humanize.Bytes(uint64(constRefSize)))
		}
		for i := range model.Operands {
			op := &model.Operands[i]
			if op.Lifetime == driver.ConstantReference {
				copy(mapped[operands[i].Location.Offset:], op.Data)
			}
		}
		pools = append(pools, pool)
		klog.V(2).Infof("translated model with %s constant pool, %s inline constants",
			humanize.Bytes(uint64(constRefSize)), humanize.Bytes(uint64(constCopySize)))
	}

	return &driver.Model{
		Operands:              operands,
		Operations:            operations,
		InputIndexes:          append([]uint32(nil), model.InputIndexes...),
		OutputIndexes:         append([]uint32(nil), model.OutputIndexes...),
		OperandValues:         operandValues,
		Pools:                 pools,
		RelaxFloat32ToFloat16: model.IsRelaxed,
	}
}
