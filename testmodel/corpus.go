// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package testmodel

import (
	"encoding/binary"
	"math"

	"github.com/gomlx/nnconform/driver"
)

// Float32Bytes encodes values in the little-endian wire layout operand data
// uses.
func Float32Bytes(values ...float32) []byte {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[4*i:], math.Float32bits(v))
	}
	return data
}

// Float32Values decodes operand data back into float32 values.
func Float32Values(data []byte) []float32 {
	values := make([]float32, len(data)/4)
	for i := range values {
		values[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return values
}

// Built-in corpus entries. They are intentionally tiny: the harness probes
// protocol and shape handling, not operator coverage.
func init() {
	Register("add_float32", &Model{
		Operands: []Operand{
			{Type: driver.TensorFloat32, Dimensions: []uint32{4}, NumberOfConsumers: 1,
				Lifetime: driver.SubgraphInput, Data: Float32Bytes(1, 2, 3, 4)},
			{Type: driver.TensorFloat32, Dimensions: []uint32{4}, NumberOfConsumers: 1,
				Lifetime: driver.ConstantCopy, Data: Float32Bytes(0.5, -1.5, 2, -4)},
			{Type: driver.TensorFloat32, Dimensions: []uint32{4}, NumberOfConsumers: 0,
				Lifetime: driver.SubgraphOutput, Data: Float32Bytes(1.5, 0.5, 5, 0)},
		},
		Operations: []Operation{
			{Type: driver.OpAdd, Inputs: []uint32{0, 1}, Outputs: []uint32{2}},
		},
		InputIndexes:  []uint32{0},
		OutputIndexes: []uint32{2},
	})

	Register("add_relaxed_float32", &Model{
		Operands: []Operand{
			{Type: driver.TensorFloat32, Dimensions: []uint32{4}, NumberOfConsumers: 1,
				Lifetime: driver.SubgraphInput, Data: Float32Bytes(1, 2, 3, 4)},
			{Type: driver.TensorFloat32, Dimensions: []uint32{4}, NumberOfConsumers: 1,
				Lifetime: driver.ConstantCopy, Data: Float32Bytes(0.5, -1.5, 2, -4)},
			{Type: driver.TensorFloat32, Dimensions: []uint32{4}, NumberOfConsumers: 0,
				Lifetime: driver.SubgraphOutput, Data: Float32Bytes(1.5, 0.5, 5, 0)},
		},
		Operations: []Operation{
			{Type: driver.OpAdd, Inputs: []uint32{0, 1}, Outputs: []uint32{2}},
		},
		InputIndexes:  []uint32{0},
		OutputIndexes: []uint32{2},
		IsRelaxed:     true,
	})

	// Exercises the constant-reference pool and an intermediate operand.
	Register("mul_relu_float32", &Model{
		Operands: []Operand{
			{Type: driver.TensorFloat32, Dimensions: []uint32{2, 2}, NumberOfConsumers: 1,
				Lifetime: driver.SubgraphInput, Data: Float32Bytes(1, -2, 3, -4)},
			{Type: driver.TensorFloat32, Dimensions: []uint32{2, 2}, NumberOfConsumers: 1,
				Lifetime: driver.ConstantReference, Data: Float32Bytes(2, 2, 2, 2)},
			{Type: driver.TensorFloat32, Dimensions: []uint32{2, 2}, NumberOfConsumers: 1,
				Lifetime: driver.TemporaryVariable},
			{Type: driver.TensorFloat32, Dimensions: []uint32{2, 2}, NumberOfConsumers: 0,
				Lifetime: driver.SubgraphOutput, Data: Float32Bytes(2, 0, 6, 0)},
		},
		Operations: []Operation{
			{Type: driver.OpMul, Inputs: []uint32{0, 1}, Outputs: []uint32{2}},
			{Type: driver.OpRelu, Inputs: []uint32{2}, Outputs: []uint32{3}},
		},
		InputIndexes:  []uint32{0},
		OutputIndexes: []uint32{3},
	})

	Register("floor_float32", &Model{
		Operands: []Operand{
			{Type: driver.TensorFloat32, Dimensions: []uint32{4}, NumberOfConsumers: 1,
				Lifetime: driver.SubgraphInput, Data: Float32Bytes(1.5, -0.2, 3, -2.7)},
			{Type: driver.TensorFloat32, Dimensions: []uint32{4}, NumberOfConsumers: 0,
				Lifetime: driver.SubgraphOutput, Data: Float32Bytes(1, -1, 3, -3)},
		},
		Operations: []Operation{
			{Type: driver.OpFloor, Inputs: []uint32{0}, Outputs: []uint32{1}},
		},
		InputIndexes:  []uint32{0},
		OutputIndexes: []uint32{1},
	})

	// Single-operation unsigned quant8 model; eligible for quantization
	// coupling (real value = (q - 128) * 1.0).
	Register("add_quant8", &Model{
		Operands: []Operand{
			{Type: driver.TensorQuant8Asymm, Dimensions: []uint32{4}, NumberOfConsumers: 1,
				Scale: 1.0, ZeroPoint: 128,
				Lifetime: driver.SubgraphInput, Data: []byte{120, 128, 130, 140}},
			{Type: driver.TensorQuant8Asymm, Dimensions: []uint32{4}, NumberOfConsumers: 1,
				Scale: 1.0, ZeroPoint: 128,
				Lifetime: driver.ConstantCopy, Data: []byte{129, 130, 126, 128}},
			{Type: driver.TensorQuant8Asymm, Dimensions: []uint32{4}, NumberOfConsumers: 0,
				Scale: 1.0, ZeroPoint: 128,
				Lifetime: driver.SubgraphOutput, Data: []byte{121, 130, 128, 140}},
		},
		Operations: []Operation{
			{Type: driver.OpAdd, Inputs: []uint32{0, 1}, Outputs: []uint32{2}},
		},
		InputIndexes:  []uint32{0},
		OutputIndexes: []uint32{2},
	})
}
