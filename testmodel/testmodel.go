// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package testmodel defines the abstract, driver-independent description of a
// conformance test case: a small computation graph with constant data, input
// values and golden outputs, plus a registry of named models that makes up
// the test corpus.
//
// Models are immutable once registered. The harness (package conform)
// references them and never mutates them; it translates them into the wire
// form of package driver per evaluation.
package testmodel

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/nnconform/driver"
)

// Operand is a typed data slot of an abstract model.
//
// Data carries the operand's bytes: constant values for ConstantCopy and
// ConstantReference lifetimes, the values to feed for SubgraphInput, and the
// golden (expected) values for SubgraphOutput. Computed (temporary) operands
// carry no data at model-build time.
type Operand struct {
	Type              driver.OperandType
	Dimensions        []uint32
	NumberOfConsumers uint32
	Scale             float32
	ZeroPoint         int32
	Lifetime          driver.OperandLifetime
	ChannelQuant      *driver.SymmPerChannelQuantParams
	Data              []byte
}

// ByteSize returns the size of the operand's data.
func (op *Operand) ByteSize() uint32 {
	return uint32(len(op.Data))
}

// AlignedByteSize returns the operand's data size rounded up to the buffer
// alignment boundary, the amount of pool space the operand occupies.
func (op *Operand) AlignedByteSize() uint32 {
	return driver.AlignedSize(op.ByteSize())
}

// Operation applies an opcode to operand slots addressed by index.
type Operation struct {
	Type    driver.OperationType
	Inputs  []uint32
	Outputs []uint32
}

// Model is one abstract conformance test case.
type Model struct {
	Operands      []Operand
	Operations    []Operation
	InputIndexes  []uint32
	OutputIndexes []uint32

	// IsRelaxed allows drivers to compute float32 with float16 precision.
	IsRelaxed bool

	// ExpectFailure marks corpus entries describing invalid models; the
	// general and dynamic-shape test kinds filter them out.
	ExpectFailure bool
}

// Input returns the i-th input operand.
func (m *Model) Input(i int) *Operand {
	return &m.Operands[m.InputIndexes[i]]
}

// Output returns the i-th output operand.
func (m *Model) Output(i int) *Operand {
	return &m.Operands[m.OutputIndexes[i]]
}

// HasQuant8CoupledOperands reports whether the model uses the unsigned
// asymmetric quant8 encoding, i.e. whether a numerically equivalent
// signed-encoding twin can be derived with ConvertQuant8AsymmOperandsToSigned.
func (m *Model) HasQuant8CoupledOperands() bool {
	for i := range m.Operands {
		if m.Operands[i].Type == driver.TensorQuant8Asymm {
			return true
		}
	}
	return false
}

// Validate panics if operand indices referenced by operations or the
// input/output lists fall outside the operand table, or if a constant operand
// carries no data.
func (m *Model) Validate() {
	numOperands := uint32(len(m.Operands))
	check := func(indices []uint32, what string) {
		for _, idx := range indices {
			if idx >= numOperands {
				exceptions.Panicf("testmodel: %s index %d out of range (%d operands)", what, idx, numOperands)
			}
		}
	}
	check(m.InputIndexes, "model input")
	check(m.OutputIndexes, "model output")
	for _, op := range m.Operations {
		check(op.Inputs, "operation input")
		check(op.Outputs, "operation output")
	}
	for i := range m.Operands {
		op := &m.Operands[i]
		isConst := op.Lifetime == driver.ConstantCopy || op.Lifetime == driver.ConstantReference
		if isConst && len(op.Data) == 0 {
			exceptions.Panicf("testmodel: constant operand %d carries no data", i)
		}
	}
}

// ConvertQuant8AsymmOperandsToSigned returns a deep copy of the model with
// every unsigned asymmetric quant8 operand re-encoded as signed asymmetric
// quant8: the zero point shifts down by 128 and every data byte flips its
// sign bit. The two models are numerically equivalent.
func ConvertQuant8AsymmOperandsToSigned(model *Model) *Model {
	converted := model.Clone()
	for i := range converted.Operands {
		op := &converted.Operands[i]
		if op.Type != driver.TensorQuant8Asymm {
			continue
		}
		op.Type = driver.TensorQuant8AsymmSigned
		op.ZeroPoint -= 128
		for j := range op.Data {
			op.Data[j] ^= 0x80
		}
	}
	return converted
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	c := &Model{
		Operands:      make([]Operand, len(m.Operands)),
		Operations:    make([]Operation, len(m.Operations)),
		InputIndexes:  append([]uint32(nil), m.InputIndexes...),
		OutputIndexes: append([]uint32(nil), m.OutputIndexes...),
		IsRelaxed:     m.IsRelaxed,
		ExpectFailure: m.ExpectFailure,
	}
	for i, op := range m.Operands {
		op.Dimensions = append([]uint32(nil), op.Dimensions...)
		op.Data = append([]byte(nil), op.Data...)
		if op.ChannelQuant != nil {
			op.ChannelQuant = &driver.SymmPerChannelQuantParams{
				Scales:     append([]float32(nil), op.ChannelQuant.Scales...),
				ChannelDim: op.ChannelQuant.ChannelDim,
			}
		}
		c.Operands[i] = op
	}
	for i, op := range m.Operations {
		op.Inputs = append([]uint32(nil), op.Inputs...)
		op.Outputs = append([]uint32(nil), op.Outputs...)
		c.Operations[i] = op
	}
	return c
}
