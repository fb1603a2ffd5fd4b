// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package driver

import (
	"math"

	"github.com/gomlx/gopjrt/dtypes"
)

//go:generate go tool enumer -type=OperandType -output=gen_operandtype_enumer.go types.go
//go:generate go tool enumer -type=OperandLifetime -output=gen_operandlifetime_enumer.go types.go
//go:generate go tool enumer -type=ErrorStatus -trimprefix=Status -output=gen_errorstatus_enumer.go types.go

// OperandType classifies the element type and quantization scheme of an operand.
//
// The scalar variants describe single values (activation flags and the like);
// the tensor variants describe multidimensional data. Quantized tensor types
// carry their scale/zero-point on the Operand itself.
type OperandType int32

const (
	Float32 OperandType = iota
	Int32
	Uint32
	TensorFloat32
	TensorInt32
	TensorQuant8Asymm
	Bool
	TensorQuant16Symm
	TensorFloat16
	TensorBool8
	Float16
	TensorQuant8SymmPerChannel
	TensorQuant16Asymm
	TensorQuant8Symm
	TensorQuant8AsymmSigned
)

// StorageDType returns the dtype used to store one element of this operand type.
// Quantized types map to their integer storage type.
func (t OperandType) StorageDType() dtypes.DType {
	switch t {
	case Float32, TensorFloat32:
		return dtypes.Float32
	case Int32, TensorInt32:
		return dtypes.Int32
	case Uint32:
		return dtypes.Uint32
	case Bool, TensorBool8:
		return dtypes.Bool
	case Float16, TensorFloat16:
		return dtypes.Float16
	case TensorQuant8Asymm:
		return dtypes.Uint8
	case TensorQuant8Symm, TensorQuant8SymmPerChannel, TensorQuant8AsymmSigned:
		return dtypes.Int8
	case TensorQuant16Symm:
		return dtypes.Int16
	case TensorQuant16Asymm:
		return dtypes.Uint16
	}
	return dtypes.InvalidDType
}

// ElementSize returns the storage size in bytes of one element.
func (t OperandType) ElementSize() uint32 {
	return uint32(t.StorageDType().Memory())
}

// IsScalar reports whether the type describes a single value rather than a tensor.
func (t OperandType) IsScalar() bool {
	switch t {
	case Float32, Int32, Uint32, Bool, Float16:
		return true
	}
	return false
}

// IsQuantized reports whether elements are stored in a quantized encoding.
func (t OperandType) IsQuantized() bool {
	switch t {
	case TensorQuant8Asymm, TensorQuant8Symm, TensorQuant8SymmPerChannel,
		TensorQuant8AsymmSigned, TensorQuant16Symm, TensorQuant16Asymm:
		return true
	}
	return false
}

// OperandLifetime tags how an operand's value comes into existence.
type OperandLifetime int32

const (
	// TemporaryVariable is an intermediate value produced and consumed inside the graph.
	TemporaryVariable OperandLifetime = iota
	// SubgraphInput is fed by the caller through the request.
	SubgraphInput
	// SubgraphOutput is written by the driver through the request.
	SubgraphOutput
	// ConstantCopy has its value inlined in Model.OperandValues.
	ConstantCopy
	// ConstantReference has its value in a shared memory pool of the model.
	ConstantReference
	// NoValue marks an omitted optional operand.
	NoValue
)

// ErrorStatus is the result status a driver reports for an execution.
type ErrorStatus int32

const (
	StatusNone ErrorStatus = iota
	StatusDeviceUnavailable
	StatusGeneralFailure
	StatusOutputInsufficientSize
	StatusInvalidArgument
)

// DataLocation addresses a byte range inside one of the memory pools of a
// model or request.
type DataLocation struct {
	PoolIndex uint32
	Offset    uint32
	Length    uint32
}

// SymmPerChannelQuantParams carries per-channel quantization scales for
// TensorQuant8SymmPerChannel operands.
type SymmPerChannelQuantParams struct {
	Scales     []float32
	ChannelDim uint32
}

// Operand is one typed data slot of a wire model.
//
// Location is only meaningful for ConstantCopy (offset into
// Model.OperandValues) and ConstantReference (offset into a model pool)
// lifetimes. ChannelQuant is set only for TensorQuant8SymmPerChannel operands.
type Operand struct {
	Type              OperandType
	Dimensions        []uint32
	NumberOfConsumers uint32
	Scale             float32
	ZeroPoint         int32
	Lifetime          OperandLifetime
	Location          DataLocation
	ChannelQuant      *SymmPerChannelQuantParams
}

// OperationType is the opcode of a graph operation.
type OperationType int32

// Opcodes understood by the harness corpus. A driver is free to support any
// subset; PrepareModel returns a nil handle for models it cannot run.
const (
	OpAdd OperationType = iota
	OpMul
	OpRelu
	OpFloor
	OpLogistic
)

// Operation applies an opcode to operand slots addressed by index.
type Operation struct {
	Type    OperationType
	Inputs  []uint32
	Outputs []uint32
}

// Model is the wire-level form of a computation graph, ready to be handed to
// Device.PrepareModel.
//
// Constant data lives in one of two storage classes: OperandValues inlines
// ConstantCopy operands, while Pools (at most one entry, allocated only when
// ConstantReference operands exist) holds referenced constants.
type Model struct {
	Operands      []Operand
	Operations    []Operation
	InputIndexes  []uint32
	OutputIndexes []uint32
	OperandValues []byte
	Pools         []Pool

	// RelaxFloat32ToFloat16 allows the driver to compute float32 operations
	// with float16 range and precision.
	RelaxFloat32ToFloat16 bool
}

// RequestArgument binds one model input or output to a byte range of a
// request pool. Dimensions may override the operand's dimensions (left empty
// by this harness).
type RequestArgument struct {
	HasNoValue bool
	Location   DataLocation
	Dimensions []uint32
}

// Request is one executable invocation of a prepared model: concrete buffers
// for every model input and output.
//
// A request is built fresh per evaluation and must not be mutated after
// submission.
type Request struct {
	Inputs  []RequestArgument
	Outputs []RequestArgument
	Pools   []Pool
}

// OutputShape describes the shape the driver produced (or would need) for one
// declared output. IsSufficient is false when the request buffer was too
// small to hold the output.
type OutputShape struct {
	Dimensions   []uint32
	IsSufficient bool
}

// TimeUnknown is the sentinel reported when a duration was not measured.
const TimeUnknown = math.MaxUint64

// Timing reports execution durations in microseconds. Fields are TimeUnknown
// when timing measurement was off or the driver cannot measure them.
type Timing struct {
	TimeOnDevice uint64
	TimeInDriver uint64
}

// UnknownTiming returns a Timing with both fields set to TimeUnknown.
func UnknownTiming() Timing {
	return Timing{TimeOnDevice: TimeUnknown, TimeInDriver: TimeUnknown}
}

// Outcome is the result of one execution attempt, uniform across the three
// execution protocols.
type Outcome struct {
	Status       ErrorStatus
	OutputShapes []OutputShape
	Timing       Timing
}
