// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sim

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/nnconform/driver"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// compute interprets the model graph over the request buffers. Driver-level
// problems (shape conflicts, missing operand values) surface as a
// GeneralFailure outcome; broken pools are transport errors.
func (p *preparedModel) compute(request *driver.Request) (driver.Outcome, time.Duration, error) {
	model := p.model
	if len(request.Inputs) != len(model.InputIndexes) {
		return driver.Outcome{}, 0, errors.Errorf("sim: got %d request inputs, model has %d", len(request.Inputs), len(model.InputIndexes))
	}
	if len(request.Outputs) != len(model.OutputIndexes) {
		return driver.Outcome{}, 0, errors.Errorf("sim: got %d request outputs, model has %d", len(request.Outputs), len(model.OutputIndexes))
	}

	values := make([][]float64, len(model.Operands))
	dims := make([][]uint32, len(model.Operands))

	// Constant operands come from the model's storage classes.
	for i := range model.Operands {
		op := &model.Operands[i]
		loc := op.Location
		switch op.Lifetime {
		case driver.ConstantCopy:
			values[i] = decodeOperand(op, model.OperandValues[loc.Offset:loc.Offset+loc.Length])
			dims[i] = op.Dimensions
		case driver.ConstantReference:
			mapped := model.Pools[loc.PoolIndex].Map()
			if mapped == nil {
				return driver.Outcome{}, 0, errors.Errorf("sim: mapping model pool %d failed", loc.PoolIndex)
			}
			values[i] = decodeOperand(op, mapped[loc.Offset:loc.Offset+loc.Length])
			dims[i] = op.Dimensions
		}
	}

	// Input operands come from the request pools.
	for i, idx := range model.InputIndexes {
		arg := request.Inputs[i]
		if arg.HasNoValue {
			continue
		}
		mapped := request.Pools[arg.Location.PoolIndex].Map()
		if mapped == nil {
			return driver.Outcome{}, 0, errors.Errorf("sim: mapping request pool %d failed", arg.Location.PoolIndex)
		}
		op := &model.Operands[idx]
		values[idx] = decodeOperand(op, mapped[arg.Location.Offset:arg.Location.Offset+arg.Location.Length])
		if len(arg.Dimensions) > 0 {
			dims[idx] = arg.Dimensions
		} else {
			dims[idx] = op.Dimensions
		}
	}

	deviceStart := time.Now()
	for _, operation := range model.Operations {
		if !p.apply(operation, values, dims) {
			return driver.Outcome{Status: driver.StatusGeneralFailure}, time.Since(deviceStart), nil
		}
	}
	deviceElapsed := time.Since(deviceStart)

	// Deliver outputs, checking buffer sufficiency. One undersized output
	// flips the whole execution to OutputInsufficientSize, but every shape is
	// still reported.
	shapes := make([]driver.OutputShape, len(model.OutputIndexes))
	status := driver.StatusNone
	for i, idx := range model.OutputIndexes {
		if values[idx] == nil {
			return driver.Outcome{Status: driver.StatusGeneralFailure}, deviceElapsed, nil
		}
		op := &model.Operands[idx]
		encoded := encodeOperand(op, values[idx], model.RelaxFloat32ToFloat16)
		shapes[i] = driver.OutputShape{
			Dimensions:   append([]uint32(nil), dims[idx]...),
			IsSufficient: true,
		}
		arg := request.Outputs[i]
		if arg.Location.Length < uint32(len(encoded)) {
			shapes[i].IsSufficient = false
			status = driver.StatusOutputInsufficientSize
			continue
		}
		mapped := request.Pools[arg.Location.PoolIndex].Map()
		if mapped == nil {
			return driver.Outcome{}, 0, errors.Errorf("sim: mapping request pool %d failed", arg.Location.PoolIndex)
		}
		copy(mapped[arg.Location.Offset:], encoded)
	}
	return driver.Outcome{Status: status, OutputShapes: shapes}, deviceElapsed, nil
}

// apply runs one elementwise operation in the real domain. Returns false on
// anything the driver should report as a general failure.
func (p *preparedModel) apply(operation driver.Operation, values [][]float64, dims [][]uint32) bool {
	switch operation.Type {
	case driver.OpAdd, driver.OpMul:
		if len(operation.Inputs) != 2 || len(operation.Outputs) != 1 {
			return false
		}
		a, b := values[operation.Inputs[0]], values[operation.Inputs[1]]
		if a == nil || b == nil || len(a) != len(b) {
			return false
		}
		out := make([]float64, len(a))
		if operation.Type == driver.OpAdd {
			for i := range a {
				out[i] = a[i] + b[i]
			}
		} else {
			for i := range a {
				out[i] = a[i] * b[i]
			}
		}
		values[operation.Outputs[0]] = out
		dims[operation.Outputs[0]] = dims[operation.Inputs[0]]
	case driver.OpRelu, driver.OpFloor, driver.OpLogistic:
		if len(operation.Inputs) != 1 || len(operation.Outputs) != 1 {
			return false
		}
		in := values[operation.Inputs[0]]
		if in == nil {
			return false
		}
		out := make([]float64, len(in))
		switch operation.Type {
		case driver.OpRelu:
			for i, v := range in {
				out[i] = math.Max(0, v)
			}
		case driver.OpFloor:
			for i, v := range in {
				out[i] = math.Floor(v)
			}
		case driver.OpLogistic:
			for i, v := range in {
				out[i] = 1 / (1 + math.Exp(-v))
			}
		}
		values[operation.Outputs[0]] = out
		dims[operation.Outputs[0]] = dims[operation.Inputs[0]]
	default:
		return false
	}
	return true
}

// decodeOperand converts raw operand bytes into real-domain values,
// dequantizing quantized encodings with the operand's scale and zero point.
func decodeOperand(op *driver.Operand, raw []byte) []float64 {
	switch op.Type.StorageDType() {
	case dtypes.Float32:
		out := make([]float64, len(raw)/4)
		for i := range out {
			out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:])))
		}
		return out
	case dtypes.Float16:
		out := make([]float64, len(raw)/2)
		for i := range out {
			out[i] = float64(float16.Frombits(binary.LittleEndian.Uint16(raw[2*i:])).Float32())
		}
		return out
	case dtypes.Int32:
		out := make([]float64, len(raw)/4)
		for i := range out {
			out[i] = float64(int32(binary.LittleEndian.Uint32(raw[4*i:])))
		}
		return out
	case dtypes.Uint8:
		out := make([]float64, len(raw))
		for i, q := range raw {
			out[i] = (float64(q) - float64(op.ZeroPoint)) * float64(op.Scale)
		}
		return out
	case dtypes.Int8:
		out := make([]float64, len(raw))
		for i, q := range raw {
			out[i] = (float64(int8(q)) - float64(op.ZeroPoint)) * float64(op.Scale)
		}
		return out
	}
	return nil
}

// encodeOperand converts real-domain values into the operand's wire encoding,
// requantizing with the operand's scale and zero point. With relaxed
// precision, float32 results are rounded through float16.
func encodeOperand(op *driver.Operand, values []float64, relaxed bool) []byte {
	switch op.Type.StorageDType() {
	case dtypes.Float32:
		out := make([]byte, 4*len(values))
		for i, v := range values {
			f := float32(v)
			if relaxed {
				f = float16.Fromfloat32(f).Float32()
			}
			binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(f))
		}
		return out
	case dtypes.Float16:
		out := make([]byte, 2*len(values))
		for i, v := range values {
			binary.LittleEndian.PutUint16(out[2*i:], float16.Fromfloat32(float32(v)).Bits())
		}
		return out
	case dtypes.Int32:
		out := make([]byte, 4*len(values))
		for i, v := range values {
			binary.LittleEndian.PutUint32(out[4*i:], uint32(int32(v)))
		}
		return out
	case dtypes.Uint8:
		out := make([]byte, len(values))
		for i, v := range values {
			out[i] = uint8(clamp(quantize(v, op), 0, 255))
		}
		return out
	case dtypes.Int8:
		out := make([]byte, len(values))
		for i, v := range values {
			out[i] = uint8(int8(clamp(quantize(v, op), -128, 127)))
		}
		return out
	}
	return nil
}

func quantize(v float64, op *driver.Operand) int64 {
	return int64(math.Round(v/float64(op.Scale))) + int64(op.ZeroPoint)
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
