// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package sim implements a simple, pure-Go reference driver for the
// conformance harness.
//
// It supports the corpus opcodes on float32, float16, quantized 8-bit and
// int32 tensors, resolves dynamic output shapes, detects undersized output
// buffers, measures timing, and serves all three execution protocols. It is
// the driver the harness's own test suite runs against.
package sim

import (
	"time"

	"github.com/gomlx/nnconform/driver"
	"github.com/pkg/errors"
)

// DriverName to be used in NNCONFORM_DRIVER to select this driver.
const DriverName = "sim"

func init() {
	driver.Register(DriverName, New)
}

// New constructs the reference driver. There are no configurations, the
// string is simply ignored.
func New(_ string) driver.Device {
	return &Device{}
}

// Device implements driver.Device.
type Device struct{}

// Compile-time check that sim.Device implements driver.Device.
var _ driver.Device = &Device{}

// Name implements driver.Device.
func (d *Device) Name() string { return DriverName }

// PrepareModel implements driver.Device. Models using opcodes or element
// types the simulator does not implement get a nil handle (unsupported, not
// an error). Structurally broken models return an error.
func (d *Device) PrepareModel(model *driver.Model) (driver.PreparedModel, error) {
	if err := validateModel(model); err != nil {
		return nil, err
	}
	if !supported(model) {
		return nil, nil
	}
	return &preparedModel{model: model}, nil
}

func validateModel(model *driver.Model) error {
	numOperands := uint32(len(model.Operands))
	check := func(indices []uint32, what string) error {
		for _, idx := range indices {
			if idx >= numOperands {
				return errors.Errorf("sim: %s index %d out of range (%d operands)", what, idx, numOperands)
			}
		}
		return nil
	}
	if err := check(model.InputIndexes, "model input"); err != nil {
		return err
	}
	if err := check(model.OutputIndexes, "model output"); err != nil {
		return err
	}
	for _, op := range model.Operations {
		if err := check(op.Inputs, "operation input"); err != nil {
			return err
		}
		if err := check(op.Outputs, "operation output"); err != nil {
			return err
		}
	}
	return nil
}

func supported(model *driver.Model) bool {
	for _, op := range model.Operations {
		switch op.Type {
		case driver.OpAdd, driver.OpMul, driver.OpRelu, driver.OpFloor, driver.OpLogistic:
		default:
			return false
		}
	}
	for i := range model.Operands {
		switch model.Operands[i].Type {
		case driver.TensorFloat32, driver.TensorFloat16, driver.TensorInt32,
			driver.TensorQuant8Asymm, driver.TensorQuant8AsymmSigned:
		default:
			return false
		}
	}
	return true
}

// preparedModel implements driver.PreparedModel.
type preparedModel struct {
	model *driver.Model
}

// Execute implements driver.PreparedModel.
func (p *preparedModel) Execute(request *driver.Request, measureTiming bool) (driver.ErrorStatus, []driver.OutputShape, driver.Timing, error) {
	outcome, err := p.run(request, measureTiming)
	if err != nil {
		return driver.StatusGeneralFailure, nil, driver.UnknownTiming(), err
	}
	return outcome.Status, outcome.OutputShapes, outcome.Timing, nil
}

// ExecuteAsync implements driver.PreparedModel. The execution happens on its
// own goroutine; the completion is fulfilled exactly once.
func (p *preparedModel) ExecuteAsync(request *driver.Request, measureTiming bool, completion *driver.Completion) error {
	go func() {
		outcome, err := p.run(request, measureTiming)
		if err != nil {
			outcome = driver.Outcome{Status: driver.StatusGeneralFailure, Timing: driver.UnknownTiming()}
		}
		completion.Fulfill(outcome)
	}()
	return nil
}

// OpenBurst implements driver.PreparedModel.
func (p *preparedModel) OpenBurst() (driver.Burst, error) {
	return &burst{prepared: p, poolCache: make(map[int32][]byte)}, nil
}

// burst implements driver.Burst. It caches pool mappings under the caller's
// arena keys for the lifetime of the channel: a key seen before resolves to
// the mapping cached on first use, not to the request's pool entry.
type burst struct {
	prepared  *preparedModel
	poolCache map[int32][]byte
	closed    bool
}

// cachedPool presents a cached mapping as a driver.Pool.
type cachedPool []byte

func (p cachedPool) Size() uint32 { return uint32(len(p)) }
func (p cachedPool) Map() []byte  { return p }

// Execute implements driver.Burst.
func (b *burst) Execute(request *driver.Request, measureTiming bool, poolKeys []int32) (driver.ErrorStatus, []driver.OutputShape, driver.Timing, error) {
	if b.closed {
		return driver.StatusGeneralFailure, nil, driver.UnknownTiming(), errors.New("sim: burst channel already closed")
	}
	if len(poolKeys) != len(request.Pools) {
		return driver.StatusGeneralFailure, nil, driver.UnknownTiming(),
			errors.Errorf("sim: got %d pool keys for %d pools", len(poolKeys), len(request.Pools))
	}
	pools := make([]driver.Pool, len(request.Pools))
	for i, key := range poolKeys {
		mapped, cached := b.poolCache[key]
		if !cached {
			mapped = request.Pools[i].Map()
			b.poolCache[key] = mapped
		}
		pools[i] = cachedPool(mapped)
	}
	resolved := &driver.Request{Inputs: request.Inputs, Outputs: request.Outputs, Pools: pools}
	outcome, err := b.prepared.run(resolved, measureTiming)
	if err != nil {
		return driver.StatusGeneralFailure, nil, driver.UnknownTiming(), err
	}
	return outcome.Status, outcome.OutputShapes, outcome.Timing, nil
}

// Close implements driver.Burst.
func (b *burst) Close() error {
	b.closed = true
	b.poolCache = nil
	return nil
}

// run is the shared execution core behind all three protocols.
func (p *preparedModel) run(request *driver.Request, measureTiming bool) (driver.Outcome, error) {
	start := time.Now()
	outcome, deviceElapsed, err := p.compute(request)
	if err != nil {
		return driver.Outcome{}, err
	}
	if measureTiming {
		total := time.Since(start)
		if total < deviceElapsed {
			total = deviceElapsed
		}
		outcome.Timing = driver.Timing{
			TimeOnDevice: uint64(deviceElapsed.Microseconds()),
			TimeInDriver: uint64(total.Microseconds()),
		}
	} else {
		outcome.Timing = driver.UnknownTiming()
	}
	return outcome, nil
}
