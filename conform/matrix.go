// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/nnconform/driver"
	"github.com/gomlx/nnconform/testmodel"
	"github.com/gomlx/nnconform/tolerance"
)

// skipUnsupportedPreparation is reported when a driver declines to prepare a
// model (nil handle): it legitimately does not support the model.
const skipUnsupportedPreparation = "early termination of test because the driver cannot prepare a model it does not support"

// Runner drives the scenario matrix of the conformance harness against one
// driver.
//
// The zero value is not usable; use NewRunner. A Runner is stateless across
// runs: every evaluation owns its request, buffers and pools, and only the
// driver handle is shared (read-only, reentrant by contract).
type Runner struct {
	// Device under test. Passed explicitly; the harness keeps no global.
	Device driver.Device

	// Allocator provides the shared-memory pools for constant data and
	// request buffers. Defaults to driver.HeapAllocator.
	Allocator driver.Allocator

	// Comparator implements the numeric tolerance policy for output data.
	// Defaults to tolerance.New().
	Comparator Comparator
}

// NewRunner returns a Runner for the given device with the default allocator
// and comparator.
func NewRunner(device driver.Device) *Runner {
	return &Runner{
		Device:     device,
		Allocator:  driver.HeapAllocator{},
		Comparator: tolerance.New(),
	}
}

// matrixFor enumerates the scenario axes applicable to a test kind. The
// quantization-coupling kind has its own lockstep loop in RunQuantizationCoupling.
func matrixFor(kind TestKind) (policies []OutputPolicy, timings []bool, executors []Executor) {
	timings = []bool{false, true}
	executors = []Executor{ExecutorAsync, ExecutorSync, ExecutorBurst}
	switch kind {
	case KindGeneral:
		policies = []OutputPolicy{OutputFullySpecified}
	case KindDynamicShape:
		policies = []OutputPolicy{OutputUnspecified, OutputInsufficient}
	default:
		exceptions.Panicf("no scenario matrix for test kind %s", kind)
	}
	return
}

// evaluateMatrix runs every (policy, timing, executor) combination of the
// kind's matrix on an already prepared model.
func (r *Runner) evaluateMatrix(prepared driver.PreparedModel, model *testmodel.Model, kind TestKind, res *Result) {
	policies, timings, executors := matrixFor(kind)
	for _, policy := range policies {
		for _, measureTiming := range timings {
			for _, executor := range executors {
				r.evaluate(prepared, model, NewConfig(executor, measureTiming, policy), res)
			}
		}
	}
}

// prepare compiles the wire model on the device. A nil handle means the
// driver does not support the model; when reportSkipping is set this is
// registered as a skip. Transport faults are hard failures.
func (r *Runner) prepare(wire *driver.Model, reportSkipping bool, res *Result) driver.PreparedModel {
	prepared, err := r.Device.PrepareModel(wire)
	if err != nil {
		res.fatalf("model preparation fault: %+v", err)
	}
	if prepared == nil && reportSkipping {
		res.noteSkip(skipUnsupportedPreparation)
	}
	return prepared
}

// RunGeneral validates the model under the general matrix: fully specified
// output shapes, timing off and on, across the three execution protocols.
func (r *Runner) RunGeneral(name string, model *testmodel.Model) *Result {
	return run(name, func(res *Result) {
		wire := Translate(model, r.Allocator)
		prepared := r.prepare(wire, true, res)
		if prepared == nil {
			return
		}
		r.evaluateMatrix(prepared, model, KindGeneral, res)
	})
}

// RunDynamicShape validates the model with blanked output dimensions under
// the dynamic-shape matrix: unspecified and insufficient output policies,
// timing off and on, across the three execution protocols.
func (r *Runner) RunDynamicShape(name string, model *testmodel.Model) *Result {
	return run(name, func(res *Result) {
		wire := Translate(model, r.Allocator)
		BlankOutputDimensions(wire)
		prepared := r.prepare(wire, true, res)
		if prepared == nil {
			return
		}
		r.evaluateMatrix(prepared, model, KindDynamicShape, res)
	})
}

// Run dispatches to the entry point for the given test kind.
func (r *Runner) Run(kind TestKind, name string, model *testmodel.Model) *Result {
	switch kind {
	case KindGeneral:
		return r.RunGeneral(name, model)
	case KindDynamicShape:
		return r.RunDynamicShape(name, model)
	case KindQuantizationCoupling:
		return r.RunQuantizationCoupling(name, model)
	}
	exceptions.Panicf("unknown test kind %s", kind)
	return nil
}

// RunGeneral validates one named model on a device with default settings.
func RunGeneral(device driver.Device, name string, model *testmodel.Model) *Result {
	return NewRunner(device).RunGeneral(name, model)
}

// RunDynamicShape validates one named model's dynamic-shape handling on a
// device with default settings.
func RunDynamicShape(device driver.Device, name string, model *testmodel.Model) *Result {
	return NewRunner(device).RunDynamicShape(name, model)
}

// RunQuantizationCoupling validates one named model's quantization coupling
// on a device with default settings.
func RunQuantizationCoupling(device driver.Device, name string, model *testmodel.Model) *Result {
	return NewRunner(device).RunQuantizationCoupling(name, model)
}
