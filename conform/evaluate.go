// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import (
	"github.com/google/go-cmp/cmp"
	"github.com/gomlx/nnconform/driver"
	"github.com/gomlx/nnconform/testmodel"
	"k8s.io/klog/v2"
)

// skipUnsupportedExecution is reported when a driver answers an
// under-specified-shape scenario with a general failure: a legitimate "this
// shape-handling mode is not supported" signal, not a conformance violation.
const skipUnsupportedExecution = "early termination of test because the driver cannot execute a model variant it does not support"

func outputSizeGreaterThanOne(model *testmodel.Model, outputIndex int) bool {
	return model.Output(outputIndex).ByteSize() > 1
}

// evaluate runs one scenario configuration end to end against a prepared
// model: builds the request, submits it through the configured protocol,
// validates status, timing and output shapes, and delegates output content to
// the comparator.
//
// The returned flag reports whether the scenario was skipped because the
// driver does not support the probed mode. Contract violations are recorded
// on res; checks that make further validation meaningless abort the run.
func (r *Runner) evaluate(prepared driver.PreparedModel, model *testmodel.Model, config Config, res *Result) (skipped bool) {
	// The undersized-buffer probe needs output 0 to be larger than one byte.
	if config.OutputPolicy == OutputInsufficient && !outputSizeGreaterThanOne(model, 0) {
		klog.V(1).Infof("%s: %s: output 0 too small to probe with an insufficient buffer", res.Name, config)
		return false
	}

	request := BuildRequest(model, r.Allocator)
	if config.OutputPolicy == OutputInsufficient {
		ShrinkOutput(request, 0)
	}

	outcome, err := strategyFor(config.Executor).Run(prepared, request, config.MeasureTiming)
	if err != nil {
		res.fatalf("%s: dispatch fault: %+v", config, err)
	}

	if config.OutputPolicy != OutputFullySpecified && outcome.Status == driver.StatusGeneralFailure {
		if config.ReportSkipping {
			res.noteSkip(skipUnsupportedExecution)
		}
		return true
	}

	r.checkTiming(outcome.Timing, config, res)

	numOutputs := len(model.OutputIndexes)
	switch config.OutputPolicy {
	case OutputFullySpecified:
		// With fully specified output operands the shape list must be either
		// empty or have exactly one entry per output.
		if outcome.Status != driver.StatusNone {
			res.fatalf("%s: execution status %s, want None", config, outcome.Status)
		}
		if n := len(outcome.OutputShapes); n != 0 && n != numOutputs {
			res.fatalf("%s: got %d output shapes, want 0 or %d", config, n, numOutputs)
		}
	case OutputUnspecified:
		// With blanked output operands every output's shape must now be
		// resolved.
		if outcome.Status != driver.StatusNone {
			res.fatalf("%s: execution status %s, want None", config, outcome.Status)
		}
		if n := len(outcome.OutputShapes); n != numOutputs {
			res.fatalf("%s: got %d output shapes, want %d", config, n, numOutputs)
		}
	case OutputInsufficient:
		if outcome.Status != driver.StatusOutputInsufficientSize {
			res.fatalf("%s: execution status %s, want OutputInsufficientSize", config, outcome.Status)
		}
		if n := len(outcome.OutputShapes); n != numOutputs {
			res.fatalf("%s: got %d output shapes, want %d", config, n, numOutputs)
		}
		if outcome.OutputShapes[0].IsSufficient {
			res.fatalf("%s: output 0 marked sufficient after its buffer was shrunk", config)
		}
		// Validation ends here: the output buffers hold no meaningful data.
		return false
	}

	// Every returned output must be sufficient and match the expected
	// dimensions declared by the test model.
	for i, shape := range outcome.OutputShapes {
		if !shape.IsSufficient {
			res.failf("%s: output %d marked insufficient", config, i)
		}
		expected := model.Output(i).Dimensions
		if diff := cmp.Diff(expected, shape.Dimensions); diff != "" {
			res.failf("%s: output %d dimensions mismatch (-want +got):\n%s", config, i, diff)
		}
	}

	outputs := OutputBuffers(request)
	if err := r.Comparator.Compare(model, outputs); err != nil {
		res.failf("%s: output content: %v", config, err)
	}
	return false
}

// checkTiming validates the timing contract: with measurement off both fields
// must be the unknown sentinel; with measurement on, and both values known,
// on-device time must not exceed in-driver time. No ordering is assumed
// across protocols.
func (r *Runner) checkTiming(timing driver.Timing, config Config, res *Result) {
	if !config.MeasureTiming {
		if timing.TimeOnDevice != driver.TimeUnknown {
			res.failf("%s: timing off but TimeOnDevice = %d, want unknown", config, timing.TimeOnDevice)
		}
		if timing.TimeInDriver != driver.TimeUnknown {
			res.failf("%s: timing off but TimeInDriver = %d, want unknown", config, timing.TimeInDriver)
		}
		return
	}
	if timing.TimeOnDevice != driver.TimeUnknown && timing.TimeInDriver != driver.TimeUnknown &&
		timing.TimeOnDevice > timing.TimeInDriver {
		res.failf("%s: TimeOnDevice (%d) exceeds TimeInDriver (%d)", config, timing.TimeOnDevice, timing.TimeInDriver)
	}
}
