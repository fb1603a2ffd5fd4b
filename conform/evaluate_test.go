// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import (
	"testing"

	"github.com/gomlx/nnconform/driver"
	"github.com/gomlx/nnconform/driver/sim"
	"github.com/gomlx/nnconform/testmodel"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"
)

func newSimRunner() *Runner {
	return NewRunner(sim.New(""))
}

// evaluateOne runs a single scenario configuration against a freshly prepared
// model and returns the result and the skip flag.
func evaluateOne(t *testing.T, r *Runner, model *testmodel.Model, blankOutputs bool, config Config) (*Result, bool) {
	wire := Translate(model, r.Allocator)
	if blankOutputs {
		BlankOutputDimensions(wire)
	}
	prepared := must.M1(r.Device.PrepareModel(wire))
	require.NotNil(t, prepared)
	var skipped bool
	res := run(t.Name(), func(res *Result) {
		skipped = r.evaluate(prepared, model, config, res)
	})
	return res, skipped
}

// Fixed 4-element output, fully specified shapes, blocking protocol, timing
// off: must pass with matching output content.
func TestEvaluateFullySpecifiedSync(t *testing.T) {
	runner := newSimRunner()
	model := testmodel.Get("add_float32")
	res, skipped := evaluateOne(t, runner, model, false, NewConfig(ExecutorSync, false, OutputFullySpecified))
	require.False(t, skipped)
	require.Empty(t, res.Failures)
	require.Equal(t, Pass, res.Verdict)
}

// Same model with blanked output dimensions, async protocol with timing on:
// the driver must resolve the original fixed shape.
func TestEvaluateUnspecifiedAsync(t *testing.T) {
	runner := newSimRunner()
	model := testmodel.Get("add_float32")
	res, skipped := evaluateOne(t, runner, model, true, NewConfig(ExecutorAsync, true, OutputUnspecified))
	require.False(t, skipped)
	require.Empty(t, res.Failures)
	require.Equal(t, Pass, res.Verdict)
}

// Same model with a one-byte-short output buffer over the pipelined channel:
// must report the too-small status with output 0 marked insufficient.
func TestEvaluateInsufficientBurst(t *testing.T) {
	runner := newSimRunner()
	model := testmodel.Get("add_float32")
	res, skipped := evaluateOne(t, runner, model, true, NewConfig(ExecutorBurst, false, OutputInsufficient))
	require.False(t, skipped)
	require.Empty(t, res.Failures)
	require.Equal(t, Pass, res.Verdict)
}

// A one-byte output cannot be probed with an undersized buffer; the scenario
// must be left unattempted instead of tripping the shrink precondition.
func TestEvaluateInsufficientSkipsTinyOutput(t *testing.T) {
	runner := newSimRunner()
	model := &testmodel.Model{
		Operands: []testmodel.Operand{
			{Type: driver.TensorQuant8Asymm, Dimensions: []uint32{1}, Scale: 1, ZeroPoint: 128,
				NumberOfConsumers: 1, Lifetime: driver.SubgraphInput, Data: []byte{130}},
			{Type: driver.TensorQuant8Asymm, Dimensions: []uint32{1}, Scale: 1, ZeroPoint: 128,
				Lifetime: driver.SubgraphOutput, Data: []byte{130}},
		},
		Operations: []testmodel.Operation{
			{Type: driver.OpRelu, Inputs: []uint32{0}, Outputs: []uint32{1}},
		},
		InputIndexes:  []uint32{0},
		OutputIndexes: []uint32{1},
	}
	res, skipped := evaluateOne(t, runner, model, false, NewConfig(ExecutorSync, false, OutputInsufficient))
	require.False(t, skipped)
	require.Equal(t, Pass, res.Verdict)
}

// A driver answering an under-specified scenario with a general failure is an
// unsupported capability: the scenario skips instead of failing.
func TestEvaluateGeneralFailureBecomesSkip(t *testing.T) {
	runner := NewRunner(failingExecutionDevice{sim.New("")})
	model := testmodel.Get("add_float32")
	res, skipped := evaluateOne(t, runner, model, true, NewConfig(ExecutorSync, false, OutputUnspecified))
	require.True(t, skipped)
	require.Empty(t, res.Failures)
	require.Equal(t, Skip, res.Verdict)

	// Under the fully specified policy the same failure is a hard failure.
	res, skipped = evaluateOne(t, runner, model, false, NewConfig(ExecutorSync, false, OutputFullySpecified))
	require.False(t, skipped)
	require.Equal(t, Fail, res.Verdict)
}

// The full general and dynamic-shape matrices never hard-fail on a conformant
// driver: every scenario passes or skips.
func TestMatrixOnConformantDriver(t *testing.T) {
	runner := newSimRunner()
	for _, named := range testmodel.Models(testmodel.NotExpectFailure) {
		t.Run("general/"+named.Name, func(t *testing.T) {
			res := runner.RunGeneral(named.Name, named.Model)
			require.Empty(t, res.Failures)
			require.NotEqual(t, Fail, res.Verdict)
		})
		t.Run("dynamic_shape/"+named.Name, func(t *testing.T) {
			res := runner.RunDynamicShape(named.Name, named.Model)
			require.Empty(t, res.Failures)
			require.NotEqual(t, Fail, res.Verdict)
		})
	}
}

// An unsupported model must produce a skip verdict, not a failure.
func TestUnsupportedModelSkips(t *testing.T) {
	runner := newSimRunner()
	model := &testmodel.Model{
		Operands: []testmodel.Operand{
			{Type: driver.TensorFloat32, Dimensions: []uint32{2}, NumberOfConsumers: 1,
				Lifetime: driver.SubgraphInput, Data: testmodel.Float32Bytes(1, 2)},
			{Type: driver.TensorFloat32, Dimensions: []uint32{2},
				Lifetime: driver.SubgraphOutput, Data: testmodel.Float32Bytes(1, 2)},
		},
		Operations: []testmodel.Operation{
			{Type: driver.OperationType(999), Inputs: []uint32{0}, Outputs: []uint32{1}},
		},
		InputIndexes:  []uint32{0},
		OutputIndexes: []uint32{1},
	}
	res := runner.RunGeneral(t.Name(), model)
	require.Equal(t, Skip, res.Verdict)
	require.NotEmpty(t, res.SkipReason)
}

func TestConfigString(t *testing.T) {
	config := NewConfig(ExecutorSync, true, OutputFullySpecified)
	require.Equal(t, "sync/timing=on/fully_specified", config.String())
	config = NewConfig(ExecutorBurst, false, OutputInsufficient)
	require.Equal(t, "burst/timing=off/insufficient", config.String())
}

// failingExecutionDevice wraps a device so every execution reports a general
// failure while preparation succeeds.
type failingExecutionDevice struct {
	driver.Device
}

func (d failingExecutionDevice) PrepareModel(model *driver.Model) (driver.PreparedModel, error) {
	prepared, err := d.Device.PrepareModel(model)
	if prepared == nil || err != nil {
		return prepared, err
	}
	return failingPreparedModel{}, nil
}

type failingPreparedModel struct{}

func (failingPreparedModel) Execute(*driver.Request, bool) (driver.ErrorStatus, []driver.OutputShape, driver.Timing, error) {
	return driver.StatusGeneralFailure, nil, driver.UnknownTiming(), nil
}

func (failingPreparedModel) ExecuteAsync(request *driver.Request, measureTiming bool, completion *driver.Completion) error {
	completion.Fulfill(driver.Outcome{Status: driver.StatusGeneralFailure, Timing: driver.UnknownTiming()})
	return nil
}

func (failingPreparedModel) OpenBurst() (driver.Burst, error) {
	return failingBurst{}, nil
}

type failingBurst struct{}

func (failingBurst) Execute(*driver.Request, bool, []int32) (driver.ErrorStatus, []driver.OutputShape, driver.Timing, error) {
	return driver.StatusGeneralFailure, nil, driver.UnknownTiming(), nil
}

func (failingBurst) Close() error { return nil }
