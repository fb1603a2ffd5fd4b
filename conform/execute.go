// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/nnconform/driver"
	"github.com/pkg/errors"
)

// executionStrategy submits one request to a prepared model through one of
// the three execution protocols. All strategies must yield observably
// equivalent status and output content on a conformant driver; only timing
// mechanics and latency differ.
//
// A returned error is a dispatch fault (hard failure), distinct from a
// driver-reported status inside the Outcome.
type executionStrategy interface {
	Run(prepared driver.PreparedModel, request *driver.Request, measureTiming bool) (driver.Outcome, error)
}

func strategyFor(executor Executor) executionStrategy {
	switch executor {
	case ExecutorAsync:
		return asyncStrategy{}
	case ExecutorSync:
		return syncStrategy{}
	case ExecutorBurst:
		return burstStrategy{}
	}
	exceptions.Panicf("unknown executor %s", executor)
	return nil
}

// syncStrategy performs a single blocking call. A transport-level fault (not
// a driver-reported error) maps to a generic-failure status.
type syncStrategy struct{}

func (syncStrategy) Run(prepared driver.PreparedModel, request *driver.Request, measureTiming bool) (driver.Outcome, error) {
	status, shapes, timing, err := prepared.Execute(request, measureTiming)
	if err != nil {
		return driver.Outcome{Status: driver.StatusGeneralFailure, Timing: driver.UnknownTiming()}, nil
	}
	return driver.Outcome{Status: status, OutputShapes: shapes, Timing: timing}, nil
}

// asyncStrategy submits with a completion and blocks until the driver
// fulfills it. The completion is newly instantiated per call; reuse across
// calls is forbidden (stale-result hazard).
type asyncStrategy struct{}

func (asyncStrategy) Run(prepared driver.PreparedModel, request *driver.Request, measureTiming bool) (driver.Outcome, error) {
	completion := driver.NewCompletion()
	if err := prepared.ExecuteAsync(request, measureTiming, completion); err != nil {
		return driver.Outcome{}, errors.Wrapf(err, "asynchronous execution launch")
	}
	return completion.Wait(), nil
}

// burstStrategy opens a pipelined channel, tags each request pool with its
// arena index as the opaque pool key, and issues the request through the
// channel. The result comes back synchronously from the channel call itself.
// The channel is created fresh per scenario invocation, trading setup cost
// for isolation.
type burstStrategy struct{}

func (burstStrategy) Run(prepared driver.PreparedModel, request *driver.Request, measureTiming bool) (driver.Outcome, error) {
	burst, err := prepared.OpenBurst()
	if err != nil {
		return driver.Outcome{}, errors.Wrapf(err, "opening burst channel")
	}
	if burst == nil {
		return driver.Outcome{}, errors.Errorf("driver returned a nil burst channel")
	}
	defer func() { _ = burst.Close() }()

	keys := make([]int32, len(request.Pools))
	for i := range keys {
		keys[i] = int32(i)
	}
	status, shapes, timing, err := burst.Execute(request, measureTiming, keys)
	if err != nil {
		return driver.Outcome{}, errors.Wrapf(err, "burst execution")
	}
	return driver.Outcome{Status: status, OutputShapes: shapes, Timing: timing}, nil
}
