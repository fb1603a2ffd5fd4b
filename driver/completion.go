// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package driver

import (
	"sync/atomic"

	"github.com/gomlx/exceptions"
)

// Completion is a single-use future fulfilled by a driver when an
// asynchronous execution finishes.
//
// The submitting side creates a fresh Completion per ExecuteAsync call and
// blocks on Wait; the driver calls Fulfill exactly once. Fulfilling twice is
// a driver contract breach and panics. Completions must never be reused
// across submissions (stale-result hazard).
type Completion struct {
	fulfilled atomic.Bool
	done      chan struct{}
	outcome   Outcome
}

// NewCompletion returns an unfulfilled Completion.
func NewCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Fulfill records the execution outcome and releases Wait.
func (c *Completion) Fulfill(outcome Outcome) {
	if c.fulfilled.Swap(true) {
		exceptions.Panicf("driver.Completion fulfilled more than once")
	}
	c.outcome = outcome
	close(c.done)
}

// Wait blocks until Fulfill has been called and returns the recorded outcome.
// There is no timeout: a driver that never fulfills hangs the caller.
func (c *Completion) Wait() Outcome {
	<-c.done
	return c.outcome
}
