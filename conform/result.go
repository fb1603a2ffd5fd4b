// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import (
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

//go:generate go tool enumer -type=Verdict -output=gen_verdict_enumer.go result.go

// Verdict is the overall outcome of running one test kind on one model.
type Verdict int

const (
	// Pass means every applicable scenario validated successfully.
	Pass Verdict = iota
	// Fail means at least one contract violation was recorded.
	Fail
	// Skip means the driver legitimately lacks a capability being probed and
	// no violation was recorded.
	Skip
)

// Result collects the verdict and diagnostics of one test-kind run.
//
// Failure messages accumulate: non-aborting checks keep gathering mismatches
// to surface more diagnostic information before the run ends.
type Result struct {
	// Name of the corpus model the run was for.
	Name string

	Verdict Verdict

	// Failures lists every contract violation, each tagged with the scenario
	// parameters it occurred under.
	Failures []string

	// SkipReason explains a Skip verdict.
	SkipReason string
}

// testAbort is panicked by Result.fatalf and recovered at the entry-point
// boundary; it ends the run after the failure was recorded.
type testAbort struct{}

// EnvironmentFault reports a harness-environment problem (pool allocation or
// mapping failure). It aborts the test run by panic and is deliberately not
// recovered: it is never a backend result.
type EnvironmentFault struct {
	Message string
}

// Error implements error.
func (f *EnvironmentFault) Error() string {
	return "environment fault: " + f.Message
}

func envFaultf(format string, args ...any) {
	panic(&EnvironmentFault{Message: fmt.Sprintf(format, args...)})
}

// failf records a contract violation and continues (EXPECT-style).
func (r *Result) failf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Failures = append(r.Failures, msg)
	klog.V(1).Infof("%s: FAIL: %s", r.Name, msg)
}

// fatalf records a contract violation and aborts the run (ASSERT-style).
func (r *Result) fatalf(format string, args ...any) {
	r.failf(format, args...)
	panic(testAbort{})
}

// noteSkip registers a skip explanation on both reporting channels, the
// structured log and the console.
func (r *Result) noteSkip(reason string) {
	if r.SkipReason == "" {
		r.SkipReason = reason
	}
	klog.Infof("%s: %s", r.Name, reason)
	fmt.Fprintf(os.Stdout, "[          ]   %s\n", reason)
}

// run executes fn against a fresh Result, translating fatalf aborts into the
// final verdict. Environment faults and programming errors propagate.
func run(name string, fn func(res *Result)) *Result {
	res := &Result{Name: name}
	func() {
		defer func() {
			if p := recover(); p != nil {
				if _, ok := p.(testAbort); ok {
					return
				}
				panic(p)
			}
		}()
		fn(res)
	}()
	switch {
	case len(res.Failures) > 0:
		res.Verdict = Fail
	case res.SkipReason != "":
		res.Verdict = Skip
	default:
		res.Verdict = Pass
	}
	return res
}
