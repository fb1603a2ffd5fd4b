// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import "fmt"

//go:generate go tool enumer -type=Executor -trimprefix=Executor -output=gen_executor_enumer.go config.go
//go:generate go tool enumer -type=OutputPolicy -trimprefix=Output -output=gen_outputpolicy_enumer.go config.go
//go:generate go tool enumer -type=TestKind -trimprefix=Kind -output=gen_testkind_enumer.go config.go

// Executor selects the execution protocol used to submit a request.
type Executor int

const (
	// ExecutorAsync submits with a completion callback and waits for it.
	ExecutorAsync Executor = iota
	// ExecutorSync performs a single blocking call.
	ExecutorSync
	// ExecutorBurst issues the request through a pipelined low-latency channel.
	ExecutorBurst
)

// OutputPolicy is the test axis controlling how output shapes are presented
// to the driver.
type OutputPolicy int

const (
	// OutputFullySpecified leaves the declared output shapes in place.
	OutputFullySpecified OutputPolicy = iota
	// OutputUnspecified blanks the output dimensions before compiling, so the
	// driver must resolve them at execution time.
	OutputUnspecified
	// OutputInsufficient shrinks output 0's buffer by one byte to probe the
	// too-small detection path.
	OutputInsufficient
)

// TestKind selects which scenario matrix a model is run through.
type TestKind int

const (
	KindGeneral TestKind = iota
	KindDynamicShape
	KindQuantizationCoupling
)

// Config describes one point of the scenario matrix. It is a pure value,
// never mutated after construction.
type Config struct {
	Executor      Executor
	MeasureTiming bool
	OutputPolicy  OutputPolicy

	// ReportSkipping indicates whether a skipped scenario should be reported
	// on the logs. The coupling orchestrator disables it, since it handles
	// skips itself in lockstep.
	ReportSkipping bool
}

// NewConfig returns a Config with skip reporting enabled.
func NewConfig(executor Executor, measureTiming bool, outputPolicy OutputPolicy) Config {
	return Config{
		Executor:       executor,
		MeasureTiming:  measureTiming,
		OutputPolicy:   outputPolicy,
		ReportSkipping: true,
	}
}

// String identifies the scenario in assertion messages, e.g.
// "sync/timing=on/fully_specified".
func (c Config) String() string {
	timing := "off"
	if c.MeasureTiming {
		timing = "on"
	}
	return fmt.Sprintf("%s/timing=%s/%s", lowerCamel(c.Executor.String()), timing, snake(c.OutputPolicy.String()))
}

func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

func snake(s string) string {
	out := make([]byte, 0, len(s)+4)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			if i > 0 {
				out = append(out, '_')
			}
			ch |= 0x20
		}
		out = append(out, ch)
	}
	return string(out)
}
