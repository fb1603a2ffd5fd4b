// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package driver defines the wire-level data model exchanged with a neural
// network inference driver and the interfaces a driver implements to be
// exercised by the conformance harness (package conform).
//
// A driver exposes a Device that compiles wire models into PreparedModel
// handles. A prepared model can be executed through three protocols: a
// blocking call (Execute), an asynchronous submission fulfilled through a
// single-use Completion (ExecuteAsync), and a low-latency pipelined channel
// (OpenBurst). A conformant driver yields observably equivalent status and
// output content through all three for the same request.
//
// Drivers register themselves by name with Register, typically from an init
// function, so binaries select them by configuration. See driver/sim for a
// pure-Go reference implementation.
package driver

import (
	"os"
	"strings"

	"github.com/gomlx/exceptions"
)

// Device is the entry point of an inference driver.
//
// The handle is shared, read-only and reentrant by contract, across all
// evaluations of one model.
type Device interface {
	// Name returns a short identifier of the driver, e.g. "sim".
	Name() string

	// PrepareModel compiles the wire model into an executable handle.
	//
	// A nil handle with a nil error means the driver does not support the
	// model; that is a legitimate answer, not an error. A non-nil error is a
	// transport or driver fault.
	PrepareModel(model *Model) (PreparedModel, error)
}

// PreparedModel is a compiled model ready for execution.
type PreparedModel interface {
	// Execute runs one request synchronously and returns its status, the
	// per-output shapes and timing. The error return is reserved for
	// transport faults; driver-reported problems come back as ErrorStatus.
	Execute(request *Request, measureTiming bool) (ErrorStatus, []OutputShape, Timing, error)

	// ExecuteAsync submits one request and returns immediately. The driver
	// fulfills completion exactly once when the execution finishes.
	// Completions are single-use: callers must pass a fresh one per call.
	ExecuteAsync(request *Request, measureTiming bool, completion *Completion) error

	// OpenBurst opens a low-latency pipelined channel to this prepared model.
	OpenBurst() (Burst, error)
}

// Burst is a pipelined execution channel.
//
// Each request pool is tagged with a caller-chosen opaque key; the driver may
// cache pool mappings under these keys for the lifetime of the burst. The
// harness assigns keys in pool order: poolKeys[i] == int32(i).
type Burst interface {
	// Execute issues one request through the channel and returns its result
	// synchronously. len(poolKeys) must equal len(request.Pools).
	Execute(request *Request, measureTiming bool, poolKeys []int32) (ErrorStatus, []OutputShape, Timing, error)

	// Close releases the channel. The prepared model remains usable.
	Close() error
}

// Constructor takes a driver-specific config string (possibly empty) and
// returns a Device.
type Constructor func(config string) Device

var (
	registeredConstructors = make(map[string]Constructor)
	firstRegistered        string
)

// Register a driver constructor under the given name.
//
// To be safe, call Register during initialization of a package.
func Register(name string, constructor Constructor) {
	if len(registeredConstructors) == 0 {
		firstRegistered = name
	}
	registeredConstructors[name] = constructor
}

// NNCONFORM_DRIVER is the environment variable with the default driver
// configuration, formatted as "<driver_name>:<driver_config>".
const NNCONFORM_DRIVER = "NNCONFORM_DRIVER"

// New returns a Device built from the NNCONFORM_DRIVER environment variable
// if set, and otherwise the first registered driver with an empty config.
//
// It panics if no driver was registered.
func New() Device {
	if config, found := os.LookupEnv(NNCONFORM_DRIVER); found {
		return NewWithConfig(config)
	}
	return NewWithConfig("")
}

// NewWithConfig builds a Device from a "<driver_name>:<driver_config>"
// string. An empty name selects the first registered driver.
func NewWithConfig(config string) Device {
	if len(registeredConstructors) == 0 {
		exceptions.Panicf(`no registered drivers -- maybe import the reference one with import _ "github.com/gomlx/nnconform/driver/sim"?`)
	}
	driverName := firstRegistered
	driverConfig := config
	if idx := strings.Index(config, ":"); idx != -1 {
		driverName = config[:idx]
		driverConfig = config[idx+1:]
	}
	constructor, found := registeredConstructors[driverName]
	if !found {
		exceptions.Panicf("can't find driver %q for configuration %q given", driverName, config)
	}
	return constructor(driverConfig)
}
