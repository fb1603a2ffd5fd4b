// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package testmodel

import (
	"sort"
	"sync"

	"github.com/gomlx/exceptions"
)

// NamedModel pairs a corpus entry with its unique name.
type NamedModel struct {
	Name  string
	Model *Model
}

// FilterFn selects a subset of the corpus.
type FilterFn func(*Model) bool

var (
	registryMu sync.Mutex
	registry   = make(map[string]*Model)
)

// Register adds a model to the corpus under a unique name. It validates the
// model and panics on duplicates; call it from init functions.
func Register(name string, model *Model) {
	model.Validate()
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, found := registry[name]; found {
		exceptions.Panicf("testmodel: duplicate registration of model %q", name)
	}
	registry[name] = model
}

// Models returns the corpus entries accepted by filter (nil accepts all),
// ordered by name.
func Models(filter FilterFn) []NamedModel {
	registryMu.Lock()
	defer registryMu.Unlock()
	named := make([]NamedModel, 0, len(registry))
	for name, model := range registry {
		if filter != nil && !filter(model) {
			continue
		}
		named = append(named, NamedModel{Name: name, Model: model})
	}
	sort.Slice(named, func(i, j int) bool { return named[i].Name < named[j].Name })
	return named
}

// Get returns the registered model with the given name, or nil.
func Get(name string) *Model {
	registryMu.Lock()
	defer registryMu.Unlock()
	return registry[name]
}

// NotExpectFailure accepts models expected to prepare and execute; the filter
// for the general and dynamic-shape test kinds.
func NotExpectFailure(m *Model) bool {
	return !m.ExpectFailure
}

// Quant8Coupling accepts single-operation models with coupled quant8
// operands; the filter for the quantization-coupling test kind.
func Quant8Coupling(m *Model) bool {
	return m.HasQuant8CoupledOperands() && len(m.Operations) == 1
}
