// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import "github.com/gomlx/nnconform/testmodel"

// Comparator checks executed output data against the model's golden outputs
// under an opaque numeric tolerance policy.
//
// The default implementation is in package tolerance. Compare returns a nil
// error when every output is close enough, and otherwise an error describing
// the mismatches.
type Comparator interface {
	Compare(model *testmodel.Model, outputs [][]byte) error
}
