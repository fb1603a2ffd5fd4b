// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import (
	"github.com/gomlx/nnconform/testmodel"
)

// RunQuantizationCoupling prepares two numerically equivalent encodings of
// the model, the original unsigned asymmetric quant8 form and its signed
// twin, and asserts the driver treats them identically.
//
// Both must prepare, or both must fail to prepare: an asymmetric preparation
// outcome is a hard failure, never a skip. When both prepare, the general
// matrix runs on each in lockstep, and both members of every scenario pair
// must skip or not skip identically.
func (r *Runner) RunQuantizationCoupling(name string, model *testmodel.Model) *Result {
	return run(name, func(res *Result) {
		if !model.HasQuant8CoupledOperands() {
			res.fatalf("model has no coupled quant8 operands; not eligible for quantization coupling")
		}

		prepared := r.prepare(Translate(model, r.Allocator), false, res)
		signedModel := testmodel.ConvertQuant8AsymmOperandsToSigned(model)
		preparedCoupled := r.prepare(Translate(signedModel, r.Allocator), false, res)

		// If the driver couldn't prepare the unsigned encoding, it must also
		// fail to prepare the signed one; then the rest can safely be skipped.
		if prepared == nil {
			if preparedCoupled != nil {
				res.fatalf("asymmetric preparation: unsigned encoding rejected, signed encoding prepared")
			}
			res.noteSkip(skipUnsupportedPreparation)
			return
		}
		if preparedCoupled == nil {
			res.fatalf("asymmetric preparation: unsigned encoding prepared, signed encoding rejected")
		}

		policies := []OutputPolicy{OutputFullySpecified}
		timings := []bool{false, true}
		executors := []Executor{ExecutorAsync, ExecutorSync, ExecutorBurst}
		for _, policy := range policies {
			for _, measureTiming := range timings {
				for _, executor := range executors {
					config := Config{Executor: executor, MeasureTiming: measureTiming, OutputPolicy: policy}
					baseSkipped := r.evaluate(prepared, model, config, res)
					coupledSkipped := r.evaluate(preparedCoupled, signedModel, config, res)
					if baseSkipped != coupledSkipped {
						res.fatalf("%s: asymmetric skip: unsigned skipped=%v, signed skipped=%v",
							config, baseSkipped, coupledSkipped)
					}
					if baseSkipped {
						res.noteSkip(skipUnsupportedExecution)
						return
					}
				}
			}
		}
	})
}
