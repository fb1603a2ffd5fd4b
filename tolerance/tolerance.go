// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package tolerance implements the default numeric comparator of the
// conformance harness: per-type absolute/relative tolerances for floating
// point outputs and unit slack for quantized outputs.
//
// It satisfies the conform.Comparator interface and can be replaced wholesale
// by drivers with their own accuracy policy.
package tolerance

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/nnconform/testmodel"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// maxReportedMismatches caps how many individual element mismatches one
// Compare error enumerates.
const maxReportedMismatches = 10

// Comparator holds the tolerance policy. Fields may be adjusted before first
// use; the zero value rejects everything, so use New.
type Comparator struct {
	// AbsFloat32 and RelFloat32 bound float32 drift as
	// |expected-actual| <= Abs + Rel*|expected|.
	AbsFloat32 float64
	RelFloat32 float64

	// AbsRelaxed and RelRelaxed apply to float32 outputs of relaxed-precision
	// models and to float16 outputs: five units of float16 precision.
	AbsRelaxed float64
	RelRelaxed float64

	// QuantSlack is the permitted distance, in quantized units, for quantized
	// integer outputs.
	QuantSlack int64
}

// New returns the default tolerance policy.
func New() *Comparator {
	return &Comparator{
		AbsFloat32: 1e-5,
		RelFloat32: 1e-5,
		AbsRelaxed: 5 * 0.0009765625, // 5 ULP of fp16 around 1.0
		RelRelaxed: 5 * 0.0009765625,
		QuantSlack: 1,
	}
}

// Compare checks every output buffer against the model's golden data. It
// returns nil when all elements are within tolerance, and otherwise an error
// enumerating the first mismatches and the total count.
func (c *Comparator) Compare(model *testmodel.Model, outputs [][]byte) error {
	if len(outputs) != len(model.OutputIndexes) {
		return errors.Errorf("got %d output buffers, want %d", len(outputs), len(model.OutputIndexes))
	}
	var mismatches []string
	total := 0
	for i := range outputs {
		op := model.Output(i)
		expected := op.Data
		actual := outputs[i]
		if len(actual) != len(expected) {
			mismatches = append(mismatches,
				fmt.Sprintf("output %d: got %d bytes, want %d", i, len(actual), len(expected)))
			total++
			continue
		}
		n := c.compareOperand(i, op, expected, actual, model.IsRelaxed, &mismatches)
		total += n
	}
	if total == 0 {
		return nil
	}
	return errors.Errorf("%d mismatched elements:\n%s", total, strings.Join(mismatches, "\n"))
}

// compareOperand returns the number of mismatched elements, appending details
// for the first ones.
func (c *Comparator) compareOperand(output int, op *testmodel.Operand, expected, actual []byte, relaxed bool, details *[]string) int {
	report := func(element int, format string, args ...any) {
		if len(*details) < maxReportedMismatches {
			*details = append(*details,
				fmt.Sprintf("output %d element %d: %s", output, element, fmt.Sprintf(format, args...)))
		}
	}

	count := 0
	switch op.Type.StorageDType() {
	case dtypes.Float32:
		abs, rel := c.AbsFloat32, c.RelFloat32
		if relaxed {
			abs, rel = c.AbsRelaxed, c.RelRelaxed
		}
		for e := 0; e < len(expected)/4; e++ {
			want := math.Float32frombits(binary.LittleEndian.Uint32(expected[4*e:]))
			got := math.Float32frombits(binary.LittleEndian.Uint32(actual[4*e:]))
			if !withinFloat(float64(want), float64(got), abs, rel) {
				report(e, "got %g, want %g (abs %g, rel %g)", got, want, abs, rel)
				count++
			}
		}
	case dtypes.Float16:
		for e := 0; e < len(expected)/2; e++ {
			want := float64(float16.Frombits(binary.LittleEndian.Uint16(expected[2*e:])).Float32())
			got := float64(float16.Frombits(binary.LittleEndian.Uint16(actual[2*e:])).Float32())
			if !withinFloat(want, got, c.AbsRelaxed, c.RelRelaxed) {
				report(e, "got %g, want %g (abs %g, rel %g)", got, want, c.AbsRelaxed, c.RelRelaxed)
				count++
			}
		}
	case dtypes.Uint8:
		for e := range expected {
			if absDiff(int64(expected[e]), int64(actual[e])) > c.QuantSlack {
				report(e, "got %d, want %d (quant slack %d)", actual[e], expected[e], c.QuantSlack)
				count++
			}
		}
	case dtypes.Int8:
		for e := range expected {
			if absDiff(int64(int8(expected[e])), int64(int8(actual[e]))) > c.QuantSlack {
				report(e, "got %d, want %d (quant slack %d)", int8(actual[e]), int8(expected[e]), c.QuantSlack)
				count++
			}
		}
	case dtypes.Int16:
		for e := 0; e < len(expected)/2; e++ {
			want := int64(int16(binary.LittleEndian.Uint16(expected[2*e:])))
			got := int64(int16(binary.LittleEndian.Uint16(actual[2*e:])))
			if absDiff(want, got) > c.QuantSlack {
				report(e, "got %d, want %d (quant slack %d)", got, want, c.QuantSlack)
				count++
			}
		}
	case dtypes.Uint16:
		for e := 0; e < len(expected)/2; e++ {
			want := int64(binary.LittleEndian.Uint16(expected[2*e:]))
			got := int64(binary.LittleEndian.Uint16(actual[2*e:]))
			if absDiff(want, got) > c.QuantSlack {
				report(e, "got %d, want %d (quant slack %d)", got, want, c.QuantSlack)
				count++
			}
		}
	default:
		// Int32, Uint32, Bool: exact byte-wise comparison per element.
		size := int(op.Type.ElementSize())
		for e := 0; e < len(expected)/size; e++ {
			if !bytesEqual(expected[e*size:(e+1)*size], actual[e*size:(e+1)*size]) {
				report(e, "got % x, want % x", actual[e*size:(e+1)*size], expected[e*size:(e+1)*size])
				count++
			}
		}
	}
	return count
}

func withinFloat(want, got, abs, rel float64) bool {
	if math.IsNaN(want) {
		return math.IsNaN(got)
	}
	return math.Abs(want-got) <= abs+rel*math.Abs(want)
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}

func bytesEqual(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
