// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package conform

import (
	"strings"
	"testing"

	"github.com/gomlx/nnconform/driver"
	"github.com/gomlx/nnconform/driver/sim"
	"github.com/gomlx/nnconform/testmodel"
	"github.com/stretchr/testify/require"
)

func TestQuantizationCouplingOnConformantDriver(t *testing.T) {
	runner := newSimRunner()
	for _, named := range testmodel.Models(testmodel.Quant8Coupling) {
		t.Run(named.Name, func(t *testing.T) {
			res := runner.RunQuantizationCoupling(named.Name, named.Model)
			require.Empty(t, res.Failures)
			require.Equal(t, Pass, res.Verdict)
		})
	}
}

func TestQuantizationCouplingRequiresCoupledOperands(t *testing.T) {
	runner := newSimRunner()
	res := runner.RunQuantizationCoupling(t.Name(), testmodel.Get("add_float32"))
	require.Equal(t, Fail, res.Verdict)
}

// quantRejectingDevice declines to prepare models containing the given quant8
// encoding, while delegating everything else.
type quantRejectingDevice struct {
	driver.Device
	reject []driver.OperandType
}

func (d quantRejectingDevice) PrepareModel(model *driver.Model) (driver.PreparedModel, error) {
	for i := range model.Operands {
		for _, rejected := range d.reject {
			if model.Operands[i].Type == rejected {
				return nil, nil
			}
		}
	}
	return d.Device.PrepareModel(model)
}

// Rejecting only one of the two couplings is inconsistent driver behavior: a
// hard failure, never a skip.
func TestQuantizationCouplingAsymmetricPreparationFails(t *testing.T) {
	model := testmodel.Get("add_quant8")

	for _, tc := range []struct {
		name   string
		reject []driver.OperandType
	}{
		{"signed_rejected", []driver.OperandType{driver.TensorQuant8AsymmSigned}},
		{"unsigned_rejected", []driver.OperandType{driver.TensorQuant8Asymm}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			runner := NewRunner(quantRejectingDevice{Device: sim.New(""), reject: tc.reject})
			res := runner.RunQuantizationCoupling(tc.name, model)
			require.Equal(t, Fail, res.Verdict)
			require.NotEmpty(t, res.Failures)
			require.Contains(t, strings.Join(res.Failures, "\n"), "asymmetric preparation")
		})
	}
}

// Rejecting both couplings is a legitimate lack of capability: a skip.
func TestQuantizationCouplingBothRejectedSkips(t *testing.T) {
	runner := NewRunner(quantRejectingDevice{
		Device: sim.New(""),
		reject: []driver.OperandType{driver.TensorQuant8Asymm, driver.TensorQuant8AsymmSigned},
	})
	res := runner.RunQuantizationCoupling(t.Name(), testmodel.Get("add_quant8"))
	require.Equal(t, Skip, res.Verdict)
	require.Empty(t, res.Failures)
}
