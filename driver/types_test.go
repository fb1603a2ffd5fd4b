// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package driver

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperandTypeStorage(t *testing.T) {
	assert.Equal(t, dtypes.Float32, TensorFloat32.StorageDType())
	assert.Equal(t, dtypes.Uint8, TensorQuant8Asymm.StorageDType())
	assert.Equal(t, dtypes.Int8, TensorQuant8AsymmSigned.StorageDType())
	assert.Equal(t, dtypes.Float16, TensorFloat16.StorageDType())

	assert.Equal(t, uint32(4), TensorFloat32.ElementSize())
	assert.Equal(t, uint32(1), TensorQuant8Asymm.ElementSize())
	assert.Equal(t, uint32(2), TensorFloat16.ElementSize())

	assert.True(t, TensorQuant8Asymm.IsQuantized())
	assert.False(t, TensorFloat32.IsQuantized())
	assert.True(t, Float32.IsScalar())
	assert.False(t, TensorFloat32.IsScalar())
}

func TestAlignedSize(t *testing.T) {
	require.Equal(t, uint32(0), AlignedSize(0))
	require.Equal(t, uint32(8), AlignedSize(1))
	require.Equal(t, uint32(8), AlignedSize(8))
	require.Equal(t, uint32(16), AlignedSize(9))
	require.Equal(t, uint32(16), AlignedSize(16))
}

func TestErrorStatusStrings(t *testing.T) {
	require.Equal(t, "GeneralFailure", StatusGeneralFailure.String())
	require.Equal(t, "OutputInsufficientSize", StatusOutputInsufficientSize.String())
	status, err := ErrorStatusString("None")
	require.NoError(t, err)
	require.Equal(t, StatusNone, status)
}

func TestHeapAllocator(t *testing.T) {
	pool := HeapAllocator{}.Allocate(24)
	require.Equal(t, uint32(24), pool.Size())
	mapped := pool.Map()
	require.Len(t, mapped, 24)
	mapped[0] = 0xab
	require.Equal(t, byte(0xab), pool.Map()[0])
}
