package buffer

import (
	"math"
	"testing"

	"github.com/hupe1980/colmem/internal/endian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedRoundTrip(t *testing.T) {
	b, err := Allocate(32)
	require.NoError(t, err)

	t.Run("int16", func(t *testing.T) {
		require.NoError(t, b.SetInt16(3, math.MinInt16))
		v, err := b.Int16(3)
		require.NoError(t, err)
		assert.Equal(t, int16(math.MinInt16), v)
	})

	t.Run("int32", func(t *testing.T) {
		require.NoError(t, b.SetInt32(5, -123456789))
		v, err := b.Int32(5)
		require.NoError(t, err)
		assert.Equal(t, int32(-123456789), v)
	})

	t.Run("int64", func(t *testing.T) {
		require.NoError(t, b.SetInt64(24, math.MaxInt64))
		v, err := b.Int64(24)
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), v)
	})

	t.Run("float32", func(t *testing.T) {
		require.NoError(t, b.SetFloat32(9, 3.25))
		v, err := b.Float32(9)
		require.NoError(t, err)
		assert.Equal(t, float32(3.25), v)
	})

	t.Run("float64", func(t *testing.T) {
		require.NoError(t, b.SetFloat64(13, -0.5))
		v, err := b.Float64(13)
		require.NoError(t, err)
		assert.Equal(t, -0.5, v)
	})

	t.Run("nan bits survive", func(t *testing.T) {
		require.NoError(t, b.SetFloat64(0, math.NaN()))
		v, err := b.Float64(0)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(v))
	})
}

func TestNativeByteOrder(t *testing.T) {
	b, err := Allocate(4)
	require.NoError(t, err)
	require.NoError(t, b.SetInt32(0, 0x01020304))

	v, err := b.Int32(0)
	require.NoError(t, err)
	assert.Equal(t, int32(0x01020304), v)

	first, err := b.Byte(0)
	require.NoError(t, err)
	if endian.IsBigEndian {
		assert.Equal(t, byte(0x01), first)
	} else {
		assert.Equal(t, byte(0x04), first)
	}
}

func TestAccessThroughSlice(t *testing.T) {
	b, err := Allocate(16)
	require.NoError(t, err)
	s, err := b.Slice(4, 8)
	require.NoError(t, err)

	require.NoError(t, s.SetInt64(0, 42))
	v, err := b.Int64(4)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = s.Int64(1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestAccessOutOfBounds(t *testing.T) {
	b, err := Allocate(8)
	require.NoError(t, err)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"byte past end", func() error { _, err := b.Byte(8); return err }},
		{"negative byte", func() error { _, err := b.Byte(-1); return err }},
		{"int16 straddles end", func() error { _, err := b.Int16(7); return err }},
		{"int32 straddles end", func() error { _, err := b.Int32(5); return err }},
		{"int64 straddles end", func() error { _, err := b.Int64(1); return err }},
		{"float32 straddles end", func() error { _, err := b.Float32(6); return err }},
		{"float64 straddles end", func() error { _, err := b.Float64(4); return err }},
		{"set byte", func() error { return b.SetByte(8, 1) }},
		{"set int16", func() error { return b.SetInt16(7, 1) }},
		{"set int32", func() error { return b.SetInt32(-2, 1) }},
		{"set int64", func() error { return b.SetInt64(1, 1) }},
		{"set float32", func() error { return b.SetFloat32(5, 1) }},
		{"set float64", func() error { return b.SetFloat64(8, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfBounds)

			var be *BoundsError
			assert.ErrorAs(t, err, &be)
			assert.Equal(t, 8, be.Length)
		})
	}

	assert.Equal(t, make([]byte, 8), b.Bytes(), "failed writes leave the buffer untouched")
}
