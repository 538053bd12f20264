package buffer

import (
	"math"

	"github.com/hupe1980/colmem/internal/endian"
)

const (
	sizeOfByte  = 1
	sizeOfShort = 2
	sizeOfInt   = 4
	sizeOfLong  = 8
)

// Byte returns the byte at index.
func (b *Buffer) Byte(index int) (byte, error) {
	p, err := b.region(index, sizeOfByte)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// Int16 returns the native-order int16 at byte offset index.
func (b *Buffer) Int16(index int) (int16, error) {
	p, err := b.region(index, sizeOfShort)
	if err != nil {
		return 0, err
	}
	return int16(endian.Native.Uint16(p)), nil //nolint:gosec // bit reinterpretation
}

// Int32 returns the native-order int32 at byte offset index.
func (b *Buffer) Int32(index int) (int32, error) {
	p, err := b.region(index, sizeOfInt)
	if err != nil {
		return 0, err
	}
	return int32(endian.Native.Uint32(p)), nil //nolint:gosec // bit reinterpretation
}

// Int64 returns the native-order int64 at byte offset index.
func (b *Buffer) Int64(index int) (int64, error) {
	p, err := b.region(index, sizeOfLong)
	if err != nil {
		return 0, err
	}
	return int64(endian.Native.Uint64(p)), nil //nolint:gosec // bit reinterpretation
}

// Float32 returns the native-order float32 at byte offset index.
func (b *Buffer) Float32(index int) (float32, error) {
	p, err := b.region(index, sizeOfInt)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(endian.Native.Uint32(p)), nil
}

// Float64 returns the native-order float64 at byte offset index.
func (b *Buffer) Float64(index int) (float64, error) {
	p, err := b.region(index, sizeOfLong)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(endian.Native.Uint64(p)), nil
}

// SetByte stores value at index.
func (b *Buffer) SetByte(index int, value byte) error {
	p, err := b.region(index, sizeOfByte)
	if err != nil {
		return err
	}
	p[0] = value
	b.Touch()
	return nil
}

// SetInt16 stores value in native order at byte offset index.
func (b *Buffer) SetInt16(index int, value int16) error {
	p, err := b.region(index, sizeOfShort)
	if err != nil {
		return err
	}
	endian.Native.PutUint16(p, uint16(value)) //nolint:gosec // bit reinterpretation
	b.Touch()
	return nil
}

// SetInt32 stores value in native order at byte offset index.
func (b *Buffer) SetInt32(index int, value int32) error {
	p, err := b.region(index, sizeOfInt)
	if err != nil {
		return err
	}
	endian.Native.PutUint32(p, uint32(value)) //nolint:gosec // bit reinterpretation
	b.Touch()
	return nil
}

// SetInt64 stores value in native order at byte offset index.
func (b *Buffer) SetInt64(index int, value int64) error {
	p, err := b.region(index, sizeOfLong)
	if err != nil {
		return err
	}
	endian.Native.PutUint64(p, uint64(value)) //nolint:gosec // bit reinterpretation
	b.Touch()
	return nil
}

// SetFloat32 stores value in native order at byte offset index.
func (b *Buffer) SetFloat32(index int, value float32) error {
	p, err := b.region(index, sizeOfInt)
	if err != nil {
		return err
	}
	endian.Native.PutUint32(p, math.Float32bits(value))
	b.Touch()
	return nil
}

// SetFloat64 stores value in native order at byte offset index.
func (b *Buffer) SetFloat64(index int, value float64) error {
	p, err := b.region(index, sizeOfLong)
	if err != nil {
		return err
	}
	endian.Native.PutUint64(p, math.Float64bits(value))
	b.Touch()
	return nil
}
