package buffer

import (
	"github.com/hupe1980/colmem/internal/bounds"
	"github.com/hupe1980/colmem/internal/mem"
	"github.com/hupe1980/colmem/memsize"
)

// getSlice copies len(dst) elements starting at byte offset index into dst.
func getSlice[T mem.Fixed](b *Buffer, index int, dst []T) error {
	n, err := bounds.CheckElements(index, len(dst), int(memsize.Of[T]()), b.size)
	if err != nil {
		return err
	}
	start := b.offset + index
	mem.CopyChunked(mem.AsBytes(dst), b.store.data[start:start+n])
	return nil
}

// setSlice copies src into the buffer starting at byte offset index.
func setSlice[T mem.Fixed](b *Buffer, index int, src []T) error {
	n, err := bounds.CheckElements(index, len(src), int(memsize.Of[T]()), b.size)
	if err != nil {
		return err
	}
	start := b.offset + index
	mem.CopyChunked(b.store.data[start:start+n], mem.AsBytes(src))
	b.Touch()
	return nil
}

// CopyTo copies len(dst) bytes starting at index into dst.
func (b *Buffer) CopyTo(index int, dst []byte) error {
	src, err := b.region(index, len(dst))
	if err != nil {
		return err
	}
	copy(dst, src)
	return nil
}

// SetBytes copies src into the buffer starting at index.
func (b *Buffer) SetBytes(index int, src []byte) error {
	dst, err := b.region(index, len(src))
	if err != nil {
		return err
	}
	copy(dst, src)
	b.Touch()
	return nil
}

// CopyToBuffer copies length bytes from b[index:] into dst[dstIndex:].
// A nil dst is treated as Empty().
func (b *Buffer) CopyToBuffer(index int, dst *Buffer, dstIndex, length int) error {
	if dst == nil {
		dst = empty
	}
	to, err := dst.region(dstIndex, length)
	if err != nil {
		return err
	}
	from, err := b.region(index, length)
	if err != nil {
		return err
	}
	copy(to, from)
	dst.Touch()
	return nil
}

// SetBytesFromBuffer copies length bytes from src[srcIndex:] into b[index:].
func (b *Buffer) SetBytesFromBuffer(index int, src *Buffer, srcIndex, length int) error {
	if src == nil {
		src = empty
	}
	return src.CopyToBuffer(srcIndex, b, index, length)
}

// Int16s fills dst with int16 values starting at byte offset index.
func (b *Buffer) Int16s(index int, dst []int16) error { return getSlice(b, index, dst) }

// Int32s fills dst with int32 values starting at byte offset index.
func (b *Buffer) Int32s(index int, dst []int32) error { return getSlice(b, index, dst) }

// Int64s fills dst with int64 values starting at byte offset index.
func (b *Buffer) Int64s(index int, dst []int64) error { return getSlice(b, index, dst) }

// Float32s fills dst with float32 values starting at byte offset index.
func (b *Buffer) Float32s(index int, dst []float32) error { return getSlice(b, index, dst) }

// Float64s fills dst with float64 values starting at byte offset index.
func (b *Buffer) Float64s(index int, dst []float64) error { return getSlice(b, index, dst) }

// SetInt16s stores src starting at byte offset index.
func (b *Buffer) SetInt16s(index int, src []int16) error { return setSlice(b, index, src) }

// SetInt32s stores src starting at byte offset index.
func (b *Buffer) SetInt32s(index int, src []int32) error { return setSlice(b, index, src) }

// SetInt64s stores src starting at byte offset index.
func (b *Buffer) SetInt64s(index int, src []int64) error { return setSlice(b, index, src) }

// SetFloat32s stores src starting at byte offset index.
func (b *Buffer) SetFloat32s(index int, src []float32) error { return setSlice(b, index, src) }

// SetFloat64s stores src starting at byte offset index.
func (b *Buffer) SetFloat64s(index int, src []float64) error { return setSlice(b, index, src) }
