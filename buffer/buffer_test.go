package buffer

import (
	"testing"

	"github.com/hupe1980/colmem/growth"
	"github.com/hupe1980/colmem/internal/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequential(t *testing.T, n int) *Buffer {
	t.Helper()
	b, err := Allocate(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, b.SetByte(i, byte(i+1)))
	}
	return b
}

func TestAllocate(t *testing.T) {
	t.Run("zeroed", func(t *testing.T) {
		b, err := Allocate(16)
		require.NoError(t, err)
		assert.Equal(t, 16, b.Len())
		assert.True(t, b.IsCompact())
		assert.Equal(t, make([]byte, 16), b.Bytes())
	})

	t.Run("zero capacity is canonical empty", func(t *testing.T) {
		b, err := Allocate(0)
		require.NoError(t, err)
		assert.Same(t, Empty(), b)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := Allocate(-1)
		assert.ErrorIs(t, err, ErrNegativeSize)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := Allocate(growth.MaxSize + 1)
		assert.ErrorIs(t, err, ErrTooLarge)
	})
}

func TestWrap(t *testing.T) {
	data := []byte{1, 2, 3}
	b := Wrap(data)
	assert.Equal(t, 3, b.Len())
	assert.True(t, b.IsCompact())

	data[0] = 9
	v, err := b.Byte(0)
	require.NoError(t, err)
	assert.Equal(t, byte(9), v, "wrap must not copy")

	assert.Same(t, Empty(), Wrap(nil))
	assert.Same(t, Empty(), Wrap([]byte{}))
}

func TestWrapRange(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}

	b, err := WrapRange(data, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3, 4}, b.Bytes())
	assert.False(t, b.IsCompact())
	assert.Equal(t, Wrap(data).RetainedSize(), b.RetainedSize())

	_, err = WrapRange(data, 3, 3)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	b, err = WrapRange(data, 2, 0)
	require.NoError(t, err)
	assert.Same(t, Empty(), b)
}

func TestEmpty(t *testing.T) {
	e := Empty()
	assert.Equal(t, 0, e.Len())
	assert.Empty(t, e.Bytes())
	assert.Same(t, e, e.Copy())

	s, err := e.Slice(0, 0)
	require.NoError(t, err)
	assert.Same(t, e, s)

	_, err = e.Byte(0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSlice(t *testing.T) {
	b := sequential(t, 32)

	t.Run("reads through to parent", func(t *testing.T) {
		for offset := 0; offset < 32; offset += 5 {
			for length := 1; offset+length <= 32; length += 7 {
				s, err := b.Slice(offset, length)
				require.NoError(t, err)
				require.Equal(t, length, s.Len())
				for i := 0; i < length; i++ {
					got, err := s.Byte(i)
					require.NoError(t, err)
					want, err := b.Byte(offset + i)
					require.NoError(t, err)
					require.Equal(t, want, got)
				}
			}
		}
	})

	t.Run("zero length is canonical empty", func(t *testing.T) {
		s, err := b.Slice(7, 0)
		require.NoError(t, err)
		assert.Same(t, Empty(), s)

		s, err = b.Slice(0, 0)
		require.NoError(t, err)
		assert.Same(t, Empty(), s)
	})

	t.Run("full range returns receiver", func(t *testing.T) {
		s, err := b.Slice(0, 32)
		require.NoError(t, err)
		assert.Same(t, b, s)
	})

	t.Run("shares storage and retained size", func(t *testing.T) {
		s, err := b.Slice(4, 8)
		require.NoError(t, err)
		assert.Equal(t, b.RetainedSize(), s.RetainedSize())
		assert.False(t, s.IsCompact())

		require.NoError(t, s.SetByte(0, 0xFF))
		v, err := b.Byte(4)
		require.NoError(t, err)
		assert.Equal(t, byte(0xFF), v, "mutation through a view is visible in the parent")
	})

	t.Run("nested slices", func(t *testing.T) {
		outer, err := b.Slice(8, 16)
		require.NoError(t, err)
		inner, err := outer.Slice(2, 4)
		require.NoError(t, err)

		want, err := b.Byte(10)
		require.NoError(t, err)
		got, err := inner.Byte(0)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, b.RetainedSize(), inner.RetainedSize())
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := b.Slice(30, 3)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = b.Slice(-1, 2)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestCopy(t *testing.T) {
	b := sequential(t, 16)

	c := b.Copy()
	assert.True(t, b.Equal(c))
	assert.True(t, c.IsCompact())

	require.NoError(t, b.SetByte(0, 0xAA))
	v, err := c.Byte(0)
	require.NoError(t, err)
	assert.Equal(t, byte(1), v, "copy must not observe source mutations")

	t.Run("copy of slice is compact", func(t *testing.T) {
		parent := sequential(t, 512)
		s, err := parent.Slice(4, 4)
		require.NoError(t, err)
		c := s.Copy()
		assert.True(t, c.IsCompact())
		assert.Equal(t, s.Bytes(), c.Bytes())
		assert.Less(t, c.RetainedSize(), parent.RetainedSize())
	})
}

func TestCopyRange(t *testing.T) {
	b := sequential(t, 16)

	c, err := b.CopyRange(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4, 5}, c.Bytes())

	require.NoError(t, b.SetByte(2, 0))
	v, err := c.Byte(0)
	require.NoError(t, err)
	assert.Equal(t, byte(3), v)

	c, err = b.CopyRange(5, 0)
	require.NoError(t, err)
	assert.Same(t, Empty(), c)

	_, err = b.CopyRange(15, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestEnsureSize(t *testing.T) {
	t.Run("large enough returns receiver", func(t *testing.T) {
		b := sequential(t, 10)
		got, err := b.EnsureSize(10)
		require.NoError(t, err)
		assert.Same(t, b, got)

		got, err = b.EnsureSize(0)
		require.NoError(t, err)
		assert.Same(t, b, got)
	})

	t.Run("grows via policy and zero fills", func(t *testing.T) {
		b := sequential(t, 10)
		grown, err := b.EnsureSize(11)
		require.NoError(t, err)
		assert.NotSame(t, b, grown)
		assert.Equal(t, 64, grown.Len())
		assert.Equal(t, b.Bytes(), grown.Bytes()[:10])
		assert.Equal(t, make([]byte, 54), grown.Bytes()[10:])
		assert.Equal(t, 10, b.Len(), "receiver is untouched")
	})

	t.Run("second call keeps bytes", func(t *testing.T) {
		b := sequential(t, 100)
		first, err := b.EnsureSize(120)
		require.NoError(t, err)
		assert.Equal(t, 150, first.Len())
		require.NoError(t, first.SetByte(149, 7))

		second, err := first.EnsureSize(110)
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, b.Bytes(), second.Bytes()[:100])
		assert.Equal(t, make([]byte, 49), second.Bytes()[100:149])
	})

	t.Run("slice grows from its own view", func(t *testing.T) {
		b := sequential(t, 32)
		s, err := b.Slice(8, 4)
		require.NoError(t, err)

		grown, err := s.EnsureSize(5)
		require.NoError(t, err)
		assert.Equal(t, []byte{9, 10, 11, 12}, grown.Bytes()[:4])
		assert.True(t, grown.IsCompact())

		require.NoError(t, grown.SetByte(0, 0))
		v, err := b.Byte(8)
		require.NoError(t, err)
		assert.Equal(t, byte(9), v, "grown buffer owns fresh storage")
	})

	t.Run("empty grows to minimum", func(t *testing.T) {
		grown, err := Empty().EnsureSize(1)
		require.NoError(t, err)
		assert.Equal(t, 64, grown.Len())
	})

	t.Run("custom policy", func(t *testing.T) {
		b, err := Allocate(4, WithPolicy(growth.ExactFit{}))
		require.NoError(t, err)
		grown, err := b.EnsureSize(9)
		require.NoError(t, err)
		assert.Equal(t, 9, grown.Len())
		assert.Equal(t, growth.Policy(growth.ExactFit{}), grown.Policy())
	})

	t.Run("negative", func(t *testing.T) {
		_, err := sequential(t, 4).EnsureSize(-1)
		assert.ErrorIs(t, err, ErrNegativeSize)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := sequential(t, 4).EnsureSize(growth.MaxSize + 1)
		assert.ErrorIs(t, err, ErrTooLarge)
	})
}

func TestFillAndClear(t *testing.T) {
	b := sequential(t, 16)
	s, err := b.Slice(4, 4)
	require.NoError(t, err)

	s.Fill(0xEE)
	assert.Equal(t, []byte{1, 2, 3, 4, 0xEE, 0xEE, 0xEE, 0xEE, 9}, b.Bytes()[:9])

	s.Clear()
	assert.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0, 9}, b.Bytes()[:9])
}

func TestCompare(t *testing.T) {
	a := Wrap([]byte{1, 2, 3})
	b := Wrap([]byte{1, 2, 4})
	c := Wrap([]byte{1, 2})
	hi := Wrap([]byte{0x80})
	lo := Wrap([]byte{0x7F})

	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 1, a.Compare(c), "longer wins on equal prefix")
	assert.Equal(t, 1, hi.Compare(lo), "bytes compare unsigned")
	assert.Equal(t, 1, a.Compare(nil))
}

func TestCompareRange(t *testing.T) {
	a := Wrap([]byte{9, 1, 2, 3})
	b := Wrap([]byte{1, 2, 3, 9})

	got, err := a.CompareRange(1, 3, b, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = a.CompareRange(0, 2, b, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = a.CompareRange(1, 2, a, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = a.CompareRange(2, 3, b, 0, 3)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = a.CompareRange(0, 1, b, 4, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	t.Run("nil other is empty", func(t *testing.T) {
		got, err := a.CompareRange(0, 2, nil, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		got, err = a.CompareRange(0, 0, nil, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, got)

		_, err = a.CompareRange(0, 1, nil, 0, 1)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestEqual(t *testing.T) {
	a := Wrap([]byte("column"))
	b := Wrap([]byte("column"))
	c := Wrap([]byte("columns"))

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, a.Hash(), b.Hash())

	got, err := c.EqualRange(0, 6, a, 0, 6)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = c.EqualRange(0, 5, a, 0, 6)
	require.NoError(t, err)
	assert.False(t, got, "different lengths are never equal")

	_, err = c.EqualRange(0, 6, a, 1, 6)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	t.Run("nil other is empty", func(t *testing.T) {
		got, err := a.EqualRange(0, 0, nil, 0, 0)
		require.NoError(t, err)
		assert.True(t, got)

		got, err = a.EqualRange(0, 2, nil, 0, 0)
		require.NoError(t, err)
		assert.False(t, got)

		_, err = a.EqualRange(0, 2, nil, 0, 2)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestHash(t *testing.T) {
	t.Run("equal buffers hash equal", func(t *testing.T) {
		data := []byte("the quick brown fox")
		a := Wrap(append([]byte(nil), data...))
		b, err := Allocate(len(data) + 4)
		require.NoError(t, err)
		require.NoError(t, b.SetBytes(2, data))
		view, err := b.Slice(2, len(data))
		require.NoError(t, err)

		require.True(t, a.Equal(view))
		assert.Equal(t, a.Hash(), view.Hash())
	})

	t.Run("cached", func(t *testing.T) {
		calls := 0
		counting := func(data []byte) uint64 {
			calls++
			return uint64(len(data)) + 1
		}
		b := Wrap([]byte{1, 2, 3}, WithHasher(counting))

		assert.Equal(t, uint64(4), b.Hash())
		assert.Equal(t, uint64(4), b.Hash())
		assert.Equal(t, 1, calls)
	})

	t.Run("zero hash recomputes", func(t *testing.T) {
		calls := 0
		zero := func([]byte) uint64 {
			calls++
			return 0
		}
		b := Wrap([]byte{1}, WithHasher(zero))

		b.Hash()
		b.Hash()
		assert.Equal(t, 2, calls)
	})

	t.Run("mutation invalidates", func(t *testing.T) {
		b := Wrap([]byte{1, 2, 3})
		before := b.Hash()
		require.NoError(t, b.SetByte(0, 4))
		assert.NotEqual(t, before, b.Hash())
	})

	t.Run("write through a view invalidates the parent", func(t *testing.T) {
		parent := Wrap([]byte{1, 2, 3, 4})
		parent.Hash()

		view, err := parent.Slice(0, 2)
		require.NoError(t, err)
		require.NoError(t, view.SetByte(0, 9))

		other := Wrap([]byte{9, 2, 3, 4})
		require.True(t, parent.Equal(other))
		assert.Equal(t, other.Hash(), parent.Hash())
	})

	t.Run("write through the parent invalidates views", func(t *testing.T) {
		parent := Wrap([]byte{1, 2, 3, 4, 5, 6})
		left, err := parent.Slice(0, 3)
		require.NoError(t, err)
		right, err := parent.Slice(3, 3)
		require.NoError(t, err)
		left.Hash()
		right.Hash()

		require.NoError(t, parent.SetBytes(2, []byte{7, 8}))
		assert.Equal(t, Wrap([]byte{1, 2, 7}).Hash(), left.Hash())
		assert.Equal(t, Wrap([]byte{8, 5, 6}).Hash(), right.Hash())

		right.Fill(0)
		assert.Equal(t, Wrap([]byte{1, 2, 7, 0, 0, 0}).Hash(), parent.Hash())

		require.NoError(t, left.SetInt16s(0, []int16{0}))
		assert.Equal(t, Wrap([]byte{0, 0, 7, 0, 0, 0}).Hash(), parent.Hash())
	})

	t.Run("touch after raw writes", func(t *testing.T) {
		parent := Wrap([]byte{1, 2, 3, 4})
		view, err := parent.Slice(1, 2)
		require.NoError(t, err)
		parent.Hash()

		view.Bytes()[0] = 0
		view.Touch()
		assert.Equal(t, Wrap([]byte{1, 0, 3, 4}).Hash(), parent.Hash())
	})

	t.Run("range", func(t *testing.T) {
		b := Wrap([]byte{0, 1, 2, 3, 0})
		c := Wrap([]byte{1, 2, 3})

		h, err := b.HashRange(1, 3)
		require.NoError(t, err)
		assert.Equal(t, c.Hash(), h)

		_, err = b.HashRange(3, 3)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Empty().Hash(), Wrap(nil).Hash())
	})
}

func TestRetainedSize(t *testing.T) {
	small, err := Allocate(8)
	require.NoError(t, err)
	large, err := Allocate(8 + 4096)
	require.NoError(t, err)

	assert.Greater(t, Empty().RetainedSize(), int64(0))
	assert.Equal(t, Empty().RetainedSize()+mem.AlignedSize(8), small.RetainedSize())
	assert.Equal(t, int64(4096), large.RetainedSize()-small.RetainedSize())

	t.Run("compact storage exposes no slack", func(t *testing.T) {
		for _, b := range []*Buffer{small, large, small.Copy()} {
			require.True(t, b.IsCompact())
			assert.Equal(t, b.Len(), cap(b.store.data))
			assert.Equal(t, Empty().RetainedSize()+mem.AlignedSize(b.Len()), b.RetainedSize())
		}
	})
}

func TestString(t *testing.T) {
	b := sequential(t, 8)
	s, err := b.Slice(2, 4)
	require.NoError(t, err)
	assert.Contains(t, s.String(), "len: 4, offset: 2, capacity: 8, compact: false")
}
