package buffer

import (
	"errors"
	"fmt"
	"io"
)

// SetBytesFrom reads exactly n bytes from r directly into the buffer at
// index, without an intermediate copy. On a short read the bytes received so
// far remain written and an error wrapping ErrShortRead is returned.
func (b *Buffer) SetBytesFrom(index int, r io.Reader, n int) error {
	dst, err := b.region(index, n)
	if err != nil {
		return err
	}
	b.Touch()
	read, err := io.ReadFull(r, dst)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, read, n)
		}
		return err
	}
	return nil
}

// WriteBytesTo writes n bytes starting at index to w.
func (b *Buffer) WriteBytesTo(index int, w io.Writer, n int) error {
	src, err := b.region(index, n)
	if err != nil {
		return err
	}
	written, err := w.Write(src)
	if err != nil {
		return err
	}
	if written != n {
		return io.ErrShortWrite
	}
	return nil
}
