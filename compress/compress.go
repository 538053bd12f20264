package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/colmem/buffer"
	"github.com/hupe1980/colmem/growth"
	"github.com/hupe1980/colmem/internal/conv"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type identifies the compression algorithm of a frame.
type Type uint8

const (
	// None stores the data uncompressed.
	None Type = 0
	// LZ4 uses LZ4 block compression.
	LZ4 Type = 1
	// ZSTD uses Zstandard block compression.
	ZSTD Type = 2
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// HeaderSize is the size of the frame header in bytes.
const HeaderSize = 12

// maxRatio is the compressed/uncompressed ratio above which frames are stored.
const maxRatio = 0.9

var (
	// ErrUnknownType is returned for an unsupported compression type.
	ErrUnknownType = errors.New("compress: unknown compression type")

	// ErrCorrupt is returned when a frame is truncated or inconsistent.
	ErrCorrupt = errors.New("compress: corrupt frame")
)

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool = sync.Pool{
		New: func() any {
			enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
			return enc
		},
	}
	zstdDecoderPool = sync.Pool{
		New: func() any {
			dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(growth.MaxSize)))
			return dec
		},
	}
)

// Header describes a frame.
type Header struct {
	Type             Type
	UncompressedSize uint32
	CompressedSize   uint32 // 0 means stored
}

// Stored reports whether the frame payload is uncompressed.
func (h Header) Stored() bool {
	return h.CompressedSize == 0
}

// ReadHeader decodes the header of frame.
func ReadHeader(frame *buffer.Buffer) (Header, error) {
	if frame == nil || frame.Len() < HeaderSize {
		return Header{}, fmt.Errorf("%w: frame too small for header", ErrCorrupt)
	}
	p := frame.Bytes()
	h := Header{
		Type:             Type(p[0]),
		UncompressedSize: binary.LittleEndian.Uint32(p[4:]),
		CompressedSize:   binary.LittleEndian.Uint32(p[8:]),
	}
	if h.Type > ZSTD {
		return Header{}, fmt.Errorf("%w: %s", ErrUnknownType, h.Type)
	}
	return h, nil
}

// Compress encodes src into a new frame. src is not modified.
func Compress(src *buffer.Buffer, t Type) (*buffer.Buffer, error) {
	if t > ZSTD {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}

	data := src.Bytes()
	uncompressed, err := conv.IntToUint32(len(data))
	if err != nil {
		return nil, err
	}

	var compressed []byte
	switch t {
	case LZ4:
		compressed, err = compressLZ4(data)
	case ZSTD:
		compressed = compressZSTD(data)
	}
	if err != nil {
		return nil, err
	}

	// If compression doesn't help, store uncompressed
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*maxRatio {
		return frame(t, uncompressed, 0, data)
	}

	size, err := conv.IntToUint32(len(compressed))
	if err != nil {
		return nil, err
	}
	return frame(t, uncompressed, size, compressed)
}

func frame(t Type, uncompressed, compressed uint32, payload []byte) (*buffer.Buffer, error) {
	out, err := buffer.Allocate(HeaderSize + len(payload))
	if err != nil {
		return nil, err
	}
	p := out.Bytes()
	p[0] = byte(t)
	binary.LittleEndian.PutUint32(p[4:], uncompressed)
	binary.LittleEndian.PutUint32(p[8:], compressed)
	copy(p[HeaderSize:], payload)
	return out, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

func compressZSTD(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil)
}

// Decompress restores the Buffer encoded in frame.
func Decompress(frame *buffer.Buffer) (*buffer.Buffer, error) {
	h, err := ReadHeader(frame)
	if err != nil {
		return nil, err
	}

	size, err := conv.Uint32ToInt(h.UncompressedSize)
	if err != nil {
		return nil, err
	}
	p := frame.Bytes()[HeaderSize:]

	if h.Stored() {
		if len(p) < size {
			return nil, fmt.Errorf("%w: stored payload has %d of %d bytes", ErrCorrupt, len(p), size)
		}
		return buffer.Wrap(p[:size]).Copy(), nil
	}

	compressedSize, err := conv.Uint32ToInt(h.CompressedSize)
	if err != nil {
		return nil, err
	}
	if len(p) < compressedSize {
		return nil, fmt.Errorf("%w: payload has %d of %d bytes", ErrCorrupt, len(p), compressedSize)
	}
	p = p[:compressedSize]

	out, err := buffer.Allocate(size)
	if err != nil {
		return nil, err
	}
	dst := out.Bytes()

	switch h.Type {
	case LZ4:
		n, err := lz4.UncompressBlock(p, dst)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if n != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
	case ZSTD:
		if err := checkContentSize(p, size); err != nil {
			return nil, err
		}

		dec := zstdDecoderPool.Get().(*zstd.Decoder)
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(p, dst[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if len(decoded) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		copy(dst, decoded)
	default:
		return nil, fmt.Errorf("%w: compressed frame of type %s", ErrCorrupt, h.Type)
	}

	return out, nil
}

// checkContentSize rejects a zstd payload whose frame header does not declare
// exactly size decoded bytes, before any decoding work is done.
func checkContentSize(p []byte, size int) error {
	var fh zstd.Header
	if err := fh.Decode(p); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if fh.Skippable || !fh.HasFCS || fh.FrameContentSize != uint64(size) { //nolint:gosec // size comes from a uint32 header field
		return fmt.Errorf("%w: zstd content size does not match header size %d", ErrCorrupt, size)
	}
	return nil
}
