// Package compress shrinks sealed column data held in a Buffer.
//
// Compress encodes a Buffer into a self-describing frame and Decompress
// restores it. Two codecs are available:
//
//   - LZ4: fast, good for hot data that is decompressed often.
//   - Zstandard: better ratio, good for cold data.
//
// # Frame Format
//
//	[type u8][pad 3][uncompressed u32 LE][compressed u32 LE][payload...]
//
// A compressed size of zero marks a stored frame: the payload is the raw
// input. Frames fall back to stored mode whenever the codec does not reach
// a compression ratio of 0.9.
package compress
