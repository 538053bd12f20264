// Package endian selects the platform's native byte order.
//
// Buffers encode multi-byte values in native order for both reads and
// writes. Bytes produced on one architecture are not guaranteed to decode
// identically on another without an explicit conversion step.
package endian

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// Native is the byte order of the running platform.
var Native = order(cpu.IsBigEndian)

// IsBigEndian reports whether the platform stores the most significant byte first.
var IsBigEndian = cpu.IsBigEndian

func order(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
