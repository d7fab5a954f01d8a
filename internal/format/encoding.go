package format

import (
	"encoding/binary"
	"math"
)

// Big-endian put helpers over a buffer at a fixed offset, used to build
// section fixtures. Reads go through psd/cursor.

// PutU32 writes a uint32 value to the buffer at the specified offset in big-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:off+4], v)
}

// PutI32 writes an int32 value to the buffer at the specified offset in big-endian format.
func PutI32(b []byte, off int, v int32) {
	binary.BigEndian.PutUint32(b[off:off+4], uint32(v))
}

// PutF64 writes a float64 value to the buffer at the specified offset in big-endian format.
func PutF64(b []byte, off int, v float64) {
	binary.BigEndian.PutUint64(b[off:off+8], math.Float64bits(v))
}

// PadTo rounds n up to the next multiple of align.
func PadTo(n, align int) int {
	if align <= 1 {
		return n
	}
	if r := n % align; r != 0 {
		return n + align - r
	}
	return n
}
