// Package buf contains bounds and endian helpers shared by the vec packages.
//
// Element bytes handed out by regions are opaque; the helpers here give tests, codecs
// and the CLI a fixed little-endian layout for integer elements.
package buf

import "encoding/binary"

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// I32LE reads a little-endian int32 from b. Returns 0 when b is too short.
func I32LE(b []byte) int32 {
	return int32(U32LE(b))
}

// I64LE reads a little-endian int64 from b. Returns 0 when b is too short.
func I64LE(b []byte) int64 {
	return int64(U64LE(b))
}

// PutU32LE writes v into b[0:4]. It is a no-op when b is too short.
func PutU32LE(b []byte, v uint32) {
	if len(b) < 4 {
		return
	}
	binary.LittleEndian.PutUint32(b, v)
}

// PutU64LE writes v into b[0:8]. It is a no-op when b is too short.
func PutU64LE(b []byte, v uint64) {
	if len(b) < 8 {
		return
	}
	binary.LittleEndian.PutUint64(b, v)
}

// PutI32LE writes v into b[0:4]. It is a no-op when b is too short.
func PutI32LE(b []byte, v int32) { PutU32LE(b, uint32(v)) }

// PutI64LE writes v into b[0:8]. It is a no-op when b is too short.
func PutI64LE(b []byte, v int64) { PutU64LE(b, uint64(v)) }

// CompareI32LE is a three-way comparator over two little-endian int32 elements.
func CompareI32LE(a, b []byte) int {
	x, y := I32LE(a), I32LE(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
