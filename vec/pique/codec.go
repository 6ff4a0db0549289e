package pique

import "github.com/joshuapare/pivkit/internal/buf"

// Codec maps values of T to and from a fixed number of bytes.
type Codec[T any] interface {
	Size() int
	Put(dst []byte, v T)
	Get(src []byte) T
}

type uint32Codec struct{}

func (uint32Codec) Size() int                { return 4 }
func (uint32Codec) Put(dst []byte, v uint32) { buf.PutU32LE(dst, v) }
func (uint32Codec) Get(src []byte) uint32    { return buf.U32LE(src) }

type int32Codec struct{}

func (int32Codec) Size() int               { return 4 }
func (int32Codec) Put(dst []byte, v int32) { buf.PutI32LE(dst, v) }
func (int32Codec) Get(src []byte) int32    { return buf.I32LE(src) }

type uint64Codec struct{}

func (uint64Codec) Size() int                { return 8 }
func (uint64Codec) Put(dst []byte, v uint64) { buf.PutU64LE(dst, v) }
func (uint64Codec) Get(src []byte) uint64    { return buf.U64LE(src) }

type int64Codec struct{}

func (int64Codec) Size() int               { return 8 }
func (int64Codec) Put(dst []byte, v int64) { buf.PutI64LE(dst, v) }
func (int64Codec) Get(src []byte) int64    { return buf.I64LE(src) }

type byteCodec struct{}

func (byteCodec) Size() int { return 1 }

func (byteCodec) Put(dst []byte, v byte) {
	if len(dst) > 0 {
		dst[0] = v
	}
}

func (byteCodec) Get(src []byte) byte {
	if len(src) == 0 {
		return 0
	}
	return src[0]
}

// Little-endian codecs for the fixed-width integer types.
var (
	Uint32 Codec[uint32] = uint32Codec{}
	Int32  Codec[int32]  = int32Codec{}
	Uint64 Codec[uint64] = uint64Codec{}
	Int64  Codec[int64]  = int64Codec{}
	Byte   Codec[byte]   = byteCodec{}
)
