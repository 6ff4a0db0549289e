package ustr

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/pivkit/vec/block"
	"github.com/joshuapare/pivkit/vec/region"
)

// InlineCap is the longest text stored inside a String value.
const InlineCap = 9

// String is an immutable ISO-8859-1 string. Short text is inline; long text is held in
// a reverse region whose capacity is a power of two.
type String struct {
	n      int
	inline [InlineCap]byte
	long   *region.Region
}

type options struct {
	alloc block.Allocator
}

// Option configures storage for long strings.
type Option func(*options)

// WithAllocator sets the block source for long strings. The default is block.Heap.
func WithAllocator(a block.Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// FromString converts UTF-8 text to a String. Runes outside ISO-8859-1 fail with
// ErrNotLatin1.
func FromString(s string, opts ...Option) (*String, error) {
	latin, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotLatin1, err)
	}
	return FromLatin1(latin, opts...)
}

// FromLatin1 copies raw ISO-8859-1 bytes into a String.
func FromLatin1(p []byte, opts ...Option) (*String, error) {
	o := options{alloc: block.Heap{}}
	for _, opt := range opts {
		opt(&o)
	}
	s := &String{n: len(p)}
	if len(p) <= InlineCap {
		copy(s.inline[:], p)
		return s, nil
	}
	r := region.New(region.Reverse, region.WithStrategy(region.NewPow2(o.alloc)))
	sp, err := r.Grow(len(p))
	if err != nil {
		return nil, fmt.Errorf("ustr: store %d bytes: %w", len(p), err)
	}
	copy(sp.Bytes(), p)
	s.long = r
	return s, nil
}

// Len returns the length in bytes (one byte per character).
func (s *String) Len() int { return s.n }

// IsInline reports whether the text is stored inside the value.
func (s *String) IsInline() bool { return s.long == nil }

// Capacity returns InlineCap for inline strings and the power-of-two block size
// otherwise.
func (s *String) Capacity() int {
	if s.long == nil {
		return InlineCap
	}
	return s.long.Capacity()
}

// Latin1 returns the raw bytes. The slice aliases the String.
func (s *String) Latin1() []byte {
	if s.long == nil {
		return s.inline[:s.n]
	}
	return s.long.Bytes()
}

// String returns the text as UTF-8.
func (s *String) String() string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(s.Latin1())
	if err != nil {
		// Every byte is a valid ISO-8859-1 character.
		return string(s.Latin1())
	}
	return string(out)
}

// Equal reports whether two strings hold the same bytes.
func (s *String) Equal(o *String) bool {
	return bytes.Equal(s.Latin1(), o.Latin1())
}

// Compare orders two strings bytewise; a prefix sorts first.
func Compare(a, b *String) int {
	return bytes.Compare(a.Latin1(), b.Latin1())
}

// AppendEncode appends the wire form of s to dst.
func (s *String) AppendEncode(dst []byte) []byte {
	dst = binary.AppendUvarint(dst, uint64(s.n))
	return append(dst, s.Latin1()...)
}

// Encode returns the wire form of s.
func (s *String) Encode() []byte {
	return s.AppendEncode(make([]byte, 0, binary.MaxVarintLen64+s.n))
}

// Decode reads one encoded String from p and returns it with the number of bytes
// consumed.
func Decode(p []byte, opts ...Option) (*String, int, error) {
	n, k := binary.Uvarint(p)
	if k <= 0 {
		return nil, 0, fmt.Errorf("%w: bad length prefix", ErrTruncated)
	}
	if n > uint64(len(p)-k) {
		return nil, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, n, len(p)-k)
	}
	end := k + int(n)
	s, err := FromLatin1(p[k:end], opts...)
	if err != nil {
		return nil, 0, err
	}
	return s, end, nil
}

// Release frees the storage of a long string. Inline strings have nothing to free.
func (s *String) Release() error {
	s.n = 0
	if s.long == nil {
		return nil
	}
	r := s.long
	s.long = nil
	return r.Release()
}
