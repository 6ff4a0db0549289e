package region

import (
	"fmt"

	"github.com/joshuapare/pivkit/internal/buf"
	"github.com/joshuapare/pivkit/vec/block"
)

// Span is a half-open byte range [Lo, Hi) of a block, in memory order.
// A Span is only valid until the region that handed it out relocates.
type Span struct {
	blk *block.Block
	Lo  int
	Hi  int
}

// NewSpan returns the span [lo, hi) of b.
func NewSpan(b *block.Block, lo, hi int) (Span, error) {
	if b == nil || lo < 0 || hi < lo || hi > b.Len() {
		return Span{}, fmt.Errorf("%w: span [%d,%d) of %d-byte block", ErrInvalidRange, lo, hi, b.Len())
	}
	return Span{blk: b, Lo: lo, Hi: hi}, nil
}

// Block returns the block the span points into.
func (s Span) Block() *block.Block { return s.blk }

// Len returns the span length in bytes.
func (s Span) Len() int { return s.Hi - s.Lo }

// IsZero reports whether s is the zero Span.
func (s Span) IsZero() bool { return s.blk == nil && s.Lo == 0 && s.Hi == 0 }

// Bytes returns the spanned bytes. The slice capacity is clipped to the span.
// Returns nil once the block has been released.
func (s Span) Bytes() []byte {
	b, ok := buf.Slice(s.blk.Bytes(), s.Lo, s.Len())
	if !ok {
		return nil
	}
	return b
}

// Overlaps reports whether s and o share at least one byte of the same block.
func (s Span) Overlaps(o Span) bool {
	return s.blk != nil && s.blk == o.blk && buf.Intersects(s.Lo, s.Hi, o.Lo, o.Hi)
}

// CopySpan copies min(dst.Len(), src.Len()) bytes from src into dst, aligned to the
// live end for dir: low ends for Forward, high ends for Reverse. It returns the byte
// count and whether the spans aliased. Aliased copies have move semantics.
func CopySpan(dir Direction, dst, src Span) (int, bool) {
	d, s := dst.Bytes(), src.Bytes()
	n := min(len(d), len(s))
	if n == 0 {
		return 0, false
	}
	aliased := dst.Overlaps(src)
	if dir == Reverse {
		copy(d[len(d)-n:], s[len(s)-n:])
	} else {
		copy(d[:n], s[:n])
	}
	return n, aliased
}
