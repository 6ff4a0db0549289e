package region

import (
	"fmt"

	"github.com/joshuapare/pivkit/internal/buf"
	"github.com/joshuapare/pivkit/vec/block"
)

// Strategy is the growth and copy policy of a region. It is bound once per region
// and every method receives the region it acts on.
type Strategy interface {
	// Distance returns the signed byte count from a to b in r's direction.
	Distance(r *Region, a, b int) int

	// Advance moves r's end toward capacity-end by min(n, free) bytes and returns
	// the granted span. It never exceeds capacity.
	Advance(r *Region, n int) (Span, error)

	// Copy moves bytes from src into dst aligned to r's live end and reports
	// whether the spans aliased.
	Copy(r *Region, dst, src Span) (int, bool)

	// Reserve guarantees at least n free bytes beyond r's end. On error r is unchanged.
	Reserve(r *Region, n int) error
}

// GapReserver is implemented by reallocating strategies that can open a gap while
// relocating, so insertions that outgrow the block copy the live data only once.
type GapReserver interface {
	ReserveGap(r *Region, gap Gap) error
}

// Base implements the direction-dependent parts of Strategy. Custom strategies embed
// it and provide Reserve.
type Base struct{}

// Distance implements Strategy.
func (Base) Distance(r *Region, a, b int) int {
	return r.dir.Distance(a, b)
}

// Advance implements Strategy.
func (Base) Advance(r *Region, n int) (Span, error) {
	if r.released {
		return Span{}, ErrReleased
	}
	if n < 0 {
		return Span{}, fmt.Errorf("%w: advance by %d", ErrInvalidRange, n)
	}
	n = min(n, r.free())
	old := r.end
	r.end = r.dir.Step(r.end, n)
	return r.memSpan(old, r.end), nil
}

// Copy implements Strategy.
func (Base) Copy(r *Region, dst, src Span) (int, bool) {
	return CopySpan(r.dir, dst, src)
}

// reserve is the shared Reserve of the reallocating strategies. capacity maps the
// required live byte count to the byte size of the replacement block.
func reserve(r *Region, n int, alloc block.Allocator, capacity func(int) (int, error)) error {
	if r.released {
		return ErrReleased
	}
	if n < 0 {
		return fmt.Errorf("%w: reserve %d bytes", ErrInvalidRange, n)
	}
	if n <= r.free() {
		return nil
	}
	return relocateFor(r, n, alloc, capacity, Gap{})
}

// reserveGap opens gap in place when the block has room and relocates once otherwise.
func reserveGap(r *Region, gap Gap, alloc block.Allocator, capacity func(int) (int, error)) error {
	if r.released {
		return ErrReleased
	}
	if err := r.checkGap(gap); err != nil {
		return err
	}
	if gap.Len <= r.free() {
		return r.openGap(gap)
	}
	return relocateFor(r, gap.Len, alloc, capacity, gap)
}

func relocateFor(r *Region, n int, alloc block.Allocator, capacity func(int) (int, error), gap Gap) error {
	need, ok := buf.AddOverflowSafe(r.Len(), n)
	if !ok {
		return fmt.Errorf("%w: %d + %d bytes", ErrOverflow, r.Len(), n)
	}
	capBytes, err := capacity(need)
	if err != nil {
		return fmt.Errorf("region: size %d bytes: %w", need, err)
	}
	if alloc == nil {
		alloc = block.Heap{}
	}
	nb, err := alloc.Allocate(capBytes)
	if err != nil {
		return fmt.Errorf("region: reserve %d bytes: %w", capBytes, err)
	}
	if err := r.Relocate(nb, gap); err != nil {
		if r.blk != nb {
			_ = nb.Release()
		}
		return err
	}
	return nil
}
