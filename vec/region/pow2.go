package region

import (
	"fmt"

	"github.com/joshuapare/pivkit/internal/buf"
	"github.com/joshuapare/pivkit/internal/sizemath"
	"github.com/joshuapare/pivkit/vec/block"
)

// Pow2 reallocates to the smallest power-of-two element count that holds the live
// data plus the request. A nil Alloc selects block.Heap.
type Pow2 struct {
	Base
	Alloc block.Allocator
}

var (
	_ Strategy    = (*Pow2)(nil)
	_ GapReserver = (*Pow2)(nil)
)

// NewPow2 returns a power-of-two strategy drawing blocks from alloc.
func NewPow2(alloc block.Allocator) *Pow2 {
	return &Pow2{Alloc: alloc}
}

// Capacity returns the element count and power the strategy would allocate for need
// live bytes of elemSize-byte elements.
func (p *Pow2) Capacity(need, elemSize int) (elems int, power uint, err error) {
	if elemSize <= 0 {
		return 0, 0, fmt.Errorf("%w: element size %d", ErrInvalidRange, elemSize)
	}
	count := need / elemSize
	if need%elemSize != 0 {
		count++
	}
	power, elems, err = sizemath.NextPow2(count)
	if err != nil {
		return 0, 0, err
	}
	return elems, power, nil
}

// Reserve implements Strategy.
func (p *Pow2) Reserve(r *Region, n int) error {
	return reserve(r, n, p.Alloc, p.bytesFor(r))
}

// ReserveGap implements GapReserver.
func (p *Pow2) ReserveGap(r *Region, gap Gap) error {
	return reserveGap(r, gap, p.Alloc, p.bytesFor(r))
}

func (p *Pow2) bytesFor(r *Region) func(need int) (int, error) {
	return func(need int) (int, error) {
		elems, _, err := p.Capacity(need, r.elemSize)
		if err != nil {
			return 0, err
		}
		n, err := buf.ElemBytes(elems, r.elemSize)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrOverflow, err)
		}
		return n, nil
	}
}
