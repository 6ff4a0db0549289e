package array

import (
	"fmt"

	"github.com/joshuapare/pivkit/internal/sizemath"
	"github.com/joshuapare/pivkit/vec/block"
	"github.com/joshuapare/pivkit/vec/region"
)

// Array is a power-of-two partitioned array of fixed-size elements.
type Array struct {
	r *region.Region
}

type options struct {
	dir   region.Direction
	alloc block.Allocator
}

// Option configures an Array.
type Option func(*options)

// WithDirection sets the growth direction. The default is region.Reverse.
func WithDirection(dir region.Direction) Option {
	return func(o *options) { o.dir = dir }
}

// WithAllocator sets the block source. The default is block.Heap.
func WithAllocator(a block.Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// New creates an empty array of elemSize-byte elements.
func New(elemSize int, opts ...Option) (*Array, error) {
	if elemSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrElemSize, elemSize)
	}
	o := options{dir: region.Reverse, alloc: block.Heap{}}
	for _, opt := range opts {
		opt(&o)
	}
	r := region.New(o.dir,
		region.WithElemSize(elemSize),
		region.WithStrategy(region.NewPow2(o.alloc)),
	)
	return &Array{r: r}, nil
}

// Partback reserves n elements at the open end and returns their span. If the array
// is full it first grows to 2^Log2Ceil(Size()+n) elements. On error the array is
// unchanged.
func (a *Array) Partback(n int) (region.Span, error) {
	sp, err := a.r.Grow(n)
	if err != nil {
		return region.Span{}, fmt.Errorf("array: partback %d: %w", n, err)
	}
	return sp, nil
}

// Inspart opens n zeroed elements at element offset off, 0 <= off <= Size(), and
// returns their span. Elements [0, off) keep their offsets and elements from off on
// move n places toward the open end. With enough capacity only those tail elements
// move; otherwise head and tail are copied around the gap into a new block.
func (a *Array) Inspart(off, n int) (region.Span, error) {
	sp, err := a.r.Insert(off, n)
	if err != nil {
		return region.Span{}, fmt.Errorf("array: inspart %d at %d: %w", n, off, err)
	}
	return sp, nil
}

// Remove closes n elements at element offset off. Capacity is kept.
func (a *Array) Remove(off, n int) error {
	if err := a.r.Remove(off, n); err != nil {
		return fmt.Errorf("array: remove %d at %d: %w", n, off, err)
	}
	return nil
}

// Truncate drops n elements from the open end.
func (a *Array) Truncate(n int) error {
	return a.r.Shrink(n)
}

// Size returns the number of live elements.
func (a *Array) Size() int { return a.r.Size() }

// Capacity returns 2^Power(), or 0 before the first partition.
func (a *Array) Capacity() int { return a.r.Capacity() }

// Power returns the capacity exponent. It is 0 for an array with no storage.
func (a *Array) Power() uint {
	c := a.r.Capacity()
	if c == 0 {
		return 0
	}
	p, _ := sizemath.Log2Floor(uint(c))
	return p
}

// ElemSize returns the element size in bytes.
func (a *Array) ElemSize() int { return a.r.ElemSize() }

// Direction returns the growth direction.
func (a *Array) Direction() region.Direction { return a.r.Direction() }

// At returns element i, or nil when i is out of range.
func (a *Array) At(i int) []byte { return a.r.At(i) }

// Zero returns the byte offset of the fixed boundary within the backing block.
func (a *Array) Zero() int {
	live := a.r.Live()
	if a.r.Direction() == region.Reverse {
		return live.Hi
	}
	return live.Lo
}

// Nth returns the byte offset of the open end within the backing block.
func (a *Array) Nth() int {
	live := a.r.Live()
	if a.r.Direction() == region.Reverse {
		return live.Lo
	}
	return live.Hi
}

// Live returns the span of the live elements.
func (a *Array) Live() region.Span { return a.r.Live() }

// Region exposes the underlying region for read access.
func (a *Array) Region() *region.Region { return a.r }

// Release frees the storage. Every mutator fails with ErrReleased afterwards.
func (a *Array) Release() error { return a.r.Release() }
