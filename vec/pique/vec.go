package pique

import (
	"errors"
	"fmt"

	"github.com/joshuapare/pivkit/internal/buf"
	"github.com/joshuapare/pivkit/vec/region"
)

var (
	// ErrEmpty indicates Pop on an empty vector.
	ErrEmpty = errors.New("pique: empty")

	// ErrIndex indicates an element index outside the vector.
	ErrIndex = errors.New("pique: index out of range")
)

// Vec is a growable vector of T backed by a region.
type Vec[T any] struct {
	r     *region.Region
	codec Codec[T]
}

// New creates an empty vector growing in dir. Region options (a strategy, for instance)
// are passed through; the element size always comes from codec.
func New[T any](dir region.Direction, codec Codec[T], opts ...region.Option) *Vec[T] {
	opts = append(opts, region.WithElemSize(codec.Size()))
	return &Vec[T]{r: region.New(dir, opts...), codec: codec}
}

// NewFixed creates a vector over caller storage. Push fails with
// region.ErrCapacityExceeded once storage is full.
func NewFixed[T any](dir region.Direction, codec Codec[T], storage []byte) *Vec[T] {
	return &Vec[T]{r: region.NewFixed(dir, storage, codec.Size()), codec: codec}
}

// Push appends v at the open end.
func (v *Vec[T]) Push(x T) error {
	sp, err := v.r.Grow(1)
	if err != nil {
		return fmt.Errorf("pique: push: %w", err)
	}
	v.codec.Put(sp.Bytes(), x)
	return nil
}

// Pop removes and returns the element at the open end.
func (v *Vec[T]) Pop() (T, error) {
	var zero T
	n := v.r.Size()
	if n == 0 {
		if v.r.Released() {
			return zero, region.ErrReleased
		}
		return zero, ErrEmpty
	}
	x := v.codec.Get(v.r.At(n - 1))
	if err := v.r.Shrink(1); err != nil {
		return zero, err
	}
	return x, nil
}

// Peek returns the element at the open end without removing it.
func (v *Vec[T]) Peek() (T, error) {
	var zero T
	n := v.r.Size()
	if n == 0 {
		return zero, ErrEmpty
	}
	return v.codec.Get(v.r.At(n - 1)), nil
}

// At returns element i in push order.
func (v *Vec[T]) At(i int) (T, error) {
	b := v.r.At(i)
	if b == nil {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrIndex, i, v.r.Size())
	}
	return v.codec.Get(b), nil
}

// Set overwrites element i.
func (v *Vec[T]) Set(i int, x T) error {
	b := v.r.At(i)
	if b == nil {
		return fmt.Errorf("%w: %d of %d", ErrIndex, i, v.r.Size())
	}
	v.codec.Put(b, x)
	return nil
}

// Insert places x at index i, 0 <= i <= Len(), shifting later elements by one.
func (v *Vec[T]) Insert(i int, x T) error {
	if i < 0 || i > v.r.Size() {
		return fmt.Errorf("%w: insert at %d of %d", ErrIndex, i, v.r.Size())
	}
	sp, err := v.r.Insert(i, 1)
	if err != nil {
		return fmt.Errorf("pique: insert: %w", err)
	}
	v.codec.Put(sp.Bytes(), x)
	return nil
}

// Delete removes element i, shifting later elements back by one.
func (v *Vec[T]) Delete(i int) error {
	if i < 0 || i >= v.r.Size() {
		return fmt.Errorf("%w: delete %d of %d", ErrIndex, i, v.r.Size())
	}
	return v.r.Remove(i, 1)
}

// Reserve makes room for n more elements without further reallocation.
func (v *Vec[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: reserve %d", region.ErrInvalidRange, n)
	}
	free := v.r.Capacity() - v.r.Size()
	if n <= free {
		return nil
	}
	nb, ok := buf.MulOverflowSafe(n, v.codec.Size())
	if !ok {
		return fmt.Errorf("%w: reserve %d elements", region.ErrOverflow, n)
	}
	return v.r.Reserve(nb)
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return v.r.Size() }

// Cap returns the number of elements that fit without reallocating.
func (v *Vec[T]) Cap() int { return v.r.Capacity() }

// Values returns a copy of the elements in push order.
func (v *Vec[T]) Values() []T {
	out := make([]T, v.r.Size())
	for i := range out {
		out[i] = v.codec.Get(v.r.At(i))
	}
	return out
}

// Region exposes the backing region, e.g. for search.
func (v *Vec[T]) Region() *region.Region { return v.r }

// Release frees the storage.
func (v *Vec[T]) Release() error { return v.r.Release() }
