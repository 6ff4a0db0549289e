package search

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/joshuapare/pivkit/internal/buf"
	"github.com/joshuapare/pivkit/vec/region"
)

// ResidualWindow is the element count at which Binary stops bisecting.
const ResidualWindow = 4

var (
	// ErrInvalidRange indicates a key whose size differs from the element size or a
	// window outside the sequence.
	ErrInvalidRange = region.ErrInvalidRange

	// ErrNoComparator indicates a nil Compare.
	ErrNoComparator = errors.New("search: nil comparator")
)

// Sequence is an indexed run of fixed-size elements.
type Sequence interface {
	Size() int
	At(i int) []byte
	ElemSize() int
}

// Compare orders key against elem: negative when key sorts first, zero when equal,
// positive when key sorts after elem.
type Compare func(key, elem []byte) int

// Window is the half-open element range [Lo, Hi).
type Window struct {
	Lo int
	Hi int
}

// Len returns the number of elements in the window.
func (w Window) Len() int { return w.Hi - w.Lo }

// Contains reports whether element i lies in the window.
func (w Window) Contains(i int) bool { return i >= w.Lo && i < w.Hi }

func check(key []byte, seq Sequence, cmp Compare) error {
	if cmp == nil {
		return ErrNoComparator
	}
	if len(key) != seq.ElemSize() {
		return fmt.Errorf("%w: key is %d bytes, elements are %d", ErrInvalidRange, len(key), seq.ElemSize())
	}
	return nil
}

// Binary bisects the sorted sequence until at most ResidualWindow elements remain and
// returns them. If a midpoint compares equal the one-element window holding it is
// returned at once. With duplicate keys any equal element may be found.
//
// When key is absent every element before the window sorts before key and every
// element from Hi on sorts after it.
func Binary(key []byte, seq Sequence, cmp Compare) (Window, error) {
	if err := check(key, seq, cmp); err != nil {
		return Window{}, err
	}
	lo, hi := 0, seq.Size()
	for hi-lo > ResidualWindow {
		mid := lo + (hi-lo)/2
		c := cmp(key, seq.At(mid))
		switch {
		case c == 0:
			return Window{Lo: mid, Hi: mid + 1}, nil
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return Window{Lo: lo, Hi: hi}, nil
}

// Linear scans from the open end toward element 0 while key sorts before the current
// element. It returns the index of the first element visited with cmp >= 0, or -1 when
// key sorts before every element. The insertion point for key is the result plus one.
func Linear(key []byte, seq Sequence, cmp Compare) (int, error) {
	return LinearIn(key, seq, Window{Lo: 0, Hi: seq.Size()}, cmp)
}

// LinearIn is Linear restricted to w. It returns w.Lo-1 when key sorts before every
// element of the window.
func LinearIn(key []byte, seq Sequence, w Window, cmp Compare) (int, error) {
	if err := check(key, seq, cmp); err != nil {
		return 0, err
	}
	if w.Lo < 0 || w.Hi < w.Lo || w.Hi > seq.Size() {
		return 0, fmt.Errorf("%w: window [%d,%d) of %d", ErrInvalidRange, w.Lo, w.Hi, seq.Size())
	}
	i := w.Hi - 1
	for i >= w.Lo && cmp(key, seq.At(i)) < 0 {
		i--
	}
	return i, nil
}

// Find runs Binary and then LinearIn over the residual window. It returns the index of
// the last element that does not sort after key (-1 if none) and whether that element
// equals key.
func Find(key []byte, seq Sequence, cmp Compare) (int, bool, error) {
	w, err := Binary(key, seq, cmp)
	if err != nil {
		return 0, false, err
	}
	i, err := LinearIn(key, seq, w, cmp)
	if err != nil {
		return 0, false, err
	}
	return i, i >= 0 && cmp(key, seq.At(i)) == 0, nil
}

// CompareRanges compares two sequences element by element. When one is a prefix of
// the other the shorter sorts first.
func CompareRanges(a, b Sequence, cmp Compare) int {
	n := min(a.Size(), b.Size())
	for i := 0; i < n; i++ {
		if c := cmp(a.At(i), b.At(i)); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	switch {
	case a.Size() < b.Size():
		return -1
	case a.Size() > b.Size():
		return 1
	default:
		return 0
	}
}

// Int32LE compares little-endian int32 elements.
func Int32LE(key, elem []byte) int { return buf.CompareI32LE(key, elem) }

// Uint32LE compares little-endian uint32 elements.
func Uint32LE(key, elem []byte) int {
	x, y := buf.U32LE(key), buf.U32LE(elem)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Bytewise compares elements as unsigned byte strings.
func Bytewise(key, elem []byte) int { return bytes.Compare(key, elem) }

// Flat is a Sequence over a byte slice holding len(Data)/Elem elements.
type Flat struct {
	Data []byte
	Elem int
}

// Size implements Sequence.
func (f Flat) Size() int {
	if f.Elem <= 0 {
		return 0
	}
	return len(f.Data) / f.Elem
}

// At implements Sequence.
func (f Flat) At(i int) []byte {
	b, ok := buf.Slice(f.Data, i*f.Elem, f.Elem)
	if !ok || i < 0 || i >= f.Size() {
		return nil
	}
	return b
}

// ElemSize implements Sequence.
func (f Flat) ElemSize() int { return f.Elem }

var (
	_ Sequence = (*region.Region)(nil)
	_ Sequence = Flat{}
)
