package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative sizes, returning ok = false when the
// product would overflow int or either operand is negative.
// Every count * elemSize computation in the vec packages goes through here.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// ElemBytes converts an element count into a byte count for elements of elemSize bytes.
//
//	n, err := buf.ElemBytes(count, 8)
//	if err != nil {
//	    return fmt.Errorf("grow: %w", err)
//	}
func ElemBytes(count, elemSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize <= 0 {
		return 0, fmt.Errorf("non-positive element size: %d", elemSize)
	}
	n, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	return n, nil
}

// CheckSpan validates that count elements of elemSize bytes starting at offset fit in a
// range of limit bytes. Returns the end offset if valid, or an error describing the
// specific failure (overflow or out of bounds).
func CheckSpan(limit, offset, count, elemSize int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	size, err := ElemBytes(count, elemSize)
	if err != nil {
		return 0, err
	}
	end, ok := AddOverflowSafe(offset, size)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, size)
	}
	if end > limit {
		return 0, fmt.Errorf("bounds: end=%d > limit=%d", end, limit)
	}
	return end, nil
}

// Intersects reports whether the half-open index ranges [aLo,aHi) and [bLo,bHi) share
// at least one index. Empty ranges never intersect.
func Intersects(aLo, aHi, bLo, bHi int) bool {
	if aLo >= aHi || bLo >= bHi {
		return false
	}
	return aLo < bHi && bLo < aHi
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
// The result's capacity is clipped so appends cannot spill into neighbouring data.
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
