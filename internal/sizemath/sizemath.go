// Package sizemath holds the integer log2 and power-of-two helpers used to pick
// allocation sizes before every reallocation.
//
// All functions are pure. Values that cannot be represented are reported through
// ErrOverflow rather than wrapping.
package sizemath

import (
	"errors"
	"math/bits"

	"github.com/joshuapare/pivkit/internal/buf"
)

// WordSize is the machine word size in bytes.
const WordSize = bits.UintSize / 8

var (
	// ErrZero indicates a log2 of zero was requested.
	ErrZero = errors.New("sizemath: log2 of zero")

	// ErrOverflow indicates the result does not fit in a machine word.
	ErrOverflow = errors.New("sizemath: result overflows machine word")
)

// Log2Floor returns the largest k with 2^k <= x.
//
//	Log2Floor(1)   = 0
//	Log2Floor(513) = 9
func Log2Floor(x uint) (uint, error) {
	if x == 0 {
		return 0, ErrZero
	}
	return uint(bits.Len(x)) - 1, nil
}

// Log2Ceil returns the smallest k with 2^k >= x.
//
//	Log2Ceil(1)   = 0
//	Log2Ceil(512) = 9
//	Log2Ceil(513) = 10
func Log2Ceil(x uint) (uint, error) {
	if x == 0 {
		return 0, ErrZero
	}
	// x-1 clears the top bit exactly when x is a power of two.
	return uint(bits.Len(x - 1)), nil
}

// PowerOfTwo returns 2^k.
func PowerOfTwo(k uint) (uint, error) {
	if k >= bits.UintSize {
		return 0, ErrOverflow
	}
	return uint(1) << k, nil
}

// IsPowerOfTwo reports whether x is a power of two. Zero is not.
func IsPowerOfTwo(x uint) bool {
	return x != 0 && x&(x-1) == 0
}

// AlignWord rounds n up to the next multiple of WordSize.
func AlignWord(n int) (int, error) {
	if n < 0 {
		return 0, ErrOverflow
	}
	sum, ok := buf.AddOverflowSafe(n, WordSize-1)
	if !ok {
		return 0, ErrOverflow
	}
	return sum &^ (WordSize - 1), nil
}

// Geometric returns ceil(n * num / den), the size n scaled by a growth factor.
func Geometric(n, num, den int) (int, error) {
	if n < 0 || num <= 0 || den <= 0 {
		return 0, ErrOverflow
	}
	p, ok := buf.MulOverflowSafe(n, num)
	if !ok {
		return 0, ErrOverflow
	}
	q := p / den
	if p%den != 0 {
		q++
	}
	return q, nil
}

// NextPow2 returns the smallest power of two >= n together with its exponent.
// NextPow2(0) is 2^0.
func NextPow2(n int) (power uint, size int, err error) {
	if n < 0 {
		return 0, 0, ErrOverflow
	}
	if n <= 1 {
		return 0, 1, nil
	}
	power, err = Log2Ceil(uint(n))
	if err != nil {
		return 0, 0, err
	}
	// The result must also fit in a signed int.
	if power >= bits.UintSize-1 {
		return 0, 0, ErrOverflow
	}
	return power, 1 << power, nil
}
