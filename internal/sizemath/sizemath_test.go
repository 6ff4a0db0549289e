package sizemath

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog2Floor(t *testing.T) {
	tests := []struct {
		in   uint
		want uint
	}{
		{1, 0}, {2, 1}, {3, 1}, {4, 2}, {513, 9}, {1 << 20, 20}, {math.MaxUint, bits.UintSize - 1},
	}
	for _, tc := range tests {
		got, err := Log2Floor(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Log2Floor(%d)", tc.in)
	}

	_, err := Log2Floor(0)
	require.ErrorIs(t, err, ErrZero)
}

func TestLog2Ceil(t *testing.T) {
	tests := []struct {
		in   uint
		want uint
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {129, 8}, {512, 9}, {513, 10},
	}
	for _, tc := range tests {
		got, err := Log2Ceil(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Log2Ceil(%d)", tc.in)
	}

	_, err := Log2Ceil(0)
	require.ErrorIs(t, err, ErrZero)
}

// TestLog2_Bracket checks 2^floor <= x <= 2^ceil for a sweep of inputs.
func TestLog2_Bracket(t *testing.T) {
	for x := uint(1); x < 5000; x++ {
		f, err := Log2Floor(x)
		require.NoError(t, err)
		c, err := Log2Ceil(x)
		require.NoError(t, err)

		pf, err := PowerOfTwo(f)
		require.NoError(t, err)
		pc, err := PowerOfTwo(c)
		require.NoError(t, err)

		require.LessOrEqual(t, pf, x)
		require.GreaterOrEqual(t, pc, x)
		if IsPowerOfTwo(x) {
			require.Equal(t, f, c, "floor and ceil agree on powers of two (x=%d)", x)
		} else {
			require.Equal(t, f+1, c, "x=%d", x)
		}
	}
}

func TestPowerOfTwo(t *testing.T) {
	got, err := PowerOfTwo(10)
	require.NoError(t, err)
	assert.Equal(t, uint(1024), got)

	got, err = PowerOfTwo(bits.UintSize - 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1)<<(bits.UintSize-1), got)

	_, err = PowerOfTwo(bits.UintSize)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.False(t, IsPowerOfTwo(0))
	assert.True(t, IsPowerOfTwo(1))
	assert.True(t, IsPowerOfTwo(64))
	assert.False(t, IsPowerOfTwo(96))
}

func TestAlignWord(t *testing.T) {
	for _, n := range []int{0, 1, WordSize - 1, WordSize, WordSize + 1, 1000} {
		got, err := AlignWord(n)
		require.NoError(t, err)
		assert.Zero(t, got%WordSize, "AlignWord(%d)=%d", n, got)
		assert.GreaterOrEqual(t, got, n)
		assert.Less(t, got-n, WordSize)
	}

	_, err := AlignWord(math.MaxInt)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestGeometric(t *testing.T) {
	got, err := Geometric(100, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 150, got)

	got, err = Geometric(7, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 11, got, "ceil(10.5)")

	_, err = Geometric(math.MaxInt/2, 3, 2)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = Geometric(1, 3, 0)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestNextPow2(t *testing.T) {
	tests := []struct {
		in    int
		power uint
		size  int
	}{
		{0, 0, 1}, {1, 0, 1}, {2, 1, 2}, {3, 2, 4}, {50, 6, 64}, {64, 6, 64}, {65, 7, 128},
	}
	for _, tc := range tests {
		p, s, err := NextPow2(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.power, p, "power for %d", tc.in)
		assert.Equal(t, tc.size, s, "size for %d", tc.in)
	}

	_, _, err := NextPow2(math.MaxInt)
	require.ErrorIs(t, err, ErrOverflow)
	_, _, err = NextPow2(-1)
	require.ErrorIs(t, err, ErrOverflow)
}
