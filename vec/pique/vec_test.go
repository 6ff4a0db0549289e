package pique

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pivkit/vec/block"
	"github.com/joshuapare/pivkit/vec/region"
	"github.com/joshuapare/pivkit/vec/search"
)

func TestPushPop(t *testing.T) {
	for _, dir := range []region.Direction{region.Forward, region.Reverse} {
		t.Run(dir.String(), func(t *testing.T) {
			v := New(dir, Uint32)
			defer v.Release()

			for i := 0; i < 1000; i++ {
				require.NoError(t, v.Push(uint32(i)))
			}
			assert.Equal(t, 1000, v.Len())
			assert.GreaterOrEqual(t, v.Cap(), v.Len())

			top, err := v.Peek()
			require.NoError(t, err)
			assert.Equal(t, uint32(999), top)

			for i := 999; i >= 0; i-- {
				x, err := v.Pop()
				require.NoError(t, err)
				require.Equal(t, uint32(i), x)
			}
			_, err = v.Pop()
			require.ErrorIs(t, err, ErrEmpty)
			_, err = v.Peek()
			require.ErrorIs(t, err, ErrEmpty)
		})
	}
}

func TestAtSet(t *testing.T) {
	v := New(region.Reverse, Int64)
	for _, x := range []int64{-3, 0, 7} {
		require.NoError(t, v.Push(x))
	}
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), x)

	require.NoError(t, v.Set(2, 42))
	assert.Equal(t, []int64{-3, 0, 42}, v.Values())

	_, err = v.At(3)
	require.ErrorIs(t, err, ErrIndex)
	require.ErrorIs(t, v.Set(-1, 1), ErrIndex)
}

func TestInsertDelete(t *testing.T) {
	v := New(region.Forward, Int32)
	for _, x := range []int32{1, 2, 4} {
		require.NoError(t, v.Push(x))
	}
	require.NoError(t, v.Insert(2, 3))
	require.NoError(t, v.Insert(0, 0))
	require.NoError(t, v.Insert(5, 5))
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5}, v.Values())

	require.ErrorIs(t, v.Insert(7, 9), ErrIndex)

	require.NoError(t, v.Delete(0))
	require.NoError(t, v.Delete(4))
	assert.Equal(t, []int32{1, 2, 3, 4}, v.Values())
	require.ErrorIs(t, v.Delete(4), ErrIndex)
}

func TestSortedInsertWithSearch(t *testing.T) {
	v := New(region.Reverse, Int32)
	key := make([]byte, 4)
	for _, x := range []int32{50, 10, 40, 20, 30, 10, 60, 0} {
		Int32.Put(key, x)
		i, err := search.Linear(key, v.Region(), search.Int32LE)
		require.NoError(t, err)
		require.NoError(t, v.Insert(i+1, x))
	}
	assert.Equal(t, []int32{0, 10, 10, 20, 30, 40, 50, 60}, v.Values())
}

func TestFixed(t *testing.T) {
	storage := make([]byte, 8)
	v := NewFixed(region.Reverse, Byte, storage)
	for i := 0; i < 8; i++ {
		require.NoError(t, v.Push(byte('a'+i)))
	}
	err := v.Push('z')
	require.ErrorIs(t, err, region.ErrCapacityExceeded)
	assert.Equal(t, "hgfedcba", string(storage), "reverse stacks fill storage from the top")
}

func TestReserve(t *testing.T) {
	bud := block.NewBudget(nil, 1<<20)
	v := New(region.Forward, Uint64, region.WithStrategy(region.NewGeometric(bud)))
	require.NoError(t, v.Reserve(100))
	allocs := bud.Stats().Allocs
	for i := 0; i < 100; i++ {
		require.NoError(t, v.Push(uint64(i)))
	}
	assert.Equal(t, allocs, bud.Stats().Allocs, "reserved pushes never reallocate")
	require.NoError(t, v.Reserve(0))
	require.ErrorIs(t, v.Reserve(-1), region.ErrInvalidRange)
}

func TestRelease(t *testing.T) {
	v := New(region.Forward, Byte)
	require.NoError(t, v.Push(1))
	require.NoError(t, v.Release())

	_, err := v.Pop()
	require.ErrorIs(t, err, region.ErrReleased)
	require.ErrorIs(t, v.Push(1), region.ErrReleased)
}
