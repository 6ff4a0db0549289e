package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_Allocate(t *testing.T) {
	b, err := Heap{}.Allocate(64)
	require.NoError(t, err)
	require.Len(t, b.Bytes(), 64)
	assert.True(t, b.Owned())

	for _, v := range b.Bytes() {
		require.Zero(t, v, "heap blocks must be zeroed")
	}

	require.NoError(t, b.Release())
	assert.Nil(t, b.Bytes(), "released block must not expose its data")
	assert.Zero(t, b.Len())
	assert.ErrorIs(t, b.Release(), ErrReleased, "double release must be detected")
}

func TestHeap_RejectsBadSizes(t *testing.T) {
	_, err := Heap{}.Allocate(-1)
	require.ErrorIs(t, err, ErrNegativeSize)

	_, err = Heap{}.Allocate(maxBlockSize + 1)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestStatic_ReleaseKeepsStorage(t *testing.T) {
	storage := []byte{1, 2, 3}
	b := Static(storage)
	assert.False(t, b.Owned())
	require.Equal(t, storage, b.Bytes())

	require.NoError(t, b.Release())
	assert.True(t, b.Released())
	assert.Equal(t, []byte{1, 2, 3}, storage, "caller storage survives release")
}

func TestMmap_AllocateWriteRelease(t *testing.T) {
	b, err := Mmap{}.Allocate(3 * 4096)
	require.NoError(t, err)
	data := b.Bytes()
	require.Len(t, data, 3*4096)

	data[0] = 0xAA
	data[len(data)-1] = 0x55
	assert.Equal(t, byte(0xAA), b.Bytes()[0])

	require.NoError(t, b.Release())
}

func TestMmap_ZeroSize(t *testing.T) {
	b, err := Mmap{}.Allocate(0)
	require.NoError(t, err)
	assert.Empty(t, b.Bytes())
	require.NoError(t, b.Release())
}

func TestBudget_Accounting(t *testing.T) {
	bud := NewBudget(nil, 100)

	b1, err := bud.Allocate(60)
	require.NoError(t, err)
	b2, err := bud.Allocate(40)
	require.NoError(t, err)

	_, err = bud.Allocate(1)
	require.ErrorIs(t, err, ErrOutOfMemory, "budget is exhausted")

	st := bud.Stats()
	assert.Equal(t, 2, st.Allocs)
	assert.Equal(t, 1, st.Failures)
	assert.Equal(t, 100, st.InUse)
	assert.Equal(t, 100, st.Peak)

	require.NoError(t, b1.Release())
	st = bud.Stats()
	assert.Equal(t, 40, st.InUse)
	assert.Equal(t, 100, st.Peak, "peak is a high-water mark")
	assert.Equal(t, 1, st.Releases)

	b3, err := bud.Allocate(60)
	require.NoError(t, err, "released bytes are reusable")
	require.NoError(t, b3.Release())
	require.NoError(t, b2.Release())
	assert.Zero(t, bud.Stats().InUse)
}

func TestBudget_SetLimit(t *testing.T) {
	bud := NewBudget(Heap{}, 10)
	bud.SetLimit(0)
	assert.Equal(t, 0, bud.Limit())

	_, err := bud.Allocate(1)
	require.ErrorIs(t, err, ErrOutOfMemory)

	b, err := bud.Allocate(0)
	require.NoError(t, err, "zero-byte requests always fit")
	require.NoError(t, b.Release())
}

func TestObserved_Hooks(t *testing.T) {
	var allocated, released []int
	obs := &Observed{
		Upstream:   NewBudget(Heap{}, 32),
		OnAllocate: func(size int, err error) { allocated = append(allocated, size) },
		OnRelease:  func(size int) { released = append(released, size) },
	}

	b, err := obs.Allocate(16)
	require.NoError(t, err)
	_, err = obs.Allocate(64)
	require.ErrorIs(t, err, ErrOutOfMemory)

	require.NoError(t, b.Release())
	assert.Equal(t, []int{16, 64}, allocated, "failed allocations are reported too")
	assert.Equal(t, []int{16}, released)
}
