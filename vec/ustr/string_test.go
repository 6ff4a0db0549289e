package ustr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pivkit/internal/sizemath"
	"github.com/joshuapare/pivkit/vec/block"
)

func TestFromString_Inline(t *testing.T) {
	s, err := FromString("café")
	require.NoError(t, err)
	assert.True(t, s.IsInline())
	assert.Equal(t, 4, s.Len(), "one byte per Latin-1 character")
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, s.Latin1())
	assert.Equal(t, "café", s.String())
	assert.Equal(t, InlineCap, s.Capacity())
}

func TestFromString_Long(t *testing.T) {
	text := strings.Repeat("déjà vu ", 5)
	s, err := FromString(text)
	require.NoError(t, err)
	defer s.Release()

	assert.False(t, s.IsInline())
	assert.Equal(t, 40, s.Len())
	assert.Equal(t, 64, s.Capacity(), "long strings live in a power-of-two block")
	assert.True(t, sizemath.IsPowerOfTwo(uint(s.Capacity())))
	assert.Equal(t, text, s.String())
}

func TestFromString_Boundary(t *testing.T) {
	at, err := FromString(strings.Repeat("a", InlineCap))
	require.NoError(t, err)
	assert.True(t, at.IsInline())

	over, err := FromString(strings.Repeat("a", InlineCap+1))
	require.NoError(t, err)
	assert.False(t, over.IsInline())
	assert.Equal(t, 16, over.Capacity())
}

func TestFromString_NotLatin1(t *testing.T) {
	_, err := FromString("snow ☃")
	require.ErrorIs(t, err, ErrNotLatin1)
}

func TestFromString_AllocatorFailure(t *testing.T) {
	bud := block.NewBudget(nil, 8)
	_, err := FromString(strings.Repeat("x", 20), WithAllocator(bud))
	require.ErrorIs(t, err, block.ErrOutOfMemory)

	s, err := FromString("short", WithAllocator(bud))
	require.NoError(t, err, "inline strings never allocate")
	assert.Zero(t, bud.Stats().Allocs)
	assert.Equal(t, "short", s.String())
}

func TestEncodeDecode(t *testing.T) {
	var wire []byte
	texts := []string{"", "a", "Zürich", strings.Repeat("ÿ", 300)}
	for _, txt := range texts {
		s, err := FromString(txt)
		require.NoError(t, err)
		wire = s.AppendEncode(wire)
	}

	for _, txt := range texts {
		s, n, err := Decode(wire)
		require.NoError(t, err)
		assert.Equal(t, txt, s.String())
		wire = wire[n:]
	}
	assert.Empty(t, wire)
}

func TestDecode_Truncated(t *testing.T) {
	s, err := FromString("truncate me")
	require.NoError(t, err)
	enc := s.Encode()

	_, _, err = Decode(enc[:len(enc)-1])
	require.ErrorIs(t, err, ErrTruncated)
	_, _, err = Decode(nil)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestCompare(t *testing.T) {
	mk := func(txt string) *String {
		s, err := FromString(txt)
		require.NoError(t, err)
		return s
	}
	assert.Equal(t, 0, Compare(mk("abc"), mk("abc")))
	assert.Equal(t, -1, Compare(mk("ab"), mk("abc")))
	assert.Equal(t, 1, Compare(mk("b"), mk("abcdefghijklmnop")))
	assert.True(t, mk("same long text here").Equal(mk("same long text here")))
}

func TestRelease(t *testing.T) {
	bud := block.NewBudget(nil, 1<<10)
	s, err := FromString(strings.Repeat("q", 100), WithAllocator(bud))
	require.NoError(t, err)
	assert.Equal(t, 128, bud.Stats().InUse)

	require.NoError(t, s.Release())
	assert.Zero(t, bud.Stats().InUse)
	assert.Zero(t, s.Len())
	assert.True(t, s.IsInline())
}
