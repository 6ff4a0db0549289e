package pio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		in       string
		expected Spec
		consumed int
	}{
		{"%d", Spec{Verb: 'd'}, 2},
		{"%%", Spec{Verb: '%'}, 2},
		{"%-+ 0#x rest", Spec{Flags: FlagLeft | FlagPlus | FlagSpace | FlagZero | FlagAlt, Verb: 'x'}, 7},
		{"%12s", Spec{Width: 12, Verb: 's'}, 4},
		{"%*d", Spec{Width: FromArg, Verb: 'd'}, 3},
		{"%.3d", Spec{Precision: 3, HasPrecision: true, Verb: 'd'}, 4},
		{"%.*s", Spec{Precision: FromArg, HasPrecision: true, Verb: 's'}, 4},
		{"%.d", Spec{HasPrecision: true, Verb: 'd'}, 3},
		{"%08.2lld", Spec{Flags: FlagZero, Width: 8, Precision: 2, HasPrecision: true, Length: LengthLL, Verb: 'd'}, 8},
		{"%hhu", Spec{Length: LengthHH, Verb: 'u'}, 4},
		{"%hx", Spec{Length: LengthH, Verb: 'x'}, 3},
		{"%lu", Spec{Length: LengthL, Verb: 'u'}, 3},
		{"%jd%zd", Spec{Length: LengthJ, Verb: 'd'}, 3},
		{"%zu", Spec{Length: LengthZ, Verb: 'u'}, 3},
		{"%td", Spec{Length: LengthT, Verb: 'd'}, 3},
		{"%Lf", Spec{Length: LengthBigL, Verb: 'f'}, 3},
		{"%S", Spec{Verb: 'S'}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, n, err := ParseSpec(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.consumed, n)
		})
	}
}

func TestParseSpec_Errors(t *testing.T) {
	_, _, err := ParseSpec("d")
	require.ErrorIs(t, err, ErrIncomplete)
	_, _, err = ParseSpec("%")
	require.ErrorIs(t, err, ErrIncomplete)
	_, _, err = ParseSpec("%5.2")
	require.ErrorIs(t, err, ErrIncomplete)
	_, _, err = ParseSpec("%5q")
	require.ErrorIs(t, err, ErrBadVerb)
}

func TestSpec_Has(t *testing.T) {
	s := Spec{Flags: FlagLeft | FlagAlt}
	assert.True(t, s.Has(FlagLeft))
	assert.True(t, s.Has(FlagAlt))
	assert.False(t, s.Has(FlagZero))
}
