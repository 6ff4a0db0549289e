package ustr

import "github.com/joshuapare/pivkit/vec/region"

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// Builder accumulates text from right to left.
type Builder struct {
	r *region.Region
}

// NewBuilder returns a Builder with growing storage. Region options select the
// strategy; the direction is always region.Reverse.
func NewBuilder(opts ...region.Option) *Builder {
	return &Builder{r: region.New(region.Reverse, opts...)}
}

// NewBuilderOn returns a Builder that writes into scratch from its end and fails with
// region.ErrCapacityExceeded when scratch is full.
func NewBuilderOn(scratch []byte) *Builder {
	return &Builder{r: region.NewFixed(region.Reverse, scratch, 1)}
}

// PrependByte puts c in front of the text.
func (b *Builder) PrependByte(c byte) error {
	sp, err := b.r.Grow(1)
	if err != nil {
		return err
	}
	sp.Bytes()[0] = c
	return nil
}

// PrependBytes puts p in front of the text.
func (b *Builder) PrependBytes(p []byte) error {
	sp, err := b.r.Grow(len(p))
	if err != nil {
		return err
	}
	copy(sp.Bytes(), p)
	return nil
}

// PrependString puts s in front of the text.
func (b *Builder) PrependString(s string) error {
	sp, err := b.r.Grow(len(s))
	if err != nil {
		return err
	}
	copy(sp.Bytes(), s)
	return nil
}

// PrependRepeat puts n copies of c in front of the text.
func (b *Builder) PrependRepeat(c byte, n int) error {
	if n <= 0 {
		return nil
	}
	sp, err := b.r.Grow(n)
	if err != nil {
		return err
	}
	p := sp.Bytes()
	for i := range p {
		p[i] = c
	}
	return nil
}

// PrependUint puts the decimal digits of v in front of the text.
func (b *Builder) PrependUint(v uint64) error {
	_, err := b.PrependUintBase(v, 10, false)
	return err
}

// PrependUintBase puts the digits of v in base (2..16) in front of the text and returns
// the digit count. The text is unchanged on error.
func (b *Builder) PrependUintBase(v uint64, base int, upper bool) (int, error) {
	if base < 2 || base > 16 {
		return 0, ErrBase
	}
	var tmp [65]byte
	i := formatUint(&tmp, v, uint64(base), upper)
	if err := b.PrependBytes(tmp[i:]); err != nil {
		return 0, err
	}
	return len(tmp) - i, nil
}

// PrependInt puts the decimal form of v, with a leading '-' when negative, in front of
// the text.
func (b *Builder) PrependInt(v int64) error {
	var tmp [65]byte
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	i := formatUint(&tmp, mag, 10, false)
	if v < 0 {
		i--
		tmp[i] = '-'
	}
	return b.PrependBytes(tmp[i:])
}

// formatUint writes the digits of v into the tail of tmp, least significant first, and
// returns the index of the leading digit.
func formatUint(tmp *[65]byte, v, base uint64, upper bool) int {
	digits := lowerDigits
	if upper {
		digits = upperDigits
	}
	i := len(tmp)
	for {
		i--
		tmp[i] = digits[v%base]
		v /= base
		if v == 0 {
			return i
		}
	}
}

// Len returns the text length in bytes.
func (b *Builder) Len() int { return b.r.Len() }

// Bytes returns the text. The slice aliases the builder until the next Prepend.
func (b *Builder) Bytes() []byte { return b.r.Bytes() }

// String returns a copy of the text.
func (b *Builder) String() string { return string(b.r.Bytes()) }

// Reset empties the builder and keeps its storage.
func (b *Builder) Reset() error { return b.r.Reset() }

// Release frees the storage.
func (b *Builder) Release() error { return b.r.Release() }
