package pio

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/pivkit/vec/ustr"
)

// Fprintf formats according to format and writes to w. It supports the conversions
// %d %i %u %x %X %c %s %S and %%, the flags - + space 0 #, width and precision
// (digits or '*') and the length modifiers hh h l ll j z t. It returns the number of
// bytes written.
//
// %S takes a *ustr.String. %s takes a string, a []byte or a fmt.Stringer. Integer
// conversions take any Go integer type; hh and h truncate to 8 and 16 bits.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	p := printer{w: w, args: args, b: ustr.NewBuilder()}
	defer p.b.Release()

	for len(format) > 0 {
		i := strings.IndexByte(format, '%')
		if i < 0 {
			i = len(format)
		}
		if i > 0 {
			if err := p.write([]byte(format[:i])); err != nil {
				return p.n, err
			}
			format = format[i:]
			continue
		}

		spec, n, err := ParseSpec(format)
		if err != nil {
			return p.n, err
		}
		format = format[n:]
		if err := p.convert(spec); err != nil {
			return p.n, err
		}
	}
	return p.n, nil
}

// Sprintf is Fprintf into a string.
func Sprintf(format string, args ...any) (string, error) {
	var out bytes.Buffer
	_, err := Fprintf(&out, format, args...)
	return out.String(), err
}

type printer struct {
	w    io.Writer
	args []any
	b    *ustr.Builder
	n    int
}

func (p *printer) write(b []byte) error {
	n, err := p.w.Write(b)
	p.n += n
	if err != nil {
		return fmt.Errorf("pio: write: %w", err)
	}
	return nil
}

func (p *printer) next() (any, error) {
	if len(p.args) == 0 {
		return nil, ErrMissingArg
	}
	a := p.args[0]
	p.args = p.args[1:]
	return a, nil
}

// resolve replaces '*' width and precision with their arguments.
func (p *printer) resolve(spec *Spec) error {
	if spec.Width == FromArg {
		a, err := p.next()
		if err != nil {
			return err
		}
		w, ok := a.(int)
		if !ok {
			return fmt.Errorf("%w: width wants int, got %T", ErrArgType, a)
		}
		if w < 0 {
			spec.Flags |= FlagLeft
			w = -w
		}
		spec.Width = w
	}
	if spec.HasPrecision && spec.Precision == FromArg {
		a, err := p.next()
		if err != nil {
			return err
		}
		prec, ok := a.(int)
		if !ok {
			return fmt.Errorf("%w: precision wants int, got %T", ErrArgType, a)
		}
		if prec < 0 {
			spec.HasPrecision = false
			prec = 0
		}
		spec.Precision = prec
	}
	return nil
}

func (p *printer) convert(spec Spec) error {
	if spec.Verb == '%' {
		return p.write([]byte{'%'})
	}
	if err := p.resolve(&spec); err != nil {
		return err
	}
	switch spec.Verb {
	case 'd', 'i', 'u', 'x', 'X':
	case 'c', 's', 'S':
	default:
		return fmt.Errorf("%w: %%%c", ErrUnsupported, spec.Verb)
	}

	a, err := p.next()
	if err != nil {
		return fmt.Errorf("%w for %%%c", err, spec.Verb)
	}
	if err := p.b.Reset(); err != nil {
		return err
	}

	switch spec.Verb {
	case 'd', 'i':
		mag, neg, err := signed(a, spec.Length)
		if err != nil {
			return err
		}
		err = p.integer(spec, mag, neg, 10)
		if err != nil {
			return err
		}
	case 'u', 'x', 'X':
		mag, err := unsigned(a, spec.Length)
		if err != nil {
			return err
		}
		base := 10
		if spec.Verb != 'u' {
			base = 16
		}
		if err := p.integer(spec, mag, false, base); err != nil {
			return err
		}
	case 'c':
		r, err := char(a)
		if err != nil {
			return err
		}
		if err := p.b.PrependBytes(utf8.AppendRune(nil, r)); err != nil {
			return err
		}
	case 's', 'S':
		s, err := text(a, spec.Verb)
		if err != nil {
			return err
		}
		if spec.HasPrecision {
			s = truncateRunes(s, spec.Precision)
		}
		if err := p.b.PrependString(s); err != nil {
			return err
		}
	}
	return p.pad(spec)
}

// integer prepends digits, precision zeros, zero padding, radix prefix and sign.
func (p *printer) integer(spec Spec, mag uint64, neg bool, base int) error {
	if !(spec.HasPrecision && spec.Precision == 0 && mag == 0) {
		if _, err := p.b.PrependUintBase(mag, base, spec.Verb == 'X'); err != nil {
			return err
		}
	}
	if spec.HasPrecision {
		if err := p.b.PrependRepeat('0', spec.Precision-p.b.Len()); err != nil {
			return err
		}
	}

	prefix := ""
	switch {
	case neg:
		prefix = "-"
	case spec.Has(FlagPlus) && spec.Verb != 'u' && base == 10:
		prefix = "+"
	case spec.Has(FlagSpace) && spec.Verb != 'u' && base == 10:
		prefix = " "
	}
	if base == 16 && spec.Has(FlagAlt) && mag != 0 {
		prefix = "0" + string(spec.Verb)
	}

	if spec.Has(FlagZero) && !spec.Has(FlagLeft) && !spec.HasPrecision {
		if err := p.b.PrependRepeat('0', spec.Width-len(prefix)-p.b.Len()); err != nil {
			return err
		}
	}
	return p.b.PrependString(prefix)
}

// pad writes the converted text with space padding to the field width.
func (p *printer) pad(spec Spec) error {
	fill := spec.Width - utf8.RuneCount(p.b.Bytes())
	if fill > 0 && !spec.Has(FlagLeft) {
		if err := p.b.PrependRepeat(' ', fill); err != nil {
			return err
		}
	}
	if err := p.write(p.b.Bytes()); err != nil {
		return err
	}
	if fill > 0 && spec.Has(FlagLeft) {
		return p.write(bytes.Repeat([]byte{' '}, fill))
	}
	return nil
}

func signed(a any, l Length) (uint64, bool, error) {
	var v int64
	switch x := a.(type) {
	case int:
		v = int64(x)
	case int8:
		v = int64(x)
	case int16:
		v = int64(x)
	case int32:
		v = int64(x)
	case int64:
		v = x
	case uint, uint8, uint16, uint32, uint64, uintptr:
		u, err := unsigned(a, l)
		return u, false, err
	default:
		return 0, false, fmt.Errorf("%w: %%d wants an integer, got %T", ErrArgType, a)
	}
	switch l {
	case LengthHH:
		v = int64(int8(v))
	case LengthH:
		v = int64(int16(v))
	}
	if v < 0 {
		return -uint64(v), true, nil
	}
	return uint64(v), false, nil
}

func unsigned(a any, l Length) (uint64, error) {
	var v uint64
	switch x := a.(type) {
	case uint:
		v = uint64(x)
	case uint8:
		v = uint64(x)
	case uint16:
		v = uint64(x)
	case uint32:
		v = uint64(x)
	case uint64:
		v = x
	case uintptr:
		v = uint64(x)
	case int:
		v = uint64(x)
	case int8:
		v = uint64(x)
	case int16:
		v = uint64(x)
	case int32:
		v = uint64(x)
	case int64:
		v = uint64(x)
	default:
		return 0, fmt.Errorf("%w: wants an integer, got %T", ErrArgType, a)
	}
	switch l {
	case LengthHH:
		v = uint64(uint8(v))
	case LengthH:
		v = uint64(uint16(v))
	}
	return v, nil
}

func char(a any) (rune, error) {
	switch x := a.(type) {
	case rune:
		return x, nil
	case byte:
		return rune(x), nil
	case int:
		return rune(x), nil
	default:
		return 0, fmt.Errorf("%w: %%c wants a rune or byte, got %T", ErrArgType, a)
	}
}

func text(a any, verb byte) (string, error) {
	if verb == 'S' {
		s, ok := a.(*ustr.String)
		if !ok || s == nil {
			return "", fmt.Errorf("%w: %%S wants *ustr.String, got %T", ErrArgType, a)
		}
		return s.String(), nil
	}
	switch x := a.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: %%s wants a string, got %T", ErrArgType, a)
	}
}

func truncateRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
