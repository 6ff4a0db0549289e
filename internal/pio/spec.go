// Package pio implements a small printf: conversion specifier parsing and an Fprintf
// for integers, characters and strings.
//
// Integer conversions build their text backward in a ustr.Builder, so digits, zero
// padding, radix prefix and sign are each prepended in one pass without reversal.
// The builder is allocated per call; nothing is shared between calls.
package pio

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncomplete indicates a format ending inside a conversion specifier.
	ErrIncomplete = errors.New("pio: incomplete conversion specifier")

	// ErrBadVerb indicates an unknown conversion character.
	ErrBadVerb = errors.New("pio: unknown conversion character")

	// ErrUnsupported indicates a recognised conversion that is not implemented.
	ErrUnsupported = errors.New("pio: conversion not implemented")

	// ErrMissingArg indicates fewer arguments than conversions.
	ErrMissingArg = errors.New("pio: missing argument")

	// ErrArgType indicates an argument of the wrong type for its conversion.
	ErrArgType = errors.New("pio: wrong argument type")
)

// Flag is a conversion flag bit.
type Flag uint8

const (
	FlagLeft  Flag = 1 << iota // '-'
	FlagPlus                   // '+'
	FlagSpace                  // ' '
	FlagZero                   // '0'
	FlagAlt                    // '#'
)

// Length is an integer length modifier.
type Length uint8

const (
	LengthNone Length = iota
	LengthHH          // hh
	LengthH           // h
	LengthL           // l
	LengthLL          // ll
	LengthJ           // j
	LengthZ           // z
	LengthT           // t
	LengthBigL        // L
)

// FromArg marks a width or precision taken from the argument list ('*').
const FromArg = -1

// Verbs lists every conversion character ParseSpec accepts.
const Verbs = "diuxXcsSfeEgGpnN%"

// Spec is a parsed conversion specifier.
type Spec struct {
	Flags        Flag
	Width        int // 0 when absent, FromArg for '*'
	Precision    int // FromArg for '*'
	HasPrecision bool
	Length       Length
	Verb         byte
}

// Has reports whether f is set.
func (s Spec) Has(f Flag) bool { return s.Flags&f != 0 }

// ParseSpec parses the conversion specifier at the start of s, which must begin with
// '%'. It returns the specifier and the number of bytes consumed, verb included.
//
// Grammar: % [flags -+ 0#]* [width digits|*] [. precision digits|*] [length] verb
func ParseSpec(s string) (Spec, int, error) {
	var spec Spec
	if s == "" || s[0] != '%' {
		return spec, 0, fmt.Errorf("%w: expected '%%'", ErrIncomplete)
	}
	i := 1

	for ; i < len(s); i++ {
		f, ok := flagOf(s[i])
		if !ok {
			break
		}
		spec.Flags |= f
	}

	if i < len(s) && s[i] == '*' {
		spec.Width = FromArg
		i++
	} else {
		spec.Width, i = digits(s, i)
	}

	if i < len(s) && s[i] == '.' {
		spec.HasPrecision = true
		i++
		if i < len(s) && s[i] == '*' {
			spec.Precision = FromArg
			i++
		} else {
			spec.Precision, i = digits(s, i)
		}
	}

	spec.Length, i = lengthOf(s, i)

	if i >= len(s) {
		return spec, i, ErrIncomplete
	}
	if !strings.ContainsRune(Verbs, rune(s[i])) {
		return spec, i, fmt.Errorf("%w: %q", ErrBadVerb, s[i])
	}
	spec.Verb = s[i]
	return spec, i + 1, nil
}

func flagOf(c byte) (Flag, bool) {
	switch c {
	case '-':
		return FlagLeft, true
	case '+':
		return FlagPlus, true
	case ' ':
		return FlagSpace, true
	case '0':
		return FlagZero, true
	case '#':
		return FlagAlt, true
	default:
		return 0, false
	}
}

// digits parses a run of decimal digits, saturating instead of overflowing.
func digits(s string, i int) (int, int) {
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n < 1<<20 {
			n = n*10 + int(s[i]-'0')
		}
	}
	return n, i
}

func lengthOf(s string, i int) (Length, int) {
	if i >= len(s) {
		return LengthNone, i
	}
	double := i+1 < len(s) && s[i+1] == s[i]
	switch s[i] {
	case 'h':
		if double {
			return LengthHH, i + 2
		}
		return LengthH, i + 1
	case 'l':
		if double {
			return LengthLL, i + 2
		}
		return LengthL, i + 1
	case 'j':
		return LengthJ, i + 1
	case 'z':
		return LengthZ, i + 1
	case 't':
		return LengthT, i + 1
	case 'L':
		return LengthBigL, i + 1
	default:
		return LengthNone, i
	}
}
