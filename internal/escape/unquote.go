// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A \u escape
// for a high surrogate immediately followed by a \u escape for a low surrogate
// is combined into a single rune. Invalid escapes and unpaired surrogates are
// replaced by the Unicode replacement rune. Unquote reports an error for an
// incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	putByte := func(bs ...byte) { dec = append(dec, bs...) }
	putRune := func(r rune) { dec = utf8.AppendRune(dec, r) }
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			putByte(byte(r))
		case 'b':
			putByte('\b')
		case 'f':
			putByte('\f')
		case 'n':
			putByte('\n')
		case 'r':
			putByte('\r')
		case 't':
			putByte('\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, ok := Hex4(src)
			src = src.SliceFrom(4)
			if !ok {
				putRune(utf8.RuneError)
				break
			}
			if lo, ok := LowSurrogate(v, src); ok {
				putRune(utf16.DecodeRune(v, lo))
				src = src.SliceFrom(6)
				break
			}
			putRune(v) // lone surrogates encode as utf8.RuneError
		default:
			putRune(utf8.RuneError)
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// Hex4 decodes the four hexadecimal digits at the front of src. It reports
// false if src is too short or any of the digits is invalid.
func Hex4(src mem.RO) (rune, bool) {
	if src.Len() < 4 {
		return 0, false
	}
	var v rune
	for i := range 4 {
		d, ok := HexDigit(src.At(i))
		if !ok {
			return 0, false
		}
		v = v<<4 | rune(d)
	}
	return v, true
}

// HexDigit reports the value of the hexadecimal digit b.
func HexDigit(b byte) (byte, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// LowSurrogate reports whether hi is a high surrogate and rest begins with a
// \u escape encoding a low surrogate. If so, it returns the low surrogate.
func LowSurrogate(hi rune, rest mem.RO) (rune, bool) {
	if hi < 0xd800 || hi >= 0xdc00 || rest.Len() < 6 || rest.At(0) != '\\' || rest.At(1) != 'u' {
		return 0, false
	}
	lo, ok := Hex4(rest.SliceFrom(2))
	if !ok || lo < 0xdc00 || lo >= 0xe000 {
		return 0, false
	}
	return lo, true
}
