// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"unicode/utf8"

	"github.com/creachadair/jlazy/internal/escape"

	"go4.org/mem"
)

// An entry records the boundaries of one immediate child of a container.
// For object members, key is the decoded member name.
type entry struct {
	key      string
	pos, end int
}

// scanned is the result of scanning a single value.
type scanned struct {
	typ      Type
	pos, end int
	length   int     // decoded runes (string) or entry count (object, array)
	kids     []entry // immediate children, only if requested
}

// maxDepth is the deepest nesting of objects and arrays the scanner accepts.
// An open brace or bracket beyond it is reported as a *TokenError.
const maxDepth = 10000

var (
	trueLit  = mem.S("true")
	falseLit = mem.S("false")
	nullLit  = mem.S("null")
)

// scan scans the single value beginning at or after offset pos of buf, after
// any leading whitespace. If table is true and the value is an object or
// array, the boundaries of its immediate children are recorded; otherwise the
// value is only skipped, and its contents are checked but not retained.
func scan(buf mem.RO, pos int, table bool) (scanned, error) { return scanDepth(buf, pos, table, 0) }

// scanDepth is scan for a value enclosed by depth containers.
func scanDepth(buf mem.RO, pos int, table bool, depth int) (scanned, error) {
	pos = skipSpace(buf, pos)
	if pos >= buf.Len() {
		return scanned{}, &IncompleteError{Kind: Invalid}
	}
	switch ch := buf.At(pos); {
	case (ch == '{' || ch == '[') && depth >= maxDepth:
		return scanned{}, tokenError(buf, pos)
	case ch == '{':
		return scanObject(buf, pos, table, depth+1)
	case ch == '[':
		return scanArray(buf, pos, table, depth+1)
	case ch == '"':
		end, n, err := scanString(buf, pos)
		return scanned{typ: String, pos: pos, end: end, length: n}, err
	case ch == 't':
		return scanLiteral(buf, pos, trueLit, Boolean)
	case ch == 'f':
		return scanLiteral(buf, pos, falseLit, Boolean)
	case ch == 'n':
		return scanLiteral(buf, pos, nullLit, Null)
	case ch == '-' || isDigit(ch):
		end, err := scanNumber(buf, pos)
		return scanned{typ: Number, pos: pos, end: end}, err
	default:
		return scanned{}, tokenError(buf, pos)
	}
}

// scanObject scans an object whose open brace is at buf[pos], and which is
// itself at the given nesting depth.
func scanObject(buf mem.RO, pos int, table bool, depth int) (scanned, error) {
	out := scanned{typ: Object, pos: pos}
	incomplete := &IncompleteError{Kind: Object}

	i := skipSpace(buf, pos+1)
	if i >= buf.Len() {
		return scanned{}, incomplete
	} else if buf.At(i) == '}' {
		out.end = i + 1
		return out, nil
	}
	for {
		// Parse a single member: "key": value
		if i >= buf.Len() {
			return scanned{}, incomplete
		} else if buf.At(i) != '"' {
			return scanned{}, tokenError(buf, i)
		}
		kend, _, err := scanString(buf, i)
		if err != nil {
			return scanned{}, err
		}
		kpos := i

		i = skipSpace(buf, kend)
		if i >= buf.Len() {
			return scanned{}, incomplete
		} else if buf.At(i) != ':' {
			return scanned{}, tokenError(buf, i)
		}
		i = skipSpace(buf, i+1)
		if i >= buf.Len() {
			return scanned{}, incomplete
		}
		v, err := scanDepth(buf, i, false, depth)
		if err != nil {
			return scanned{}, err
		}
		if table {
			key, err := escape.Unquote(buf.Slice(kpos+1, kend-1))
			if err != nil {
				return scanned{}, err // not possible, the key was already checked
			}
			out.kids = append(out.kids, entry{key: string(key), pos: v.pos, end: v.end})
		}
		out.length++

		// Check whether we have more members (",") or are done ("}").
		i = skipSpace(buf, v.end)
		if i >= buf.Len() {
			return scanned{}, incomplete
		}
		switch buf.At(i) {
		case ',':
			i = skipSpace(buf, i+1)
		case '}':
			out.end = i + 1
			return out, nil
		default:
			return scanned{}, tokenError(buf, i)
		}
	}
}

// scanArray scans an array whose open bracket is at buf[pos], and which is
// itself at the given nesting depth.
func scanArray(buf mem.RO, pos int, table bool, depth int) (scanned, error) {
	out := scanned{typ: Array, pos: pos}
	incomplete := &IncompleteError{Kind: Array}

	i := skipSpace(buf, pos+1)
	if i >= buf.Len() {
		return scanned{}, incomplete
	} else if buf.At(i) == ']' {
		out.end = i + 1
		return out, nil
	}
	for {
		if i >= buf.Len() {
			return scanned{}, incomplete
		}
		v, err := scanDepth(buf, i, false, depth)
		if err != nil {
			return scanned{}, err
		}
		if table {
			out.kids = append(out.kids, entry{pos: v.pos, end: v.end})
		}
		out.length++

		i = skipSpace(buf, v.end)
		if i >= buf.Len() {
			return scanned{}, incomplete
		}
		switch buf.At(i) {
		case ',':
			i = skipSpace(buf, i+1)
		case ']':
			out.end = i + 1
			return out, nil
		default:
			return scanned{}, tokenError(buf, i)
		}
	}
}

// scanString scans a string whose open quotation mark is at buf[pos].  It
// returns the offset just past the close quotation mark, along with the
// number of runes in the decoded string.
func scanString(buf mem.RO, pos int) (end, n int, _ error) {
	i := pos + 1
	for i < buf.Len() {
		ch := buf.At(i)
		if ch == '"' {
			return i + 1, n, nil
		} else if ch < ' ' {
			return 0, 0, tokenError(buf, i)
		} else if ch >= utf8.RuneSelf {
			_, size := mem.DecodeRune(buf.SliceFrom(i))
			i += size
			n++
			continue
		} else if ch != '\\' {
			i++
			n++
			continue
		}

		// We are awaiting the completion of a \-escape.
		i++
		if i >= buf.Len() {
			break
		}
		switch buf.At(i) {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			i++
		case 'u':
			i++
			for j := range 4 {
				if i+j >= buf.Len() {
					return 0, 0, &IncompleteError{Kind: String}
				} else if _, ok := escape.HexDigit(buf.At(i + j)); !ok {
					return 0, 0, tokenError(buf, i+j)
				}
			}
			v, _ := escape.Hex4(buf.SliceFrom(i))
			i += 4
			if _, ok := escape.LowSurrogate(v, buf.SliceFrom(i)); ok {
				i += 6 // the pair decodes to a single rune
			}
		default:
			return 0, 0, tokenError(buf, i)
		}
		n++
	}
	return 0, 0, &IncompleteError{Kind: String}
}

// scanNumber scans a number whose first character is at buf[pos], returning
// the offset just past its end.
func scanNumber(buf mem.RO, pos int) (int, error) {
	i := pos
	if buf.At(i) == '-' {
		i++
	}

	// Integer part: a single zero, or a nonzero digit and any digits after.
	if i >= buf.Len() {
		return 0, &IncompleteError{Kind: Number}
	} else if ch := buf.At(i); ch == '0' {
		i++
	} else if isDigit(ch) {
		i = skipDigits(buf, i)
	} else {
		return 0, tokenError(buf, i)
	}

	// If a decimal point follows, consume a fractional part.
	if i < buf.Len() && buf.At(i) == '.' {
		j, err := requireDigits(buf, i+1)
		if err != nil {
			return 0, err
		}
		i = j
	}

	// If an exponent follows, consume it.
	if i < buf.Len() && (buf.At(i) == 'e' || buf.At(i) == 'E') {
		i++
		if i < buf.Len() && (buf.At(i) == '+' || buf.At(i) == '-') {
			i++
		}
		j, err := requireDigits(buf, i)
		if err != nil {
			return 0, err
		}
		i = j
	}
	return i, nil
}

// scanLiteral scans the constant lit, of type typ, at buf[pos].
func scanLiteral(buf mem.RO, pos int, lit mem.RO, typ Type) (scanned, error) {
	for j := range lit.Len() {
		if pos+j >= buf.Len() {
			return scanned{}, &IncompleteError{Kind: typ}
		} else if buf.At(pos+j) != lit.At(j) {
			return scanned{}, tokenError(buf, pos+j)
		}
	}
	return scanned{typ: typ, pos: pos, end: pos + lit.Len()}, nil
}

// requireDigits consumes one or more digits starting at buf[pos].
func requireDigits(buf mem.RO, pos int) (int, error) {
	if pos >= buf.Len() {
		return 0, &IncompleteError{Kind: Number}
	} else if !isDigit(buf.At(pos)) {
		return 0, tokenError(buf, pos)
	}
	return skipDigits(buf, pos), nil
}

func skipDigits(buf mem.RO, pos int) int {
	for pos < buf.Len() && isDigit(buf.At(pos)) {
		pos++
	}
	return pos
}

func skipSpace(buf mem.RO, pos int) int {
	for pos < buf.Len() && isSpace(buf.At(pos)) {
		pos++
	}
	return pos
}

// tokenError reports the character at buf[pos] as unexpected.
func tokenError(buf mem.RO, pos int) error {
	r, _ := mem.DecodeRune(buf.SliceFrom(pos))
	return &TokenError{Char: r, Offset: pos}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
