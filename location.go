// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Pos }

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%d:%d-%d", loc.First.Line, loc.First.Column, loc.Last.Column)
	}
	return loc.First.String() + "-" + loc.Last.String()
}

// lineCol computes the line and column of offset pos in buf. Offsets past the
// end of buf are clamped to the end.
func lineCol(buf mem.RO, pos int) LineCol {
	pos = min(max(pos, 0), buf.Len())
	lc := LineCol{Line: 1}
	for {
		i := mem.IndexByte(buf.SliceTo(pos), '\n')
		if i < 0 {
			break
		}
		lc.Line++
		buf = buf.SliceFrom(i + 1)
		pos -= i + 1
	}
	lc.Column = pos
	return lc
}
