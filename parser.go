// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"sync"

	"go4.org/mem"
)

// A Parser builds a lazy index over a complete JSON document held in memory.
// The document is never modified. A Parser and the nodes it produces are safe
// for concurrent use by multiple goroutines.
type Parser struct {
	buf mem.RO

	once sync.Once
	root *Node
	err  error
}

// NewParser constructs a parser over data. The parser retains data without
// copying it, and the caller must not modify data after this call.
func NewParser(data []byte) *Parser { return &Parser{buf: mem.B(data)} }

// NewParserString constructs a parser over the JSON document in s.
func NewParserString(s string) *Parser { return &Parser{buf: mem.S(s)} }

// Len reports the length of the document in bytes.
func (p *Parser) Len() int { return p.buf.Len() }

// Root returns the node for the top-level value of the document.  Root scans
// only the top level of the value; the contents of nested objects and arrays
// are checked for syntax but not indexed until they are requested.
//
// If the document is empty, Root returns nil, nil. If the document is not a
// single valid JSON value, optionally surrounded by whitespace, Root reports
// an error of concrete type *IncompleteError or *TokenError. The result is
// computed once and shared by all callers.
func (p *Parser) Root() (*Node, error) {
	p.once.Do(func() {
		if p.buf.Len() == 0 {
			return
		}
		v, err := scan(p.buf, 0, true)
		if err != nil {
			p.err = err
			return
		}
		if i := skipSpace(p.buf, v.end); i < p.buf.Len() {
			p.err = tokenError(p.buf, i)
			return
		}
		p.root = newNode(p.buf, nil, "", v)
	})
	return p.root, p.err
}

// LineCol reports the line and column of the given byte offset in the
// document. This is useful to locate the Offset of a *TokenError.
func (p *Parser) LineCol(offset int) LineCol { return lineCol(p.buf, offset) }
