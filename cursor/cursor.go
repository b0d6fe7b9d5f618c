// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements stateful traversal over the nodes of a JSON
// document indexed by a jlazy.Parser.
package cursor

import (
	"fmt"

	"github.com/creachadair/jlazy"
)

// Path traverses a sequential path into the structure of n where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its result.
//
// If T is *jlazy.Node, Path returns the node reached. Otherwise, the value of
// the node reached is decoded and must have concrete type T.
func Path[T any](n *jlazy.Node, path ...any) (T, error) {
	c := New(n).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	if v, ok := any(c.Node()).(T); ok {
		return v, nil
	}
	val, err := c.Node().Value()
	if err != nil {
		return result, err
	}
	v, ok := val.(T)
	if !ok {
		return result, fmt.Errorf("wrong value type %T for %s", val, c.Node().Type())
	}
	return v, nil
}

// A Cursor is a pointer that navigates into the structure of a jlazy.Node.
// A Cursor is not safe for concurrent use, but any number of cursors may
// share the same nodes.
type Cursor struct {
	org *jlazy.Node
	stk []*jlazy.Node
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *jlazy.Node) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin node of c.
func (c *Cursor) Origin() *jlazy.Node { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Node reports the current node under the cursor.
func (c *Cursor) Node() *jlazy.Node {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of nodes from the origin to the current
// location in c.
func (c *Cursor) Path() []*jlazy.Node {
	return append([]*jlazy.Node{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current node, where path elements are either strings (denoting object
// keys), integers (denoting offsets into arrays or objects), or functions
// (see below). If the path is valid, the cursor is left at the node reached.
// If the path cannot be completely consumed, traversal stops at the last node
// resolved and an error is recorded. Use Err to recover the error.
//
// If a path element is a string, the current node must be an object, and the
// string resolves the first member with that name.
//
// If a path element is an integer, the current node must be an array or
// object, and the integer resolves to an offset among its entries. Negative
// offsets count backward from the end (-1 is last, -2 second last). An error
// is reported if the offset is out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next node in the sequence. The function must have a signature
//
//	func(*jlazy.Node) (*jlazy.Node, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Node()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			if cur.Type() != jlazy.Object {
				return c.setErrorf("cannot traverse %s with %q", cur.Type(), t)
			}
			next, ok := cur.ByKey(t)
			if !ok {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(next)

		case int:
			if !cur.Type().IsContainer() {
				return c.setErrorf("cannot traverse %s with %d", cur.Type(), t)
			}
			i, ok := fixBound(cur.Len(), t)
			if !ok {
				return c.setErrorf("%s index %d out of bounds (n=%d)", cur.Type(), t, cur.Len())
			}
			next, _ := cur.ByIndex(i)
			cur = c.push(next)

		case func(*jlazy.Node) (*jlazy.Node, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			} else if next == nil {
				return c.setErrorf("path function returned no node")
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(n *jlazy.Node) *jlazy.Node { c.stk = append(c.stk, n); return n }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
