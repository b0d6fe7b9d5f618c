// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"fmt"

	"github.com/creachadair/jlazy/internal/escape"

	"go4.org/mem"
)

// Value decodes the value of n. Decoding is performed on each call and is
// not cached. The concrete type of the result depends on the type of n:
//
//	Type    | Result
//	------- | --------------
//	Object  | map[string]any
//	Array   | []any
//	String  | string
//	Number  | float64
//	Boolean | bool
//	Null    | nil
//
// Decoding an object or array decodes all its descendants, so the cost is
// proportional to the size of the whole subtree. If an object has more than
// one member with the same name, the last one is used.
func (n *Node) Value() (any, error) {
	switch n.typ {
	case Object:
		out := make(map[string]any, n.length)
		for i, e := range n.kids {
			v, err := n.child(i).Value()
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", e.key, err)
			}
			out[e.key] = v
		}
		return out, nil
	case Array:
		out := make([]any, n.length)
		for i := range n.kids {
			v, err := n.child(i).Value()
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	case String:
		return n.Str()
	case Number:
		return n.Float64()
	case Boolean:
		return n.Bool()
	case Null:
		return nil, nil
	default:
		panic(fmt.Sprintf("jlazy: invalid node type %v", n.typ))
	}
}

// Str returns the decoded value of a string node, with quotation marks
// removed and escape sequences replaced.
func (n *Node) Str() (string, error) {
	if err := typeCheck(String, n.typ); err != nil {
		return "", err
	}
	dec, err := escape.Unquote(n.buf.Slice(n.pos+1, n.end-1))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Float64 returns the value of a number node as a float64. An error is
// reported if the value is out of range for a float64.
func (n *Node) Float64() (float64, error) {
	if err := typeCheck(Number, n.typ); err != nil {
		return 0, err
	}
	return mem.ParseFloat(n.raw(), 64)
}

// Int64 returns the value of a number node as an int64. An error is reported
// if the number has a fraction or exponent, or is out of range.
func (n *Node) Int64() (int64, error) {
	if err := typeCheck(Number, n.typ); err != nil {
		return 0, err
	}
	return mem.ParseInt(n.raw(), 10, 64)
}

// Bool returns the value of a boolean node.
func (n *Node) Bool() (bool, error) {
	if err := typeCheck(Boolean, n.typ); err != nil {
		return false, err
	}
	return n.buf.At(n.pos) == 't', nil
}

func (n *Node) raw() mem.RO { return n.buf.Slice(n.pos, n.end) }
