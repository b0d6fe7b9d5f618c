// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"go4.org/mem"
)

// End may be passed as the end bound of a range of entries, to denote the
// last entry of a container whatever its length.
const End = math.MaxInt

// keyIndexMin is the smallest object for which ByKey builds a hash index of
// member names rather than searching the members in order.
const keyIndexMin = 16

// A Node is a lazy view of a single JSON value in the source text of a
// Parser. Construction of a Node for an object or array records the location
// of each of its immediate children, but the children themselves are not
// examined until requested, and are shared once created.
type Node struct {
	buf    mem.RO
	parent *Node
	key    string // path element of this node in its parent

	typ      Type
	pos, end int
	length   int

	kids  []entry
	cache []atomic.Pointer[Node] // written at most once per slot

	indexOnce sync.Once
	index     map[string]int
}

func newNode(buf mem.RO, parent *Node, key string, v scanned) *Node {
	n := &Node{
		buf:    buf,
		parent: parent,
		key:    key,
		typ:    v.typ,
		pos:    v.pos,
		end:    v.end,
		length: v.length,
	}
	if v.typ.IsContainer() {
		n.kids = v.kids
		n.cache = make([]atomic.Pointer[Node], len(v.kids))
	}
	return n
}

// Type reports the type of the value at n.
func (n *Node) Type() Type { return n.typ }

// Span reports the span of the source text of n, including quotation marks,
// brackets, or braces.
func (n *Node) Span() Span { return Span{Pos: n.pos, End: n.end} }

// Chars reports the length in bytes of the source text of n.
func (n *Node) Chars() int { return n.end - n.pos }

// Len reports the length of n. For a string, this is the number of runes
// in the decoded string. For an object or array, it is the number of members
// or elements. For other types, Len is 0.
func (n *Node) Len() int { return n.length }

// Key reports the final element of the path of n: its member name, if its
// parent is an object, or its decimal index, if its parent is an array.
// The root has an empty key.
func (n *Node) Key() string { return n.key }

// Parent returns the parent of n, or nil if n is the root.
func (n *Node) Parent() *Node { return n.parent }

// Depth reports the number of steps from the root to n.
func (n *Node) Depth() int {
	var d int
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Path returns the sequence of keys from the root to n. The root has an
// empty path. Path returns a fresh slice on each call.
func (n *Node) Path() []string {
	path := make([]string, 0, n.Depth())
	for p := n; p.parent != nil; p = p.parent {
		path = append(path, p.key)
	}
	slices.Reverse(path)
	return path
}

// Text returns a copy of the undecoded source text of n.
func (n *Node) Text() []byte { return mem.Append(nil, n.raw()) }

// Location reports the complete source location of n.
func (n *Node) Location() Location {
	return Location{
		Span:  n.Span(),
		First: lineCol(n.buf, n.pos),
		Last:  lineCol(n.buf, n.end),
	}
}

func (n *Node) String() string {
	if n.typ.IsContainer() || n.typ == String {
		return fmt.Sprintf("%s[len=%d] at %v", n.typ, n.length, n.Span())
	}
	return fmt.Sprintf("%s at %v", n.typ, n.Span())
}

// Keys returns the member names of the object at n with indices from start
// to end inclusive. Bounds outside the object are clamped to its entries, and
// if start > end the result is empty. If n is not an object, Keys reports an
// error of type *TypeError.
func (n *Node) Keys(start, end int) ([]string, error) {
	if err := typeCheck(Object, n.typ); err != nil {
		return nil, err
	}
	lo, hi := n.bounds(start, end)
	out := make([]string, 0, hi-lo)
	for _, e := range n.kids[lo:hi] {
		out = append(out, e.key)
	}
	return out, nil
}

// ObjectNodes returns the values of the members of the object at n with
// indices from start to end inclusive, clamped as for Keys. If n is not an
// object, ObjectNodes reports an error of type *TypeError.
func (n *Node) ObjectNodes(start, end int) ([]*Node, error) {
	if err := typeCheck(Object, n.typ); err != nil {
		return nil, err
	}
	return n.nodes(start, end), nil
}

// ArrayNodes returns the elements of the array at n with indices from start
// to end inclusive, clamped as for Keys. If n is not an array, ArrayNodes
// reports an error of type *TypeError.
func (n *Node) ArrayNodes(start, end int) ([]*Node, error) {
	if err := typeCheck(Array, n.typ); err != nil {
		return nil, err
	}
	return n.nodes(start, end), nil
}

// Entries returns an iterator over the entries of an object or array at n
// with indices from start to end inclusive, clamped as for Keys. Each entry
// is reported with its key, which for an array is its decimal index. Child
// nodes are created only as the iteration reaches them. For other types the
// iterator yields nothing.
func (n *Node) Entries(start, end int) iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if !n.typ.IsContainer() {
			return
		}
		lo, hi := n.bounds(start, end)
		for i := lo; i < hi; i++ {
			c := n.child(i)
			if !yield(c.key, c) {
				return
			}
		}
	}
}

// Children returns all the members of an object or elements of an array, in
// source order. For other types it returns nil.
func (n *Node) Children() []*Node { return n.nodes(0, End) }

// ByKey returns the value of the first member of the object at n whose name
// is exactly key. It reports false if there is no such member, or if n is not
// an object.
func (n *Node) ByKey(key string) (*Node, bool) {
	if n.typ != Object {
		return nil, false
	}
	if i := n.keyIndex(key); i >= 0 {
		return n.child(i), true
	}
	return nil, false
}

// ByIndex returns the element of an array, or the value of the member of an
// object, at offset i in source order. It reports false if i is out of range
// or n is not an object or array.
func (n *Node) ByIndex(i int) (*Node, bool) {
	if i < 0 || i >= len(n.kids) {
		return nil, false
	}
	return n.child(i), true
}

// ByPath traverses a sequence of keys from n, and returns the node reached.
// At an object, a key is a member name. At an array, a key is the decimal
// index of an element. It reports false as soon as any key does not resolve.
// An empty path resolves to n itself.
//
// For any node v under a root r, r.ByPath(v.Path()...) returns v.
func (n *Node) ByPath(keys ...string) (*Node, bool) {
	cur := n
	for _, key := range keys {
		var next *Node
		var ok bool
		switch cur.typ {
		case Object:
			next, ok = cur.ByKey(key)
		case Array:
			if i, valid := parseIndex(key); valid {
				next, ok = cur.ByIndex(i)
			}
		}
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// bounds converts inclusive bounds start and end into a slice range of n.kids.
func (n *Node) bounds(start, end int) (lo, hi int) {
	nk := len(n.kids)
	lo = min(max(start, 0), nk)
	hi = max(min(end, nk-1)+1, lo)
	return lo, hi
}

func (n *Node) nodes(start, end int) []*Node {
	if !n.typ.IsContainer() {
		return nil
	}
	lo, hi := n.bounds(start, end)
	out := make([]*Node, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, n.child(i))
	}
	return out
}

// child returns the node for the child at offset i, scanning it on first use.
// Concurrent first uses may each scan the child, but only the first node
// stored is ever returned.
func (n *Node) child(i int) *Node {
	if c := n.cache[i].Load(); c != nil {
		return c
	}
	e := n.kids[i]
	v, err := scan(n.buf, e.pos, true)
	if err != nil || v.end != e.end {
		// The span was already checked by the scan of n.
		panic(fmt.Sprintf("jlazy: rescan of %s child %d at %d failed: %v", n.typ, i, e.pos, err))
	}
	key := e.key
	if n.typ == Array {
		key = strconv.Itoa(i)
	}
	c := newNode(n.buf, n, key, v)
	if n.cache[i].CompareAndSwap(nil, c) {
		return c
	}
	return n.cache[i].Load()
}

// keyIndex returns the offset of the first member of n named key, or -1.
func (n *Node) keyIndex(key string) int {
	if len(n.kids) < keyIndexMin {
		for i, e := range n.kids {
			if e.key == key {
				return i
			}
		}
		return -1
	}
	n.indexOnce.Do(func() {
		m := make(map[string]int, len(n.kids))
		for i, e := range n.kids {
			if _, ok := m[e.key]; !ok {
				m[e.key] = i
			}
		}
		n.index = m
	})
	if i, ok := n.index[key]; ok {
		return i
	}
	return -1
}

// parseIndex parses key as the canonical decimal form of an array index, as
// reported by Path.
func parseIndex(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if !isDigit(key[i]) {
			return 0, false
		}
	}
	v, err := strconv.Atoi(key)
	return v, err == nil
}
