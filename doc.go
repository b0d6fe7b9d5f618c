// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jlazy implements a lazy, random-access index over the text of a
// JSON document.
//
// Rather than decoding a whole document into memory, a Parser scans only as
// much of the text as is needed to answer a question about it: the type of a
// value, its length, the offsets of its source text, or the locations of its
// immediate children. Nested values are checked for syntax as they are
// skipped over, but are not indexed until requested.
//
// # Parsing
//
// Construct a Parser from the complete text of a document and call its Root
// method to obtain the Node for the top-level value:
//
//	p := jlazy.NewParser(data)
//	root, err := p.Root()
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	} else if root == nil {
//	   log.Fatal("Empty input")
//	}
//
// A syntax error is reported as a *jlazy.IncompleteError if the input ends
// before the value is complete, or a *jlazy.TokenError giving the offset of
// an unexpected character.
//
// # Nodes
//
// A Node reports the Type, Span, Chars, and Len of its value, and its Path
// from the root. The children of an object or array are available by range
// (Keys, ObjectNodes, ArrayNodes), by name (ByKey), by offset (ByIndex), or by
// a sequence of keys (ByPath):
//
//	keys, err := root.Keys(0, 9)     // the first 10 member names
//	elts, err := list.ArrayNodes(100, jlazy.End) // elements from 100 on
//	v, ok := root.ByPath("episodes", "0", "airDate")
//
// Range bounds are inclusive, and are clamped to the entries of the node.
// Children are constructed when first requested and shared thereafter.
//
// # Values
//
// The Value method decodes the value of a node. For strings, numbers,
// Booleans, and null this examines only the text of the node itself. For
// objects and arrays, Value decodes the entire subtree, so callers should use
// it only where the full value is needed:
//
//	JSON type  | Value result   | Typed accessor
//	---------- | -------------- | ----------------
//	object     | map[string]any |
//	array      | []any          |
//	string     | string         | Str
//	number     | float64        | Float64, Int64
//	boolean    | bool           | Bool
//	null       | nil            |
//
// Node methods are safe for concurrent use by multiple goroutines.
package jlazy
