// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package jpath implements a minimal JSONPath expression syntax for naming
// single nodes of a JSON document.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/creachadair/jlazy"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." WORD
  step = "[" INDEX "]"
  step = "[" "'" QTEXT "'" "]"
  step = "[" STRING "]"

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`
STRING = { a JSON string literal }

This is the subset of draft-goessner-dispatch-jsonpath-00 that selects at most
one node. Wildcards, recursive descent, slices, unions, filters, and scripts
are reported as errors.
*/

// An Expr is a parsed JSONPath expression. The zero value denotes the root.
type Expr []Step

// Parse parses s as a JSONPath expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var steps Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("at offset %d: %w", len(s)-len(t), err)
		}
		steps = append(steps, step)
		t = rest
	}
	return steps, nil
}

// MustParse parses s as a JSONPath expression, and panics if parsing fails.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("jpath: parse %q: %v", s, err))
	}
	return e
}

// Key constructs a step that selects the member of an object with the given
// name.
func Key(name string) Step { return Step{Op: Member, Arg: name} }

// Index constructs a step that selects the element of an array at offset i.
// Negative offsets count backward from the end.
func Index(i int) Step { return Step{Op: Offset, Arg: strconv.Itoa(i)} }

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		buf.WriteString(s.String())
	}
	return buf.String()
}

// Segments returns the path keys of e in the form accepted by the ByPath
// method of a jlazy.Node. Negative offsets have no equivalent segment, and
// resolve to nothing.
func (e Expr) Segments() []string {
	out := make([]string, len(e))
	for i, s := range e {
		out[i] = s.Arg
	}
	return out
}

// Resolve traverses e from n and returns the node reached. It reports false
// if any step does not resolve: a Member step at a node that is not an object
// or lacks that member, or an Offset step at a node that is not an array or
// out of its range.
func (e Expr) Resolve(n *jlazy.Node) (*jlazy.Node, bool) {
	cur := n
	for _, s := range e {
		var ok bool
		switch s.Op {
		case Member:
			cur, ok = cur.ByKey(s.Arg)
		case Offset:
			if cur.Type() != jlazy.Array {
				return nil, false
			}
			i, err := strconv.Atoi(s.Arg)
			if err != nil {
				return nil, false
			}
			if i < 0 {
				i += cur.Len()
			}
			cur, ok = cur.ByIndex(i)
		}
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// FromNode returns an expression that selects n from the root of its
// document.
func FromNode(n *jlazy.Node) Expr {
	out := make(Expr, n.Depth())
	for p, i := n, len(out)-1; p.Parent() != nil; p, i = p.Parent(), i-1 {
		if p.Parent().Type() == jlazy.Array {
			out[i] = Step{Op: Offset, Arg: p.Key()}
		} else {
			out[i] = Key(p.Key())
		}
	}
	return out
}

// Format renders the path of n from the root of its document as a string in
// JSONPath notation.
func Format(n *jlazy.Node) string { return FromNode(n).String() }

func parseStep(s string) (_ Step, rest string, _ error) {
	if strings.HasPrefix(s, "..") {
		return Step{}, s, errors.New("recursive descent is not supported")
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		if strings.HasPrefix(t, "*") {
			return Step{}, s, errors.New("wildcard is not supported")
		}
		m := wordRE.FindStringSubmatch(t)
		if m == nil {
			return Step{}, s, errors.New("invalid .name")
		}
		return Key(m[1]), t[len(m[0]):], nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		step, u, err := parseValue(t)
		if err != nil {
			return Step{}, t, err
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return Step{}, u, errors.New("missing close bracket")
		}
		return step, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func parseValue(s string) (_ Step, rest string, _ error) {
	switch {
	case strings.HasPrefix(s, "?("):
		return Step{}, s, errors.New("filter is not supported")
	case strings.HasPrefix(s, "("):
		return Step{}, s, errors.New("script is not supported")
	case strings.HasPrefix(s, "*"):
		return Step{}, s, errors.New("wildcard is not supported")
	case strings.HasPrefix(s, ":"):
		return Step{}, s, errors.New("slice is not supported")
	}
	if m := indexRE.FindStringSubmatch(s); m != nil {
		u := s[len(m[0]):]
		if strings.HasPrefix(u, ":") {
			return Step{}, s, errors.New("slice is not supported")
		} else if strings.HasPrefix(u, ",") {
			return Step{}, s, errors.New("union is not supported")
		}
		if _, err := strconv.Atoi(m[1]); err != nil {
			return Step{}, s, fmt.Errorf("invalid index: %w", err)
		}
		return Step{Op: Offset, Arg: m[1]}, u, nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return Key(m[1]), s[len(m[0]):], nil
	}
	if strings.HasPrefix(s, `"`) {
		end, ok := stringEnd(s)
		if !ok {
			return Step{}, s, errors.New("unterminated string")
		}
		name, err := jlazy.Unquote(s[:end])
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid string: %w", err)
		}
		return Key(name), s[end:], nil
	}
	return Step{}, s, fmt.Errorf("invalid value: %q", s)
}

// stringEnd returns the offset just past the close quotation mark of the
// double-quoted string at the beginning of s.
func stringEnd(s string) (int, bool) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1, true
		}
	}
	return 0, false
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
	plainRE = regexp.MustCompile(`^\w+$`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid Op = iota // invalid operator
	Member            // object member lookup
	Offset            // array element lookup
)

var opText = [...]string{
	Invalid: "invalid",
	Member:  "member",
	Offset:  "offset",
}

func (o Op) String() string {
	if int(o) < len(opText) {
		return opText[o]
	}
	return opText[Invalid]
}

// A Step is a single step of a JSONPath expression.
type Step struct {
	Op  Op
	Arg string // the member name, or the decimal offset
}

// String renders s in JSONPath notation. Member names that are not plain
// words are rendered in brackets as JSON strings.
func (s Step) String() string {
	switch s.Op {
	case Member:
		if plainRE.MatchString(s.Arg) {
			return "." + s.Arg
		}
		return "[" + jlazy.Quote(s.Arg) + "]"
	case Offset:
		return "[" + s.Arg + "]"
	default:
		return "[?]"
	}
}
