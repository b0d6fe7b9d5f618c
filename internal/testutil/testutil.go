// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/creachadair/jlazy"
)

// MustRoot parses input and returns its root node, or fails t.
func MustRoot(t testing.TB, input string) *jlazy.Node {
	t.Helper()
	root, err := jlazy.NewParserString(input).Root()
	if err != nil {
		t.Fatalf("Root %#q: unexpected error: %v", input, err)
	} else if root == nil {
		t.Fatalf("Root %#q: no value", input)
	}
	return root
}

// MustPath resolves path from n, or fails t.
func MustPath(t testing.TB, n *jlazy.Node, path ...string) *jlazy.Node {
	t.Helper()
	v, ok := n.ByPath(path...)
	if !ok {
		t.Fatalf("ByPath %q: not found", path)
	}
	return v
}

// Document generates a pseudo-random JSON document with the given number of
// top-level array elements. The same seed always yields the same document.
func Document(seed uint64, size int) string {
	r := rand.New(rand.NewPCG(seed, seed))
	var buf strings.Builder
	buf.WriteString("[\n")
	for i := range size {
		if i > 0 {
			buf.WriteString(",\n")
		}
		writeValue(&buf, r, 3)
	}
	buf.WriteString("\n]")
	return buf.String()
}

func writeValue(buf *strings.Builder, r *rand.Rand, depth int) {
	k := r.IntN(8)
	if depth == 0 {
		k %= 5
	}
	switch k {
	case 0:
		buf.WriteString("null")
	case 1:
		fmt.Fprint(buf, r.IntN(2) == 0)
	case 2:
		fmt.Fprintf(buf, "%d", r.IntN(100000)-50000)
	case 3:
		fmt.Fprintf(buf, "%g", r.NormFloat64()*1e3)
	case 4:
		fmt.Fprintf(buf, `"s%d \"q\" é\n"`, r.IntN(1000))
	case 5, 6:
		buf.WriteString("{")
		for j := range r.IntN(6) {
			if j > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, `"k%d": `, j)
			writeValue(buf, r, depth-1)
		}
		buf.WriteString("}")
	default:
		buf.WriteString("[")
		for j := range r.IntN(6) {
			if j > 0 {
				buf.WriteString(",")
			}
			writeValue(buf, r, depth-1)
		}
		buf.WriteString("]")
	}
}
