// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/creachadair/jlazy"
	"github.com/creachadair/jlazy/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestValueMatchesStdlib(t *testing.T) {
	inputs := []string{
		`{"name": "x", "list": [1, 2.5, -3e2, true, false, null], "nest": {"a": {"b": []}}}`,
		`[[], {}, "", 0, -0, 1E-3]`,
		`"plain string"`,
		`{"dup": 1, "dup": 2}`,
	}
	for seed := range uint64(8) {
		inputs = append(inputs, testutil.Document(seed, 25))
	}
	for _, input := range inputs {
		var want any
		if err := json.Unmarshal([]byte(input), &want); err != nil {
			t.Fatalf("Unmarshal %#q: %v", input, err)
		}
		got, err := testutil.MustRoot(t, input).Value()
		if err != nil {
			t.Errorf("Value %#q: unexpected error: %v", input, err)
		} else if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Value %#q (-want, +got):\n%s", input, diff)
		}
	}
}

func TestValueSubtree(t *testing.T) {
	root := testutil.MustRoot(t, `{"a": [1, {"b": "c"}], "z": null}`)
	v, err := testutil.MustPath(t, root, "a", "1").Value()
	if err != nil {
		t.Fatalf("Value: unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"b": "c"}, v); diff != "" {
		t.Errorf("Value (-want, +got):\n%s", diff)
	}
}

func TestValueErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`1e400`, "value out of range"},
		{`[0, 1e400]`, "index 1: "},
		{`{"a": {"b": [-1e999]}}`, `member "a": member "b": index 0: `},
	}
	for _, test := range tests {
		v, err := testutil.MustRoot(t, test.input).Value()
		if err == nil {
			t.Errorf("Value %#q: got %v, want error", test.input, v)
		} else if !strings.Contains(err.Error(), test.want) {
			t.Errorf("Value %#q: got error %q, want %q", test.input, err, test.want)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input   string
		float   float64
		int     int64
		intFail bool
	}{
		{`0`, 0, 0, false},
		{`-0`, 0, 0, false},
		{`12345`, 12345, 12345, false},
		{`-9007199254740993`, -9007199254740992, -9007199254740993, false},
		{`9223372036854775807`, 9223372036854775807, 9223372036854775807, false},
		{`9223372036854775808`, 9223372036854775808, 0, true},
		{`1.5`, 1.5, 0, true},
		{`2e3`, 2000, 0, true},
		{`-0.25E+2`, -25, 0, true},
	}
	for _, test := range tests {
		n := testutil.MustRoot(t, test.input)
		if got, err := n.Float64(); err != nil {
			t.Errorf("Float64 %#q: unexpected error: %v", test.input, err)
		} else if got != test.float {
			t.Errorf("Float64 %#q: got %v, want %v", test.input, got, test.float)
		}
		got, err := n.Int64()
		if test.intFail {
			if err == nil {
				t.Errorf("Int64 %#q: got %d, want error", test.input, got)
			}
		} else if err != nil {
			t.Errorf("Int64 %#q: unexpected error: %v", test.input, err)
		} else if got != test.int {
			t.Errorf("Int64 %#q: got %d, want %d", test.input, got, test.int)
		}
	}
}

func TestScalarAccessors(t *testing.T) {
	root := testutil.MustRoot(t, `["a\/b", true, false]`)
	kids := root.Children()
	if s, err := kids[0].Str(); err != nil || s != "a/b" {
		t.Errorf("Str: got (%q, %v), want a/b", s, err)
	}
	if b, err := kids[1].Bool(); err != nil || !b {
		t.Errorf("Bool: got (%v, %v), want true", b, err)
	}
	if b, err := kids[2].Bool(); err != nil || b {
		t.Errorf("Bool: got (%v, %v), want false", b, err)
	}

	// Decoding a value does not change the node or its source.
	if got := string(kids[0].Text()); got != `"a\/b"` {
		t.Errorf("Text: got %#q, want %#q", got, `"a\/b"`)
	}
	if got := kids[0].Len(); got != 3 {
		t.Errorf("Len: got %d, want 3", got)
	}
}

func TestParserRetainsInput(t *testing.T) {
	data := []byte(`{"k": "v"}`)
	p := jlazy.NewParser(data)
	if got := p.Len(); got != len(data) {
		t.Errorf("Len: got %d, want %d", got, len(data))
	}
	root, err := p.Root()
	if err != nil {
		t.Fatalf("Root: unexpected error: %v", err)
	}
	text := root.Text()
	text[0] = '!'
	if data[0] != '{' {
		t.Error("Text returned an alias of the input")
	}
}
