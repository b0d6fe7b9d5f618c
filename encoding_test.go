// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy_test

import (
	"testing"

	"github.com/creachadair/jlazy"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", "\"\\u2028 \\u2029 \ufffd\""},
		{"bad \xff byte", "\"bad \\ufffd byte\""},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
	}
	for _, test := range tests {
		got := jlazy.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "tab\there", "\"quoted\"", "\u00e9\U0001F600", "\x01\x1f\\"} {
		q := jlazy.Quote(s)
		root, err := jlazy.NewParserString(q).Root()
		if err != nil {
			t.Errorf("Parse %#q: %v", q, err)
			continue
		}
		got, err := root.Str()
		if err != nil {
			t.Errorf("Str %#q: %v", q, err)
		} else if got != s {
			t.Errorf("Round trip %#q: got %#q, want %#q", q, got, s)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                          // missing quotes
		{`"`, ``, true},                         // missing quotes
		{`"missing quote`, ``, true},            // missing quotes
		{`missing quote"`, ``, true},            // missing quotes
		{`""`, ``, false},                       // ok
		{`"ok go"`, "ok go", false},             // ok
		{`"abc\ndef"`, "abc\ndef", false},       // C escapes
		{`"\tabc\n"`, "\tabc\n", false},         // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false},   // C escapes
		{`"a \u0026 b"`, "a & b", false},        // short Unicode escape
		{`"\ud83d\ude00"`, "\U0001F600", false}, // surrogate pair
		{`"\ud83d x"`, "\ufffd x", false},   // unpaired surrogate
		{`"\ude00\ud83d"`, "\ufffd\ufffd", false},
		{`"\u"`, ``, true},            // incomplete Unicode escape
		{`"\u00"`, ``, true},          // incomplete Unicode escape
		{`"\u00x9"`, "\ufffd", false}, // invalid Unicode escape
		{`"\u019 "`, "\ufffd", false}, // invalid Unicode escape
		{`"\q"`, "\ufffd", false},     // invalid escape
		{`"a\"b"`, `a"b`, false},      // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},
		{`"trailing\"`, ``, true}, // incomplete escape
	}

	for _, test := range tests {
		got, err := jlazy.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if got != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}
