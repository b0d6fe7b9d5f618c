// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy_test

import (
	"encoding/json"
	"testing"

	"github.com/creachadair/jlazy"
	"github.com/creachadair/jlazy/internal/testutil"
)

func BenchmarkRoot(b *testing.B) {
	input := []byte(testutil.Document(1, 5000))
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Root", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			if _, err := jlazy.NewParser(input).Root(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	// Resolving a single deep element pays only for the containers along the
	// path, plus the top-level scan.
	b.Run("ByPath", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			root, err := jlazy.NewParser(input).Root()
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			if _, ok := root.ByPath("4999"); !ok {
				b.Fatal("Element not found")
			}
		}
	})

	b.Run("Value", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			root, err := jlazy.NewParser(input).Root()
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			if _, err := root.Value(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
