// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

import "fmt"

// IncompleteError is reported when the input ends before a value of the
// given kind is complete. Kind is Invalid if no value began at all.
type IncompleteError struct {
	Kind Type
}

// Error satisfies the error interface.
func (e *IncompleteError) Error() string {
	return fmt.Sprintf("parse %s incomplete at end", e.Kind)
}

// TokenError is reported when the input has a byte that does not fit the
// grammar at its position.
type TokenError struct {
	Char   rune // the offending character
	Offset int  // 0-based byte offset of Char in the input
}

// Error satisfies the error interface.
func (e *TokenError) Error() string {
	return fmt.Sprintf("parse value unknown token %c at %d", e.Char, e.Offset)
}

// TypeError is reported when an operation that requires a node of one type
// is applied to a node of another.
type TypeError struct {
	Want, Got Type
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type mismatch: want %s, got %s", e.Want, e.Got)
}

func typeCheck(want, got Type) error {
	if want != got {
		return &TypeError{Want: want, Got: got}
	}
	return nil
}
