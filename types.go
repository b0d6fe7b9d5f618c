// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

// Type is the type of a JSON value.
type Type byte

// Constants defining the valid Type values.
const (
	Invalid Type = iota // no value
	Object              // object: { ... }
	Array               // array: [ ... ]
	String              // quoted string
	Number              // number: integer, fraction and/or exponent
	Boolean             // constant: true or false
	Null                // constant: null
)

var typeStr = [...]string{
	Invalid: "value",
	Object:  "object",
	Array:   "array",
	String:  "string",
	Number:  "number",
	Boolean: "boolean",
	Null:    "null",
}

func (t Type) String() string {
	if int(t) >= len(typeStr) {
		return typeStr[Invalid]
	}
	return typeStr[t]
}

// IsContainer reports whether t is Object or Array.
func (t Type) IsContainer() bool { return t == Object || t == Array }
