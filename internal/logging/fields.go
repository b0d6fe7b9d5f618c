// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package logging

// Field name constants for structured logging.
const (
	FieldError  = "error"
	FieldFile   = "file"
	FieldPath   = "path"
	FieldConfig = "config"
	FieldBytes  = "bytes"

	// Node attributes.
	FieldType     = "type"
	FieldSpan     = "span"
	FieldChars    = "chars"
	FieldLength   = "length"
	FieldLocation = "location"

	// Pagination.
	FieldStart = "start"
	FieldEnd   = "end"
	FieldCount = "count"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
