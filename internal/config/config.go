// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package config defines the settings of the jlazy command-line tool and
// loads them from YAML files and the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/creachadair/jlazy/internal/logging"
)

// Config holds the settings of the command-line tool.
type Config struct {
	// PageSize is the number of entries listed by keys and ls when no end
	// bound is given.
	PageSize int `yaml:"page_size"`

	// HuJSON enables standardization of JWCC input (comments and trailing
	// commas) before the document is indexed.
	HuJSON bool `yaml:"hujson"`

	// Color selects colorized output: auto, always, or never.
	Color string `yaml:"color"`

	// LogLevel is the level of diagnostic logging: debug, info, warn, or
	// error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		PageSize: 20,
		Color:    "auto",
		LogLevel: "info",
	}
}

// ValidationError reports an invalid configuration setting.
type ValidationError struct {
	Field   string // the YAML name of the field
	Value   any    // the invalid value
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// Validate reports an error for each invalid setting of c.
func (c *Config) Validate() error {
	var errs []error
	if c.PageSize <= 0 {
		errs = append(errs, &ValidationError{
			Field: "page_size", Value: c.PageSize, Message: "must be positive",
		})
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, &ValidationError{
			Field: "color", Value: c.Color, Message: "must be auto, always, or never",
		})
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, &ValidationError{
			Field: "log_level", Value: c.LogLevel, Message: "must be debug, info, warn, or error",
		})
	}
	return errors.Join(errs...)
}
