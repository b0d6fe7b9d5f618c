// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package pretty provides Lipgloss-based styled output for the jlazy
// command-line tool.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/creachadair/jlazy"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	Header lipgloss.Style // column headings
	Key    lipgloss.Style // member names and path steps
	Path   lipgloss.Style // full JSONPath expressions
	Dim    lipgloss.Style // spans, counts, and other detail
	Error  lipgloss.Style
	Bold   lipgloss.Style

	// Type names, by the type of value they denote.
	Container lipgloss.Style
	Str       lipgloss.Style
	Number    lipgloss.Style
	Literal   lipgloss.Style // true, false, and null
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Header: plain, Key: plain, Path: plain, Dim: plain, Error: plain, Bold: plain,
			Container: plain, Str: plain, Number: plain, Literal: plain,
		}
	}
	return &Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Path:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Bold:   lipgloss.NewStyle().Bold(true),

		Container: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Str:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Number:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Literal:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Type renders the name of t in its style.
func (s *Styles) Type(t jlazy.Type) string {
	switch t {
	case jlazy.Object, jlazy.Array:
		return s.Container.Render(t.String())
	case jlazy.String:
		return s.Str.Render(t.String())
	case jlazy.Number:
		return s.Number.Render(t.String())
	case jlazy.Boolean, jlazy.Null:
		return s.Literal.Render(t.String())
	default:
		return s.Error.Render(t.String())
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
