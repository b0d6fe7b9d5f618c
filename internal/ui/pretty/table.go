// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = 2

// A Table accumulates rows of styled cells and renders them with columns
// aligned by display width. The last column is not padded.
type Table struct {
	header []string
	rows   [][]string
}

// NewTable constructs an empty table with the given column headings. If no
// headings are given, the table has no header line.
func NewTable(header ...string) *Table { return &Table{header: header} }

// Add appends a row of cells, which may already carry styling.
func (t *Table) Add(cells ...string) { t.rows = append(t.rows, cells) }

// Len reports the number of rows added to t, not counting the header.
func (t *Table) Len() int { return len(t.rows) }

// Render returns the text of the table, one line per row, each line ending in
// a newline. If set, headerStyle is applied to the heading cells.
func (t *Table) Render(headerStyle *lipgloss.Style) string {
	all := t.rows
	if len(t.header) > 0 {
		hdr := t.header
		if headerStyle != nil {
			hdr = make([]string, len(t.header))
			for i, h := range t.header {
				hdr[i] = headerStyle.Render(h)
			}
		}
		all = append([][]string{hdr}, t.rows...)
	}

	var widths []int
	for _, row := range all {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var sb strings.Builder
	for _, row := range all {
		for i, cell := range row {
			sb.WriteString(cell)
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+columnGap))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
