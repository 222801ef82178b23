package output

import (
	"strings"
	"unicode/utf8"
)

// Table renders rows of report data as an ASCII table. Cell values may
// contain ANSI color codes; widths are computed on the visible text.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	t := &Table{
		headers: headers,
		widths:  make([]int, len(headers)),
	}
	for i, h := range headers {
		t.widths[i] = displayWidth(h)
	}
	return t
}

// AddRow adds a row, padding or dropping cells to the header count.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
	for i, cell := range row {
		if w := displayWidth(cell); w > t.widths[i] {
			t.widths[i] = w
		}
	}
}

// Render returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(t.separator())
	sb.WriteString("\n")
	sb.WriteString(t.row(t.headers))
	sb.WriteString("\n")
	sb.WriteString(t.separator())
	sb.WriteString("\n")
	for _, row := range t.rows {
		sb.WriteString(t.row(row))
		sb.WriteString("\n")
	}
	sb.WriteString(t.separator())
	sb.WriteString("\n")
	return sb.String()
}

// separator creates a line like +-----+-----+
func (t *Table) separator() string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

// row creates a line like | val | val |
func (t *Table) row(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = " " + padToWidth(cell, t.widths[i]) + " "
	}
	return "|" + strings.Join(parts, "|") + "|"
}

// displayWidth returns the visible width of a string, ignoring ANSI
// escape codes.
func displayWidth(s string) int {
	return utf8.RuneCountInString(stripANSI(s))
}

// stripANSI removes ANSI escape codes from a string.
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// padToWidth pads a string to the given display width, handling ANSI codes.
func padToWidth(s string, width int) string {
	current := displayWidth(s)
	if current >= width {
		return s
	}
	return s + strings.Repeat(" ", width-current)
}
