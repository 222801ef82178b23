package output

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable("Scout", "Progress")
	table.AddRow("Maya", "100%")
	table.AddRow("Ben", "50%")

	got := table.Render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	// separator, header, separator, 2 rows, separator
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[1], "Scout") || !strings.Contains(lines[1], "Progress") {
		t.Errorf("Header row missing: %q", lines[1])
	}
	if !strings.HasPrefix(lines[0], "+") || !strings.HasSuffix(lines[0], "+") {
		t.Errorf("Bad separator: %q", lines[0])
	}
	for _, line := range lines[1:5] {
		if len(line) != len(lines[0]) {
			t.Errorf("Ragged table: %q vs %q", line, lines[0])
		}
	}
}

func TestTableColumnWidthIgnoresANSI(t *testing.T) {
	table := NewTable("A")
	table.AddRow(Green + "ok" + Reset)
	table.AddRow("longer")

	got := table.Render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	sep := lines[0]

	// Widths come from visible text, so the colored row pads like "ok".
	if stripANSI(sep) != sep {
		t.Errorf("Separator must carry no escape codes: %q", sep)
	}
	for _, line := range lines {
		if w := displayWidth(line); w != len(sep) {
			t.Errorf("Line visible width %d != separator width %d: %q", w, len(sep), line)
		}
	}
}

func TestTableAddRowPadsShortRows(t *testing.T) {
	table := NewTable("A", "B", "C")
	table.AddRow("only")

	got := table.Render()
	if !strings.Contains(got, "only") {
		t.Errorf("Row content missing:\n%s", got)
	}
	// Extra cells beyond the headers are dropped.
	table.AddRow("1", "2", "3", "4")
	if strings.Contains(table.Render(), "4") {
		t.Error("Cells beyond the header count must be dropped")
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "plain", "plain"},
		{"colored", "\033[32mgreen\033[0m", "green"},
		{"nested", "\033[1;31mbold red\033[0m", "bold red"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripANSI(tt.input); got != tt.want {
				t.Errorf("stripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
