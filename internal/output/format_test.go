package output

import (
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		width   int
		want    string
	}{
		{"empty", 0, 4, "[░░░░]"},
		{"half", 50, 4, "[██░░]"},
		{"full", 100, 4, "[████]"},
		{"over", 150, 4, "[████]"},
		{"negative", -10, 4, "[░░░░]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(ProgressBar(tt.percent, tt.width))
			if got != tt.want {
				t.Errorf("ProgressBar(%.0f, %d) = %q, want %q", tt.percent, tt.width, got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	got := stripANSI(FormatPercent(33.333))
	if got != "33.3%" {
		t.Errorf("FormatPercent = %q, want 33.3%%", got)
	}
}

func TestPercentColor(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{100, Green},
		{120, Green},
		{50, Yellow},
		{99.9, Yellow},
		{49.9, Red},
		{0, Red},
	}

	for _, tt := range tests {
		if got := percentColor(tt.percent); got != tt.want {
			t.Errorf("percentColor(%.1f) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestCheckmarkAndDoneIcon(t *testing.T) {
	if got := stripANSI(Checkmark(true)); got != "✓" {
		t.Errorf("Checkmark(true) = %q", got)
	}
	if got := stripANSI(Checkmark(false)); got != "✗" {
		t.Errorf("Checkmark(false) = %q", got)
	}
	if got := stripANSI(DoneIcon(true)); got != "✓" {
		t.Errorf("DoneIcon(true) = %q", got)
	}
	if got := stripANSI(DoneIcon(false)); got != "·" {
		t.Errorf("DoneIcon(false) = %q", got)
	}
}

func TestHeaderWidth(t *testing.T) {
	got := stripANSI(Header("Status", 40))
	if len(got) < 40 {
		t.Errorf("Header shorter than requested width: %q", got)
	}
	if !strings.Contains(got, " Status ") {
		t.Errorf("Header missing centered text: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is far too long", 10, "this is..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 4); got != "  ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("abcd", 2); got != "abcd" {
		t.Errorf("PadRight must not truncate: %q", got)
	}
}
