// Package output provides terminal formatting helpers for dentrack.
package output

import (
	"fmt"
	"os"
	"strings"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

var useColor = true

// DisableColor disables colored output.
func DisableColor() {
	useColor = false
}

// EnableColor enables colored output.
func EnableColor() {
	useColor = true
}

// IsColorEnabled returns whether color output is enabled.
func IsColorEnabled() bool {
	return useColor && isTerminal()
}

// isTerminal checks if stdout is a terminal.
func isTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Color applies a color to text if color is enabled.
func Color(text, color string) string {
	if !IsColorEnabled() {
		return text
	}
	return color + text + Reset
}

// ProgressBar renders an adventure completion percentage as a bar.
func ProgressBar(percent float64, width int) string {
	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return Color("["+bar+"]", percentColor(percent))
}

// FormatPercent formats a percentage with color.
func FormatPercent(percent float64) string {
	return Color(fmt.Sprintf("%.1f%%", percent), percentColor(percent))
}

// percentColor grades a completion percentage: complete green, started
// yellow, barely started red.
func percentColor(percent float64) string {
	switch {
	case percent >= 100:
		return Green
	case percent >= 50:
		return Yellow
	default:
		return Red
	}
}

// Checkmark returns a colored checkmark or X.
func Checkmark(ok bool) string {
	if ok {
		return Color("✓", Green)
	}
	return Color("✗", Red)
}

// DoneIcon marks a requirement or adventure as earned or pending.
func DoneIcon(done bool) string {
	if done {
		return Color("✓", Green)
	}
	return Color("·", Dim)
}

// Header creates a formatted header line.
func Header(text string, width int) string {
	padding := (width - len(text) - 2) / 2
	if padding < 0 {
		padding = 0
	}
	line := strings.Repeat("=", padding) + " " + text + " " + strings.Repeat("=", padding)
	for len(line) < width {
		line += "="
	}
	return Color(line, Bold)
}

// SubHeader creates a formatted subheader line.
func SubHeader(text string, width int) string {
	padding := (width - len(text) - 2) / 2
	if padding < 0 {
		padding = 0
	}
	line := strings.Repeat("-", padding) + " " + text + " " + strings.Repeat("-", padding)
	for len(line) < width {
		line += "-"
	}
	return Color(line, Dim)
}

// Truncate truncates text to a maximum width with ellipsis.
func Truncate(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}
	if maxWidth <= 3 {
		return text[:maxWidth]
	}
	return text[:maxWidth-3] + "..."
}

// PadRight pads text to a minimum width.
func PadRight(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}

// PadLeft pads text to a minimum width.
func PadLeft(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat(" ", width-len(text)) + text
}
