package engine

import (
	"fmt"
	"strings"

	"github.com/RMahshie/sada/pkg/models"
)

// FormatLevel renders a level as "<name>: <value> <unit>" with two decimals
func FormatLevel(l models.Level) string {
	return fmt.Sprintf("%s: %.2f %s", l.Name, l.Value, l.Unit)
}

// RenderLines renders levels in the order given
func RenderLines(levels []models.Level) []string {
	lines := make([]string, 0, len(levels))
	for _, l := range levels {
		lines = append(lines, FormatLevel(l))
	}
	return lines
}

// JoinLines joins the populated lines with newlines, skipping empty ones.
// It returns an empty string when no line is populated.
func JoinLines(lines []string) string {
	populated := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			populated = append(populated, line)
		}
	}
	return strings.Join(populated, "\n")
}
