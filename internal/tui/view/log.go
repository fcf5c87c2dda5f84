package view

import (
	"strings"

	"fnctl/internal/color"
)

// PrepareLogContent styles activity log lines by level for the log viewport.
// The viewport handles overflow, so lines are not truncated to maxWidth.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return color.ErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return color.WarningStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return color.SubtleStyle.Render(l)
	default:
		return l
	}
}
