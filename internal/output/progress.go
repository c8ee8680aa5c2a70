package output

import (
	"fmt"
	"strings"
)

// GoalBar renders a visual progress bar for weekly progress toward a goal.
// Example: "██████░░░░ 6.0/15"
func GoalBar(current, goal float64, width int) string {
	if width <= 0 {
		width = 20
	}
	frac := 0.0
	if goal > 0 {
		frac = current / goal
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case frac >= 1:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case frac >= 0.5:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.1f/%.0f", current, goal)))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
