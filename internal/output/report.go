package output

import (
	"fmt"
	"strings"

	"github.com/quenby-systems/passgate/internal/analyzer"
)

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// ScoreBar renders a visual bar for a score out of total.
// Example: "████████░░░░ 8/12"
func ScoreBar(score, total, width int) string {
	if width <= 0 {
		width = 24
	}
	if total <= 0 {
		total = 1
	}
	filled := score * width / total
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	ratio := float64(score) / float64(total)
	var styled string
	switch {
	case ratio >= 0.75:
		styled = StyleSuccess.Render(bar)
	case ratio >= 0.5:
		styled = StyleWarning.Render(bar)
	default:
		styled = StyleError.Render(bar)
	}

	return fmt.Sprintf("%s %s", styled, StyleMuted.Render(fmt.Sprintf("%d/%d", score, total)))
}

// StrengthLabel renders a strength label styled by severity, in display
// form ("very_strong" becomes "Very Strong").
func StrengthLabel(s analyzer.Strength) string {
	text := DisplayName(string(s))
	switch s {
	case analyzer.StrengthExcellent, analyzer.StrengthVeryStrong:
		return StyleSuccess.Render(text)
	case analyzer.StrengthStrong, analyzer.StrengthModerate:
		return StyleWarning.Render(text)
	default:
		return StyleError.Render(text)
	}
}

// DisplayName converts a snake_case identifier to a spaced title form.
func DisplayName(id string) string {
	parts := strings.Split(id, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
