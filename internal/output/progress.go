package output

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/trend"
)

// ScoreBar renders a visual progress bar for a 0-100 score, colored by the
// score's recovery status.
// Example: "████████░░ 80/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	color := health.StatusFor(score).Color()

	return fmt.Sprintf("%s %s", Hex(bar, color), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// Status renders a recovery status label in its color.
func Status(s health.Status) string {
	return Hex(s.Label(), s.Color())
}

// Trend renders a trend tag as its arrow and name in the tag's color.
func Trend(t trend.Tag) string {
	return Hex(fmt.Sprintf("%s %s", t.Symbol(), t), t.Color())
}

// Change renders a signed percent change, green when it is an improvement.
func Change(percent float64, lowerIsBetter bool) string {
	if percent == 0 {
		return StyleMuted.Render("─")
	}
	text := fmt.Sprintf("%+.1f%%", percent)
	if (percent > 0) != lowerIsBetter {
		return StyleSuccess.Render(text)
	}
	return StyleError.Render(text)
}

// Section returns a styled section header with a horizontal rule of the
// given width.
func Section(title string, width int) string {
	if width <= 0 {
		width = 66
	}
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", width))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
