package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skilylabs/skily/internal/ui/theme"
)

// ProgressBar is a horizontal bar with an optional label and percent
// readout, used for mastery and level progress.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// View renders the bar with the given skin.
func (p ProgressBar) View(skin theme.Skin) string {
	var result string

	if p.Label != "" {
		result += skin.Body().Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(skin.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(skin.Border).
		Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += skin.Subtitle().Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}
