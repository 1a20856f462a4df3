package components

import (
	"charm.land/lipgloss/v2"

	"github.com/skilylabs/skily/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for centered
// panels, so stacked boxes visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for outer border (2) + inner padding (4).
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// DashFrame wraps content in a double-border frame, centered within
// the given dimensions. Used by the welcome and home screens.
func DashFrame(skin theme.Skin, content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(skin.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel wraps content in a rounded-border card at the given width.
func Panel(skin theme.Skin, content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(skin.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// PanelButton renders a full-width selectable button.
func PanelButton(skin theme.Skin, label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(skin.BgDark).
			Background(skin.Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(skin.Accent).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(skin.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(skin.Border).
		Padding(0, 1).
		Render(label)
}
