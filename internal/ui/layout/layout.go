package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skilylabs/skily/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats is the learner summary shown on the right of the header.
type HeaderStats struct {
	Level  int
	XP     int
	Streak int
}

// IsCompactWidth reports whether width is in the compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight reports whether height is in the compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" notice.
func RenderMinSizeMessage(skin theme.Skin, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(skin.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the application header bar: brand on the left,
// screen title centered, learner stats on the right.
func RenderHeader(skin theme.Skin, title string, stats HeaderStats, width int) string {
	left := lipgloss.NewStyle().
		Foreground(skin.Primary).
		Bold(true).
		Render("  Skily")

	center := lipgloss.NewStyle().
		Foreground(skin.Text).
		Render(title)

	right := lipgloss.NewStyle().
		Foreground(skin.Accent).
		Render(fmt.Sprintf("Lv %d · %d XP", stats.Level, stats.XP)) +
		lipgloss.NewStyle().
			Foreground(skin.TextDim).
			Render("   ") +
		lipgloss.NewStyle().
			Foreground(skin.Accent).
			Render(fmt.Sprintf("🔥 %d day", stats.Streak))

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4 // border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Width(width).
		Background(skin.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(skin.Border).
		Render(content)
}

// RenderFooter renders the footer key hints.
func RenderFooter(skin theme.Skin, hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(skin.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(skin.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return lipgloss.NewStyle().
		Width(width).
		Background(skin.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(skin.Border).
		Render(content)
}

// RenderFrame stacks header, content and footer into the full frame.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
