package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/skilylabs/skily/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗  ██╗██╗██╗  ██╗   ██╗
 ██╔════╝██║ ██╔╝██║██║  ╚██╗ ██╔╝
 ███████╗█████╔╝ ██║██║   ╚████╔╝
 ╚════██║██╔═██╗ ██║██║    ╚██╔╝
 ███████║██║  ██╗██║███████╗██║
 ╚══════╝╚═╝  ╚═╝╚═╝╚══════╝╚═╝`

const bannerCompact = "S K I L Y"

// RenderBanner returns the SKILY banner in the skin's primary color,
// with a compact fallback for terminals narrower than 40 columns.
func RenderBanner(skin theme.Skin, width int) string {
	style := lipgloss.NewStyle().
		Foreground(skin.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
