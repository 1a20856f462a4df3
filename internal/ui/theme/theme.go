// Package theme defines the visual skins. A Skin is plain data passed
// to whatever renders; there is no package-level active theme.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
)

// Skin is one named color palette plus the styles derived from it.
type Skin struct {
	Name string

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
}

// skins is the fixed catalog, in unlock order.
var skins = []Skin{
	{
		Name:      "cadet",
		Primary:   lipgloss.Color("#6366F1"), // Indigo
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#F59E0B"), // Amber
		Success:   lipgloss.Color("#22C55E"),
		Error:     lipgloss.Color("#F43F5E"),
		Text:      lipgloss.Color("#F8FAFC"),
		TextDim:   lipgloss.Color("#94A3B8"),
		BgDark:    lipgloss.Color("#0F172A"),
		BgCard:    lipgloss.Color("#1E293B"),
		Border:    lipgloss.Color("#334155"),
	},
	{
		Name:      "neon",
		Primary:   lipgloss.Color("#F0ABFC"), // Fuchsia
		Secondary: lipgloss.Color("#22D3EE"), // Cyan
		Accent:    lipgloss.Color("#FDE047"), // Yellow
		Success:   lipgloss.Color("#4ADE80"),
		Error:     lipgloss.Color("#FB7185"),
		Text:      lipgloss.Color("#FDF4FF"),
		TextDim:   lipgloss.Color("#A78BFA"),
		BgDark:    lipgloss.Color("#170B2B"),
		BgCard:    lipgloss.Color("#2E1065"),
		Border:    lipgloss.Color("#6D28D9"),
	},
	{
		Name:      "carbon",
		Primary:   lipgloss.Color("#E5E7EB"), // Gray
		Secondary: lipgloss.Color("#9CA3AF"),
		Accent:    lipgloss.Color("#F97316"), // Orange
		Success:   lipgloss.Color("#84CC16"),
		Error:     lipgloss.Color("#EF4444"),
		Text:      lipgloss.Color("#F9FAFB"),
		TextDim:   lipgloss.Color("#6B7280"),
		BgDark:    lipgloss.Color("#030712"),
		BgCard:    lipgloss.Color("#111827"),
		Border:    lipgloss.Color("#374151"),
	},
}

// Default returns the starting skin.
func Default() Skin {
	return skins[0]
}

// Get returns the named skin.
func Get(name string) (Skin, error) {
	for _, s := range skins {
		if s.Name == name {
			return s, nil
		}
	}
	return Skin{}, fmt.Errorf("unknown skin: %q", name)
}

// Names returns all skin names in catalog order.
func Names() []string {
	out := make([]string, len(skins))
	for i, s := range skins {
		out[i] = s.Name
	}
	return out
}

// Typography.

func (s Skin) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(s.Primary).Align(lipgloss.Center)
}

func (s Skin) Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.TextDim).Align(lipgloss.Center)
}

func (s Skin) Body() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Text)
}

func (s Skin) Hint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.TextDim).Italic(true)
}

// Containers.

func (s Skin) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(s.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(1, 2)
}

// Selection states.

func (s Skin) Selected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Primary).Bold(true)
}

func (s Skin) Unselected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Text)
}

func (s Skin) Correct() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Success).Bold(true)
}

func (s Skin) Incorrect() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Error).Bold(true)
}

// Buttons.

func (s Skin) ButtonActive() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(s.Primary).
		Foreground(s.Text).
		Bold(true).
		Padding(0, 2)
}

func (s Skin) ButtonInactive() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(s.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(0, 2)
}
