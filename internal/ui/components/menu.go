package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/ui/theme"
)

// MenuItem is a single entry in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu, selecting the first enabled item.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{Items: items, Selected: selected}
}

// Update handles keyboard navigation. Moving past a disabled item
// skips it.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu with the given skin.
func (m Menu) View(skin theme.Skin) string {
	var s string
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			s += skin.Hint().Render("    "+item.Label) + "\n"
		case i == m.Selected:
			s += skin.Selected().Render("  ▸ "+item.Label) + "\n"
		default:
			s += skin.Unselected().Render("    "+item.Label) + "\n"
		}
	}
	return s
}
