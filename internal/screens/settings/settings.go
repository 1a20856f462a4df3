package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skilylabs/skily/internal/audio"
	"github.com/skilylabs/skily/internal/router"
	"github.com/skilylabs/skily/internal/screen"
	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/ui/layout"
	"github.com/skilylabs/skily/internal/ui/theme"
)

// rows in display order.
const (
	rowSfx = iota
	rowMusic
	rowSkin
	rowCount
)

// SettingsScreen toggles sound effects and music and picks the skin.
type SettingsScreen struct {
	stats    *stats.Store
	sounds   *audio.Engine
	selected int
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen.
func New(statsStore *stats.Store, sounds *audio.Engine) *SettingsScreen {
	return &SettingsScreen{stats: statsStore, sounds: sounds}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→/Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < rowCount-1 {
			s.selected++
		}
	case "enter", " ", "right", "l":
		s.change(1)
	case "left", "h":
		s.change(-1)
	}
	return s, nil
}

// change applies the selected row's toggle or cycles the skin.
func (s *SettingsScreen) change(dir int) {
	if s.stats == nil {
		return
	}
	u := s.stats.Stats()

	switch s.selected {
	case rowSfx:
		on := !u.SfxEnabled
		s.stats.SetSfxEnabled(on)
		if s.sounds != nil {
			s.sounds.SetEnabled(on)
			s.sounds.Play(audio.CueClick)
		}
	case rowMusic:
		s.stats.SetMusicEnabled(!u.MusicEnabled)
	case rowSkin:
		names := theme.Names()
		current := 0
		for i, name := range names {
			if name == u.Skin {
				current = i
				break
			}
		}
		next := (current + dir + len(names)) % len(names)
		s.stats.SetSkin(names[next])
		if s.sounds != nil {
			s.sounds.Play(audio.CueTabSwitch)
		}
	}
}

func (s *SettingsScreen) View(width, height int) string {
	skin := s.skin()
	u := s.stats.Stats()

	rows := []struct {
		label string
		value string
	}{
		{"Sound effects", onOff(u.SfxEnabled)},
		{"Music", onOff(u.MusicEnabled)},
		{"Skin", "◂ " + u.Skin + " ▸"},
	}

	var b strings.Builder
	b.WriteString("\n\n")

	for i, row := range rows {
		prefix := "  "
		labelStyle := lipgloss.NewStyle().Foreground(skin.Text)
		if i == s.selected {
			prefix = "▸ "
			labelStyle = lipgloss.NewStyle().Foreground(skin.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%s  %s",
			prefix,
			labelStyle.Render(padRight(row.label, 16)),
			lipgloss.NewStyle().Foreground(skin.Accent).Render(row.value))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(skin.TextDim).
		Italic(true).
		Render("Skins recolor the whole app instantly."))

	return b.String()
}

func (s *SettingsScreen) skin() theme.Skin {
	if s.stats != nil {
		if sk, err := theme.Get(s.stats.Stats().Skin); err == nil {
			return sk
		}
	}
	return theme.Default()
}

func onOff(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}

func padRight(s string, n int) string {
	for len([]rune(s)) < n {
		s += " "
	}
	return s
}
