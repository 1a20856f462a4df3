package topicselect

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skilylabs/skily/internal/audio"
	"github.com/skilylabs/skily/internal/explain"
	"github.com/skilylabs/skily/internal/quizgen"
	"github.com/skilylabs/skily/internal/router"
	"github.com/skilylabs/skily/internal/screen"
	quizscreen "github.com/skilylabs/skily/internal/screens/quiz"
	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/store"
	"github.com/skilylabs/skily/internal/topics"
	"github.com/skilylabs/skily/internal/ui/components"
	"github.com/skilylabs/skily/internal/ui/layout"
	"github.com/skilylabs/skily/internal/ui/theme"
)

// TopicScreen lets the learner pick the topic for the next quiz.
type TopicScreen struct {
	catalog   []topics.Info
	selected  int
	generator quizgen.Generator
	explainer *explain.Service
	stats     *stats.Store
	eventRepo store.EventRepo
	sounds    *audio.Engine
}

var _ screen.Screen = (*TopicScreen)(nil)
var _ screen.KeyHintProvider = (*TopicScreen)(nil)

// New creates a TopicScreen.
func New(generator quizgen.Generator, explainer *explain.Service, statsStore *stats.Store, eventRepo store.EventRepo, sounds *audio.Engine) *TopicScreen {
	return &TopicScreen{
		catalog:   topics.All(),
		generator: generator,
		explainer: explainer,
		stats:     statsStore,
		eventRepo: eventRepo,
		sounds:    sounds,
	}
}

func (t *TopicScreen) Title() string {
	return "Pick a Topic"
}

func (t *TopicScreen) Init() tea.Cmd {
	return nil
}

func (t *TopicScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if t.selected > 0 {
			t.selected--
			t.playCue(audio.CueHover)
		}
	case "down", "j":
		if t.selected < len(t.catalog)-1 {
			t.selected++
			t.playCue(audio.CueHover)
		}
	case "enter":
		info := t.catalog[t.selected]
		t.playCue(audio.CueClick)
		return t, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: quizscreen.New(info, t.generator, t.explainer, t.stats, t.eventRepo, t.sounds),
			}
		}
	}

	return t, nil
}

func (t *TopicScreen) View(width, height int) string {
	skin := t.skin()
	mastery := t.masteryMap()

	out := "\n"
	for i, info := range t.catalog {
		prefix := "  "
		nameStyle := lipgloss.NewStyle().Foreground(skin.Text)
		if i == t.selected {
			prefix = "▸ "
			nameStyle = lipgloss.NewStyle().Foreground(skin.Primary).Bold(true)
		}

		bar := components.ProgressBar{
			Percent:     float64(mastery[info.Topic]) / 100,
			ShowPercent: true,
			Width:       30,
		}

		line := prefix + info.Icon + " " + nameStyle.Render(padRight(info.Name, 18)) + "  " + bar.View(skin)
		out += lipgloss.PlaceHorizontal(width, lipgloss.Center, line) + "\n"

		if i == t.selected {
			desc := lipgloss.NewStyle().Foreground(skin.TextDim).Italic(true).Render(info.Description)
			out += lipgloss.PlaceHorizontal(width, lipgloss.Center, desc) + "\n"
		}
	}

	return out
}

func (t *TopicScreen) masteryMap() map[topics.Topic]int {
	if t.stats == nil {
		return nil
	}
	return t.stats.Stats().Mastery
}

func (t *TopicScreen) skin() theme.Skin {
	if t.stats != nil {
		if s, err := theme.Get(t.stats.Stats().Skin); err == nil {
			return s
		}
	}
	return theme.Default()
}

func (t *TopicScreen) playCue(cue audio.Cue) {
	if t.sounds != nil {
		t.sounds.Play(cue)
	}
}

func padRight(s string, n int) string {
	for len([]rune(s)) < n {
		s += " "
	}
	return s
}
