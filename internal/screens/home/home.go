package home

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/audio"
	"github.com/skilylabs/skily/internal/explain"
	"github.com/skilylabs/skily/internal/quizgen"
	"github.com/skilylabs/skily/internal/router"
	"github.com/skilylabs/skily/internal/screen"
	"github.com/skilylabs/skily/internal/screens/history"
	"github.com/skilylabs/skily/internal/screens/settings"
	"github.com/skilylabs/skily/internal/screens/topicselect"
	"github.com/skilylabs/skily/internal/screens/tutorchat"
	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/store"
	"github.com/skilylabs/skily/internal/tutor"
	"github.com/skilylabs/skily/internal/ui/components"
	"github.com/skilylabs/skily/internal/ui/layout"
	"github.com/skilylabs/skily/internal/ui/theme"
)

// HomeScreen is the gamified dashboard and main menu.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	stats      *stats.Store
	sounds     *audio.Engine
	rewardNote string
	llmReady   bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the shared services. A nil
// generator means no LLM API key is configured; the quiz and tutor
// entries are disabled and a banner explains why.
func New(statsStore *stats.Store, generator quizgen.Generator, explainer *explain.Service, tutorSvc *tutor.Service, eventRepo store.EventRepo, sounds *audio.Engine) *HomeScreen {
	llmReady := generator != nil

	menuLabels := []string{"START QUIZ", "ASK THE TUTOR", "HISTORY", "SETTINGS", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: !llmReady, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: topicselect.New(generator, explainer, statsStore, eventRepo, sounds),
				}
			}
		}},
		{Label: menuLabels[1], Disabled: !llmReady, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tutorchat.New(tutorSvc, statsStore, sounds)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo, statsStore)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(statsStore, sounds)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		stats:      statsStore,
		sounds:     sounds,
		llmReady:   llmReady,
	}
}

func (h *HomeScreen) Title() string {
	return "Dashboard"
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if h.stats != nil && h.stats.CanClaimReward() {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Claim reward"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "c", "C":
			h.claimReward()
			return h, nil
		}
	}

	before := h.menu.Selected
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	if h.sounds != nil && h.menu.Selected != before {
		h.sounds.Play(audio.CueHover)
	}
	return h, cmd
}

// claimReward attempts the daily claim and records the outcome note.
func (h *HomeScreen) claimReward() {
	if h.stats == nil {
		return
	}
	res := h.stats.ClaimReward(context.Background())
	if res.Claimed {
		h.rewardNote = rewardClaimedNote(res)
		if h.sounds != nil {
			h.sounds.Play(audio.CueReward)
		}
		return
	}
	h.rewardNote = "Daily reward already claimed. Come back tomorrow!"
	if h.sounds != nil {
		h.sounds.Play(audio.CueError)
	}
}

func (h *HomeScreen) skin() theme.Skin {
	if h.stats != nil {
		if s, err := theme.Get(h.stats.Stats().Skin); err == nil {
			return s
		}
	}
	return theme.Default()
}
