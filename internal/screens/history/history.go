package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skilylabs/skily/internal/router"
	"github.com/skilylabs/skily/internal/screen"
	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/store"
	"github.com/skilylabs/skily/internal/topics"
	"github.com/skilylabs/skily/internal/ui/layout"
	"github.com/skilylabs/skily/internal/ui/theme"
)

type historyLoadedMsg struct {
	Runs []store.QuizSummaryRecord
	Err  error
}

// HistoryScreen lists finished quiz runs from the event log.
type HistoryScreen struct {
	eventRepo store.EventRepo
	stats     *stats.Store
	runs      []store.QuizSummaryRecord
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(eventRepo store.EventRepo, statsStore *stats.Store) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo, stats: statsStore}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.eventRepo == nil {
		return func() tea.Msg { return historyLoadedMsg{} }
	}
	repo := s.eventRepo
	return func() tea.Msg {
		runs, err := repo.QueryQuizSummaries(context.Background(), store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Runs: runs}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.runs = msg.Runs
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.runs)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	skin := s.skin()

	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(skin.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(skin.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.runs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(skin.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Pick a topic and start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, run := range s.runs {
		dateStr := run.Timestamp.Format("Jan 02, 2006")
		mins := run.DurationSecs / 60
		secs := run.DurationSecs % 60

		topicName := run.Topic
		if info, err := topics.Get(topics.Topic(run.Topic)); err == nil {
			topicName = info.Icon + " " + info.Name
		}

		outcome := fmt.Sprintf("%d%%", run.Score)
		if run.Action == "abandon" {
			outcome += " (abandoned)"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d:%02d  %d/%d correct  %s",
			prefix, dateStr, topicName, mins, secs,
			run.CorrectAnswers, run.QuestionsAnswered, outcome)

		style := lipgloss.NewStyle().Foreground(skin.Text)
		if i == s.selected {
			style = style.Foreground(skin.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *HistoryScreen) skin() theme.Skin {
	if s.stats != nil {
		if sk, err := theme.Get(s.stats.Stats().Skin); err == nil {
			return sk
		}
	}
	return theme.Default()
}
