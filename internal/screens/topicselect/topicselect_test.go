package topicselect

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/router"
	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/topics"
)

func newTestScreen() *TopicScreen {
	return New(nil, nil, stats.NewStore(stats.Seed()), nil, nil)
}

func TestNavigationBounds(t *testing.T) {
	s := newTestScreen()

	s.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if s.selected != 0 {
		t.Errorf("selection moved above the first topic: %d", s.selected)
	}

	for i := 0; i < topics.Count()+5; i++ {
		s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	}
	if s.selected != topics.Count()-1 {
		t.Errorf("selection = %d, want %d", s.selected, topics.Count()-1)
	}
}

func TestEnterPushesQuizScreen(t *testing.T) {
	s := newTestScreen()
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should push the quiz screen")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if !strings.Contains(push.Screen.Title(), "Signals") {
		t.Errorf("pushed screen title = %q, want the selected topic", push.Screen.Title())
	}
}

func TestViewShowsMastery(t *testing.T) {
	s := newTestScreen()
	view := s.View(100, 40)
	if !strings.Contains(view, "Signals") || !strings.Contains(view, "%") {
		t.Errorf("view missing topic rows:\n%s", view)
	}
}
