package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/quizgen"
	"github.com/skilylabs/skily/internal/router"
	"github.com/skilylabs/skily/internal/stats"
)

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, quizgen.GenerateInput) (*quizgen.Question, error) {
	return nil, nil
}

func fixedClock(s string) func() time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return func() time.Time { return t }
}

func newTestHome(generator quizgen.Generator) (*HomeScreen, *stats.Store) {
	st := stats.NewStore(stats.Seed(), stats.WithClock(fixedClock("2024-05-20")))
	return New(st, generator, nil, nil, nil, nil), st
}

func TestMenuDisabledWithoutLLM(t *testing.T) {
	h, _ := newTestHome(nil)
	if !h.menu.Items[0].Disabled || !h.menu.Items[1].Disabled {
		t.Error("quiz and tutor entries should be disabled without a generator")
	}
	if h.menu.Items[2].Disabled {
		t.Error("history should stay enabled")
	}
	if !strings.Contains(h.View(110, 40), "API key") {
		t.Error("view should show the missing-key banner")
	}
}

func TestMenuEnabledWithLLM(t *testing.T) {
	h, _ := newTestHome(stubGenerator{})
	if h.menu.Items[0].Disabled {
		t.Error("quiz entry should be enabled with a generator")
	}

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should push the topic screen")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected PushScreenMsg")
	}
}

func TestClaimRewardOnce(t *testing.T) {
	h, st := newTestHome(nil)
	before := st.Stats()

	h.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	after := st.Stats()
	if after.XP != before.XP+stats.DailyRewardXP {
		t.Errorf("xp = %d, want %d", after.XP, before.XP+stats.DailyRewardXP)
	}
	if !strings.Contains(h.rewardNote, "+50 XP") {
		t.Errorf("reward note = %q", h.rewardNote)
	}

	h.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if st.Stats().XP != after.XP {
		t.Error("second claim on the same day changed xp")
	}
	if !strings.Contains(h.rewardNote, "already claimed") {
		t.Errorf("reward note = %q", h.rewardNote)
	}
}

func TestViewShowsStats(t *testing.T) {
	h, _ := newTestHome(nil)
	view := h.View(110, 40)
	for _, want := range []string{"3 DAY STREAK", "68% AVG", "12 TESTS", "Level 4", "Readiness"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
