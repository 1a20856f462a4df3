package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
	leftRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) Leave() tea.Cmd {
	s.leftRan = true
	return nil
}

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	next := &stubScreen{title: "topics"}
	r.Push(next)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "topics" {
		t.Errorf("expected active 'topics', got %q", r.Active().Title())
	}
	if !next.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopRunsLeaveHook(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	next := &stubScreen{title: "quiz"}
	r.Push(next)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
	if !next.leftRan {
		t.Error("expected Leave() to run on popped screen")
	}
}

func TestPopNoopAtRoot(t *testing.T) {
	root := &stubScreen{title: "home"}
	r := New(root)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at root, got %d", r.Depth())
	}
	if root.leftRan {
		t.Error("root screen must not receive Leave()")
	}
}

func TestReplace(t *testing.T) {
	old := &stubScreen{title: "home"}
	r := New(old)

	next := &stubScreen{title: "settings"}
	r.Replace(next)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "settings" {
		t.Errorf("expected active 'settings', got %q", r.Active().Title())
	}
	if !next.initRan {
		t.Error("expected Init() to run on replacing screen")
	}
	if !old.leftRan {
		t.Error("expected Leave() to run on replaced screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "topics"}})
	r.Update(PushScreenMsg{Screen: &stubScreen{title: "quiz"}})
	if r.Depth() != 3 {
		t.Fatalf("expected depth 3, got %d", r.Depth())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "tutor"}})
	if r.Depth() != 3 || r.Active().Title() != "tutor" {
		t.Fatalf("after replace: depth %d, active %q", r.Depth(), r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", r.Depth())
	}

	r.Update(PopToRootMsg{})
	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Fatalf("after pop-to-root: depth %d, active %q", r.Depth(), r.Active().Title())
	}
}

func TestPopToRootRunsAllLeaveHooks(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	a := &stubScreen{title: "topics"}
	b := &stubScreen{title: "quiz"}
	r.Push(a)
	r.Push(b)

	r.PopToRoot()

	if !a.leftRan || !b.leftRan {
		t.Errorf("leave hooks: topics=%v quiz=%v", a.leftRan, b.leftRan)
	}
}
