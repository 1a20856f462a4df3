package tutorchat

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/llm"
	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/tutor"
)

func newTestTutor(replies ...string) *TutorScreen {
	responses := make([]llm.MockResponse, len(replies))
	for i, r := range replies {
		responses[i] = llm.MockResponse{Content: json.RawMessage(r)}
	}
	service := tutor.NewService(llm.NewMockProvider(responses...), tutor.DefaultConfig())
	return New(service, stats.NewStore(stats.Seed()), nil)
}

func typeText(t *TutorScreen, text string) {
	for _, r := range text {
		t.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestSendAndReceive(t *testing.T) {
	s := newTestTutor("Check mirrors before signalling.")
	typeText(s, "When do I check mirrors?")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter with text should dispatch the question")
	}
	if !s.waiting {
		t.Fatal("screen should be waiting for the reply")
	}
	if len(s.history) != 1 || !s.history[0].FromLearner {
		t.Fatalf("history = %+v", s.history)
	}

	// Resolve the batched command and feed the reply back.
	msg := findReply(t, cmd)
	s.Update(msg)

	if s.waiting {
		t.Error("reply should clear the waiting state")
	}
	if len(s.history) != 2 || s.history[1].FromLearner {
		t.Fatalf("history after reply = %+v", s.history)
	}
	if !strings.Contains(s.View(100, 30), "Check mirrors before signalling.") {
		t.Error("view should show the tutor reply")
	}
}

func TestEmptyInputNotSent(t *testing.T) {
	s := newTestTutor()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty input should not dispatch")
	}
	if len(s.history) != 0 {
		t.Errorf("history = %+v", s.history)
	}
}

func TestStaleReplyDropped(t *testing.T) {
	s := newTestTutor("first", "second")
	typeText(s, "question one")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	staleSeq := s.seq

	// Simulate a second question superseding the first.
	s.waiting = false
	typeText(s, "question two")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	s.Update(replyMsg{Seq: staleSeq, Text: "late reply"})
	for _, m := range s.history {
		if m.Text == "late reply" {
			t.Fatal("stale reply was appended to history")
		}
	}
	if !s.waiting {
		t.Error("stale reply cleared the waiting state")
	}
}

// findReply executes the command tree until the replyMsg surfaces.
func findReply(t *testing.T, cmd tea.Cmd) replyMsg {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch m := c().(type) {
		case replyMsg:
			return m
		case tea.BatchMsg:
			queue = append(queue, m...)
		}
	}
	t.Fatal("no replyMsg produced")
	return replyMsg{}
}
