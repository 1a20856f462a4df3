package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/skilylabs/skily/internal/llm"
)

func TestAsk_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("The urban speed limit is 50 km/h unless signs say otherwise."),
	})
	svc := NewService(mock, DefaultConfig())

	got := svc.Ask(context.Background(), nil, "What is the speed limit in town?")
	if got != "The urban speed limit is 50 km/h unless signs say otherwise." {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestAsk_ProviderFailureReturnsFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{Err: errors.New("429")},
	})
	svc := NewService(mock, DefaultConfig())

	got := svc.Ask(context.Background(), nil, "anything")
	if got != Fallback {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestAsk_HistoryMapping(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("reply"),
	})
	svc := NewService(mock, DefaultConfig())

	history := []Message{
		{FromLearner: true, Text: "What does a yield sign look like?"},
		{FromLearner: false, Text: "An inverted triangle with a red border."},
	}
	svc.Ask(context.Background(), history, "And a stop sign?")

	sent := mock.Calls[0].Messages
	if len(sent) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(sent))
	}
	if sent[0].Role != llm.RoleUser || sent[1].Role != llm.RoleAssistant {
		t.Errorf("roles wrong: %v, %v", sent[0].Role, sent[1].Role)
	}
	if sent[2].Content != "And a stop sign?" {
		t.Errorf("final message = %q", sent[2].Content)
	}
}

func TestAsk_HistoryTruncated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("reply"),
	})
	svc := NewService(mock, DefaultConfig())

	history := make([]Message, MaxHistory+6)
	for i := range history {
		history[i] = Message{FromLearner: i%2 == 0, Text: "turn"}
	}
	svc.Ask(context.Background(), history, "q")

	sent := mock.Calls[0].Messages
	if len(sent) != MaxHistory+1 {
		t.Errorf("expected %d messages, got %d", MaxHistory+1, len(sent))
	}
}
