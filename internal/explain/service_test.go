package explain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/skilylabs/skily/internal/llm"
)

func testInput() Input {
	return Input{
		QuestionText:  "What does a red traffic light mean?",
		Options:       []string{"Stop", "Go", "Yield", "Slow down"},
		CorrectOption: "Stop",
		ChosenOption:  "Yield",
	}
}

func TestExplain_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("A red light requires a complete stop, while yielding only applies at give-way signs."),
	})
	svc := NewService(mock, DefaultConfig())

	got := svc.Explain(context.Background(), testInput())
	if !strings.Contains(got, "complete stop") {
		t.Errorf("unexpected explanation: %q", got)
	}
}

func TestExplain_ProviderFailureReturnsFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig())

	got := svc.Explain(context.Background(), testInput())
	if got != Fallback {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestExplain_EmptyResponseReturnsFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("   "),
	})
	svc := NewService(mock, DefaultConfig())

	got := svc.Explain(context.Background(), testInput())
	if got != Fallback {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestExplain_PromptIncludesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("ok"),
	})
	svc := NewService(mock, DefaultConfig())

	input := testInput()
	svc.Explain(context.Background(), input)

	sent := mock.Calls[0].Messages[0].Content
	for _, want := range []string{input.QuestionText, input.CorrectOption, input.ChosenOption} {
		if !strings.Contains(sent, want) {
			t.Errorf("prompt missing %q:\n%s", want, sent)
		}
	}
}
