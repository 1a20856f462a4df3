package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/skilylabs/skily/internal/llm"
	"github.com/skilylabs/skily/internal/topics"
)

func signalsTopic(t *testing.T) topics.Info {
	t.Helper()
	info, err := topics.Get(topics.Signals)
	if err != nil {
		t.Fatal("signals topic missing from catalog")
	}
	return info
}

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"text": "What does a circular sign with a red border and white center indicate?",
		"options": ["No entry for all vehicles", "Parking allowed", "End of speed limit", "Pedestrian crossing ahead"],
		"correct_index": 0,
		"explanation": "A circular sign with a red border and white center prohibits entry to all vehicles.",
		"image_hint": "Circular sign, red border, plain white center",
		"difficulty": 2
	}`)
}

func TestGenerate_ValidQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuestionJSON(),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Topic: signalsTopic(t),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID == "" {
		t.Error("expected non-empty question ID")
	}
	if q.Topic != topics.Signals {
		t.Errorf("expected signals topic, got %q", q.Topic)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.CorrectIndex != 0 {
		t.Errorf("expected correct index 0, got %d", q.CorrectIndex)
	}
	if q.ImageHint == "" {
		t.Error("expected image hint to pass through")
	}
}

func TestGenerate_UniqueIDs(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validQuestionJSON()},
		llm.MockResponse{Content: validQuestionJSON()},
	)
	gen := New(mock, DefaultConfig())

	q1, err := gen.Generate(context.Background(), GenerateInput{Topic: signalsTopic(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q2, err := gen.Generate(context.Background(), GenerateInput{Topic: signalsTopic(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q1.ID == q2.ID {
		t.Error("expected distinct question IDs")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: signalsTopic(t)})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable to wrap through, got %T", err)
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json at all`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: signalsTopic(t)})
	if err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func TestGenerate_ValidationFailure(t *testing.T) {
	bad := json.RawMessage(`{
		"text": "q",
		"options": ["A", "B", "C"],
		"correct_index": 0,
		"explanation": "e",
		"image_hint": "",
		"difficulty": 2
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: signalsTopic(t)})
	if err == nil {
		t.Fatal("expected validation error for 3 options")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Validator != "options" {
		t.Errorf("expected options validator, got %q", verr.Validator)
	}
}

func TestGenerate_PromptIncludesPriorQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	prior := []string{"What is the national speed limit on motorways?"}
	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic:          signalsTopic(t),
		PriorQuestions: prior,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	sent := mock.Calls[0].Messages[0].Content
	if !strings.Contains(sent, prior[0]) {
		t.Errorf("prompt missing prior question:\n%s", sent)
	}
}

func TestGenerate_SchemaAttached(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: signalsTopic(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Calls[0].Schema != QuestionSchema {
		t.Error("expected question schema on the request")
	}
}
