package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.0-flash",
			Purpose:      "question-gen",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    800,
			Success:      true,
			RequestBody:  "[user]\nGenerate a question.",
			ResponseBody: `{"text":"q"}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d",
			events[0].Sequence, events[1].Sequence)
	}
	if events[0].InputTokens != 102 {
		t.Errorf("newest input tokens = %d, want 102", events[0].InputTokens)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event")
	}
	if got.ResponseBody != `{"text":"q"}` {
		t.Errorf("response body = %q", got.ResponseBody)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 40, LatencyMs: 600, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 800, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "tutor", InputTokens: 50, OutputTokens: 80, LatencyMs: 500, Success: true},
	}
	for i, a := range appends {
		if err := repo.AppendLLMRequest(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	// Sorted by purpose name: question-gen before tutor.
	qg := byPurpose[0]
	if qg.Purpose != "question-gen" || qg.Calls != 2 || qg.InputTokens != 220 {
		t.Errorf("question-gen usage = %+v", qg)
	}
	if qg.AvgLatencyMs != 700 {
		t.Errorf("avg latency = %d, want 700", qg.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 {
		t.Fatalf("expected 1 model, got %d", len(byModel))
	}
	if byModel[0].Calls != 3 || byModel[0].OutputTokens != 180 {
		t.Errorf("model usage = %+v", byModel[0])
	}
}

func TestQuizAndAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendQuizEvent(ctx, QuizEventData{
		QuizID: "q1", Topic: "signals", Action: "start",
	}); err != nil {
		t.Fatalf("append start: %v", err)
	}

	answers := []bool{true, false, true, true, false}
	for i, correct := range answers {
		sel := 0
		if !correct {
			sel = 1
		}
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			QuizID:        "q1",
			Topic:         "signals",
			QuestionText:  "q",
			SelectedIndex: sel,
			CorrectIndex:  0,
			Correct:       correct,
			TimeMs:        int64(1000 + i),
		})
		if err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	if err := repo.AppendQuizEvent(ctx, QuizEventData{
		QuizID: "q1", Topic: "signals", Action: "complete",
		QuestionsAnswered: 5, CorrectAnswers: 3, Score: 60, DurationSecs: 90,
	}); err != nil {
		t.Fatalf("append complete: %v", err)
	}

	summaries, err := repo.QueryQuizSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].Score != 60 || summaries[0].Action != "complete" {
		t.Errorf("summary = %+v", summaries[0])
	}

	acc, err := repo.TopicAccuracy(ctx, "signals")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.6 {
		t.Errorf("accuracy = %v, want 0.6", acc)
	}

	empty, err := repo.TopicAccuracy(ctx, "mechanics")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if empty != 0 {
		t.Errorf("accuracy = %v, want 0", empty)
	}
}

func TestRewardEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendRewardEvent(ctx, RewardEventData{
		Day: "2024-01-02", Streak: 4, XPAwarded: 50,
	})
	if err != nil {
		t.Fatalf("append reward: %v", err)
	}

	count, err := s.Client().RewardEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("reward events = %d, want 1", count)
	}
}
