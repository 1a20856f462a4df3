package quiz

import (
	"testing"

	"github.com/skilylabs/skily/internal/quizgen"
	"github.com/skilylabs/skily/internal/topics"
)

func testQuestion(correctIndex int) *quizgen.Question {
	return &quizgen.Question{
		ID:           "q1",
		Topic:        topics.General,
		Text:         "What does a red traffic light mean?",
		Options:      []string{"Stop", "Go", "Yield", "Slow down"},
		CorrectIndex: correctIndex,
		Explanation:  "A red light requires a complete stop.",
		Difficulty:   1,
	}
}

// startPresenting starts a session and attaches a question, leaving it
// in Presenting.
func startPresenting(t *testing.T, correctIndex int) *Session {
	t.Helper()
	s := NewSession()
	if err := s.Start(topics.General); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !s.AttachQuestion(s.Epoch(), testQuestion(correctIndex)) {
		t.Fatal("attach question rejected")
	}
	return s
}

func TestStart_InvalidTopic(t *testing.T) {
	s := NewSession()
	if err := s.Start(topics.Topic("astrology")); err == nil {
		t.Fatal("expected error for unknown topic")
	}
	if s.Phase != PhaseIdle {
		t.Errorf("phase = %v, want idle", s.Phase)
	}
}

func TestStart_ResetsState(t *testing.T) {
	s := startPresenting(t, 0)
	s.Select(0)
	s.Confirm()

	if err := s.Start(topics.Signals); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s.Phase != PhaseLoading {
		t.Errorf("phase = %v, want loading", s.Phase)
	}
	if s.Index != 0 || s.Correct != 0 {
		t.Errorf("counters not reset: index=%d correct=%d", s.Index, s.Correct)
	}
	if s.Selection != NoSelection {
		t.Errorf("selection = %d, want NoSelection", s.Selection)
	}
	if s.Topic != topics.Signals {
		t.Errorf("topic = %q", s.Topic)
	}
}

func TestSelect_Validity(t *testing.T) {
	s := startPresenting(t, 0)

	if s.Select(4) {
		t.Error("expected out-of-range selection to be rejected")
	}
	if s.Select(-1) {
		t.Error("expected negative selection to be rejected")
	}
	if !s.Select(2) {
		t.Fatal("expected valid selection to succeed")
	}
	if s.Phase != PhaseSelected {
		t.Errorf("phase = %v, want selected", s.Phase)
	}

	// Re-selecting is allowed; last write wins.
	if !s.Select(1) {
		t.Fatal("expected re-selection to succeed")
	}
	if s.Selection != 1 {
		t.Errorf("selection = %d, want 1", s.Selection)
	}

	// Selecting the same option again changes nothing.
	if !s.Select(1) {
		t.Fatal("expected idempotent selection to succeed")
	}
	if s.Selection != 1 || s.Phase != PhaseSelected {
		t.Errorf("idempotent select mutated state: selection=%d phase=%v", s.Selection, s.Phase)
	}
}

func TestConfirm_WithoutSelection(t *testing.T) {
	s := startPresenting(t, 0)

	if _, ok := s.Confirm(); ok {
		t.Fatal("expected confirm without selection to be rejected")
	}
	if s.Phase != PhasePresenting {
		t.Errorf("phase = %v, want presenting", s.Phase)
	}
}

func TestConfirm_Correct(t *testing.T) {
	s := startPresenting(t, 2)
	s.Select(2)

	needsExplain, ok := s.Confirm()
	if !ok {
		t.Fatal("confirm rejected")
	}
	if needsExplain {
		t.Error("correct answer should not need an explanation fetch")
	}
	if s.Phase != PhaseExplained {
		t.Errorf("phase = %v, want explained", s.Phase)
	}
	if s.Correct != 1 {
		t.Errorf("correct = %d, want 1", s.Correct)
	}
	if s.Explanation == "" {
		t.Error("expected the question's own rationale to be set")
	}
}

func TestConfirm_Wrong(t *testing.T) {
	s := startPresenting(t, 2)
	s.Select(0)

	needsExplain, ok := s.Confirm()
	if !ok {
		t.Fatal("confirm rejected")
	}
	if !needsExplain {
		t.Error("wrong answer should require an explanation fetch")
	}
	if s.Phase != PhaseConfirmed {
		t.Errorf("phase = %v, want confirmed", s.Phase)
	}
	if s.Correct != 0 {
		t.Errorf("correct = %d, want 0", s.Correct)
	}

	if !s.AttachExplanation(s.Epoch(), "Red means stop because crossing traffic has right of way.") {
		t.Fatal("attach explanation rejected")
	}
	if s.Phase != PhaseExplained {
		t.Errorf("phase = %v, want explained", s.Phase)
	}
}

func TestSelectionImmutableAfterConfirm(t *testing.T) {
	s := startPresenting(t, 2)
	s.Select(2)
	s.Confirm()

	if s.Select(0) {
		t.Error("expected selection to be rejected after confirm")
	}
	if s.Selection != 2 {
		t.Errorf("selection = %d, want 2", s.Selection)
	}
}

func TestAdvance_Progression(t *testing.T) {
	s := startPresenting(t, 0)

	for i := 0; i < TargetQuestions; i++ {
		if s.Index != i {
			t.Fatalf("index = %d, want %d", s.Index, i)
		}
		s.Select(0)
		s.Confirm()

		done, ok := s.Advance()
		if !ok {
			t.Fatalf("advance %d rejected", i)
		}
		if i < TargetQuestions-1 {
			if done {
				t.Fatalf("advance %d reported done early", i)
			}
			if s.Phase != PhaseLoading {
				t.Fatalf("phase = %v, want loading", s.Phase)
			}
			if !s.AttachQuestion(s.Epoch(), testQuestion(0)) {
				t.Fatalf("attach question %d rejected", i+1)
			}
		} else {
			if !done {
				t.Fatal("final advance did not complete the run")
			}
			if s.Phase != PhaseComplete {
				t.Fatalf("phase = %v, want complete", s.Phase)
			}
		}
	}

	if s.FinalScore() != 100 {
		t.Errorf("final score = %d, want 100", s.FinalScore())
	}
}

func TestAdvance_InvalidPhase(t *testing.T) {
	s := startPresenting(t, 0)
	if _, ok := s.Advance(); ok {
		t.Fatal("expected advance from presenting to be rejected")
	}
}

func TestFinalScore_Rounding(t *testing.T) {
	tests := []struct {
		correct int
		want    int
	}{
		{0, 0},
		{1, 20},
		{2, 40},
		{3, 60},
		{4, 80},
		{5, 100},
	}
	for _, tt := range tests {
		s := NewSession()
		s.Correct = tt.correct
		if got := s.FinalScore(); got != tt.want {
			t.Errorf("FinalScore(correct=%d) = %d, want %d", tt.correct, got, tt.want)
		}
	}
}

func TestFailLoad_AndAbandon(t *testing.T) {
	s := NewSession()
	if err := s.Start(topics.General); err != nil {
		t.Fatalf("start: %v", err)
	}

	if !s.FailLoad(s.Epoch()) {
		t.Fatal("fail load rejected")
	}
	if s.Phase != PhaseFailed {
		t.Errorf("phase = %v, want failed", s.Phase)
	}

	score := s.Abandon()
	if score != 0 {
		t.Errorf("abandoned score = %d, want 0", score)
	}
	if s.Phase != PhaseComplete {
		t.Errorf("phase = %v, want complete", s.Phase)
	}
}

func TestAbandon_MidRunKeepsFullDenominator(t *testing.T) {
	s := startPresenting(t, 0)
	s.Select(0)
	s.Confirm()
	s.Advance()
	s.AttachQuestion(s.Epoch(), testQuestion(0))
	s.Select(0)
	s.Confirm()

	// Two correct answers out of the full target of five.
	score := s.Abandon()
	if score != 40 {
		t.Errorf("abandoned score = %d, want 40", score)
	}
}

func TestStaleEpoch_Ignored(t *testing.T) {
	s := NewSession()
	if err := s.Start(topics.General); err != nil {
		t.Fatalf("start: %v", err)
	}
	stale := s.Epoch()

	// Navigation away abandons the run; the in-flight question must
	// not resurrect it.
	s.Abandon()
	if s.AttachQuestion(stale, testQuestion(0)) {
		t.Fatal("stale question applied after abandon")
	}
	if s.Phase != PhaseComplete {
		t.Errorf("phase = %v, want complete", s.Phase)
	}

	// A fresh run must also reject results addressed to the old one.
	if err := s.Start(topics.Signals); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s.AttachQuestion(stale, testQuestion(0)) {
		t.Fatal("stale question applied to replacement session")
	}
	if s.Phase != PhaseLoading {
		t.Errorf("phase = %v, want loading", s.Phase)
	}
}

func TestStaleExplanation_Ignored(t *testing.T) {
	s := startPresenting(t, 2)
	s.Select(0)
	s.Confirm()
	stale := s.Epoch()

	s.Abandon()
	if s.AttachExplanation(stale, "late") {
		t.Fatal("stale explanation applied after abandon")
	}
}

func TestPriorQuestionsAccumulate(t *testing.T) {
	s := startPresenting(t, 0)
	s.Select(0)
	s.Confirm()
	s.Advance()

	q2 := testQuestion(0)
	q2.Text = "What is the speed limit in urban areas?"
	s.AttachQuestion(s.Epoch(), q2)

	if len(s.PriorQuestions) != 2 {
		t.Fatalf("prior questions = %d, want 2", len(s.PriorQuestions))
	}
	if s.PriorQuestions[1] != q2.Text {
		t.Errorf("prior[1] = %q", s.PriorQuestions[1])
	}
}
