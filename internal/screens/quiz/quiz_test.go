package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	sess "github.com/skilylabs/skily/internal/quiz"
	"github.com/skilylabs/skily/internal/quizgen"
	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/topics"
)

type stubGenerator struct {
	question *quizgen.Question
	err      error
	calls    int
}

func (g *stubGenerator) Generate(ctx context.Context, input quizgen.GenerateInput) (*quizgen.Question, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	q := *g.question
	return &q, nil
}

func testQuestion() *quizgen.Question {
	return &quizgen.Question{
		ID:           "q-1",
		Topic:        topics.Signals,
		Text:         "What does a red octagonal sign mean?",
		Options:      []string{"Stop", "Yield", "No entry", "Roundabout ahead"},
		CorrectIndex: 0,
		Explanation:  "An octagonal sign always means stop.",
	}
}

func newTestQuiz(gen quizgen.Generator) (*QuizScreen, *stats.Store) {
	info, _ := topics.Get(topics.Signals)
	st := stats.NewStore(stats.Seed())
	return New(info, gen, nil, st, nil, nil), st
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// deliverQuestion simulates the generation command resolving.
func deliverQuestion(q *QuizScreen) {
	q.Update(questionReadyMsg{Epoch: q.session.Epoch(), Question: testQuestion()})
}

func TestInitStartsRun(t *testing.T) {
	gen := &stubGenerator{question: testQuestion()}
	q, _ := newTestQuiz(gen)

	cmd := q.Init()
	if cmd == nil {
		t.Fatal("Init should return the load command")
	}
	if q.session.Phase != sess.PhaseLoading {
		t.Fatalf("phase = %v, want loading", q.session.Phase)
	}
}

func TestCorrectAnswerFlow(t *testing.T) {
	gen := &stubGenerator{question: testQuestion()}
	q, _ := newTestQuiz(gen)
	q.Init()
	deliverQuestion(q)

	if q.session.Phase != sess.PhasePresenting {
		t.Fatalf("phase = %v, want presenting", q.session.Phase)
	}

	// Confirm the first option, which is correct.
	_, cmd := q.Update(enterKey())
	if q.session.Phase != sess.PhaseExplained {
		t.Fatalf("phase = %v, want explained", q.session.Phase)
	}
	if cmd != nil {
		t.Error("correct answer should not trigger an explanation fetch")
	}
	if q.session.Correct != 1 {
		t.Errorf("correct = %d, want 1", q.session.Correct)
	}
	if !strings.Contains(q.View(80, 24), "octagonal sign always means stop") {
		t.Error("view should show the question's own rationale")
	}
}

func TestWrongAnswerFetchesExplanation(t *testing.T) {
	gen := &stubGenerator{question: testQuestion()}
	q, _ := newTestQuiz(gen)
	q.Init()
	deliverQuestion(q)

	q.Update(keyPress('j'))
	_, cmd := q.Update(enterKey())
	if q.session.Phase != sess.PhaseConfirmed {
		t.Fatalf("phase = %v, want confirmed", q.session.Phase)
	}
	if cmd == nil {
		t.Fatal("wrong answer should trigger the explanation fetch")
	}

	q.Update(explanationReadyMsg{Epoch: q.session.Epoch(), Text: "Only the octagon means stop."})
	if q.session.Phase != sess.PhaseExplained {
		t.Fatalf("phase = %v, want explained", q.session.Phase)
	}
	if !strings.Contains(q.View(80, 24), "Only the octagon means stop.") {
		t.Error("view should show the fetched explanation")
	}
}

func TestNumberKeySelectsAndConfirms(t *testing.T) {
	gen := &stubGenerator{question: testQuestion()}
	q, _ := newTestQuiz(gen)
	q.Init()
	deliverQuestion(q)

	q.Update(keyPress('1'))
	if q.session.Phase != sess.PhaseExplained {
		t.Fatalf("phase = %v, want explained", q.session.Phase)
	}
	if !q.session.LastCorrect {
		t.Error("option 1 should be the correct answer")
	}
}

func TestPerfectRunAppliesStats(t *testing.T) {
	gen := &stubGenerator{question: testQuestion()}
	q, st := newTestQuiz(gen)
	before := st.Stats()
	q.Init()

	for i := 0; i < sess.TargetQuestions; i++ {
		deliverQuestion(q)
		q.Update(enterKey()) // confirm correct
		q.Update(enterKey()) // advance
	}

	if q.session.Phase != sess.PhaseComplete {
		t.Fatalf("phase = %v, want complete", q.session.Phase)
	}
	if q.session.FinalScore() != 100 {
		t.Fatalf("score = %d, want 100", q.session.FinalScore())
	}

	after := st.Stats()
	if after.TestsTaken != before.TestsTaken+1 {
		t.Errorf("tests taken = %d, want %d", after.TestsTaken, before.TestsTaken+1)
	}
	if after.XP != before.XP+stats.PassBonusXP {
		t.Errorf("xp = %d, want %d", after.XP, before.XP+stats.PassBonusXP)
	}
	wantAvg := (before.AverageScore + 100 + 1) / 2 // round((avg+100)/2)
	if after.AverageScore != wantAvg {
		t.Errorf("average = %d, want %d", after.AverageScore, wantAvg)
	}
}

func TestLeaveAbandonsRun(t *testing.T) {
	gen := &stubGenerator{question: testQuestion()}
	q, st := newTestQuiz(gen)
	before := st.Stats()
	q.Init()
	deliverQuestion(q)
	staleEpoch := q.session.Epoch()

	q.Leave()

	if q.session.Active() {
		t.Fatal("session still active after Leave")
	}
	// Abandoning on the first question emits a zero score.
	after := st.Stats()
	if after.TestsTaken != before.TestsTaken+1 {
		t.Errorf("abandon should still count a test, taken = %d", after.TestsTaken)
	}
	if after.XP != before.XP+stats.ConsolationXP {
		t.Errorf("xp = %d, want consolation award", after.XP)
	}

	// An in-flight question from before the abandon must be dropped.
	q.Update(questionReadyMsg{Epoch: staleEpoch, Question: testQuestion()})
	if q.session.Phase != sess.PhaseComplete {
		t.Errorf("stale question mutated the session: phase %v", q.session.Phase)
	}
}

func TestLeaveAfterCompletionIsNoop(t *testing.T) {
	gen := &stubGenerator{question: testQuestion()}
	q, st := newTestQuiz(gen)
	q.Init()
	for i := 0; i < sess.TargetQuestions; i++ {
		deliverQuestion(q)
		q.Update(enterKey())
		q.Update(enterKey())
	}
	taken := st.Stats().TestsTaken

	q.Leave()
	if st.Stats().TestsTaken != taken {
		t.Error("Leave after completion applied stats twice")
	}
}

func TestGenerationFailureEndsRun(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider unavailable")}
	q, st := newTestQuiz(gen)
	before := st.Stats()
	q.Init()

	q.Update(questionReadyMsg{Epoch: q.session.Epoch(), Err: errors.New("provider unavailable")})

	if q.session.Phase != sess.PhaseFailed {
		t.Fatalf("phase = %v, want failed", q.session.Phase)
	}
	// A first-question failure emits a zero score.
	if st.Stats().TestsTaken != before.TestsTaken+1 {
		t.Error("failure should still record the run")
	}
	if !strings.Contains(q.View(80, 24), "generation failed") {
		t.Error("view should show the failure notice")
	}
}

func TestExplanationIgnoredAfterAbandon(t *testing.T) {
	gen := &stubGenerator{question: testQuestion()}
	q, _ := newTestQuiz(gen)
	q.Init()
	deliverQuestion(q)
	q.Update(keyPress('j'))
	q.Update(enterKey())
	staleEpoch := q.session.Epoch()

	q.Leave()

	q.Update(explanationReadyMsg{Epoch: staleEpoch, Text: "late explanation"})
	if q.session.Explanation == "late explanation" {
		t.Error("stale explanation mutated the session")
	}
}
