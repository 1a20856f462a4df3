package quiz

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/skilylabs/skily/internal/quizgen"
	"github.com/skilylabs/skily/internal/topics"
)

// TargetQuestions is the fixed number of questions per quiz run.
const TargetQuestions = 5

// NoSelection marks the absence of a chosen option.
const NoSelection = -1

// Phase represents the current phase of a quiz session.
type Phase int

const (
	PhaseIdle       Phase = iota // No active question
	PhaseLoading                 // Awaiting the question provider
	PhasePresenting              // Question shown, no selection yet
	PhaseSelected                // Option chosen, not confirmed
	PhaseConfirmed               // Answer locked, explanation fetch in flight if wrong
	PhaseExplained               // Explanation available or not needed
	PhaseComplete                // All questions answered or session abandoned
	PhaseFailed                  // Question provider failed; only recovery is abandon
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhasePresenting:
		return "presenting"
	case PhaseSelected:
		return "selected"
	case PhaseConfirmed:
		return "confirmed"
	case PhaseExplained:
		return "explained"
	case PhaseComplete:
		return "complete"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session is the quiz state machine. It is driven entirely from the UI
// event loop: all methods are synchronous state transitions, and the
// caller performs the actual provider calls between them.
//
// Async results must carry the epoch captured when the request was
// issued. Attach methods reject results from a stale epoch, so a
// response arriving after the session was abandoned can never mutate
// the replacement session.
type Session struct {
	// ID is the UUID for this quiz run, regenerated on Start.
	ID string

	// Topic is the topic this run draws questions from.
	Topic topics.Topic

	// Phase is the current state machine phase.
	Phase Phase

	// Index is the zero-based index of the current question.
	Index int

	// Correct is the running count of correctly answered questions.
	Correct int

	// Question is the active question (nil in Idle/Loading/Complete/Failed).
	Question *quizgen.Question

	// Selection is the currently chosen option index, or NoSelection.
	Selection int

	// LastCorrect records whether the most recent confirmed answer was correct.
	LastCorrect bool

	// Explanation is the elaborated explanation for a wrong answer,
	// set once the explanation fetch resolves.
	Explanation string

	// PriorQuestions holds the text of questions already asked in this
	// run, passed to the generator for dedup.
	PriorQuestions []string

	// StartTime is when the run began.
	StartTime time.Time

	// QuestionStart is when the current question was first displayed.
	QuestionStart time.Time

	epoch int
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{Phase: PhaseIdle, Selection: NoSelection}
}

// Epoch returns the current liveness token. Async work started now must
// present this value to the Attach methods when it completes.
func (s *Session) Epoch() int {
	return s.epoch
}

// Live reports whether an async result from the given epoch may still
// be applied.
func (s *Session) Live(epoch int) bool {
	return epoch == s.epoch
}

// Start begins a new run on the given topic, resetting all counters and
// invalidating any in-flight async work from a previous run.
func (s *Session) Start(topic topics.Topic) error {
	if !topics.Valid(topic) {
		return fmt.Errorf("unknown topic: %q", topic)
	}

	s.epoch++
	s.ID = uuid.NewString()
	s.Topic = topic
	s.Phase = PhaseLoading
	s.Index = 0
	s.Correct = 0
	s.Question = nil
	s.Selection = NoSelection
	s.LastCorrect = false
	s.Explanation = ""
	s.PriorQuestions = nil
	s.StartTime = time.Now()
	return nil
}

// AttachQuestion applies a loaded question. Returns false if the result
// is stale or the session is not waiting for one.
func (s *Session) AttachQuestion(epoch int, q *quizgen.Question) bool {
	if !s.Live(epoch) || s.Phase != PhaseLoading {
		return false
	}
	s.Question = q
	s.Selection = NoSelection
	s.Explanation = ""
	s.Phase = PhasePresenting
	s.QuestionStart = time.Now()
	s.PriorQuestions = append(s.PriorQuestions, q.Text)
	return true
}

// FailLoad moves the session to the terminal failure state. Returns
// false if the result is stale or the session is not loading.
func (s *Session) FailLoad(epoch int) bool {
	if !s.Live(epoch) || s.Phase != PhaseLoading {
		return false
	}
	s.Question = nil
	s.Phase = PhaseFailed
	return true
}

// Select records the learner's option choice. Valid in Presenting and
// Selected; selecting the same option again is a no-op.
func (s *Session) Select(index int) bool {
	if s.Phase != PhasePresenting && s.Phase != PhaseSelected {
		return false
	}
	if index < 0 || index >= len(s.Question.Options) {
		return false
	}
	s.Selection = index
	s.Phase = PhaseSelected
	return true
}

// Confirm locks in the current selection and resolves correctness.
// Returns (needsExplanation, ok). When the answer is wrong the caller
// must fetch an elaborated explanation and deliver it via
// AttachExplanation; when correct the session moves straight to
// Explained with the question's own rationale.
func (s *Session) Confirm() (bool, bool) {
	if s.Phase != PhaseSelected || s.Selection == NoSelection {
		return false, false
	}

	s.LastCorrect = s.Selection == s.Question.CorrectIndex
	if s.LastCorrect {
		s.Correct++
		s.Explanation = s.Question.Explanation
		s.Phase = PhaseExplained
		return false, true
	}

	s.Phase = PhaseConfirmed
	return true, true
}

// AttachExplanation applies the elaborated explanation for a wrong
// answer. Returns false if the result is stale or not awaited.
func (s *Session) AttachExplanation(epoch int, text string) bool {
	if !s.Live(epoch) || s.Phase != PhaseConfirmed {
		return false
	}
	s.Explanation = text
	s.Phase = PhaseExplained
	return true
}

// Advance moves to the next question, or completes the run when the
// target count is reached. Returns (done, ok); when done is false the
// session is back in Loading and the caller must request the next
// question.
func (s *Session) Advance() (bool, bool) {
	if s.Phase != PhaseExplained {
		return false, false
	}

	if s.Index+1 < TargetQuestions {
		s.Index++
		s.Question = nil
		s.Selection = NoSelection
		s.LastCorrect = false
		s.Explanation = ""
		s.Phase = PhaseLoading
		return false, true
	}

	s.Phase = PhaseComplete
	return true, true
}

// Abandon ends the run early, invalidating in-flight async work, and
// returns the final score. The denominator stays the full target count
// regardless of how many questions were answered.
func (s *Session) Abandon() int {
	s.epoch++
	s.Question = nil
	s.Phase = PhaseComplete
	return s.FinalScore()
}

// FinalScore returns the percentage score over the fixed target count.
func (s *Session) FinalScore() int {
	return int(math.Round(float64(s.Correct) / float64(TargetQuestions) * 100))
}

// Active reports whether the session is mid-run.
func (s *Session) Active() bool {
	switch s.Phase {
	case PhaseIdle, PhaseComplete, PhaseFailed:
		return false
	}
	return true
}
