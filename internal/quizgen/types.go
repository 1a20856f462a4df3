package quizgen

import "github.com/skilylabs/skily/internal/topics"

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Question represents a generated exam question ready for display.
type Question struct {
	// ID uniquely identifies the question within a run.
	ID string

	// Topic is the topic this question was generated for.
	Topic topics.Topic

	// Text is the question prompt displayed to the learner.
	Text string

	// Options holds exactly 4 answer options, one of which is correct.
	Options []string

	// CorrectIndex is the index into Options of the correct answer (0-3).
	CorrectIndex int

	// Explanation is a brief rationale for the correct answer.
	// Always present; shown after the learner confirms a wrong answer
	// and available on demand otherwise.
	Explanation string

	// ImageHint is an optional textual description of a sign or scene
	// the question refers to. Empty when the question is self-contained.
	ImageHint string

	// Difficulty is the model's self-assessed difficulty (1-5).
	// Used for analytics, not for gating.
	Difficulty int
}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	// Topic is the target topic for the question.
	Topic topics.Info

	// PriorQuestions contains the Text of questions already asked in
	// this quiz. Used for deduplication in the prompt.
	PriorQuestions []string
}
