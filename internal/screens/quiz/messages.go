package quiz

import (
	"time"

	"github.com/skilylabs/skily/internal/quizgen"
)

// questionReadyMsg is sent when question generation resolves. Epoch is
// the session liveness token captured when the request was issued.
type questionReadyMsg struct {
	Epoch    int
	Question *quizgen.Question
	Err      error
}

// explanationReadyMsg is sent when the explanation fetch for a wrong
// answer resolves.
type explanationReadyMsg struct {
	Epoch int
	Text  string
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time
