package quizgen

import (
	"strings"
	"testing"
)

func validQuestion() *Question {
	return &Question{
		ID:           "q1",
		Text:         "What does a red traffic light mean?",
		Options:      []string{"Stop", "Proceed with caution", "Yield", "Speed up"},
		CorrectIndex: 0,
		Explanation:  "A red light requires a complete stop.",
		Difficulty:   1,
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name    string
		mutate  func(*Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"empty text", func(q *Question) { q.Text = "" }, true},
		{"text too long", func(q *Question) { q.Text = strings.Repeat("x", 501) }, true},
		{"empty explanation", func(q *Question) { q.Explanation = "" }, true},
		{"explanation too long", func(q *Question) { q.Explanation = strings.Repeat("x", 1001) }, true},
		{"difficulty too low", func(q *Question) { q.Difficulty = 0 }, true},
		{"difficulty too high", func(q *Question) { q.Difficulty = 6 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			err := v.Validate(q, GenerateInput{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsValidator(t *testing.T) {
	v := &OptionsValidator{}

	tests := []struct {
		name    string
		mutate  func(*Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }, true},
		{"five options", func(q *Question) { q.Options = append(q.Options, "Extra") }, true},
		{"empty option", func(q *Question) { q.Options[2] = "   " }, true},
		{"duplicate options", func(q *Question) { q.Options[1] = "Stop" }, true},
		{"case-insensitive duplicate", func(q *Question) { q.Options[1] = "STOP" }, true},
		{"index negative", func(q *Question) { q.CorrectIndex = -1 }, true},
		{"index too large", func(q *Question) { q.CorrectIndex = 4 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			err := v.Validate(q, GenerateInput{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Validator: "options", Message: "must have exactly 4 options"}
	if !strings.Contains(err.Error(), "options") {
		t.Errorf("error missing validator name: %q", err.Error())
	}
}
