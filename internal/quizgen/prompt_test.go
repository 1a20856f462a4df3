package quizgen

import (
	"strings"
	"testing"

	"github.com/skilylabs/skily/internal/topics"
)

func TestBuildUserMessage(t *testing.T) {
	info, _ := topics.Get(topics.Speed)
	msg := buildUserMessage(GenerateInput{
		Topic:          info,
		PriorQuestions: []string{"first question", "second question"},
	}, DefaultConfig())

	if !strings.Contains(msg, info.Name) {
		t.Errorf("message missing topic name:\n%s", msg)
	}
	if !strings.Contains(msg, info.Description) {
		t.Errorf("message missing topic description:\n%s", msg)
	}
	if !strings.Contains(msg, "1. first question") {
		t.Errorf("message missing prior questions:\n%s", msg)
	}
}

func TestBuildDedup(t *testing.T) {
	tests := []struct {
		name  string
		prior []string
		max   int
		want  string
	}{
		{"empty", nil, 8, "None"},
		{"single", []string{"q1"}, 8, "1. q1"},
		{"two", []string{"q1", "q2"}, 8, "1. q1\n2. q2"},
		{"truncates to most recent", []string{"q1", "q2", "q3"}, 2, "1. q2\n2. q3"},
		{"zero max keeps all", []string{"q1", "q2"}, 0, "1. q1\n2. q2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildDedup(tt.prior, tt.max)
			if got != tt.want {
				t.Errorf("buildDedup() = %q, want %q", got, tt.want)
			}
		})
	}
}
