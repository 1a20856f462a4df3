package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/skilylabs/skily/internal/llm"
)

// Fallback is shown when the explanation call fails. The quiz never
// blocks or errors on a missing explanation.
const Fallback = "The selected answer is incorrect. Review the highlighted rule for this topic and try a similar question again."

const systemPrompt = `You are a driving instructor explaining why an answer on a theory test is wrong.

Rules:
- Explain in two or three sentences why the chosen option is incorrect and why the correct option is right.
- Name the traffic rule or principle involved when possible.
- Address the learner directly and keep an encouraging tone.
- Plain text only, no markdown or lists.`

// Config controls the explanation request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.4,
	}
}

// Input describes the wrong answer to elaborate on.
type Input struct {
	QuestionText  string
	Options       []string
	CorrectOption string
	ChosenOption  string
}

// Service produces elaborated explanations for wrong answers.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Explain returns an elaborated explanation for a wrong answer. It
// never fails: any provider error yields the generic fallback text.
func (s *Service) Explain(ctx context.Context, input Input) string {
	ctx = llm.WithPurpose(ctx, "explanation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Fallback
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return Fallback
	}
	return text
}

func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", input.QuestionText)
	b.WriteString("Options:\n")
	for i, opt := range input.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	fmt.Fprintf(&b, "Correct answer: %s\n", input.CorrectOption)
	fmt.Fprintf(&b, "Learner chose: %s\n", input.ChosenOption)

	return b.String()
}
