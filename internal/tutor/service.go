package tutor

import (
	"context"
	"strings"

	"github.com/skilylabs/skily/internal/llm"
)

// Fallback is shown when the tutor call fails. The chat stays usable;
// the learner can simply ask again.
const Fallback = "I couldn't reach the tutor service just now. Please ask your question again in a moment."

const systemPrompt = `You are a patient driving instructor helping a learner prepare for the official theory exam.

Rules:
- Only answer questions about traffic regulations, road signs, vehicle safety, and driving technique. If asked about anything else, politely steer the conversation back to driving theory.
- Keep answers short and conversational, a few sentences at most.
- When a rule has a concrete number (speed limit, alcohol limit, distance), state it explicitly.
- Plain text only, no markdown or lists.`

// MaxHistory is the number of prior exchanges kept in the prompt.
const MaxHistory = 12

// Config controls the tutor request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.6,
	}
}

// Message is one turn of the tutor conversation.
type Message struct {
	FromLearner bool
	Text        string
}

// Service answers free-text questions scoped to driving theory.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor chat service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Ask sends the conversation so far plus the new question and returns
// the tutor's reply. It never fails: any provider error yields the
// fallback text.
func (s *Service) Ask(ctx context.Context, history []Message, question string) string {
	ctx = llm.WithPurpose(ctx, "tutor")

	req := llm.Request{
		System:      systemPrompt,
		Messages:    buildMessages(history, question),
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

func buildMessages(history []Message, question string) []llm.Message {
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}

	out := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		role := llm.RoleAssistant
		if m.FromLearner {
			role = llm.RoleUser
		}
		out = append(out, llm.Message{Role: role, Content: m.Text})
	}
	out = append(out, llm.Message{Role: llm.RoleUser, Content: question})
	return out
}
