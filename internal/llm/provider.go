package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction every AI feature talks to: question
// generation, answer explanations and the tutor chat all go through
// Generate. Implementations exist for Anthropic, OpenAI, OpenRouter,
// Gemini and a deterministic mock.
type Provider interface {
	// Generate sends a prompt and returns the model output. When the
	// request carries a Schema the provider uses its native structured
	// output mechanism and the response Content is validated JSON;
	// otherwise Content is the raw text reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Request describes one call to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Question generation and
	// explanations send a single user message; the tutor chat sends
	// the running transcript.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON structure the model must produce.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "exam-question").
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the model output.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
