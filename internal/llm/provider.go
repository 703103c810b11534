package llm

import (
	"context"
	"encoding/json"
)

// Provider is the seam to the external generative model. Everything the
// app asks of an LLM — quiz generation, chat replies, topic extraction,
// document analysis — goes through this interface, so the rest of the
// code never sees a vendor SDK.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its output.
	// When the request carries a Schema the provider uses its native
	// structured-output mechanism and the response Content is validated
	// JSON. Without a Schema the Content is the raw response text; the
	// caller owns any further parsing (the quiz and analysis parsers
	// are deliberately lenient about what they accept).
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. Quiz generation and analysis
	// are single-turn; chat threads its whole history through here.
	Messages []Message

	// Schema, when set, asks the provider for JSON conforming to it.
	// Left nil for the lenient free-text flows.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
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

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "quiz-questions".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. Validated JSON when a Schema was
	// provided, otherwise the raw response text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
