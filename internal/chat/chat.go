// Package chat provides the study-support conversation: free-form
// tutoring replies plus weak-topic extraction from what the student
// writes.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/notqc/helpmate/internal/llm"
)

const respondSystemPrompt = `You are a student support chatbot. The user is preparing for the Joint Entrance Exam (JEE).

Format your responses in a clear, helpful manner.
Keep information short and to the point.
Highlight important information when needed.
Keep the overall response brief and easy to read.`

const extractSystemPrompt = `From the student message, identify any weak topics or subjects the student might be struggling with.
Think from the student's perspective: if they wrote this message, which topic might they want to know more about?
If there are weak topics, respond with the list of topics separated by a single space (e.g. "calculus thermodynamics optics").
If no weak topics are found, respond with "none".`

// Message is one turn of the conversation.
type Message struct {
	Role    llm.Role
	Content string
}

// Config controls the chat LLM requests.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxHistory bounds how many prior turns are replayed per request.
	MaxHistory int
}

// DefaultConfig returns recommended chat defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		MaxHistory:  20,
	}
}

// Chat holds the running conversation with the provider.
type Chat struct {
	provider llm.Provider
	config   Config
	history  []Message
}

// New creates a Chat with an empty history.
func New(provider llm.Provider, cfg Config) *Chat {
	return &Chat{provider: provider, config: cfg}
}

// History returns a copy of the conversation so far.
func (c *Chat) History() []Message {
	return append([]Message(nil), c.history...)
}

// Respond sends the user message with the recent history and records
// both turns. The reply is plain markdown text.
func (c *Chat) Respond(ctx context.Context, userMessage string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", fmt.Errorf("message is empty")
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeChat)

	msgs := c.recentHistory()
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: userMessage})

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      respondSystemPrompt,
		Messages:    msgs,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat response failed: %w", err)
	}

	reply := string(resp.Content)
	c.history = append(c.history,
		Message{Role: llm.RoleUser, Content: userMessage},
		Message{Role: llm.RoleAssistant, Content: reply},
	)
	return reply, nil
}

func (c *Chat) recentHistory() []llm.Message {
	h := c.history
	if c.config.MaxHistory > 0 && len(h) > c.config.MaxHistory {
		h = h[len(h)-c.config.MaxHistory:]
	}
	out := make([]llm.Message, len(h))
	for i, m := range h {
		out[i] = llm.Message{Role: m.Role, Content: m.Content}
	}
	return out
}

// ExtractTopics asks the provider which topics the student seems to be
// struggling with in message. Topics come back lowercased and
// deduplicated; "none" (or a provider error response shape) yields an
// empty slice, never an error for the caller to branch on beyond
// transport failures.
func ExtractTopics(ctx context.Context, provider llm.Provider, message string) ([]string, error) {
	if strings.TrimSpace(message) == "" {
		return nil, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeTopicExtract)

	resp, err := provider.Generate(ctx, llm.Request{
		System: extractSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Message: %q", message)},
		},
		MaxTokens:   256,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("topic extraction failed: %w", err)
	}

	text := strings.ToLower(strings.TrimSpace(string(resp.Content)))
	if text == "" || text == "none" {
		return nil, nil
	}

	seen := make(map[string]bool)
	var topics []string
	for _, t := range strings.Fields(text) {
		if !seen[t] {
			seen[t] = true
			topics = append(topics, t)
		}
	}
	return topics, nil
}
