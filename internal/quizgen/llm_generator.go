package quizgen

import (
	"context"
	"fmt"

	"github.com/notqc/helpmate/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a batch of questions for the given input.
// No response schema is set; the model wraps its JSON in prose, and
// ParseQuestions owns extraction.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGen)

	if input.Count <= 0 {
		input.Count = g.config.DefaultCount
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	questions, err := ParseQuestions(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("generated quiz is empty")
	}

	return questions, nil
}
