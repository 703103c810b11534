package quizgen

import "context"

// Generator produces quiz questions using an LLM provider.
type Generator interface {
	// Generate produces a batch of questions for the given input.
	// The batch may be shorter than input.Count; it is never padded
	// and never re-requested. An empty batch is an error.
	Generate(ctx context.Context, input GenerateInput) ([]Question, error)
}
