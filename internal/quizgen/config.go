package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Quiz batches
	// with detailed explanations are long.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// DefaultCount is used when GenerateInput.Count is zero.
	DefaultCount int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    4096,
		Temperature:  0.7,
		DefaultCount: 5,
	}
}
