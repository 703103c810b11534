package analyze

import (
	"context"
	"fmt"
	"strings"

	"github.com/notqc/helpmate/internal/llm"
)

const systemPrompt = `You are analyzing a student's test results for JEE preparation. The document content might contain questions, the student's answers, and correct answers. The typical format is:

->question
->answer by student
->correct answer

However, the format might vary. Be flexible in parsing.

Respond with the following JSON structure:
{
  "weak_topics": ["topic1 based on incorrect answers", "topic2"],
  "analysis": {
    "total_questions": "number (infer if possible, otherwise state 'not determinable')",
    "correct_answers": "number (infer if possible, otherwise state 'not determinable')",
    "incorrect_answers": "number (infer if possible, otherwise state 'not determinable')",
    "accuracy_percentage": "number (calculate if possible, otherwise 'not determinable')"
  },
  "question_analysis": [
    {
      "question": "Question text (or a summary if too long)",
      "student_answer": "Student's answer",
      "correct_answer": "Correct answer",
      "is_correct": true,
      "topic": "Related topic (e.g. Kinematics, Thermodynamics, P-block elements)",
      "explanation": "Brief explanation of why the answer is correct/incorrect and what concept the student needs to focus on."
    }
  ],
  "summary": "Brief overall analysis of student performance and recommendations."
}

Infer the topics from the questions themselves.
If the number of questions, correct, or incorrect answers cannot be reliably determined from the text, use "not determinable".
Return ONLY valid JSON with no additional text or markdown formatting.`

// Config controls the analyzer's LLM request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended analyzer defaults. Low temperature:
// this is extraction, not generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.2,
	}
}

// Analyzer turns extracted test-result text into a structured Result.
type Analyzer struct {
	provider llm.Provider
	config   Config
}

// New creates an Analyzer with the given provider and config.
func New(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, config: cfg}
}

// Analyze sends the document text to the provider and parses the
// response. Empty input is rejected before any request is made.
func (a *Analyzer) Analyze(ctx context.Context, documentText string) (*Result, error) {
	if strings.TrimSpace(documentText) == "" {
		return nil, fmt.Errorf("document text is empty")
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeDocAnalysis)

	userMsg := "Here is the extracted content from the test result:\n---\n" +
		documentText + "\n---"

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM analysis failed: %w", err)
	}

	result, err := ParseResult(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}
	return result, nil
}
