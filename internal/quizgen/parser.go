package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultExplanation is substituted when the model omits the
// step-by-step solution for a question.
const DefaultExplanation = "Explanation not generated. Please refer to solution links."

// choiceCount is the number of options every parsed question carries.
const choiceCount = 4

// rawQuestion mirrors the JSON shape the model is asked to produce.
// Every field is optional at the JSON level; defaults are applied after
// unmarshaling.
type rawQuestion struct {
	Question      string          `json:"question"`
	Answers       []string        `json:"answers"`
	CorrectAnswer int             `json:"correctAnswer"`
	Explanation   *rawExplanation `json:"explanation"`
}

type rawExplanation struct {
	DetailedSteps string `json:"detailed_steps"`
	YoutubeLink   string `json:"youtube_link"`
}

// ParseQuestions extracts a question batch from raw model output.
// The model wraps its JSON in prose and code fences often enough that
// strict decoding is useless, so parsing is lenient:
//
//  1. strip ```json / ``` fence markers
//  2. slice from the first "[" to the last "]"
//  3. unmarshal the array
//  4. apply per-question defaults, never rejecting the batch
//
// Steps 2 and 3 failing yield an empty slice and a diagnostic error.
func ParseQuestions(raw string) ([]Question, error) {
	cleaned := stripFences(raw)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array found in model output")
	}
	cleaned = cleaned[start : end+1]

	var rawQs []rawQuestion
	if err := json.Unmarshal([]byte(cleaned), &rawQs); err != nil {
		return nil, fmt.Errorf("parse question array: %w", err)
	}

	questions := make([]Question, 0, len(rawQs))
	for _, rq := range rawQs {
		questions = append(questions, applyDefaults(rq))
	}
	return questions, nil
}

// applyDefaults fills in every field the model may have omitted or
// mangled. A malformed question becomes a displayable one, never an
// error.
func applyDefaults(rq rawQuestion) Question {
	q := Question{
		Text:         rq.Question,
		Choices:      rq.Answers,
		CorrectIndex: rq.CorrectAnswer,
	}

	// Exactly 4 options: pad short batches, truncate long ones.
	for len(q.Choices) < choiceCount {
		q.Choices = append(q.Choices, "")
	}
	q.Choices = q.Choices[:choiceCount]

	if q.CorrectIndex < 0 || q.CorrectIndex >= choiceCount {
		q.CorrectIndex = 0
	}

	if rq.Explanation != nil {
		q.Explanation.Steps = rq.Explanation.DetailedSteps
		q.Explanation.VideoURL = rq.Explanation.YoutubeLink
	}
	if q.Explanation.Steps == "" {
		q.Explanation.Steps = DefaultExplanation
	}

	return q
}

// stripFences removes markdown code fence markers the model tends to
// wrap JSON in.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
