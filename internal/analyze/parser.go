package analyze

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseResult extracts an analysis from raw model output. Like quiz
// parsing, the JSON often arrives wrapped in fences and prose: strip
// fence markers, slice from the first "{" to the last "}", then
// unmarshal. Failure yields a nil result and a diagnostic error.
func ParseResult(raw string) (*Result, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object found in model output")
	}
	cleaned = cleaned[start : end+1]

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}

	// Drop empty weak-topic entries the model sometimes emits.
	topics := result.WeakTopics[:0]
	for _, t := range result.WeakTopics {
		if strings.TrimSpace(t) != "" {
			topics = append(topics, t)
		}
	}
	result.WeakTopics = topics

	return &result, nil
}
