package analyze

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NullableNumber is a numeric field that the model may report as
// "not determinable". It accepts JSON numbers, numeric strings, and
// the sentinel; anything else also parses as not determinable rather
// than failing the document.
type NullableNumber struct {
	Value float64
	Valid bool
}

// NotDeterminable is the sentinel the model uses for counts it cannot
// infer from the document.
const NotDeterminable = "not determinable"

func (n *NullableNumber) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		n.Value = num
		n.Valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			n.Value = f
			n.Valid = true
			return nil
		}
	}

	*n = NullableNumber{}
	return nil
}

func (n NullableNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return json.Marshal(NotDeterminable)
	}
	return json.Marshal(n.Value)
}

// String renders the value, or the sentinel when not determinable.
func (n NullableNumber) String() string {
	if !n.Valid {
		return NotDeterminable
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Int returns the value as an int, 0 when not determinable.
func (n NullableNumber) Int() int {
	if !n.Valid {
		return 0
	}
	return int(n.Value)
}

// Stats holds the aggregate counts the model inferred from the
// document.
type Stats struct {
	TotalQuestions     NullableNumber `json:"total_questions"`
	CorrectAnswers     NullableNumber `json:"correct_answers"`
	IncorrectAnswers   NullableNumber `json:"incorrect_answers"`
	AccuracyPercentage NullableNumber `json:"accuracy_percentage"`
}

// QuestionReview is the model's judgment of a single question in the
// document.
type QuestionReview struct {
	Question      string `json:"question"`
	StudentAnswer string `json:"student_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"is_correct"`
	Topic         string `json:"topic"`
	Explanation   string `json:"explanation"`
}

// Result is a full document analysis.
type Result struct {
	WeakTopics []string         `json:"weak_topics"`
	Stats      Stats            `json:"analysis"`
	Questions  []QuestionReview `json:"question_analysis"`
	Summary    string           `json:"summary"`
}
