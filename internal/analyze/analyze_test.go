package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/notqc/helpmate/internal/llm"
)

const sampleAnalysis = `{
  "weak_topics": ["Rotational Motion", "Electrochemistry"],
  "analysis": {
    "total_questions": 30,
    "correct_answers": 18,
    "incorrect_answers": 12,
    "accuracy_percentage": 60
  },
  "question_analysis": [
    {
      "question": "A disc rolls without slipping...",
      "student_answer": "B",
      "correct_answer": "C",
      "is_correct": false,
      "topic": "Rotational Motion",
      "explanation": "Rolling combines translation and rotation."
    }
  ],
  "summary": "Decent attempt; mechanics needs work."
}`

func TestParseResult_CleanObject(t *testing.T) {
	result, err := ParseResult(sampleAnalysis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.WeakTopics) != 2 {
		t.Fatalf("weak topics = %v", result.WeakTopics)
	}
	if !result.Stats.TotalQuestions.Valid || result.Stats.TotalQuestions.Int() != 30 {
		t.Errorf("total questions = %+v", result.Stats.TotalQuestions)
	}
	if len(result.Questions) != 1 || result.Questions[0].Correct {
		t.Errorf("question analysis = %+v", result.Questions)
	}
	if result.Summary == "" {
		t.Error("expected non-empty summary")
	}
}

func TestParseResult_FencedWithProse(t *testing.T) {
	raw := "Here is the analysis:\n```json\n" + sampleAnalysis + "\n```"
	result, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stats.CorrectAnswers.Int() != 18 {
		t.Errorf("correct answers = %+v", result.Stats.CorrectAnswers)
	}
}

func TestParseResult_NotDeterminableSentinels(t *testing.T) {
	raw := `{
	  "weak_topics": [],
	  "analysis": {
	    "total_questions": "not determinable",
	    "correct_answers": "not determinable",
	    "incorrect_answers": "not determinable",
	    "accuracy_percentage": "not determinable"
	  },
	  "question_analysis": [],
	  "summary": "Could not read the document structure."
	}`
	result, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stats.TotalQuestions.Valid {
		t.Error("expected total questions to be not determinable")
	}
	if result.Stats.TotalQuestions.String() != NotDeterminable {
		t.Errorf("string = %q", result.Stats.TotalQuestions.String())
	}
}

func TestParseResult_NumericStrings(t *testing.T) {
	raw := `{
	  "weak_topics": ["Optics"],
	  "analysis": {
	    "total_questions": "25",
	    "correct_answers": "20",
	    "incorrect_answers": "5",
	    "accuracy_percentage": "80%"
	  },
	  "question_analysis": [],
	  "summary": "Good."
	}`
	result, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stats.TotalQuestions.Int() != 25 {
		t.Errorf("total questions = %+v", result.Stats.TotalQuestions)
	}
	if !result.Stats.AccuracyPercentage.Valid || result.Stats.AccuracyPercentage.Value != 80 {
		t.Errorf("accuracy = %+v", result.Stats.AccuracyPercentage)
	}
}

func TestParseResult_NoObject(t *testing.T) {
	if _, err := ParseResult("I could not analyze this document."); err == nil {
		t.Fatal("expected error for output without a JSON object")
	}
}

func TestParseResult_MalformedJSON(t *testing.T) {
	if _, err := ParseResult(`{"weak_topics": [`); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestParseResult_BlankWeakTopicsDropped(t *testing.T) {
	raw := `{"weak_topics": ["Optics", "", "  "], "summary": "x"}`
	result, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.WeakTopics) != 1 || result.WeakTopics[0] != "Optics" {
		t.Errorf("weak topics = %v", result.WeakTopics)
	}
}

func TestAnalyze_SendsDocumentText(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleAnalysis)},
	)
	a := New(mock, DefaultConfig())

	result, err := a.Analyze(context.Background(), "Q1: ... student: B correct: C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.WeakTopics) != 2 {
		t.Errorf("weak topics = %v", result.WeakTopics)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "student: B correct: C") {
		t.Error("document text missing from prompt")
	}
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	mock := llm.NewMockProvider()
	a := New(mock, DefaultConfig())

	if _, err := a.Analyze(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty document")
	}
	if mock.CallCount() != 0 {
		t.Error("no provider call expected for empty input")
	}
}

func TestAnalyze_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	a := New(mock, DefaultConfig())

	_, err := a.Analyze(context.Background(), "some text")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}
