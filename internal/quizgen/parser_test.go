package quizgen

import (
	"strings"
	"testing"
)

const sampleBatch = `[
  {
    "question": "What is the dimension of Planck's constant?",
    "answers": ["ML²T⁻¹", "MLT⁻¹", "ML²T⁻²", "MLT⁻²"],
    "correctAnswer": 0,
    "explanation": {
      "detailed_steps": "E = hν, so h = E/ν which gives ML²T⁻¹.",
      "youtube_link": "https://youtube.com/watch?v=abc"
    }
  },
  {
    "question": "Integrate 1/x dx.",
    "answers": ["ln|x| + C", "x²/2 + C", "1/x² + C", "e^x + C"],
    "correctAnswer": 0,
    "explanation": {
      "detailed_steps": "The antiderivative of 1/x is ln|x|.",
      "youtube_link": ""
    }
  }
]`

func TestParseQuestions_CleanArray(t *testing.T) {
	qs, err := ParseQuestions(sampleBatch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Text != "What is the dimension of Planck's constant?" {
		t.Errorf("unexpected text: %q", qs[0].Text)
	}
	if qs[0].CorrectIndex != 0 {
		t.Errorf("correct index = %d, want 0", qs[0].CorrectIndex)
	}
	if qs[0].Explanation.VideoURL != "https://youtube.com/watch?v=abc" {
		t.Errorf("video url = %q", qs[0].Explanation.VideoURL)
	}
}

func TestParseQuestions_FencedWithProse(t *testing.T) {
	raw := "Here is your quiz:\n```json\n" + sampleBatch + "\n```\nGood luck!"
	qs, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
}

func TestParseQuestions_NoArray(t *testing.T) {
	_, err := ParseQuestions("Sorry, I cannot generate a quiz right now.")
	if err == nil {
		t.Fatal("expected error for output without a JSON array")
	}
}

func TestParseQuestions_MalformedJSON(t *testing.T) {
	_, err := ParseQuestions(`[{"question": "unterminated`)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestParseQuestions_InvertedBrackets(t *testing.T) {
	_, err := ParseQuestions(`] nothing here [`)
	if err == nil {
		t.Fatal("expected error when last ] precedes first [")
	}
}

func TestParseQuestions_MissingExplanationGetsDefault(t *testing.T) {
	raw := `[{"question": "Q", "answers": ["a","b","c","d"], "correctAnswer": 1}]`
	qs, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs[0].Explanation.Steps != DefaultExplanation {
		t.Errorf("steps = %q, want default explanation", qs[0].Explanation.Steps)
	}
	if qs[0].Explanation.VideoURL != "" {
		t.Errorf("video url = %q, want empty", qs[0].Explanation.VideoURL)
	}
}

func TestParseQuestions_EmptyDetailedStepsGetsDefault(t *testing.T) {
	raw := `[{"question": "Q", "answers": ["a","b","c","d"], "correctAnswer": 0,
		"explanation": {"youtube_link": "https://youtu.be/x"}}]`
	qs, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs[0].Explanation.Steps != DefaultExplanation {
		t.Errorf("steps = %q, want default explanation", qs[0].Explanation.Steps)
	}
	if qs[0].Explanation.VideoURL != "https://youtu.be/x" {
		t.Errorf("video url = %q", qs[0].Explanation.VideoURL)
	}
}

func TestParseQuestions_ShortAnswersPadded(t *testing.T) {
	raw := `[{"question": "Q", "answers": ["only", "two"], "correctAnswer": 1}]`
	qs, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs[0].Choices) != 4 {
		t.Fatalf("got %d choices, want 4", len(qs[0].Choices))
	}
	if qs[0].Choices[2] != "" || qs[0].Choices[3] != "" {
		t.Errorf("padding choices not empty: %v", qs[0].Choices)
	}
}

func TestParseQuestions_ExtraAnswersTruncated(t *testing.T) {
	raw := `[{"question": "Q", "answers": ["a","b","c","d","e","f"], "correctAnswer": 0}]`
	qs, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs[0].Choices) != 4 {
		t.Fatalf("got %d choices, want 4", len(qs[0].Choices))
	}
}

func TestParseQuestions_OutOfRangeCorrectAnswerClamped(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"too large", `[{"question": "Q", "answers": ["a","b","c","d"], "correctAnswer": 7}]`},
		{"negative", `[{"question": "Q", "answers": ["a","b","c","d"], "correctAnswer": -2}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := ParseQuestions(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if qs[0].CorrectIndex != 0 {
				t.Errorf("correct index = %d, want 0", qs[0].CorrectIndex)
			}
		})
	}
}

func TestParseQuestions_EmptyArray(t *testing.T) {
	qs, err := ParseQuestions("[]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 0 {
		t.Fatalf("got %d questions, want 0", len(qs))
	}
}

func TestParseQuestions_ProseAroundBareArray(t *testing.T) {
	raw := "Of course! " + sampleBatch + " Let me know if you need more."
	qs, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if !strings.HasPrefix(qs[1].Text, "Integrate") {
		t.Errorf("unexpected second question: %q", qs[1].Text)
	}
}
