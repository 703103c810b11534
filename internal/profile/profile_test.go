package profile

import (
	"strings"
	"testing"

	"github.com/notqc/helpmate/internal/bookmarks"
	"github.com/notqc/helpmate/internal/performance"
	"github.com/notqc/helpmate/internal/quizgen"
	"github.com/notqc/helpmate/internal/streak"
)

func TestTotalsAccuracy(t *testing.T) {
	if _, ok := (Totals{}).Accuracy(); ok {
		t.Error("accuracy should not be defined with zero questions")
	}

	acc, ok := (Totals{QuestionsSolved: 4, CorrectAnswers: 3}).Accuracy()
	if !ok || acc != 0.75 {
		t.Errorf("accuracy = (%v, %v), want (0.75, true)", acc, ok)
	}
}

func TestRender(t *testing.T) {
	ledger := performance.NewLedger()
	ledger.Record("Optics", true)
	ledger.Record("Optics", true)
	ledger.Record("Optics", false)
	ledger.Record("Vectors", true)
	ledger.Record("Thermodynamics", false)
	ledger.Record("Thermodynamics", false)

	out := Render(View{
		Totals: Totals{QuestionsSolved: 6, CorrectAnswers: 3},
		Ledger: ledger,
		Streak: streak.NewTracker(),
		Bookmarks: []bookmarks.Snapshot{
			{
				Question: quizgen.Question{
					Text:         "What is the focal length?",
					Choices:      []string{"1 m", "2 m", "3 m", "4 m"},
					CorrectIndex: 1,
				},
				Topic: "Optics",
			},
		},
		WeakTopics: []string{"Rotational Motion"},
	})

	for _, want := range []string{
		"Questions solved  6",
		"Accuracy          50.00%",
		"Current streak    0 days",
		"[mid]",            // Optics at 66.7
		"[high]",           // Vectors at 100
		"[low]",            // Thermodynamics at 0
		"(2/3)",
		"Weak topics: Rotational Motion",
		"Saved questions (1)",
		"[Optics] What is the focal length?",
		"Answer: 2 m",
		"Quiz streak (last 90 days",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered profile missing %q\n%s", want, out)
		}
	}
}

func TestRender_Empty(t *testing.T) {
	out := Render(View{Ledger: performance.NewLedger(), Streak: streak.NewTracker()})

	for _, want := range []string{
		"Accuracy          --",
		"Start solving quizzes or analyzing tests",
		"No questions bookmarked yet.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered profile missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "Weak topics") {
		t.Error("weak topics section should be omitted when empty")
	}
}

func TestAccuracyTagThresholds(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "high"},
		{75, "high"},
		{74.9, "mid"},
		{50, "mid"},
		{49.9, "low"},
		{0, "low"},
	}
	for _, tc := range cases {
		if got := accuracyTag(tc.pct); got != tc.want {
			t.Errorf("accuracyTag(%v) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}
