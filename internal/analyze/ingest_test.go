package analyze

import (
	"testing"

	"github.com/notqc/helpmate/internal/performance"
	"github.com/notqc/helpmate/internal/profile"
)

func TestIngest(t *testing.T) {
	res := &Result{
		WeakTopics: []string{"Rotational Motion", "Electrochemistry"},
		Stats: Stats{
			TotalQuestions: NullableNumber{Value: 10, Valid: true},
			CorrectAnswers: NullableNumber{Value: 6, Valid: true},
		},
		Questions: []QuestionReview{
			{Question: "q1", Correct: true, Topic: "Optics"},
			{Question: "q2", Correct: false, Topic: "Optics"},
			{Question: "q3", Correct: false, Topic: ""}, // no topic, skipped
		},
	}

	ledger := performance.NewLedger()
	totals := &profile.Totals{}
	weak := map[string]bool{"Vectors": true}

	Ingest(res, ledger, totals, weak)

	if totals.QuestionsSolved != 10 || totals.CorrectAnswers != 6 {
		t.Errorf("totals = %+v", totals)
	}
	total, correct := ledger.Stats("Optics")
	if total != 2 || correct != 1 {
		t.Errorf("Optics = (%d, %d), want (2, 1)", total, correct)
	}
	if len(weak) != 3 || !weak["Rotational Motion"] {
		t.Errorf("weak topics = %v", weak)
	}
}

func TestIngest_NotDeterminableSkipsTotals(t *testing.T) {
	res := &Result{
		Stats: Stats{
			TotalQuestions: NullableNumber{},
			CorrectAnswers: NullableNumber{},
		},
	}

	totals := &profile.Totals{QuestionsSolved: 5, CorrectAnswers: 3}
	Ingest(res, performance.NewLedger(), totals, map[string]bool{})

	if totals.QuestionsSolved != 5 || totals.CorrectAnswers != 3 {
		t.Errorf("totals changed for not-determinable stats: %+v", totals)
	}
}

func TestIngest_NilResult(t *testing.T) {
	totals := &profile.Totals{}
	Ingest(nil, performance.NewLedger(), totals, map[string]bool{})
	if totals.QuestionsSolved != 0 {
		t.Errorf("totals = %+v", totals)
	}
}
