package analyze

import (
	"strings"

	"github.com/notqc/helpmate/internal/performance"
	"github.com/notqc/helpmate/internal/profile"
)

// Ingest applies a parsed analysis to the running aggregates: counts
// that are determinable add to totals, each reviewed question with a
// topic becomes one ledger record, and weak topics merge into the set.
// Calling Ingest twice for the same result double-counts; the caller
// owns exactly-once.
func Ingest(res *Result, ledger *performance.Ledger, totals *profile.Totals, weakTopics map[string]bool) {
	if res == nil {
		return
	}

	if totals != nil {
		if res.Stats.TotalQuestions.Valid {
			totals.QuestionsSolved += res.Stats.TotalQuestions.Int()
		}
		if res.Stats.CorrectAnswers.Valid {
			totals.CorrectAnswers += res.Stats.CorrectAnswers.Int()
		}
	}

	if ledger != nil {
		for _, q := range res.Questions {
			if strings.TrimSpace(q.Topic) != "" {
				ledger.Record(q.Topic, q.Correct)
			}
		}
	}

	if weakTopics != nil {
		for _, t := range res.WeakTopics {
			weakTopics[t] = true
		}
	}
}
