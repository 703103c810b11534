package app

import (
	"context"
	"fmt"

	"github.com/notqc/helpmate/internal/analyze"
	"github.com/notqc/helpmate/internal/store"
)

// IngestAnalysis runs the document analysis and folds the result into
// the session state: totals, per-topic ledger records and weak topics.
func (c *StudyContext) IngestAnalysis(ctx context.Context, documentName, documentText string) (*analyze.Result, error) {
	result, err := c.analyzer.Analyze(ctx, documentText)
	if err != nil {
		return nil, fmt.Errorf("analyze document: %w", err)
	}

	// Record order before Ingest fills the set.
	c.addWeakTopics(result.WeakTopics)
	analyze.Ingest(result, c.ledger, &c.totals, c.weakSet)

	if err := c.events.AppendAnalysisEvent(ctx, store.AnalysisEventData{
		DocumentName:   documentName,
		TotalQuestions: result.Stats.TotalQuestions.Int(),
		CorrectAnswers: result.Stats.CorrectAnswers.Int(),
		WeakTopics:     result.WeakTopics,
		Summary:        result.Summary,
	}); err != nil {
		return nil, fmt.Errorf("record analysis: %w", err)
	}
	return result, nil
}
