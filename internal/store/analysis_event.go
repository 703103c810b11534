package store

import (
	"context"
	"fmt"

	"github.com/notqc/helpmate/ent"
	"github.com/notqc/helpmate/ent/analysisevent"
)

func (r *eventRepo) AppendAnalysisEvent(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnalysisEvent.Create().
		SetSequence(seqNum).
		SetDocumentName(data.DocumentName).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectAnswers(data.CorrectAnswers).
		SetSummary(data.Summary)

	if len(data.WeakTopics) > 0 {
		builder = builder.SetWeakTopics(data.WeakTopics)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestAnalysis(ctx context.Context) (*AnalysisRecord, error) {
	e, err := r.client.AnalysisEvent.Query().
		Order(ent.Desc(analysisevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest analysis: %w", err)
	}

	return &AnalysisRecord{
		DocumentName:   e.DocumentName,
		TotalQuestions: e.TotalQuestions,
		CorrectAnswers: e.CorrectAnswers,
		WeakTopics:     e.WeakTopics,
		Summary:        e.Summary,
		Sequence:       e.Sequence,
		Timestamp:      e.Timestamp,
	}, nil
}
