package store

import (
	"context"
	"fmt"

	"github.com/notqc/helpmate/ent"
	"github.com/notqc/helpmate/ent/answerevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionText(data.QuestionText).
		SetSkipped(data.Skipped).
		SetSelectedIndex(data.SelectedIndex).
		SetCorrectIndex(data.CorrectIndex).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicStats(ctx context.Context) (map[string]TopicTotals, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.Skipped(false)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	stats := make(map[string]TopicTotals)
	for _, e := range events {
		t := stats[e.Topic]
		t.Attempted++
		if e.Correct {
			t.Correct++
		}
		stats[e.Topic] = t
	}
	return stats, nil
}

func (r *eventRepo) OverallTotals(ctx context.Context) (OverallTotals, error) {
	var totals OverallTotals

	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return totals, fmt.Errorf("query answer events: %w", err)
	}
	for _, e := range events {
		if e.Skipped {
			totals.Skipped++
			continue
		}
		totals.Answered++
		if e.Correct {
			totals.Correct++
		}
	}

	// One completion event per session.
	sessions, err := r.client.CompletionEvent.Query().Count(ctx)
	if err != nil {
		return totals, fmt.Errorf("count completed sessions: %w", err)
	}
	totals.Sessions = sessions

	return totals, nil
}
