package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/notqc/helpmate/ent/completionevent"
)

func (r *eventRepo) AppendCompletionEvent(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetDay(data.Day).
		SetQuestions(data.Questions).
		SetAnswered(data.Answered).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) CompletionDays(ctx context.Context) ([]string, error) {
	days, err := r.client.CompletionEvent.Query().
		Unique(true).
		Select(completionevent.FieldDay).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion days: %w", err)
	}

	// ISO day strings sort lexicographically in date order.
	sort.Strings(days)
	return days, nil
}
