package store

import (
	"context"
	"fmt"

	"github.com/notqc/helpmate/ent"
	"github.com/notqc/helpmate/ent/bookmarkevent"
)

func (r *eventRepo) AppendBookmarkEvent(ctx context.Context, data BookmarkEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.BookmarkEvent.Create().
		SetSequence(seqNum).
		SetAction(data.Action).
		SetTopic(data.Topic).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionText(data.QuestionText).
		SetCorrectIndex(data.CorrectIndex).
		SetExplanationSteps(data.ExplanationSteps).
		SetVideoURL(data.VideoURL)

	if len(data.Choices) > 0 {
		builder = builder.SetChoices(data.Choices)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save bookmark event: %w", err)
	}
	return nil
}

// Bookmarks folds the add/remove history in sequence order. A remove
// matches on question text plus topic, mirroring how bookmarks are
// identified in the session view.
func (r *eventRepo) Bookmarks(ctx context.Context) ([]BookmarkRecord, error) {
	events, err := r.client.BookmarkEvent.Query().
		Order(ent.Asc(bookmarkevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query bookmark events: %w", err)
	}

	type key struct {
		text  string
		topic string
	}

	current := make(map[key]BookmarkRecord)
	var order []key
	for _, e := range events {
		k := key{text: e.QuestionText, topic: e.Topic}
		switch e.Action {
		case "add":
			if _, exists := current[k]; !exists {
				order = append(order, k)
			}
			current[k] = BookmarkRecord{
				Topic:            e.Topic,
				QuestionIndex:    e.QuestionIndex,
				QuestionText:     e.QuestionText,
				Choices:          e.Choices,
				CorrectIndex:     e.CorrectIndex,
				ExplanationSteps: e.ExplanationSteps,
				VideoURL:         e.VideoURL,
				Sequence:         e.Sequence,
				Timestamp:        e.Timestamp,
			}
		case "remove":
			delete(current, k)
		}
	}

	var records []BookmarkRecord
	seen := make(map[key]bool)
	for _, k := range order {
		if rec, ok := current[k]; ok && !seen[k] {
			records = append(records, rec)
			seen[k] = true
		}
	}
	return records, nil
}
