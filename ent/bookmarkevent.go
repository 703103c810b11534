// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/notqc/helpmate/ent/bookmarkevent"
)

// BookmarkEvent is the model entity for the BookmarkEvent schema.
type BookmarkEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// add or remove
	Action string `json:"action,omitempty"`
	// Quiz topic the question came from
	Topic string `json:"topic,omitempty"`
	// Original position of the question in its quiz
	QuestionIndex int `json:"question_index,omitempty"`
	// Prompt of the bookmarked question
	QuestionText string `json:"question_text,omitempty"`
	// The four answer options at bookmark time
	Choices []string `json:"choices,omitempty"`
	// Correct option at bookmark time
	CorrectIndex int `json:"correct_index,omitempty"`
	// Step-by-step explanation snapshot
	ExplanationSteps string `json:"explanation_steps,omitempty"`
	// Video reference snapshot, may be empty
	VideoURL     string `json:"video_url,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BookmarkEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bookmarkevent.FieldChoices:
			values[i] = new([]byte)
		case bookmarkevent.FieldID, bookmarkevent.FieldSequence, bookmarkevent.FieldQuestionIndex, bookmarkevent.FieldCorrectIndex:
			values[i] = new(sql.NullInt64)
		case bookmarkevent.FieldAction, bookmarkevent.FieldTopic, bookmarkevent.FieldQuestionText, bookmarkevent.FieldExplanationSteps, bookmarkevent.FieldVideoURL:
			values[i] = new(sql.NullString)
		case bookmarkevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BookmarkEvent fields.
func (_m *BookmarkEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bookmarkevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case bookmarkevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case bookmarkevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case bookmarkevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case bookmarkevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case bookmarkevent.FieldQuestionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_index", values[i])
			} else if value.Valid {
				_m.QuestionIndex = int(value.Int64)
			}
		case bookmarkevent.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case bookmarkevent.FieldChoices:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field choices", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Choices); err != nil {
					return fmt.Errorf("unmarshal field choices: %w", err)
				}
			}
		case bookmarkevent.FieldCorrectIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_index", values[i])
			} else if value.Valid {
				_m.CorrectIndex = int(value.Int64)
			}
		case bookmarkevent.FieldExplanationSteps:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation_steps", values[i])
			} else if value.Valid {
				_m.ExplanationSteps = value.String
			}
		case bookmarkevent.FieldVideoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_url", values[i])
			} else if value.Valid {
				_m.VideoURL = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BookmarkEvent.
// This includes values selected through modifiers, order, etc.
func (_m *BookmarkEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BookmarkEvent.
// Note that you need to call BookmarkEvent.Unwrap() before calling this method if this BookmarkEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BookmarkEvent) Update() *BookmarkEventUpdateOne {
	return NewBookmarkEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BookmarkEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BookmarkEvent) Unwrap() *BookmarkEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BookmarkEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BookmarkEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BookmarkEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("question_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionIndex))
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("choices=")
	builder.WriteString(fmt.Sprintf("%v", _m.Choices))
	builder.WriteString(", ")
	builder.WriteString("correct_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectIndex))
	builder.WriteString(", ")
	builder.WriteString("explanation_steps=")
	builder.WriteString(_m.ExplanationSteps)
	builder.WriteString(", ")
	builder.WriteString("video_url=")
	builder.WriteString(_m.VideoURL)
	builder.WriteByte(')')
	return builder.String()
}

// BookmarkEvents is a parsable slice of BookmarkEvent.
type BookmarkEvents []*BookmarkEvent
