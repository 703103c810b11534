// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/notqc/helpmate/ent/analysisevent"
)

// AnalysisEvent is the model entity for the AnalysisEvent schema.
type AnalysisEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Name of the analyzed document, when known
	DocumentName string `json:"document_name,omitempty"`
	// Questions found in the document (0 when not determinable)
	TotalQuestions int `json:"total_questions,omitempty"`
	// Correct answers found (0 when not determinable)
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// Weak topics reported by the analysis
	WeakTopics []string `json:"weak_topics,omitempty"`
	// Overall performance summary text
	Summary      string `json:"summary,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldWeakTopics:
			values[i] = new([]byte)
		case analysisevent.FieldID, analysisevent.FieldSequence, analysisevent.FieldTotalQuestions, analysisevent.FieldCorrectAnswers:
			values[i] = new(sql.NullInt64)
		case analysisevent.FieldDocumentName, analysisevent.FieldSummary:
			values[i] = new(sql.NullString)
		case analysisevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisEvent fields.
func (_m *AnalysisEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case analysisevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case analysisevent.FieldDocumentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_name", values[i])
			} else if value.Valid {
				_m.DocumentName = value.String
			}
		case analysisevent.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case analysisevent.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case analysisevent.FieldWeakTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakTopics); err != nil {
					return fmt.Errorf("unmarshal field weak_topics: %w", err)
				}
			}
		case analysisevent.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisEvent.
// Note that you need to call AnalysisEvent.Unwrap() before calling this method if this AnalysisEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisEvent) Update() *AnalysisEventUpdateOne {
	return NewAnalysisEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisEvent) Unwrap() *AnalysisEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("document_name=")
	builder.WriteString(_m.DocumentName)
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("weak_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakTopics))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisEvents is a parsable slice of AnalysisEvent.
type AnalysisEvents []*AnalysisEvent
