// Code generated by ent, DO NOT EDIT.

package completionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/notqc/helpmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSessionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTopic, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldDay, v))
}

// Questions applies equality check predicate on the "questions" field. It's identical to QuestionsEQ.
func Questions(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldQuestions, v))
}

// Answered applies equality check predicate on the "answered" field. It's identical to AnsweredEQ.
func Answered(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldAnswered, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldTopic, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldDay, v))
}

// QuestionsEQ applies the EQ predicate on the "questions" field.
func QuestionsEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldQuestions, v))
}

// QuestionsNEQ applies the NEQ predicate on the "questions" field.
func QuestionsNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldQuestions, v))
}

// QuestionsIn applies the In predicate on the "questions" field.
func QuestionsIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldQuestions, vs...))
}

// QuestionsNotIn applies the NotIn predicate on the "questions" field.
func QuestionsNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldQuestions, vs...))
}

// QuestionsGT applies the GT predicate on the "questions" field.
func QuestionsGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldQuestions, v))
}

// QuestionsGTE applies the GTE predicate on the "questions" field.
func QuestionsGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldQuestions, v))
}

// QuestionsLT applies the LT predicate on the "questions" field.
func QuestionsLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldQuestions, v))
}

// QuestionsLTE applies the LTE predicate on the "questions" field.
func QuestionsLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldQuestions, v))
}

// AnsweredEQ applies the EQ predicate on the "answered" field.
func AnsweredEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldAnswered, v))
}

// AnsweredNEQ applies the NEQ predicate on the "answered" field.
func AnsweredNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldAnswered, v))
}

// AnsweredIn applies the In predicate on the "answered" field.
func AnsweredIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldAnswered, vs...))
}

// AnsweredNotIn applies the NotIn predicate on the "answered" field.
func AnsweredNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldAnswered, vs...))
}

// AnsweredGT applies the GT predicate on the "answered" field.
func AnsweredGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldAnswered, v))
}

// AnsweredGTE applies the GTE predicate on the "answered" field.
func AnsweredGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldAnswered, v))
}

// AnsweredLT applies the LT predicate on the "answered" field.
func AnsweredLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldAnswered, v))
}

// AnsweredLTE applies the LTE predicate on the "answered" field.
func AnsweredLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldAnswered, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.NotPredicates(p))
}
