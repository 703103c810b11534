// Code generated by ent, DO NOT EDIT.

package bookmarkevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/notqc/helpmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldAction, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldTopic, v))
}

// QuestionIndex applies equality check predicate on the "question_index" field. It's identical to QuestionIndexEQ.
func QuestionIndex(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldQuestionIndex, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldQuestionText, v))
}

// CorrectIndex applies equality check predicate on the "correct_index" field. It's identical to CorrectIndexEQ.
func CorrectIndex(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldCorrectIndex, v))
}

// ExplanationSteps applies equality check predicate on the "explanation_steps" field. It's identical to ExplanationStepsEQ.
func ExplanationSteps(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldExplanationSteps, v))
}

// VideoURL applies equality check predicate on the "video_url" field. It's identical to VideoURLEQ.
func VideoURL(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldVideoURL, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldContainsFold(FieldAction, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldContainsFold(FieldTopic, v))
}

// QuestionIndexEQ applies the EQ predicate on the "question_index" field.
func QuestionIndexEQ(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldQuestionIndex, v))
}

// QuestionIndexNEQ applies the NEQ predicate on the "question_index" field.
func QuestionIndexNEQ(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNEQ(FieldQuestionIndex, v))
}

// QuestionIndexIn applies the In predicate on the "question_index" field.
func QuestionIndexIn(vs ...int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldIn(FieldQuestionIndex, vs...))
}

// QuestionIndexNotIn applies the NotIn predicate on the "question_index" field.
func QuestionIndexNotIn(vs ...int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNotIn(FieldQuestionIndex, vs...))
}

// QuestionIndexGT applies the GT predicate on the "question_index" field.
func QuestionIndexGT(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGT(FieldQuestionIndex, v))
}

// QuestionIndexGTE applies the GTE predicate on the "question_index" field.
func QuestionIndexGTE(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGTE(FieldQuestionIndex, v))
}

// QuestionIndexLT applies the LT predicate on the "question_index" field.
func QuestionIndexLT(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLT(FieldQuestionIndex, v))
}

// QuestionIndexLTE applies the LTE predicate on the "question_index" field.
func QuestionIndexLTE(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLTE(FieldQuestionIndex, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldContainsFold(FieldQuestionText, v))
}

// ChoicesIsNil applies the IsNil predicate on the "choices" field.
func ChoicesIsNil() predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldIsNull(FieldChoices))
}

// ChoicesNotNil applies the NotNil predicate on the "choices" field.
func ChoicesNotNil() predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNotNull(FieldChoices))
}

// CorrectIndexEQ applies the EQ predicate on the "correct_index" field.
func CorrectIndexEQ(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldCorrectIndex, v))
}

// CorrectIndexNEQ applies the NEQ predicate on the "correct_index" field.
func CorrectIndexNEQ(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNEQ(FieldCorrectIndex, v))
}

// CorrectIndexIn applies the In predicate on the "correct_index" field.
func CorrectIndexIn(vs ...int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldIn(FieldCorrectIndex, vs...))
}

// CorrectIndexNotIn applies the NotIn predicate on the "correct_index" field.
func CorrectIndexNotIn(vs ...int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNotIn(FieldCorrectIndex, vs...))
}

// CorrectIndexGT applies the GT predicate on the "correct_index" field.
func CorrectIndexGT(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGT(FieldCorrectIndex, v))
}

// CorrectIndexGTE applies the GTE predicate on the "correct_index" field.
func CorrectIndexGTE(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGTE(FieldCorrectIndex, v))
}

// CorrectIndexLT applies the LT predicate on the "correct_index" field.
func CorrectIndexLT(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLT(FieldCorrectIndex, v))
}

// CorrectIndexLTE applies the LTE predicate on the "correct_index" field.
func CorrectIndexLTE(v int) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLTE(FieldCorrectIndex, v))
}

// ExplanationStepsEQ applies the EQ predicate on the "explanation_steps" field.
func ExplanationStepsEQ(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldExplanationSteps, v))
}

// ExplanationStepsNEQ applies the NEQ predicate on the "explanation_steps" field.
func ExplanationStepsNEQ(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNEQ(FieldExplanationSteps, v))
}

// ExplanationStepsIn applies the In predicate on the "explanation_steps" field.
func ExplanationStepsIn(vs ...string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldIn(FieldExplanationSteps, vs...))
}

// ExplanationStepsNotIn applies the NotIn predicate on the "explanation_steps" field.
func ExplanationStepsNotIn(vs ...string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNotIn(FieldExplanationSteps, vs...))
}

// ExplanationStepsGT applies the GT predicate on the "explanation_steps" field.
func ExplanationStepsGT(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGT(FieldExplanationSteps, v))
}

// ExplanationStepsGTE applies the GTE predicate on the "explanation_steps" field.
func ExplanationStepsGTE(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGTE(FieldExplanationSteps, v))
}

// ExplanationStepsLT applies the LT predicate on the "explanation_steps" field.
func ExplanationStepsLT(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLT(FieldExplanationSteps, v))
}

// ExplanationStepsLTE applies the LTE predicate on the "explanation_steps" field.
func ExplanationStepsLTE(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLTE(FieldExplanationSteps, v))
}

// ExplanationStepsContains applies the Contains predicate on the "explanation_steps" field.
func ExplanationStepsContains(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldContains(FieldExplanationSteps, v))
}

// ExplanationStepsHasPrefix applies the HasPrefix predicate on the "explanation_steps" field.
func ExplanationStepsHasPrefix(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldHasPrefix(FieldExplanationSteps, v))
}

// ExplanationStepsHasSuffix applies the HasSuffix predicate on the "explanation_steps" field.
func ExplanationStepsHasSuffix(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldHasSuffix(FieldExplanationSteps, v))
}

// ExplanationStepsEqualFold applies the EqualFold predicate on the "explanation_steps" field.
func ExplanationStepsEqualFold(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEqualFold(FieldExplanationSteps, v))
}

// ExplanationStepsContainsFold applies the ContainsFold predicate on the "explanation_steps" field.
func ExplanationStepsContainsFold(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldContainsFold(FieldExplanationSteps, v))
}

// VideoURLEQ applies the EQ predicate on the "video_url" field.
func VideoURLEQ(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEQ(FieldVideoURL, v))
}

// VideoURLNEQ applies the NEQ predicate on the "video_url" field.
func VideoURLNEQ(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNEQ(FieldVideoURL, v))
}

// VideoURLIn applies the In predicate on the "video_url" field.
func VideoURLIn(vs ...string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldIn(FieldVideoURL, vs...))
}

// VideoURLNotIn applies the NotIn predicate on the "video_url" field.
func VideoURLNotIn(vs ...string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldNotIn(FieldVideoURL, vs...))
}

// VideoURLGT applies the GT predicate on the "video_url" field.
func VideoURLGT(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGT(FieldVideoURL, v))
}

// VideoURLGTE applies the GTE predicate on the "video_url" field.
func VideoURLGTE(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldGTE(FieldVideoURL, v))
}

// VideoURLLT applies the LT predicate on the "video_url" field.
func VideoURLLT(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLT(FieldVideoURL, v))
}

// VideoURLLTE applies the LTE predicate on the "video_url" field.
func VideoURLLTE(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldLTE(FieldVideoURL, v))
}

// VideoURLContains applies the Contains predicate on the "video_url" field.
func VideoURLContains(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldContains(FieldVideoURL, v))
}

// VideoURLHasPrefix applies the HasPrefix predicate on the "video_url" field.
func VideoURLHasPrefix(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldHasPrefix(FieldVideoURL, v))
}

// VideoURLHasSuffix applies the HasSuffix predicate on the "video_url" field.
func VideoURLHasSuffix(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldHasSuffix(FieldVideoURL, v))
}

// VideoURLEqualFold applies the EqualFold predicate on the "video_url" field.
func VideoURLEqualFold(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldEqualFold(FieldVideoURL, v))
}

// VideoURLContainsFold applies the ContainsFold predicate on the "video_url" field.
func VideoURLContainsFold(v string) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.FieldContainsFold(FieldVideoURL, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BookmarkEvent) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BookmarkEvent) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BookmarkEvent) predicate.BookmarkEvent {
	return predicate.BookmarkEvent(sql.NotPredicates(p))
}
