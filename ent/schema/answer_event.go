package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded question inside a quiz session:
// a submit (with the chosen option) or a skip.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the quiz session"),
		field.String("topic").
			NotEmpty().
			Comment("Free-text topic label of the quiz"),
		field.Int("question_index").
			Comment("Zero-based position of the question in the quiz"),
		field.String("question_text").
			Comment("Prompt of the question as shown to the student"),
		field.Bool("skipped").
			Default(false).
			Comment("True when the student skipped instead of answering"),
		field.Int("selected_index").
			Default(-1).
			Comment("Chosen option (0-3), -1 for a skip"),
		field.Int("correct_index").
			Comment("The correct option for the question"),
		field.Bool("correct").
			Default(false).
			Comment("Whether the chosen option was correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
	}
}
