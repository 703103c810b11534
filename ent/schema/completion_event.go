package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records that a quiz session finished. One event per
// completed session; the streak calendar is derived from the day field.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the completed quiz session"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the quiz was generated for"),
		field.String("day").
			NotEmpty().
			Comment("Local calendar day of completion, ISO format (2006-01-02)"),
		field.Int("questions").
			Comment("Number of questions in the session"),
		field.Int("answered").
			Comment("Questions answered (not skipped)"),
		field.Int("correct").
			Comment("Questions answered correctly"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("day"),
	}
}
