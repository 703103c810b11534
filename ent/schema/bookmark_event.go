package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BookmarkEvent records a bookmark being set or cleared for a question.
// The current bookmark set is the fold of add/remove events.
type BookmarkEvent struct {
	ent.Schema
}

func (BookmarkEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BookmarkEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").
			NotEmpty().
			Comment("add or remove"),
		field.String("topic").
			NotEmpty().
			Comment("Quiz topic the question came from"),
		field.Int("question_index").
			Default(0).
			Comment("Original position of the question in its quiz"),
		field.Text("question_text").
			NotEmpty().
			Comment("Prompt of the bookmarked question"),
		field.JSON("choices", []string{}).
			Optional().
			Comment("The four answer options at bookmark time"),
		field.Int("correct_index").
			Default(0).
			Comment("Correct option at bookmark time"),
		field.Text("explanation_steps").
			Default("").
			Comment("Step-by-step explanation snapshot"),
		field.String("video_url").
			Default("").
			Comment("Video reference snapshot, may be empty"),
	}
}

func (BookmarkEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("action"),
	}
}
