package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AnalysisEvent records one ingested test-result document analysis.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_name").
			Default("").
			Comment("Name of the analyzed document, when known"),
		field.Int("total_questions").
			Default(0).
			Comment("Questions found in the document (0 when not determinable)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct answers found (0 when not determinable)"),
		field.JSON("weak_topics", []string{}).
			Optional().
			Comment("Weak topics reported by the analysis"),
		field.Text("summary").
			Default("").
			Comment("Overall performance summary text"),
	}
}
