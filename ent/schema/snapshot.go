package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot stores a point-in-time capture of the student's aggregate state
// (totals, per-topic stats, streak, bookmarks, weak topics) so a new process
// can rehydrate without replaying the whole event history.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Last event sequence covered by this snapshot"),
		field.Time("timestamp").
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized aggregate state"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
