package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryEntry holds the schema definition for the HistoryEntry entity.
// History is the weighted record of consumed articles, used only as the
// seed for similarity ranking.
type HistoryEntry struct {
	ent.Schema
}

// Fields of the HistoryEntry.
func (HistoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Int("article_id"),

		// weight is a decayable interest scalar, not a boolean
		field.Float("weight").
			Default(0),

		field.Time("added_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the HistoryEntry.
func (HistoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		// History is single-profile: one row per article, upserted.
		index.Fields("article_id").
			Unique(),
		index.Fields("added_at"),
	}
}

// Edges of the HistoryEntry.
func (HistoryEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("article", Article.Type).
			Ref("history").
			Unique().
			Required().
			Field("article_id"),
	}
}
