package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ArticleMetadata holds the schema definition for the ArticleMetadata entity.
// One row per (article, source) pair; cross-posted articles carry one row
// per source they appeared on.
type ArticleMetadata struct {
	ent.Schema
}

// Fields of the ArticleMetadata.
func (ArticleMetadata) Fields() []ent.Field {
	return []ent.Field{
		field.Int("article_id"),

		field.Int("source_id"),

		// external_score is the source's own score (HN points, etc.);
		// nil when the source doesn't score submissions
		field.Float("external_score").
			Optional().
			Nillable(),

		// metadata is the source-specific envelope (external id, comment
		// URL, tags, plus whatever else the source sends)
		field.JSON("metadata", map[string]any{}).
			Optional(),

		// submitted_at is the source's original submission time and the
		// basis for recency ranking; created_at is ingestion time
		field.Time("submitted_at").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ArticleMetadata.
func (ArticleMetadata) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("article_id", "source_id").
			Unique(),

		// submitted_at serves the newer_first ordering
		index.Fields("submitted_at"),
	}
}

// Edges of the ArticleMetadata.
func (ArticleMetadata) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("article", Article.Type).
			Ref("metadata").
			Unique().
			Required().
			Field("article_id"),

		edge.From("source", Source.Type).
			Ref("metadata").
			Unique().
			Required().
			Field("source_id"),
	}
}
