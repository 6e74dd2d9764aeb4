package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Article holds the schema definition for the Article entity.
// An article is created on first ingestion of a URL and never duplicated;
// per-source detail lives on ArticleMetadata rows.
type Article struct {
	ent.Schema
}

// Fields of the Article.
func (Article) Fields() []ent.Field {
	return []ent.Field{
		// url is the canonical deduplication key across all sources
		field.String("url").
			Unique().
			NotEmpty(),

		field.String("title").
			NotEmpty(),

		// content_text is the extracted article body used for chunking;
		// nil when extraction hasn't run or failed
		field.String("content_text").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the Article.
func (Article) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("url").
			Unique(),

		// created_at drives the notifier watermark query
		index.Fields("created_at"),
	}
}

// Edges of the Article.
func (Article) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("metadata", ArticleMetadata.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.To("chunks", ArticleChunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.To("history", HistoryEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
