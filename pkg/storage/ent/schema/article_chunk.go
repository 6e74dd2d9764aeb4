package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ArticleChunk holds the schema definition for the ArticleChunk entity.
// A chunk is one fixed-dimension embedding over a segment of an article's
// content; the ANN index mirrors these rows.
type ArticleChunk struct {
	ent.Schema
}

// Fields of the ArticleChunk.
func (ArticleChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			NotEmpty(),

		field.Int("article_id"),

		field.JSON("embedding", []float32{}),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the ArticleChunk.
func (ArticleChunk) Indexes() []ent.Index {
	return []ent.Index{
		// article_id serves the history-join path in similarity ranking
		index.Fields("article_id"),
	}
}

// Edges of the ArticleChunk.
func (ArticleChunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("article", Article.Type).
			Ref("chunks").
			Unique().
			Required().
			Field("article_id"),
	}
}
