package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Source holds the schema definition for the Source entity.
// Sources are the static registry of external aggregators articles
// arrive from (e.g. "hacker-news", "lobsters").
type Source struct {
	ent.Schema
}

// Fields of the Source.
func (Source) Fields() []ent.Field {
	return []ent.Field{
		// key is the stable machine identifier used in feed filters
		field.String("key").
			Unique().
			Immutable().
			NotEmpty(),

		field.String("name").
			NotEmpty(),

		field.String("base_url").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the Source.
func (Source) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").
			Unique(),
	}
}

// Edges of the Source.
func (Source) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("metadata", ArticleMetadata.Type),
	}
}
