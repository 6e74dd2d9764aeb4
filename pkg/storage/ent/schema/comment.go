package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Comment holds the schema definition for the Comment entity.
// Comments form an adjacency-list tree under a post: each row points at
// its parent, and deleting a parent cascades to all descendants.
type Comment struct {
	ent.Schema
}

// Fields of the Comment.
func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("post_id"),

		// parent_id is nil for root comments
		field.Int("parent_id").
			Optional().
			Nillable(),

		// identity_id binds the comment to its owner; nil for anonymous
		// comments, which carry author_name/author_email instead
		field.Int("identity_id").
			Optional().
			Nillable(),

		field.String("author_name").
			Optional().
			Nillable(),

		field.String("author_email").
			Optional().
			Nillable(),

		field.String("author_ip").
			Optional(),

		field.String("content").
			NotEmpty(),

		field.Int("upvote").
			Default(0),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the Comment.
func (Comment) Indexes() []ent.Index {
	return []ent.Index{
		// post_id + created_at serves thread retrieval ordering
		index.Fields("post_id", "created_at"),

		index.Fields("parent_id"),

		index.Fields("identity_id"),
	}
}

// Edges of the Comment.
func (Comment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("post", Post.Type).
			Ref("comments").
			Unique().
			Required().
			Field("post_id"),

		// Parent edge: each comment has at most one parent; deleting the
		// parent removes the whole subtree
		edge.To("parent", Comment.Type).
			Field("parent_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),

		// Children edge: each comment can have multiple replies
		edge.From("children", Comment.Type).
			Ref("parent"),

		edge.From("identity", Identity.Type).
			Ref("comments").
			Unique().
			Field("identity_id"),
	}
}
