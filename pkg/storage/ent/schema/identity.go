package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Identity holds the schema definition for the Identity entity.
// An identity is one authenticated person: it owns OAuth credentials,
// active sessions, and the comments written while signed in.
type Identity struct {
	ent.Schema
}

// Fields of the Identity.
func (Identity) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty(),

		field.String("name").
			Optional(),

		// site_owner grants moderation-level authorization over all
		// comments, bypassing per-comment ownership
		field.Bool("site_owner").
			Default(false),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the Identity.
func (Identity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").
			Unique(),
	}
}

// Edges of the Identity.
func (Identity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.To("credentials", Credential.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.To("comments", Comment.Type),
	}
}
