package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Credential holds the schema definition for the Credential entity.
// One row per external OAuth account linked to an identity.
type Credential struct {
	ent.Schema
}

// Fields of the Credential.
func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.Int("identity_id"),

		// provider is the OAuth issuer key (e.g. "github", "google")
		field.String("provider").
			NotEmpty(),

		// provider_account_id is the subject identifier at the provider
		field.String("provider_account_id").
			NotEmpty(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the Credential.
func (Credential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "provider_account_id").
			Unique(),

		index.Fields("identity_id"),
	}
}

// Edges of the Credential.
func (Credential) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("identity", Identity.Type).
			Ref("credentials").
			Unique().
			Required().
			Field("identity_id"),
	}
}
