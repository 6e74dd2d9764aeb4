// Code generated by ent, DO NOT EDIT.

package articlemetadata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/perusehq/peruse/pkg/storage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldLTE(FieldID, id))
}

// ArticleID applies equality check predicate on the "article_id" field. It's identical to ArticleIDEQ.
func ArticleID(v int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldArticleID, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldSourceID, v))
}

// ExternalScore applies equality check predicate on the "external_score" field. It's identical to ExternalScoreEQ.
func ExternalScore(v float64) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldExternalScore, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldSubmittedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldUpdatedAt, v))
}

// ArticleIDEQ applies the EQ predicate on the "article_id" field.
func ArticleIDEQ(v int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldArticleID, v))
}

// ArticleIDNEQ applies the NEQ predicate on the "article_id" field.
func ArticleIDNEQ(v int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNEQ(FieldArticleID, v))
}

// ArticleIDIn applies the In predicate on the "article_id" field.
func ArticleIDIn(vs ...int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldIn(FieldArticleID, vs...))
}

// ArticleIDNotIn applies the NotIn predicate on the "article_id" field.
func ArticleIDNotIn(vs ...int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNotIn(FieldArticleID, vs...))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...int) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNotIn(FieldSourceID, vs...))
}

// ExternalScoreEQ applies the EQ predicate on the "external_score" field.
func ExternalScoreEQ(v float64) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldExternalScore, v))
}

// ExternalScoreNEQ applies the NEQ predicate on the "external_score" field.
func ExternalScoreNEQ(v float64) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNEQ(FieldExternalScore, v))
}

// ExternalScoreIn applies the In predicate on the "external_score" field.
func ExternalScoreIn(vs ...float64) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldIn(FieldExternalScore, vs...))
}

// ExternalScoreNotIn applies the NotIn predicate on the "external_score" field.
func ExternalScoreNotIn(vs ...float64) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNotIn(FieldExternalScore, vs...))
}

// ExternalScoreGT applies the GT predicate on the "external_score" field.
func ExternalScoreGT(v float64) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldGT(FieldExternalScore, v))
}

// ExternalScoreGTE applies the GTE predicate on the "external_score" field.
func ExternalScoreGTE(v float64) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldGTE(FieldExternalScore, v))
}

// ExternalScoreLT applies the LT predicate on the "external_score" field.
func ExternalScoreLT(v float64) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldLT(FieldExternalScore, v))
}

// ExternalScoreLTE applies the LTE predicate on the "external_score" field.
func ExternalScoreLTE(v float64) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldLTE(FieldExternalScore, v))
}

// ExternalScoreIsNil applies the IsNil predicate on the "external_score" field.
func ExternalScoreIsNil() predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldIsNull(FieldExternalScore))
}

// ExternalScoreNotNil applies the NotNil predicate on the "external_score" field.
func ExternalScoreNotNil() predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNotNull(FieldExternalScore))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNotNull(FieldMetadata))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldLTE(FieldSubmittedAt, v))
}

// SubmittedAtIsNil applies the IsNil predicate on the "submitted_at" field.
func SubmittedAtIsNil() predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldIsNull(FieldSubmittedAt))
}

// SubmittedAtNotNil applies the NotNil predicate on the "submitted_at" field.
func SubmittedAtNotNil() predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNotNull(FieldSubmittedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasArticle applies the HasEdge predicate on the "article" edge.
func HasArticle() predicate.ArticleMetadata {
	return predicate.ArticleMetadata(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ArticleTable, ArticleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArticleWith applies the HasEdge predicate on the "article" edge with a given conditions (other predicates).
func HasArticleWith(preds ...predicate.Article) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(func(s *sql.Selector) {
		step := newArticleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSource applies the HasEdge predicate on the "source" edge.
func HasSource() predicate.ArticleMetadata {
	return predicate.ArticleMetadata(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceTable, SourceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceWith applies the HasEdge predicate on the "source" edge with a given conditions (other predicates).
func HasSourceWith(preds ...predicate.Source) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(func(s *sql.Selector) {
		step := newSourceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArticleMetadata) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArticleMetadata) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArticleMetadata) predicate.ArticleMetadata {
	return predicate.ArticleMetadata(sql.NotPredicates(p))
}
