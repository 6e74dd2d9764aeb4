// Code generated by ent, DO NOT EDIT.

package comment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/perusehq/peruse/pkg/storage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldID, id))
}

// PostID applies equality check predicate on the "post_id" field. It's identical to PostIDEQ.
func PostID(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldPostID, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldParentID, v))
}

// IdentityID applies equality check predicate on the "identity_id" field. It's identical to IdentityIDEQ.
func IdentityID(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldIdentityID, v))
}

// AuthorName applies equality check predicate on the "author_name" field. It's identical to AuthorNameEQ.
func AuthorName(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAuthorName, v))
}

// AuthorEmail applies equality check predicate on the "author_email" field. It's identical to AuthorEmailEQ.
func AuthorEmail(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAuthorEmail, v))
}

// AuthorIP applies equality check predicate on the "author_ip" field. It's identical to AuthorIPEQ.
func AuthorIP(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAuthorIP, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldContent, v))
}

// Upvote applies equality check predicate on the "upvote" field. It's identical to UpvoteEQ.
func Upvote(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldUpvote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldCreatedAt, v))
}

// PostIDEQ applies the EQ predicate on the "post_id" field.
func PostIDEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldPostID, v))
}

// PostIDNEQ applies the NEQ predicate on the "post_id" field.
func PostIDNEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldPostID, v))
}

// PostIDIn applies the In predicate on the "post_id" field.
func PostIDIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldPostID, vs...))
}

// PostIDNotIn applies the NotIn predicate on the "post_id" field.
func PostIDNotIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldPostID, vs...))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Comment {
	return predicate.Comment(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Comment {
	return predicate.Comment(sql.FieldNotNull(FieldParentID))
}

// IdentityIDEQ applies the EQ predicate on the "identity_id" field.
func IdentityIDEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldIdentityID, v))
}

// IdentityIDNEQ applies the NEQ predicate on the "identity_id" field.
func IdentityIDNEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldIdentityID, v))
}

// IdentityIDIn applies the In predicate on the "identity_id" field.
func IdentityIDIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldIdentityID, vs...))
}

// IdentityIDNotIn applies the NotIn predicate on the "identity_id" field.
func IdentityIDNotIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldIdentityID, vs...))
}

// IdentityIDIsNil applies the IsNil predicate on the "identity_id" field.
func IdentityIDIsNil() predicate.Comment {
	return predicate.Comment(sql.FieldIsNull(FieldIdentityID))
}

// IdentityIDNotNil applies the NotNil predicate on the "identity_id" field.
func IdentityIDNotNil() predicate.Comment {
	return predicate.Comment(sql.FieldNotNull(FieldIdentityID))
}

// AuthorNameEQ applies the EQ predicate on the "author_name" field.
func AuthorNameEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAuthorName, v))
}

// AuthorNameNEQ applies the NEQ predicate on the "author_name" field.
func AuthorNameNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldAuthorName, v))
}

// AuthorNameIn applies the In predicate on the "author_name" field.
func AuthorNameIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldAuthorName, vs...))
}

// AuthorNameNotIn applies the NotIn predicate on the "author_name" field.
func AuthorNameNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldAuthorName, vs...))
}

// AuthorNameGT applies the GT predicate on the "author_name" field.
func AuthorNameGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldAuthorName, v))
}

// AuthorNameGTE applies the GTE predicate on the "author_name" field.
func AuthorNameGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldAuthorName, v))
}

// AuthorNameLT applies the LT predicate on the "author_name" field.
func AuthorNameLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldAuthorName, v))
}

// AuthorNameLTE applies the LTE predicate on the "author_name" field.
func AuthorNameLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldAuthorName, v))
}

// AuthorNameContains applies the Contains predicate on the "author_name" field.
func AuthorNameContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldAuthorName, v))
}

// AuthorNameHasPrefix applies the HasPrefix predicate on the "author_name" field.
func AuthorNameHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldAuthorName, v))
}

// AuthorNameHasSuffix applies the HasSuffix predicate on the "author_name" field.
func AuthorNameHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldAuthorName, v))
}

// AuthorNameIsNil applies the IsNil predicate on the "author_name" field.
func AuthorNameIsNil() predicate.Comment {
	return predicate.Comment(sql.FieldIsNull(FieldAuthorName))
}

// AuthorNameNotNil applies the NotNil predicate on the "author_name" field.
func AuthorNameNotNil() predicate.Comment {
	return predicate.Comment(sql.FieldNotNull(FieldAuthorName))
}

// AuthorNameEqualFold applies the EqualFold predicate on the "author_name" field.
func AuthorNameEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldAuthorName, v))
}

// AuthorNameContainsFold applies the ContainsFold predicate on the "author_name" field.
func AuthorNameContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldAuthorName, v))
}

// AuthorEmailEQ applies the EQ predicate on the "author_email" field.
func AuthorEmailEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAuthorEmail, v))
}

// AuthorEmailNEQ applies the NEQ predicate on the "author_email" field.
func AuthorEmailNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldAuthorEmail, v))
}

// AuthorEmailIn applies the In predicate on the "author_email" field.
func AuthorEmailIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldAuthorEmail, vs...))
}

// AuthorEmailNotIn applies the NotIn predicate on the "author_email" field.
func AuthorEmailNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldAuthorEmail, vs...))
}

// AuthorEmailGT applies the GT predicate on the "author_email" field.
func AuthorEmailGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldAuthorEmail, v))
}

// AuthorEmailGTE applies the GTE predicate on the "author_email" field.
func AuthorEmailGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldAuthorEmail, v))
}

// AuthorEmailLT applies the LT predicate on the "author_email" field.
func AuthorEmailLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldAuthorEmail, v))
}

// AuthorEmailLTE applies the LTE predicate on the "author_email" field.
func AuthorEmailLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldAuthorEmail, v))
}

// AuthorEmailContains applies the Contains predicate on the "author_email" field.
func AuthorEmailContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldAuthorEmail, v))
}

// AuthorEmailHasPrefix applies the HasPrefix predicate on the "author_email" field.
func AuthorEmailHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldAuthorEmail, v))
}

// AuthorEmailHasSuffix applies the HasSuffix predicate on the "author_email" field.
func AuthorEmailHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldAuthorEmail, v))
}

// AuthorEmailIsNil applies the IsNil predicate on the "author_email" field.
func AuthorEmailIsNil() predicate.Comment {
	return predicate.Comment(sql.FieldIsNull(FieldAuthorEmail))
}

// AuthorEmailNotNil applies the NotNil predicate on the "author_email" field.
func AuthorEmailNotNil() predicate.Comment {
	return predicate.Comment(sql.FieldNotNull(FieldAuthorEmail))
}

// AuthorEmailEqualFold applies the EqualFold predicate on the "author_email" field.
func AuthorEmailEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldAuthorEmail, v))
}

// AuthorEmailContainsFold applies the ContainsFold predicate on the "author_email" field.
func AuthorEmailContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldAuthorEmail, v))
}

// AuthorIPEQ applies the EQ predicate on the "author_ip" field.
func AuthorIPEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAuthorIP, v))
}

// AuthorIPNEQ applies the NEQ predicate on the "author_ip" field.
func AuthorIPNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldAuthorIP, v))
}

// AuthorIPIn applies the In predicate on the "author_ip" field.
func AuthorIPIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldAuthorIP, vs...))
}

// AuthorIPNotIn applies the NotIn predicate on the "author_ip" field.
func AuthorIPNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldAuthorIP, vs...))
}

// AuthorIPGT applies the GT predicate on the "author_ip" field.
func AuthorIPGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldAuthorIP, v))
}

// AuthorIPGTE applies the GTE predicate on the "author_ip" field.
func AuthorIPGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldAuthorIP, v))
}

// AuthorIPLT applies the LT predicate on the "author_ip" field.
func AuthorIPLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldAuthorIP, v))
}

// AuthorIPLTE applies the LTE predicate on the "author_ip" field.
func AuthorIPLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldAuthorIP, v))
}

// AuthorIPContains applies the Contains predicate on the "author_ip" field.
func AuthorIPContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldAuthorIP, v))
}

// AuthorIPHasPrefix applies the HasPrefix predicate on the "author_ip" field.
func AuthorIPHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldAuthorIP, v))
}

// AuthorIPHasSuffix applies the HasSuffix predicate on the "author_ip" field.
func AuthorIPHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldAuthorIP, v))
}

// AuthorIPIsNil applies the IsNil predicate on the "author_ip" field.
func AuthorIPIsNil() predicate.Comment {
	return predicate.Comment(sql.FieldIsNull(FieldAuthorIP))
}

// AuthorIPNotNil applies the NotNil predicate on the "author_ip" field.
func AuthorIPNotNil() predicate.Comment {
	return predicate.Comment(sql.FieldNotNull(FieldAuthorIP))
}

// AuthorIPEqualFold applies the EqualFold predicate on the "author_ip" field.
func AuthorIPEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldAuthorIP, v))
}

// AuthorIPContainsFold applies the ContainsFold predicate on the "author_ip" field.
func AuthorIPContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldAuthorIP, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldContent, v))
}

// UpvoteEQ applies the EQ predicate on the "upvote" field.
func UpvoteEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldUpvote, v))
}

// UpvoteNEQ applies the NEQ predicate on the "upvote" field.
func UpvoteNEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldUpvote, v))
}

// UpvoteIn applies the In predicate on the "upvote" field.
func UpvoteIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldUpvote, vs...))
}

// UpvoteNotIn applies the NotIn predicate on the "upvote" field.
func UpvoteNotIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldUpvote, vs...))
}

// UpvoteGT applies the GT predicate on the "upvote" field.
func UpvoteGT(v int) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldUpvote, v))
}

// UpvoteGTE applies the GTE predicate on the "upvote" field.
func UpvoteGTE(v int) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldUpvote, v))
}

// UpvoteLT applies the LT predicate on the "upvote" field.
func UpvoteLT(v int) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldUpvote, v))
}

// UpvoteLTE applies the LTE predicate on the "upvote" field.
func UpvoteLTE(v int) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldUpvote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPost applies the HasEdge predicate on the "post" edge.
func HasPost() predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PostTable, PostColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPostWith applies the HasEdge predicate on the "post" edge with a given conditions (other predicates).
func HasPostWith(preds ...predicate.Post) predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := newPostStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Comment) predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.Comment) predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIdentity applies the HasEdge predicate on the "identity" edge.
func HasIdentity() predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IdentityTable, IdentityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIdentityWith applies the HasEdge predicate on the "identity" edge with a given conditions (other predicates).
func HasIdentityWith(preds ...predicate.Identity) predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := newIdentityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Comment) predicate.Comment {
	return predicate.Comment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Comment) predicate.Comment {
	return predicate.Comment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Comment) predicate.Comment {
	return predicate.Comment(sql.NotPredicates(p))
}
