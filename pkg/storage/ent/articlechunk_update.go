// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/perusehq/peruse/pkg/storage/ent/article"
	"github.com/perusehq/peruse/pkg/storage/ent/articlechunk"
	"github.com/perusehq/peruse/pkg/storage/ent/predicate"
)

// ArticleChunkUpdate is the builder for updating ArticleChunk entities.
type ArticleChunkUpdate struct {
	config
	hooks    []Hook
	mutation *ArticleChunkMutation
}

// Where appends a list predicates to the ArticleChunkUpdate builder.
func (_u *ArticleChunkUpdate) Where(ps ...predicate.ArticleChunk) *ArticleChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArticleID sets the "article_id" field.
func (_u *ArticleChunkUpdate) SetArticleID(v int) *ArticleChunkUpdate {
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *ArticleChunkUpdate) SetNillableArticleID(v *int) *ArticleChunkUpdate {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ArticleChunkUpdate) SetEmbedding(v []float32) *ArticleChunkUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ArticleChunkUpdate) AppendEmbedding(v []float32) *ArticleChunkUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// SetArticle sets the "article" edge to the Article entity.
func (_u *ArticleChunkUpdate) SetArticle(v *Article) *ArticleChunkUpdate {
	return _u.SetArticleID(v.ID)
}

// Mutation returns the ArticleChunkMutation object of the builder.
func (_u *ArticleChunkUpdate) Mutation() *ArticleChunkMutation {
	return _u.mutation
}

// ClearArticle clears the "article" edge to the Article entity.
func (_u *ArticleChunkUpdate) ClearArticle() *ArticleChunkUpdate {
	_u.mutation.ClearArticle()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArticleChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArticleChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleChunkUpdate) check() error {
	if _u.mutation.ArticleCleared() && len(_u.mutation.ArticleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArticleChunk.article"`)
	}
	return nil
}

func (_u *ArticleChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(articlechunk.Table, articlechunk.Columns, sqlgraph.NewFieldSpec(articlechunk.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(articlechunk.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, articlechunk.FieldEmbedding, value)
		})
	}
	if _u.mutation.ArticleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   articlechunk.ArticleTable,
			Columns: []string{articlechunk.ArticleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   articlechunk.ArticleTable,
			Columns: []string{articlechunk.ArticleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{articlechunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArticleChunkUpdateOne is the builder for updating a single ArticleChunk entity.
type ArticleChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArticleChunkMutation
}

// SetArticleID sets the "article_id" field.
func (_u *ArticleChunkUpdateOne) SetArticleID(v int) *ArticleChunkUpdateOne {
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *ArticleChunkUpdateOne) SetNillableArticleID(v *int) *ArticleChunkUpdateOne {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ArticleChunkUpdateOne) SetEmbedding(v []float32) *ArticleChunkUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ArticleChunkUpdateOne) AppendEmbedding(v []float32) *ArticleChunkUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// SetArticle sets the "article" edge to the Article entity.
func (_u *ArticleChunkUpdateOne) SetArticle(v *Article) *ArticleChunkUpdateOne {
	return _u.SetArticleID(v.ID)
}

// Mutation returns the ArticleChunkMutation object of the builder.
func (_u *ArticleChunkUpdateOne) Mutation() *ArticleChunkMutation {
	return _u.mutation
}

// ClearArticle clears the "article" edge to the Article entity.
func (_u *ArticleChunkUpdateOne) ClearArticle() *ArticleChunkUpdateOne {
	_u.mutation.ClearArticle()
	return _u
}

// Where appends a list predicates to the ArticleChunkUpdate builder.
func (_u *ArticleChunkUpdateOne) Where(ps ...predicate.ArticleChunk) *ArticleChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArticleChunkUpdateOne) Select(field string, fields ...string) *ArticleChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArticleChunk entity.
func (_u *ArticleChunkUpdateOne) Save(ctx context.Context) (*ArticleChunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleChunkUpdateOne) SaveX(ctx context.Context) *ArticleChunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArticleChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleChunkUpdateOne) check() error {
	if _u.mutation.ArticleCleared() && len(_u.mutation.ArticleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArticleChunk.article"`)
	}
	return nil
}

func (_u *ArticleChunkUpdateOne) sqlSave(ctx context.Context) (_node *ArticleChunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(articlechunk.Table, articlechunk.Columns, sqlgraph.NewFieldSpec(articlechunk.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArticleChunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, articlechunk.FieldID)
		for _, f := range fields {
			if !articlechunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != articlechunk.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(articlechunk.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, articlechunk.FieldEmbedding, value)
		})
	}
	if _u.mutation.ArticleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   articlechunk.ArticleTable,
			Columns: []string{articlechunk.ArticleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   articlechunk.ArticleTable,
			Columns: []string{articlechunk.ArticleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ArticleChunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{articlechunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
