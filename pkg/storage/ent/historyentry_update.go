// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/perusehq/peruse/pkg/storage/ent/article"
	"github.com/perusehq/peruse/pkg/storage/ent/historyentry"
	"github.com/perusehq/peruse/pkg/storage/ent/predicate"
)

// HistoryEntryUpdate is the builder for updating HistoryEntry entities.
type HistoryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *HistoryEntryMutation
}

// Where appends a list predicates to the HistoryEntryUpdate builder.
func (_u *HistoryEntryUpdate) Where(ps ...predicate.HistoryEntry) *HistoryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArticleID sets the "article_id" field.
func (_u *HistoryEntryUpdate) SetArticleID(v int) *HistoryEntryUpdate {
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *HistoryEntryUpdate) SetNillableArticleID(v *int) *HistoryEntryUpdate {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *HistoryEntryUpdate) SetWeight(v float64) *HistoryEntryUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *HistoryEntryUpdate) SetNillableWeight(v *float64) *HistoryEntryUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *HistoryEntryUpdate) AddWeight(v float64) *HistoryEntryUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetArticle sets the "article" edge to the Article entity.
func (_u *HistoryEntryUpdate) SetArticle(v *Article) *HistoryEntryUpdate {
	return _u.SetArticleID(v.ID)
}

// Mutation returns the HistoryEntryMutation object of the builder.
func (_u *HistoryEntryUpdate) Mutation() *HistoryEntryMutation {
	return _u.mutation
}

// ClearArticle clears the "article" edge to the Article entity.
func (_u *HistoryEntryUpdate) ClearArticle() *HistoryEntryUpdate {
	_u.mutation.ClearArticle()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HistoryEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HistoryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HistoryEntryUpdate) check() error {
	if _u.mutation.ArticleCleared() && len(_u.mutation.ArticleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HistoryEntry.article"`)
	}
	return nil
}

func (_u *HistoryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(historyentry.Table, historyentry.Columns, sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(historyentry.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(historyentry.FieldWeight, field.TypeFloat64, value)
	}
	if _u.mutation.ArticleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   historyentry.ArticleTable,
			Columns: []string{historyentry.ArticleColumn},
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
			Table:   historyentry.ArticleTable,
			Columns: []string{historyentry.ArticleColumn},
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
			err = &NotFoundError{historyentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HistoryEntryUpdateOne is the builder for updating a single HistoryEntry entity.
type HistoryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HistoryEntryMutation
}

// SetArticleID sets the "article_id" field.
func (_u *HistoryEntryUpdateOne) SetArticleID(v int) *HistoryEntryUpdateOne {
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *HistoryEntryUpdateOne) SetNillableArticleID(v *int) *HistoryEntryUpdateOne {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *HistoryEntryUpdateOne) SetWeight(v float64) *HistoryEntryUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *HistoryEntryUpdateOne) SetNillableWeight(v *float64) *HistoryEntryUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *HistoryEntryUpdateOne) AddWeight(v float64) *HistoryEntryUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetArticle sets the "article" edge to the Article entity.
func (_u *HistoryEntryUpdateOne) SetArticle(v *Article) *HistoryEntryUpdateOne {
	return _u.SetArticleID(v.ID)
}

// Mutation returns the HistoryEntryMutation object of the builder.
func (_u *HistoryEntryUpdateOne) Mutation() *HistoryEntryMutation {
	return _u.mutation
}

// ClearArticle clears the "article" edge to the Article entity.
func (_u *HistoryEntryUpdateOne) ClearArticle() *HistoryEntryUpdateOne {
	_u.mutation.ClearArticle()
	return _u
}

// Where appends a list predicates to the HistoryEntryUpdate builder.
func (_u *HistoryEntryUpdateOne) Where(ps ...predicate.HistoryEntry) *HistoryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HistoryEntryUpdateOne) Select(field string, fields ...string) *HistoryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HistoryEntry entity.
func (_u *HistoryEntryUpdateOne) Save(ctx context.Context) (*HistoryEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryEntryUpdateOne) SaveX(ctx context.Context) *HistoryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HistoryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HistoryEntryUpdateOne) check() error {
	if _u.mutation.ArticleCleared() && len(_u.mutation.ArticleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HistoryEntry.article"`)
	}
	return nil
}

func (_u *HistoryEntryUpdateOne) sqlSave(ctx context.Context) (_node *HistoryEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(historyentry.Table, historyentry.Columns, sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HistoryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, historyentry.FieldID)
		for _, f := range fields {
			if !historyentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != historyentry.FieldID {
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
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(historyentry.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(historyentry.FieldWeight, field.TypeFloat64, value)
	}
	if _u.mutation.ArticleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   historyentry.ArticleTable,
			Columns: []string{historyentry.ArticleColumn},
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
			Table:   historyentry.ArticleTable,
			Columns: []string{historyentry.ArticleColumn},
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
	_node = &HistoryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historyentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
