// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/perusehq/peruse/pkg/storage/ent/article"
	"github.com/perusehq/peruse/pkg/storage/ent/historyentry"
)

// HistoryEntryCreate is the builder for creating a HistoryEntry entity.
type HistoryEntryCreate struct {
	config
	mutation *HistoryEntryMutation
	hooks    []Hook
}

// SetArticleID sets the "article_id" field.
func (_c *HistoryEntryCreate) SetArticleID(v int) *HistoryEntryCreate {
	_c.mutation.SetArticleID(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *HistoryEntryCreate) SetWeight(v float64) *HistoryEntryCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *HistoryEntryCreate) SetNillableWeight(v *float64) *HistoryEntryCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetAddedAt sets the "added_at" field.
func (_c *HistoryEntryCreate) SetAddedAt(v time.Time) *HistoryEntryCreate {
	_c.mutation.SetAddedAt(v)
	return _c
}

// SetNillableAddedAt sets the "added_at" field if the given value is not nil.
func (_c *HistoryEntryCreate) SetNillableAddedAt(v *time.Time) *HistoryEntryCreate {
	if v != nil {
		_c.SetAddedAt(*v)
	}
	return _c
}

// SetArticle sets the "article" edge to the Article entity.
func (_c *HistoryEntryCreate) SetArticle(v *Article) *HistoryEntryCreate {
	return _c.SetArticleID(v.ID)
}

// Mutation returns the HistoryEntryMutation object of the builder.
func (_c *HistoryEntryCreate) Mutation() *HistoryEntryMutation {
	return _c.mutation
}

// Save creates the HistoryEntry in the database.
func (_c *HistoryEntryCreate) Save(ctx context.Context) (*HistoryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HistoryEntryCreate) SaveX(ctx context.Context) *HistoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HistoryEntryCreate) defaults() {
	if _, ok := _c.mutation.Weight(); !ok {
		v := historyentry.DefaultWeight
		_c.mutation.SetWeight(v)
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		v := historyentry.DefaultAddedAt()
		_c.mutation.SetAddedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HistoryEntryCreate) check() error {
	if _, ok := _c.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "HistoryEntry.article_id"`)}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "HistoryEntry.weight"`)}
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		return &ValidationError{Name: "added_at", err: errors.New(`ent: missing required field "HistoryEntry.added_at"`)}
	}
	if len(_c.mutation.ArticleIDs()) == 0 {
		return &ValidationError{Name: "article", err: errors.New(`ent: missing required edge "HistoryEntry.article"`)}
	}
	return nil
}

func (_c *HistoryEntryCreate) sqlSave(ctx context.Context) (*HistoryEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HistoryEntryCreate) createSpec() (*HistoryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &HistoryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(historyentry.Table, sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(historyentry.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.AddedAt(); ok {
		_spec.SetField(historyentry.FieldAddedAt, field.TypeTime, value)
		_node.AddedAt = value
	}
	if nodes := _c.mutation.ArticleIDs(); len(nodes) > 0 {
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
		_node.ArticleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HistoryEntryCreateBulk is the builder for creating many HistoryEntry entities in bulk.
type HistoryEntryCreateBulk struct {
	config
	err      error
	builders []*HistoryEntryCreate
}

// Save creates the HistoryEntry entities in the database.
func (_c *HistoryEntryCreateBulk) Save(ctx context.Context) ([]*HistoryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HistoryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HistoryEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *HistoryEntryCreateBulk) SaveX(ctx context.Context) []*HistoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
