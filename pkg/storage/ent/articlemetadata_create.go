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
	"github.com/perusehq/peruse/pkg/storage/ent/articlemetadata"
	"github.com/perusehq/peruse/pkg/storage/ent/source"
)

// ArticleMetadataCreate is the builder for creating a ArticleMetadata entity.
type ArticleMetadataCreate struct {
	config
	mutation *ArticleMetadataMutation
	hooks    []Hook
}

// SetArticleID sets the "article_id" field.
func (_c *ArticleMetadataCreate) SetArticleID(v int) *ArticleMetadataCreate {
	_c.mutation.SetArticleID(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *ArticleMetadataCreate) SetSourceID(v int) *ArticleMetadataCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetExternalScore sets the "external_score" field.
func (_c *ArticleMetadataCreate) SetExternalScore(v float64) *ArticleMetadataCreate {
	_c.mutation.SetExternalScore(v)
	return _c
}

// SetNillableExternalScore sets the "external_score" field if the given value is not nil.
func (_c *ArticleMetadataCreate) SetNillableExternalScore(v *float64) *ArticleMetadataCreate {
	if v != nil {
		_c.SetExternalScore(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ArticleMetadataCreate) SetMetadata(v map[string]interface{}) *ArticleMetadataCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *ArticleMetadataCreate) SetSubmittedAt(v time.Time) *ArticleMetadataCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *ArticleMetadataCreate) SetNillableSubmittedAt(v *time.Time) *ArticleMetadataCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArticleMetadataCreate) SetCreatedAt(v time.Time) *ArticleMetadataCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArticleMetadataCreate) SetNillableCreatedAt(v *time.Time) *ArticleMetadataCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ArticleMetadataCreate) SetUpdatedAt(v time.Time) *ArticleMetadataCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ArticleMetadataCreate) SetNillableUpdatedAt(v *time.Time) *ArticleMetadataCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetArticle sets the "article" edge to the Article entity.
func (_c *ArticleMetadataCreate) SetArticle(v *Article) *ArticleMetadataCreate {
	return _c.SetArticleID(v.ID)
}

// SetSource sets the "source" edge to the Source entity.
func (_c *ArticleMetadataCreate) SetSource(v *Source) *ArticleMetadataCreate {
	return _c.SetSourceID(v.ID)
}

// Mutation returns the ArticleMetadataMutation object of the builder.
func (_c *ArticleMetadataCreate) Mutation() *ArticleMetadataMutation {
	return _c.mutation
}

// Save creates the ArticleMetadata in the database.
func (_c *ArticleMetadataCreate) Save(ctx context.Context) (*ArticleMetadata, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArticleMetadataCreate) SaveX(ctx context.Context) *ArticleMetadata {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleMetadataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleMetadataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArticleMetadataCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := articlemetadata.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := articlemetadata.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArticleMetadataCreate) check() error {
	if _, ok := _c.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "ArticleMetadata.article_id"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "ArticleMetadata.source_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ArticleMetadata.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ArticleMetadata.updated_at"`)}
	}
	if len(_c.mutation.ArticleIDs()) == 0 {
		return &ValidationError{Name: "article", err: errors.New(`ent: missing required edge "ArticleMetadata.article"`)}
	}
	if len(_c.mutation.SourceIDs()) == 0 {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required edge "ArticleMetadata.source"`)}
	}
	return nil
}

func (_c *ArticleMetadataCreate) sqlSave(ctx context.Context) (*ArticleMetadata, error) {
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

func (_c *ArticleMetadataCreate) createSpec() (*ArticleMetadata, *sqlgraph.CreateSpec) {
	var (
		_node = &ArticleMetadata{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(articlemetadata.Table, sqlgraph.NewFieldSpec(articlemetadata.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExternalScore(); ok {
		_spec.SetField(articlemetadata.FieldExternalScore, field.TypeFloat64, value)
		_node.ExternalScore = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(articlemetadata.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(articlemetadata.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(articlemetadata.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(articlemetadata.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ArticleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   articlemetadata.ArticleTable,
			Columns: []string{articlemetadata.ArticleColumn},
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
	if nodes := _c.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   articlemetadata.SourceTable,
			Columns: []string{articlemetadata.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ArticleMetadataCreateBulk is the builder for creating many ArticleMetadata entities in bulk.
type ArticleMetadataCreateBulk struct {
	config
	err      error
	builders []*ArticleMetadataCreate
}

// Save creates the ArticleMetadata entities in the database.
func (_c *ArticleMetadataCreateBulk) Save(ctx context.Context) ([]*ArticleMetadata, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArticleMetadata, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArticleMetadataMutation)
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
func (_c *ArticleMetadataCreateBulk) SaveX(ctx context.Context) []*ArticleMetadata {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleMetadataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleMetadataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
