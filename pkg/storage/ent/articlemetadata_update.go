// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/perusehq/peruse/pkg/storage/ent/article"
	"github.com/perusehq/peruse/pkg/storage/ent/articlemetadata"
	"github.com/perusehq/peruse/pkg/storage/ent/predicate"
	"github.com/perusehq/peruse/pkg/storage/ent/source"
)

// ArticleMetadataUpdate is the builder for updating ArticleMetadata entities.
type ArticleMetadataUpdate struct {
	config
	hooks    []Hook
	mutation *ArticleMetadataMutation
}

// Where appends a list predicates to the ArticleMetadataUpdate builder.
func (_u *ArticleMetadataUpdate) Where(ps ...predicate.ArticleMetadata) *ArticleMetadataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArticleID sets the "article_id" field.
func (_u *ArticleMetadataUpdate) SetArticleID(v int) *ArticleMetadataUpdate {
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *ArticleMetadataUpdate) SetNillableArticleID(v *int) *ArticleMetadataUpdate {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *ArticleMetadataUpdate) SetSourceID(v int) *ArticleMetadataUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *ArticleMetadataUpdate) SetNillableSourceID(v *int) *ArticleMetadataUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetExternalScore sets the "external_score" field.
func (_u *ArticleMetadataUpdate) SetExternalScore(v float64) *ArticleMetadataUpdate {
	_u.mutation.ResetExternalScore()
	_u.mutation.SetExternalScore(v)
	return _u
}

// SetNillableExternalScore sets the "external_score" field if the given value is not nil.
func (_u *ArticleMetadataUpdate) SetNillableExternalScore(v *float64) *ArticleMetadataUpdate {
	if v != nil {
		_u.SetExternalScore(*v)
	}
	return _u
}

// AddExternalScore adds value to the "external_score" field.
func (_u *ArticleMetadataUpdate) AddExternalScore(v float64) *ArticleMetadataUpdate {
	_u.mutation.AddExternalScore(v)
	return _u
}

// ClearExternalScore clears the value of the "external_score" field.
func (_u *ArticleMetadataUpdate) ClearExternalScore() *ArticleMetadataUpdate {
	_u.mutation.ClearExternalScore()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ArticleMetadataUpdate) SetMetadata(v map[string]interface{}) *ArticleMetadataUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ArticleMetadataUpdate) ClearMetadata() *ArticleMetadataUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ArticleMetadataUpdate) SetSubmittedAt(v time.Time) *ArticleMetadataUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ArticleMetadataUpdate) SetNillableSubmittedAt(v *time.Time) *ArticleMetadataUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ArticleMetadataUpdate) ClearSubmittedAt() *ArticleMetadataUpdate {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArticleMetadataUpdate) SetUpdatedAt(v time.Time) *ArticleMetadataUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetArticle sets the "article" edge to the Article entity.
func (_u *ArticleMetadataUpdate) SetArticle(v *Article) *ArticleMetadataUpdate {
	return _u.SetArticleID(v.ID)
}

// SetSource sets the "source" edge to the Source entity.
func (_u *ArticleMetadataUpdate) SetSource(v *Source) *ArticleMetadataUpdate {
	return _u.SetSourceID(v.ID)
}

// Mutation returns the ArticleMetadataMutation object of the builder.
func (_u *ArticleMetadataUpdate) Mutation() *ArticleMetadataMutation {
	return _u.mutation
}

// ClearArticle clears the "article" edge to the Article entity.
func (_u *ArticleMetadataUpdate) ClearArticle() *ArticleMetadataUpdate {
	_u.mutation.ClearArticle()
	return _u
}

// ClearSource clears the "source" edge to the Source entity.
func (_u *ArticleMetadataUpdate) ClearSource() *ArticleMetadataUpdate {
	_u.mutation.ClearSource()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArticleMetadataUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleMetadataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArticleMetadataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleMetadataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArticleMetadataUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := articlemetadata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleMetadataUpdate) check() error {
	if _u.mutation.ArticleCleared() && len(_u.mutation.ArticleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArticleMetadata.article"`)
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArticleMetadata.source"`)
	}
	return nil
}

func (_u *ArticleMetadataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(articlemetadata.Table, articlemetadata.Columns, sqlgraph.NewFieldSpec(articlemetadata.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalScore(); ok {
		_spec.SetField(articlemetadata.FieldExternalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExternalScore(); ok {
		_spec.AddField(articlemetadata.FieldExternalScore, field.TypeFloat64, value)
	}
	if _u.mutation.ExternalScoreCleared() {
		_spec.ClearField(articlemetadata.FieldExternalScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(articlemetadata.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(articlemetadata.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(articlemetadata.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(articlemetadata.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(articlemetadata.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{articlemetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArticleMetadataUpdateOne is the builder for updating a single ArticleMetadata entity.
type ArticleMetadataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArticleMetadataMutation
}

// SetArticleID sets the "article_id" field.
func (_u *ArticleMetadataUpdateOne) SetArticleID(v int) *ArticleMetadataUpdateOne {
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *ArticleMetadataUpdateOne) SetNillableArticleID(v *int) *ArticleMetadataUpdateOne {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *ArticleMetadataUpdateOne) SetSourceID(v int) *ArticleMetadataUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *ArticleMetadataUpdateOne) SetNillableSourceID(v *int) *ArticleMetadataUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetExternalScore sets the "external_score" field.
func (_u *ArticleMetadataUpdateOne) SetExternalScore(v float64) *ArticleMetadataUpdateOne {
	_u.mutation.ResetExternalScore()
	_u.mutation.SetExternalScore(v)
	return _u
}

// SetNillableExternalScore sets the "external_score" field if the given value is not nil.
func (_u *ArticleMetadataUpdateOne) SetNillableExternalScore(v *float64) *ArticleMetadataUpdateOne {
	if v != nil {
		_u.SetExternalScore(*v)
	}
	return _u
}

// AddExternalScore adds value to the "external_score" field.
func (_u *ArticleMetadataUpdateOne) AddExternalScore(v float64) *ArticleMetadataUpdateOne {
	_u.mutation.AddExternalScore(v)
	return _u
}

// ClearExternalScore clears the value of the "external_score" field.
func (_u *ArticleMetadataUpdateOne) ClearExternalScore() *ArticleMetadataUpdateOne {
	_u.mutation.ClearExternalScore()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ArticleMetadataUpdateOne) SetMetadata(v map[string]interface{}) *ArticleMetadataUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ArticleMetadataUpdateOne) ClearMetadata() *ArticleMetadataUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ArticleMetadataUpdateOne) SetSubmittedAt(v time.Time) *ArticleMetadataUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ArticleMetadataUpdateOne) SetNillableSubmittedAt(v *time.Time) *ArticleMetadataUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ArticleMetadataUpdateOne) ClearSubmittedAt() *ArticleMetadataUpdateOne {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArticleMetadataUpdateOne) SetUpdatedAt(v time.Time) *ArticleMetadataUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetArticle sets the "article" edge to the Article entity.
func (_u *ArticleMetadataUpdateOne) SetArticle(v *Article) *ArticleMetadataUpdateOne {
	return _u.SetArticleID(v.ID)
}

// SetSource sets the "source" edge to the Source entity.
func (_u *ArticleMetadataUpdateOne) SetSource(v *Source) *ArticleMetadataUpdateOne {
	return _u.SetSourceID(v.ID)
}

// Mutation returns the ArticleMetadataMutation object of the builder.
func (_u *ArticleMetadataUpdateOne) Mutation() *ArticleMetadataMutation {
	return _u.mutation
}

// ClearArticle clears the "article" edge to the Article entity.
func (_u *ArticleMetadataUpdateOne) ClearArticle() *ArticleMetadataUpdateOne {
	_u.mutation.ClearArticle()
	return _u
}

// ClearSource clears the "source" edge to the Source entity.
func (_u *ArticleMetadataUpdateOne) ClearSource() *ArticleMetadataUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// Where appends a list predicates to the ArticleMetadataUpdate builder.
func (_u *ArticleMetadataUpdateOne) Where(ps ...predicate.ArticleMetadata) *ArticleMetadataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArticleMetadataUpdateOne) Select(field string, fields ...string) *ArticleMetadataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArticleMetadata entity.
func (_u *ArticleMetadataUpdateOne) Save(ctx context.Context) (*ArticleMetadata, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleMetadataUpdateOne) SaveX(ctx context.Context) *ArticleMetadata {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArticleMetadataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleMetadataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArticleMetadataUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := articlemetadata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleMetadataUpdateOne) check() error {
	if _u.mutation.ArticleCleared() && len(_u.mutation.ArticleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArticleMetadata.article"`)
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArticleMetadata.source"`)
	}
	return nil
}

func (_u *ArticleMetadataUpdateOne) sqlSave(ctx context.Context) (_node *ArticleMetadata, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(articlemetadata.Table, articlemetadata.Columns, sqlgraph.NewFieldSpec(articlemetadata.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArticleMetadata.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, articlemetadata.FieldID)
		for _, f := range fields {
			if !articlemetadata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != articlemetadata.FieldID {
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
	if value, ok := _u.mutation.ExternalScore(); ok {
		_spec.SetField(articlemetadata.FieldExternalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExternalScore(); ok {
		_spec.AddField(articlemetadata.FieldExternalScore, field.TypeFloat64, value)
	}
	if _u.mutation.ExternalScoreCleared() {
		_spec.ClearField(articlemetadata.FieldExternalScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(articlemetadata.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(articlemetadata.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(articlemetadata.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(articlemetadata.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(articlemetadata.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ArticleMetadata{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{articlemetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
