// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/perusehq/peruse/pkg/storage/ent/credential"
	"github.com/perusehq/peruse/pkg/storage/ent/identity"
	"github.com/perusehq/peruse/pkg/storage/ent/predicate"
)

// CredentialUpdate is the builder for updating Credential entities.
type CredentialUpdate struct {
	config
	hooks    []Hook
	mutation *CredentialMutation
}

// Where appends a list predicates to the CredentialUpdate builder.
func (_u *CredentialUpdate) Where(ps ...predicate.Credential) *CredentialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIdentityID sets the "identity_id" field.
func (_u *CredentialUpdate) SetIdentityID(v int) *CredentialUpdate {
	_u.mutation.SetIdentityID(v)
	return _u
}

// SetNillableIdentityID sets the "identity_id" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableIdentityID(v *int) *CredentialUpdate {
	if v != nil {
		_u.SetIdentityID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CredentialUpdate) SetProvider(v string) *CredentialUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableProvider(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetProviderAccountID sets the "provider_account_id" field.
func (_u *CredentialUpdate) SetProviderAccountID(v string) *CredentialUpdate {
	_u.mutation.SetProviderAccountID(v)
	return _u
}

// SetNillableProviderAccountID sets the "provider_account_id" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableProviderAccountID(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetProviderAccountID(*v)
	}
	return _u
}

// SetIdentity sets the "identity" edge to the Identity entity.
func (_u *CredentialUpdate) SetIdentity(v *Identity) *CredentialUpdate {
	return _u.SetIdentityID(v.ID)
}

// Mutation returns the CredentialMutation object of the builder.
func (_u *CredentialUpdate) Mutation() *CredentialMutation {
	return _u.mutation
}

// ClearIdentity clears the "identity" edge to the Identity entity.
func (_u *CredentialUpdate) ClearIdentity() *CredentialUpdate {
	_u.mutation.ClearIdentity()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CredentialUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CredentialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CredentialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CredentialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CredentialUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := credential.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Credential.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderAccountID(); ok {
		if err := credential.ProviderAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_account_id", err: fmt.Errorf(`ent: validator failed for field "Credential.provider_account_id": %w`, err)}
		}
	}
	if _u.mutation.IdentityCleared() && len(_u.mutation.IdentityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Credential.identity"`)
	}
	return nil
}

func (_u *CredentialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(credential.Table, credential.Columns, sqlgraph.NewFieldSpec(credential.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(credential.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderAccountID(); ok {
		_spec.SetField(credential.FieldProviderAccountID, field.TypeString, value)
	}
	if _u.mutation.IdentityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credential.IdentityTable,
			Columns: []string{credential.IdentityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(identity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IdentityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credential.IdentityTable,
			Columns: []string{credential.IdentityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(identity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CredentialUpdateOne is the builder for updating a single Credential entity.
type CredentialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CredentialMutation
}

// SetIdentityID sets the "identity_id" field.
func (_u *CredentialUpdateOne) SetIdentityID(v int) *CredentialUpdateOne {
	_u.mutation.SetIdentityID(v)
	return _u
}

// SetNillableIdentityID sets the "identity_id" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableIdentityID(v *int) *CredentialUpdateOne {
	if v != nil {
		_u.SetIdentityID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CredentialUpdateOne) SetProvider(v string) *CredentialUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableProvider(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetProviderAccountID sets the "provider_account_id" field.
func (_u *CredentialUpdateOne) SetProviderAccountID(v string) *CredentialUpdateOne {
	_u.mutation.SetProviderAccountID(v)
	return _u
}

// SetNillableProviderAccountID sets the "provider_account_id" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableProviderAccountID(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetProviderAccountID(*v)
	}
	return _u
}

// SetIdentity sets the "identity" edge to the Identity entity.
func (_u *CredentialUpdateOne) SetIdentity(v *Identity) *CredentialUpdateOne {
	return _u.SetIdentityID(v.ID)
}

// Mutation returns the CredentialMutation object of the builder.
func (_u *CredentialUpdateOne) Mutation() *CredentialMutation {
	return _u.mutation
}

// ClearIdentity clears the "identity" edge to the Identity entity.
func (_u *CredentialUpdateOne) ClearIdentity() *CredentialUpdateOne {
	_u.mutation.ClearIdentity()
	return _u
}

// Where appends a list predicates to the CredentialUpdate builder.
func (_u *CredentialUpdateOne) Where(ps ...predicate.Credential) *CredentialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CredentialUpdateOne) Select(field string, fields ...string) *CredentialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Credential entity.
func (_u *CredentialUpdateOne) Save(ctx context.Context) (*Credential, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CredentialUpdateOne) SaveX(ctx context.Context) *Credential {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CredentialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CredentialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CredentialUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := credential.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Credential.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderAccountID(); ok {
		if err := credential.ProviderAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_account_id", err: fmt.Errorf(`ent: validator failed for field "Credential.provider_account_id": %w`, err)}
		}
	}
	if _u.mutation.IdentityCleared() && len(_u.mutation.IdentityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Credential.identity"`)
	}
	return nil
}

func (_u *CredentialUpdateOne) sqlSave(ctx context.Context) (_node *Credential, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(credential.Table, credential.Columns, sqlgraph.NewFieldSpec(credential.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Credential.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, credential.FieldID)
		for _, f := range fields {
			if !credential.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != credential.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(credential.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderAccountID(); ok {
		_spec.SetField(credential.FieldProviderAccountID, field.TypeString, value)
	}
	if _u.mutation.IdentityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credential.IdentityTable,
			Columns: []string{credential.IdentityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(identity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IdentityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credential.IdentityTable,
			Columns: []string{credential.IdentityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(identity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Credential{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
