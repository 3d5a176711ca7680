// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/knitworks/pattern-analyzer/gen/ent/analysisattempt"
	"github.com/knitworks/pattern-analyzer/gen/ent/predicate"
	"github.com/knitworks/pattern-analyzer/gen/ent/usageaccount"
)

// AnalysisAttemptUpdate is the builder for updating AnalysisAttempt entities.
type AnalysisAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisAttemptMutation
}

// Where appends a list predicates to the AnalysisAttemptUpdate builder.
func (_u *AnalysisAttemptUpdate) Where(ps ...predicate.AnalysisAttempt) *AnalysisAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *AnalysisAttemptUpdate) SetAccountID(v uuid.UUID) *AnalysisAttemptUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *AnalysisAttemptUpdate) SetNillableAccountID(v *uuid.UUID) *AnalysisAttemptUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnalysisAttemptUpdate) SetUserID(v string) *AnalysisAttemptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalysisAttemptUpdate) SetNillableUserID(v *string) *AnalysisAttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *AnalysisAttemptUpdate) SetFileHash(v string) *AnalysisAttemptUpdate {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *AnalysisAttemptUpdate) SetNillableFileHash(v *string) *AnalysisAttemptUpdate {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *AnalysisAttemptUpdate) SetFileName(v string) *AnalysisAttemptUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *AnalysisAttemptUpdate) SetNillableFileName(v *string) *AnalysisAttemptUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *AnalysisAttemptUpdate) SetSucceeded(v bool) *AnalysisAttemptUpdate {
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *AnalysisAttemptUpdate) SetNillableSucceeded(v *bool) *AnalysisAttemptUpdate {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// SetAccount sets the "account" edge to the UsageAccount entity.
func (_u *AnalysisAttemptUpdate) SetAccount(v *UsageAccount) *AnalysisAttemptUpdate {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the AnalysisAttemptMutation object of the builder.
func (_u *AnalysisAttemptUpdate) Mutation() *AnalysisAttemptMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the UsageAccount entity.
func (_u *AnalysisAttemptUpdate) ClearAccount() *AnalysisAttemptUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisAttemptUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := analysisattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisAttempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileHash(); ok {
		if err := analysisattempt.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "AnalysisAttempt.file_hash": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisAttempt.account"`)
	}
	return nil
}

func (_u *AnalysisAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisattempt.Table, analysisattempt.Columns, sqlgraph.NewFieldSpec(analysisattempt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(analysisattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(analysisattempt.FieldFileHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(analysisattempt.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(analysisattempt.FieldSucceeded, field.TypeBool, value)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisattempt.AccountTable,
			Columns: []string{analysisattempt.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageaccount.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisattempt.AccountTable,
			Columns: []string{analysisattempt.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageaccount.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisAttemptUpdateOne is the builder for updating a single AnalysisAttempt entity.
type AnalysisAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisAttemptMutation
}

// SetAccountID sets the "account_id" field.
func (_u *AnalysisAttemptUpdateOne) SetAccountID(v uuid.UUID) *AnalysisAttemptUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *AnalysisAttemptUpdateOne) SetNillableAccountID(v *uuid.UUID) *AnalysisAttemptUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnalysisAttemptUpdateOne) SetUserID(v string) *AnalysisAttemptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalysisAttemptUpdateOne) SetNillableUserID(v *string) *AnalysisAttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *AnalysisAttemptUpdateOne) SetFileHash(v string) *AnalysisAttemptUpdateOne {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *AnalysisAttemptUpdateOne) SetNillableFileHash(v *string) *AnalysisAttemptUpdateOne {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *AnalysisAttemptUpdateOne) SetFileName(v string) *AnalysisAttemptUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *AnalysisAttemptUpdateOne) SetNillableFileName(v *string) *AnalysisAttemptUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *AnalysisAttemptUpdateOne) SetSucceeded(v bool) *AnalysisAttemptUpdateOne {
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *AnalysisAttemptUpdateOne) SetNillableSucceeded(v *bool) *AnalysisAttemptUpdateOne {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// SetAccount sets the "account" edge to the UsageAccount entity.
func (_u *AnalysisAttemptUpdateOne) SetAccount(v *UsageAccount) *AnalysisAttemptUpdateOne {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the AnalysisAttemptMutation object of the builder.
func (_u *AnalysisAttemptUpdateOne) Mutation() *AnalysisAttemptMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the UsageAccount entity.
func (_u *AnalysisAttemptUpdateOne) ClearAccount() *AnalysisAttemptUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// Where appends a list predicates to the AnalysisAttemptUpdate builder.
func (_u *AnalysisAttemptUpdateOne) Where(ps ...predicate.AnalysisAttempt) *AnalysisAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisAttemptUpdateOne) Select(field string, fields ...string) *AnalysisAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisAttempt entity.
func (_u *AnalysisAttemptUpdateOne) Save(ctx context.Context) (*AnalysisAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisAttemptUpdateOne) SaveX(ctx context.Context) *AnalysisAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := analysisattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisAttempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileHash(); ok {
		if err := analysisattempt.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "AnalysisAttempt.file_hash": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisAttempt.account"`)
	}
	return nil
}

func (_u *AnalysisAttemptUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisattempt.Table, analysisattempt.Columns, sqlgraph.NewFieldSpec(analysisattempt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisattempt.FieldID)
		for _, f := range fields {
			if !analysisattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisattempt.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(analysisattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(analysisattempt.FieldFileHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(analysisattempt.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(analysisattempt.FieldSucceeded, field.TypeBool, value)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisattempt.AccountTable,
			Columns: []string{analysisattempt.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageaccount.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisattempt.AccountTable,
			Columns: []string{analysisattempt.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageaccount.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
