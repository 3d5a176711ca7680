// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/knitworks/pattern-analyzer/gen/ent/analysisattempt"
	"github.com/knitworks/pattern-analyzer/gen/ent/usageaccount"
)

// AnalysisAttemptCreate is the builder for creating a AnalysisAttempt entity.
type AnalysisAttemptCreate struct {
	config
	mutation *AnalysisAttemptMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *AnalysisAttemptCreate) SetAccountID(v uuid.UUID) *AnalysisAttemptCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AnalysisAttemptCreate) SetUserID(v string) *AnalysisAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFileHash sets the "file_hash" field.
func (_c *AnalysisAttemptCreate) SetFileHash(v string) *AnalysisAttemptCreate {
	_c.mutation.SetFileHash(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *AnalysisAttemptCreate) SetFileName(v string) *AnalysisAttemptCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetSucceeded sets the "succeeded" field.
func (_c *AnalysisAttemptCreate) SetSucceeded(v bool) *AnalysisAttemptCreate {
	_c.mutation.SetSucceeded(v)
	return _c
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_c *AnalysisAttemptCreate) SetNillableSucceeded(v *bool) *AnalysisAttemptCreate {
	if v != nil {
		_c.SetSucceeded(*v)
	}
	return _c
}

// SetAttemptedAt sets the "attempted_at" field.
func (_c *AnalysisAttemptCreate) SetAttemptedAt(v time.Time) *AnalysisAttemptCreate {
	_c.mutation.SetAttemptedAt(v)
	return _c
}

// SetNillableAttemptedAt sets the "attempted_at" field if the given value is not nil.
func (_c *AnalysisAttemptCreate) SetNillableAttemptedAt(v *time.Time) *AnalysisAttemptCreate {
	if v != nil {
		_c.SetAttemptedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisAttemptCreate) SetID(v uuid.UUID) *AnalysisAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisAttemptCreate) SetNillableID(v *uuid.UUID) *AnalysisAttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAccount sets the "account" edge to the UsageAccount entity.
func (_c *AnalysisAttemptCreate) SetAccount(v *UsageAccount) *AnalysisAttemptCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the AnalysisAttemptMutation object of the builder.
func (_c *AnalysisAttemptCreate) Mutation() *AnalysisAttemptMutation {
	return _c.mutation
}

// Save creates the AnalysisAttempt in the database.
func (_c *AnalysisAttemptCreate) Save(ctx context.Context) (*AnalysisAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisAttemptCreate) SaveX(ctx context.Context) *AnalysisAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisAttemptCreate) defaults() {
	if _, ok := _c.mutation.Succeeded(); !ok {
		v := analysisattempt.DefaultSucceeded
		_c.mutation.SetSucceeded(v)
	}
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		v := analysisattempt.DefaultAttemptedAt()
		_c.mutation.SetAttemptedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysisattempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisAttemptCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "AnalysisAttempt.account_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnalysisAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := analysisattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileHash(); !ok {
		return &ValidationError{Name: "file_hash", err: errors.New(`ent: missing required field "AnalysisAttempt.file_hash"`)}
	}
	if v, ok := _c.mutation.FileHash(); ok {
		if err := analysisattempt.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "AnalysisAttempt.file_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "AnalysisAttempt.file_name"`)}
	}
	if _, ok := _c.mutation.Succeeded(); !ok {
		return &ValidationError{Name: "succeeded", err: errors.New(`ent: missing required field "AnalysisAttempt.succeeded"`)}
	}
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		return &ValidationError{Name: "attempted_at", err: errors.New(`ent: missing required field "AnalysisAttempt.attempted_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "AnalysisAttempt.account"`)}
	}
	return nil
}

func (_c *AnalysisAttemptCreate) sqlSave(ctx context.Context) (*AnalysisAttempt, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisAttemptCreate) createSpec() (*AnalysisAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisattempt.Table, sqlgraph.NewFieldSpec(analysisattempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(analysisattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FileHash(); ok {
		_spec.SetField(analysisattempt.FieldFileHash, field.TypeString, value)
		_node.FileHash = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(analysisattempt.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.Succeeded(); ok {
		_spec.SetField(analysisattempt.FieldSucceeded, field.TypeBool, value)
		_node.Succeeded = value
	}
	if value, ok := _c.mutation.AttemptedAt(); ok {
		_spec.SetField(analysisattempt.FieldAttemptedAt, field.TypeTime, value)
		_node.AttemptedAt = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
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
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisAttemptCreateBulk is the builder for creating many AnalysisAttempt entities in bulk.
type AnalysisAttemptCreateBulk struct {
	config
	err      error
	builders []*AnalysisAttemptCreate
}

// Save creates the AnalysisAttempt entities in the database.
func (_c *AnalysisAttemptCreateBulk) Save(ctx context.Context) ([]*AnalysisAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisAttemptMutation)
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
func (_c *AnalysisAttemptCreateBulk) SaveX(ctx context.Context) []*AnalysisAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
