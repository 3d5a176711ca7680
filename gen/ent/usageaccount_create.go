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

// UsageAccountCreate is the builder for creating a UsageAccount entity.
type UsageAccountCreate struct {
	config
	mutation *UsageAccountMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UsageAccountCreate) SetUserID(v string) *UsageAccountCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCredits sets the "credits" field.
func (_c *UsageAccountCreate) SetCredits(v int) *UsageAccountCreate {
	_c.mutation.SetCredits(v)
	return _c
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (_c *UsageAccountCreate) SetNillableCredits(v *int) *UsageAccountCreate {
	if v != nil {
		_c.SetCredits(*v)
	}
	return _c
}

// SetLastResetDate sets the "last_reset_date" field.
func (_c *UsageAccountCreate) SetLastResetDate(v time.Time) *UsageAccountCreate {
	_c.mutation.SetLastResetDate(v)
	return _c
}

// SetNillableLastResetDate sets the "last_reset_date" field if the given value is not nil.
func (_c *UsageAccountCreate) SetNillableLastResetDate(v *time.Time) *UsageAccountCreate {
	if v != nil {
		_c.SetLastResetDate(*v)
	}
	return _c
}

// SetAdRewardsUsed sets the "ad_rewards_used" field.
func (_c *UsageAccountCreate) SetAdRewardsUsed(v int) *UsageAccountCreate {
	_c.mutation.SetAdRewardsUsed(v)
	return _c
}

// SetNillableAdRewardsUsed sets the "ad_rewards_used" field if the given value is not nil.
func (_c *UsageAccountCreate) SetNillableAdRewardsUsed(v *int) *UsageAccountCreate {
	if v != nil {
		_c.SetAdRewardsUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageAccountCreate) SetCreatedAt(v time.Time) *UsageAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageAccountCreate) SetNillableCreatedAt(v *time.Time) *UsageAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UsageAccountCreate) SetUpdatedAt(v time.Time) *UsageAccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UsageAccountCreate) SetNillableUpdatedAt(v *time.Time) *UsageAccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *UsageAccountCreate) SetTotalAttempts(v int) *UsageAccountCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *UsageAccountCreate) SetNillableTotalAttempts(v *int) *UsageAccountCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *UsageAccountCreate) SetSuccessCount(v int) *UsageAccountCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_c *UsageAccountCreate) SetNillableSuccessCount(v *int) *UsageAccountCreate {
	if v != nil {
		_c.SetSuccessCount(*v)
	}
	return _c
}

// SetFailureCount sets the "failure_count" field.
func (_c *UsageAccountCreate) SetFailureCount(v int) *UsageAccountCreate {
	_c.mutation.SetFailureCount(v)
	return _c
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_c *UsageAccountCreate) SetNillableFailureCount(v *int) *UsageAccountCreate {
	if v != nil {
		_c.SetFailureCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageAccountCreate) SetID(v uuid.UUID) *UsageAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UsageAccountCreate) SetNillableID(v *uuid.UUID) *UsageAccountCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddAttemptIDs adds the "attempts" edge to the AnalysisAttempt entity by IDs.
func (_c *UsageAccountCreate) AddAttemptIDs(ids ...uuid.UUID) *UsageAccountCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the AnalysisAttempt entity.
func (_c *UsageAccountCreate) AddAttempts(v ...*AnalysisAttempt) *UsageAccountCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the UsageAccountMutation object of the builder.
func (_c *UsageAccountCreate) Mutation() *UsageAccountMutation {
	return _c.mutation
}

// Save creates the UsageAccount in the database.
func (_c *UsageAccountCreate) Save(ctx context.Context) (*UsageAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageAccountCreate) SaveX(ctx context.Context) *UsageAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageAccountCreate) defaults() {
	if _, ok := _c.mutation.Credits(); !ok {
		v := usageaccount.DefaultCredits
		_c.mutation.SetCredits(v)
	}
	if _, ok := _c.mutation.LastResetDate(); !ok {
		v := usageaccount.DefaultLastResetDate()
		_c.mutation.SetLastResetDate(v)
	}
	if _, ok := _c.mutation.AdRewardsUsed(); !ok {
		v := usageaccount.DefaultAdRewardsUsed
		_c.mutation.SetAdRewardsUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usageaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usageaccount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := usageaccount.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		v := usageaccount.DefaultSuccessCount
		_c.mutation.SetSuccessCount(v)
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		v := usageaccount.DefaultFailureCount
		_c.mutation.SetFailureCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := usageaccount.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageAccountCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UsageAccount.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := usageaccount.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UsageAccount.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Credits(); !ok {
		return &ValidationError{Name: "credits", err: errors.New(`ent: missing required field "UsageAccount.credits"`)}
	}
	if v, ok := _c.mutation.Credits(); ok {
		if err := usageaccount.CreditsValidator(v); err != nil {
			return &ValidationError{Name: "credits", err: fmt.Errorf(`ent: validator failed for field "UsageAccount.credits": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastResetDate(); !ok {
		return &ValidationError{Name: "last_reset_date", err: errors.New(`ent: missing required field "UsageAccount.last_reset_date"`)}
	}
	if _, ok := _c.mutation.AdRewardsUsed(); !ok {
		return &ValidationError{Name: "ad_rewards_used", err: errors.New(`ent: missing required field "UsageAccount.ad_rewards_used"`)}
	}
	if v, ok := _c.mutation.AdRewardsUsed(); ok {
		if err := usageaccount.AdRewardsUsedValidator(v); err != nil {
			return &ValidationError{Name: "ad_rewards_used", err: fmt.Errorf(`ent: validator failed for field "UsageAccount.ad_rewards_used": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageAccount.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UsageAccount.updated_at"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "UsageAccount.total_attempts"`)}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "UsageAccount.success_count"`)}
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		return &ValidationError{Name: "failure_count", err: errors.New(`ent: missing required field "UsageAccount.failure_count"`)}
	}
	return nil
}

func (_c *UsageAccountCreate) sqlSave(ctx context.Context) (*UsageAccount, error) {
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

func (_c *UsageAccountCreate) createSpec() (*UsageAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usageaccount.Table, sqlgraph.NewFieldSpec(usageaccount.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usageaccount.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Credits(); ok {
		_spec.SetField(usageaccount.FieldCredits, field.TypeInt, value)
		_node.Credits = value
	}
	if value, ok := _c.mutation.LastResetDate(); ok {
		_spec.SetField(usageaccount.FieldLastResetDate, field.TypeTime, value)
		_node.LastResetDate = value
	}
	if value, ok := _c.mutation.AdRewardsUsed(); ok {
		_spec.SetField(usageaccount.FieldAdRewardsUsed, field.TypeInt, value)
		_node.AdRewardsUsed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usageaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usageaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(usageaccount.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(usageaccount.FieldSuccessCount, field.TypeInt, value)
		_node.SuccessCount = value
	}
	if value, ok := _c.mutation.FailureCount(); ok {
		_spec.SetField(usageaccount.FieldFailureCount, field.TypeInt, value)
		_node.FailureCount = value
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usageaccount.AttemptsTable,
			Columns: []string{usageaccount.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisattempt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UsageAccountCreateBulk is the builder for creating many UsageAccount entities in bulk.
type UsageAccountCreateBulk struct {
	config
	err      error
	builders []*UsageAccountCreate
}

// Save creates the UsageAccount entities in the database.
func (_c *UsageAccountCreateBulk) Save(ctx context.Context) ([]*UsageAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageAccountMutation)
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
func (_c *UsageAccountCreateBulk) SaveX(ctx context.Context) []*UsageAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
