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
	"github.com/google/uuid"
	"github.com/knitworks/pattern-analyzer/gen/ent/analysisattempt"
	"github.com/knitworks/pattern-analyzer/gen/ent/predicate"
	"github.com/knitworks/pattern-analyzer/gen/ent/usageaccount"
)

// UsageAccountUpdate is the builder for updating UsageAccount entities.
type UsageAccountUpdate struct {
	config
	hooks    []Hook
	mutation *UsageAccountMutation
}

// Where appends a list predicates to the UsageAccountUpdate builder.
func (_u *UsageAccountUpdate) Where(ps ...predicate.UsageAccount) *UsageAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UsageAccountUpdate) SetUserID(v string) *UsageAccountUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageAccountUpdate) SetNillableUserID(v *string) *UsageAccountUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCredits sets the "credits" field.
func (_u *UsageAccountUpdate) SetCredits(v int) *UsageAccountUpdate {
	_u.mutation.ResetCredits()
	_u.mutation.SetCredits(v)
	return _u
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (_u *UsageAccountUpdate) SetNillableCredits(v *int) *UsageAccountUpdate {
	if v != nil {
		_u.SetCredits(*v)
	}
	return _u
}

// AddCredits adds value to the "credits" field.
func (_u *UsageAccountUpdate) AddCredits(v int) *UsageAccountUpdate {
	_u.mutation.AddCredits(v)
	return _u
}

// SetLastResetDate sets the "last_reset_date" field.
func (_u *UsageAccountUpdate) SetLastResetDate(v time.Time) *UsageAccountUpdate {
	_u.mutation.SetLastResetDate(v)
	return _u
}

// SetNillableLastResetDate sets the "last_reset_date" field if the given value is not nil.
func (_u *UsageAccountUpdate) SetNillableLastResetDate(v *time.Time) *UsageAccountUpdate {
	if v != nil {
		_u.SetLastResetDate(*v)
	}
	return _u
}

// SetAdRewardsUsed sets the "ad_rewards_used" field.
func (_u *UsageAccountUpdate) SetAdRewardsUsed(v int) *UsageAccountUpdate {
	_u.mutation.ResetAdRewardsUsed()
	_u.mutation.SetAdRewardsUsed(v)
	return _u
}

// SetNillableAdRewardsUsed sets the "ad_rewards_used" field if the given value is not nil.
func (_u *UsageAccountUpdate) SetNillableAdRewardsUsed(v *int) *UsageAccountUpdate {
	if v != nil {
		_u.SetAdRewardsUsed(*v)
	}
	return _u
}

// AddAdRewardsUsed adds value to the "ad_rewards_used" field.
func (_u *UsageAccountUpdate) AddAdRewardsUsed(v int) *UsageAccountUpdate {
	_u.mutation.AddAdRewardsUsed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageAccountUpdate) SetUpdatedAt(v time.Time) *UsageAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *UsageAccountUpdate) SetTotalAttempts(v int) *UsageAccountUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *UsageAccountUpdate) SetNillableTotalAttempts(v *int) *UsageAccountUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *UsageAccountUpdate) AddTotalAttempts(v int) *UsageAccountUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *UsageAccountUpdate) SetSuccessCount(v int) *UsageAccountUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *UsageAccountUpdate) SetNillableSuccessCount(v *int) *UsageAccountUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *UsageAccountUpdate) AddSuccessCount(v int) *UsageAccountUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *UsageAccountUpdate) SetFailureCount(v int) *UsageAccountUpdate {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *UsageAccountUpdate) SetNillableFailureCount(v *int) *UsageAccountUpdate {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *UsageAccountUpdate) AddFailureCount(v int) *UsageAccountUpdate {
	_u.mutation.AddFailureCount(v)
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the AnalysisAttempt entity by IDs.
func (_u *UsageAccountUpdate) AddAttemptIDs(ids ...uuid.UUID) *UsageAccountUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the AnalysisAttempt entity.
func (_u *UsageAccountUpdate) AddAttempts(v ...*AnalysisAttempt) *UsageAccountUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the UsageAccountMutation object of the builder.
func (_u *UsageAccountUpdate) Mutation() *UsageAccountMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the AnalysisAttempt entity.
func (_u *UsageAccountUpdate) ClearAttempts() *UsageAccountUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to AnalysisAttempt entities by IDs.
func (_u *UsageAccountUpdate) RemoveAttemptIDs(ids ...uuid.UUID) *UsageAccountUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to AnalysisAttempt entities.
func (_u *UsageAccountUpdate) RemoveAttempts(v ...*AnalysisAttempt) *UsageAccountUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usageaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageAccountUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := usageaccount.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UsageAccount.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Credits(); ok {
		if err := usageaccount.CreditsValidator(v); err != nil {
			return &ValidationError{Name: "credits", err: fmt.Errorf(`ent: validator failed for field "UsageAccount.credits": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdRewardsUsed(); ok {
		if err := usageaccount.AdRewardsUsedValidator(v); err != nil {
			return &ValidationError{Name: "ad_rewards_used", err: fmt.Errorf(`ent: validator failed for field "UsageAccount.ad_rewards_used": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageaccount.Table, usageaccount.Columns, sqlgraph.NewFieldSpec(usageaccount.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(usageaccount.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Credits(); ok {
		_spec.SetField(usageaccount.FieldCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCredits(); ok {
		_spec.AddField(usageaccount.FieldCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastResetDate(); ok {
		_spec.SetField(usageaccount.FieldLastResetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AdRewardsUsed(); ok {
		_spec.SetField(usageaccount.FieldAdRewardsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdRewardsUsed(); ok {
		_spec.AddField(usageaccount.FieldAdRewardsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usageaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(usageaccount.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(usageaccount.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(usageaccount.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(usageaccount.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(usageaccount.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(usageaccount.FieldFailureCount, field.TypeInt, value)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageAccountUpdateOne is the builder for updating a single UsageAccount entity.
type UsageAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageAccountMutation
}

// SetUserID sets the "user_id" field.
func (_u *UsageAccountUpdateOne) SetUserID(v string) *UsageAccountUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageAccountUpdateOne) SetNillableUserID(v *string) *UsageAccountUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCredits sets the "credits" field.
func (_u *UsageAccountUpdateOne) SetCredits(v int) *UsageAccountUpdateOne {
	_u.mutation.ResetCredits()
	_u.mutation.SetCredits(v)
	return _u
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (_u *UsageAccountUpdateOne) SetNillableCredits(v *int) *UsageAccountUpdateOne {
	if v != nil {
		_u.SetCredits(*v)
	}
	return _u
}

// AddCredits adds value to the "credits" field.
func (_u *UsageAccountUpdateOne) AddCredits(v int) *UsageAccountUpdateOne {
	_u.mutation.AddCredits(v)
	return _u
}

// SetLastResetDate sets the "last_reset_date" field.
func (_u *UsageAccountUpdateOne) SetLastResetDate(v time.Time) *UsageAccountUpdateOne {
	_u.mutation.SetLastResetDate(v)
	return _u
}

// SetNillableLastResetDate sets the "last_reset_date" field if the given value is not nil.
func (_u *UsageAccountUpdateOne) SetNillableLastResetDate(v *time.Time) *UsageAccountUpdateOne {
	if v != nil {
		_u.SetLastResetDate(*v)
	}
	return _u
}

// SetAdRewardsUsed sets the "ad_rewards_used" field.
func (_u *UsageAccountUpdateOne) SetAdRewardsUsed(v int) *UsageAccountUpdateOne {
	_u.mutation.ResetAdRewardsUsed()
	_u.mutation.SetAdRewardsUsed(v)
	return _u
}

// SetNillableAdRewardsUsed sets the "ad_rewards_used" field if the given value is not nil.
func (_u *UsageAccountUpdateOne) SetNillableAdRewardsUsed(v *int) *UsageAccountUpdateOne {
	if v != nil {
		_u.SetAdRewardsUsed(*v)
	}
	return _u
}

// AddAdRewardsUsed adds value to the "ad_rewards_used" field.
func (_u *UsageAccountUpdateOne) AddAdRewardsUsed(v int) *UsageAccountUpdateOne {
	_u.mutation.AddAdRewardsUsed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageAccountUpdateOne) SetUpdatedAt(v time.Time) *UsageAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *UsageAccountUpdateOne) SetTotalAttempts(v int) *UsageAccountUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *UsageAccountUpdateOne) SetNillableTotalAttempts(v *int) *UsageAccountUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *UsageAccountUpdateOne) AddTotalAttempts(v int) *UsageAccountUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *UsageAccountUpdateOne) SetSuccessCount(v int) *UsageAccountUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *UsageAccountUpdateOne) SetNillableSuccessCount(v *int) *UsageAccountUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *UsageAccountUpdateOne) AddSuccessCount(v int) *UsageAccountUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *UsageAccountUpdateOne) SetFailureCount(v int) *UsageAccountUpdateOne {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *UsageAccountUpdateOne) SetNillableFailureCount(v *int) *UsageAccountUpdateOne {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *UsageAccountUpdateOne) AddFailureCount(v int) *UsageAccountUpdateOne {
	_u.mutation.AddFailureCount(v)
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the AnalysisAttempt entity by IDs.
func (_u *UsageAccountUpdateOne) AddAttemptIDs(ids ...uuid.UUID) *UsageAccountUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the AnalysisAttempt entity.
func (_u *UsageAccountUpdateOne) AddAttempts(v ...*AnalysisAttempt) *UsageAccountUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the UsageAccountMutation object of the builder.
func (_u *UsageAccountUpdateOne) Mutation() *UsageAccountMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the AnalysisAttempt entity.
func (_u *UsageAccountUpdateOne) ClearAttempts() *UsageAccountUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to AnalysisAttempt entities by IDs.
func (_u *UsageAccountUpdateOne) RemoveAttemptIDs(ids ...uuid.UUID) *UsageAccountUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to AnalysisAttempt entities.
func (_u *UsageAccountUpdateOne) RemoveAttempts(v ...*AnalysisAttempt) *UsageAccountUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Where appends a list predicates to the UsageAccountUpdate builder.
func (_u *UsageAccountUpdateOne) Where(ps ...predicate.UsageAccount) *UsageAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageAccountUpdateOne) Select(field string, fields ...string) *UsageAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageAccount entity.
func (_u *UsageAccountUpdateOne) Save(ctx context.Context) (*UsageAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageAccountUpdateOne) SaveX(ctx context.Context) *UsageAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usageaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageAccountUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := usageaccount.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UsageAccount.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Credits(); ok {
		if err := usageaccount.CreditsValidator(v); err != nil {
			return &ValidationError{Name: "credits", err: fmt.Errorf(`ent: validator failed for field "UsageAccount.credits": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdRewardsUsed(); ok {
		if err := usageaccount.AdRewardsUsedValidator(v); err != nil {
			return &ValidationError{Name: "ad_rewards_used", err: fmt.Errorf(`ent: validator failed for field "UsageAccount.ad_rewards_used": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageAccountUpdateOne) sqlSave(ctx context.Context) (_node *UsageAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageaccount.Table, usageaccount.Columns, sqlgraph.NewFieldSpec(usageaccount.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usageaccount.FieldID)
		for _, f := range fields {
			if !usageaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usageaccount.FieldID {
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
		_spec.SetField(usageaccount.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Credits(); ok {
		_spec.SetField(usageaccount.FieldCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCredits(); ok {
		_spec.AddField(usageaccount.FieldCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastResetDate(); ok {
		_spec.SetField(usageaccount.FieldLastResetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AdRewardsUsed(); ok {
		_spec.SetField(usageaccount.FieldAdRewardsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdRewardsUsed(); ok {
		_spec.AddField(usageaccount.FieldAdRewardsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usageaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(usageaccount.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(usageaccount.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(usageaccount.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(usageaccount.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(usageaccount.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(usageaccount.FieldFailureCount, field.TypeInt, value)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UsageAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
