// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/knitworks/pattern-analyzer/gen/ent/analysisattempt"
	"github.com/knitworks/pattern-analyzer/gen/ent/predicate"
)

// AnalysisAttemptDelete is the builder for deleting a AnalysisAttempt entity.
type AnalysisAttemptDelete struct {
	config
	hooks    []Hook
	mutation *AnalysisAttemptMutation
}

// Where appends a list predicates to the AnalysisAttemptDelete builder.
func (_d *AnalysisAttemptDelete) Where(ps ...predicate.AnalysisAttempt) *AnalysisAttemptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalysisAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisAttemptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalysisAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analysisattempt.Table, sqlgraph.NewFieldSpec(analysisattempt.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnalysisAttemptDeleteOne is the builder for deleting a single AnalysisAttempt entity.
type AnalysisAttemptDeleteOne struct {
	_d *AnalysisAttemptDelete
}

// Where appends a list predicates to the AnalysisAttemptDelete builder.
func (_d *AnalysisAttemptDeleteOne) Where(ps ...predicate.AnalysisAttempt) *AnalysisAttemptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalysisAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analysisattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
