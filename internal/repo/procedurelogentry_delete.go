// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/predicate"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
)

// ProcedureLogEntryDelete is the builder for deleting a ProcedureLogEntry entity.
type ProcedureLogEntryDelete struct {
	config
	hooks    []Hook
	mutation *ProcedureLogEntryMutation
}

// Where appends a list predicates to the ProcedureLogEntryDelete builder.
func (_d *ProcedureLogEntryDelete) Where(ps ...predicate.ProcedureLogEntry) *ProcedureLogEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProcedureLogEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcedureLogEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProcedureLogEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(procedurelogentry.Table, sqlgraph.NewFieldSpec(procedurelogentry.FieldID, field.TypeUUID))
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

// ProcedureLogEntryDeleteOne is the builder for deleting a single ProcedureLogEntry entity.
type ProcedureLogEntryDeleteOne struct {
	_d *ProcedureLogEntryDelete
}

// Where appends a list predicates to the ProcedureLogEntryDelete builder.
func (_d *ProcedureLogEntryDeleteOne) Where(ps ...predicate.ProcedureLogEntry) *ProcedureLogEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProcedureLogEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{procedurelogentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcedureLogEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
