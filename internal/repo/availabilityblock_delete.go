// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/availabilityblock"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/predicate"
)

// AvailabilityBlockDelete is the builder for deleting a AvailabilityBlock entity.
type AvailabilityBlockDelete struct {
	config
	hooks    []Hook
	mutation *AvailabilityBlockMutation
}

// Where appends a list predicates to the AvailabilityBlockDelete builder.
func (_d *AvailabilityBlockDelete) Where(ps ...predicate.AvailabilityBlock) *AvailabilityBlockDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AvailabilityBlockDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilityBlockDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AvailabilityBlockDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(availabilityblock.Table, sqlgraph.NewFieldSpec(availabilityblock.FieldID, field.TypeUUID))
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

// AvailabilityBlockDeleteOne is the builder for deleting a single AvailabilityBlock entity.
type AvailabilityBlockDeleteOne struct {
	_d *AvailabilityBlockDelete
}

// Where appends a list predicates to the AvailabilityBlockDelete builder.
func (_d *AvailabilityBlockDeleteOne) Where(ps ...predicate.AvailabilityBlock) *AvailabilityBlockDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AvailabilityBlockDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{availabilityblock.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilityBlockDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
