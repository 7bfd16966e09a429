// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/availabilityblock"
)

// AvailabilityBlockCreate is the builder for creating a AvailabilityBlock entity.
type AvailabilityBlockCreate struct {
	config
	mutation *AvailabilityBlockMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AvailabilityBlockCreate) SetCreatedAt(v time.Time) *AvailabilityBlockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AvailabilityBlockCreate) SetNillableCreatedAt(v *time.Time) *AvailabilityBlockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AvailabilityBlockCreate) SetUpdatedAt(v time.Time) *AvailabilityBlockCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AvailabilityBlockCreate) SetNillableUpdatedAt(v *time.Time) *AvailabilityBlockCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSupervisorID sets the "supervisor_id" field.
func (_c *AvailabilityBlockCreate) SetSupervisorID(v uuid.UUID) *AvailabilityBlockCreate {
	_c.mutation.SetSupervisorID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AvailabilityBlockCreate) SetStartTime(v time.Time) *AvailabilityBlockCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AvailabilityBlockCreate) SetEndTime(v time.Time) *AvailabilityBlockCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetCapacity sets the "capacity" field.
func (_c *AvailabilityBlockCreate) SetCapacity(v int) *AvailabilityBlockCreate {
	_c.mutation.SetCapacity(v)
	return _c
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_c *AvailabilityBlockCreate) SetNillableCapacity(v *int) *AvailabilityBlockCreate {
	if v != nil {
		_c.SetCapacity(*v)
	}
	return _c
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_c *AvailabilityBlockCreate) SetBufferMinutes(v int) *AvailabilityBlockCreate {
	_c.mutation.SetBufferMinutes(v)
	return _c
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_c *AvailabilityBlockCreate) SetNillableBufferMinutes(v *int) *AvailabilityBlockCreate {
	if v != nil {
		_c.SetBufferMinutes(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *AvailabilityBlockCreate) SetLocation(v string) *AvailabilityBlockCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *AvailabilityBlockCreate) SetNillableLocation(v *string) *AvailabilityBlockCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *AvailabilityBlockCreate) SetNotes(v string) *AvailabilityBlockCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *AvailabilityBlockCreate) SetNillableNotes(v *string) *AvailabilityBlockCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetIsPublished sets the "is_published" field.
func (_c *AvailabilityBlockCreate) SetIsPublished(v bool) *AvailabilityBlockCreate {
	_c.mutation.SetIsPublished(v)
	return _c
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_c *AvailabilityBlockCreate) SetNillableIsPublished(v *bool) *AvailabilityBlockCreate {
	if v != nil {
		_c.SetIsPublished(*v)
	}
	return _c
}

// SetActiveBookings sets the "active_bookings" field.
func (_c *AvailabilityBlockCreate) SetActiveBookings(v int) *AvailabilityBlockCreate {
	_c.mutation.SetActiveBookings(v)
	return _c
}

// SetNillableActiveBookings sets the "active_bookings" field if the given value is not nil.
func (_c *AvailabilityBlockCreate) SetNillableActiveBookings(v *int) *AvailabilityBlockCreate {
	if v != nil {
		_c.SetActiveBookings(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AvailabilityBlockCreate) SetID(v uuid.UUID) *AvailabilityBlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AvailabilityBlockCreate) SetNillableID(v *uuid.UUID) *AvailabilityBlockCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AvailabilityBlockMutation object of the builder.
func (_c *AvailabilityBlockCreate) Mutation() *AvailabilityBlockMutation {
	return _c.mutation
}

// Save creates the AvailabilityBlock in the database.
func (_c *AvailabilityBlockCreate) Save(ctx context.Context) (*AvailabilityBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AvailabilityBlockCreate) SaveX(ctx context.Context) *AvailabilityBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AvailabilityBlockCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := availabilityblock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := availabilityblock.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Capacity(); !ok {
		v := availabilityblock.DefaultCapacity
		_c.mutation.SetCapacity(v)
	}
	if _, ok := _c.mutation.BufferMinutes(); !ok {
		v := availabilityblock.DefaultBufferMinutes
		_c.mutation.SetBufferMinutes(v)
	}
	if _, ok := _c.mutation.IsPublished(); !ok {
		v := availabilityblock.DefaultIsPublished
		_c.mutation.SetIsPublished(v)
	}
	if _, ok := _c.mutation.ActiveBookings(); !ok {
		v := availabilityblock.DefaultActiveBookings
		_c.mutation.SetActiveBookings(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := availabilityblock.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AvailabilityBlockCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AvailabilityBlock.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AvailabilityBlock.updated_at"`)}
	}
	if _, ok := _c.mutation.SupervisorID(); !ok {
		return &ValidationError{Name: "supervisor_id", err: errors.New(`repo: missing required field "AvailabilityBlock.supervisor_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "AvailabilityBlock.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "AvailabilityBlock.end_time"`)}
	}
	if _, ok := _c.mutation.Capacity(); !ok {
		return &ValidationError{Name: "capacity", err: errors.New(`repo: missing required field "AvailabilityBlock.capacity"`)}
	}
	if v, ok := _c.mutation.Capacity(); ok {
		if err := availabilityblock.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`repo: validator failed for field "AvailabilityBlock.capacity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BufferMinutes(); !ok {
		return &ValidationError{Name: "buffer_minutes", err: errors.New(`repo: missing required field "AvailabilityBlock.buffer_minutes"`)}
	}
	if v, ok := _c.mutation.BufferMinutes(); ok {
		if err := availabilityblock.BufferMinutesValidator(v); err != nil {
			return &ValidationError{Name: "buffer_minutes", err: fmt.Errorf(`repo: validator failed for field "AvailabilityBlock.buffer_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPublished(); !ok {
		return &ValidationError{Name: "is_published", err: errors.New(`repo: missing required field "AvailabilityBlock.is_published"`)}
	}
	if _, ok := _c.mutation.ActiveBookings(); !ok {
		return &ValidationError{Name: "active_bookings", err: errors.New(`repo: missing required field "AvailabilityBlock.active_bookings"`)}
	}
	if v, ok := _c.mutation.ActiveBookings(); ok {
		if err := availabilityblock.ActiveBookingsValidator(v); err != nil {
			return &ValidationError{Name: "active_bookings", err: fmt.Errorf(`repo: validator failed for field "AvailabilityBlock.active_bookings": %w`, err)}
		}
	}
	return nil
}

func (_c *AvailabilityBlockCreate) sqlSave(ctx context.Context) (*AvailabilityBlock, error) {
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

func (_c *AvailabilityBlockCreate) createSpec() (*AvailabilityBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &AvailabilityBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(availabilityblock.Table, sqlgraph.NewFieldSpec(availabilityblock.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(availabilityblock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityblock.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SupervisorID(); ok {
		_spec.SetField(availabilityblock.FieldSupervisorID, field.TypeUUID, value)
		_node.SupervisorID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(availabilityblock.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(availabilityblock.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Capacity(); ok {
		_spec.SetField(availabilityblock.FieldCapacity, field.TypeInt, value)
		_node.Capacity = value
	}
	if value, ok := _c.mutation.BufferMinutes(); ok {
		_spec.SetField(availabilityblock.FieldBufferMinutes, field.TypeInt, value)
		_node.BufferMinutes = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(availabilityblock.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(availabilityblock.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.IsPublished(); ok {
		_spec.SetField(availabilityblock.FieldIsPublished, field.TypeBool, value)
		_node.IsPublished = value
	}
	if value, ok := _c.mutation.ActiveBookings(); ok {
		_spec.SetField(availabilityblock.FieldActiveBookings, field.TypeInt, value)
		_node.ActiveBookings = value
	}
	return _node, _spec
}

// AvailabilityBlockCreateBulk is the builder for creating many AvailabilityBlock entities in bulk.
type AvailabilityBlockCreateBulk struct {
	config
	err      error
	builders []*AvailabilityBlockCreate
}

// Save creates the AvailabilityBlock entities in the database.
func (_c *AvailabilityBlockCreateBulk) Save(ctx context.Context) ([]*AvailabilityBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AvailabilityBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AvailabilityBlockMutation)
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
func (_c *AvailabilityBlockCreateBulk) SaveX(ctx context.Context) []*AvailabilityBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
