// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/availabilityblock"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/predicate"
)

// AvailabilityBlockUpdate is the builder for updating AvailabilityBlock entities.
type AvailabilityBlockUpdate struct {
	config
	hooks    []Hook
	mutation *AvailabilityBlockMutation
}

// Where appends a list predicates to the AvailabilityBlockUpdate builder.
func (_u *AvailabilityBlockUpdate) Where(ps ...predicate.AvailabilityBlock) *AvailabilityBlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityBlockUpdate) SetUpdatedAt(v time.Time) *AvailabilityBlockUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupervisorID sets the "supervisor_id" field.
func (_u *AvailabilityBlockUpdate) SetSupervisorID(v uuid.UUID) *AvailabilityBlockUpdate {
	_u.mutation.SetSupervisorID(v)
	return _u
}

// SetNillableSupervisorID sets the "supervisor_id" field if the given value is not nil.
func (_u *AvailabilityBlockUpdate) SetNillableSupervisorID(v *uuid.UUID) *AvailabilityBlockUpdate {
	if v != nil {
		_u.SetSupervisorID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AvailabilityBlockUpdate) SetStartTime(v time.Time) *AvailabilityBlockUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AvailabilityBlockUpdate) SetNillableStartTime(v *time.Time) *AvailabilityBlockUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AvailabilityBlockUpdate) SetEndTime(v time.Time) *AvailabilityBlockUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AvailabilityBlockUpdate) SetNillableEndTime(v *time.Time) *AvailabilityBlockUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *AvailabilityBlockUpdate) SetCapacity(v int) *AvailabilityBlockUpdate {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *AvailabilityBlockUpdate) SetNillableCapacity(v *int) *AvailabilityBlockUpdate {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *AvailabilityBlockUpdate) AddCapacity(v int) *AvailabilityBlockUpdate {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_u *AvailabilityBlockUpdate) SetBufferMinutes(v int) *AvailabilityBlockUpdate {
	_u.mutation.ResetBufferMinutes()
	_u.mutation.SetBufferMinutes(v)
	return _u
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_u *AvailabilityBlockUpdate) SetNillableBufferMinutes(v *int) *AvailabilityBlockUpdate {
	if v != nil {
		_u.SetBufferMinutes(*v)
	}
	return _u
}

// AddBufferMinutes adds value to the "buffer_minutes" field.
func (_u *AvailabilityBlockUpdate) AddBufferMinutes(v int) *AvailabilityBlockUpdate {
	_u.mutation.AddBufferMinutes(v)
	return _u
}

// SetLocation sets the "location" field.
func (_u *AvailabilityBlockUpdate) SetLocation(v string) *AvailabilityBlockUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *AvailabilityBlockUpdate) SetNillableLocation(v *string) *AvailabilityBlockUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *AvailabilityBlockUpdate) ClearLocation() *AvailabilityBlockUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AvailabilityBlockUpdate) SetNotes(v string) *AvailabilityBlockUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AvailabilityBlockUpdate) SetNillableNotes(v *string) *AvailabilityBlockUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AvailabilityBlockUpdate) ClearNotes() *AvailabilityBlockUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetIsPublished sets the "is_published" field.
func (_u *AvailabilityBlockUpdate) SetIsPublished(v bool) *AvailabilityBlockUpdate {
	_u.mutation.SetIsPublished(v)
	return _u
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_u *AvailabilityBlockUpdate) SetNillableIsPublished(v *bool) *AvailabilityBlockUpdate {
	if v != nil {
		_u.SetIsPublished(*v)
	}
	return _u
}

// SetActiveBookings sets the "active_bookings" field.
func (_u *AvailabilityBlockUpdate) SetActiveBookings(v int) *AvailabilityBlockUpdate {
	_u.mutation.ResetActiveBookings()
	_u.mutation.SetActiveBookings(v)
	return _u
}

// SetNillableActiveBookings sets the "active_bookings" field if the given value is not nil.
func (_u *AvailabilityBlockUpdate) SetNillableActiveBookings(v *int) *AvailabilityBlockUpdate {
	if v != nil {
		_u.SetActiveBookings(*v)
	}
	return _u
}

// AddActiveBookings adds value to the "active_bookings" field.
func (_u *AvailabilityBlockUpdate) AddActiveBookings(v int) *AvailabilityBlockUpdate {
	_u.mutation.AddActiveBookings(v)
	return _u
}

// Mutation returns the AvailabilityBlockMutation object of the builder.
func (_u *AvailabilityBlockUpdate) Mutation() *AvailabilityBlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AvailabilityBlockUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityBlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AvailabilityBlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityBlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityBlockUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityBlockUpdate) check() error {
	if v, ok := _u.mutation.Capacity(); ok {
		if err := availabilityblock.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`repo: validator failed for field "AvailabilityBlock.capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BufferMinutes(); ok {
		if err := availabilityblock.BufferMinutesValidator(v); err != nil {
			return &ValidationError{Name: "buffer_minutes", err: fmt.Errorf(`repo: validator failed for field "AvailabilityBlock.buffer_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActiveBookings(); ok {
		if err := availabilityblock.ActiveBookingsValidator(v); err != nil {
			return &ValidationError{Name: "active_bookings", err: fmt.Errorf(`repo: validator failed for field "AvailabilityBlock.active_bookings": %w`, err)}
		}
	}
	return nil
}

func (_u *AvailabilityBlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availabilityblock.Table, availabilityblock.Columns, sqlgraph.NewFieldSpec(availabilityblock.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityblock.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SupervisorID(); ok {
		_spec.SetField(availabilityblock.FieldSupervisorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(availabilityblock.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(availabilityblock.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(availabilityblock.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(availabilityblock.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BufferMinutes(); ok {
		_spec.SetField(availabilityblock.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBufferMinutes(); ok {
		_spec.AddField(availabilityblock.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(availabilityblock.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(availabilityblock.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(availabilityblock.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(availabilityblock.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsPublished(); ok {
		_spec.SetField(availabilityblock.FieldIsPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActiveBookings(); ok {
		_spec.SetField(availabilityblock.FieldActiveBookings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveBookings(); ok {
		_spec.AddField(availabilityblock.FieldActiveBookings, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AvailabilityBlockUpdateOne is the builder for updating a single AvailabilityBlock entity.
type AvailabilityBlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AvailabilityBlockMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityBlockUpdateOne) SetUpdatedAt(v time.Time) *AvailabilityBlockUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupervisorID sets the "supervisor_id" field.
func (_u *AvailabilityBlockUpdateOne) SetSupervisorID(v uuid.UUID) *AvailabilityBlockUpdateOne {
	_u.mutation.SetSupervisorID(v)
	return _u
}

// SetNillableSupervisorID sets the "supervisor_id" field if the given value is not nil.
func (_u *AvailabilityBlockUpdateOne) SetNillableSupervisorID(v *uuid.UUID) *AvailabilityBlockUpdateOne {
	if v != nil {
		_u.SetSupervisorID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AvailabilityBlockUpdateOne) SetStartTime(v time.Time) *AvailabilityBlockUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AvailabilityBlockUpdateOne) SetNillableStartTime(v *time.Time) *AvailabilityBlockUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AvailabilityBlockUpdateOne) SetEndTime(v time.Time) *AvailabilityBlockUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AvailabilityBlockUpdateOne) SetNillableEndTime(v *time.Time) *AvailabilityBlockUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *AvailabilityBlockUpdateOne) SetCapacity(v int) *AvailabilityBlockUpdateOne {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *AvailabilityBlockUpdateOne) SetNillableCapacity(v *int) *AvailabilityBlockUpdateOne {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *AvailabilityBlockUpdateOne) AddCapacity(v int) *AvailabilityBlockUpdateOne {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_u *AvailabilityBlockUpdateOne) SetBufferMinutes(v int) *AvailabilityBlockUpdateOne {
	_u.mutation.ResetBufferMinutes()
	_u.mutation.SetBufferMinutes(v)
	return _u
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_u *AvailabilityBlockUpdateOne) SetNillableBufferMinutes(v *int) *AvailabilityBlockUpdateOne {
	if v != nil {
		_u.SetBufferMinutes(*v)
	}
	return _u
}

// AddBufferMinutes adds value to the "buffer_minutes" field.
func (_u *AvailabilityBlockUpdateOne) AddBufferMinutes(v int) *AvailabilityBlockUpdateOne {
	_u.mutation.AddBufferMinutes(v)
	return _u
}

// SetLocation sets the "location" field.
func (_u *AvailabilityBlockUpdateOne) SetLocation(v string) *AvailabilityBlockUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *AvailabilityBlockUpdateOne) SetNillableLocation(v *string) *AvailabilityBlockUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *AvailabilityBlockUpdateOne) ClearLocation() *AvailabilityBlockUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AvailabilityBlockUpdateOne) SetNotes(v string) *AvailabilityBlockUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AvailabilityBlockUpdateOne) SetNillableNotes(v *string) *AvailabilityBlockUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AvailabilityBlockUpdateOne) ClearNotes() *AvailabilityBlockUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetIsPublished sets the "is_published" field.
func (_u *AvailabilityBlockUpdateOne) SetIsPublished(v bool) *AvailabilityBlockUpdateOne {
	_u.mutation.SetIsPublished(v)
	return _u
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_u *AvailabilityBlockUpdateOne) SetNillableIsPublished(v *bool) *AvailabilityBlockUpdateOne {
	if v != nil {
		_u.SetIsPublished(*v)
	}
	return _u
}

// SetActiveBookings sets the "active_bookings" field.
func (_u *AvailabilityBlockUpdateOne) SetActiveBookings(v int) *AvailabilityBlockUpdateOne {
	_u.mutation.ResetActiveBookings()
	_u.mutation.SetActiveBookings(v)
	return _u
}

// SetNillableActiveBookings sets the "active_bookings" field if the given value is not nil.
func (_u *AvailabilityBlockUpdateOne) SetNillableActiveBookings(v *int) *AvailabilityBlockUpdateOne {
	if v != nil {
		_u.SetActiveBookings(*v)
	}
	return _u
}

// AddActiveBookings adds value to the "active_bookings" field.
func (_u *AvailabilityBlockUpdateOne) AddActiveBookings(v int) *AvailabilityBlockUpdateOne {
	_u.mutation.AddActiveBookings(v)
	return _u
}

// Mutation returns the AvailabilityBlockMutation object of the builder.
func (_u *AvailabilityBlockUpdateOne) Mutation() *AvailabilityBlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the AvailabilityBlockUpdate builder.
func (_u *AvailabilityBlockUpdateOne) Where(ps ...predicate.AvailabilityBlock) *AvailabilityBlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AvailabilityBlockUpdateOne) Select(field string, fields ...string) *AvailabilityBlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AvailabilityBlock entity.
func (_u *AvailabilityBlockUpdateOne) Save(ctx context.Context) (*AvailabilityBlock, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityBlockUpdateOne) SaveX(ctx context.Context) *AvailabilityBlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AvailabilityBlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityBlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityBlockUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityBlockUpdateOne) check() error {
	if v, ok := _u.mutation.Capacity(); ok {
		if err := availabilityblock.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`repo: validator failed for field "AvailabilityBlock.capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BufferMinutes(); ok {
		if err := availabilityblock.BufferMinutesValidator(v); err != nil {
			return &ValidationError{Name: "buffer_minutes", err: fmt.Errorf(`repo: validator failed for field "AvailabilityBlock.buffer_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActiveBookings(); ok {
		if err := availabilityblock.ActiveBookingsValidator(v); err != nil {
			return &ValidationError{Name: "active_bookings", err: fmt.Errorf(`repo: validator failed for field "AvailabilityBlock.active_bookings": %w`, err)}
		}
	}
	return nil
}

func (_u *AvailabilityBlockUpdateOne) sqlSave(ctx context.Context) (_node *AvailabilityBlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availabilityblock.Table, availabilityblock.Columns, sqlgraph.NewFieldSpec(availabilityblock.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AvailabilityBlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availabilityblock.FieldID)
		for _, f := range fields {
			if !availabilityblock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != availabilityblock.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityblock.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SupervisorID(); ok {
		_spec.SetField(availabilityblock.FieldSupervisorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(availabilityblock.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(availabilityblock.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(availabilityblock.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(availabilityblock.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BufferMinutes(); ok {
		_spec.SetField(availabilityblock.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBufferMinutes(); ok {
		_spec.AddField(availabilityblock.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(availabilityblock.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(availabilityblock.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(availabilityblock.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(availabilityblock.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsPublished(); ok {
		_spec.SetField(availabilityblock.FieldIsPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActiveBookings(); ok {
		_spec.SetField(availabilityblock.FieldActiveBookings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveBookings(); ok {
		_spec.AddField(availabilityblock.FieldActiveBookings, field.TypeInt, value)
	}
	_node = &AvailabilityBlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
