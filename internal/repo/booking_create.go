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
	"github.com/inkwell-hq/inkwell_backend/internal/repo/booking"
)

// BookingCreate is the builder for creating a Booking entity.
type BookingCreate struct {
	config
	mutation *BookingMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BookingCreate) SetCreatedAt(v time.Time) *BookingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCreatedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BookingCreate) SetUpdatedAt(v time.Time) *BookingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableUpdatedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBlockID sets the "block_id" field.
func (_c *BookingCreate) SetBlockID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetBlockID(v)
	return _c
}

// SetSupervisorID sets the "supervisor_id" field.
func (_c *BookingCreate) SetSupervisorID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetSupervisorID(v)
	return _c
}

// SetApprenticeID sets the "apprentice_id" field.
func (_c *BookingCreate) SetApprenticeID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetApprenticeID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *BookingCreate) SetClientID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableClientID(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetClientID(*v)
	}
	return _c
}

// SetClientName sets the "client_name" field.
func (_c *BookingCreate) SetClientName(v string) *BookingCreate {
	_c.mutation.SetClientName(v)
	return _c
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_c *BookingCreate) SetNillableClientName(v *string) *BookingCreate {
	if v != nil {
		_c.SetClientName(*v)
	}
	return _c
}

// SetClientEmail sets the "client_email" field.
func (_c *BookingCreate) SetClientEmail(v string) *BookingCreate {
	_c.mutation.SetClientEmail(v)
	return _c
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_c *BookingCreate) SetNillableClientEmail(v *string) *BookingCreate {
	if v != nil {
		_c.SetClientEmail(*v)
	}
	return _c
}

// SetClientPhone sets the "client_phone" field.
func (_c *BookingCreate) SetClientPhone(v string) *BookingCreate {
	_c.mutation.SetClientPhone(v)
	return _c
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_c *BookingCreate) SetNillableClientPhone(v *string) *BookingCreate {
	if v != nil {
		_c.SetClientPhone(*v)
	}
	return _c
}

// SetProcedureType sets the "procedure_type" field.
func (_c *BookingCreate) SetProcedureType(v string) *BookingCreate {
	_c.mutation.SetProcedureType(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *BookingCreate) SetNotes(v string) *BookingCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *BookingCreate) SetNillableNotes(v *string) *BookingCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BookingCreate) SetStatus(v booking.Status) *BookingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BookingCreate) SetNillableStatus(v *booking.Status) *BookingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *BookingCreate) SetStartTime(v time.Time) *BookingCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *BookingCreate) SetEndTime(v time.Time) *BookingCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BookingCreate) SetCompletedAt(v time.Time) *BookingCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCompletedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BookingCreate) SetID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableID(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BookingMutation object of the builder.
func (_c *BookingCreate) Mutation() *BookingMutation {
	return _c.mutation
}

// Save creates the Booking in the database.
func (_c *BookingCreate) Save(ctx context.Context) (*Booking, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookingCreate) SaveX(ctx context.Context) *Booking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := booking.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := booking.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := booking.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := booking.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Booking.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Booking.updated_at"`)}
	}
	if _, ok := _c.mutation.BlockID(); !ok {
		return &ValidationError{Name: "block_id", err: errors.New(`repo: missing required field "Booking.block_id"`)}
	}
	if _, ok := _c.mutation.SupervisorID(); !ok {
		return &ValidationError{Name: "supervisor_id", err: errors.New(`repo: missing required field "Booking.supervisor_id"`)}
	}
	if _, ok := _c.mutation.ApprenticeID(); !ok {
		return &ValidationError{Name: "apprentice_id", err: errors.New(`repo: missing required field "Booking.apprentice_id"`)}
	}
	if _, ok := _c.mutation.ProcedureType(); !ok {
		return &ValidationError{Name: "procedure_type", err: errors.New(`repo: missing required field "Booking.procedure_type"`)}
	}
	if v, ok := _c.mutation.ProcedureType(); ok {
		if err := booking.ProcedureTypeValidator(v); err != nil {
			return &ValidationError{Name: "procedure_type", err: fmt.Errorf(`repo: validator failed for field "Booking.procedure_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Booking.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "Booking.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "Booking.end_time"`)}
	}
	return nil
}

func (_c *BookingCreate) sqlSave(ctx context.Context) (*Booking, error) {
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

func (_c *BookingCreate) createSpec() (*Booking, *sqlgraph.CreateSpec) {
	var (
		_node = &Booking{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(booking.Table, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(booking.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.BlockID(); ok {
		_spec.SetField(booking.FieldBlockID, field.TypeUUID, value)
		_node.BlockID = value
	}
	if value, ok := _c.mutation.SupervisorID(); ok {
		_spec.SetField(booking.FieldSupervisorID, field.TypeUUID, value)
		_node.SupervisorID = value
	}
	if value, ok := _c.mutation.ApprenticeID(); ok {
		_spec.SetField(booking.FieldApprenticeID, field.TypeUUID, value)
		_node.ApprenticeID = value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(booking.FieldClientID, field.TypeUUID, value)
		_node.ClientID = &value
	}
	if value, ok := _c.mutation.ClientName(); ok {
		_spec.SetField(booking.FieldClientName, field.TypeString, value)
		_node.ClientName = &value
	}
	if value, ok := _c.mutation.ClientEmail(); ok {
		_spec.SetField(booking.FieldClientEmail, field.TypeString, value)
		_node.ClientEmail = &value
	}
	if value, ok := _c.mutation.ClientPhone(); ok {
		_spec.SetField(booking.FieldClientPhone, field.TypeString, value)
		_node.ClientPhone = &value
	}
	if value, ok := _c.mutation.ProcedureType(); ok {
		_spec.SetField(booking.FieldProcedureType, field.TypeString, value)
		_node.ProcedureType = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(booking.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(booking.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// BookingCreateBulk is the builder for creating many Booking entities in bulk.
type BookingCreateBulk struct {
	config
	err      error
	builders []*BookingCreate
}

// Save creates the Booking entities in the database.
func (_c *BookingCreateBulk) Save(ctx context.Context) ([]*Booking, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Booking, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookingMutation)
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
func (_c *BookingCreateBulk) SaveX(ctx context.Context) []*Booking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
