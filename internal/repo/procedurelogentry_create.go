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
	"github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
)

// ProcedureLogEntryCreate is the builder for creating a ProcedureLogEntry entity.
type ProcedureLogEntryCreate struct {
	config
	mutation *ProcedureLogEntryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcedureLogEntryCreate) SetCreatedAt(v time.Time) *ProcedureLogEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcedureLogEntryCreate) SetNillableCreatedAt(v *time.Time) *ProcedureLogEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetBookingID sets the "booking_id" field.
func (_c *ProcedureLogEntryCreate) SetBookingID(v uuid.UUID) *ProcedureLogEntryCreate {
	_c.mutation.SetBookingID(v)
	return _c
}

// SetApprenticeID sets the "apprentice_id" field.
func (_c *ProcedureLogEntryCreate) SetApprenticeID(v uuid.UUID) *ProcedureLogEntryCreate {
	_c.mutation.SetApprenticeID(v)
	return _c
}

// SetSupervisorID sets the "supervisor_id" field.
func (_c *ProcedureLogEntryCreate) SetSupervisorID(v uuid.UUID) *ProcedureLogEntryCreate {
	_c.mutation.SetSupervisorID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *ProcedureLogEntryCreate) SetClientID(v uuid.UUID) *ProcedureLogEntryCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_c *ProcedureLogEntryCreate) SetNillableClientID(v *uuid.UUID) *ProcedureLogEntryCreate {
	if v != nil {
		_c.SetClientID(*v)
	}
	return _c
}

// SetClientName sets the "client_name" field.
func (_c *ProcedureLogEntryCreate) SetClientName(v string) *ProcedureLogEntryCreate {
	_c.mutation.SetClientName(v)
	return _c
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_c *ProcedureLogEntryCreate) SetNillableClientName(v *string) *ProcedureLogEntryCreate {
	if v != nil {
		_c.SetClientName(*v)
	}
	return _c
}

// SetProcedureType sets the "procedure_type" field.
func (_c *ProcedureLogEntryCreate) SetProcedureType(v string) *ProcedureLogEntryCreate {
	_c.mutation.SetProcedureType(v)
	return _c
}

// SetPerformedAt sets the "performed_at" field.
func (_c *ProcedureLogEntryCreate) SetPerformedAt(v time.Time) *ProcedureLogEntryCreate {
	_c.mutation.SetPerformedAt(v)
	return _c
}

// SetComplianceChecked sets the "compliance_checked" field.
func (_c *ProcedureLogEntryCreate) SetComplianceChecked(v bool) *ProcedureLogEntryCreate {
	_c.mutation.SetComplianceChecked(v)
	return _c
}

// SetNillableComplianceChecked sets the "compliance_checked" field if the given value is not nil.
func (_c *ProcedureLogEntryCreate) SetNillableComplianceChecked(v *bool) *ProcedureLogEntryCreate {
	if v != nil {
		_c.SetComplianceChecked(*v)
	}
	return _c
}

// SetTrainingHours sets the "training_hours" field.
func (_c *ProcedureLogEntryCreate) SetTrainingHours(v float64) *ProcedureLogEntryCreate {
	_c.mutation.SetTrainingHours(v)
	return _c
}

// SetNillableTrainingHours sets the "training_hours" field if the given value is not nil.
func (_c *ProcedureLogEntryCreate) SetNillableTrainingHours(v *float64) *ProcedureLogEntryCreate {
	if v != nil {
		_c.SetTrainingHours(*v)
	}
	return _c
}

// SetComplexityLevel sets the "complexity_level" field.
func (_c *ProcedureLogEntryCreate) SetComplexityLevel(v procedurelogentry.ComplexityLevel) *ProcedureLogEntryCreate {
	_c.mutation.SetComplexityLevel(v)
	return _c
}

// SetNillableComplexityLevel sets the "complexity_level" field if the given value is not nil.
func (_c *ProcedureLogEntryCreate) SetNillableComplexityLevel(v *procedurelogentry.ComplexityLevel) *ProcedureLogEntryCreate {
	if v != nil {
		_c.SetComplexityLevel(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcedureLogEntryCreate) SetID(v uuid.UUID) *ProcedureLogEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcedureLogEntryCreate) SetNillableID(v *uuid.UUID) *ProcedureLogEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProcedureLogEntryMutation object of the builder.
func (_c *ProcedureLogEntryCreate) Mutation() *ProcedureLogEntryMutation {
	return _c.mutation
}

// Save creates the ProcedureLogEntry in the database.
func (_c *ProcedureLogEntryCreate) Save(ctx context.Context) (*ProcedureLogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcedureLogEntryCreate) SaveX(ctx context.Context) *ProcedureLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcedureLogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcedureLogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcedureLogEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := procedurelogentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ComplianceChecked(); !ok {
		v := procedurelogentry.DefaultComplianceChecked
		_c.mutation.SetComplianceChecked(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := procedurelogentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcedureLogEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ProcedureLogEntry.created_at"`)}
	}
	if _, ok := _c.mutation.BookingID(); !ok {
		return &ValidationError{Name: "booking_id", err: errors.New(`repo: missing required field "ProcedureLogEntry.booking_id"`)}
	}
	if _, ok := _c.mutation.ApprenticeID(); !ok {
		return &ValidationError{Name: "apprentice_id", err: errors.New(`repo: missing required field "ProcedureLogEntry.apprentice_id"`)}
	}
	if _, ok := _c.mutation.SupervisorID(); !ok {
		return &ValidationError{Name: "supervisor_id", err: errors.New(`repo: missing required field "ProcedureLogEntry.supervisor_id"`)}
	}
	if _, ok := _c.mutation.ProcedureType(); !ok {
		return &ValidationError{Name: "procedure_type", err: errors.New(`repo: missing required field "ProcedureLogEntry.procedure_type"`)}
	}
	if v, ok := _c.mutation.ProcedureType(); ok {
		if err := procedurelogentry.ProcedureTypeValidator(v); err != nil {
			return &ValidationError{Name: "procedure_type", err: fmt.Errorf(`repo: validator failed for field "ProcedureLogEntry.procedure_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PerformedAt(); !ok {
		return &ValidationError{Name: "performed_at", err: errors.New(`repo: missing required field "ProcedureLogEntry.performed_at"`)}
	}
	if _, ok := _c.mutation.ComplianceChecked(); !ok {
		return &ValidationError{Name: "compliance_checked", err: errors.New(`repo: missing required field "ProcedureLogEntry.compliance_checked"`)}
	}
	if v, ok := _c.mutation.ComplexityLevel(); ok {
		if err := procedurelogentry.ComplexityLevelValidator(v); err != nil {
			return &ValidationError{Name: "complexity_level", err: fmt.Errorf(`repo: validator failed for field "ProcedureLogEntry.complexity_level": %w`, err)}
		}
	}
	return nil
}

func (_c *ProcedureLogEntryCreate) sqlSave(ctx context.Context) (*ProcedureLogEntry, error) {
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

func (_c *ProcedureLogEntryCreate) createSpec() (*ProcedureLogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcedureLogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(procedurelogentry.Table, sqlgraph.NewFieldSpec(procedurelogentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(procedurelogentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.BookingID(); ok {
		_spec.SetField(procedurelogentry.FieldBookingID, field.TypeUUID, value)
		_node.BookingID = value
	}
	if value, ok := _c.mutation.ApprenticeID(); ok {
		_spec.SetField(procedurelogentry.FieldApprenticeID, field.TypeUUID, value)
		_node.ApprenticeID = value
	}
	if value, ok := _c.mutation.SupervisorID(); ok {
		_spec.SetField(procedurelogentry.FieldSupervisorID, field.TypeUUID, value)
		_node.SupervisorID = value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(procedurelogentry.FieldClientID, field.TypeUUID, value)
		_node.ClientID = &value
	}
	if value, ok := _c.mutation.ClientName(); ok {
		_spec.SetField(procedurelogentry.FieldClientName, field.TypeString, value)
		_node.ClientName = &value
	}
	if value, ok := _c.mutation.ProcedureType(); ok {
		_spec.SetField(procedurelogentry.FieldProcedureType, field.TypeString, value)
		_node.ProcedureType = value
	}
	if value, ok := _c.mutation.PerformedAt(); ok {
		_spec.SetField(procedurelogentry.FieldPerformedAt, field.TypeTime, value)
		_node.PerformedAt = value
	}
	if value, ok := _c.mutation.ComplianceChecked(); ok {
		_spec.SetField(procedurelogentry.FieldComplianceChecked, field.TypeBool, value)
		_node.ComplianceChecked = value
	}
	if value, ok := _c.mutation.TrainingHours(); ok {
		_spec.SetField(procedurelogentry.FieldTrainingHours, field.TypeFloat64, value)
		_node.TrainingHours = &value
	}
	if value, ok := _c.mutation.ComplexityLevel(); ok {
		_spec.SetField(procedurelogentry.FieldComplexityLevel, field.TypeEnum, value)
		_node.ComplexityLevel = &value
	}
	return _node, _spec
}

// ProcedureLogEntryCreateBulk is the builder for creating many ProcedureLogEntry entities in bulk.
type ProcedureLogEntryCreateBulk struct {
	config
	err      error
	builders []*ProcedureLogEntryCreate
}

// Save creates the ProcedureLogEntry entities in the database.
func (_c *ProcedureLogEntryCreateBulk) Save(ctx context.Context) ([]*ProcedureLogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcedureLogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcedureLogEntryMutation)
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
func (_c *ProcedureLogEntryCreateBulk) SaveX(ctx context.Context) []*ProcedureLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcedureLogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcedureLogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
