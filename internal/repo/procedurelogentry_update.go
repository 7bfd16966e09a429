// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/predicate"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
)

// ProcedureLogEntryUpdate is the builder for updating ProcedureLogEntry entities.
type ProcedureLogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ProcedureLogEntryMutation
}

// Where appends a list predicates to the ProcedureLogEntryUpdate builder.
func (_u *ProcedureLogEntryUpdate) Where(ps ...predicate.ProcedureLogEntry) *ProcedureLogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetComplianceChecked sets the "compliance_checked" field.
func (_u *ProcedureLogEntryUpdate) SetComplianceChecked(v bool) *ProcedureLogEntryUpdate {
	_u.mutation.SetComplianceChecked(v)
	return _u
}

// SetNillableComplianceChecked sets the "compliance_checked" field if the given value is not nil.
func (_u *ProcedureLogEntryUpdate) SetNillableComplianceChecked(v *bool) *ProcedureLogEntryUpdate {
	if v != nil {
		_u.SetComplianceChecked(*v)
	}
	return _u
}

// Mutation returns the ProcedureLogEntryMutation object of the builder.
func (_u *ProcedureLogEntryUpdate) Mutation() *ProcedureLogEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcedureLogEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcedureLogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcedureLogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcedureLogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcedureLogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(procedurelogentry.Table, procedurelogentry.Columns, sqlgraph.NewFieldSpec(procedurelogentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(procedurelogentry.FieldClientID, field.TypeUUID)
	}
	if _u.mutation.ClientNameCleared() {
		_spec.ClearField(procedurelogentry.FieldClientName, field.TypeString)
	}
	if value, ok := _u.mutation.ComplianceChecked(); ok {
		_spec.SetField(procedurelogentry.FieldComplianceChecked, field.TypeBool, value)
	}
	if _u.mutation.TrainingHoursCleared() {
		_spec.ClearField(procedurelogentry.FieldTrainingHours, field.TypeFloat64)
	}
	if _u.mutation.ComplexityLevelCleared() {
		_spec.ClearField(procedurelogentry.FieldComplexityLevel, field.TypeEnum)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{procedurelogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcedureLogEntryUpdateOne is the builder for updating a single ProcedureLogEntry entity.
type ProcedureLogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcedureLogEntryMutation
}

// SetComplianceChecked sets the "compliance_checked" field.
func (_u *ProcedureLogEntryUpdateOne) SetComplianceChecked(v bool) *ProcedureLogEntryUpdateOne {
	_u.mutation.SetComplianceChecked(v)
	return _u
}

// SetNillableComplianceChecked sets the "compliance_checked" field if the given value is not nil.
func (_u *ProcedureLogEntryUpdateOne) SetNillableComplianceChecked(v *bool) *ProcedureLogEntryUpdateOne {
	if v != nil {
		_u.SetComplianceChecked(*v)
	}
	return _u
}

// Mutation returns the ProcedureLogEntryMutation object of the builder.
func (_u *ProcedureLogEntryUpdateOne) Mutation() *ProcedureLogEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcedureLogEntryUpdate builder.
func (_u *ProcedureLogEntryUpdateOne) Where(ps ...predicate.ProcedureLogEntry) *ProcedureLogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcedureLogEntryUpdateOne) Select(field string, fields ...string) *ProcedureLogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcedureLogEntry entity.
func (_u *ProcedureLogEntryUpdateOne) Save(ctx context.Context) (*ProcedureLogEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcedureLogEntryUpdateOne) SaveX(ctx context.Context) *ProcedureLogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcedureLogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcedureLogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcedureLogEntryUpdateOne) sqlSave(ctx context.Context) (_node *ProcedureLogEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(procedurelogentry.Table, procedurelogentry.Columns, sqlgraph.NewFieldSpec(procedurelogentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ProcedureLogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, procedurelogentry.FieldID)
		for _, f := range fields {
			if !procedurelogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != procedurelogentry.FieldID {
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
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(procedurelogentry.FieldClientID, field.TypeUUID)
	}
	if _u.mutation.ClientNameCleared() {
		_spec.ClearField(procedurelogentry.FieldClientName, field.TypeString)
	}
	if value, ok := _u.mutation.ComplianceChecked(); ok {
		_spec.SetField(procedurelogentry.FieldComplianceChecked, field.TypeBool, value)
	}
	if _u.mutation.TrainingHoursCleared() {
		_spec.ClearField(procedurelogentry.FieldTrainingHours, field.TypeFloat64)
	}
	if _u.mutation.ComplexityLevelCleared() {
		_spec.ClearField(procedurelogentry.FieldComplexityLevel, field.TypeEnum)
	}
	_node = &ProcedureLogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{procedurelogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
