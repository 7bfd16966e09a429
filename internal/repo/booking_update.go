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
	"github.com/inkwell-hq/inkwell_backend/internal/repo/booking"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/predicate"
)

// BookingUpdate is the builder for updating Booking entities.
type BookingUpdate struct {
	config
	hooks    []Hook
	mutation *BookingMutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdate) Where(ps ...predicate.Booking) *BookingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdate) SetUpdatedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *BookingUpdate) SetClientID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableClientID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// ClearClientID clears the value of the "client_id" field.
func (_u *BookingUpdate) ClearClientID() *BookingUpdate {
	_u.mutation.ClearClientID()
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *BookingUpdate) SetClientName(v string) *BookingUpdate {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableClientName(v *string) *BookingUpdate {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// ClearClientName clears the value of the "client_name" field.
func (_u *BookingUpdate) ClearClientName() *BookingUpdate {
	_u.mutation.ClearClientName()
	return _u
}

// SetClientEmail sets the "client_email" field.
func (_u *BookingUpdate) SetClientEmail(v string) *BookingUpdate {
	_u.mutation.SetClientEmail(v)
	return _u
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableClientEmail(v *string) *BookingUpdate {
	if v != nil {
		_u.SetClientEmail(*v)
	}
	return _u
}

// ClearClientEmail clears the value of the "client_email" field.
func (_u *BookingUpdate) ClearClientEmail() *BookingUpdate {
	_u.mutation.ClearClientEmail()
	return _u
}

// SetClientPhone sets the "client_phone" field.
func (_u *BookingUpdate) SetClientPhone(v string) *BookingUpdate {
	_u.mutation.SetClientPhone(v)
	return _u
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableClientPhone(v *string) *BookingUpdate {
	if v != nil {
		_u.SetClientPhone(*v)
	}
	return _u
}

// ClearClientPhone clears the value of the "client_phone" field.
func (_u *BookingUpdate) ClearClientPhone() *BookingUpdate {
	_u.mutation.ClearClientPhone()
	return _u
}

// SetProcedureType sets the "procedure_type" field.
func (_u *BookingUpdate) SetProcedureType(v string) *BookingUpdate {
	_u.mutation.SetProcedureType(v)
	return _u
}

// SetNillableProcedureType sets the "procedure_type" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableProcedureType(v *string) *BookingUpdate {
	if v != nil {
		_u.SetProcedureType(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BookingUpdate) SetNotes(v string) *BookingUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableNotes(v *string) *BookingUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BookingUpdate) ClearNotes() *BookingUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdate) SetStatus(v booking.Status) *BookingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableStatus(v *booking.Status) *BookingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BookingUpdate) SetCompletedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCompletedAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BookingUpdate) ClearCompletedAt() *BookingUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdate) Mutation() *BookingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdate) check() error {
	if v, ok := _u.mutation.ProcedureType(); ok {
		if err := booking.ProcedureTypeValidator(v); err != nil {
			return &ValidationError{Name: "procedure_type", err: fmt.Errorf(`repo: validator failed for field "Booking.procedure_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(booking.FieldClientID, field.TypeUUID, value)
	}
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(booking.FieldClientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(booking.FieldClientName, field.TypeString, value)
	}
	if _u.mutation.ClientNameCleared() {
		_spec.ClearField(booking.FieldClientName, field.TypeString)
	}
	if value, ok := _u.mutation.ClientEmail(); ok {
		_spec.SetField(booking.FieldClientEmail, field.TypeString, value)
	}
	if _u.mutation.ClientEmailCleared() {
		_spec.ClearField(booking.FieldClientEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ClientPhone(); ok {
		_spec.SetField(booking.FieldClientPhone, field.TypeString, value)
	}
	if _u.mutation.ClientPhoneCleared() {
		_spec.ClearField(booking.FieldClientPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ProcedureType(); ok {
		_spec.SetField(booking.FieldProcedureType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(booking.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(booking.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookingUpdateOne is the builder for updating a single Booking entity.
type BookingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdateOne) SetUpdatedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *BookingUpdateOne) SetClientID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableClientID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// ClearClientID clears the value of the "client_id" field.
func (_u *BookingUpdateOne) ClearClientID() *BookingUpdateOne {
	_u.mutation.ClearClientID()
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *BookingUpdateOne) SetClientName(v string) *BookingUpdateOne {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableClientName(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// ClearClientName clears the value of the "client_name" field.
func (_u *BookingUpdateOne) ClearClientName() *BookingUpdateOne {
	_u.mutation.ClearClientName()
	return _u
}

// SetClientEmail sets the "client_email" field.
func (_u *BookingUpdateOne) SetClientEmail(v string) *BookingUpdateOne {
	_u.mutation.SetClientEmail(v)
	return _u
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableClientEmail(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetClientEmail(*v)
	}
	return _u
}

// ClearClientEmail clears the value of the "client_email" field.
func (_u *BookingUpdateOne) ClearClientEmail() *BookingUpdateOne {
	_u.mutation.ClearClientEmail()
	return _u
}

// SetClientPhone sets the "client_phone" field.
func (_u *BookingUpdateOne) SetClientPhone(v string) *BookingUpdateOne {
	_u.mutation.SetClientPhone(v)
	return _u
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableClientPhone(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetClientPhone(*v)
	}
	return _u
}

// ClearClientPhone clears the value of the "client_phone" field.
func (_u *BookingUpdateOne) ClearClientPhone() *BookingUpdateOne {
	_u.mutation.ClearClientPhone()
	return _u
}

// SetProcedureType sets the "procedure_type" field.
func (_u *BookingUpdateOne) SetProcedureType(v string) *BookingUpdateOne {
	_u.mutation.SetProcedureType(v)
	return _u
}

// SetNillableProcedureType sets the "procedure_type" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableProcedureType(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetProcedureType(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BookingUpdateOne) SetNotes(v string) *BookingUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableNotes(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BookingUpdateOne) ClearNotes() *BookingUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdateOne) SetStatus(v booking.Status) *BookingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableStatus(v *booking.Status) *BookingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BookingUpdateOne) SetCompletedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCompletedAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BookingUpdateOne) ClearCompletedAt() *BookingUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdateOne) Mutation() *BookingMutation {
	return _u.mutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdateOne) Where(ps ...predicate.Booking) *BookingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookingUpdateOne) Select(field string, fields ...string) *BookingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Booking entity.
func (_u *BookingUpdateOne) Save(ctx context.Context) (*Booking, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdateOne) SaveX(ctx context.Context) *Booking {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdateOne) check() error {
	if v, ok := _u.mutation.ProcedureType(); ok {
		if err := booking.ProcedureTypeValidator(v); err != nil {
			return &ValidationError{Name: "procedure_type", err: fmt.Errorf(`repo: validator failed for field "Booking.procedure_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdateOne) sqlSave(ctx context.Context) (_node *Booking, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Booking.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, booking.FieldID)
		for _, f := range fields {
			if !booking.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != booking.FieldID {
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
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(booking.FieldClientID, field.TypeUUID, value)
	}
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(booking.FieldClientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(booking.FieldClientName, field.TypeString, value)
	}
	if _u.mutation.ClientNameCleared() {
		_spec.ClearField(booking.FieldClientName, field.TypeString)
	}
	if value, ok := _u.mutation.ClientEmail(); ok {
		_spec.SetField(booking.FieldClientEmail, field.TypeString, value)
	}
	if _u.mutation.ClientEmailCleared() {
		_spec.ClearField(booking.FieldClientEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ClientPhone(); ok {
		_spec.SetField(booking.FieldClientPhone, field.TypeString, value)
	}
	if _u.mutation.ClientPhoneCleared() {
		_spec.ClearField(booking.FieldClientPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ProcedureType(); ok {
		_spec.SetField(booking.FieldProcedureType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(booking.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(booking.FieldCompletedAt, field.TypeTime)
	}
	_node = &Booking{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
