// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/availabilityblock"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/booking"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/predicate"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAvailabilityBlock = "AvailabilityBlock"
	TypeBooking           = "Booking"
	TypeProcedureLogEntry = "ProcedureLogEntry"
)

// AvailabilityBlockMutation represents an operation that mutates the AvailabilityBlock nodes in the graph.
type AvailabilityBlockMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	supervisor_id      *uuid.UUID
	start_time         *time.Time
	end_time           *time.Time
	capacity           *int
	addcapacity        *int
	buffer_minutes     *int
	addbuffer_minutes  *int
	location           *string
	notes              *string
	is_published       *bool
	active_bookings    *int
	addactive_bookings *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AvailabilityBlock, error)
	predicates         []predicate.AvailabilityBlock
}

var _ ent.Mutation = (*AvailabilityBlockMutation)(nil)

// availabilityblockOption allows management of the mutation configuration using functional options.
type availabilityblockOption func(*AvailabilityBlockMutation)

// newAvailabilityBlockMutation creates new mutation for the AvailabilityBlock entity.
func newAvailabilityBlockMutation(c config, op Op, opts ...availabilityblockOption) *AvailabilityBlockMutation {
	m := &AvailabilityBlockMutation{
		config:        c,
		op:            op,
		typ:           TypeAvailabilityBlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAvailabilityBlockID sets the ID field of the mutation.
func withAvailabilityBlockID(id uuid.UUID) availabilityblockOption {
	return func(m *AvailabilityBlockMutation) {
		var (
			err   error
			once  sync.Once
			value *AvailabilityBlock
		)
		m.oldValue = func(ctx context.Context) (*AvailabilityBlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AvailabilityBlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAvailabilityBlock sets the old AvailabilityBlock of the mutation.
func withAvailabilityBlock(node *AvailabilityBlock) availabilityblockOption {
	return func(m *AvailabilityBlockMutation) {
		m.oldValue = func(context.Context) (*AvailabilityBlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AvailabilityBlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AvailabilityBlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AvailabilityBlock entities.
func (m *AvailabilityBlockMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AvailabilityBlockMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AvailabilityBlockMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AvailabilityBlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AvailabilityBlockMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AvailabilityBlockMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AvailabilityBlock entity.
// If the AvailabilityBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityBlockMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AvailabilityBlockMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AvailabilityBlockMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AvailabilityBlockMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AvailabilityBlock entity.
// If the AvailabilityBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityBlockMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AvailabilityBlockMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSupervisorID sets the "supervisor_id" field.
func (m *AvailabilityBlockMutation) SetSupervisorID(u uuid.UUID) {
	m.supervisor_id = &u
}

// SupervisorID returns the value of the "supervisor_id" field in the mutation.
func (m *AvailabilityBlockMutation) SupervisorID() (r uuid.UUID, exists bool) {
	v := m.supervisor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupervisorID returns the old "supervisor_id" field's value of the AvailabilityBlock entity.
// If the AvailabilityBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityBlockMutation) OldSupervisorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupervisorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupervisorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupervisorID: %w", err)
	}
	return oldValue.SupervisorID, nil
}

// ResetSupervisorID resets all changes to the "supervisor_id" field.
func (m *AvailabilityBlockMutation) ResetSupervisorID() {
	m.supervisor_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *AvailabilityBlockMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *AvailabilityBlockMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the AvailabilityBlock entity.
// If the AvailabilityBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityBlockMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *AvailabilityBlockMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *AvailabilityBlockMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *AvailabilityBlockMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the AvailabilityBlock entity.
// If the AvailabilityBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityBlockMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *AvailabilityBlockMutation) ResetEndTime() {
	m.end_time = nil
}

// SetCapacity sets the "capacity" field.
func (m *AvailabilityBlockMutation) SetCapacity(i int) {
	m.capacity = &i
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *AvailabilityBlockMutation) Capacity() (r int, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the AvailabilityBlock entity.
// If the AvailabilityBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityBlockMutation) OldCapacity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds i to the "capacity" field.
func (m *AvailabilityBlockMutation) AddCapacity(i int) {
	if m.addcapacity != nil {
		*m.addcapacity += i
	} else {
		m.addcapacity = &i
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *AvailabilityBlockMutation) AddedCapacity() (r int, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *AvailabilityBlockMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (m *AvailabilityBlockMutation) SetBufferMinutes(i int) {
	m.buffer_minutes = &i
	m.addbuffer_minutes = nil
}

// BufferMinutes returns the value of the "buffer_minutes" field in the mutation.
func (m *AvailabilityBlockMutation) BufferMinutes() (r int, exists bool) {
	v := m.buffer_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldBufferMinutes returns the old "buffer_minutes" field's value of the AvailabilityBlock entity.
// If the AvailabilityBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityBlockMutation) OldBufferMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBufferMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBufferMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBufferMinutes: %w", err)
	}
	return oldValue.BufferMinutes, nil
}

// AddBufferMinutes adds i to the "buffer_minutes" field.
func (m *AvailabilityBlockMutation) AddBufferMinutes(i int) {
	if m.addbuffer_minutes != nil {
		*m.addbuffer_minutes += i
	} else {
		m.addbuffer_minutes = &i
	}
}

// AddedBufferMinutes returns the value that was added to the "buffer_minutes" field in this mutation.
func (m *AvailabilityBlockMutation) AddedBufferMinutes() (r int, exists bool) {
	v := m.addbuffer_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetBufferMinutes resets all changes to the "buffer_minutes" field.
func (m *AvailabilityBlockMutation) ResetBufferMinutes() {
	m.buffer_minutes = nil
	m.addbuffer_minutes = nil
}

// SetLocation sets the "location" field.
func (m *AvailabilityBlockMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *AvailabilityBlockMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the AvailabilityBlock entity.
// If the AvailabilityBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityBlockMutation) OldLocation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *AvailabilityBlockMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[availabilityblock.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *AvailabilityBlockMutation) LocationCleared() bool {
	_, ok := m.clearedFields[availabilityblock.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *AvailabilityBlockMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, availabilityblock.FieldLocation)
}

// SetNotes sets the "notes" field.
func (m *AvailabilityBlockMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *AvailabilityBlockMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the AvailabilityBlock entity.
// If the AvailabilityBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityBlockMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *AvailabilityBlockMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[availabilityblock.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *AvailabilityBlockMutation) NotesCleared() bool {
	_, ok := m.clearedFields[availabilityblock.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *AvailabilityBlockMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, availabilityblock.FieldNotes)
}

// SetIsPublished sets the "is_published" field.
func (m *AvailabilityBlockMutation) SetIsPublished(b bool) {
	m.is_published = &b
}

// IsPublished returns the value of the "is_published" field in the mutation.
func (m *AvailabilityBlockMutation) IsPublished() (r bool, exists bool) {
	v := m.is_published
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublished returns the old "is_published" field's value of the AvailabilityBlock entity.
// If the AvailabilityBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityBlockMutation) OldIsPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublished: %w", err)
	}
	return oldValue.IsPublished, nil
}

// ResetIsPublished resets all changes to the "is_published" field.
func (m *AvailabilityBlockMutation) ResetIsPublished() {
	m.is_published = nil
}

// SetActiveBookings sets the "active_bookings" field.
func (m *AvailabilityBlockMutation) SetActiveBookings(i int) {
	m.active_bookings = &i
	m.addactive_bookings = nil
}

// ActiveBookings returns the value of the "active_bookings" field in the mutation.
func (m *AvailabilityBlockMutation) ActiveBookings() (r int, exists bool) {
	v := m.active_bookings
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveBookings returns the old "active_bookings" field's value of the AvailabilityBlock entity.
// If the AvailabilityBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityBlockMutation) OldActiveBookings(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveBookings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveBookings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveBookings: %w", err)
	}
	return oldValue.ActiveBookings, nil
}

// AddActiveBookings adds i to the "active_bookings" field.
func (m *AvailabilityBlockMutation) AddActiveBookings(i int) {
	if m.addactive_bookings != nil {
		*m.addactive_bookings += i
	} else {
		m.addactive_bookings = &i
	}
}

// AddedActiveBookings returns the value that was added to the "active_bookings" field in this mutation.
func (m *AvailabilityBlockMutation) AddedActiveBookings() (r int, exists bool) {
	v := m.addactive_bookings
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveBookings resets all changes to the "active_bookings" field.
func (m *AvailabilityBlockMutation) ResetActiveBookings() {
	m.active_bookings = nil
	m.addactive_bookings = nil
}

// Where appends a list predicates to the AvailabilityBlockMutation builder.
func (m *AvailabilityBlockMutation) Where(ps ...predicate.AvailabilityBlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AvailabilityBlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AvailabilityBlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AvailabilityBlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AvailabilityBlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AvailabilityBlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AvailabilityBlock).
func (m *AvailabilityBlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AvailabilityBlockMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, availabilityblock.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, availabilityblock.FieldUpdatedAt)
	}
	if m.supervisor_id != nil {
		fields = append(fields, availabilityblock.FieldSupervisorID)
	}
	if m.start_time != nil {
		fields = append(fields, availabilityblock.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, availabilityblock.FieldEndTime)
	}
	if m.capacity != nil {
		fields = append(fields, availabilityblock.FieldCapacity)
	}
	if m.buffer_minutes != nil {
		fields = append(fields, availabilityblock.FieldBufferMinutes)
	}
	if m.location != nil {
		fields = append(fields, availabilityblock.FieldLocation)
	}
	if m.notes != nil {
		fields = append(fields, availabilityblock.FieldNotes)
	}
	if m.is_published != nil {
		fields = append(fields, availabilityblock.FieldIsPublished)
	}
	if m.active_bookings != nil {
		fields = append(fields, availabilityblock.FieldActiveBookings)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AvailabilityBlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case availabilityblock.FieldCreatedAt:
		return m.CreatedAt()
	case availabilityblock.FieldUpdatedAt:
		return m.UpdatedAt()
	case availabilityblock.FieldSupervisorID:
		return m.SupervisorID()
	case availabilityblock.FieldStartTime:
		return m.StartTime()
	case availabilityblock.FieldEndTime:
		return m.EndTime()
	case availabilityblock.FieldCapacity:
		return m.Capacity()
	case availabilityblock.FieldBufferMinutes:
		return m.BufferMinutes()
	case availabilityblock.FieldLocation:
		return m.Location()
	case availabilityblock.FieldNotes:
		return m.Notes()
	case availabilityblock.FieldIsPublished:
		return m.IsPublished()
	case availabilityblock.FieldActiveBookings:
		return m.ActiveBookings()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AvailabilityBlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case availabilityblock.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case availabilityblock.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case availabilityblock.FieldSupervisorID:
		return m.OldSupervisorID(ctx)
	case availabilityblock.FieldStartTime:
		return m.OldStartTime(ctx)
	case availabilityblock.FieldEndTime:
		return m.OldEndTime(ctx)
	case availabilityblock.FieldCapacity:
		return m.OldCapacity(ctx)
	case availabilityblock.FieldBufferMinutes:
		return m.OldBufferMinutes(ctx)
	case availabilityblock.FieldLocation:
		return m.OldLocation(ctx)
	case availabilityblock.FieldNotes:
		return m.OldNotes(ctx)
	case availabilityblock.FieldIsPublished:
		return m.OldIsPublished(ctx)
	case availabilityblock.FieldActiveBookings:
		return m.OldActiveBookings(ctx)
	}
	return nil, fmt.Errorf("unknown AvailabilityBlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AvailabilityBlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case availabilityblock.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case availabilityblock.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case availabilityblock.FieldSupervisorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupervisorID(v)
		return nil
	case availabilityblock.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case availabilityblock.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case availabilityblock.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	case availabilityblock.FieldBufferMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBufferMinutes(v)
		return nil
	case availabilityblock.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case availabilityblock.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case availabilityblock.FieldIsPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublished(v)
		return nil
	case availabilityblock.FieldActiveBookings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveBookings(v)
		return nil
	}
	return fmt.Errorf("unknown AvailabilityBlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AvailabilityBlockMutation) AddedFields() []string {
	var fields []string
	if m.addcapacity != nil {
		fields = append(fields, availabilityblock.FieldCapacity)
	}
	if m.addbuffer_minutes != nil {
		fields = append(fields, availabilityblock.FieldBufferMinutes)
	}
	if m.addactive_bookings != nil {
		fields = append(fields, availabilityblock.FieldActiveBookings)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AvailabilityBlockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case availabilityblock.FieldCapacity:
		return m.AddedCapacity()
	case availabilityblock.FieldBufferMinutes:
		return m.AddedBufferMinutes()
	case availabilityblock.FieldActiveBookings:
		return m.AddedActiveBookings()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AvailabilityBlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case availabilityblock.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	case availabilityblock.FieldBufferMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBufferMinutes(v)
		return nil
	case availabilityblock.FieldActiveBookings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveBookings(v)
		return nil
	}
	return fmt.Errorf("unknown AvailabilityBlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AvailabilityBlockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(availabilityblock.FieldLocation) {
		fields = append(fields, availabilityblock.FieldLocation)
	}
	if m.FieldCleared(availabilityblock.FieldNotes) {
		fields = append(fields, availabilityblock.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AvailabilityBlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AvailabilityBlockMutation) ClearField(name string) error {
	switch name {
	case availabilityblock.FieldLocation:
		m.ClearLocation()
		return nil
	case availabilityblock.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown AvailabilityBlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AvailabilityBlockMutation) ResetField(name string) error {
	switch name {
	case availabilityblock.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case availabilityblock.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case availabilityblock.FieldSupervisorID:
		m.ResetSupervisorID()
		return nil
	case availabilityblock.FieldStartTime:
		m.ResetStartTime()
		return nil
	case availabilityblock.FieldEndTime:
		m.ResetEndTime()
		return nil
	case availabilityblock.FieldCapacity:
		m.ResetCapacity()
		return nil
	case availabilityblock.FieldBufferMinutes:
		m.ResetBufferMinutes()
		return nil
	case availabilityblock.FieldLocation:
		m.ResetLocation()
		return nil
	case availabilityblock.FieldNotes:
		m.ResetNotes()
		return nil
	case availabilityblock.FieldIsPublished:
		m.ResetIsPublished()
		return nil
	case availabilityblock.FieldActiveBookings:
		m.ResetActiveBookings()
		return nil
	}
	return fmt.Errorf("unknown AvailabilityBlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AvailabilityBlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AvailabilityBlockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AvailabilityBlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AvailabilityBlockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AvailabilityBlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AvailabilityBlockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AvailabilityBlockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AvailabilityBlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AvailabilityBlockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AvailabilityBlock edge %s", name)
}

// BookingMutation represents an operation that mutates the Booking nodes in the graph.
type BookingMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	block_id       *uuid.UUID
	supervisor_id  *uuid.UUID
	apprentice_id  *uuid.UUID
	client_id      *uuid.UUID
	client_name    *string
	client_email   *string
	client_phone   *string
	procedure_type *string
	notes          *string
	status         *booking.Status
	start_time     *time.Time
	end_time       *time.Time
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Booking, error)
	predicates     []predicate.Booking
}

var _ ent.Mutation = (*BookingMutation)(nil)

// bookingOption allows management of the mutation configuration using functional options.
type bookingOption func(*BookingMutation)

// newBookingMutation creates new mutation for the Booking entity.
func newBookingMutation(c config, op Op, opts ...bookingOption) *BookingMutation {
	m := &BookingMutation{
		config:        c,
		op:            op,
		typ:           TypeBooking,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBookingID sets the ID field of the mutation.
func withBookingID(id uuid.UUID) bookingOption {
	return func(m *BookingMutation) {
		var (
			err   error
			once  sync.Once
			value *Booking
		)
		m.oldValue = func(ctx context.Context) (*Booking, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Booking.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBooking sets the old Booking of the mutation.
func withBooking(node *Booking) bookingOption {
	return func(m *BookingMutation) {
		m.oldValue = func(context.Context) (*Booking, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BookingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BookingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Booking entities.
func (m *BookingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BookingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BookingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Booking.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BookingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BookingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BookingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BookingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BookingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BookingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetBlockID sets the "block_id" field.
func (m *BookingMutation) SetBlockID(u uuid.UUID) {
	m.block_id = &u
}

// BlockID returns the value of the "block_id" field in the mutation.
func (m *BookingMutation) BlockID() (r uuid.UUID, exists bool) {
	v := m.block_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockID returns the old "block_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldBlockID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockID: %w", err)
	}
	return oldValue.BlockID, nil
}

// ResetBlockID resets all changes to the "block_id" field.
func (m *BookingMutation) ResetBlockID() {
	m.block_id = nil
}

// SetSupervisorID sets the "supervisor_id" field.
func (m *BookingMutation) SetSupervisorID(u uuid.UUID) {
	m.supervisor_id = &u
}

// SupervisorID returns the value of the "supervisor_id" field in the mutation.
func (m *BookingMutation) SupervisorID() (r uuid.UUID, exists bool) {
	v := m.supervisor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupervisorID returns the old "supervisor_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldSupervisorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupervisorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupervisorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupervisorID: %w", err)
	}
	return oldValue.SupervisorID, nil
}

// ResetSupervisorID resets all changes to the "supervisor_id" field.
func (m *BookingMutation) ResetSupervisorID() {
	m.supervisor_id = nil
}

// SetApprenticeID sets the "apprentice_id" field.
func (m *BookingMutation) SetApprenticeID(u uuid.UUID) {
	m.apprentice_id = &u
}

// ApprenticeID returns the value of the "apprentice_id" field in the mutation.
func (m *BookingMutation) ApprenticeID() (r uuid.UUID, exists bool) {
	v := m.apprentice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApprenticeID returns the old "apprentice_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldApprenticeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprenticeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprenticeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprenticeID: %w", err)
	}
	return oldValue.ApprenticeID, nil
}

// ResetApprenticeID resets all changes to the "apprentice_id" field.
func (m *BookingMutation) ResetApprenticeID() {
	m.apprentice_id = nil
}

// SetClientID sets the "client_id" field.
func (m *BookingMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *BookingMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldClientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ClearClientID clears the value of the "client_id" field.
func (m *BookingMutation) ClearClientID() {
	m.client_id = nil
	m.clearedFields[booking.FieldClientID] = struct{}{}
}

// ClientIDCleared returns if the "client_id" field was cleared in this mutation.
func (m *BookingMutation) ClientIDCleared() bool {
	_, ok := m.clearedFields[booking.FieldClientID]
	return ok
}

// ResetClientID resets all changes to the "client_id" field.
func (m *BookingMutation) ResetClientID() {
	m.client_id = nil
	delete(m.clearedFields, booking.FieldClientID)
}

// SetClientName sets the "client_name" field.
func (m *BookingMutation) SetClientName(s string) {
	m.client_name = &s
}

// ClientName returns the value of the "client_name" field in the mutation.
func (m *BookingMutation) ClientName() (r string, exists bool) {
	v := m.client_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClientName returns the old "client_name" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldClientName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientName: %w", err)
	}
	return oldValue.ClientName, nil
}

// ClearClientName clears the value of the "client_name" field.
func (m *BookingMutation) ClearClientName() {
	m.client_name = nil
	m.clearedFields[booking.FieldClientName] = struct{}{}
}

// ClientNameCleared returns if the "client_name" field was cleared in this mutation.
func (m *BookingMutation) ClientNameCleared() bool {
	_, ok := m.clearedFields[booking.FieldClientName]
	return ok
}

// ResetClientName resets all changes to the "client_name" field.
func (m *BookingMutation) ResetClientName() {
	m.client_name = nil
	delete(m.clearedFields, booking.FieldClientName)
}

// SetClientEmail sets the "client_email" field.
func (m *BookingMutation) SetClientEmail(s string) {
	m.client_email = &s
}

// ClientEmail returns the value of the "client_email" field in the mutation.
func (m *BookingMutation) ClientEmail() (r string, exists bool) {
	v := m.client_email
	if v == nil {
		return
	}
	return *v, true
}

// OldClientEmail returns the old "client_email" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldClientEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientEmail: %w", err)
	}
	return oldValue.ClientEmail, nil
}

// ClearClientEmail clears the value of the "client_email" field.
func (m *BookingMutation) ClearClientEmail() {
	m.client_email = nil
	m.clearedFields[booking.FieldClientEmail] = struct{}{}
}

// ClientEmailCleared returns if the "client_email" field was cleared in this mutation.
func (m *BookingMutation) ClientEmailCleared() bool {
	_, ok := m.clearedFields[booking.FieldClientEmail]
	return ok
}

// ResetClientEmail resets all changes to the "client_email" field.
func (m *BookingMutation) ResetClientEmail() {
	m.client_email = nil
	delete(m.clearedFields, booking.FieldClientEmail)
}

// SetClientPhone sets the "client_phone" field.
func (m *BookingMutation) SetClientPhone(s string) {
	m.client_phone = &s
}

// ClientPhone returns the value of the "client_phone" field in the mutation.
func (m *BookingMutation) ClientPhone() (r string, exists bool) {
	v := m.client_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldClientPhone returns the old "client_phone" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldClientPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientPhone: %w", err)
	}
	return oldValue.ClientPhone, nil
}

// ClearClientPhone clears the value of the "client_phone" field.
func (m *BookingMutation) ClearClientPhone() {
	m.client_phone = nil
	m.clearedFields[booking.FieldClientPhone] = struct{}{}
}

// ClientPhoneCleared returns if the "client_phone" field was cleared in this mutation.
func (m *BookingMutation) ClientPhoneCleared() bool {
	_, ok := m.clearedFields[booking.FieldClientPhone]
	return ok
}

// ResetClientPhone resets all changes to the "client_phone" field.
func (m *BookingMutation) ResetClientPhone() {
	m.client_phone = nil
	delete(m.clearedFields, booking.FieldClientPhone)
}

// SetProcedureType sets the "procedure_type" field.
func (m *BookingMutation) SetProcedureType(s string) {
	m.procedure_type = &s
}

// ProcedureType returns the value of the "procedure_type" field in the mutation.
func (m *BookingMutation) ProcedureType() (r string, exists bool) {
	v := m.procedure_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProcedureType returns the old "procedure_type" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldProcedureType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcedureType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcedureType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcedureType: %w", err)
	}
	return oldValue.ProcedureType, nil
}

// ResetProcedureType resets all changes to the "procedure_type" field.
func (m *BookingMutation) ResetProcedureType() {
	m.procedure_type = nil
}

// SetNotes sets the "notes" field.
func (m *BookingMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *BookingMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *BookingMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[booking.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *BookingMutation) NotesCleared() bool {
	_, ok := m.clearedFields[booking.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *BookingMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, booking.FieldNotes)
}

// SetStatus sets the "status" field.
func (m *BookingMutation) SetStatus(b booking.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BookingMutation) Status() (r booking.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldStatus(ctx context.Context) (v booking.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BookingMutation) ResetStatus() {
	m.status = nil
}

// SetStartTime sets the "start_time" field.
func (m *BookingMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *BookingMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *BookingMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *BookingMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *BookingMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *BookingMutation) ResetEndTime() {
	m.end_time = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *BookingMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *BookingMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *BookingMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[booking.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *BookingMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[booking.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *BookingMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, booking.FieldCompletedAt)
}

// Where appends a list predicates to the BookingMutation builder.
func (m *BookingMutation) Where(ps ...predicate.Booking) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BookingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BookingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Booking, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BookingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BookingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Booking).
func (m *BookingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BookingMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, booking.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, booking.FieldUpdatedAt)
	}
	if m.block_id != nil {
		fields = append(fields, booking.FieldBlockID)
	}
	if m.supervisor_id != nil {
		fields = append(fields, booking.FieldSupervisorID)
	}
	if m.apprentice_id != nil {
		fields = append(fields, booking.FieldApprenticeID)
	}
	if m.client_id != nil {
		fields = append(fields, booking.FieldClientID)
	}
	if m.client_name != nil {
		fields = append(fields, booking.FieldClientName)
	}
	if m.client_email != nil {
		fields = append(fields, booking.FieldClientEmail)
	}
	if m.client_phone != nil {
		fields = append(fields, booking.FieldClientPhone)
	}
	if m.procedure_type != nil {
		fields = append(fields, booking.FieldProcedureType)
	}
	if m.notes != nil {
		fields = append(fields, booking.FieldNotes)
	}
	if m.status != nil {
		fields = append(fields, booking.FieldStatus)
	}
	if m.start_time != nil {
		fields = append(fields, booking.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, booking.FieldEndTime)
	}
	if m.completed_at != nil {
		fields = append(fields, booking.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BookingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case booking.FieldCreatedAt:
		return m.CreatedAt()
	case booking.FieldUpdatedAt:
		return m.UpdatedAt()
	case booking.FieldBlockID:
		return m.BlockID()
	case booking.FieldSupervisorID:
		return m.SupervisorID()
	case booking.FieldApprenticeID:
		return m.ApprenticeID()
	case booking.FieldClientID:
		return m.ClientID()
	case booking.FieldClientName:
		return m.ClientName()
	case booking.FieldClientEmail:
		return m.ClientEmail()
	case booking.FieldClientPhone:
		return m.ClientPhone()
	case booking.FieldProcedureType:
		return m.ProcedureType()
	case booking.FieldNotes:
		return m.Notes()
	case booking.FieldStatus:
		return m.Status()
	case booking.FieldStartTime:
		return m.StartTime()
	case booking.FieldEndTime:
		return m.EndTime()
	case booking.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BookingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case booking.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case booking.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case booking.FieldBlockID:
		return m.OldBlockID(ctx)
	case booking.FieldSupervisorID:
		return m.OldSupervisorID(ctx)
	case booking.FieldApprenticeID:
		return m.OldApprenticeID(ctx)
	case booking.FieldClientID:
		return m.OldClientID(ctx)
	case booking.FieldClientName:
		return m.OldClientName(ctx)
	case booking.FieldClientEmail:
		return m.OldClientEmail(ctx)
	case booking.FieldClientPhone:
		return m.OldClientPhone(ctx)
	case booking.FieldProcedureType:
		return m.OldProcedureType(ctx)
	case booking.FieldNotes:
		return m.OldNotes(ctx)
	case booking.FieldStatus:
		return m.OldStatus(ctx)
	case booking.FieldStartTime:
		return m.OldStartTime(ctx)
	case booking.FieldEndTime:
		return m.OldEndTime(ctx)
	case booking.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Booking field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case booking.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case booking.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case booking.FieldBlockID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockID(v)
		return nil
	case booking.FieldSupervisorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupervisorID(v)
		return nil
	case booking.FieldApprenticeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprenticeID(v)
		return nil
	case booking.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case booking.FieldClientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientName(v)
		return nil
	case booking.FieldClientEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientEmail(v)
		return nil
	case booking.FieldClientPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientPhone(v)
		return nil
	case booking.FieldProcedureType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcedureType(v)
		return nil
	case booking.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case booking.FieldStatus:
		v, ok := value.(booking.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case booking.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case booking.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case booking.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Booking field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BookingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BookingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Booking numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BookingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(booking.FieldClientID) {
		fields = append(fields, booking.FieldClientID)
	}
	if m.FieldCleared(booking.FieldClientName) {
		fields = append(fields, booking.FieldClientName)
	}
	if m.FieldCleared(booking.FieldClientEmail) {
		fields = append(fields, booking.FieldClientEmail)
	}
	if m.FieldCleared(booking.FieldClientPhone) {
		fields = append(fields, booking.FieldClientPhone)
	}
	if m.FieldCleared(booking.FieldNotes) {
		fields = append(fields, booking.FieldNotes)
	}
	if m.FieldCleared(booking.FieldCompletedAt) {
		fields = append(fields, booking.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BookingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BookingMutation) ClearField(name string) error {
	switch name {
	case booking.FieldClientID:
		m.ClearClientID()
		return nil
	case booking.FieldClientName:
		m.ClearClientName()
		return nil
	case booking.FieldClientEmail:
		m.ClearClientEmail()
		return nil
	case booking.FieldClientPhone:
		m.ClearClientPhone()
		return nil
	case booking.FieldNotes:
		m.ClearNotes()
		return nil
	case booking.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Booking nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BookingMutation) ResetField(name string) error {
	switch name {
	case booking.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case booking.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case booking.FieldBlockID:
		m.ResetBlockID()
		return nil
	case booking.FieldSupervisorID:
		m.ResetSupervisorID()
		return nil
	case booking.FieldApprenticeID:
		m.ResetApprenticeID()
		return nil
	case booking.FieldClientID:
		m.ResetClientID()
		return nil
	case booking.FieldClientName:
		m.ResetClientName()
		return nil
	case booking.FieldClientEmail:
		m.ResetClientEmail()
		return nil
	case booking.FieldClientPhone:
		m.ResetClientPhone()
		return nil
	case booking.FieldProcedureType:
		m.ResetProcedureType()
		return nil
	case booking.FieldNotes:
		m.ResetNotes()
		return nil
	case booking.FieldStatus:
		m.ResetStatus()
		return nil
	case booking.FieldStartTime:
		m.ResetStartTime()
		return nil
	case booking.FieldEndTime:
		m.ResetEndTime()
		return nil
	case booking.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Booking field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BookingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BookingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BookingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BookingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BookingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BookingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BookingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Booking unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BookingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Booking edge %s", name)
}

// ProcedureLogEntryMutation represents an operation that mutates the ProcedureLogEntry nodes in the graph.
type ProcedureLogEntryMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	booking_id         *uuid.UUID
	apprentice_id      *uuid.UUID
	supervisor_id      *uuid.UUID
	client_id          *uuid.UUID
	client_name        *string
	procedure_type     *string
	performed_at       *time.Time
	compliance_checked *bool
	training_hours     *float64
	addtraining_hours  *float64
	complexity_level   *procedurelogentry.ComplexityLevel
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ProcedureLogEntry, error)
	predicates         []predicate.ProcedureLogEntry
}

var _ ent.Mutation = (*ProcedureLogEntryMutation)(nil)

// procedurelogentryOption allows management of the mutation configuration using functional options.
type procedurelogentryOption func(*ProcedureLogEntryMutation)

// newProcedureLogEntryMutation creates new mutation for the ProcedureLogEntry entity.
func newProcedureLogEntryMutation(c config, op Op, opts ...procedurelogentryOption) *ProcedureLogEntryMutation {
	m := &ProcedureLogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeProcedureLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcedureLogEntryID sets the ID field of the mutation.
func withProcedureLogEntryID(id uuid.UUID) procedurelogentryOption {
	return func(m *ProcedureLogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcedureLogEntry
		)
		m.oldValue = func(ctx context.Context) (*ProcedureLogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcedureLogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcedureLogEntry sets the old ProcedureLogEntry of the mutation.
func withProcedureLogEntry(node *ProcedureLogEntry) procedurelogentryOption {
	return func(m *ProcedureLogEntryMutation) {
		m.oldValue = func(context.Context) (*ProcedureLogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcedureLogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcedureLogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcedureLogEntry entities.
func (m *ProcedureLogEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcedureLogEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcedureLogEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcedureLogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcedureLogEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcedureLogEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcedureLogEntry entity.
// If the ProcedureLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureLogEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcedureLogEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetBookingID sets the "booking_id" field.
func (m *ProcedureLogEntryMutation) SetBookingID(u uuid.UUID) {
	m.booking_id = &u
}

// BookingID returns the value of the "booking_id" field in the mutation.
func (m *ProcedureLogEntryMutation) BookingID() (r uuid.UUID, exists bool) {
	v := m.booking_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBookingID returns the old "booking_id" field's value of the ProcedureLogEntry entity.
// If the ProcedureLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureLogEntryMutation) OldBookingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookingID: %w", err)
	}
	return oldValue.BookingID, nil
}

// ResetBookingID resets all changes to the "booking_id" field.
func (m *ProcedureLogEntryMutation) ResetBookingID() {
	m.booking_id = nil
}

// SetApprenticeID sets the "apprentice_id" field.
func (m *ProcedureLogEntryMutation) SetApprenticeID(u uuid.UUID) {
	m.apprentice_id = &u
}

// ApprenticeID returns the value of the "apprentice_id" field in the mutation.
func (m *ProcedureLogEntryMutation) ApprenticeID() (r uuid.UUID, exists bool) {
	v := m.apprentice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApprenticeID returns the old "apprentice_id" field's value of the ProcedureLogEntry entity.
// If the ProcedureLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureLogEntryMutation) OldApprenticeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprenticeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprenticeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprenticeID: %w", err)
	}
	return oldValue.ApprenticeID, nil
}

// ResetApprenticeID resets all changes to the "apprentice_id" field.
func (m *ProcedureLogEntryMutation) ResetApprenticeID() {
	m.apprentice_id = nil
}

// SetSupervisorID sets the "supervisor_id" field.
func (m *ProcedureLogEntryMutation) SetSupervisorID(u uuid.UUID) {
	m.supervisor_id = &u
}

// SupervisorID returns the value of the "supervisor_id" field in the mutation.
func (m *ProcedureLogEntryMutation) SupervisorID() (r uuid.UUID, exists bool) {
	v := m.supervisor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupervisorID returns the old "supervisor_id" field's value of the ProcedureLogEntry entity.
// If the ProcedureLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureLogEntryMutation) OldSupervisorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupervisorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupervisorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupervisorID: %w", err)
	}
	return oldValue.SupervisorID, nil
}

// ResetSupervisorID resets all changes to the "supervisor_id" field.
func (m *ProcedureLogEntryMutation) ResetSupervisorID() {
	m.supervisor_id = nil
}

// SetClientID sets the "client_id" field.
func (m *ProcedureLogEntryMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ProcedureLogEntryMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the ProcedureLogEntry entity.
// If the ProcedureLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureLogEntryMutation) OldClientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ClearClientID clears the value of the "client_id" field.
func (m *ProcedureLogEntryMutation) ClearClientID() {
	m.client_id = nil
	m.clearedFields[procedurelogentry.FieldClientID] = struct{}{}
}

// ClientIDCleared returns if the "client_id" field was cleared in this mutation.
func (m *ProcedureLogEntryMutation) ClientIDCleared() bool {
	_, ok := m.clearedFields[procedurelogentry.FieldClientID]
	return ok
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ProcedureLogEntryMutation) ResetClientID() {
	m.client_id = nil
	delete(m.clearedFields, procedurelogentry.FieldClientID)
}

// SetClientName sets the "client_name" field.
func (m *ProcedureLogEntryMutation) SetClientName(s string) {
	m.client_name = &s
}

// ClientName returns the value of the "client_name" field in the mutation.
func (m *ProcedureLogEntryMutation) ClientName() (r string, exists bool) {
	v := m.client_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClientName returns the old "client_name" field's value of the ProcedureLogEntry entity.
// If the ProcedureLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureLogEntryMutation) OldClientName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientName: %w", err)
	}
	return oldValue.ClientName, nil
}

// ClearClientName clears the value of the "client_name" field.
func (m *ProcedureLogEntryMutation) ClearClientName() {
	m.client_name = nil
	m.clearedFields[procedurelogentry.FieldClientName] = struct{}{}
}

// ClientNameCleared returns if the "client_name" field was cleared in this mutation.
func (m *ProcedureLogEntryMutation) ClientNameCleared() bool {
	_, ok := m.clearedFields[procedurelogentry.FieldClientName]
	return ok
}

// ResetClientName resets all changes to the "client_name" field.
func (m *ProcedureLogEntryMutation) ResetClientName() {
	m.client_name = nil
	delete(m.clearedFields, procedurelogentry.FieldClientName)
}

// SetProcedureType sets the "procedure_type" field.
func (m *ProcedureLogEntryMutation) SetProcedureType(s string) {
	m.procedure_type = &s
}

// ProcedureType returns the value of the "procedure_type" field in the mutation.
func (m *ProcedureLogEntryMutation) ProcedureType() (r string, exists bool) {
	v := m.procedure_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProcedureType returns the old "procedure_type" field's value of the ProcedureLogEntry entity.
// If the ProcedureLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureLogEntryMutation) OldProcedureType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcedureType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcedureType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcedureType: %w", err)
	}
	return oldValue.ProcedureType, nil
}

// ResetProcedureType resets all changes to the "procedure_type" field.
func (m *ProcedureLogEntryMutation) ResetProcedureType() {
	m.procedure_type = nil
}

// SetPerformedAt sets the "performed_at" field.
func (m *ProcedureLogEntryMutation) SetPerformedAt(t time.Time) {
	m.performed_at = &t
}

// PerformedAt returns the value of the "performed_at" field in the mutation.
func (m *ProcedureLogEntryMutation) PerformedAt() (r time.Time, exists bool) {
	v := m.performed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformedAt returns the old "performed_at" field's value of the ProcedureLogEntry entity.
// If the ProcedureLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureLogEntryMutation) OldPerformedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformedAt: %w", err)
	}
	return oldValue.PerformedAt, nil
}

// ResetPerformedAt resets all changes to the "performed_at" field.
func (m *ProcedureLogEntryMutation) ResetPerformedAt() {
	m.performed_at = nil
}

// SetComplianceChecked sets the "compliance_checked" field.
func (m *ProcedureLogEntryMutation) SetComplianceChecked(b bool) {
	m.compliance_checked = &b
}

// ComplianceChecked returns the value of the "compliance_checked" field in the mutation.
func (m *ProcedureLogEntryMutation) ComplianceChecked() (r bool, exists bool) {
	v := m.compliance_checked
	if v == nil {
		return
	}
	return *v, true
}

// OldComplianceChecked returns the old "compliance_checked" field's value of the ProcedureLogEntry entity.
// If the ProcedureLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureLogEntryMutation) OldComplianceChecked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplianceChecked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplianceChecked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplianceChecked: %w", err)
	}
	return oldValue.ComplianceChecked, nil
}

// ResetComplianceChecked resets all changes to the "compliance_checked" field.
func (m *ProcedureLogEntryMutation) ResetComplianceChecked() {
	m.compliance_checked = nil
}

// SetTrainingHours sets the "training_hours" field.
func (m *ProcedureLogEntryMutation) SetTrainingHours(f float64) {
	m.training_hours = &f
	m.addtraining_hours = nil
}

// TrainingHours returns the value of the "training_hours" field in the mutation.
func (m *ProcedureLogEntryMutation) TrainingHours() (r float64, exists bool) {
	v := m.training_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldTrainingHours returns the old "training_hours" field's value of the ProcedureLogEntry entity.
// If the ProcedureLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureLogEntryMutation) OldTrainingHours(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrainingHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrainingHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrainingHours: %w", err)
	}
	return oldValue.TrainingHours, nil
}

// AddTrainingHours adds f to the "training_hours" field.
func (m *ProcedureLogEntryMutation) AddTrainingHours(f float64) {
	if m.addtraining_hours != nil {
		*m.addtraining_hours += f
	} else {
		m.addtraining_hours = &f
	}
}

// AddedTrainingHours returns the value that was added to the "training_hours" field in this mutation.
func (m *ProcedureLogEntryMutation) AddedTrainingHours() (r float64, exists bool) {
	v := m.addtraining_hours
	if v == nil {
		return
	}
	return *v, true
}

// ClearTrainingHours clears the value of the "training_hours" field.
func (m *ProcedureLogEntryMutation) ClearTrainingHours() {
	m.training_hours = nil
	m.addtraining_hours = nil
	m.clearedFields[procedurelogentry.FieldTrainingHours] = struct{}{}
}

// TrainingHoursCleared returns if the "training_hours" field was cleared in this mutation.
func (m *ProcedureLogEntryMutation) TrainingHoursCleared() bool {
	_, ok := m.clearedFields[procedurelogentry.FieldTrainingHours]
	return ok
}

// ResetTrainingHours resets all changes to the "training_hours" field.
func (m *ProcedureLogEntryMutation) ResetTrainingHours() {
	m.training_hours = nil
	m.addtraining_hours = nil
	delete(m.clearedFields, procedurelogentry.FieldTrainingHours)
}

// SetComplexityLevel sets the "complexity_level" field.
func (m *ProcedureLogEntryMutation) SetComplexityLevel(pl procedurelogentry.ComplexityLevel) {
	m.complexity_level = &pl
}

// ComplexityLevel returns the value of the "complexity_level" field in the mutation.
func (m *ProcedureLogEntryMutation) ComplexityLevel() (r procedurelogentry.ComplexityLevel, exists bool) {
	v := m.complexity_level
	if v == nil {
		return
	}
	return *v, true
}

// OldComplexityLevel returns the old "complexity_level" field's value of the ProcedureLogEntry entity.
// If the ProcedureLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureLogEntryMutation) OldComplexityLevel(ctx context.Context) (v *procedurelogentry.ComplexityLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplexityLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplexityLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplexityLevel: %w", err)
	}
	return oldValue.ComplexityLevel, nil
}

// ClearComplexityLevel clears the value of the "complexity_level" field.
func (m *ProcedureLogEntryMutation) ClearComplexityLevel() {
	m.complexity_level = nil
	m.clearedFields[procedurelogentry.FieldComplexityLevel] = struct{}{}
}

// ComplexityLevelCleared returns if the "complexity_level" field was cleared in this mutation.
func (m *ProcedureLogEntryMutation) ComplexityLevelCleared() bool {
	_, ok := m.clearedFields[procedurelogentry.FieldComplexityLevel]
	return ok
}

// ResetComplexityLevel resets all changes to the "complexity_level" field.
func (m *ProcedureLogEntryMutation) ResetComplexityLevel() {
	m.complexity_level = nil
	delete(m.clearedFields, procedurelogentry.FieldComplexityLevel)
}

// Where appends a list predicates to the ProcedureLogEntryMutation builder.
func (m *ProcedureLogEntryMutation) Where(ps ...predicate.ProcedureLogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcedureLogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcedureLogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcedureLogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcedureLogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcedureLogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcedureLogEntry).
func (m *ProcedureLogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcedureLogEntryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, procedurelogentry.FieldCreatedAt)
	}
	if m.booking_id != nil {
		fields = append(fields, procedurelogentry.FieldBookingID)
	}
	if m.apprentice_id != nil {
		fields = append(fields, procedurelogentry.FieldApprenticeID)
	}
	if m.supervisor_id != nil {
		fields = append(fields, procedurelogentry.FieldSupervisorID)
	}
	if m.client_id != nil {
		fields = append(fields, procedurelogentry.FieldClientID)
	}
	if m.client_name != nil {
		fields = append(fields, procedurelogentry.FieldClientName)
	}
	if m.procedure_type != nil {
		fields = append(fields, procedurelogentry.FieldProcedureType)
	}
	if m.performed_at != nil {
		fields = append(fields, procedurelogentry.FieldPerformedAt)
	}
	if m.compliance_checked != nil {
		fields = append(fields, procedurelogentry.FieldComplianceChecked)
	}
	if m.training_hours != nil {
		fields = append(fields, procedurelogentry.FieldTrainingHours)
	}
	if m.complexity_level != nil {
		fields = append(fields, procedurelogentry.FieldComplexityLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcedureLogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case procedurelogentry.FieldCreatedAt:
		return m.CreatedAt()
	case procedurelogentry.FieldBookingID:
		return m.BookingID()
	case procedurelogentry.FieldApprenticeID:
		return m.ApprenticeID()
	case procedurelogentry.FieldSupervisorID:
		return m.SupervisorID()
	case procedurelogentry.FieldClientID:
		return m.ClientID()
	case procedurelogentry.FieldClientName:
		return m.ClientName()
	case procedurelogentry.FieldProcedureType:
		return m.ProcedureType()
	case procedurelogentry.FieldPerformedAt:
		return m.PerformedAt()
	case procedurelogentry.FieldComplianceChecked:
		return m.ComplianceChecked()
	case procedurelogentry.FieldTrainingHours:
		return m.TrainingHours()
	case procedurelogentry.FieldComplexityLevel:
		return m.ComplexityLevel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcedureLogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case procedurelogentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case procedurelogentry.FieldBookingID:
		return m.OldBookingID(ctx)
	case procedurelogentry.FieldApprenticeID:
		return m.OldApprenticeID(ctx)
	case procedurelogentry.FieldSupervisorID:
		return m.OldSupervisorID(ctx)
	case procedurelogentry.FieldClientID:
		return m.OldClientID(ctx)
	case procedurelogentry.FieldClientName:
		return m.OldClientName(ctx)
	case procedurelogentry.FieldProcedureType:
		return m.OldProcedureType(ctx)
	case procedurelogentry.FieldPerformedAt:
		return m.OldPerformedAt(ctx)
	case procedurelogentry.FieldComplianceChecked:
		return m.OldComplianceChecked(ctx)
	case procedurelogentry.FieldTrainingHours:
		return m.OldTrainingHours(ctx)
	case procedurelogentry.FieldComplexityLevel:
		return m.OldComplexityLevel(ctx)
	}
	return nil, fmt.Errorf("unknown ProcedureLogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcedureLogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case procedurelogentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case procedurelogentry.FieldBookingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookingID(v)
		return nil
	case procedurelogentry.FieldApprenticeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprenticeID(v)
		return nil
	case procedurelogentry.FieldSupervisorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupervisorID(v)
		return nil
	case procedurelogentry.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case procedurelogentry.FieldClientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientName(v)
		return nil
	case procedurelogentry.FieldProcedureType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcedureType(v)
		return nil
	case procedurelogentry.FieldPerformedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformedAt(v)
		return nil
	case procedurelogentry.FieldComplianceChecked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplianceChecked(v)
		return nil
	case procedurelogentry.FieldTrainingHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrainingHours(v)
		return nil
	case procedurelogentry.FieldComplexityLevel:
		v, ok := value.(procedurelogentry.ComplexityLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplexityLevel(v)
		return nil
	}
	return fmt.Errorf("unknown ProcedureLogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcedureLogEntryMutation) AddedFields() []string {
	var fields []string
	if m.addtraining_hours != nil {
		fields = append(fields, procedurelogentry.FieldTrainingHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcedureLogEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case procedurelogentry.FieldTrainingHours:
		return m.AddedTrainingHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcedureLogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case procedurelogentry.FieldTrainingHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrainingHours(v)
		return nil
	}
	return fmt.Errorf("unknown ProcedureLogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcedureLogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(procedurelogentry.FieldClientID) {
		fields = append(fields, procedurelogentry.FieldClientID)
	}
	if m.FieldCleared(procedurelogentry.FieldClientName) {
		fields = append(fields, procedurelogentry.FieldClientName)
	}
	if m.FieldCleared(procedurelogentry.FieldTrainingHours) {
		fields = append(fields, procedurelogentry.FieldTrainingHours)
	}
	if m.FieldCleared(procedurelogentry.FieldComplexityLevel) {
		fields = append(fields, procedurelogentry.FieldComplexityLevel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcedureLogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcedureLogEntryMutation) ClearField(name string) error {
	switch name {
	case procedurelogentry.FieldClientID:
		m.ClearClientID()
		return nil
	case procedurelogentry.FieldClientName:
		m.ClearClientName()
		return nil
	case procedurelogentry.FieldTrainingHours:
		m.ClearTrainingHours()
		return nil
	case procedurelogentry.FieldComplexityLevel:
		m.ClearComplexityLevel()
		return nil
	}
	return fmt.Errorf("unknown ProcedureLogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcedureLogEntryMutation) ResetField(name string) error {
	switch name {
	case procedurelogentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case procedurelogentry.FieldBookingID:
		m.ResetBookingID()
		return nil
	case procedurelogentry.FieldApprenticeID:
		m.ResetApprenticeID()
		return nil
	case procedurelogentry.FieldSupervisorID:
		m.ResetSupervisorID()
		return nil
	case procedurelogentry.FieldClientID:
		m.ResetClientID()
		return nil
	case procedurelogentry.FieldClientName:
		m.ResetClientName()
		return nil
	case procedurelogentry.FieldProcedureType:
		m.ResetProcedureType()
		return nil
	case procedurelogentry.FieldPerformedAt:
		m.ResetPerformedAt()
		return nil
	case procedurelogentry.FieldComplianceChecked:
		m.ResetComplianceChecked()
		return nil
	case procedurelogentry.FieldTrainingHours:
		m.ResetTrainingHours()
		return nil
	case procedurelogentry.FieldComplexityLevel:
		m.ResetComplexityLevel()
		return nil
	}
	return fmt.Errorf("unknown ProcedureLogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcedureLogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcedureLogEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcedureLogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcedureLogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcedureLogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcedureLogEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcedureLogEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcedureLogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcedureLogEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcedureLogEntry edge %s", name)
}
