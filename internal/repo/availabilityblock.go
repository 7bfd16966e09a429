// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/availabilityblock"
)

// AvailabilityBlock is the model entity for the AvailabilityBlock schema.
type AvailabilityBlock struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// account id of the owning supervisor (identity subsystem)
	SupervisorID uuid.UUID `json:"supervisor_id,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime time.Time `json:"end_time,omitempty"`
	// Capacity holds the value of the "capacity" field.
	Capacity int `json:"capacity,omitempty"`
	// informational gap between procedures; not enforced
	BufferMinutes int `json:"buffer_minutes,omitempty"`
	// Location holds the value of the "location" field.
	Location *string `json:"location,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// IsPublished holds the value of the "is_published" field.
	IsPublished bool `json:"is_published,omitempty"`
	// count of requested+confirmed bookings; maintained transactionally, never exceeds capacity
	ActiveBookings int `json:"active_bookings,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AvailabilityBlock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case availabilityblock.FieldIsPublished:
			values[i] = new(sql.NullBool)
		case availabilityblock.FieldCapacity, availabilityblock.FieldBufferMinutes, availabilityblock.FieldActiveBookings:
			values[i] = new(sql.NullInt64)
		case availabilityblock.FieldLocation, availabilityblock.FieldNotes:
			values[i] = new(sql.NullString)
		case availabilityblock.FieldCreatedAt, availabilityblock.FieldUpdatedAt, availabilityblock.FieldStartTime, availabilityblock.FieldEndTime:
			values[i] = new(sql.NullTime)
		case availabilityblock.FieldID, availabilityblock.FieldSupervisorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AvailabilityBlock fields.
func (_m *AvailabilityBlock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case availabilityblock.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case availabilityblock.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case availabilityblock.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case availabilityblock.FieldSupervisorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field supervisor_id", values[i])
			} else if value != nil {
				_m.SupervisorID = *value
			}
		case availabilityblock.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case availabilityblock.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case availabilityblock.FieldCapacity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field capacity", values[i])
			} else if value.Valid {
				_m.Capacity = int(value.Int64)
			}
		case availabilityblock.FieldBufferMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field buffer_minutes", values[i])
			} else if value.Valid {
				_m.BufferMinutes = int(value.Int64)
			}
		case availabilityblock.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = new(string)
				*_m.Location = value.String
			}
		case availabilityblock.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case availabilityblock.FieldIsPublished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_published", values[i])
			} else if value.Valid {
				_m.IsPublished = value.Bool
			}
		case availabilityblock.FieldActiveBookings:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field active_bookings", values[i])
			} else if value.Valid {
				_m.ActiveBookings = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AvailabilityBlock.
// This includes values selected through modifiers, order, etc.
func (_m *AvailabilityBlock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AvailabilityBlock.
// Note that you need to call AvailabilityBlock.Unwrap() before calling this method if this AvailabilityBlock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AvailabilityBlock) Update() *AvailabilityBlockUpdateOne {
	return NewAvailabilityBlockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AvailabilityBlock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AvailabilityBlock) Unwrap() *AvailabilityBlock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AvailabilityBlock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AvailabilityBlock) String() string {
	var builder strings.Builder
	builder.WriteString("AvailabilityBlock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("supervisor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupervisorID))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("capacity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capacity))
	builder.WriteString(", ")
	builder.WriteString("buffer_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.BufferMinutes))
	builder.WriteString(", ")
	if v := _m.Location; v != nil {
		builder.WriteString("location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_published=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPublished))
	builder.WriteString(", ")
	builder.WriteString("active_bookings=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveBookings))
	builder.WriteByte(')')
	return builder.String()
}

// AvailabilityBlocks is a parsable slice of AvailabilityBlock.
type AvailabilityBlocks []*AvailabilityBlock
