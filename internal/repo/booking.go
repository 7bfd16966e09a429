// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/booking"
)

// Booking is the model entity for the Booking schema.
type Booking struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → availability_blocks.id
	BlockID uuid.UUID `json:"block_id,omitempty"`
	// SupervisorID holds the value of the "supervisor_id" field.
	SupervisorID uuid.UUID `json:"supervisor_id,omitempty"`
	// ApprenticeID holds the value of the "apprentice_id" field.
	ApprenticeID uuid.UUID `json:"apprentice_id,omitempty"`
	// CRM client reference; nil for walk-in attribution
	ClientID *uuid.UUID `json:"client_id,omitempty"`
	// ClientName holds the value of the "client_name" field.
	ClientName *string `json:"client_name,omitempty"`
	// ClientEmail holds the value of the "client_email" field.
	ClientEmail *string `json:"client_email,omitempty"`
	// E.164
	ClientPhone *string `json:"client_phone,omitempty"`
	// ProcedureType holds the value of the "procedure_type" field.
	ProcedureType string `json:"procedure_type,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Status holds the value of the "status" field.
	Status booking.Status `json:"status,omitempty"`
	// copied from the block at creation
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime time.Time `json:"end_time,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Booking) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case booking.FieldClientID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case booking.FieldClientName, booking.FieldClientEmail, booking.FieldClientPhone, booking.FieldProcedureType, booking.FieldNotes, booking.FieldStatus:
			values[i] = new(sql.NullString)
		case booking.FieldCreatedAt, booking.FieldUpdatedAt, booking.FieldStartTime, booking.FieldEndTime, booking.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case booking.FieldID, booking.FieldBlockID, booking.FieldSupervisorID, booking.FieldApprenticeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Booking fields.
func (_m *Booking) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case booking.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case booking.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case booking.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case booking.FieldBlockID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field block_id", values[i])
			} else if value != nil {
				_m.BlockID = *value
			}
		case booking.FieldSupervisorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field supervisor_id", values[i])
			} else if value != nil {
				_m.SupervisorID = *value
			}
		case booking.FieldApprenticeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field apprentice_id", values[i])
			} else if value != nil {
				_m.ApprenticeID = *value
			}
		case booking.FieldClientID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				_m.ClientID = new(uuid.UUID)
				*_m.ClientID = *value.S.(*uuid.UUID)
			}
		case booking.FieldClientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_name", values[i])
			} else if value.Valid {
				_m.ClientName = new(string)
				*_m.ClientName = value.String
			}
		case booking.FieldClientEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_email", values[i])
			} else if value.Valid {
				_m.ClientEmail = new(string)
				*_m.ClientEmail = value.String
			}
		case booking.FieldClientPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_phone", values[i])
			} else if value.Valid {
				_m.ClientPhone = new(string)
				*_m.ClientPhone = value.String
			}
		case booking.FieldProcedureType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field procedure_type", values[i])
			} else if value.Valid {
				_m.ProcedureType = value.String
			}
		case booking.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case booking.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = booking.Status(value.String)
			}
		case booking.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case booking.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case booking.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Booking.
// This includes values selected through modifiers, order, etc.
func (_m *Booking) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Booking.
// Note that you need to call Booking.Unwrap() before calling this method if this Booking
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Booking) Update() *BookingUpdateOne {
	return NewBookingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Booking entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Booking) Unwrap() *Booking {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Booking is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Booking) String() string {
	var builder strings.Builder
	builder.WriteString("Booking(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("block_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockID))
	builder.WriteString(", ")
	builder.WriteString("supervisor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupervisorID))
	builder.WriteString(", ")
	builder.WriteString("apprentice_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprenticeID))
	builder.WriteString(", ")
	if v := _m.ClientID; v != nil {
		builder.WriteString("client_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ClientName; v != nil {
		builder.WriteString("client_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClientEmail; v != nil {
		builder.WriteString("client_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClientPhone; v != nil {
		builder.WriteString("client_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("procedure_type=")
	builder.WriteString(_m.ProcedureType)
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Bookings is a parsable slice of Booking.
type Bookings []*Booking
