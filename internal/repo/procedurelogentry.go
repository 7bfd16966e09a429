// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
)

// ProcedureLogEntry is the model entity for the ProcedureLogEntry schema.
type ProcedureLogEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// one entry per completed booking
	BookingID uuid.UUID `json:"booking_id,omitempty"`
	// ApprenticeID holds the value of the "apprentice_id" field.
	ApprenticeID uuid.UUID `json:"apprentice_id,omitempty"`
	// SupervisorID holds the value of the "supervisor_id" field.
	SupervisorID uuid.UUID `json:"supervisor_id,omitempty"`
	// ClientID holds the value of the "client_id" field.
	ClientID *uuid.UUID `json:"client_id,omitempty"`
	// ClientName holds the value of the "client_name" field.
	ClientName *string `json:"client_name,omitempty"`
	// ProcedureType holds the value of the "procedure_type" field.
	ProcedureType string `json:"procedure_type,omitempty"`
	// PerformedAt holds the value of the "performed_at" field.
	PerformedAt time.Time `json:"performed_at,omitempty"`
	// flipped only by the audited admin action
	ComplianceChecked bool `json:"compliance_checked,omitempty"`
	// TrainingHours holds the value of the "training_hours" field.
	TrainingHours *float64 `json:"training_hours,omitempty"`
	// ComplexityLevel holds the value of the "complexity_level" field.
	ComplexityLevel *procedurelogentry.ComplexityLevel `json:"complexity_level,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcedureLogEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case procedurelogentry.FieldClientID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case procedurelogentry.FieldComplianceChecked:
			values[i] = new(sql.NullBool)
		case procedurelogentry.FieldTrainingHours:
			values[i] = new(sql.NullFloat64)
		case procedurelogentry.FieldClientName, procedurelogentry.FieldProcedureType, procedurelogentry.FieldComplexityLevel:
			values[i] = new(sql.NullString)
		case procedurelogentry.FieldCreatedAt, procedurelogentry.FieldPerformedAt:
			values[i] = new(sql.NullTime)
		case procedurelogentry.FieldID, procedurelogentry.FieldBookingID, procedurelogentry.FieldApprenticeID, procedurelogentry.FieldSupervisorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcedureLogEntry fields.
func (_m *ProcedureLogEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case procedurelogentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case procedurelogentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case procedurelogentry.FieldBookingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field booking_id", values[i])
			} else if value != nil {
				_m.BookingID = *value
			}
		case procedurelogentry.FieldApprenticeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field apprentice_id", values[i])
			} else if value != nil {
				_m.ApprenticeID = *value
			}
		case procedurelogentry.FieldSupervisorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field supervisor_id", values[i])
			} else if value != nil {
				_m.SupervisorID = *value
			}
		case procedurelogentry.FieldClientID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				_m.ClientID = new(uuid.UUID)
				*_m.ClientID = *value.S.(*uuid.UUID)
			}
		case procedurelogentry.FieldClientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_name", values[i])
			} else if value.Valid {
				_m.ClientName = new(string)
				*_m.ClientName = value.String
			}
		case procedurelogentry.FieldProcedureType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field procedure_type", values[i])
			} else if value.Valid {
				_m.ProcedureType = value.String
			}
		case procedurelogentry.FieldPerformedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field performed_at", values[i])
			} else if value.Valid {
				_m.PerformedAt = value.Time
			}
		case procedurelogentry.FieldComplianceChecked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field compliance_checked", values[i])
			} else if value.Valid {
				_m.ComplianceChecked = value.Bool
			}
		case procedurelogentry.FieldTrainingHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field training_hours", values[i])
			} else if value.Valid {
				_m.TrainingHours = new(float64)
				*_m.TrainingHours = value.Float64
			}
		case procedurelogentry.FieldComplexityLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field complexity_level", values[i])
			} else if value.Valid {
				_m.ComplexityLevel = new(procedurelogentry.ComplexityLevel)
				*_m.ComplexityLevel = procedurelogentry.ComplexityLevel(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcedureLogEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ProcedureLogEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProcedureLogEntry.
// Note that you need to call ProcedureLogEntry.Unwrap() before calling this method if this ProcedureLogEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcedureLogEntry) Update() *ProcedureLogEntryUpdateOne {
	return NewProcedureLogEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcedureLogEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcedureLogEntry) Unwrap() *ProcedureLogEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ProcedureLogEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcedureLogEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ProcedureLogEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("booking_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BookingID))
	builder.WriteString(", ")
	builder.WriteString("apprentice_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprenticeID))
	builder.WriteString(", ")
	builder.WriteString("supervisor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupervisorID))
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
	builder.WriteString("procedure_type=")
	builder.WriteString(_m.ProcedureType)
	builder.WriteString(", ")
	builder.WriteString("performed_at=")
	builder.WriteString(_m.PerformedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("compliance_checked=")
	builder.WriteString(fmt.Sprintf("%v", _m.ComplianceChecked))
	builder.WriteString(", ")
	if v := _m.TrainingHours; v != nil {
		builder.WriteString("training_hours=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ComplexityLevel; v != nil {
		builder.WriteString("complexity_level=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ProcedureLogEntries is a parsable slice of ProcedureLogEntry.
type ProcedureLogEntries []*ProcedureLogEntry
