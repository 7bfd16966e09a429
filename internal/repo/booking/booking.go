// Code generated by ent, DO NOT EDIT.

package booking

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the booking type in the database.
	Label = "booking"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldBlockID holds the string denoting the block_id field in the database.
	FieldBlockID = "block_id"
	// FieldSupervisorID holds the string denoting the supervisor_id field in the database.
	FieldSupervisorID = "supervisor_id"
	// FieldApprenticeID holds the string denoting the apprentice_id field in the database.
	FieldApprenticeID = "apprentice_id"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldClientName holds the string denoting the client_name field in the database.
	FieldClientName = "client_name"
	// FieldClientEmail holds the string denoting the client_email field in the database.
	FieldClientEmail = "client_email"
	// FieldClientPhone holds the string denoting the client_phone field in the database.
	FieldClientPhone = "client_phone"
	// FieldProcedureType holds the string denoting the procedure_type field in the database.
	FieldProcedureType = "procedure_type"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the booking in the database.
	Table = "bookings"
)

// Columns holds all SQL columns for booking fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldBlockID,
	FieldSupervisorID,
	FieldApprenticeID,
	FieldClientID,
	FieldClientName,
	FieldClientEmail,
	FieldClientPhone,
	FieldProcedureType,
	FieldNotes,
	FieldStatus,
	FieldStartTime,
	FieldEndTime,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// ProcedureTypeValidator is a validator for the "procedure_type" field. It is called by the builders before save.
	ProcedureTypeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRequested is the default value of the Status enum.
const DefaultStatus = StatusRequested

// Status values.
const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return nil
	default:
		return fmt.Errorf("booking: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Booking queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBlockID orders the results by the block_id field.
func ByBlockID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockID, opts...).ToFunc()
}

// BySupervisorID orders the results by the supervisor_id field.
func BySupervisorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupervisorID, opts...).ToFunc()
}

// ByApprenticeID orders the results by the apprentice_id field.
func ByApprenticeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprenticeID, opts...).ToFunc()
}

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// ByClientName orders the results by the client_name field.
func ByClientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientName, opts...).ToFunc()
}

// ByClientEmail orders the results by the client_email field.
func ByClientEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientEmail, opts...).ToFunc()
}

// ByClientPhone orders the results by the client_phone field.
func ByClientPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientPhone, opts...).ToFunc()
}

// ByProcedureType orders the results by the procedure_type field.
func ByProcedureType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcedureType, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
