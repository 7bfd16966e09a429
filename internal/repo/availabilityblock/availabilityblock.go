// Code generated by ent, DO NOT EDIT.

package availabilityblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the availabilityblock type in the database.
	Label = "availability_block"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSupervisorID holds the string denoting the supervisor_id field in the database.
	FieldSupervisorID = "supervisor_id"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldCapacity holds the string denoting the capacity field in the database.
	FieldCapacity = "capacity"
	// FieldBufferMinutes holds the string denoting the buffer_minutes field in the database.
	FieldBufferMinutes = "buffer_minutes"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldIsPublished holds the string denoting the is_published field in the database.
	FieldIsPublished = "is_published"
	// FieldActiveBookings holds the string denoting the active_bookings field in the database.
	FieldActiveBookings = "active_bookings"
	// Table holds the table name of the availabilityblock in the database.
	Table = "availability_blocks"
)

// Columns holds all SQL columns for availabilityblock fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSupervisorID,
	FieldStartTime,
	FieldEndTime,
	FieldCapacity,
	FieldBufferMinutes,
	FieldLocation,
	FieldNotes,
	FieldIsPublished,
	FieldActiveBookings,
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
	// DefaultCapacity holds the default value on creation for the "capacity" field.
	DefaultCapacity int
	// CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	CapacityValidator func(int) error
	// DefaultBufferMinutes holds the default value on creation for the "buffer_minutes" field.
	DefaultBufferMinutes int
	// BufferMinutesValidator is a validator for the "buffer_minutes" field. It is called by the builders before save.
	BufferMinutesValidator func(int) error
	// DefaultIsPublished holds the default value on creation for the "is_published" field.
	DefaultIsPublished bool
	// DefaultActiveBookings holds the default value on creation for the "active_bookings" field.
	DefaultActiveBookings int
	// ActiveBookingsValidator is a validator for the "active_bookings" field. It is called by the builders before save.
	ActiveBookingsValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AvailabilityBlock queries.
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

// BySupervisorID orders the results by the supervisor_id field.
func BySupervisorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupervisorID, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByCapacity orders the results by the capacity field.
func ByCapacity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapacity, opts...).ToFunc()
}

// ByBufferMinutes orders the results by the buffer_minutes field.
func ByBufferMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBufferMinutes, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByIsPublished orders the results by the is_published field.
func ByIsPublished(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPublished, opts...).ToFunc()
}

// ByActiveBookings orders the results by the active_bookings field.
func ByActiveBookings(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveBookings, opts...).ToFunc()
}
