// Code generated by ent, DO NOT EDIT.

package procedurelogentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the procedurelogentry type in the database.
	Label = "procedure_log_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldBookingID holds the string denoting the booking_id field in the database.
	FieldBookingID = "booking_id"
	// FieldApprenticeID holds the string denoting the apprentice_id field in the database.
	FieldApprenticeID = "apprentice_id"
	// FieldSupervisorID holds the string denoting the supervisor_id field in the database.
	FieldSupervisorID = "supervisor_id"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldClientName holds the string denoting the client_name field in the database.
	FieldClientName = "client_name"
	// FieldProcedureType holds the string denoting the procedure_type field in the database.
	FieldProcedureType = "procedure_type"
	// FieldPerformedAt holds the string denoting the performed_at field in the database.
	FieldPerformedAt = "performed_at"
	// FieldComplianceChecked holds the string denoting the compliance_checked field in the database.
	FieldComplianceChecked = "compliance_checked"
	// FieldTrainingHours holds the string denoting the training_hours field in the database.
	FieldTrainingHours = "training_hours"
	// FieldComplexityLevel holds the string denoting the complexity_level field in the database.
	FieldComplexityLevel = "complexity_level"
	// Table holds the table name of the procedurelogentry in the database.
	Table = "procedure_log_entries"
)

// Columns holds all SQL columns for procedurelogentry fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldBookingID,
	FieldApprenticeID,
	FieldSupervisorID,
	FieldClientID,
	FieldClientName,
	FieldProcedureType,
	FieldPerformedAt,
	FieldComplianceChecked,
	FieldTrainingHours,
	FieldComplexityLevel,
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
	// ProcedureTypeValidator is a validator for the "procedure_type" field. It is called by the builders before save.
	ProcedureTypeValidator func(string) error
	// DefaultComplianceChecked holds the default value on creation for the "compliance_checked" field.
	DefaultComplianceChecked bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ComplexityLevel defines the type for the "complexity_level" enum field.
type ComplexityLevel string

// ComplexityLevel values.
const (
	ComplexityLevelBasic        ComplexityLevel = "basic"
	ComplexityLevelIntermediate ComplexityLevel = "intermediate"
	ComplexityLevelAdvanced     ComplexityLevel = "advanced"
)

func (cl ComplexityLevel) String() string {
	return string(cl)
}

// ComplexityLevelValidator is a validator for the "complexity_level" field enum values. It is called by the builders before save.
func ComplexityLevelValidator(cl ComplexityLevel) error {
	switch cl {
	case ComplexityLevelBasic, ComplexityLevelIntermediate, ComplexityLevelAdvanced:
		return nil
	default:
		return fmt.Errorf("procedurelogentry: invalid enum value for complexity_level field: %q", cl)
	}
}

// OrderOption defines the ordering options for the ProcedureLogEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBookingID orders the results by the booking_id field.
func ByBookingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookingID, opts...).ToFunc()
}

// ByApprenticeID orders the results by the apprentice_id field.
func ByApprenticeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprenticeID, opts...).ToFunc()
}

// BySupervisorID orders the results by the supervisor_id field.
func BySupervisorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupervisorID, opts...).ToFunc()
}

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// ByClientName orders the results by the client_name field.
func ByClientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientName, opts...).ToFunc()
}

// ByProcedureType orders the results by the procedure_type field.
func ByProcedureType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcedureType, opts...).ToFunc()
}

// ByPerformedAt orders the results by the performed_at field.
func ByPerformedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformedAt, opts...).ToFunc()
}

// ByComplianceChecked orders the results by the compliance_checked field.
func ByComplianceChecked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplianceChecked, opts...).ToFunc()
}

// ByTrainingHours orders the results by the training_hours field.
func ByTrainingHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrainingHours, opts...).ToFunc()
}

// ByComplexityLevel orders the results by the complexity_level field.
func ByComplexityLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexityLevel, opts...).ToFunc()
}
