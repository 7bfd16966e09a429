// Code generated by ent, DO NOT EDIT.

package procedurelogentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// BookingID applies equality check predicate on the "booking_id" field. It's identical to BookingIDEQ.
func BookingID(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldBookingID, v))
}

// ApprenticeID applies equality check predicate on the "apprentice_id" field. It's identical to ApprenticeIDEQ.
func ApprenticeID(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldApprenticeID, v))
}

// SupervisorID applies equality check predicate on the "supervisor_id" field. It's identical to SupervisorIDEQ.
func SupervisorID(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldSupervisorID, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldClientID, v))
}

// ClientName applies equality check predicate on the "client_name" field. It's identical to ClientNameEQ.
func ClientName(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldClientName, v))
}

// ProcedureType applies equality check predicate on the "procedure_type" field. It's identical to ProcedureTypeEQ.
func ProcedureType(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldProcedureType, v))
}

// PerformedAt applies equality check predicate on the "performed_at" field. It's identical to PerformedAtEQ.
func PerformedAt(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldPerformedAt, v))
}

// ComplianceChecked applies equality check predicate on the "compliance_checked" field. It's identical to ComplianceCheckedEQ.
func ComplianceChecked(v bool) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldComplianceChecked, v))
}

// TrainingHours applies equality check predicate on the "training_hours" field. It's identical to TrainingHoursEQ.
func TrainingHours(v float64) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldTrainingHours, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// BookingIDEQ applies the EQ predicate on the "booking_id" field.
func BookingIDEQ(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldBookingID, v))
}

// BookingIDNEQ applies the NEQ predicate on the "booking_id" field.
func BookingIDNEQ(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldBookingID, v))
}

// BookingIDIn applies the In predicate on the "booking_id" field.
func BookingIDIn(vs ...uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIn(FieldBookingID, vs...))
}

// BookingIDNotIn applies the NotIn predicate on the "booking_id" field.
func BookingIDNotIn(vs ...uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotIn(FieldBookingID, vs...))
}

// BookingIDGT applies the GT predicate on the "booking_id" field.
func BookingIDGT(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGT(FieldBookingID, v))
}

// BookingIDGTE applies the GTE predicate on the "booking_id" field.
func BookingIDGTE(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGTE(FieldBookingID, v))
}

// BookingIDLT applies the LT predicate on the "booking_id" field.
func BookingIDLT(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLT(FieldBookingID, v))
}

// BookingIDLTE applies the LTE predicate on the "booking_id" field.
func BookingIDLTE(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLTE(FieldBookingID, v))
}

// ApprenticeIDEQ applies the EQ predicate on the "apprentice_id" field.
func ApprenticeIDEQ(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldApprenticeID, v))
}

// ApprenticeIDNEQ applies the NEQ predicate on the "apprentice_id" field.
func ApprenticeIDNEQ(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldApprenticeID, v))
}

// ApprenticeIDIn applies the In predicate on the "apprentice_id" field.
func ApprenticeIDIn(vs ...uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIn(FieldApprenticeID, vs...))
}

// ApprenticeIDNotIn applies the NotIn predicate on the "apprentice_id" field.
func ApprenticeIDNotIn(vs ...uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotIn(FieldApprenticeID, vs...))
}

// ApprenticeIDGT applies the GT predicate on the "apprentice_id" field.
func ApprenticeIDGT(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGT(FieldApprenticeID, v))
}

// ApprenticeIDGTE applies the GTE predicate on the "apprentice_id" field.
func ApprenticeIDGTE(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGTE(FieldApprenticeID, v))
}

// ApprenticeIDLT applies the LT predicate on the "apprentice_id" field.
func ApprenticeIDLT(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLT(FieldApprenticeID, v))
}

// ApprenticeIDLTE applies the LTE predicate on the "apprentice_id" field.
func ApprenticeIDLTE(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLTE(FieldApprenticeID, v))
}

// SupervisorIDEQ applies the EQ predicate on the "supervisor_id" field.
func SupervisorIDEQ(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldSupervisorID, v))
}

// SupervisorIDNEQ applies the NEQ predicate on the "supervisor_id" field.
func SupervisorIDNEQ(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldSupervisorID, v))
}

// SupervisorIDIn applies the In predicate on the "supervisor_id" field.
func SupervisorIDIn(vs ...uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIn(FieldSupervisorID, vs...))
}

// SupervisorIDNotIn applies the NotIn predicate on the "supervisor_id" field.
func SupervisorIDNotIn(vs ...uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotIn(FieldSupervisorID, vs...))
}

// SupervisorIDGT applies the GT predicate on the "supervisor_id" field.
func SupervisorIDGT(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGT(FieldSupervisorID, v))
}

// SupervisorIDGTE applies the GTE predicate on the "supervisor_id" field.
func SupervisorIDGTE(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGTE(FieldSupervisorID, v))
}

// SupervisorIDLT applies the LT predicate on the "supervisor_id" field.
func SupervisorIDLT(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLT(FieldSupervisorID, v))
}

// SupervisorIDLTE applies the LTE predicate on the "supervisor_id" field.
func SupervisorIDLTE(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLTE(FieldSupervisorID, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v uuid.UUID) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLTE(FieldClientID, v))
}

// ClientIDIsNil applies the IsNil predicate on the "client_id" field.
func ClientIDIsNil() predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIsNull(FieldClientID))
}

// ClientIDNotNil applies the NotNil predicate on the "client_id" field.
func ClientIDNotNil() predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotNull(FieldClientID))
}

// ClientNameEQ applies the EQ predicate on the "client_name" field.
func ClientNameEQ(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldClientName, v))
}

// ClientNameNEQ applies the NEQ predicate on the "client_name" field.
func ClientNameNEQ(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldClientName, v))
}

// ClientNameIn applies the In predicate on the "client_name" field.
func ClientNameIn(vs ...string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIn(FieldClientName, vs...))
}

// ClientNameNotIn applies the NotIn predicate on the "client_name" field.
func ClientNameNotIn(vs ...string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotIn(FieldClientName, vs...))
}

// ClientNameGT applies the GT predicate on the "client_name" field.
func ClientNameGT(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGT(FieldClientName, v))
}

// ClientNameGTE applies the GTE predicate on the "client_name" field.
func ClientNameGTE(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGTE(FieldClientName, v))
}

// ClientNameLT applies the LT predicate on the "client_name" field.
func ClientNameLT(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLT(FieldClientName, v))
}

// ClientNameLTE applies the LTE predicate on the "client_name" field.
func ClientNameLTE(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLTE(FieldClientName, v))
}

// ClientNameContains applies the Contains predicate on the "client_name" field.
func ClientNameContains(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldContains(FieldClientName, v))
}

// ClientNameHasPrefix applies the HasPrefix predicate on the "client_name" field.
func ClientNameHasPrefix(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldHasPrefix(FieldClientName, v))
}

// ClientNameHasSuffix applies the HasSuffix predicate on the "client_name" field.
func ClientNameHasSuffix(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldHasSuffix(FieldClientName, v))
}

// ClientNameIsNil applies the IsNil predicate on the "client_name" field.
func ClientNameIsNil() predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIsNull(FieldClientName))
}

// ClientNameNotNil applies the NotNil predicate on the "client_name" field.
func ClientNameNotNil() predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotNull(FieldClientName))
}

// ClientNameEqualFold applies the EqualFold predicate on the "client_name" field.
func ClientNameEqualFold(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEqualFold(FieldClientName, v))
}

// ClientNameContainsFold applies the ContainsFold predicate on the "client_name" field.
func ClientNameContainsFold(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldContainsFold(FieldClientName, v))
}

// ProcedureTypeEQ applies the EQ predicate on the "procedure_type" field.
func ProcedureTypeEQ(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldProcedureType, v))
}

// ProcedureTypeNEQ applies the NEQ predicate on the "procedure_type" field.
func ProcedureTypeNEQ(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldProcedureType, v))
}

// ProcedureTypeIn applies the In predicate on the "procedure_type" field.
func ProcedureTypeIn(vs ...string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIn(FieldProcedureType, vs...))
}

// ProcedureTypeNotIn applies the NotIn predicate on the "procedure_type" field.
func ProcedureTypeNotIn(vs ...string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotIn(FieldProcedureType, vs...))
}

// ProcedureTypeGT applies the GT predicate on the "procedure_type" field.
func ProcedureTypeGT(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGT(FieldProcedureType, v))
}

// ProcedureTypeGTE applies the GTE predicate on the "procedure_type" field.
func ProcedureTypeGTE(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGTE(FieldProcedureType, v))
}

// ProcedureTypeLT applies the LT predicate on the "procedure_type" field.
func ProcedureTypeLT(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLT(FieldProcedureType, v))
}

// ProcedureTypeLTE applies the LTE predicate on the "procedure_type" field.
func ProcedureTypeLTE(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLTE(FieldProcedureType, v))
}

// ProcedureTypeContains applies the Contains predicate on the "procedure_type" field.
func ProcedureTypeContains(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldContains(FieldProcedureType, v))
}

// ProcedureTypeHasPrefix applies the HasPrefix predicate on the "procedure_type" field.
func ProcedureTypeHasPrefix(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldHasPrefix(FieldProcedureType, v))
}

// ProcedureTypeHasSuffix applies the HasSuffix predicate on the "procedure_type" field.
func ProcedureTypeHasSuffix(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldHasSuffix(FieldProcedureType, v))
}

// ProcedureTypeEqualFold applies the EqualFold predicate on the "procedure_type" field.
func ProcedureTypeEqualFold(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEqualFold(FieldProcedureType, v))
}

// ProcedureTypeContainsFold applies the ContainsFold predicate on the "procedure_type" field.
func ProcedureTypeContainsFold(v string) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldContainsFold(FieldProcedureType, v))
}

// PerformedAtEQ applies the EQ predicate on the "performed_at" field.
func PerformedAtEQ(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldPerformedAt, v))
}

// PerformedAtNEQ applies the NEQ predicate on the "performed_at" field.
func PerformedAtNEQ(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldPerformedAt, v))
}

// PerformedAtIn applies the In predicate on the "performed_at" field.
func PerformedAtIn(vs ...time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIn(FieldPerformedAt, vs...))
}

// PerformedAtNotIn applies the NotIn predicate on the "performed_at" field.
func PerformedAtNotIn(vs ...time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotIn(FieldPerformedAt, vs...))
}

// PerformedAtGT applies the GT predicate on the "performed_at" field.
func PerformedAtGT(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGT(FieldPerformedAt, v))
}

// PerformedAtGTE applies the GTE predicate on the "performed_at" field.
func PerformedAtGTE(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGTE(FieldPerformedAt, v))
}

// PerformedAtLT applies the LT predicate on the "performed_at" field.
func PerformedAtLT(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLT(FieldPerformedAt, v))
}

// PerformedAtLTE applies the LTE predicate on the "performed_at" field.
func PerformedAtLTE(v time.Time) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLTE(FieldPerformedAt, v))
}

// ComplianceCheckedEQ applies the EQ predicate on the "compliance_checked" field.
func ComplianceCheckedEQ(v bool) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldComplianceChecked, v))
}

// ComplianceCheckedNEQ applies the NEQ predicate on the "compliance_checked" field.
func ComplianceCheckedNEQ(v bool) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldComplianceChecked, v))
}

// TrainingHoursEQ applies the EQ predicate on the "training_hours" field.
func TrainingHoursEQ(v float64) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldTrainingHours, v))
}

// TrainingHoursNEQ applies the NEQ predicate on the "training_hours" field.
func TrainingHoursNEQ(v float64) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldTrainingHours, v))
}

// TrainingHoursIn applies the In predicate on the "training_hours" field.
func TrainingHoursIn(vs ...float64) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIn(FieldTrainingHours, vs...))
}

// TrainingHoursNotIn applies the NotIn predicate on the "training_hours" field.
func TrainingHoursNotIn(vs ...float64) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotIn(FieldTrainingHours, vs...))
}

// TrainingHoursGT applies the GT predicate on the "training_hours" field.
func TrainingHoursGT(v float64) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGT(FieldTrainingHours, v))
}

// TrainingHoursGTE applies the GTE predicate on the "training_hours" field.
func TrainingHoursGTE(v float64) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldGTE(FieldTrainingHours, v))
}

// TrainingHoursLT applies the LT predicate on the "training_hours" field.
func TrainingHoursLT(v float64) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLT(FieldTrainingHours, v))
}

// TrainingHoursLTE applies the LTE predicate on the "training_hours" field.
func TrainingHoursLTE(v float64) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldLTE(FieldTrainingHours, v))
}

// TrainingHoursIsNil applies the IsNil predicate on the "training_hours" field.
func TrainingHoursIsNil() predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIsNull(FieldTrainingHours))
}

// TrainingHoursNotNil applies the NotNil predicate on the "training_hours" field.
func TrainingHoursNotNil() predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotNull(FieldTrainingHours))
}

// ComplexityLevelEQ applies the EQ predicate on the "complexity_level" field.
func ComplexityLevelEQ(v ComplexityLevel) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldEQ(FieldComplexityLevel, v))
}

// ComplexityLevelNEQ applies the NEQ predicate on the "complexity_level" field.
func ComplexityLevelNEQ(v ComplexityLevel) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNEQ(FieldComplexityLevel, v))
}

// ComplexityLevelIn applies the In predicate on the "complexity_level" field.
func ComplexityLevelIn(vs ...ComplexityLevel) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIn(FieldComplexityLevel, vs...))
}

// ComplexityLevelNotIn applies the NotIn predicate on the "complexity_level" field.
func ComplexityLevelNotIn(vs ...ComplexityLevel) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotIn(FieldComplexityLevel, vs...))
}

// ComplexityLevelIsNil applies the IsNil predicate on the "complexity_level" field.
func ComplexityLevelIsNil() predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldIsNull(FieldComplexityLevel))
}

// ComplexityLevelNotNil applies the NotNil predicate on the "complexity_level" field.
func ComplexityLevelNotNil() predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.FieldNotNull(FieldComplexityLevel))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcedureLogEntry) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcedureLogEntry) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcedureLogEntry) predicate.ProcedureLogEntry {
	return predicate.ProcedureLogEntry(sql.NotPredicates(p))
}
