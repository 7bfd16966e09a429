// Code generated by ent, DO NOT EDIT.

package booking

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldUpdatedAt, v))
}

// BlockID applies equality check predicate on the "block_id" field. It's identical to BlockIDEQ.
func BlockID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldBlockID, v))
}

// SupervisorID applies equality check predicate on the "supervisor_id" field. It's identical to SupervisorIDEQ.
func SupervisorID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldSupervisorID, v))
}

// ApprenticeID applies equality check predicate on the "apprentice_id" field. It's identical to ApprenticeIDEQ.
func ApprenticeID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldApprenticeID, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldClientID, v))
}

// ClientName applies equality check predicate on the "client_name" field. It's identical to ClientNameEQ.
func ClientName(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldClientName, v))
}

// ClientEmail applies equality check predicate on the "client_email" field. It's identical to ClientEmailEQ.
func ClientEmail(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldClientEmail, v))
}

// ClientPhone applies equality check predicate on the "client_phone" field. It's identical to ClientPhoneEQ.
func ClientPhone(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldClientPhone, v))
}

// ProcedureType applies equality check predicate on the "procedure_type" field. It's identical to ProcedureTypeEQ.
func ProcedureType(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldProcedureType, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldNotes, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldEndTime, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldUpdatedAt, v))
}

// BlockIDEQ applies the EQ predicate on the "block_id" field.
func BlockIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldBlockID, v))
}

// BlockIDNEQ applies the NEQ predicate on the "block_id" field.
func BlockIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldBlockID, v))
}

// BlockIDIn applies the In predicate on the "block_id" field.
func BlockIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldBlockID, vs...))
}

// BlockIDNotIn applies the NotIn predicate on the "block_id" field.
func BlockIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldBlockID, vs...))
}

// BlockIDGT applies the GT predicate on the "block_id" field.
func BlockIDGT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldBlockID, v))
}

// BlockIDGTE applies the GTE predicate on the "block_id" field.
func BlockIDGTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldBlockID, v))
}

// BlockIDLT applies the LT predicate on the "block_id" field.
func BlockIDLT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldBlockID, v))
}

// BlockIDLTE applies the LTE predicate on the "block_id" field.
func BlockIDLTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldBlockID, v))
}

// SupervisorIDEQ applies the EQ predicate on the "supervisor_id" field.
func SupervisorIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldSupervisorID, v))
}

// SupervisorIDNEQ applies the NEQ predicate on the "supervisor_id" field.
func SupervisorIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldSupervisorID, v))
}

// SupervisorIDIn applies the In predicate on the "supervisor_id" field.
func SupervisorIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldSupervisorID, vs...))
}

// SupervisorIDNotIn applies the NotIn predicate on the "supervisor_id" field.
func SupervisorIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldSupervisorID, vs...))
}

// SupervisorIDGT applies the GT predicate on the "supervisor_id" field.
func SupervisorIDGT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldSupervisorID, v))
}

// SupervisorIDGTE applies the GTE predicate on the "supervisor_id" field.
func SupervisorIDGTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldSupervisorID, v))
}

// SupervisorIDLT applies the LT predicate on the "supervisor_id" field.
func SupervisorIDLT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldSupervisorID, v))
}

// SupervisorIDLTE applies the LTE predicate on the "supervisor_id" field.
func SupervisorIDLTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldSupervisorID, v))
}

// ApprenticeIDEQ applies the EQ predicate on the "apprentice_id" field.
func ApprenticeIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldApprenticeID, v))
}

// ApprenticeIDNEQ applies the NEQ predicate on the "apprentice_id" field.
func ApprenticeIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldApprenticeID, v))
}

// ApprenticeIDIn applies the In predicate on the "apprentice_id" field.
func ApprenticeIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldApprenticeID, vs...))
}

// ApprenticeIDNotIn applies the NotIn predicate on the "apprentice_id" field.
func ApprenticeIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldApprenticeID, vs...))
}

// ApprenticeIDGT applies the GT predicate on the "apprentice_id" field.
func ApprenticeIDGT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldApprenticeID, v))
}

// ApprenticeIDGTE applies the GTE predicate on the "apprentice_id" field.
func ApprenticeIDGTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldApprenticeID, v))
}

// ApprenticeIDLT applies the LT predicate on the "apprentice_id" field.
func ApprenticeIDLT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldApprenticeID, v))
}

// ApprenticeIDLTE applies the LTE predicate on the "apprentice_id" field.
func ApprenticeIDLTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldApprenticeID, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldClientID, v))
}

// ClientIDIsNil applies the IsNil predicate on the "client_id" field.
func ClientIDIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldClientID))
}

// ClientIDNotNil applies the NotNil predicate on the "client_id" field.
func ClientIDNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldClientID))
}

// ClientNameEQ applies the EQ predicate on the "client_name" field.
func ClientNameEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldClientName, v))
}

// ClientNameNEQ applies the NEQ predicate on the "client_name" field.
func ClientNameNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldClientName, v))
}

// ClientNameIn applies the In predicate on the "client_name" field.
func ClientNameIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldClientName, vs...))
}

// ClientNameNotIn applies the NotIn predicate on the "client_name" field.
func ClientNameNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldClientName, vs...))
}

// ClientNameGT applies the GT predicate on the "client_name" field.
func ClientNameGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldClientName, v))
}

// ClientNameGTE applies the GTE predicate on the "client_name" field.
func ClientNameGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldClientName, v))
}

// ClientNameLT applies the LT predicate on the "client_name" field.
func ClientNameLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldClientName, v))
}

// ClientNameLTE applies the LTE predicate on the "client_name" field.
func ClientNameLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldClientName, v))
}

// ClientNameContains applies the Contains predicate on the "client_name" field.
func ClientNameContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldClientName, v))
}

// ClientNameHasPrefix applies the HasPrefix predicate on the "client_name" field.
func ClientNameHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldClientName, v))
}

// ClientNameHasSuffix applies the HasSuffix predicate on the "client_name" field.
func ClientNameHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldClientName, v))
}

// ClientNameIsNil applies the IsNil predicate on the "client_name" field.
func ClientNameIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldClientName))
}

// ClientNameNotNil applies the NotNil predicate on the "client_name" field.
func ClientNameNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldClientName))
}

// ClientNameEqualFold applies the EqualFold predicate on the "client_name" field.
func ClientNameEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldClientName, v))
}

// ClientNameContainsFold applies the ContainsFold predicate on the "client_name" field.
func ClientNameContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldClientName, v))
}

// ClientEmailEQ applies the EQ predicate on the "client_email" field.
func ClientEmailEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldClientEmail, v))
}

// ClientEmailNEQ applies the NEQ predicate on the "client_email" field.
func ClientEmailNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldClientEmail, v))
}

// ClientEmailIn applies the In predicate on the "client_email" field.
func ClientEmailIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldClientEmail, vs...))
}

// ClientEmailNotIn applies the NotIn predicate on the "client_email" field.
func ClientEmailNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldClientEmail, vs...))
}

// ClientEmailGT applies the GT predicate on the "client_email" field.
func ClientEmailGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldClientEmail, v))
}

// ClientEmailGTE applies the GTE predicate on the "client_email" field.
func ClientEmailGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldClientEmail, v))
}

// ClientEmailLT applies the LT predicate on the "client_email" field.
func ClientEmailLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldClientEmail, v))
}

// ClientEmailLTE applies the LTE predicate on the "client_email" field.
func ClientEmailLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldClientEmail, v))
}

// ClientEmailContains applies the Contains predicate on the "client_email" field.
func ClientEmailContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldClientEmail, v))
}

// ClientEmailHasPrefix applies the HasPrefix predicate on the "client_email" field.
func ClientEmailHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldClientEmail, v))
}

// ClientEmailHasSuffix applies the HasSuffix predicate on the "client_email" field.
func ClientEmailHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldClientEmail, v))
}

// ClientEmailIsNil applies the IsNil predicate on the "client_email" field.
func ClientEmailIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldClientEmail))
}

// ClientEmailNotNil applies the NotNil predicate on the "client_email" field.
func ClientEmailNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldClientEmail))
}

// ClientEmailEqualFold applies the EqualFold predicate on the "client_email" field.
func ClientEmailEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldClientEmail, v))
}

// ClientEmailContainsFold applies the ContainsFold predicate on the "client_email" field.
func ClientEmailContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldClientEmail, v))
}

// ClientPhoneEQ applies the EQ predicate on the "client_phone" field.
func ClientPhoneEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldClientPhone, v))
}

// ClientPhoneNEQ applies the NEQ predicate on the "client_phone" field.
func ClientPhoneNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldClientPhone, v))
}

// ClientPhoneIn applies the In predicate on the "client_phone" field.
func ClientPhoneIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldClientPhone, vs...))
}

// ClientPhoneNotIn applies the NotIn predicate on the "client_phone" field.
func ClientPhoneNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldClientPhone, vs...))
}

// ClientPhoneGT applies the GT predicate on the "client_phone" field.
func ClientPhoneGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldClientPhone, v))
}

// ClientPhoneGTE applies the GTE predicate on the "client_phone" field.
func ClientPhoneGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldClientPhone, v))
}

// ClientPhoneLT applies the LT predicate on the "client_phone" field.
func ClientPhoneLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldClientPhone, v))
}

// ClientPhoneLTE applies the LTE predicate on the "client_phone" field.
func ClientPhoneLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldClientPhone, v))
}

// ClientPhoneContains applies the Contains predicate on the "client_phone" field.
func ClientPhoneContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldClientPhone, v))
}

// ClientPhoneHasPrefix applies the HasPrefix predicate on the "client_phone" field.
func ClientPhoneHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldClientPhone, v))
}

// ClientPhoneHasSuffix applies the HasSuffix predicate on the "client_phone" field.
func ClientPhoneHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldClientPhone, v))
}

// ClientPhoneIsNil applies the IsNil predicate on the "client_phone" field.
func ClientPhoneIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldClientPhone))
}

// ClientPhoneNotNil applies the NotNil predicate on the "client_phone" field.
func ClientPhoneNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldClientPhone))
}

// ClientPhoneEqualFold applies the EqualFold predicate on the "client_phone" field.
func ClientPhoneEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldClientPhone, v))
}

// ClientPhoneContainsFold applies the ContainsFold predicate on the "client_phone" field.
func ClientPhoneContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldClientPhone, v))
}

// ProcedureTypeEQ applies the EQ predicate on the "procedure_type" field.
func ProcedureTypeEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldProcedureType, v))
}

// ProcedureTypeNEQ applies the NEQ predicate on the "procedure_type" field.
func ProcedureTypeNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldProcedureType, v))
}

// ProcedureTypeIn applies the In predicate on the "procedure_type" field.
func ProcedureTypeIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldProcedureType, vs...))
}

// ProcedureTypeNotIn applies the NotIn predicate on the "procedure_type" field.
func ProcedureTypeNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldProcedureType, vs...))
}

// ProcedureTypeGT applies the GT predicate on the "procedure_type" field.
func ProcedureTypeGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldProcedureType, v))
}

// ProcedureTypeGTE applies the GTE predicate on the "procedure_type" field.
func ProcedureTypeGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldProcedureType, v))
}

// ProcedureTypeLT applies the LT predicate on the "procedure_type" field.
func ProcedureTypeLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldProcedureType, v))
}

// ProcedureTypeLTE applies the LTE predicate on the "procedure_type" field.
func ProcedureTypeLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldProcedureType, v))
}

// ProcedureTypeContains applies the Contains predicate on the "procedure_type" field.
func ProcedureTypeContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldProcedureType, v))
}

// ProcedureTypeHasPrefix applies the HasPrefix predicate on the "procedure_type" field.
func ProcedureTypeHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldProcedureType, v))
}

// ProcedureTypeHasSuffix applies the HasSuffix predicate on the "procedure_type" field.
func ProcedureTypeHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldProcedureType, v))
}

// ProcedureTypeEqualFold applies the EqualFold predicate on the "procedure_type" field.
func ProcedureTypeEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldProcedureType, v))
}

// ProcedureTypeContainsFold applies the ContainsFold predicate on the "procedure_type" field.
func ProcedureTypeContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldProcedureType, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldNotes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldStatus, vs...))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldEndTime, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.NotPredicates(p))
}
