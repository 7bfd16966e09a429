// Code generated by ent, DO NOT EDIT.

package availabilityblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// SupervisorID applies equality check predicate on the "supervisor_id" field. It's identical to SupervisorIDEQ.
func SupervisorID(v uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldSupervisorID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldEndTime, v))
}

// Capacity applies equality check predicate on the "capacity" field. It's identical to CapacityEQ.
func Capacity(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldCapacity, v))
}

// BufferMinutes applies equality check predicate on the "buffer_minutes" field. It's identical to BufferMinutesEQ.
func BufferMinutes(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldBufferMinutes, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldLocation, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldNotes, v))
}

// IsPublished applies equality check predicate on the "is_published" field. It's identical to IsPublishedEQ.
func IsPublished(v bool) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldIsPublished, v))
}

// ActiveBookings applies equality check predicate on the "active_bookings" field. It's identical to ActiveBookingsEQ.
func ActiveBookings(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldActiveBookings, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLTE(FieldUpdatedAt, v))
}

// SupervisorIDEQ applies the EQ predicate on the "supervisor_id" field.
func SupervisorIDEQ(v uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldSupervisorID, v))
}

// SupervisorIDNEQ applies the NEQ predicate on the "supervisor_id" field.
func SupervisorIDNEQ(v uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldSupervisorID, v))
}

// SupervisorIDIn applies the In predicate on the "supervisor_id" field.
func SupervisorIDIn(vs ...uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIn(FieldSupervisorID, vs...))
}

// SupervisorIDNotIn applies the NotIn predicate on the "supervisor_id" field.
func SupervisorIDNotIn(vs ...uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotIn(FieldSupervisorID, vs...))
}

// SupervisorIDGT applies the GT predicate on the "supervisor_id" field.
func SupervisorIDGT(v uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGT(FieldSupervisorID, v))
}

// SupervisorIDGTE applies the GTE predicate on the "supervisor_id" field.
func SupervisorIDGTE(v uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGTE(FieldSupervisorID, v))
}

// SupervisorIDLT applies the LT predicate on the "supervisor_id" field.
func SupervisorIDLT(v uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLT(FieldSupervisorID, v))
}

// SupervisorIDLTE applies the LTE predicate on the "supervisor_id" field.
func SupervisorIDLTE(v uuid.UUID) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLTE(FieldSupervisorID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLTE(FieldEndTime, v))
}

// CapacityEQ applies the EQ predicate on the "capacity" field.
func CapacityEQ(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldCapacity, v))
}

// CapacityNEQ applies the NEQ predicate on the "capacity" field.
func CapacityNEQ(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldCapacity, v))
}

// CapacityIn applies the In predicate on the "capacity" field.
func CapacityIn(vs ...int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIn(FieldCapacity, vs...))
}

// CapacityNotIn applies the NotIn predicate on the "capacity" field.
func CapacityNotIn(vs ...int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotIn(FieldCapacity, vs...))
}

// CapacityGT applies the GT predicate on the "capacity" field.
func CapacityGT(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGT(FieldCapacity, v))
}

// CapacityGTE applies the GTE predicate on the "capacity" field.
func CapacityGTE(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGTE(FieldCapacity, v))
}

// CapacityLT applies the LT predicate on the "capacity" field.
func CapacityLT(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLT(FieldCapacity, v))
}

// CapacityLTE applies the LTE predicate on the "capacity" field.
func CapacityLTE(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLTE(FieldCapacity, v))
}

// BufferMinutesEQ applies the EQ predicate on the "buffer_minutes" field.
func BufferMinutesEQ(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldBufferMinutes, v))
}

// BufferMinutesNEQ applies the NEQ predicate on the "buffer_minutes" field.
func BufferMinutesNEQ(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldBufferMinutes, v))
}

// BufferMinutesIn applies the In predicate on the "buffer_minutes" field.
func BufferMinutesIn(vs ...int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIn(FieldBufferMinutes, vs...))
}

// BufferMinutesNotIn applies the NotIn predicate on the "buffer_minutes" field.
func BufferMinutesNotIn(vs ...int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotIn(FieldBufferMinutes, vs...))
}

// BufferMinutesGT applies the GT predicate on the "buffer_minutes" field.
func BufferMinutesGT(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGT(FieldBufferMinutes, v))
}

// BufferMinutesGTE applies the GTE predicate on the "buffer_minutes" field.
func BufferMinutesGTE(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGTE(FieldBufferMinutes, v))
}

// BufferMinutesLT applies the LT predicate on the "buffer_minutes" field.
func BufferMinutesLT(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLT(FieldBufferMinutes, v))
}

// BufferMinutesLTE applies the LTE predicate on the "buffer_minutes" field.
func BufferMinutesLTE(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLTE(FieldBufferMinutes, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldContainsFold(FieldLocation, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldContainsFold(FieldNotes, v))
}

// IsPublishedEQ applies the EQ predicate on the "is_published" field.
func IsPublishedEQ(v bool) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldIsPublished, v))
}

// IsPublishedNEQ applies the NEQ predicate on the "is_published" field.
func IsPublishedNEQ(v bool) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldIsPublished, v))
}

// ActiveBookingsEQ applies the EQ predicate on the "active_bookings" field.
func ActiveBookingsEQ(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldEQ(FieldActiveBookings, v))
}

// ActiveBookingsNEQ applies the NEQ predicate on the "active_bookings" field.
func ActiveBookingsNEQ(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNEQ(FieldActiveBookings, v))
}

// ActiveBookingsIn applies the In predicate on the "active_bookings" field.
func ActiveBookingsIn(vs ...int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldIn(FieldActiveBookings, vs...))
}

// ActiveBookingsNotIn applies the NotIn predicate on the "active_bookings" field.
func ActiveBookingsNotIn(vs ...int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldNotIn(FieldActiveBookings, vs...))
}

// ActiveBookingsGT applies the GT predicate on the "active_bookings" field.
func ActiveBookingsGT(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGT(FieldActiveBookings, v))
}

// ActiveBookingsGTE applies the GTE predicate on the "active_bookings" field.
func ActiveBookingsGTE(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldGTE(FieldActiveBookings, v))
}

// ActiveBookingsLT applies the LT predicate on the "active_bookings" field.
func ActiveBookingsLT(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLT(FieldActiveBookings, v))
}

// ActiveBookingsLTE applies the LTE predicate on the "active_bookings" field.
func ActiveBookingsLTE(v int) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.FieldLTE(FieldActiveBookings, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AvailabilityBlock) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AvailabilityBlock) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AvailabilityBlock) predicate.AvailabilityBlock {
	return predicate.AvailabilityBlock(sql.NotPredicates(p))
}
