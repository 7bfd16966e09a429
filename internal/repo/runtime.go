// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/availabilityblock"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/booking"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
	"github.com/inkwell-hq/inkwell_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	availabilityblockMixin := schema.AvailabilityBlock{}.Mixin()
	availabilityblockMixinFields0 := availabilityblockMixin[0].Fields()
	_ = availabilityblockMixinFields0
	availabilityblockMixinFields1 := availabilityblockMixin[1].Fields()
	_ = availabilityblockMixinFields1
	availabilityblockFields := schema.AvailabilityBlock{}.Fields()
	_ = availabilityblockFields
	// availabilityblockDescCreatedAt is the schema descriptor for created_at field.
	availabilityblockDescCreatedAt := availabilityblockMixinFields1[0].Descriptor()
	// availabilityblock.DefaultCreatedAt holds the default value on creation for the created_at field.
	availabilityblock.DefaultCreatedAt = availabilityblockDescCreatedAt.Default.(func() time.Time)
	// availabilityblockDescUpdatedAt is the schema descriptor for updated_at field.
	availabilityblockDescUpdatedAt := availabilityblockMixinFields1[1].Descriptor()
	// availabilityblock.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availabilityblock.DefaultUpdatedAt = availabilityblockDescUpdatedAt.Default.(func() time.Time)
	// availabilityblock.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availabilityblock.UpdateDefaultUpdatedAt = availabilityblockDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilityblockDescCapacity is the schema descriptor for capacity field.
	availabilityblockDescCapacity := availabilityblockFields[3].Descriptor()
	// availabilityblock.DefaultCapacity holds the default value on creation for the capacity field.
	availabilityblock.DefaultCapacity = availabilityblockDescCapacity.Default.(int)
	// availabilityblock.CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	availabilityblock.CapacityValidator = availabilityblockDescCapacity.Validators[0].(func(int) error)
	// availabilityblockDescBufferMinutes is the schema descriptor for buffer_minutes field.
	availabilityblockDescBufferMinutes := availabilityblockFields[4].Descriptor()
	// availabilityblock.DefaultBufferMinutes holds the default value on creation for the buffer_minutes field.
	availabilityblock.DefaultBufferMinutes = availabilityblockDescBufferMinutes.Default.(int)
	// availabilityblock.BufferMinutesValidator is a validator for the "buffer_minutes" field. It is called by the builders before save.
	availabilityblock.BufferMinutesValidator = availabilityblockDescBufferMinutes.Validators[0].(func(int) error)
	// availabilityblockDescIsPublished is the schema descriptor for is_published field.
	availabilityblockDescIsPublished := availabilityblockFields[7].Descriptor()
	// availabilityblock.DefaultIsPublished holds the default value on creation for the is_published field.
	availabilityblock.DefaultIsPublished = availabilityblockDescIsPublished.Default.(bool)
	// availabilityblockDescActiveBookings is the schema descriptor for active_bookings field.
	availabilityblockDescActiveBookings := availabilityblockFields[8].Descriptor()
	// availabilityblock.DefaultActiveBookings holds the default value on creation for the active_bookings field.
	availabilityblock.DefaultActiveBookings = availabilityblockDescActiveBookings.Default.(int)
	// availabilityblock.ActiveBookingsValidator is a validator for the "active_bookings" field. It is called by the builders before save.
	availabilityblock.ActiveBookingsValidator = availabilityblockDescActiveBookings.Validators[0].(func(int) error)
	// availabilityblockDescID is the schema descriptor for id field.
	availabilityblockDescID := availabilityblockMixinFields0[0].Descriptor()
	// availabilityblock.DefaultID holds the default value on creation for the id field.
	availabilityblock.DefaultID = availabilityblockDescID.Default.(func() uuid.UUID)
	bookingMixin := schema.Booking{}.Mixin()
	bookingMixinFields0 := bookingMixin[0].Fields()
	_ = bookingMixinFields0
	bookingMixinFields1 := bookingMixin[1].Fields()
	_ = bookingMixinFields1
	bookingFields := schema.Booking{}.Fields()
	_ = bookingFields
	// bookingDescCreatedAt is the schema descriptor for created_at field.
	bookingDescCreatedAt := bookingMixinFields1[0].Descriptor()
	// booking.DefaultCreatedAt holds the default value on creation for the created_at field.
	booking.DefaultCreatedAt = bookingDescCreatedAt.Default.(func() time.Time)
	// bookingDescUpdatedAt is the schema descriptor for updated_at field.
	bookingDescUpdatedAt := bookingMixinFields1[1].Descriptor()
	// booking.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	booking.DefaultUpdatedAt = bookingDescUpdatedAt.Default.(func() time.Time)
	// booking.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	booking.UpdateDefaultUpdatedAt = bookingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bookingDescProcedureType is the schema descriptor for procedure_type field.
	bookingDescProcedureType := bookingFields[7].Descriptor()
	// booking.ProcedureTypeValidator is a validator for the "procedure_type" field. It is called by the builders before save.
	booking.ProcedureTypeValidator = bookingDescProcedureType.Validators[0].(func(string) error)
	// bookingDescID is the schema descriptor for id field.
	bookingDescID := bookingMixinFields0[0].Descriptor()
	// booking.DefaultID holds the default value on creation for the id field.
	booking.DefaultID = bookingDescID.Default.(func() uuid.UUID)
	procedurelogentryMixin := schema.ProcedureLogEntry{}.Mixin()
	procedurelogentryMixinFields0 := procedurelogentryMixin[0].Fields()
	_ = procedurelogentryMixinFields0
	procedurelogentryMixinFields1 := procedurelogentryMixin[1].Fields()
	_ = procedurelogentryMixinFields1
	procedurelogentryFields := schema.ProcedureLogEntry{}.Fields()
	_ = procedurelogentryFields
	// procedurelogentryDescCreatedAt is the schema descriptor for created_at field.
	procedurelogentryDescCreatedAt := procedurelogentryMixinFields1[0].Descriptor()
	// procedurelogentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	procedurelogentry.DefaultCreatedAt = procedurelogentryDescCreatedAt.Default.(func() time.Time)
	// procedurelogentryDescProcedureType is the schema descriptor for procedure_type field.
	procedurelogentryDescProcedureType := procedurelogentryFields[5].Descriptor()
	// procedurelogentry.ProcedureTypeValidator is a validator for the "procedure_type" field. It is called by the builders before save.
	procedurelogentry.ProcedureTypeValidator = procedurelogentryDescProcedureType.Validators[0].(func(string) error)
	// procedurelogentryDescComplianceChecked is the schema descriptor for compliance_checked field.
	procedurelogentryDescComplianceChecked := procedurelogentryFields[7].Descriptor()
	// procedurelogentry.DefaultComplianceChecked holds the default value on creation for the compliance_checked field.
	procedurelogentry.DefaultComplianceChecked = procedurelogentryDescComplianceChecked.Default.(bool)
	// procedurelogentryDescID is the schema descriptor for id field.
	procedurelogentryDescID := procedurelogentryMixinFields0[0].Descriptor()
	// procedurelogentry.DefaultID holds the default value on creation for the id field.
	procedurelogentry.DefaultID = procedurelogentryDescID.Default.(func() uuid.UUID)
}
