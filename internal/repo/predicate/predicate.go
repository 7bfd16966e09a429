// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AvailabilityBlock is the predicate function for availabilityblock builders.
type AvailabilityBlock func(*sql.Selector)

// Booking is the predicate function for booking builders.
type Booking func(*sql.Selector)

// ProcedureLogEntry is the predicate function for procedurelogentry builders.
type ProcedureLogEntry func(*sql.Selector)
