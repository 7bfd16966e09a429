package booking

import (
	"errors"
	"fmt"

	entbooking "github.com/inkwell-hq/inkwell_backend/internal/repo/booking"
)

var (
	ErrBlockNotFound         = errors.New("availability block not found")
	ErrCapacityExceeded      = errors.New("this block is fully booked, pick another slot")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrNotParticipant        = errors.New("only the booking's participants or an admin may do this")
	ErrProcedureTypeRequired = errors.New("procedure_type is required")
	ErrInvalidClientPhone    = errors.New("client_phone is not a valid phone number")
)

// StateTransitionError reports an attempted move the booking state machine
// forbids. The booking row is left unchanged.
type StateTransitionError struct {
	From entbooking.Status
	To   entbooking.Status
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("illegal booking transition from %s to %s", e.From, e.To)
}
