package ledger

import "errors"

var (
	// ErrDuplicateEntry means a ledger row already exists for the booking.
	ErrDuplicateEntry = errors.New("ledger entry already exists for booking")

	ErrEntryNotFound = errors.New("ledger entry not found")
)
