package availability

import "errors"

var (
	ErrInvalidTimeRange  = errors.New("end_time must be after start_time")
	ErrInvalidCapacity   = errors.New("capacity must be a positive integer")
	ErrInvalidBuffer     = errors.New("buffer_minutes must not be negative")
	ErrOverlap           = errors.New("block overlaps an existing published block for this supervisor")
	ErrConcurrentPublish = errors.New("a concurrent publish for this supervisor conflicted, retry")
	ErrBlockNotFound     = errors.New("availability block not found")
	ErrBlockInUse        = errors.New("availability block is referenced by bookings and is retained for audit")
	ErrNotOwner          = errors.New("only the owning supervisor or an admin may do this")
)
