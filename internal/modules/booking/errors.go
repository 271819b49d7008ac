package booking

import "errors"

var (
	ErrNotFound       = errors.New("booking not found")
	ErrUnknownService = errors.New("booked service does not exist")
	ErrInvalidDate    = errors.New("booking date must be YYYY-MM-DD")
	ErrInvalidTime    = errors.New("start time must be HH:MM")
	ErrInvalidStatus  = errors.New("unknown booking status")
)
