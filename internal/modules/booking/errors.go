package booking

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrMinimumStay  = errors.New("minimum stay is 2 nights")
	ErrNotFound     = errors.New("booking not found")
	ErrNotAvailable = errors.New("booking not available")
	ErrOverbooking  = errors.New("overbooking constraint violation")
	ErrCancelled    = errors.New("booking already cancelled")
)
