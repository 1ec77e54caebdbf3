package availability

import "errors"

var (
	ErrInvalidRange = errors.New("availability: invalid date range")
)
