package pricing

import "time"

// Bookings can be made at most this far in advance.
const maxAdvanceYears = 2

// DateValidation is a checked result rather than an error: callers must
// inspect IsValid before proceeding.
type DateValidation struct {
	IsValid bool
	Error   string
}

// ValidateBookingDates checks a check-in/check-out pair: the check-in may not
// be in the past (date-only comparison), the check-out must come after it,
// and the stay may not start more than two years out.
func ValidateBookingDates(start, end time.Time) DateValidation {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	if checkIn.Before(today) {
		return DateValidation{Error: "check-in date cannot be in the past"}
	}
	if !checkOut.After(checkIn) {
		return DateValidation{Error: "check-out date must be after check-in date"}
	}
	if checkIn.After(today.AddDate(maxAdvanceYears, 0, 0)) {
		return DateValidation{Error: "check-in date is too far in the future"}
	}

	return DateValidation{IsValid: true}
}
