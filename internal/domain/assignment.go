package domain

import "time"

// RoomAssignment binds a bed or whole room to a date span for a booking.
// CheckIn is inclusive, CheckOut exclusive: the check-out day itself is free.
// Assignments are never mutated; cancellation deletes them.
type RoomAssignment struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id" validate:"required"`
	BedNumber *int      `json:"bed_number,omitempty"`
	CheckIn   time.Time `json:"check_in_date"`
	CheckOut  time.Time `json:"check_out_date"`
	BookingID int64     `json:"booking_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CoversDay reports whether the assignment occupies the calendar day d under
// half-open interval semantics.
func (a RoomAssignment) CoversDay(d time.Time) bool {
	return !a.CheckIn.After(d) && a.CheckOut.After(d)
}
