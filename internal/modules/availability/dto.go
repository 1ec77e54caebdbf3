package availability

// DateAvailability is the per-day capacity picture for a query window. It is
// derived on every resolve and never persisted.
type DateAvailability struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
}

type Summary struct {
	TotalDays     int `json:"total_days"`
	AvailableDays int `json:"available_days"`
	SoldOutDays   int `json:"sold_out_days"`
}

// DatesResult carries the resolved days plus a fallback marker so consumers
// can distinguish real data from the synthetic degraded-mode dataset.
type DatesResult struct {
	Days     []DateAvailability `json:"date_availability"`
	Summary  Summary            `json:"summary"`
	Fallback bool               `json:"-"`
}

type AvailableRoom struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	FeaturedImage string   `json:"featured_image,omitempty"`
	Description   string   `json:"description,omitempty"`
	BookingType   string   `json:"booking_type"`
}

type RoomsResult struct {
	Rooms    []AvailableRoom `json:"available_rooms"`
	Fallback bool            `json:"-"`
}
