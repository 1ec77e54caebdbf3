package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type BookingItemType string

const (
	ItemRoom     BookingItemType = "room"
	ItemSurfCamp BookingItemType = "surfCamp"
	ItemAddOn    BookingItemType = "addOn"
)

// BookingItem is a priced line inside a booking. Items are immutable once the
// booking is persisted; edits create new items.
type BookingItem struct {
	ID           int64           `json:"id"`
	BookingID    int64           `json:"booking_id"`
	Type         BookingItemType `json:"type" validate:"required"`
	ItemID       int64           `json:"item_id" validate:"required"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice    float64         `json:"unit_price"`
	TotalPrice   float64         `json:"total_price"`
	CheckIn      *time.Time      `json:"check_in_date,omitempty"`
	CheckOut     *time.Time      `json:"check_out_date,omitempty"`
	Nights       *int            `json:"nights,omitempty"`
	Participants *int            `json:"participants,omitempty"`
}

type Booking struct {
	ID             int64         `json:"id"`
	Reference      string        `json:"reference"`
	ClientName     string        `json:"client_name" validate:"required"`
	ClientEmail    string        `json:"client_email" validate:"required,email"`
	Status         BookingStatus `json:"status"`
	Subtotal       float64       `json:"subtotal"`
	TaxAmount      float64       `json:"tax_amount"`
	FeeAmount      float64       `json:"fee_amount"`
	DiscountAmount float64       `json:"discount_amount"`
	Total          float64       `json:"total"`
	Notes          string        `json:"notes,omitempty"`
	Items          []BookingItem `json:"items,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty"`
}
