package booking

// SubmitItemRequest is one line of a checkout submission. Dates use the
// 2006-01-02 layout and are required for room and surf-camp items.
type SubmitItemRequest struct {
	Type         string `json:"type" binding:"required,oneof=room surfCamp addOn"`
	ItemID       int64  `json:"item_id" binding:"required"`
	Quantity     int    `json:"quantity"`
	CheckIn      string `json:"check_in_date"`
	CheckOut     string `json:"check_out_date"`
	Participants int    `json:"participants"`
}

type DiscountRequest struct {
	Type  string  `json:"type" binding:"required,oneof=percentage fixed"`
	Value float64 `json:"value" binding:"gte=0"`
}

type SubmitBookingRequest struct {
	ClientName  string              `json:"client_name" binding:"required"`
	ClientEmail string              `json:"client_email" binding:"required,email"`
	Notes       string              `json:"notes"`
	Items       []SubmitItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount    *DiscountRequest    `json:"discount"`
}
