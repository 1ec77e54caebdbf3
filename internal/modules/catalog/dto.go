package catalog

import "heiwahouse/internal/domain"

type RoomRequest struct {
	Name          string             `json:"name" binding:"required"`
	Description   string             `json:"description"`
	Capacity      int                `json:"capacity" binding:"required,gt=0"`
	BookingType   string             `json:"booking_type" binding:"required,oneof=whole perBed"`
	Pricing       domain.RoomPricing `json:"pricing"`
	Amenities     []string           `json:"amenities"`
	FeaturedImage string             `json:"featured_image"`
	IsActive      *bool              `json:"is_active"`
}

type SurfCampRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	BasePrice      float64 `json:"base_price" binding:"gte=0"`
	DurationNights int     `json:"duration_nights" binding:"gte=0"`
	Capacity       int     `json:"capacity" binding:"gte=0"`
	IsActive       *bool   `json:"is_active"`
}

type AddOnRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	IsActive    *bool   `json:"is_active"`
}
