package domain

import "time"

type BookingType string

const (
	BookWhole  BookingType = "whole"
	BookPerBed BookingType = "perBed"
)

type CampPricingKind string

const (
	CampPerBed      CampPricingKind = "perBed"
	CampByOccupancy CampPricingKind = "byOccupancy"
)

// CampPricing is the surf-camp rate attached to a room. Exactly one branch is
// meaningful, selected by Kind: a flat per-bed nightly rate, or a table of
// nightly rates keyed by occupancy.
type CampPricing struct {
	Kind        CampPricingKind `json:"kind"`
	PerBed      float64         `json:"per_bed,omitempty"`
	ByOccupancy map[int]float64 `json:"by_occupancy,omitempty"`
}

type RoomPricing struct {
	Standard  float64      `json:"standard"`
	OffSeason *float64     `json:"off_season,omitempty"`
	Camp      *CampPricing `json:"camp,omitempty"`
}

type Room struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name" validate:"required"`
	Description   string      `json:"description,omitempty"`
	Capacity      int         `json:"capacity" validate:"required,gt=0"`
	BookingType   BookingType `json:"booking_type" validate:"required"`
	Pricing       RoomPricing `json:"pricing"`
	Amenities     []string    `json:"amenities,omitempty"`
	FeaturedImage string      `json:"featured_image,omitempty"`
	IsActive      bool        `json:"is_active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
