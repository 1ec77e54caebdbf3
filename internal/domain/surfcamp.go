package domain

import "time"

type SurfCamp struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name" validate:"required"`
	Description    string    `json:"description,omitempty"`
	BasePrice      float64   `json:"base_price" validate:"required,gte=0"`
	DurationNights int       `json:"duration_nights"`
	Capacity       int       `json:"capacity"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
