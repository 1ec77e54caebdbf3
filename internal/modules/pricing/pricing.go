package pricing

import (
	"math"
	"time"

	"heiwahouse/internal/domain"
)

const (
	DefaultTaxRate        = 0.10
	DefaultServiceFeeRate = 0.05

	// Group discount grows 10% per extra participant, capped at 30%.
	groupDiscountStep = 0.10
	groupDiscountCap  = 0.30
)

// CalculateNights counts nights between two dates: ceil of the day
// difference, never below 1. Zero dates mean a single night.
func CalculateNights(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 1
	}
	nights := int(math.Ceil(end.Sub(start).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// CalculateRoomPrice converts a room plus booking parameters into unit and
// total price. Rooms without any pricing record yield 0 — callers must treat
// a zero unit price as "price unknown", not "free".
func CalculateRoomPrice(room *domain.Room, start, end time.Time, quantity int) (unitPrice, totalPrice float64) {
	if quantity < 1 {
		quantity = 1
	}
	nights := CalculateNights(start, end)
	rate := NightlyRoomRate(room, quantity)

	unitPrice = round2(rate * float64(nights))
	totalPrice = round2(unitPrice * float64(quantity))
	return unitPrice, totalPrice
}

// NightlyRoomRate picks the rate for one night. Per-bed rooms prefer the
// camp per-bed rate; whole rooms look the guest count up in the occupancy
// table, falling back to the single-occupancy entry. Missing camp pricing
// falls through to the standard (or off-season) rate.
func NightlyRoomRate(room *domain.Room, guests int) float64 {
	camp := room.Pricing.Camp

	if room.BookingType == domain.BookPerBed {
		if camp != nil && camp.Kind == domain.CampPerBed && camp.PerBed > 0 {
			return camp.PerBed
		}
		return standardRate(room)
	}

	if camp != nil && camp.Kind == domain.CampByOccupancy && len(camp.ByOccupancy) > 0 {
		if rate, ok := camp.ByOccupancy[guests]; ok {
			return rate
		}
		if rate, ok := camp.ByOccupancy[1]; ok {
			return rate
		}
	}
	return standardRate(room)
}

func standardRate(room *domain.Room) float64 {
	if room.Pricing.Standard > 0 {
		return room.Pricing.Standard
	}
	if room.Pricing.OffSeason != nil {
		return *room.Pricing.OffSeason
	}
	return 0
}

// CalculateSurfCampPrice prices a camp package for a group. A linear group
// discount applies per extra participant. Zero duration uses the camp's
// default package length.
func CalculateSurfCampPrice(camp *domain.SurfCamp, participants, durationNights int) (unitPrice, totalPrice float64) {
	if participants < 1 {
		participants = 1
	}
	if durationNights <= 0 {
		durationNights = camp.DurationNights
	}

	unitPrice = camp.BasePrice
	if durationNights > 1 {
		unitPrice = camp.BasePrice * float64(durationNights)
	}

	discountRate := groupDiscountStep * float64(participants-1)
	if discountRate > groupDiscountCap {
		discountRate = groupDiscountCap
	}

	unitPrice = round2(unitPrice * (1 - discountRate))
	totalPrice = round2(unitPrice * float64(participants))
	return unitPrice, totalPrice
}

func CalculateAddOnPrice(addOn *domain.AddOn, quantity int) (unitPrice, totalPrice float64) {
	if quantity < 1 {
		quantity = 1
	}
	unitPrice = addOn.Price
	totalPrice = round2(unitPrice * float64(quantity))
	return unitPrice, totalPrice
}

// Breakdown aggregates a list of booking items into checkout totals.
// Total never goes negative, however large the discount.
type Breakdown struct {
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	FeeAmount      float64 `json:"fee_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`
}

func CalculatePriceBreakdown(items []domain.BookingItem, taxRate, serviceFeeRate, discountAmount float64) Breakdown {
	var subtotal float64
	for _, item := range items {
		subtotal += item.TotalPrice
	}

	taxes := round2(subtotal * taxRate)
	fees := round2(subtotal * serviceFeeRate)

	total := subtotal + taxes + fees - discountAmount
	if total < 0 {
		total = 0
	}

	return Breakdown{
		Subtotal:       round2(subtotal),
		TaxAmount:      taxes,
		FeeAmount:      fees,
		DiscountAmount: round2(discountAmount),
		Total:          round2(total),
	}
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// ApplyDiscount computes the discount amount for a total and the resulting
// new total. Fixed discounts are capped at the total, so the result is never
// negative.
func ApplyDiscount(total float64, kind DiscountType, value float64) (discount, newTotal float64) {
	switch kind {
	case DiscountPercentage:
		discount = total * value / 100
	case DiscountFixed:
		discount = value
	}
	if discount > total {
		discount = total
	}
	if discount < 0 {
		discount = 0
	}
	return round2(discount), round2(total - discount)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
