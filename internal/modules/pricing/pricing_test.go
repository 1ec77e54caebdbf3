package pricing

import (
	"testing"
	"time"

	"heiwahouse/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculateNights(t *testing.T) {
	assert.Equal(t, 2, CalculateNights(date("2025-02-01"), date("2025-02-03")))
	assert.Equal(t, 2, CalculateNights(date("2025-02-01"), date("2025-02-03")), "repeated calls agree")
	assert.Equal(t, 1, CalculateNights(time.Time{}, time.Time{}), "no dates means one night")
	assert.Equal(t, 1, CalculateNights(date("2025-02-03"), date("2025-02-01")), "inverted range floors at one")
	assert.Equal(t, 1, CalculateNights(date("2025-02-01"), date("2025-02-01")))
}

func TestCalculateRoomPrice_WholeRoomStandardRate(t *testing.T) {
	room := &domain.Room{
		BookingType: domain.BookWhole,
		Pricing:     domain.RoomPricing{Standard: 100},
	}

	unit, total := CalculateRoomPrice(room, date("2025-02-01"), date("2025-02-03"), 1)

	assert.Equal(t, 200.0, unit)
	assert.Equal(t, 200.0, total)
}

func TestCalculateRoomPrice_PerBedCampRate(t *testing.T) {
	room := &domain.Room{
		BookingType: domain.BookPerBed,
		Pricing: domain.RoomPricing{
			Standard: 45,
			Camp:     &domain.CampPricing{Kind: domain.CampPerBed, PerBed: 40},
		},
	}

	unit, total := CalculateRoomPrice(room, date("2025-06-01"), date("2025-06-04"), 1)

	assert.Equal(t, 120.0, unit, "three nights at the camp per-bed rate")
	assert.Equal(t, 120.0, total)
}

func TestCalculateRoomPrice_PerBedFallsBackToStandard(t *testing.T) {
	room := &domain.Room{
		BookingType: domain.BookPerBed,
		Pricing:     domain.RoomPricing{Standard: 45},
	}

	unit, _ := CalculateRoomPrice(room, date("2025-06-01"), date("2025-06-03"), 1)

	assert.Equal(t, 90.0, unit)
}

func TestCalculateRoomPrice_OccupancyTable(t *testing.T) {
	room := &domain.Room{
		BookingType: domain.BookWhole,
		Pricing: domain.RoomPricing{
			Standard: 110,
			Camp: &domain.CampPricing{
				Kind:        domain.CampByOccupancy,
				ByOccupancy: map[int]float64{1: 95, 2: 120},
			},
		},
	}

	unit, total := CalculateRoomPrice(room, date("2025-06-01"), date("2025-06-03"), 2)
	assert.Equal(t, 240.0, unit, "exact occupancy match")
	assert.Equal(t, 480.0, total)

	// No entry for 3 guests: falls back to the single-occupancy rate.
	unit, _ = CalculateRoomPrice(room, date("2025-06-01"), date("2025-06-03"), 3)
	assert.Equal(t, 190.0, unit)
}

func TestCalculateRoomPrice_NoPricingDegradesToZero(t *testing.T) {
	room := &domain.Room{BookingType: domain.BookWhole}

	unit, total := CalculateRoomPrice(room, date("2025-06-01"), date("2025-06-03"), 1)

	assert.Equal(t, 0.0, unit, "zero means price unknown, not free")
	assert.Equal(t, 0.0, total)
}

func TestCalculateRoomPrice_OffSeasonFallback(t *testing.T) {
	off := 38.0
	room := &domain.Room{
		BookingType: domain.BookPerBed,
		Pricing:     domain.RoomPricing{OffSeason: &off},
	}

	unit, _ := CalculateRoomPrice(room, date("2025-11-01"), date("2025-11-03"), 1)

	assert.Equal(t, 76.0, unit)
}

func TestCalculateSurfCampPrice_GroupDiscountCap(t *testing.T) {
	camp := &domain.SurfCamp{BasePrice: 100, DurationNights: 1}

	// 10 participants would be a 90% linear discount; the cap holds it at 30%.
	unit, total := CalculateSurfCampPrice(camp, 10, 1)

	assert.Equal(t, 70.0, unit)
	assert.Equal(t, 700.0, total)
}

func TestCalculateSurfCampPrice_DurationMultiplier(t *testing.T) {
	camp := &domain.SurfCamp{BasePrice: 75, DurationNights: 7}

	unit, total := CalculateSurfCampPrice(camp, 1, 0)

	assert.Equal(t, 525.0, unit, "zero duration uses the camp default")
	assert.Equal(t, 525.0, total)

	unit, total = CalculateSurfCampPrice(camp, 2, 5)
	assert.Equal(t, 337.5, unit, "five nights with a 10% group discount")
	assert.Equal(t, 675.0, total)
}

func TestCalculateAddOnPrice(t *testing.T) {
	addOn := &domain.AddOn{Price: 35}

	unit, total := CalculateAddOnPrice(addOn, 3)

	assert.Equal(t, 35.0, unit)
	assert.Equal(t, 105.0, total)

	unit, total = CalculateAddOnPrice(addOn, 0)
	assert.Equal(t, 35.0, total, "quantity floors at one")
	assert.Equal(t, 35.0, unit)
}

func TestCalculatePriceBreakdown(t *testing.T) {
	items := []domain.BookingItem{
		{TotalPrice: 200},
		{TotalPrice: 100},
	}

	b := CalculatePriceBreakdown(items, DefaultTaxRate, DefaultServiceFeeRate, 0)

	assert.Equal(t, 300.0, b.Subtotal)
	assert.Equal(t, 30.0, b.TaxAmount)
	assert.Equal(t, 15.0, b.FeeAmount)
	assert.Equal(t, 345.0, b.Total)
}

func TestCalculatePriceBreakdown_NeverNegative(t *testing.T) {
	items := []domain.BookingItem{{TotalPrice: 100}}

	b := CalculatePriceBreakdown(items, DefaultTaxRate, DefaultServiceFeeRate, 10000)

	assert.Equal(t, 0.0, b.Total, "discount larger than everything clamps at zero")
}

func TestCalculatePriceBreakdown_Empty(t *testing.T) {
	b := CalculatePriceBreakdown(nil, DefaultTaxRate, DefaultServiceFeeRate, 0)

	assert.Equal(t, 0.0, b.Subtotal)
	assert.Equal(t, 0.0, b.Total)
}

func TestApplyDiscount(t *testing.T) {
	discount, newTotal := ApplyDiscount(200, DiscountPercentage, 25)
	assert.Equal(t, 50.0, discount)
	assert.Equal(t, 150.0, newTotal)

	discount, newTotal = ApplyDiscount(200, DiscountFixed, 80)
	assert.Equal(t, 80.0, discount)
	assert.Equal(t, 120.0, newTotal)
}

func TestApplyDiscount_FixedCappedAtTotal(t *testing.T) {
	discount, newTotal := ApplyDiscount(50, DiscountFixed, 500)

	assert.Equal(t, 50.0, discount)
	assert.Equal(t, 0.0, newTotal, "a discount never produces a negative total")
}

func TestApplyDiscount_NegativeValueIgnored(t *testing.T) {
	discount, newTotal := ApplyDiscount(100, DiscountFixed, -20)

	assert.Equal(t, 0.0, discount)
	assert.Equal(t, 100.0, newTotal)
}
