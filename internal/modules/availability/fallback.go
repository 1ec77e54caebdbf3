package availability

import "time"

// Degraded-mode datasets. The widget must keep rendering when the store is
// down, so resolver failures produce synthetic data flagged Fallback=true
// instead of an empty result. The data is deterministic: identical requests
// yield identical fallbacks, which keeps cache entries and retries stable.

const fallbackCapacity = 12

func fallbackDates(start, end time.Time, participants int) *DatesResult {
	result := &DatesResult{Fallback: true}

	i := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		// A mild occupancy pattern so the calendar looks plausible.
		booked := (i * 3) % 7
		remaining := fallbackCapacity - booked
		available := remaining >= participants

		result.Days = append(result.Days, DateAvailability{
			Date:      d.Format(DateLayout),
			Available: available,
			Capacity:  fallbackCapacity,
			Booked:    booked,
			Remaining: remaining,
		})

		result.Summary.TotalDays++
		if available {
			result.Summary.AvailableDays++
		} else {
			result.Summary.SoldOutDays++
		}
		i++
	}

	return result
}

func fallbackRooms() *RoomsResult {
	return &RoomsResult{
		Fallback: true,
		Rooms: []AvailableRoom{
			{
				ID:            1,
				Name:          "Ocean View Dorm",
				Capacity:      8,
				PricePerNight: 45,
				Amenities:     []string{"wifi", "lockers", "shared bathroom"},
				Description:   "Shared dorm with a view over the break.",
				BookingType:   "perBed",
			},
			{
				ID:            2,
				Name:          "Garden Double",
				Capacity:      2,
				PricePerNight: 110,
				Amenities:     []string{"wifi", "ensuite", "terrace"},
				Description:   "Private double room facing the garden.",
				BookingType:   "whole",
			},
			{
				ID:            3,
				Name:          "Beachfront Suite",
				Capacity:      4,
				PricePerNight: 180,
				Amenities:     []string{"wifi", "ensuite", "kitchenette"},
				Description:   "Family suite steps from the sand.",
				BookingType:   "whole",
			},
		},
	}
}
