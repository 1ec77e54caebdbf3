package availability

import (
	"context"
	"log"
	"sort"
	"time"

	"heiwahouse/internal/domain"
	"heiwahouse/internal/modules/pricing"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"

	// The widget shows at most this many rooms.
	maxRoomResults = 8
)

// Service answers availability questions from the room catalog and the
// assignment table. When the store is unreachable it degrades to a
// deterministic fallback dataset flagged Fallback=true, unless constructed
// fail-loud, in which case the storage error propagates.
type Service struct {
	rooms       RoomRepository
	assignments AssignmentRepository
	failLoud    bool
}

func NewService(rooms RoomRepository, assignments AssignmentRepository, failLoud bool) *Service {
	return &Service{
		rooms:       rooms,
		assignments: assignments,
		failLoud:    failLoud,
	}
}

// ResolveDates computes per-day remaining capacity for every calendar day
// from start to end. An assignment occupies day d when
// check_in <= d < check_out; the check-out day itself is free.
func (s *Service) ResolveDates(ctx context.Context, startStr, endStr string, participants int) (*DatesResult, error) {
	start, end, err := parseRange(startStr, endStr)
	if err != nil {
		return nil, err
	}
	if participants < 1 {
		participants = 1
	}

	rooms, err := s.rooms.GetActive(ctx)
	if err != nil {
		return s.datesFailure(ctx, start, end, participants, err)
	}

	totalCapacity := 0
	for _, r := range rooms {
		totalCapacity += r.Capacity
	}

	// The overlap query is half-open, so the window must extend one day past
	// the last iterated date.
	assignments, err := s.assignments.GetOverlapping(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return s.datesFailure(ctx, start, end, participants, err)
	}

	result := &DatesResult{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		booked := 0
		for _, a := range assignments {
			if a.CoversDay(d) {
				booked++
			}
		}

		remaining := totalCapacity - booked
		if remaining < 0 {
			remaining = 0
		}
		available := remaining >= participants

		result.Days = append(result.Days, DateAvailability{
			Date:      d.Format(DateLayout),
			Available: available,
			Capacity:  totalCapacity,
			Booked:    booked,
			Remaining: remaining,
		})

		result.Summary.TotalDays++
		if available {
			result.Summary.AvailableDays++
		} else {
			result.Summary.SoldOutDays++
		}
	}

	return result, nil
}

// ResolveRooms keeps the rooms that can still take the requested party over
// the whole [start, end) window, ordered by remaining capacity then id,
// capped at maxRoomResults.
func (s *Service) ResolveRooms(ctx context.Context, startStr, endStr string, participants int) (*RoomsResult, error) {
	start, end, err := parseRange(startStr, endStr)
	if err != nil {
		return nil, err
	}
	if participants < 1 {
		participants = 1
	}

	rooms, err := s.rooms.GetActive(ctx)
	if err != nil {
		return s.roomsFailure(ctx, err)
	}

	assignments, err := s.assignments.GetOverlapping(ctx, start, end)
	if err != nil {
		return s.roomsFailure(ctx, err)
	}

	bookedByRoom := make(map[int64]int)
	for _, a := range assignments {
		bookedByRoom[a.RoomID]++
	}

	type candidate struct {
		room      domain.Room
		remaining int
	}
	var candidates []candidate
	for _, r := range rooms {
		remaining := r.Capacity - bookedByRoom[r.ID]
		if remaining >= participants {
			candidates = append(candidates, candidate{room: r, remaining: remaining})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].remaining != candidates[j].remaining {
			return candidates[i].remaining > candidates[j].remaining
		}
		return candidates[i].room.ID < candidates[j].room.ID
	})
	if len(candidates) > maxRoomResults {
		candidates = candidates[:maxRoomResults]
	}

	result := &RoomsResult{Rooms: make([]AvailableRoom, 0, len(candidates))}
	for _, c := range candidates {
		result.Rooms = append(result.Rooms, toAvailableRoom(c.room))
	}
	return result, nil
}

// CatalogRooms returns the active room catalog for the widget, capped like
// the availability listing.
func (s *Service) CatalogRooms(ctx context.Context) (*RoomsResult, error) {
	rooms, err := s.rooms.GetActive(ctx)
	if err != nil {
		return s.roomsFailure(ctx, err)
	}

	if len(rooms) > maxRoomResults {
		rooms = rooms[:maxRoomResults]
	}

	result := &RoomsResult{Rooms: make([]AvailableRoom, 0, len(rooms))}
	for _, r := range rooms {
		result.Rooms = append(result.Rooms, toAvailableRoom(r))
	}
	return result, nil
}

func (s *Service) datesFailure(ctx context.Context, start, end time.Time, participants int, err error) (*DatesResult, error) {
	// A cancelled request is the caller's abort, never a sold-out answer.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if s.failLoud {
		return nil, err
	}
	log.Printf("availability_degraded source=dates error=%q", err)
	return fallbackDates(start, end, participants), nil
}

func (s *Service) roomsFailure(ctx context.Context, err error) (*RoomsResult, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if s.failLoud {
		return nil, err
	}
	log.Printf("availability_degraded source=rooms error=%q", err)
	return fallbackRooms(), nil
}

func toAvailableRoom(r domain.Room) AvailableRoom {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return AvailableRoom{
		ID:            r.ID,
		Name:          r.Name,
		Capacity:      r.Capacity,
		PricePerNight: pricing.NightlyRoomRate(&r, 1),
		Amenities:     amenities,
		FeaturedImage: r.FeaturedImage,
		Description:   r.Description,
		BookingType:   string(r.BookingType),
	}
}

func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateLayout, startStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	end, err := time.ParseInLocation(DateLayout, endStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return start, end, nil
}
