package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"heiwahouse/internal/domain"
	"heiwahouse/internal/modules/pricing"
	"heiwahouse/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const minRoomStayNights = 2

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	camps    SurfCampRepository
	addOns   AddOnRepository
	feed     FeedNotifier
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	camps SurfCampRepository,
	addOns AddOnRepository,
	feed FeedNotifier,
) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		camps:    camps,
		addOns:   addOns,
		feed:     feed,
	}
}

// Submit prices the requested items, validates their dates, and persists the
// booking with its room assignments. Capacity is re-validated inside the
// insert transaction; a conflict rolls everything back.
func (s *Service) Submit(ctx context.Context, req SubmitBookingRequest) (*domain.Booking, error) {
	var (
		items       []domain.BookingItem
		assignments []domain.RoomAssignment
	)

	for _, ir := range req.Items {
		item, assigns, err := s.buildItem(ctx, ir)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
		assignments = append(assignments, assigns...)
	}

	breakdown := pricing.CalculatePriceBreakdown(items, pricing.DefaultTaxRate, pricing.DefaultServiceFeeRate, 0)
	if req.Discount != nil {
		discount, _ := pricing.ApplyDiscount(breakdown.Total, pricing.DiscountType(req.Discount.Type), req.Discount.Value)
		breakdown = pricing.CalculatePriceBreakdown(items, pricing.DefaultTaxRate, pricing.DefaultServiceFeeRate, discount)
	}

	b := &domain.Booking{
		Reference:      uuid.NewString(),
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		Status:         domain.BookingPending,
		Subtotal:       breakdown.Subtotal,
		TaxAmount:      breakdown.TaxAmount,
		FeeAmount:      breakdown.FeeAmount,
		DiscountAmount: breakdown.DiscountAmount,
		Total:          breakdown.Total,
		Notes:          req.Notes,
		Items:          items,
	}

	if err := s.bookings.CreateWithAssignments(ctx, b, assignments); err != nil {
		if errors.Is(err, repository.ErrCapacityExceeded) {
			return nil, ErrNotAvailable
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// 23505 unique violation, 23P01 exclusion violation: the
			// no-overbooking constraint fired under concurrent inserts.
			if pgErr.Code == "23505" || pgErr.Code == "23P01" {
				return nil, ErrOverbooking
			}
		}
		return nil, err
	}

	if s.feed != nil {
		s.feed.NotifyBookingCreated(b)
	}

	return b, nil
}

func (s *Service) buildItem(ctx context.Context, ir SubmitItemRequest) (*domain.BookingItem, []domain.RoomAssignment, error) {
	quantity := ir.Quantity
	if quantity < 1 {
		quantity = 1
	}

	switch domain.BookingItemType(ir.Type) {
	case domain.ItemRoom:
		return s.buildRoomItem(ctx, ir, quantity)
	case domain.ItemSurfCamp:
		return s.buildSurfCampItem(ctx, ir, quantity)
	case domain.ItemAddOn:
		return s.buildAddOnItem(ctx, ir, quantity)
	default:
		return nil, nil, fmt.Errorf("%w: unknown item type %q", ErrValidation, ir.Type)
	}
}

func (s *Service) buildRoomItem(ctx context.Context, ir SubmitItemRequest, quantity int) (*domain.BookingItem, []domain.RoomAssignment, error) {
	checkIn, checkOut, err := parseItemDates(ir.CheckIn, ir.CheckOut)
	if err != nil {
		return nil, nil, err
	}
	if v := pricing.ValidateBookingDates(checkIn, checkOut); !v.IsValid {
		return nil, nil, fmt.Errorf("%w: %s", ErrValidation, v.Error)
	}

	nights := pricing.CalculateNights(checkIn, checkOut)
	if nights < minRoomStayNights {
		return nil, nil, ErrMinimumStay
	}

	room, err := s.rooms.GetByID(ctx, ir.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: room %d", ErrNotFound, ir.ItemID)
		}
		return nil, nil, err
	}
	if !room.IsActive {
		return nil, nil, fmt.Errorf("%w: room %d is not bookable", ErrValidation, ir.ItemID)
	}

	unit, total := pricing.CalculateRoomPrice(room, checkIn, checkOut, quantity)

	item := &domain.BookingItem{
		Type:       domain.ItemRoom,
		ItemID:     room.ID,
		Quantity:   quantity,
		UnitPrice:  unit,
		TotalPrice: total,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		Nights:     &nights,
	}
	if ir.Participants > 0 {
		p := ir.Participants
		item.Participants = &p
	}

	// One assignment per booked unit: a bed for perBed rooms, the whole
	// room otherwise.
	assignments := make([]domain.RoomAssignment, 0, quantity)
	for i := 0; i < quantity; i++ {
		a := domain.RoomAssignment{
			RoomID:   room.ID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
		}
		if room.BookingType == domain.BookPerBed {
			bed := i + 1
			a.BedNumber = &bed
		}
		assignments = append(assignments, a)
	}

	return item, assignments, nil
}

func (s *Service) buildSurfCampItem(ctx context.Context, ir SubmitItemRequest, quantity int) (*domain.BookingItem, []domain.RoomAssignment, error) {
	camp, err := s.camps.GetByID(ctx, ir.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: surf camp %d", ErrNotFound, ir.ItemID)
		}
		return nil, nil, err
	}
	if !camp.IsActive {
		return nil, nil, fmt.Errorf("%w: surf camp %d is not bookable", ErrValidation, ir.ItemID)
	}

	participants := ir.Participants
	if participants < 1 {
		participants = 1
	}

	duration := camp.DurationNights
	var checkIn, checkOut time.Time
	if ir.CheckIn != "" && ir.CheckOut != "" {
		checkIn, checkOut, err = parseItemDates(ir.CheckIn, ir.CheckOut)
		if err != nil {
			return nil, nil, err
		}
		if v := pricing.ValidateBookingDates(checkIn, checkOut); !v.IsValid {
			return nil, nil, fmt.Errorf("%w: %s", ErrValidation, v.Error)
		}
		duration = pricing.CalculateNights(checkIn, checkOut)
	}

	unit, total := pricing.CalculateSurfCampPrice(camp, participants, duration)

	item := &domain.BookingItem{
		Type:         domain.ItemSurfCamp,
		ItemID:       camp.ID,
		Quantity:     quantity,
		UnitPrice:    unit,
		TotalPrice:   total,
		Participants: &participants,
	}
	if !checkIn.IsZero() {
		item.CheckIn = &checkIn
		item.CheckOut = &checkOut
		item.Nights = &duration
	}
	return item, nil, nil
}

func (s *Service) buildAddOnItem(ctx context.Context, ir SubmitItemRequest, quantity int) (*domain.BookingItem, []domain.RoomAssignment, error) {
	addOn, err := s.addOns.GetByID(ctx, ir.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: add-on %d", ErrNotFound, ir.ItemID)
		}
		return nil, nil, err
	}
	if !addOn.IsActive {
		return nil, nil, fmt.Errorf("%w: add-on %d is not bookable", ErrValidation, ir.ItemID)
	}

	unit, total := pricing.CalculateAddOnPrice(addOn, quantity)
	return &domain.BookingItem{
		Type:       domain.ItemAddOn,
		ItemID:     addOn.ID,
		Quantity:   quantity,
		UnitPrice:  unit,
		TotalPrice: total,
	}, nil, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.List(ctx, limit, offset)
}

// Cancel marks the booking cancelled and releases its assignments.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == domain.BookingCancelled {
		return nil, ErrCancelled
	}

	if err := s.bookings.Cancel(ctx, id); err != nil {
		return nil, err
	}

	b, err = s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.NotifyBookingCancelled(b)
	}
	return b, nil
}

func parseItemDates(startStr, endStr string) (time.Time, time.Time, error) {
	const layout = "2006-01-02"
	start, err := time.ParseInLocation(layout, startStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid check_in_date", ErrValidation)
	}
	end, err := time.ParseInLocation(layout, endStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid check_out_date", ErrValidation)
	}
	return start, end, nil
}
