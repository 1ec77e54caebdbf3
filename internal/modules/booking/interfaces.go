package booking

import (
	"context"

	"heiwahouse/internal/domain"
)

// BookingRepository persists bookings together with their room assignments.
type BookingRepository interface {
	CreateWithAssignments(ctx context.Context, b *domain.Booking, assignments []domain.RoomAssignment) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type SurfCampRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SurfCamp, error)
}

type AddOnRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AddOn, error)
}

// FeedNotifier pushes booking events to connected admin dashboards. May be
// nil; failures are ignored.
type FeedNotifier interface {
	NotifyBookingCreated(b *domain.Booking)
	NotifyBookingCancelled(b *domain.Booking)
}
