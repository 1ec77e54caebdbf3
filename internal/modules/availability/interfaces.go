package availability

import (
	"context"
	"time"

	"heiwahouse/internal/domain"
)

// RoomRepository supplies the active room catalog.
type RoomRepository interface {
	GetActive(ctx context.Context) ([]domain.Room, error)
}

// AssignmentRepository supplies assignments overlapping a half-open date
// range [start, end).
type AssignmentRepository interface {
	GetOverlapping(ctx context.Context, start, end time.Time) ([]domain.RoomAssignment, error)
}
