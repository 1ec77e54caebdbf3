package repository

import (
	"context"
	"time"

	"heiwahouse/internal/domain"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

type assignmentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	RoomID    int64     `gorm:"column:room_id;index"`
	BedNumber *int      `gorm:"column:bed_number"`
	CheckIn   time.Time `gorm:"column:check_in_date"`
	CheckOut  time.Time `gorm:"column:check_out_date"`
	BookingID int64     `gorm:"column:booking_id;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (assignmentModel) TableName() string { return "room_assignments" }

func toDomainAssignment(m assignmentModel) domain.RoomAssignment {
	return domain.RoomAssignment{
		ID:        m.ID,
		RoomID:    m.RoomID,
		BedNumber: m.BedNumber,
		CheckIn:   m.CheckIn,
		CheckOut:  m.CheckOut,
		BookingID: m.BookingID,
		CreatedAt: m.CreatedAt,
	}
}

// GetOverlapping returns assignments intersecting [start, end) under
// half-open semantics: rows with check_in_date < end and check_out_date > start.
func (r *AssignmentRepository) GetOverlapping(ctx context.Context, start, end time.Time) ([]domain.RoomAssignment, error) {
	var models []assignmentModel
	tx := r.db.WithContext(ctx).
		Where("check_in_date < ? AND check_out_date > ?", end, start).
		Order("check_in_date ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.RoomAssignment, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainAssignment(m))
	}
	return out, nil
}
