package repository

import (
	"context"
	"errors"
	"time"

	"heiwahouse/internal/domain"

	"gorm.io/gorm"
)

// ErrCapacityExceeded is returned when the in-transaction re-count finds a
// room oversold after inserting the new assignments. The transaction rolls
// back and the caller maps this to a booking conflict.
var ErrCapacityExceeded = errors.New("repository: room capacity exceeded")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	Reference      string     `gorm:"column:reference;uniqueIndex"`
	ClientName     string     `gorm:"column:client_name"`
	ClientEmail    string     `gorm:"column:client_email"`
	Status         string     `gorm:"column:status"`
	Subtotal       float64    `gorm:"column:subtotal"`
	TaxAmount      float64    `gorm:"column:tax_amount"`
	FeeAmount      float64    `gorm:"column:fee_amount"`
	DiscountAmount float64    `gorm:"column:discount_amount"`
	Total          float64    `gorm:"column:total"`
	Notes          *string    `gorm:"column:notes"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
	CancelledAt    *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

type bookingItemModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	BookingID    int64      `gorm:"column:booking_id;index"`
	Type         string     `gorm:"column:item_type"`
	ItemID       int64      `gorm:"column:item_id"`
	Quantity     int        `gorm:"column:quantity"`
	UnitPrice    float64    `gorm:"column:unit_price"`
	TotalPrice   float64    `gorm:"column:total_price"`
	CheckIn      *time.Time `gorm:"column:check_in_date"`
	CheckOut     *time.Time `gorm:"column:check_out_date"`
	Nights       *int       `gorm:"column:nights"`
	Participants *int       `gorm:"column:participants"`
}

func (bookingItemModel) TableName() string { return "booking_items" }

func toDomainBooking(m bookingModel, items []bookingItemModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	b := &domain.Booking{
		ID:             m.ID,
		Reference:      m.Reference,
		ClientName:     m.ClientName,
		ClientEmail:    m.ClientEmail,
		Status:         domain.BookingStatus(m.Status),
		Subtotal:       m.Subtotal,
		TaxAmount:      m.TaxAmount,
		FeeAmount:      m.FeeAmount,
		DiscountAmount: m.DiscountAmount,
		Total:          m.Total,
		Notes:          notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		CancelledAt:    m.CancelledAt,
	}
	for _, im := range items {
		b.Items = append(b.Items, domain.BookingItem{
			ID:           im.ID,
			BookingID:    im.BookingID,
			Type:         domain.BookingItemType(im.Type),
			ItemID:       im.ItemID,
			Quantity:     im.Quantity,
			UnitPrice:    im.UnitPrice,
			TotalPrice:   im.TotalPrice,
			CheckIn:      im.CheckIn,
			CheckOut:     im.CheckOut,
			Nights:       im.Nights,
			Participants: im.Participants,
		})
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:             b.ID,
		Reference:      b.Reference,
		ClientName:     b.ClientName,
		ClientEmail:    b.ClientEmail,
		Status:         string(b.Status),
		Subtotal:       b.Subtotal,
		TaxAmount:      b.TaxAmount,
		FeeAmount:      b.FeeAmount,
		DiscountAmount: b.DiscountAmount,
		Total:          b.Total,
		Notes:          notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		CancelledAt:    b.CancelledAt,
	}
}

// CreateWithAssignments persists a booking, its items, and its room
// assignments in one transaction. After inserting the assignments it
// re-counts overlap for every touched room, so two bookers racing past the
// availability check cannot both commit an oversold room.
func (r *BookingRepository) CreateWithAssignments(ctx context.Context, b *domain.Booking, assignments []domain.RoomAssignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		b.ID = m.ID
		b.CreatedAt = m.CreatedAt
		b.UpdatedAt = m.UpdatedAt

		for i := range b.Items {
			im := bookingItemModel{
				BookingID:    m.ID,
				Type:         string(b.Items[i].Type),
				ItemID:       b.Items[i].ItemID,
				Quantity:     b.Items[i].Quantity,
				UnitPrice:    b.Items[i].UnitPrice,
				TotalPrice:   b.Items[i].TotalPrice,
				CheckIn:      b.Items[i].CheckIn,
				CheckOut:     b.Items[i].CheckOut,
				Nights:       b.Items[i].Nights,
				Participants: b.Items[i].Participants,
			}
			if err := tx.Create(&im).Error; err != nil {
				return err
			}
			b.Items[i].ID = im.ID
			b.Items[i].BookingID = m.ID
		}

		for i := range assignments {
			am := assignmentModel{
				RoomID:    assignments[i].RoomID,
				BedNumber: assignments[i].BedNumber,
				CheckIn:   assignments[i].CheckIn,
				CheckOut:  assignments[i].CheckOut,
				BookingID: m.ID,
			}
			if err := tx.Create(&am).Error; err != nil {
				return err
			}
			assignments[i].ID = am.ID
			assignments[i].BookingID = m.ID
		}

		for _, a := range assignments {
			var capacity int
			if err := tx.Table("rooms").
				Select("capacity").
				Where("id = ?", a.RoomID).
				Scan(&capacity).Error; err != nil {
				return err
			}

			var booked int64
			if err := tx.Model(&assignmentModel{}).
				Where("room_id = ? AND check_in_date < ? AND check_out_date > ?",
					a.RoomID, a.CheckOut, a.CheckIn).
				Count(&booked).Error; err != nil {
				return err
			}

			if booked > int64(capacity) {
				return ErrCapacityExceeded
			}
		}

		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}

	var items []bookingItemModel
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", id).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return toDomainBooking(m, items), nil
}

func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m, nil))
	}
	return out, nil
}

// Cancel marks the booking cancelled and frees its assignments in one
// transaction, so capacity is released atomically with the status change.
func (r *BookingRepository) Cancel(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&bookingModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":       string(domain.BookingCancelled),
				"cancelled_at": now,
				"updated_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("booking_id = ?", id).Delete(&assignmentModel{}).Error
	})
}
