package repository

import (
	"context"
	"encoding/json"
	"time"

	"heiwahouse/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Description   string    `gorm:"column:description"`
	Capacity      int       `gorm:"column:capacity"`
	BookingType   string    `gorm:"column:booking_type"`
	Pricing       string    `gorm:"column:pricing;type:text"`
	Amenities     string    `gorm:"column:amenities;type:text"`
	FeaturedImage string    `gorm:"column:featured_image"`
	IsActive      bool      `gorm:"column:is_active"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) (*domain.Room, error) {
	r := &domain.Room{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Capacity:      m.Capacity,
		BookingType:   domain.BookingType(m.BookingType),
		FeaturedImage: m.FeaturedImage,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Pricing != "" {
		if err := json.Unmarshal([]byte(m.Pricing), &r.Pricing); err != nil {
			return nil, err
		}
	}
	if m.Amenities != "" {
		if err := json.Unmarshal([]byte(m.Amenities), &r.Amenities); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func toRoomModel(r *domain.Room) (roomModel, error) {
	pricing, err := json.Marshal(r.Pricing)
	if err != nil {
		return roomModel{}, err
	}
	amenities, err := json.Marshal(r.Amenities)
	if err != nil {
		return roomModel{}, err
	}

	return roomModel{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Capacity:      r.Capacity,
		BookingType:   string(r.BookingType),
		Pricing:       string(pricing),
		Amenities:     string(amenities),
		FeaturedImage: r.FeaturedImage,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}

func (r *RoomRepository) GetActive(ctx context.Context) ([]domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		room, err := toDomainRoom(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *room)
	}
	return out, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m)
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m, err := toRoomModel(room)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	room.ID = m.ID
	room.CreatedAt = m.CreatedAt
	room.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m, err := toRoomModel(room)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Model(&roomModel{}).
		Where("id = ?", room.ID).
		Updates(map[string]interface{}{
			"name":           m.Name,
			"description":    m.Description,
			"capacity":       m.Capacity,
			"booking_type":   m.BookingType,
			"pricing":        m.Pricing,
			"amenities":      m.Amenities,
			"featured_image": m.FeaturedImage,
			"is_active":      m.IsActive,
			"updated_at":     time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deactivate soft-removes a room from the booking flow. Assignments keep
// their history; the room simply stops being offered.
func (r *RoomRepository) Deactivate(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&roomModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
