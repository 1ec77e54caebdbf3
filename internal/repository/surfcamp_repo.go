package repository

import (
	"context"
	"time"

	"heiwahouse/internal/domain"

	"gorm.io/gorm"
)

type SurfCampRepository struct {
	db *gorm.DB
}

func NewSurfCampRepository(db *gorm.DB) *SurfCampRepository {
	return &SurfCampRepository{db: db}
}

type surfCampModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	Description    string    `gorm:"column:description"`
	BasePrice      float64   `gorm:"column:base_price"`
	DurationNights int       `gorm:"column:duration_nights"`
	Capacity       int       `gorm:"column:capacity"`
	IsActive       bool      `gorm:"column:is_active"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (surfCampModel) TableName() string { return "surf_camps" }

func toDomainSurfCamp(m surfCampModel) *domain.SurfCamp {
	return &domain.SurfCamp{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		BasePrice:      m.BasePrice,
		DurationNights: m.DurationNights,
		Capacity:       m.Capacity,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toSurfCampModel(c *domain.SurfCamp) surfCampModel {
	return surfCampModel{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		BasePrice:      c.BasePrice,
		DurationNights: c.DurationNights,
		Capacity:       c.Capacity,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (r *SurfCampRepository) GetActive(ctx context.Context) ([]domain.SurfCamp, error) {
	var models []surfCampModel
	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.SurfCamp, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainSurfCamp(m))
	}
	return out, nil
}

func (r *SurfCampRepository) GetByID(ctx context.Context, id int64) (*domain.SurfCamp, error) {
	var m surfCampModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainSurfCamp(m), nil
}

func (r *SurfCampRepository) Create(ctx context.Context, c *domain.SurfCamp) error {
	m := toSurfCampModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = *toDomainSurfCamp(m)
	return nil
}

func (r *SurfCampRepository) Update(ctx context.Context, c *domain.SurfCamp) error {
	m := toSurfCampModel(c)
	tx := r.db.WithContext(ctx).Model(&surfCampModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":            m.Name,
			"description":     m.Description,
			"base_price":      m.BasePrice,
			"duration_nights": m.DurationNights,
			"capacity":        m.Capacity,
			"is_active":       m.IsActive,
			"updated_at":      time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SurfCampRepository) Deactivate(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&surfCampModel{}).
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
