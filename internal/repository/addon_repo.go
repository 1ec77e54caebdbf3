package repository

import (
	"context"
	"time"

	"heiwahouse/internal/domain"

	"gorm.io/gorm"
)

type AddOnRepository struct {
	db *gorm.DB
}

func NewAddOnRepository(db *gorm.DB) *AddOnRepository {
	return &AddOnRepository{db: db}
}

type addOnModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (addOnModel) TableName() string { return "add_ons" }

func toDomainAddOn(m addOnModel) *domain.AddOn {
	return &domain.AddOn{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *AddOnRepository) GetActive(ctx context.Context) ([]domain.AddOn, error) {
	var models []addOnModel
	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.AddOn, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainAddOn(m))
	}
	return out, nil
}

func (r *AddOnRepository) GetByID(ctx context.Context, id int64) (*domain.AddOn, error) {
	var m addOnModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainAddOn(m), nil
}

func (r *AddOnRepository) Create(ctx context.Context, a *domain.AddOn) error {
	m := addOnModel{
		Name:        a.Name,
		Description: a.Description,
		Price:       a.Price,
		IsActive:    a.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*a = *toDomainAddOn(m)
	return nil
}

func (r *AddOnRepository) Update(ctx context.Context, a *domain.AddOn) error {
	tx := r.db.WithContext(ctx).Model(&addOnModel{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"name":        a.Name,
			"description": a.Description,
			"price":       a.Price,
			"is_active":   a.IsActive,
			"updated_at":  time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AddOnRepository) Deactivate(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&addOnModel{}).
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
