package repository

import (
	"context"
	"errors"

	"courtbook/internal/domain"

	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// PropertySearch carries the public discovery filters.
type PropertySearch struct {
	City      string
	SportType string
	Page      int
	Limit     int
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) GetWithCourts(ctx context.Context, id int64) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).
		Preload("Courts", "is_active = ?", true).
		Where("id = ? AND is_active = ?", id, true).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	var out []domain.Property
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *PropertyRepository) Search(ctx context.Context, q PropertySearch) ([]domain.Property, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Property{}).Where("properties.is_active = ?", true)

	if q.City != "" {
		tx = tx.Where("properties.city LIKE ?", "%"+q.City+"%")
	}
	if q.SportType != "" {
		tx = tx.Joins("JOIN courts ON courts.property_id = properties.id AND courts.is_active = ?", true).
			Where("courts.sport_type LIKE ?", "%"+q.SportType+"%").
			Distinct("properties.*")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Property
	err := tx.Order("properties.created_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&out).Error
	return out, total, err
}

// OwnerOf resolves a property's owning user. Used by the ownership
// middleware.
func (r *PropertyRepository) OwnerOf(ctx context.Context, propertyID int64) (int64, error) {
	var ownerID int64
	err := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Select("owner_id").
		Where("id = ?", propertyID).
		Scan(&ownerID).Error
	return ownerID, err
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Property{}, id).Error
}
