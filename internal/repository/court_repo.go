package repository

import (
	"context"
	"errors"

	"courtbook/internal/domain"

	"gorm.io/gorm"
)

type CourtRepository struct {
	db *gorm.DB
}

func NewCourtRepository(db *gorm.DB) *CourtRepository {
	return &CourtRepository{db: db}
}

func (r *CourtRepository) Create(ctx context.Context, c *domain.Court) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourtRepository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	var c domain.Court
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourtRepository) GetWithDetails(ctx context.Context, id int64) (*domain.Court, error) {
	var c domain.Court
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("PricingRules").
		Where("id = ? AND is_active = ?", id, true).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourtRepository) GetByProperty(ctx context.Context, propertyID int64) ([]domain.Court, error) {
	var out []domain.Court
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at").
		Find(&out).Error
	return out, err
}

// OwnerID resolves the owning user of a court through its property.
// Used by the ownership middleware, never by the booking core itself.
func (r *CourtRepository) OwnerID(ctx context.Context, courtID int64) (int64, error) {
	var ownerID int64
	err := r.db.WithContext(ctx).
		Model(&domain.Court{}).
		Select("properties.owner_id").
		Joins("JOIN properties ON properties.id = courts.property_id").
		Where("courts.id = ?", courtID).
		Scan(&ownerID).Error
	return ownerID, err
}

func (r *CourtRepository) Update(ctx context.Context, c *domain.Court) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CourtRepository) Delete(ctx context.Context, id int64) error {
	// Cascades to pricing rules, blocks and bookings via FK constraints;
	// sqlite dev databases rely on the explicit deletes below instead.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("court_id = ?", id).Delete(&domain.PricingRule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("court_id = ?", id).Delete(&domain.AvailabilityBlock{}).Error; err != nil {
			return err
		}
		if err := tx.Where("court_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Court{}, id).Error
	})
}
