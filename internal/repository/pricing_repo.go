package repository

import (
	"context"
	"errors"

	"courtbook/internal/domain"

	"gorm.io/gorm"
)

type PricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) *PricingRepository {
	return &PricingRepository{db: db}
}

func (r *PricingRepository) Create(ctx context.Context, rule *domain.PricingRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *PricingRepository) GetByID(ctx context.Context, id int64) (*domain.PricingRule, error) {
	var rule domain.PricingRule
	err := r.db.WithContext(ctx).First(&rule, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetByCourt returns every rule of a court ordered by window start. The
// day filter happens in the service: day sets live in a JSON column, and
// the overlap scan is an explicit in-process check by design.
func (r *PricingRepository) GetByCourt(ctx context.Context, courtID int64) ([]domain.PricingRule, error) {
	var out []domain.PricingRule
	err := r.db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Order("start_time").
		Find(&out).Error
	return out, err
}

func (r *PricingRepository) Update(ctx context.Context, rule *domain.PricingRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *PricingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.PricingRule{}, id).Error
}
