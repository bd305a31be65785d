package repository

import (
	"context"
	"errors"
	"time"

	"courtbook/internal/domain"

	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Create(ctx context.Context, b *domain.AvailabilityBlock) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *AvailabilityRepository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityBlock, error) {
	var b domain.AvailabilityBlock
	err := r.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *AvailabilityRepository) GetByCourt(ctx context.Context, courtID int64, from *time.Time) ([]domain.AvailabilityBlock, error) {
	tx := r.db.WithContext(ctx).Where("court_id = ?", courtID)
	if from != nil {
		tx = tx.Where("date >= ?", domain.DateOnly(*from))
	}

	var out []domain.AvailabilityBlock
	err := tx.Order("date, start_time").Find(&out).Error
	return out, err
}

func (r *AvailabilityRepository) GetByDate(ctx context.Context, courtID int64, date time.Time) ([]domain.AvailabilityBlock, error) {
	var out []domain.AvailabilityBlock
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, domain.DateOnly(date)).
		Order("start_time").
		Find(&out).Error
	return out, err
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.AvailabilityBlock{}, id).Error
}
