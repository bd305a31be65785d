package availability

import (
	"context"
	"time"

	"courtbook/internal/domain"
)

type BlockRepository interface {
	Create(ctx context.Context, b *domain.AvailabilityBlock) error
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityBlock, error)
	GetByCourt(ctx context.Context, courtID int64, from *time.Time) ([]domain.AvailabilityBlock, error)
	GetByDate(ctx context.Context, courtID int64, date time.Time) ([]domain.AvailabilityBlock, error)
	Delete(ctx context.Context, id int64) error
}

type CourtReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}
