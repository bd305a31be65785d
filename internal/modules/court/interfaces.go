package court

import (
	"context"

	"courtbook/internal/domain"
)

type CourtRepository interface {
	Create(ctx context.Context, c *domain.Court) error
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	GetWithDetails(ctx context.Context, id int64) (*domain.Court, error)
	GetByProperty(ctx context.Context, propertyID int64) ([]domain.Court, error)
	Update(ctx context.Context, c *domain.Court) error
	Delete(ctx context.Context, id int64) error
}

// PropertyReader verifies that new courts land under a property the
// caller owns.
type PropertyReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}
