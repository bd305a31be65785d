package pricing

import (
	"context"

	"courtbook/internal/domain"
)

// RuleRepository is the persistence surface the pricing service needs.
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.PricingRule) error
	GetByID(ctx context.Context, id int64) (*domain.PricingRule, error)
	GetByCourt(ctx context.Context, courtID int64) ([]domain.PricingRule, error)
	Update(ctx context.Context, rule *domain.PricingRule) error
	Delete(ctx context.Context, id int64) error
}

type CourtReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}
