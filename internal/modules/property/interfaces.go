package property

import (
	"context"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	GetWithCourts(ctx context.Context, id int64) (*domain.Property, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Property, error)
	Search(ctx context.Context, q repository.PropertySearch) ([]domain.Property, int64, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id int64) error
}
