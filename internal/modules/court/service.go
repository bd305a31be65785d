package court

import (
	"context"

	"courtbook/internal/domain"
)

type Service struct {
	courts     CourtRepository
	properties PropertyReader
}

func NewService(courts CourtRepository, properties PropertyReader) *Service {
	return &Service{courts: courts, properties: properties}
}

// Create checks property ownership itself: the route carries no court
// id yet, so the ownership middleware cannot.
func (s *Service) Create(ctx context.Context, ownerID int64, req CreateCourtRequest) (*domain.Court, error) {
	p, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPropertyNotFound
	}
	if p.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	c := &domain.Court{
		PropertyID:  req.PropertyID,
		Name:        req.Name,
		SportType:   req.SportType,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.courts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, courtID int64, req UpdateCourtRequest) (*domain.Court, error) {
	c, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.SportType != nil {
		c.SportType = *req.SportType
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.courts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, courtID int64) error {
	c, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrNotFound
	}
	return s.courts.Delete(ctx, courtID)
}

func (s *Service) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Court, error) {
	return s.courts.GetByProperty(ctx, propertyID)
}

// PublicDetails returns an active court with its property and pricing
// rules preloaded.
func (s *Service) PublicDetails(ctx context.Context, courtID int64) (*domain.Court, error) {
	c, err := s.courts.GetWithDetails(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}
