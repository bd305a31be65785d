package property

import (
	"context"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

type Service struct {
	properties PropertyRepository
}

func NewService(properties PropertyRepository) *Service {
	return &Service{properties: properties}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreatePropertyRequest) (*domain.Property, error) {
	p := &domain.Property{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Phone:       req.Phone,
		Email:       req.Email,
		MapsLink:    req.MapsLink,
		Amenities:   req.Amenities,
		IsActive:    true,
	}
	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies only the fields present in the request. Ownership is
// verified by the route middleware before this runs.
func (s *Service) Update(ctx context.Context, propertyID int64, req UpdatePropertyRequest) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.State != nil {
		p.State = *req.State
	}
	if req.Country != nil {
		p.Country = *req.Country
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.MapsLink != nil {
		p.MapsLink = *req.MapsLink
	}
	if req.Amenities != nil {
		p.Amenities = *req.Amenities
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, propertyID int64) error {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.properties.Delete(ctx, propertyID)
}

func (s *Service) GetMine(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	return s.properties.GetByOwner(ctx, ownerID)
}

// PublicDetails returns an active property with its active courts, or
// ErrNotFound for inactive and missing properties alike.
func (s *Service) PublicDetails(ctx context.Context, propertyID int64) (*domain.Property, error) {
	p, err := s.properties.GetWithCourts(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) Search(ctx context.Context, req SearchRequest) ([]domain.Property, int64, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}
	return s.properties.Search(ctx, repository.PropertySearch{
		City:      req.City,
		SportType: req.SportType,
		Page:      req.Page,
		Limit:     req.Limit,
	})
}
