package property

import (
	"context"
	"testing"

	"courtbook/internal/domain"
	"courtbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 21
	}
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetWithCourts(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) Search(ctx context.Context, q repository.PropertySearch) ([]domain.Property, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Property), args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate_SetsOwnerAndActive(t *testing.T) {
	repo := new(MockPropertyRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)
	p, err := service.Create(context.Background(), 5, CreatePropertyRequest{
		Name:    "Arena One",
		Address: "1 Main St",
		City:    "Almaty",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), p.OwnerID)
	assert.True(t, p.IsActive)
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	repo := new(MockPropertyRepository)
	repo.On("GetByID", mock.Anything, int64(21)).Return(&domain.Property{
		ID: 21, OwnerID: 5, Name: "Arena One", City: "Almaty", Phone: "555-1000", IsActive: true,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)
	newName := "Arena Two"
	p, err := service.Update(context.Background(), 21, UpdatePropertyRequest{Name: &newName})

	assert.NoError(t, err)
	assert.Equal(t, "Arena Two", p.Name)
	assert.Equal(t, "Almaty", p.City)
	assert.Equal(t, "555-1000", p.Phone)
	assert.True(t, p.IsActive)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockPropertyRepository)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	service := NewService(repo)
	_, err := service.Update(context.Background(), 99, UpdatePropertyRequest{})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSearch_ClampsPagination(t *testing.T) {
	repo := new(MockPropertyRepository)
	repo.On("Search", mock.Anything, repository.PropertySearch{City: "Astana", Page: 1, Limit: 20}).
		Return([]domain.Property{}, int64(0), nil)

	service := NewService(repo)
	_, _, err := service.Search(context.Background(), SearchRequest{City: "Astana", Page: -3, Limit: 500})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
