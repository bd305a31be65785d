package court

import (
	"context"
	"testing"

	"courtbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCourtRepository struct {
	mock.Mock
}

func (m *MockCourtRepository) Create(ctx context.Context, c *domain.Court) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 31
	}
	return args.Error(0)
}

func (m *MockCourtRepository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

func (m *MockCourtRepository) GetWithDetails(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

func (m *MockCourtRepository) GetByProperty(ctx context.Context, propertyID int64) ([]domain.Court, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Court), args.Error(1)
}

func (m *MockCourtRepository) Update(ctx context.Context, c *domain.Court) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourtRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPropertyReader struct {
	mock.Mock
}

func (m *MockPropertyReader) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func TestCreate_RequiresOwnedProperty(t *testing.T) {
	courts := new(MockCourtRepository)
	properties := new(MockPropertyReader)

	properties.On("GetByID", mock.Anything, int64(2)).Return(&domain.Property{ID: 2, OwnerID: 5}, nil)
	courts.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(courts, properties)

	court, err := service.Create(context.Background(), 5, CreateCourtRequest{
		PropertyID: 2, Name: "Court A", SportType: "tennis",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(31), court.ID)
	assert.True(t, court.IsActive)

	_, err = service.Create(context.Background(), 77, CreateCourtRequest{
		PropertyID: 2, Name: "Court B", SportType: "tennis",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreate_MissingProperty(t *testing.T) {
	courts := new(MockCourtRepository)
	properties := new(MockPropertyReader)
	properties.On("GetByID", mock.Anything, int64(9)).Return(nil, nil)

	service := NewService(courts, properties)
	_, err := service.Create(context.Background(), 5, CreateCourtRequest{
		PropertyID: 9, Name: "Court A", SportType: "tennis",
	})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	courts := new(MockCourtRepository)
	courts.On("GetByID", mock.Anything, int64(31)).Return(&domain.Court{
		ID: 31, PropertyID: 2, Name: "Court A", SportType: "tennis", IsActive: true,
	}, nil)
	courts.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(courts, new(MockPropertyReader))

	inactive := false
	court, err := service.Update(context.Background(), 31, UpdateCourtRequest{IsActive: &inactive})

	assert.NoError(t, err)
	assert.False(t, court.IsActive)
	assert.Equal(t, "Court A", court.Name)
	assert.Equal(t, "tennis", court.SportType)
}
