package availability

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBlockRepository struct {
	mock.Mock
}

func (m *MockBlockRepository) Create(ctx context.Context, b *domain.AvailabilityBlock) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 55
	}
	return args.Error(0)
}

func (m *MockBlockRepository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityBlock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityBlock), args.Error(1)
}

func (m *MockBlockRepository) GetByCourt(ctx context.Context, courtID int64, from *time.Time) ([]domain.AvailabilityBlock, error) {
	args := m.Called(ctx, courtID, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityBlock), args.Error(1)
}

func (m *MockBlockRepository) GetByDate(ctx context.Context, courtID int64, date time.Time) ([]domain.AvailabilityBlock, error) {
	args := m.Called(ctx, courtID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityBlock), args.Error(1)
}

func (m *MockBlockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCourtReader struct {
	mock.Mock
}

func (m *MockCourtReader) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

func tod(t *testing.T, s string) domain.TimeOfDay {
	v, err := domain.ParseTimeOfDay(s)
	assert.NoError(t, err)
	return v
}

func newTestService(blocks *MockBlockRepository, courts *MockCourtReader) *Service {
	s := NewService(blocks, courts)
	// Pin the clock so "past date" checks are stable.
	s.now = func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestBlock_Success(t *testing.T) {
	blocks := new(MockBlockRepository)
	courts := new(MockCourtReader)

	courts.On("GetByID", mock.Anything, int64(3)).Return(&domain.Court{ID: 3, IsActive: true}, nil)
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	blocks.On("GetByDate", mock.Anything, int64(3), date).Return([]domain.AvailabilityBlock{}, nil)
	blocks.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(blocks, courts)
	block, err := service.Block(context.Background(), 3, CreateBlockRequest{
		Date:      "2024-06-03",
		StartTime: "12:00",
		EndTime:   "13:00",
		Reason:    "maintenance",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), block.ID)
	assert.Equal(t, date, block.Date)
}

func TestBlock_RejectsPastDate(t *testing.T) {
	blocks := new(MockBlockRepository)
	courts := new(MockCourtReader)
	courts.On("GetByID", mock.Anything, int64(3)).Return(&domain.Court{ID: 3, IsActive: true}, nil)

	service := newTestService(blocks, courts)
	_, err := service.Block(context.Background(), 3, CreateBlockRequest{
		Date:      "2024-05-31",
		StartTime: "12:00",
		EndTime:   "13:00",
	})

	assert.ErrorIs(t, err, ErrValidation)
	blocks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBlock_AllowsToday(t *testing.T) {
	blocks := new(MockBlockRepository)
	courts := new(MockCourtReader)
	courts.On("GetByID", mock.Anything, int64(3)).Return(&domain.Court{ID: 3, IsActive: true}, nil)
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	blocks.On("GetByDate", mock.Anything, int64(3), today).Return([]domain.AvailabilityBlock{}, nil)
	blocks.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(blocks, courts)
	_, err := service.Block(context.Background(), 3, CreateBlockRequest{
		Date:      "2024-06-01",
		StartTime: "18:00",
		EndTime:   "20:00",
	})

	assert.NoError(t, err)
}

func TestBlock_RejectsOverlap(t *testing.T) {
	blocks := new(MockBlockRepository)
	courts := new(MockCourtReader)
	courts.On("GetByID", mock.Anything, int64(3)).Return(&domain.Court{ID: 3, IsActive: true}, nil)

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	blocks.On("GetByDate", mock.Anything, int64(3), date).Return([]domain.AvailabilityBlock{
		{ID: 1, CourtID: 3, Date: date, StartTime: tod(t, "12:00"), EndTime: tod(t, "14:00")},
	}, nil)

	service := newTestService(blocks, courts)
	_, err := service.Block(context.Background(), 3, CreateBlockRequest{
		Date:      "2024-06-03",
		StartTime: "13:00",
		EndTime:   "15:00",
	})

	assert.ErrorIs(t, err, ErrBlockOverlap)
}

func TestBlock_InvalidRange(t *testing.T) {
	blocks := new(MockBlockRepository)
	courts := new(MockCourtReader)
	courts.On("GetByID", mock.Anything, int64(3)).Return(&domain.Court{ID: 3, IsActive: true}, nil)

	service := newTestService(blocks, courts)
	_, err := service.Block(context.Background(), 3, CreateBlockRequest{
		Date:      "2024-06-03",
		StartTime: "14:00",
		EndTime:   "14:00",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestListBlocks_DefaultsToToday(t *testing.T) {
	blocks := new(MockBlockRepository)
	courts := new(MockCourtReader)

	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	blocks.On("GetByCourt", mock.Anything, int64(3), &today).Return([]domain.AvailabilityBlock{}, nil)

	service := newTestService(blocks, courts)
	_, err := service.ListBlocks(context.Background(), 3, nil)

	assert.NoError(t, err)
	blocks.AssertExpectations(t)
}

func TestUnblock_WrongCourt(t *testing.T) {
	blocks := new(MockBlockRepository)
	courts := new(MockCourtReader)

	blocks.On("GetByID", mock.Anything, int64(9)).Return(&domain.AvailabilityBlock{ID: 9, CourtID: 42}, nil)

	service := newTestService(blocks, courts)
	err := service.Unblock(context.Background(), 3, 9)

	assert.ErrorIs(t, err, ErrNotFound)
	blocks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
