package availability

import (
	"context"
	"fmt"
	"time"

	"courtbook/internal/domain"
)

type Service struct {
	blocks BlockRepository
	courts CourtReader
	now    func() time.Time
}

func NewService(blocks BlockRepository, courts CourtReader) *Service {
	return &Service{blocks: blocks, courts: courts, now: time.Now}
}

// Block closes a court for part of one date. The window may not lie in
// the past and may not overlap an existing block for the same court+date.
func (s *Service) Block(ctx context.Context, courtID int64, req CreateBlockRequest) (*domain.AvailabilityBlock, error) {
	court, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if court == nil {
		return nil, ErrNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	date = domain.DateOnly(date)
	if date.Before(domain.DateOnly(s.now())) {
		return nil, fmt.Errorf("%w: cannot block a past date", ErrValidation)
	}

	start, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if end <= start {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}

	existing, err := s.blocks.GetByDate(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if domain.Overlaps(start, end, other.StartTime, other.EndTime) {
			return nil, ErrBlockOverlap
		}
	}

	block := &domain.AvailabilityBlock{
		CourtID:   courtID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Reason:    req.Reason,
	}
	if err := s.blocks.Create(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}

// ListBlocks returns a court's blocks ordered by (date, start). Without
// an explicit lower bound it lists from today onward.
func (s *Service) ListBlocks(ctx context.Context, courtID int64, from *time.Time) ([]domain.AvailabilityBlock, error) {
	if from == nil {
		today := domain.DateOnly(s.now())
		from = &today
	}
	return s.blocks.GetByCourt(ctx, courtID, from)
}

// Unblock removes a block. Ownership was already verified by the caller.
func (s *Service) Unblock(ctx context.Context, courtID, blockID int64) error {
	block, err := s.blocks.GetByID(ctx, blockID)
	if err != nil {
		return err
	}
	if block == nil || block.CourtID != courtID {
		return ErrNotFound
	}
	return s.blocks.Delete(ctx, blockID)
}
