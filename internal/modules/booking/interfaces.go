package booking

import (
	"context"
	"time"

	"courtbook/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ActiveByCourtDate(ctx context.Context, courtID int64, date time.Time) ([]domain.Booking, error)
	GetByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
	CourtOwnerFor(ctx context.Context, bookingID int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

type CourtReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

type BlockReader interface {
	GetByDate(ctx context.Context, courtID int64, date time.Time) ([]domain.AvailabilityBlock, error)
}

// RateResolver is the pricing service surface the booking core consumes.
type RateResolver interface {
	FindRateFor(ctx context.Context, courtID int64, date time.Time, start, end domain.TimeOfDay) (*domain.PricingRule, error)
	RulesForDay(ctx context.Context, courtID int64, date time.Time) ([]domain.PricingRule, error)
}

// NotificationSender delivers booking lifecycle notices. Calls are
// fire-and-forget; a failed notification never fails the booking.
type NotificationSender interface {
	BookingCreated(ctx context.Context, ownerID int64, b *domain.Booking) error
	BookingConfirmed(ctx context.Context, customerID int64, b *domain.Booking) error
	BookingCancelled(ctx context.Context, userID int64, b *domain.Booking) error
	BookingCompleted(ctx context.Context, customerID int64, b *domain.Booking) error
}
