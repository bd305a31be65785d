package repository

import (
	"context"
	"errors"
	"time"

	"courtbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	b.Date = domain.DateOnly(b.Date)
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Court").
		Preload("Court.Property").
		Preload("Customer").
		First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ActiveByCourtDate returns the pending and confirmed bookings holding
// slots on a court for one date, ordered by start. Cancelled and
// completed bookings release their interval.
func (r *BookingRepository) ActiveByCourtDate(ctx context.Context, courtID int64, date time.Time) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ? AND status IN ?",
			courtID, domain.DateOnly(date),
			[]domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).
		Order("start_time").
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) GetByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Court").
		Preload("Court.Property").
		Where("customer_id = ?", customerID).
		Order("date DESC, start_time DESC").
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Court").
		Preload("Court.Property").
		Preload("Customer").
		Joins("JOIN courts ON courts.id = bookings.court_id").
		Joins("JOIN properties ON properties.id = courts.property_id").
		Where("properties.owner_id = ?", ownerID).
		Order("bookings.date DESC, bookings.start_time DESC").
		Find(&out).Error
	return out, err
}

// CourtOwnerFor resolves the owner of the court a booking belongs to.
func (r *BookingRepository) CourtOwnerFor(ctx context.Context, bookingID int64) (int64, error) {
	var ownerID int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("properties.owner_id").
		Joins("JOIN courts ON courts.id = bookings.court_id").
		Joins("JOIN properties ON properties.id = courts.property_id").
		Where("bookings.id = ?", bookingID).
		Scan(&ownerID).Error
	return ownerID, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
}
