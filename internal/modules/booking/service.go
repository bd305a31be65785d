package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"courtbook/internal/domain"
	"courtbook/internal/modules/pricing"
)

// Slot is a generated one-hour candidate reservation window carrying the
// rate of the pricing rule it came from.
type Slot struct {
	Start        domain.TimeOfDay
	End          domain.TimeOfDay
	PricePerHour float64
	Label        string
}

type Service struct {
	bookings BookingRepository
	courts   CourtReader
	blocks   BlockReader
	rates    RateResolver
	notifs   NotificationSender
	locks    *courtDateLock
	now      func() time.Time
}

func NewService(
	bookings BookingRepository,
	courts CourtReader,
	blocks BlockReader,
	rates RateResolver,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings: bookings,
		courts:   courts,
		blocks:   blocks,
		rates:    rates,
		notifs:   notifs,
		locks:    newCourtDateLock(),
		now:      time.Now,
	}
}

// CreateBooking is the only way a booking comes into existence. Under
// the court+date lock it checks blocks, then active bookings, then
// resolves the price, and inserts with pending status. The lock makes
// the check-then-insert atomic with respect to competing attempts: of
// two conflicting calls at most one succeeds, the other gets ErrConflict.
func (s *Service) CreateBooking(ctx context.Context, customerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	date, start, end, err := parseBookingWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if date.Before(domain.DateOnly(s.now())) {
		return nil, fmt.Errorf("%w: cannot book a past date", ErrValidation)
	}

	unlock := s.locks.lock(req.CourtID, date)
	defer unlock()

	court, err := s.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}
	if court == nil || !court.IsActive {
		return nil, ErrCourtNotFound
	}

	blocked, err := s.blocks.GetByDate(ctx, req.CourtID, date)
	if err != nil {
		return nil, err
	}
	for _, block := range blocked {
		if domain.Overlaps(start, end, block.StartTime, block.EndTime) {
			return nil, &BlockedError{Reason: block.Reason}
		}
	}

	existing, err := s.bookings.ActiveByCourtDate(ctx, req.CourtID, date)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if domain.Overlaps(start, end, other.StartTime, other.EndTime) {
			return nil, ErrConflict
		}
	}

	rule, err := s.rates.FindRateFor(ctx, req.CourtID, date, start, end)
	if err != nil {
		if errors.Is(err, pricing.ErrNoPricing) {
			return nil, ErrNoPricing
		}
		return nil, err
	}

	totalHours := (end - start).Hours()
	totalPrice := math.Round(totalHours*rule.PricePerHour*100) / 100

	b := &domain.Booking{
		CourtID:       req.CourtID,
		CustomerID:    customerID,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		TotalHours:    totalHours,
		PricePerHour:  rule.PricePerHour,
		TotalPrice:    totalPrice,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		Notes:         req.Notes,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if ownerID, err := s.bookings.CourtOwnerFor(ctx, b.ID); err == nil && ownerID > 0 {
			_ = s.notifs.BookingCreated(ctx, ownerID, b)
		}
	}

	return b, nil
}

// AvailableSlots lists the open one-hour slots of a court on a date:
// the slot lattice of the day's pricing windows minus blocked and booked
// intervals. Read-only and deterministic for a given data state.
func (s *Service) AvailableSlots(ctx context.Context, courtID int64, date time.Time) ([]Slot, error) {
	court, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if court == nil || !court.IsActive {
		return nil, ErrCourtNotFound
	}

	date = domain.DateOnly(date)
	rules, err := s.rates.RulesForDay(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		// No pricing window covers this weekday: nothing is bookable.
		return []Slot{}, nil
	}

	blocked, err := s.blocks.GetByDate(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	booked, err := s.bookings.ActiveByCourtDate(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0)
	for _, rule := range rules {
		// Full hours only; a trailing partial hour is never emitted.
		for cur := rule.StartTime; cur+domain.MinutesPerHour <= rule.EndTime; cur += domain.MinutesPerHour {
			slotEnd := cur + domain.MinutesPerHour
			if overlapsAnyBlock(cur, slotEnd, blocked) || overlapsAnyBooking(cur, slotEnd, booked) {
				continue
			}
			slots = append(slots, Slot{
				Start:        cur,
				End:          slotEnd,
				PricePerHour: rule.PricePerHour,
				Label:        rule.Label,
			})
		}
	}
	return slots, nil
}

// Cancel is customer-initiated and allowed from pending or confirmed.
// A paid booking is flagged refunded; no gateway is involved.
func (s *Service) Cancel(ctx context.Context, bookingID, customerID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if b.CustomerID != customerID {
		return nil, ErrForbidden
	}
	if b.Status.IsTerminal() {
		return nil, &TransitionError{Action: "cancel", From: b.Status}
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return nil, err
	}
	if b.PaymentStatus == domain.PaymentPaid {
		if err := s.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentRefunded); err != nil {
			return nil, err
		}
	}

	if s.notifs != nil {
		if ownerID, err := s.bookings.CourtOwnerFor(ctx, bookingID); err == nil && ownerID > 0 {
			_ = s.notifs.BookingCancelled(ctx, ownerID, b)
		}
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// Confirm is owner-initiated and allowed only from pending.
func (s *Service) Confirm(ctx context.Context, bookingID, ownerID int64) (*domain.Booking, error) {
	b, err := s.ownedBooking(ctx, bookingID, ownerID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingPending {
		return nil, &TransitionError{Action: "confirm", From: b.Status}
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingConfirmed); err != nil {
		return nil, err
	}
	if s.notifs != nil {
		_ = s.notifs.BookingConfirmed(ctx, b.CustomerID, b)
	}
	return s.bookings.GetByID(ctx, bookingID)
}

// Complete is owner-initiated and allowed from pending or confirmed.
func (s *Service) Complete(ctx context.Context, bookingID, ownerID int64) (*domain.Booking, error) {
	b, err := s.ownedBooking(ctx, bookingID, ownerID)
	if err != nil {
		return nil, err
	}
	if !b.Status.IsActive() {
		return nil, &TransitionError{Action: "complete", From: b.Status}
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCompleted); err != nil {
		return nil, err
	}
	if s.notifs != nil {
		_ = s.notifs.BookingCompleted(ctx, b.CustomerID, b)
	}
	return s.bookings.GetByID(ctx, bookingID)
}

// MarkPaid records an out-of-band payment. Bookkeeping only.
func (s *Service) MarkPaid(ctx context.Context, bookingID, ownerID int64) (*domain.Booking, error) {
	b, err := s.ownedBooking(ctx, bookingID, ownerID)
	if err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, &TransitionError{Action: "mark paid", From: b.Status}
	}
	if err := s.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentPaid); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

// GetBooking enforces access: the customer or the owner of the court's
// property. The second return value reports owner access so handlers can
// include customer contact details only for the owner.
func (s *Service) GetBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, bool, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, false, err
	}
	if b == nil {
		return nil, false, ErrNotFound
	}
	if b.CustomerID == userID {
		return b, false, nil
	}
	ownerID, err := s.bookings.CourtOwnerFor(ctx, bookingID)
	if err != nil {
		return nil, false, err
	}
	if ownerID != userID {
		return nil, false, ErrForbidden
	}
	return b, true, nil
}

func (s *Service) GetMyBookings(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	return s.bookings.GetByCustomer(ctx, customerID)
}

func (s *Service) GetOwnerBookings(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	return s.bookings.GetByOwner(ctx, ownerID)
}

func (s *Service) ownedBooking(ctx context.Context, bookingID, ownerID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	courtOwner, err := s.bookings.CourtOwnerFor(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if courtOwner != ownerID {
		return nil, ErrForbidden
	}
	return b, nil
}

func overlapsAnyBlock(start, end domain.TimeOfDay, blocks []domain.AvailabilityBlock) bool {
	for _, b := range blocks {
		if domain.Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

func overlapsAnyBooking(start, end domain.TimeOfDay, bookings []domain.Booking) bool {
	for _, b := range bookings {
		if domain.Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

func parseBookingWindow(dateStr, startStr, endStr string) (time.Time, domain.TimeOfDay, domain.TimeOfDay, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, 0, 0, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	start, err := domain.ParseTimeOfDay(startStr)
	if err != nil {
		return time.Time{}, 0, 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	end, err := domain.ParseTimeOfDay(endStr)
	if err != nil {
		return time.Time{}, 0, 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if end <= start {
		return time.Time{}, 0, 0, fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	return domain.DateOnly(date), start, end, nil
}
