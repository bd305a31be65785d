package notification

import (
	"context"
	"fmt"

	"courtbook/internal/domain"

	"go.uber.org/zap"
)

const defaultListLimit = 50

// Service writes in-app notifications for booking lifecycle events and
// serves them back to their user. It satisfies the booking module's
// NotificationSender; failures are logged, never propagated, so a full
// notification table cannot break a booking.
type Service struct {
	notifications NotificationRepository
	log           *zap.Logger
}

func NewService(notifications NotificationRepository, log *zap.Logger) *Service {
	return &Service{notifications: notifications, log: log}
}

func (s *Service) BookingCreated(ctx context.Context, ownerID int64, b *domain.Booking) error {
	return s.write(ctx, ownerID, domain.NotificationBookingCreated,
		"New booking request",
		fmt.Sprintf("A booking was requested for %s from %s to %s.",
			b.Date.Format("2006-01-02"), b.StartTime, b.EndTime))
}

func (s *Service) BookingConfirmed(ctx context.Context, customerID int64, b *domain.Booking) error {
	return s.write(ctx, customerID, domain.NotificationBookingConfirmed,
		"Booking confirmed",
		fmt.Sprintf("Your booking on %s from %s to %s was confirmed.",
			b.Date.Format("2006-01-02"), b.StartTime, b.EndTime))
}

func (s *Service) BookingCancelled(ctx context.Context, userID int64, b *domain.Booking) error {
	return s.write(ctx, userID, domain.NotificationBookingCancelled,
		"Booking cancelled",
		fmt.Sprintf("The booking on %s from %s to %s was cancelled.",
			b.Date.Format("2006-01-02"), b.StartTime, b.EndTime))
}

func (s *Service) BookingCompleted(ctx context.Context, customerID int64, b *domain.Booking) error {
	return s.write(ctx, customerID, domain.NotificationBookingCompleted,
		"Booking completed",
		fmt.Sprintf("Your booking on %s was marked completed.",
			b.Date.Format("2006-01-02")))
}

func (s *Service) write(ctx context.Context, userID int64, typ, title, body string) error {
	err := s.notifications.Create(ctx, &domain.Notification{
		UserID: userID,
		Type:   typ,
		Title:  title,
		Body:   body,
	})
	if err != nil && s.log != nil {
		s.log.Warn("notification write failed",
			zap.Int64("user_id", userID),
			zap.String("type", typ),
			zap.Error(err))
	}
	return err
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Notification, int64, error) {
	list, err := s.notifications.ListByUser(ctx, userID, defaultListLimit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	return s.notifications.MarkRead(ctx, id, userID)
}
