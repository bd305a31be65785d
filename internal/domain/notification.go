package domain

import (
	"database/sql"
	"time"
)

const (
	NotificationBookingCreated   = "booking.created"
	NotificationBookingConfirmed = "booking.confirmed"
	NotificationBookingCancelled = "booking.cancelled"
	NotificationBookingCompleted = "booking.completed"
)

// Notification is an in-app message for a user, written fire-and-forget
// from booking lifecycle events.
type Notification struct {
	ID        int64        `json:"id" gorm:"primaryKey"`
	UserID    int64        `json:"user_id" gorm:"index"`
	Type      string       `json:"type" gorm:"index"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	ReadAt    sql.NullTime `json:"read_at"`
	CreatedAt time.Time    `json:"created_at"`
}

func (n *Notification) IsRead() bool {
	return n.ReadAt.Valid
}
