package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// IsTerminal reports whether no further lifecycle transition is permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// Active statuses hold their slot: only pending and confirmed bookings
// participate in conflict checks and slot exclusion.
func (s BookingStatus) IsActive() bool {
	return s == BookingPending || s == BookingConfirmed
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	CourtID    int64     `json:"court_id" gorm:"index:idx_bookings_court_date"`
	CustomerID int64     `json:"customer_id" gorm:"index"`
	Date       time.Time `json:"date" gorm:"index:idx_bookings_court_date"`
	StartTime  TimeOfDay `json:"start_time"`
	EndTime    TimeOfDay `json:"end_time"`
	TotalHours float64   `json:"total_hours"`
	// PricePerHour is a snapshot taken at creation; later pricing rule
	// edits never reprice an existing booking.
	PricePerHour  float64       `json:"price_per_hour"`
	TotalPrice    float64       `json:"total_price"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Notes         string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Court    *Court `json:"court,omitempty" gorm:"foreignKey:CourtID"`
	Customer *User  `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
