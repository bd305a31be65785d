package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Weekdays is a pricing rule's day set, 0=Monday..6=Sunday, stored as a
// JSON array column.
type Weekdays []int

func (d Weekdays) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *Weekdays) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("Weekdays: expected []byte, got %T", src)
	}
}

func (d Weekdays) Contains(day int) bool {
	for _, v := range d {
		if v == day {
			return true
		}
	}
	return false
}

// SharesDay reports whether the two day sets have at least one weekday in
// common.
func (d Weekdays) SharesDay(other Weekdays) bool {
	for _, v := range other {
		if d.Contains(v) {
			return true
		}
	}
	return false
}

// PricingRule is a weekday+time window during which a court costs a fixed
// hourly rate. Rules for one court never overlap on a shared weekday; the
// pricing service enforces that with an explicit scan at write time.
type PricingRule struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	CourtID      int64     `json:"court_id" gorm:"index"`
	Days         Weekdays  `json:"days" gorm:"type:json" validate:"required"`
	StartTime    TimeOfDay `json:"start_time"`
	EndTime      TimeOfDay `json:"end_time"`
	PricePerHour float64   `json:"price_per_hour" validate:"required,gt=0"`
	Label        string    `json:"label,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Court *Court `json:"court,omitempty" gorm:"foreignKey:CourtID"`
}

// ContainsRange reports whether [start, end) fits entirely inside the
// rule's window. Rate lookup requires containment, not mere overlap: a
// booking must be priced by a single rule.
func (r *PricingRule) ContainsRange(start, end TimeOfDay) bool {
	return r.StartTime <= start && r.EndTime >= end
}
