package domain

import "time"

// AvailabilityBlock is an owner-declared exclusion window for a court on
// one calendar date ("closed for maintenance" and the like). Independent
// of pricing windows.
type AvailabilityBlock struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CourtID   int64     `json:"court_id" gorm:"index"`
	Date      time.Time `json:"date" gorm:"index"`
	StartTime TimeOfDay `json:"start_time"`
	EndTime   TimeOfDay `json:"end_time"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Court *Court `json:"court,omitempty" gorm:"foreignKey:CourtID"`
}
