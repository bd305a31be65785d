package domain

import "time"

type Court struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	PropertyID  int64     `json:"property_id" gorm:"index"`
	Name        string    `json:"name" validate:"required"`
	SportType   string    `json:"sport_type" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`

	// Deleting a court removes its pricing, blocks and bookings with it.
	PricingRules []PricingRule       `json:"pricing_rules,omitempty" gorm:"foreignKey:CourtID;constraint:OnDelete:CASCADE"`
	Blocks       []AvailabilityBlock `json:"blocks,omitempty" gorm:"foreignKey:CourtID;constraint:OnDelete:CASCADE"`
	Bookings     []Booking           `json:"bookings,omitempty" gorm:"foreignKey:CourtID;constraint:OnDelete:CASCADE"`
}
