package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringSlice is stored as a JSON column (amenity lists and similar).
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StringSlice) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("StringSlice: expected []byte, got %T", src)
	}
}

type Property struct {
	ID          int64       `json:"id" gorm:"primaryKey"`
	OwnerID     int64       `json:"owner_id" gorm:"index"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description,omitempty" gorm:"type:text"`
	Address     string      `json:"address"`
	City        string      `json:"city" gorm:"index"`
	State       string      `json:"state,omitempty"`
	Country     string      `json:"country,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	Email       string      `json:"email,omitempty"`
	MapsLink    string      `json:"maps_link,omitempty"`
	Amenities   StringSlice `json:"amenities,omitempty" gorm:"type:json"`
	IsActive    bool        `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Owner  *User   `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Courts []Court `json:"courts,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}
