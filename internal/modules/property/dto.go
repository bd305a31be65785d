package property

import "courtbook/internal/domain"

type CreatePropertyRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address" validate:"required"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email" validate:"omitempty,email"`
	MapsLink    string   `json:"maps_link"`
	Amenities   []string `json:"amenities"`
}

// UpdatePropertyRequest patches only the fields present in the payload.
type UpdatePropertyRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Address     *string   `json:"address"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	Country     *string   `json:"country"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	MapsLink    *string   `json:"maps_link"`
	Amenities   *[]string `json:"amenities"`
	IsActive    *bool     `json:"is_active"`
}

type SearchRequest struct {
	City      string `form:"city"`
	SportType string `form:"sport_type"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=20"`
}

type PropertyResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Address     string             `json:"address"`
	City        string             `json:"city"`
	State       string             `json:"state,omitempty"`
	Country     string             `json:"country,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	Email       string             `json:"email,omitempty"`
	MapsLink    string             `json:"maps_link,omitempty"`
	Amenities   domain.StringSlice `json:"amenities,omitempty"`
	IsActive    bool               `json:"is_active"`
	Courts      []domain.Court     `json:"courts,omitempty"`
}

type SearchResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
