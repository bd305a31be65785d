package court

import "courtbook/internal/domain"

type CreateCourtRequest struct {
	PropertyID  int64  `json:"property_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	SportType   string `json:"sport_type" binding:"required"`
	Description string `json:"description"`
}

type UpdateCourtRequest struct {
	Name        *string `json:"name"`
	SportType   *string `json:"sport_type"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CourtResponse struct {
	ID          int64  `json:"id"`
	PropertyID  int64  `json:"property_id"`
	Name        string `json:"name"`
	SportType   string `json:"sport_type"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`

	PropertyName string               `json:"property_name,omitempty"`
	City         string               `json:"city,omitempty"`
	PricingRules []domain.PricingRule `json:"pricing_rules,omitempty"`
}
