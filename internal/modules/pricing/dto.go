package pricing

type CreateRuleRequest struct {
	Days         []int   `json:"days" binding:"required"`
	StartTime    string  `json:"start_time" binding:"required"`
	EndTime      string  `json:"end_time" binding:"required"`
	PricePerHour float64 `json:"price_per_hour" binding:"required"`
	Label        string  `json:"label"`
}

// UpdateRuleRequest enumerates the mutable fields explicitly; nil means
// "keep the stored value".
type UpdateRuleRequest struct {
	Days         *[]int   `json:"days"`
	StartTime    *string  `json:"start_time"`
	EndTime      *string  `json:"end_time"`
	PricePerHour *float64 `json:"price_per_hour"`
	Label        *string  `json:"label"`
}

type RuleResponse struct {
	ID           int64   `json:"id"`
	CourtID      int64   `json:"court_id"`
	Days         []int   `json:"days"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	PricePerHour float64 `json:"price_per_hour"`
	Label        string  `json:"label,omitempty"`
}
