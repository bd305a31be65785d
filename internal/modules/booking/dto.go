package booking

type CreateBookingRequest struct {
	CourtID   int64  `json:"court_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Notes     string `json:"notes"`
}

type SlotResponse struct {
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	PricePerHour float64 `json:"price_per_hour"`
	Label        string  `json:"label,omitempty"`
}

type BookingResponse struct {
	ID            int64   `json:"id"`
	CourtID       int64   `json:"court_id"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	TotalHours    float64 `json:"total_hours"`
	PricePerHour  float64 `json:"price_per_hour"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Notes         string  `json:"notes,omitempty"`

	CourtName    string `json:"court_name,omitempty"`
	SportType    string `json:"sport_type,omitempty"`
	PropertyName string `json:"property_name,omitempty"`

	// Customer details are filled only for the property owner.
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
}
