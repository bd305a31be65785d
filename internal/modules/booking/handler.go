package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"courtbook/internal/domain"
	"courtbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.GET("/courts/:id/slots", h.AvailableSlots)
}

// RegisterCustomerRoutes mounts booking creation and self-service under
// the customer-authenticated group.
func (h *Handler) RegisterCustomerRoutes(customer *gin.RouterGroup) {
	customer.POST("/bookings", h.Create)
	customer.GET("/bookings", h.MyBookings)
	customer.POST("/bookings/:id/cancel", h.Cancel)
}

// RegisterOwnerRoutes mounts the owner's lifecycle controls.
func (h *Handler) RegisterOwnerRoutes(owner *gin.RouterGroup) {
	owner.GET("/bookings", h.OwnerBookings)
	owner.POST("/bookings/:id/confirm", h.Confirm)
	owner.POST("/bookings/:id/complete", h.Complete)
	owner.POST("/bookings/:id/paid", h.MarkPaid)
}

// RegisterSharedRoutes mounts routes reachable by either party of a
// booking; the service decides access per booking.
func (h *Handler) RegisterSharedRoutes(auth *gin.RouterGroup) {
	auth.GET("/bookings/:id", h.Get)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toBookingResponse(b, false))
}

func (h *Handler) AvailableSlots(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), courtID, date)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			StartTime:    s.Start.String(),
			EndTime:      s.End.String(),
			PricePerHour: s.PricePerHour,
			Label:        s.Label,
		})
	}
	response.Success(c, http.StatusOK, gin.H{
		"date":  date.Format("2006-01-02"),
		"slots": out,
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, asOwner, err := h.service.GetBooking(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toBookingResponse(b, asOwner))
}

func (h *Handler) MyBookings(c *gin.Context) {
	list, err := h.service.GetMyBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toBookingResponses(list, false))
}

func (h *Handler) OwnerBookings(c *gin.Context) {
	list, err := h.service.GetOwnerBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toBookingResponses(list, true))
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel, false)
}

func (h *Handler) Confirm(c *gin.Context) {
	h.transition(c, h.service.Confirm, true)
}

func (h *Handler) Complete(c *gin.Context) {
	h.transition(c, h.service.Complete, true)
}

func (h *Handler) MarkPaid(c *gin.Context) {
	h.transition(c, h.service.MarkPaid, true)
}

func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, bookingID, userID int64) (*domain.Booking, error), asOwner bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, err := fn(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toBookingResponse(b, asOwner))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrCourtNotFound):
		response.Error(c, http.StatusNotFound, "COURT_NOT_FOUND", "Court not found or inactive")
	case errors.Is(err, ErrBlocked):
		response.Error(c, http.StatusConflict, "COURT_BLOCKED", err.Error())
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "SLOT_CONFLICT", "Time slot is already booked")
	case errors.Is(err, ErrNoPricing):
		response.Error(c, http.StatusBadRequest, "NO_PRICING", "No pricing available for this time slot")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this booking")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Booking operation failed")
	}
}

func toBookingResponse(b *domain.Booking, forOwner bool) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		CourtID:       b.CourtID,
		Date:          b.Date.Format("2006-01-02"),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		TotalHours:    b.TotalHours,
		PricePerHour:  b.PricePerHour,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Notes:         b.Notes,
	}
	if b.Court != nil {
		resp.CourtName = b.Court.Name
		resp.SportType = b.Court.SportType
		if b.Court.Property != nil {
			resp.PropertyName = b.Court.Property.Name
		}
	}
	if forOwner && b.Customer != nil {
		resp.CustomerName = b.Customer.Name
		resp.CustomerEmail = b.Customer.Email
	}
	return resp
}

func toBookingResponses(list []domain.Booking, forOwner bool) []BookingResponse {
	out := make([]BookingResponse, 0, len(list))
	for i := range list {
		out = append(out, toBookingResponse(&list[i], forOwner))
	}
	return out
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}
