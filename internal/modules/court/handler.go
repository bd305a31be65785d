package court

import (
	"errors"
	"net/http"
	"strconv"

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
	public.GET("/courts/:id", h.PublicDetails)
}

// RegisterOwnerRoutes mounts the CRUD; mutating routes with a court id
// pass through the court ownership middleware; creation verifies
// property ownership in the service.
func (h *Handler) RegisterOwnerRoutes(owner *gin.RouterGroup, ownsCourt, ownsProperty gin.HandlerFunc) {
	owner.POST("/courts", h.Create)
	owner.GET("/properties/:id/courts", ownsProperty, h.ListByProperty)
	owner.PUT("/courts/:id", ownsCourt, h.Update)
	owner.DELETE("/courts/:id", ownsCourt, h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	court, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toCourtResponse(court))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	court, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCourtResponse(court))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListByProperty(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	list, err := h.service.ListByProperty(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]CourtResponse, 0, len(list))
	for i := range list {
		out = append(out, toCourtResponse(&list[i]))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) PublicDetails(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	court, err := h.service.PublicDetails(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCourtResponse(court))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Court not found")
	case errors.Is(err, ErrPropertyNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this property")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Court operation failed")
	}
}

func toCourtResponse(court *domain.Court) CourtResponse {
	resp := CourtResponse{
		ID:          court.ID,
		PropertyID:  court.PropertyID,
		Name:        court.Name,
		SportType:   court.SportType,
		Description: court.Description,
		IsActive:    court.IsActive,
		PricingRules: court.PricingRules,
	}
	if court.Property != nil {
		resp.PropertyName = court.Property.Name
		resp.City = court.Property.City
	}
	return resp
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid court ID")
		return 0, false
	}
	return id, true
}
