package property

import (
	"errors"
	"net/http"
	"strconv"

	"courtbook/internal/domain"
	"courtbook/internal/pkg/response"
	"courtbook/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.GET("/properties", h.Search)
	public.GET("/properties/:id", h.PublicDetails)
}

// RegisterOwnerRoutes mounts the CRUD; update and delete additionally
// pass through the property ownership middleware.
func (h *Handler) RegisterOwnerRoutes(owner *gin.RouterGroup, ownsProperty gin.HandlerFunc) {
	owner.POST("/properties", h.Create)
	owner.GET("/properties", h.Mine)
	owner.PUT("/properties/:id", ownsProperty, h.Update)
	owner.DELETE("/properties/:id", ownsProperty, h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property data", fields)
		return
	}

	p, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toPropertyResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toPropertyResponse(p))
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

func (h *Handler) Mine(c *gin.Context) {
	list, err := h.service.GetMine(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]PropertyResponse, 0, len(list))
	for i := range list {
		out = append(out, toPropertyResponse(&list[i]))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) PublicDetails(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.service.PublicDetails(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toPropertyResponse(p))
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	list, total, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]PropertyResponse, 0, len(list))
	for i := range list {
		out = append(out, toPropertyResponse(&list[i]))
	}
	response.Success(c, http.StatusOK, SearchResponse{
		Properties: out,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Property operation failed")
	}
}

func toPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		Country:     p.Country,
		Phone:       p.Phone,
		Email:       p.Email,
		MapsLink:    p.MapsLink,
		Amenities:   p.Amenities,
		IsActive:    p.IsActive,
		Courts:      p.Courts,
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return 0, false
	}
	return id, true
}
