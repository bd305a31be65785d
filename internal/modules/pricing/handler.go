package pricing

import (
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

// RegisterOwnerRoutes mounts the rule CRUD under an owner-guarded court
// group; ownership is already verified by the enclosing middleware.
func (h *Handler) RegisterOwnerRoutes(courts *gin.RouterGroup) {
	courts.POST("/:id/pricing", h.CreateRule)
	courts.GET("/:id/pricing", h.ListRules)
	courts.PUT("/:id/pricing/:ruleID", h.UpdateRule)
	courts.DELETE("/:id/pricing/:ruleID", h.DeleteRule)
}

func (h *Handler) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.GET("/courts/:id/pricing", h.DayPricing)
}

func (h *Handler) CreateRule(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rule, err := h.service.CreateRule(c.Request.Context(), courtID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toRuleResponse(rule))
}

func (h *Handler) ListRules(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}

	rules, err := h.service.ListRules(c.Request.Context(), courtID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]RuleResponse, 0, len(rules))
	for i := range rules {
		out = append(out, toRuleResponse(&rules[i]))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) UpdateRule(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}
	ruleID, ok := paramID(c, "ruleID")
	if !ok {
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rule, err := h.service.UpdateRule(c.Request.Context(), courtID, ruleID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toRuleResponse(rule))
}

func (h *Handler) DeleteRule(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}
	ruleID, ok := paramID(c, "ruleID")
	if !ok {
		return
	}

	if err := h.service.DeleteRule(c.Request.Context(), courtID, ruleID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) DayPricing(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return
	}

	rules, err := h.service.DayPricing(c.Request.Context(), courtID, date)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]RuleResponse, 0, len(rules))
	for i := range rules {
		out = append(out, toRuleResponse(&rules[i]))
	}
	response.Success(c, http.StatusOK, gin.H{
		"date":        date.Format("2006-01-02"),
		"day_of_week": domain.WeekdayIndex(date),
		"pricing":     out,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Pricing rule or court not found")
	case errors.Is(err, ErrNoPricing):
		response.Error(c, http.StatusNotFound, "NO_PRICING", "No pricing available for this date")
	case errors.Is(err, ErrRuleOverlap):
		response.Error(c, http.StatusConflict, "RULE_OVERLAP", "Pricing rule overlaps an existing rule for the same days")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Pricing operation failed")
	}
}

func toRuleResponse(r *domain.PricingRule) RuleResponse {
	return RuleResponse{
		ID:           r.ID,
		CourtID:      r.CourtID,
		Days:         r.Days,
		StartTime:    r.StartTime.String(),
		EndTime:      r.EndTime.String(),
		PricePerHour: r.PricePerHour,
		Label:        r.Label,
	}
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}
