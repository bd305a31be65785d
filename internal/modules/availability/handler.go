package availability

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

func (h *Handler) RegisterOwnerRoutes(courts *gin.RouterGroup) {
	courts.POST("/:id/availability", h.Block)
	courts.GET("/:id/availability", h.ListBlocks)
	courts.DELETE("/:id/availability/:blockID", h.Unblock)
}

func (h *Handler) Block(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	block, err := h.service.Block(c.Request.Context(), courtID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toBlockResponse(block))
}

func (h *Handler) ListBlocks(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var from *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be YYYY-MM-DD")
			return
		}
		from = &parsed
	}

	blocks, err := h.service.ListBlocks(c.Request.Context(), courtID, from)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]BlockResponse, 0, len(blocks))
	for i := range blocks {
		out = append(out, toBlockResponse(&blocks[i]))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Unblock(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}
	blockID, ok := paramID(c, "blockID")
	if !ok {
		return
	}

	if err := h.service.Unblock(c.Request.Context(), courtID, blockID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Block or court not found")
	case errors.Is(err, ErrBlockOverlap):
		response.Error(c, http.StatusConflict, "BLOCK_OVERLAP", "Time slot overlaps an existing blocked slot")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Availability operation failed")
	}
}

func toBlockResponse(b *domain.AvailabilityBlock) BlockResponse {
	return BlockResponse{
		ID:        b.ID,
		CourtID:   b.CourtID,
		Date:      b.Date.Format("2006-01-02"),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Reason:    b.Reason,
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
