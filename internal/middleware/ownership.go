package middleware

import (
	"context"
	"net/http"
	"strconv"

	"courtbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CourtOwnerResolver resolves the owning user of a court through its
// parent property.
type CourtOwnerResolver interface {
	OwnerID(ctx context.Context, courtID int64) (int64, error)
}

type PropertyReader interface {
	OwnerOf(ctx context.Context, propertyID int64) (int64, error)
}

// OwnershipChecker verifies that the authenticated owner controls the
// resource named in the route before any owner-only operation runs. The
// booking core itself never re-checks ownership.
type OwnershipChecker struct {
	courts     CourtOwnerResolver
	properties PropertyReader
}

func NewOwnershipChecker(courts CourtOwnerResolver, properties PropertyReader) *OwnershipChecker {
	return &OwnershipChecker{courts: courts, properties: properties}
}

// Court guards routes with a court id in URL param "id".
func (oc *OwnershipChecker) Court() gin.HandlerFunc {
	return oc.check("id", func(c *gin.Context, resourceID int64) (int64, error) {
		return oc.courts.OwnerID(c.Request.Context(), resourceID)
	})
}

// Property guards routes with a property id in URL param "id".
func (oc *OwnershipChecker) Property() gin.HandlerFunc {
	return oc.check("id", func(c *gin.Context, resourceID int64) (int64, error) {
		return oc.properties.OwnerOf(c.Request.Context(), resourceID)
	})
}

func (oc *OwnershipChecker) check(param string, resolve func(*gin.Context, int64) (int64, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		resourceID, err := strconv.ParseInt(c.Param(param), 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid resource ID")
			c.Abort()
			return
		}

		ownerID, err := resolve(c, resourceID)
		if err != nil || ownerID == 0 {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			c.Abort()
			return
		}
		if ownerID != userID {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this resource")
			c.Abort()
			return
		}

		c.Next()
	}
}
