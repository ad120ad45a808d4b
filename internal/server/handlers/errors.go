package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fdiazguiza/almacen/internal/service/inventory"
)

// respondError translates service errors into HTTP responses. Storage detail
// never reaches the client; it is logged and replaced by a generic message.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *inventory.ValidationError
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, inventory.ErrArticleReferenced):
		c.JSON(http.StatusConflict, gin.H{"error": "article is referenced by existing orders"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
