package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fdiazguiza/almacen/internal/service/inventory"
)

// GeneralHandler serves the landing summary and the health probe.
type GeneralHandler struct {
	articles *inventory.ArticleService
	db       *gorm.DB
	logger   *zap.Logger
}

// NewGeneralHandler constructs the HTTP handler adapter.
func NewGeneralHandler(articles *inventory.ArticleService, db *gorm.DB, logger *zap.Logger) *GeneralHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeneralHandler{articles: articles, db: db, logger: logger}
}

// Index returns the landing summary: a compact article listing plus the total
// count, the JSON analog of the legacy home page.
func (h *GeneralHandler) Index(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	compact := make([]gin.H, 0, len(articles))
	for _, a := range articles {
		compact = append(compact, gin.H{
			"codigo_articulo": a.Code,
			"seccion":         a.Section,
			"nombre_articulo": a.Name,
			"precio":          a.Price,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"articulos":       compact,
		"total_articulos": len(compact),
	})
}

// Health reports liveness and verifies the database with a SELECT 1.
func (h *GeneralHandler) Health(c *gin.Context) {
	if err := h.db.WithContext(c.Request.Context()).Exec("SELECT 1").Error; err != nil {
		h.logger.Warn("health check db probe failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
