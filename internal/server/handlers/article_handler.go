package handlers

import (
	"encoding/csv"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fdiazguiza/almacen/internal/domain/models"
	"github.com/fdiazguiza/almacen/internal/server/presenter"
	"github.com/fdiazguiza/almacen/internal/service/inventory"
)

// ArticleHandler adapts the article service to HTTP.
type ArticleHandler struct {
	svc    *inventory.ArticleService
	logger *zap.Logger
}

// NewArticleHandler constructs the HTTP handler adapter.
func NewArticleHandler(svc *inventory.ArticleService, logger *zap.Logger) *ArticleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArticleHandler{svc: svc, logger: logger}
}

// List returns every article.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articulos": articles})
}

// Search filters articles by the termino query parameter. An empty term
// returns an empty list, mirroring the legacy search page.
func (h *ArticleHandler) Search(c *gin.Context) {
	term := c.Query("termino")
	articles, err := h.svc.Search(c.Request.Context(), term)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articulos": articles, "termino": term})
}

// Export streams the full catalog as CSV, one ordered display row per article.
func (h *ArticleHandler) Export(c *gin.Context) {
	articles, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="articulos.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(presenter.Header(presenter.ArticleFields(models.Article{})))
	for _, a := range articles {
		_ = w.Write(presenter.Values(presenter.ArticleFields(a)))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		h.logger.Error("csv export failed", zap.Error(err))
	}
}

// Get returns a single article by code.
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.svc.Get(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Create inserts a new article from a JSON body.
func (h *ArticleHandler) Create(c *gin.Context) {
	var in inventory.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid article payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	article, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// Update replaces the mutable fields of an existing article.
func (h *ArticleHandler) Update(c *gin.Context) {
	var in inventory.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid article payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	article, err := h.svc.Update(c.Request.Context(), c.Param("codigo"), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Delete removes an article permanently.
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("codigo")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
