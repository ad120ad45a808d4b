package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fdiazguiza/almacen/internal/service/inventory"
)

// ClientHandler adapts the client service to HTTP.
type ClientHandler struct {
	svc    *inventory.ClientService
	logger *zap.Logger
}

// NewClientHandler constructs the HTTP handler adapter.
func NewClientHandler(svc *inventory.ClientService, logger *zap.Logger) *ClientHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientHandler{svc: svc, logger: logger}
}

// List returns every client.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientes": clients})
}
