package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fdiazguiza/almacen/internal/service/inventory"
)

// OrderHandler adapts the order service to HTTP.
type OrderHandler struct {
	svc    *inventory.OrderService
	logger *zap.Logger
}

// NewOrderHandler constructs the HTTP handler adapter.
func NewOrderHandler(svc *inventory.OrderService, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandler{svc: svc, logger: logger}
}

// List returns every order. With ?detalle=1 the related client and article
// rows are materialized into each order.
func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var err error
	var orders interface{}
	if c.Query("detalle") == "1" {
		orders, err = h.svc.ListDetailed(ctx)
	} else {
		orders, err = h.svc.List(ctx)
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pedidos": orders})
}
