package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fdiazguiza/almacen/internal/server/handlers"
)

const requestIDHeader = "X-Request-ID"

// Handlers groups every HTTP adapter the router mounts.
type Handlers struct {
	General  *handlers.GeneralHandler
	Articles *handlers.ArticleHandler
	Clients  *handlers.ClientHandler
	Orders   *handlers.OrderHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/", h.General.Index)
	r.GET("/healthz", h.General.Health)

	articulos := r.Group("/articulos")
	{
		articulos.GET("", h.Articles.List)
		articulos.GET("/buscar", h.Articles.Search)
		articulos.GET("/export", h.Articles.Export)
		articulos.POST("", h.Articles.Create)
		articulos.GET("/:codigo", h.Articles.Get)
		articulos.PUT("/:codigo", h.Articles.Update)
		articulos.DELETE("/:codigo", h.Articles.Delete)
	}

	r.GET("/clientes", h.Clients.List)
	r.GET("/pedidos", h.Orders.List)

	// The legacy app rendered a custom 404 page; the API answers in kind.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "la página solicitada no existe"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")),
			zap.String("client_ip", c.ClientIP()))
	}
}
