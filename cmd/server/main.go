package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/fdiazguiza/almacen/internal/config"
	"github.com/fdiazguiza/almacen/internal/database"
	"github.com/fdiazguiza/almacen/internal/server/handlers"
	"github.com/fdiazguiza/almacen/internal/server/router"
	"github.com/fdiazguiza/almacen/internal/service/inventory"
	"github.com/fdiazguiza/almacen/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	pool := database.NewLazy(cfg.Database)
	db, err := pool.DB()
	if err != nil {
		baseLogger.Fatal("failed to init database pool", zap.Error(err))
	}
	defer func() {
		if err := pool.Close(); err != nil {
			baseLogger.Error("failed to close database pool", zap.Error(err))
		}
	}()

	articleSvc := inventory.NewArticleService(db, baseLogger.Named("svc.articles"))
	clientSvc := inventory.NewClientService(db, baseLogger.Named("svc.clients"))
	orderSvc := inventory.NewOrderService(db, baseLogger.Named("svc.orders"))

	engine := router.New(router.Handlers{
		General:  handlers.NewGeneralHandler(articleSvc, db, baseLogger.Named("handlers.general")),
		Articles: handlers.NewArticleHandler(articleSvc, baseLogger.Named("handlers.articles")),
		Clients:  handlers.NewClientHandler(clientSvc, baseLogger.Named("handlers.clients")),
		Orders:   handlers.NewOrderHandler(orderSvc, baseLogger.Named("handlers.orders")),
	}, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
