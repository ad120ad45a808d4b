package inventory

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fdiazguiza/almacen/internal/domain/models"
)

// OrderService exposes the read-only order surface. Orders are immutable once
// created, so listing is all there is.
type OrderService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewOrderService wires a new order service instance.
func NewOrderService(db *gorm.DB, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{db: db, logger: logger}
}

// List returns every order as stored, without touching the related tables.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, storage("list", "order", "", err)
	}
	return orders, nil
}

// ListDetailed returns every order with its client and article rows
// materialized up front. Relations are an explicit caller choice here, never
// an implicit fetch on field access.
func (s *OrderService) ListDetailed(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Article").
		Find(&orders).Error; err != nil {
		return nil, storage("list", "order", "", err)
	}
	return orders, nil
}
