package inventory

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fdiazguiza/almacen/internal/domain/models"
)

// ClientService exposes the read-only client surface. Clients are maintained
// externally; nothing here mutates them.
type ClientService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewClientService wires a new client service instance.
func NewClientService(db *gorm.DB, logger *zap.Logger) *ClientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientService{db: db, logger: logger}
}

// List returns every client in storage order.
func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, storage("list", "client", "", err)
	}
	return clients, nil
}
