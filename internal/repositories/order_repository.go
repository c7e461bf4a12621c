package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"socialgrowth/internal/models"
)

// OrderStats aggregates the global order feed.
type OrderStats struct {
	Total   int64           `json:"total"`
	Pending int64           `json:"pending"`
	Revenue decimal.Decimal `json:"revenue"`
}

// OrderRepository defines the interface for order data access.
// List methods return newest orders first.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	Stats(ctx context.Context) (OrderStats, error)
}
