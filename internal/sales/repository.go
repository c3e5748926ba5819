package sales

import (
	"context"

	"github.com/ducktide/factory-service/internal/model"
)

type Repository interface {
	// CreateOrderWithLines inserts the order and all its lines in one
	// transaction.
	CreateOrderWithLines(ctx context.Context, order *model.SalesOrder, lines []model.SalesOrderLine) error

	// GetOrder loads an order with its lines (SKU resolved); nil when
	// unknown.
	GetOrder(ctx context.Context, id string) (*model.SalesOrder, error)
}
