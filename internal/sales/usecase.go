package sales

import (
	"context"

	"github.com/ducktide/factory-service/internal/model"
	"github.com/ducktide/factory-service/internal/sales/dto"
)

type UseCase interface {
	// CreateOrder creates a draft sales order with its lines. Fails with
	// Validation when no lines are given, NotFound on an unknown SKU.
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.SalesOrder, error)

	// GetOrder returns the order, its lines, and a price breakdown
	// recomputed against current catalog prices.
	GetOrder(ctx context.Context, id string) (*dto.OrderDetails, error)
}
