package production

import (
	"context"

	"github.com/ducktide/factory-service/internal/model"
)

type Repository interface {
	// GetRecipe loads a recipe with its ingredients and operations in
	// sequence order; nil when unknown.
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)
	ListRecipes(ctx context.Context, outputItemID string, limit int) ([]model.Recipe, error)

	// GetOrder loads a production order with its operation records; nil
	// when unknown.
	GetOrder(ctx context.Context, id string) (*model.ProductionOrder, error)

	// CreateOrderWithOperations inserts the order and all its operation
	// records in one transaction: either everything lands or nothing does.
	CreateOrderWithOperations(ctx context.Context, order *model.ProductionOrder, ops []model.ProductionOperation) error

	// Start moves the order to in_progress and records the active operation.
	Start(ctx context.Context, id string, currentOperation *string) error

	// CompleteWithStock updates the order and posts the produced stock in
	// one transaction.
	CompleteWithStock(ctx context.Context, order *model.ProductionOrder, stock *model.StockRecord) error
}
