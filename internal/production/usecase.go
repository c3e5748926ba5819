package production

import (
	"context"

	"github.com/ducktide/factory-service/internal/model"
	"github.com/ducktide/factory-service/internal/production/dto"
)

// UseCase is the production order lifecycle: a strictly forward state
// machine from waiting/ready through in_progress to completed.
//
// Ingredient sufficiency is checked once, at creation time; materials are
// never actually decremented when an order starts or completes. That is a
// known gap inherited from the current system, left visible rather than
// papered over with unspecified reservation semantics.
type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*dto.CreateOrderResult, error)
	StartOrder(ctx context.Context, id string) (*model.ProductionOrder, error)
	CompleteOrder(ctx context.Context, input *dto.CompleteOrderInput) (*model.ProductionOrder, error)
	GetOrder(ctx context.Context, id string) (*model.ProductionOrder, error)
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)
	ListRecipes(ctx context.Context, outputItemID string, limit int) ([]model.Recipe, error)
}
