package purchasing

import (
	"context"

	"github.com/ducktide/factory-service/internal/model"
	"github.com/ducktide/factory-service/internal/purchasing/dto"
)

type UseCase interface {
	// CreateOrder orders a quantity of a material from a supplier,
	// inferring the supplier from the item name when none is given.
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.PurchaseOrder, error)

	// Receive books the ordered quantity into stock at the given
	// warehouse/location. InvalidState when already received.
	Receive(ctx context.Context, input *dto.ReceiveInput) (*model.PurchaseOrder, error)

	// RestockMaterials sweeps materials/components below their reorder
	// threshold and raises one purchase order per short item.
	RestockMaterials(ctx context.Context) (*dto.RestockResult, error)
}
