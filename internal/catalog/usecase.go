package catalog

import (
	"context"

	"github.com/ducktide/factory-service/internal/model"
)

type UseCase interface {
	// ResolveItem fails with apperrors.ErrNotFound for an unknown SKU.
	ResolveItem(ctx context.Context, sku string) (*model.Item, error)
	GetItem(ctx context.Context, id string) (*model.Item, error)
	ListByType(ctx context.Context, itemType string) ([]model.Item, error)

	// UnitPrice resolves an item's effective price, falling back to the
	// configured default when the catalog has none.
	UnitPrice(item *model.Item) float64
}
