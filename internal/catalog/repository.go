package catalog

import (
	"context"

	"github.com/ducktide/factory-service/internal/model"
)

type Repository interface {
	// FindBySKU returns nil when no item matches (caller decides if that
	// is an error).
	FindBySKU(ctx context.Context, sku string) (*model.Item, error)
	FindByID(ctx context.Context, id string) (*model.Item, error)

	// ListByType returns all items of one type ordered by SKU ascending,
	// so downstream candidate enumeration stays deterministic.
	ListByType(ctx context.Context, itemType string) ([]model.Item, error)
}
