package inventory

import (
	"context"

	"github.com/ducktide/factory-service/internal/model"
)

type Repository interface {
	// ListByItem returns every stock bucket for an item across warehouses
	// and locations, ordered by warehouse then location.
	ListByItem(ctx context.Context, itemID string) ([]model.StockRecord, error)
}
