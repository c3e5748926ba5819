package inventory

import (
	"context"

	"github.com/ducktide/factory-service/internal/inventory/dto"
)

// UseCase exposes read-side availability. Stock is only ever written by
// production completion and purchase receipt, inside those domains'
// transactions. There is no cross-request reservation: two concurrent
// readers can both see the same available total and over-commit it.
type UseCase interface {
	StockSummary(ctx context.Context, itemID string) (*dto.StockSummary, error)
	CheckAvailability(ctx context.Context, sku string, qty float64) (*dto.AvailabilityCheck, error)
}
