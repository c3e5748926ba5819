package purchasing

import (
	"context"

	"github.com/ducktide/factory-service/internal/model"
	"github.com/ducktide/factory-service/internal/purchasing/dto"
)

type Repository interface {
	Create(ctx context.Context, po *model.PurchaseOrder) error
	// Get returns nil when unknown.
	Get(ctx context.Context, id string) (*model.PurchaseOrder, error)

	// ReceiveWithStock marks the order received and posts the received
	// stock in one transaction.
	ReceiveWithStock(ctx context.Context, po *model.PurchaseOrder, stock *model.StockRecord) error

	// ListBelowReorder returns material and component items whose total
	// on-hand is below their reorder threshold, ordered by SKU.
	ListBelowReorder(ctx context.Context) ([]dto.ReorderCandidate, error)
}
