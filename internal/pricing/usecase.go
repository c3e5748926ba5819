package pricing

import (
	"context"

	"github.com/ducktide/factory-service/internal/pricing/dto"
)

type UseCase interface {
	// PriceLines computes the full breakdown for a set of order lines
	// against current catalog prices. Deterministic: identical lines and
	// prices always produce an identical breakdown. Fails with
	// apperrors.ErrEmptyOrder when there are no lines.
	PriceLines(ctx context.Context, lines []dto.OrderLine) (*dto.PriceBreakdown, error)
}
