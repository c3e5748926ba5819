package usecase

import (
	"context"
	"sort"

	"github.com/ducktide/factory-service/internal/fulfillment/dto"
	"github.com/ducktide/factory-service/internal/model"
	"github.com/shopspring/decimal"
)

// findSubstitutions returns same-type items whose unit price falls within
// the configured band around the requested item's price and that have
// positive stock. Candidates are restricted to the allow-list when one is
// supplied, and returned in ascending SKU order so option numbering stays
// stable across repeated calls with unchanged data.
func (uc *fulfillmentUseCase) findSubstitutions(ctx context.Context, requested *model.Item, allowedSubs []string) ([]dto.SubstitutionCandidate, error) {
	basePrice := decimal.NewFromFloat(uc.catalog.UnitPrice(requested))
	slack := decimal.NewFromFloat(uc.cfg.SubstitutionPriceSlack)
	lower := basePrice.Mul(decimal.NewFromInt(1).Sub(slack))
	upper := basePrice.Mul(decimal.NewFromInt(1).Add(slack))

	allowed := map[string]bool{}
	for _, sku := range allowedSubs {
		allowed[sku] = true
	}

	items, err := uc.catalog.ListByType(ctx, requested.Type)
	if err != nil {
		return nil, err
	}

	var candidates []dto.SubstitutionCandidate
	for _, cand := range items {
		if cand.ID == requested.ID {
			continue
		}
		if len(allowedSubs) > 0 && !allowed[cand.SKU] {
			continue
		}

		candPrice := decimal.NewFromFloat(uc.catalog.UnitPrice(&cand))
		if candPrice.Cmp(lower) < 0 || candPrice.Cmp(upper) > 0 {
			continue
		}

		stock, err := uc.inventory.StockSummary(ctx, cand.ID)
		if err != nil {
			return nil, err
		}
		if stock.AvailableTotal <= 0 {
			continue
		}

		candidates = append(candidates, dto.SubstitutionCandidate{
			Item:      cand,
			UnitPrice: candPrice.InexactFloat64(),
			Available: stock.AvailableTotal,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Item.SKU < candidates[j].Item.SKU
	})
	return candidates, nil
}
