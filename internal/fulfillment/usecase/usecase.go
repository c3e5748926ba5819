package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ducktide/factory-service/config"
	"github.com/ducktide/factory-service/internal/catalog"
	"github.com/ducktide/factory-service/internal/fulfillment"
	"github.com/ducktide/factory-service/internal/fulfillment/dto"
	"github.com/ducktide/factory-service/internal/inventory"
	"github.com/ducktide/factory-service/pkg/apperrors"
	"github.com/ducktide/factory-service/pkg/clock"
	"github.com/ducktide/factory-service/pkg/logger"
	"go.uber.org/zap"
)

type fulfillmentUseCase struct {
	catalog   catalog.UseCase
	inventory inventory.UseCase
	cfg       config.FulfillmentConfig
	clock     clock.Clock
	logger    logger.ZapLogger
}

func NewFulfillmentUseCase(
	cat catalog.UseCase,
	inv inventory.UseCase,
	cfg config.FulfillmentConfig,
	clk clock.Clock,
	log logger.ZapLogger,
) fulfillment.UseCase {
	return &fulfillmentUseCase{
		catalog:   cat,
		inventory: inv,
		cfg:       cfg,
		clock:     clk,
		logger:    log,
	}
}

func (uc *fulfillmentUseCase) Plan(ctx context.Context, input *dto.PlanInput) ([]dto.FulfillmentOption, error) {
	if input == nil || input.SKU == "" {
		return nil, apperrors.Validation("sku is required")
	}
	if input.Qty <= 0 || input.Qty != math.Trunc(input.Qty) {
		return nil, apperrors.Validation("qty must be a positive whole number, got %v", input.Qty)
	}

	item, err := uc.catalog.ResolveItem(ctx, input.SKU)
	if err != nil {
		return nil, err
	}

	summary, err := uc.inventory.StockSummary(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	available := math.Max(0, summary.AvailableTotal)
	qty := input.Qty
	prodLead := uc.cfg.ProductionLeadDays(item.Type)

	var options []dto.FulfillmentOption
	addOption := func(summary string, lines []dto.AllocationLine, notes string) {
		options = append(options, dto.FulfillmentOption{
			OptionID:    fmt.Sprintf("OPT-%d", len(options)+1),
			Summary:     summary,
			Lines:       lines,
			CanArriveBy: uc.optionArrival(lines, prodLead),
			Notes:       notes,
		})
	}

	// Baseline options for the requested SKU itself, in fixed order.
	switch {
	case available >= qty:
		addOption(
			fmt.Sprintf("Ship %v x %s from stock", qty, input.SKU),
			[]dto.AllocationLine{{SKU: input.SKU, Qty: qty, Source: dto.SourceStock}},
			"All units available now; using default transit lead.",
		)
	case available > 0:
		remaining := qty - available
		addOption(
			fmt.Sprintf("Ship %v from stock, %v from production", available, remaining),
			[]dto.AllocationLine{
				{SKU: input.SKU, Qty: available, Source: dto.SourceStock},
				{SKU: input.SKU, Qty: remaining, Source: dto.SourceProduction},
			},
			"Partial stock now; remainder after production lead.",
		)
	default:
		addOption(
			fmt.Sprintf("Produce and ship %v x %s", qty, input.SKU),
			[]dto.AllocationLine{{SKU: input.SKU, Qty: qty, Source: dto.SourceProduction}},
			"No stock available; production required.",
		)
	}

	// Substitution options based on type and price band.
	candidates, err := uc.findSubstitutions(ctx, item, input.AllowedSubs)
	if err != nil {
		return nil, err
	}

	for _, cand := range candidates {
		subAvail := math.Max(0, cand.Available)
		if subAvail <= 0 {
			continue
		}

		// If mixing requested stock with substitute stock covers the
		// shortage, surface that first.
		shortage := math.Max(0, qty-available)
		if available > 0 && shortage > 0 && available+subAvail >= qty {
			fillQty := qty - available
			addOption(
				fmt.Sprintf("Stock mix: %v x %s + %v x %s", available, input.SKU, fillQty, cand.Item.SKU),
				[]dto.AllocationLine{
					{SKU: input.SKU, Qty: available, Source: dto.SourceStock},
					{SKU: cand.Item.SKU, Qty: fillQty, Source: dto.SourceStock},
				},
				"Mix requested SKU with substitution from stock to meet requested date.",
			)
		}

		if subAvail >= qty {
			addOption(
				fmt.Sprintf("Substitute %v x %s (price-similar)", qty, cand.Item.SKU),
				[]dto.AllocationLine{{SKU: cand.Item.SKU, Qty: qty, Source: dto.SourceStock}},
				"Within price band and same type; ships from stock.",
			)
		} else {
			remaining := qty - subAvail
			subLead := uc.cfg.ProductionLeadDays(cand.Item.Type)
			addOption(
				fmt.Sprintf("Substitute %v stock + %v production of %s", subAvail, remaining, cand.Item.SKU),
				[]dto.AllocationLine{
					{SKU: cand.Item.SKU, Qty: subAvail, Source: dto.SourceStock},
					{SKU: cand.Item.SKU, Qty: remaining, Source: dto.SourceProduction, LeadDays: &subLead},
				},
				"Within price band and same type; partial stock, remainder after production.",
			)
		}
	}

	uc.logger.Debug("fulfillment plan computed",
		zap.String("sku", input.SKU),
		zap.Float64("qty", qty),
		zap.Int("options", len(options)),
	)
	return options, nil
}

// optionArrival applies the slowest-line-dominates rule: a production line
// arrives after its lead plus transit, a stock line after transit alone,
// and the option as a whole arrives with its latest line (one consolidated
// shipment).
func (uc *fulfillmentUseCase) optionArrival(lines []dto.AllocationLine, defaultProdLead int) time.Time {
	transitETA := uc.etaFromDays(uc.cfg.TransitDays)

	arrival := transitETA
	for _, line := range lines {
		lineETA := transitETA
		if line.Source == dto.SourceProduction {
			lead := defaultProdLead
			if line.LeadDays != nil {
				lead = *line.LeadDays
			}
			lineETA = uc.etaFromDays(lead + uc.cfg.TransitDays)
		}
		if lineETA.After(arrival) {
			arrival = lineETA
		}
	}
	return arrival
}

func (uc *fulfillmentUseCase) etaFromDays(days int) time.Time {
	now := uc.clock.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, days)
}
