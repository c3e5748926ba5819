package usecase

import (
	"context"

	"github.com/ducktide/factory-service/internal/catalog"
	"github.com/ducktide/factory-service/internal/inventory"
	"github.com/ducktide/factory-service/internal/inventory/dto"
	"github.com/ducktide/factory-service/pkg/logger"
)

type inventoryUseCase struct {
	repo    inventory.Repository
	catalog catalog.UseCase
	logger  logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, cat catalog.UseCase, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:    repo,
		catalog: cat,
		logger:  log,
	}
}

func (uc *inventoryUseCase) StockSummary(ctx context.Context, itemID string) (*dto.StockSummary, error) {
	records, err := uc.repo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var onHand float64
	for _, rec := range records {
		onHand += rec.OnHand
	}

	return &dto.StockSummary{
		ItemID:         itemID,
		OnHandTotal:    onHand,
		AvailableTotal: onHand,
		ByLocation:     records,
	}, nil
}

func (uc *inventoryUseCase) CheckAvailability(ctx context.Context, sku string, qty float64) (*dto.AvailabilityCheck, error) {
	item, err := uc.catalog.ResolveItem(ctx, sku)
	if err != nil {
		return nil, err
	}

	summary, err := uc.StockSummary(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	available := summary.AvailableTotal
	isAvailable := available >= qty
	shortfall := 0.0
	if !isAvailable {
		shortfall = qty - available
	}

	return &dto.AvailabilityCheck{
		ItemSKU:        sku,
		ItemName:       item.Name,
		QtyRequired:    qty,
		QtyAvailable:   available,
		IsAvailable:    isAvailable,
		Shortfall:      shortfall,
		StockLocations: summary.ByLocation,
	}, nil
}
