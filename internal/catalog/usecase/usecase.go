package usecase

import (
	"context"

	"github.com/ducktide/factory-service/config"
	"github.com/ducktide/factory-service/internal/catalog"
	"github.com/ducktide/factory-service/internal/model"
	"github.com/ducktide/factory-service/pkg/apperrors"
	"github.com/ducktide/factory-service/pkg/logger"
)

type catalogUseCase struct {
	repo    catalog.Repository
	pricing config.PricingConfig
	logger  logger.ZapLogger
}

func NewCatalogUseCase(repo catalog.Repository, pricing config.PricingConfig, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		repo:    repo,
		pricing: pricing,
		logger:  log,
	}
}

func (uc *catalogUseCase) ResolveItem(ctx context.Context, sku string) (*model.Item, error) {
	if sku == "" {
		return nil, apperrors.Validation("sku is required")
	}
	item, err := uc.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NotFound("item %s", sku)
	}
	return item, nil
}

func (uc *catalogUseCase) GetItem(ctx context.Context, id string) (*model.Item, error) {
	item, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NotFound("item id %s", id)
	}
	return item, nil
}

func (uc *catalogUseCase) ListByType(ctx context.Context, itemType string) ([]model.Item, error) {
	return uc.repo.ListByType(ctx, itemType)
}

func (uc *catalogUseCase) UnitPrice(item *model.Item) float64 {
	if item != nil && item.UnitPrice != nil {
		return *item.UnitPrice
	}
	return uc.pricing.DefaultUnitPrice
}
