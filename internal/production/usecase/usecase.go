package usecase

import (
	"context"
	"time"

	"github.com/ducktide/factory-service/config"
	"github.com/ducktide/factory-service/internal/inventory"
	"github.com/ducktide/factory-service/internal/model"
	"github.com/ducktide/factory-service/internal/production"
	"github.com/ducktide/factory-service/internal/production/dto"
	"github.com/ducktide/factory-service/pkg/apperrors"
	"github.com/ducktide/factory-service/pkg/clock"
	"github.com/ducktide/factory-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type productionUseCase struct {
	repo      production.Repository
	inventory inventory.UseCase
	cfg       config.ProductionConfig
	clock     clock.Clock
	logger    logger.ZapLogger
}

func NewProductionUseCase(
	repo production.Repository,
	inv inventory.UseCase,
	cfg config.ProductionConfig,
	clk clock.Clock,
	log logger.ZapLogger,
) production.UseCase {
	return &productionUseCase{
		repo:      repo,
		inventory: inv,
		cfg:       cfg,
		clock:     clk,
		logger:    log,
	}
}

func (uc *productionUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*dto.CreateOrderResult, error) {
	if input == nil || input.RecipeID == "" {
		return nil, apperrors.Validation("recipe_id is required")
	}

	recipe, err := uc.repo.GetRecipe(ctx, input.RecipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, apperrors.NotFound("recipe %s", input.RecipeID)
	}

	// Sufficiency check for one batch. Materials are not reserved or
	// consumed here; see the UseCase doc comment.
	var shortfalls []dto.IngredientShortfall
	for _, ing := range recipe.Ingredients {
		check, err := uc.inventory.CheckAvailability(ctx, ing.IngredientSKU, ing.Qty)
		if err != nil {
			return nil, err
		}
		if !check.IsAvailable {
			shortfalls = append(shortfalls, dto.IngredientShortfall{
				IngredientSKU:  ing.IngredientSKU,
				IngredientName: ing.Name,
				QtyNeeded:      ing.Qty,
				QtyAvailable:   check.QtyAvailable,
				Shortfall:      check.Shortfall,
			})
		}
	}

	status := model.ProductionStatusReady
	if len(shortfalls) > 0 {
		status = model.ProductionStatusWaiting
	}

	prodDays := int(recipe.ProductionTimeHours / 24.0)
	now := uc.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	order := &model.ProductionOrder{
		ID:        uuid.New().String(),
		RecipeID:  recipe.ID,
		ItemID:    recipe.OutputItemID,
		Status:    status,
		ETAFinish: today.AddDate(0, 0, uc.cfg.FinishHandlingDays+prodDays),
		ETAShip:   today.AddDate(0, 0, uc.cfg.ShipHandlingDays+prodDays),
		Notes:     input.Notes,
		CreatedAt: now,
	}

	ops := make([]model.ProductionOperation, 0, len(recipe.Operations))
	for _, op := range recipe.Operations {
		ops = append(ops, model.ProductionOperation{
			ID:                uuid.New().String(),
			ProductionOrderID: order.ID,
			RecipeOperationID: op.ID,
			SequenceOrder:     op.SequenceOrder,
			Name:              op.Name,
			DurationHours:     op.DurationHours,
			Status:            model.OperationStatusPending,
		})
	}

	if err := uc.repo.CreateOrderWithOperations(ctx, order, ops); err != nil {
		return nil, err
	}
	order.Operations = ops

	uc.logger.Info("production order created",
		zap.String("production_order_id", order.ID),
		zap.String("recipe_id", recipe.ID),
		zap.String("status", status),
		zap.Int("shortfalls", len(shortfalls)),
	)

	return &dto.CreateOrderResult{
		Order:      order,
		OutputSKU:  recipe.OutputSKU,
		OutputQty:  recipe.OutputQty,
		Shortfalls: shortfalls,
	}, nil
}

func (uc *productionUseCase) StartOrder(ctx context.Context, id string) (*model.ProductionOrder, error) {
	order, err := uc.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("production order %s", id)
	}
	if order.Status != model.ProductionStatusReady {
		return nil, apperrors.InvalidState("production order %s is not ready (current status: %s)", id, order.Status)
	}

	var currentOperation *string
	if len(order.Operations) > 0 {
		first := order.Operations[0]
		for _, op := range order.Operations[1:] {
			if op.SequenceOrder < first.SequenceOrder {
				first = op
			}
		}
		name := first.Name
		currentOperation = &name
	}

	if err := uc.repo.Start(ctx, id, currentOperation); err != nil {
		return nil, err
	}

	order.Status = model.ProductionStatusInProgress
	order.CurrentOperation = currentOperation
	uc.logger.Info("production order started", zap.String("production_order_id", id))
	return order, nil
}

func (uc *productionUseCase) CompleteOrder(ctx context.Context, input *dto.CompleteOrderInput) (*model.ProductionOrder, error) {
	if input == nil || input.ID == "" {
		return nil, apperrors.Validation("production order id is required")
	}
	if input.QtyProduced <= 0 {
		return nil, apperrors.Validation("qty_produced must be positive, got %v", input.QtyProduced)
	}
	if input.Warehouse == "" || input.Location == "" {
		return nil, apperrors.Validation("warehouse and location are required")
	}

	order, err := uc.repo.GetOrder(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("production order %s", input.ID)
	}
	if order.Status == model.ProductionStatusCompleted {
		return nil, apperrors.InvalidState("production order %s already completed", input.ID)
	}

	now := uc.clock.Now().UTC()
	order.Status = model.ProductionStatusCompleted
	order.CurrentOperation = nil
	// QtyProduced is caller-supplied and deliberately not cross-checked
	// against the recipe's planned output quantity.
	order.QtyProduced = input.QtyProduced
	order.CompletedAt = &now

	stock := &model.StockRecord{
		ID:        uuid.New().String(),
		ItemID:    order.ItemID,
		Warehouse: input.Warehouse,
		Location:  input.Location,
		OnHand:    input.QtyProduced,
		CreatedAt: now,
	}

	if err := uc.repo.CompleteWithStock(ctx, order, stock); err != nil {
		return nil, err
	}

	uc.logger.Info("production order completed",
		zap.String("production_order_id", order.ID),
		zap.Float64("qty_produced", input.QtyProduced),
		zap.String("warehouse", input.Warehouse),
		zap.String("location", input.Location),
	)
	return order, nil
}

func (uc *productionUseCase) GetOrder(ctx context.Context, id string) (*model.ProductionOrder, error) {
	order, err := uc.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("production order %s", id)
	}
	return order, nil
}

func (uc *productionUseCase) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	recipe, err := uc.repo.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, apperrors.NotFound("recipe %s", id)
	}
	return recipe, nil
}

func (uc *productionUseCase) ListRecipes(ctx context.Context, outputItemID string, limit int) ([]model.Recipe, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.repo.ListRecipes(ctx, outputItemID, limit)
}
