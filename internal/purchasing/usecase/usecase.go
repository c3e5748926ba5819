package usecase

import (
	"context"
	"strings"

	"github.com/ducktide/factory-service/internal/catalog"
	"github.com/ducktide/factory-service/internal/model"
	"github.com/ducktide/factory-service/internal/purchasing"
	"github.com/ducktide/factory-service/internal/purchasing/dto"
	"github.com/ducktide/factory-service/pkg/apperrors"
	"github.com/ducktide/factory-service/pkg/clock"
	"github.com/ducktide/factory-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultDeliveryDays = 7

type purchasingUseCase struct {
	repo    purchasing.Repository
	catalog catalog.UseCase
	clock   clock.Clock
	logger  logger.ZapLogger
}

func NewPurchasingUseCase(
	repo purchasing.Repository,
	cat catalog.UseCase,
	clk clock.Clock,
	log logger.ZapLogger,
) purchasing.UseCase {
	return &purchasingUseCase{
		repo:    repo,
		catalog: cat,
		clock:   clk,
		logger:  log,
	}
}

func (uc *purchasingUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.PurchaseOrder, error) {
	if input == nil || input.SKU == "" {
		return nil, apperrors.Validation("sku is required")
	}
	if input.Qty <= 0 {
		return nil, apperrors.Validation("qty must be positive, got %v", input.Qty)
	}

	item, err := uc.catalog.ResolveItem(ctx, input.SKU)
	if err != nil {
		return nil, err
	}

	supplier := input.SupplierName
	if supplier == "" {
		supplier = inferSupplier(item.Name)
	}

	now := uc.clock.Now().UTC()
	po := &model.PurchaseOrder{
		ID:               uuid.New().String(),
		SupplierName:     supplier,
		ItemID:           item.ID,
		ItemSKU:          item.SKU,
		Qty:              input.Qty,
		Status:           model.PurchaseStatusOrdered,
		ExpectedDelivery: now.AddDate(0, 0, defaultDeliveryDays),
		OrderedAt:        now,
	}

	if err := uc.repo.Create(ctx, po); err != nil {
		return nil, err
	}

	uc.logger.Info("purchase order created",
		zap.String("purchase_order_id", po.ID),
		zap.String("item_sku", po.ItemSKU),
		zap.Float64("qty", po.Qty),
		zap.String("supplier", supplier),
	)
	return po, nil
}

func (uc *purchasingUseCase) Receive(ctx context.Context, input *dto.ReceiveInput) (*model.PurchaseOrder, error) {
	if input == nil || input.ID == "" {
		return nil, apperrors.Validation("purchase order id is required")
	}
	if input.Warehouse == "" || input.Location == "" {
		return nil, apperrors.Validation("warehouse and location are required")
	}

	po, err := uc.repo.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, apperrors.NotFound("purchase order %s", input.ID)
	}
	if po.Status == model.PurchaseStatusReceived {
		return nil, apperrors.InvalidState("purchase order %s already received", input.ID)
	}

	now := uc.clock.Now().UTC()
	po.Status = model.PurchaseStatusReceived
	po.ReceivedAt = &now

	stock := &model.StockRecord{
		ID:        uuid.New().String(),
		ItemID:    po.ItemID,
		Warehouse: input.Warehouse,
		Location:  input.Location,
		OnHand:    po.Qty,
		CreatedAt: now,
	}

	if err := uc.repo.ReceiveWithStock(ctx, po, stock); err != nil {
		return nil, err
	}

	uc.logger.Info("purchase order received",
		zap.String("purchase_order_id", po.ID),
		zap.Float64("qty_received", po.Qty),
	)
	return po, nil
}

func (uc *purchasingUseCase) RestockMaterials(ctx context.Context) (*dto.RestockResult, error) {
	candidates, err := uc.repo.ListBelowReorder(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.RestockResult{ItemsChecked: len(candidates)}
	for _, cand := range candidates {
		po, err := uc.CreateOrder(ctx, &dto.CreateOrderInput{
			SKU: cand.Item.SKU,
			Qty: cand.Item.ReorderQty - cand.CurrentStock,
		})
		if err != nil {
			return nil, err
		}
		result.PurchaseOrders = append(result.PurchaseOrders, *po)
	}
	return result, nil
}

// inferSupplier mirrors the demo's name-keyword routing.
func inferSupplier(itemName string) string {
	name := strings.ToLower(itemName)
	switch {
	case strings.Contains(name, "pvc") || strings.Contains(name, "plastic"):
		return "PlasticCorp"
	case strings.Contains(name, "dye") || strings.Contains(name, "color"):
		return "ColorMaster"
	case strings.Contains(name, "box") || strings.Contains(name, "packaging"):
		return "PackagingPlus"
	default:
		return "PlasticCorp"
	}
}
