package usecase

import (
	"context"
	"fmt"

	"github.com/ducktide/factory-service/internal/catalog"
	"github.com/ducktide/factory-service/internal/model"
	"github.com/ducktide/factory-service/internal/pricing"
	pricingdto "github.com/ducktide/factory-service/internal/pricing/dto"
	"github.com/ducktide/factory-service/internal/sales"
	"github.com/ducktide/factory-service/internal/sales/dto"
	"github.com/ducktide/factory-service/pkg/apperrors"
	"github.com/ducktide/factory-service/pkg/clock"
	"github.com/ducktide/factory-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type salesUseCase struct {
	repo    sales.Repository
	catalog catalog.UseCase
	pricing pricing.UseCase
	clock   clock.Clock
	logger  logger.ZapLogger
}

func NewSalesUseCase(
	repo sales.Repository,
	cat catalog.UseCase,
	pricer pricing.UseCase,
	clk clock.Clock,
	log logger.ZapLogger,
) sales.UseCase {
	return &salesUseCase{
		repo:    repo,
		catalog: cat,
		pricing: pricer,
		clock:   clk,
		logger:  log,
	}
}

func (uc *salesUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.SalesOrder, error) {
	if input == nil || len(input.Lines) == 0 {
		return nil, apperrors.Validation("lines required")
	}
	if input.CustomerID == "" {
		return nil, apperrors.Validation("customer_id is required")
	}

	order := &model.SalesOrder{
		ID:                    uuid.New().String(),
		CustomerID:            input.CustomerID,
		RequestedDeliveryDate: input.RequestedDeliveryDate,
		Status:                model.SalesOrderStatusDraft,
		Note:                  input.Note,
		CreatedAt:             uc.clock.Now().UTC(),
	}

	lines := make([]model.SalesOrderLine, 0, len(input.Lines))
	for idx, line := range input.Lines {
		if line.Qty <= 0 {
			return nil, apperrors.Validation("line qty must be positive, got %v for %s", line.Qty, line.SKU)
		}
		item, err := uc.catalog.ResolveItem(ctx, line.SKU)
		if err != nil {
			return nil, err
		}
		lines = append(lines, model.SalesOrderLine{
			ID:           fmt.Sprintf("%s-%02d", order.ID, idx+1),
			SalesOrderID: order.ID,
			ItemID:       item.ID,
			SKU:          item.SKU,
			Qty:          line.Qty,
		})
	}

	if err := uc.repo.CreateOrderWithLines(ctx, order, lines); err != nil {
		return nil, err
	}
	order.Lines = lines

	uc.logger.Info("sales order created",
		zap.String("sales_order_id", order.ID),
		zap.String("customer_id", order.CustomerID),
		zap.Int("lines", len(lines)),
	)
	return order, nil
}

func (uc *salesUseCase) GetOrder(ctx context.Context, id string) (*dto.OrderDetails, error) {
	order, err := uc.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("sales order %s", id)
	}

	priceLines := make([]pricingdto.OrderLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		priceLines = append(priceLines, pricingdto.OrderLine{SKU: line.SKU, Qty: line.Qty})
	}

	breakdown, err := uc.pricing.PriceLines(ctx, priceLines)
	if err != nil {
		return nil, err
	}

	return &dto.OrderDetails{Order: order, Pricing: breakdown}, nil
}
