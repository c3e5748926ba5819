package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducktide/factory-service/internal/model"
	pricingdto "github.com/ducktide/factory-service/internal/pricing/dto"
	"github.com/ducktide/factory-service/internal/sales/dto"
	"github.com/ducktide/factory-service/pkg/apperrors"
	"github.com/ducktide/factory-service/pkg/clock"
	"github.com/ducktide/factory-service/pkg/logger"
)

type fakeRepo struct {
	orders map[string]*model.SalesOrder
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: map[string]*model.SalesOrder{}}
}

func (f *fakeRepo) CreateOrderWithLines(_ context.Context, order *model.SalesOrder, lines []model.SalesOrderLine) error {
	copied := *order
	copied.Lines = lines
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeRepo) GetOrder(_ context.Context, id string) (*model.SalesOrder, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

type fakeCatalog struct {
	items map[string]*model.Item
}

func (f *fakeCatalog) ResolveItem(_ context.Context, sku string) (*model.Item, error) {
	if item, ok := f.items[sku]; ok {
		return item, nil
	}
	return nil, apperrors.NotFound("item %s", sku)
}

func (f *fakeCatalog) GetItem(_ context.Context, id string) (*model.Item, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, apperrors.NotFound("item id %s", id)
}

func (f *fakeCatalog) ListByType(_ context.Context, _ string) ([]model.Item, error) {
	return nil, nil
}

func (f *fakeCatalog) UnitPrice(_ *model.Item) float64 { return 12.0 }

type fakePricing struct {
	lastLines []pricingdto.OrderLine
}

func (f *fakePricing) PriceLines(_ context.Context, lines []pricingdto.OrderLine) (*pricingdto.PriceBreakdown, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("price lines: %w", apperrors.ErrEmptyOrder)
	}
	f.lastLines = lines
	return &pricingdto.PriceBreakdown{Currency: "EUR", Total: 42.0}, nil
}

var testStart = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeRepo, pricer *fakePricing, items ...*model.Item) *salesUseCase {
	cat := &fakeCatalog{items: map[string]*model.Item{}}
	for _, item := range items {
		cat.items[item.SKU] = item
	}
	uc := NewSalesUseCase(repo, cat, pricer, clock.NewSimulated(testStart), logger.NewNop())
	return uc.(*salesUseCase)
}

func tube() *model.Item {
	return &model.Item{BaseModel: model.BaseModel{ID: "itm-1"}, SKU: "TUBE-BLUE", Name: "Blue tube"}
}

func TestCreateOrder(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, &fakePricing{}, tube())

	order, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerID: "cust-1",
		Lines: []dto.LineInput{
			{SKU: "TUBE-BLUE", Qty: 10},
			{SKU: "TUBE-BLUE", Qty: 5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.SalesOrderStatusDraft, order.Status)
	assert.Equal(t, "cust-1", order.CustomerID)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, order.ID+"-01", order.Lines[0].ID)
	assert.Equal(t, order.ID+"-02", order.Lines[1].ID)
	assert.Equal(t, "itm-1", order.Lines[0].ItemID)
	assert.Contains(t, repo.orders, order.ID)
}

func TestCreateOrderValidation(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakePricing{}, tube())
	ctx := context.Background()

	_, err := uc.CreateOrder(ctx, &dto.CreateOrderInput{CustomerID: "cust-1"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = uc.CreateOrder(ctx, &dto.CreateOrderInput{
		Lines: []dto.LineInput{{SKU: "TUBE-BLUE", Qty: 1}},
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = uc.CreateOrder(ctx, &dto.CreateOrderInput{
		CustomerID: "cust-1",
		Lines:      []dto.LineInput{{SKU: "TUBE-BLUE", Qty: 0}},
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = uc.CreateOrder(ctx, &dto.CreateOrderInput{
		CustomerID: "cust-1",
		Lines:      []dto.LineInput{{SKU: "GHOST", Qty: 1}},
	})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestGetOrderRepricesLines(t *testing.T) {
	repo := newFakeRepo()
	pricer := &fakePricing{}
	uc := newTestUseCase(repo, pricer, tube())
	ctx := context.Background()

	created, err := uc.CreateOrder(ctx, &dto.CreateOrderInput{
		CustomerID: "cust-1",
		Lines:      []dto.LineInput{{SKU: "TUBE-BLUE", Qty: 10}},
	})
	require.NoError(t, err)

	details, err := uc.GetOrder(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, details.Order.ID)
	require.NotNil(t, details.Pricing)
	assert.Equal(t, 42.0, details.Pricing.Total)
	require.Len(t, pricer.lastLines, 1)
	assert.Equal(t, pricingdto.OrderLine{SKU: "TUBE-BLUE", Qty: 10}, pricer.lastLines[0])
}

func TestGetOrderNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakePricing{}, tube())

	_, err := uc.GetOrder(context.Background(), "ghost")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
