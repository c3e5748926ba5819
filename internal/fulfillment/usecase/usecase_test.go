package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducktide/factory-service/config"
	"github.com/ducktide/factory-service/internal/fulfillment/dto"
	invdto "github.com/ducktide/factory-service/internal/inventory/dto"
	"github.com/ducktide/factory-service/internal/model"
	"github.com/ducktide/factory-service/pkg/apperrors"
	"github.com/ducktide/factory-service/pkg/clock"
	"github.com/ducktide/factory-service/pkg/logger"
)

type fakeCatalog struct {
	items []model.Item
}

func (f *fakeCatalog) ResolveItem(_ context.Context, sku string) (*model.Item, error) {
	for i := range f.items {
		if f.items[i].SKU == sku {
			return &f.items[i], nil
		}
	}
	return nil, apperrors.NotFound("item %s", sku)
}

func (f *fakeCatalog) GetItem(_ context.Context, id string) (*model.Item, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, apperrors.NotFound("item id %s", id)
}

func (f *fakeCatalog) ListByType(_ context.Context, itemType string) ([]model.Item, error) {
	var out []model.Item
	for _, it := range f.items {
		if it.Type == itemType {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalog) UnitPrice(item *model.Item) float64 {
	if item != nil && item.UnitPrice != nil {
		return *item.UnitPrice
	}
	return 12.0
}

type fakeInventory struct {
	available map[string]float64 // item ID -> total
}

func (f *fakeInventory) StockSummary(_ context.Context, itemID string) (*invdto.StockSummary, error) {
	total := f.available[itemID]
	return &invdto.StockSummary{ItemID: itemID, OnHandTotal: total, AvailableTotal: total}, nil
}

func (f *fakeInventory) CheckAvailability(_ context.Context, sku string, qty float64) (*invdto.AvailabilityCheck, error) {
	total := f.available[sku]
	return &invdto.AvailabilityCheck{ItemSKU: sku, QtyRequired: qty, QtyAvailable: total, IsAvailable: total >= qty}, nil
}

func testConfig() config.FulfillmentConfig {
	return config.FulfillmentConfig{
		TransitDays:            2,
		ProductionLeadDefault:  30,
		ProductionLeadByType:   map[string]int{"finished_good": 30},
		SubstitutionPriceSlack: 0.15,
	}
}

var planStart = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func newTestUseCase(items []model.Item, available map[string]float64) *fulfillmentUseCase {
	uc := NewFulfillmentUseCase(
		&fakeCatalog{items: items},
		&fakeInventory{available: available},
		testConfig(),
		clock.NewSimulated(planStart),
		logger.NewNop(),
	)
	return uc.(*fulfillmentUseCase)
}

func floatPtr(v float64) *float64 { return &v }

func item(id, sku string, price float64) model.Item {
	return model.Item{
		BaseModel: model.BaseModel{ID: id},
		SKU:       sku,
		Name:      sku,
		Type:      model.ItemTypeFinishedGood,
		UnitPrice: floatPtr(price),
	}
}

func day(offset int) time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestPlanFullStock(t *testing.T) {
	uc := newTestUseCase(
		[]model.Item{item("itm-1", "TUBE-BLUE", 12)},
		map[string]float64{"itm-1": 25},
	)

	options, err := uc.Plan(context.Background(), &dto.PlanInput{SKU: "TUBE-BLUE", Qty: 10})
	require.NoError(t, err)
	require.Len(t, options, 1)

	opt := options[0]
	assert.Equal(t, "OPT-1", opt.OptionID)
	require.Len(t, opt.Lines, 1)
	assert.Equal(t, dto.SourceStock, opt.Lines[0].Source)
	assert.Equal(t, 10.0, opt.Lines[0].Qty)
	assert.Equal(t, day(2), opt.CanArriveBy)
}

func TestPlanPartialStock(t *testing.T) {
	uc := newTestUseCase(
		[]model.Item{item("itm-1", "TUBE-BLUE", 12)},
		map[string]float64{"itm-1": 4},
	)

	options, err := uc.Plan(context.Background(), &dto.PlanInput{SKU: "TUBE-BLUE", Qty: 10})
	require.NoError(t, err)
	require.Len(t, options, 1)

	opt := options[0]
	require.Len(t, opt.Lines, 2)
	assert.Equal(t, dto.SourceStock, opt.Lines[0].Source)
	assert.Equal(t, 4.0, opt.Lines[0].Qty)
	assert.Equal(t, dto.SourceProduction, opt.Lines[1].Source)
	assert.Equal(t, 6.0, opt.Lines[1].Qty)

	// The production line dominates: 30 days lead + 2 transit.
	assert.Equal(t, day(32), opt.CanArriveBy)
}

func TestPlanNoStockWithSubstitute(t *testing.T) {
	uc := newTestUseCase(
		[]model.Item{
			item("itm-1", "TUBE-BLUE", 12),
			item("itm-2", "TUBE-GREEN", 12.5),
		},
		map[string]float64{"itm-1": 0, "itm-2": 50},
	)

	options, err := uc.Plan(context.Background(), &dto.PlanInput{SKU: "TUBE-BLUE", Qty: 10})
	require.NoError(t, err)
	require.Len(t, options, 2)

	// Baseline first: all production for the requested SKU.
	assert.Equal(t, "OPT-1", options[0].OptionID)
	require.Len(t, options[0].Lines, 1)
	assert.Equal(t, dto.SourceProduction, options[0].Lines[0].Source)
	assert.Equal(t, "TUBE-BLUE", options[0].Lines[0].SKU)
	assert.Equal(t, day(32), options[0].CanArriveBy)

	// Then the substitute, entirely from stock.
	assert.Equal(t, "OPT-2", options[1].OptionID)
	require.Len(t, options[1].Lines, 1)
	assert.Equal(t, dto.SourceStock, options[1].Lines[0].Source)
	assert.Equal(t, "TUBE-GREEN", options[1].Lines[0].SKU)
	assert.Equal(t, day(2), options[1].CanArriveBy)
}

func TestPlanMixOption(t *testing.T) {
	uc := newTestUseCase(
		[]model.Item{
			item("itm-1", "TUBE-BLUE", 12),
			item("itm-2", "TUBE-GREEN", 12),
		},
		map[string]float64{"itm-1": 4, "itm-2": 50},
	)

	options, err := uc.Plan(context.Background(), &dto.PlanInput{SKU: "TUBE-BLUE", Qty: 10})
	require.NoError(t, err)
	require.Len(t, options, 3)

	// OPT-1 partial stock + production, OPT-2 stock mix, OPT-3 substitute
	// only.
	mix := options[1]
	require.Len(t, mix.Lines, 2)
	assert.Equal(t, "TUBE-BLUE", mix.Lines[0].SKU)
	assert.Equal(t, 4.0, mix.Lines[0].Qty)
	assert.Equal(t, "TUBE-GREEN", mix.Lines[1].SKU)
	assert.Equal(t, 6.0, mix.Lines[1].Qty)
	assert.Equal(t, dto.SourceStock, mix.Lines[1].Source)
	assert.Equal(t, day(2), mix.CanArriveBy)

	sub := options[2]
	require.Len(t, sub.Lines, 1)
	assert.Equal(t, "TUBE-GREEN", sub.Lines[0].SKU)
	assert.Equal(t, 10.0, sub.Lines[0].Qty)
}

func TestPlanSubstitutePartialStock(t *testing.T) {
	uc := newTestUseCase(
		[]model.Item{
			item("itm-1", "TUBE-BLUE", 12),
			item("itm-2", "TUBE-GREEN", 12),
		},
		map[string]float64{"itm-1": 0, "itm-2": 3},
	)

	options, err := uc.Plan(context.Background(), &dto.PlanInput{SKU: "TUBE-BLUE", Qty: 10})
	require.NoError(t, err)
	require.Len(t, options, 2)

	sub := options[1]
	require.Len(t, sub.Lines, 2)
	assert.Equal(t, 3.0, sub.Lines[0].Qty)
	assert.Equal(t, dto.SourceStock, sub.Lines[0].Source)
	assert.Equal(t, 7.0, sub.Lines[1].Qty)
	assert.Equal(t, dto.SourceProduction, sub.Lines[1].Source)
	require.NotNil(t, sub.Lines[1].LeadDays)
	assert.Equal(t, 30, *sub.Lines[1].LeadDays)
	assert.Equal(t, day(32), sub.CanArriveBy)
}

func TestPlanOptionIDsStable(t *testing.T) {
	uc := newTestUseCase(
		[]model.Item{
			item("itm-1", "TUBE-BLUE", 12),
			item("itm-2", "TUBE-GREEN", 12),
			item("itm-3", "TUBE-RED", 12),
		},
		map[string]float64{"itm-1": 0, "itm-2": 50, "itm-3": 50},
	)
	ctx := context.Background()
	input := &dto.PlanInput{SKU: "TUBE-BLUE", Qty: 10}

	first, err := uc.Plan(ctx, input)
	require.NoError(t, err)
	second, err := uc.Plan(ctx, input)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].OptionID, second[i].OptionID)
		assert.Equal(t, first[i].Lines, second[i].Lines)
	}
	// Substitutes enumerate in ascending SKU order.
	assert.Equal(t, "TUBE-GREEN", first[1].Lines[0].SKU)
	assert.Equal(t, "TUBE-RED", first[2].Lines[0].SKU)
}

func TestPlanInputValidation(t *testing.T) {
	uc := newTestUseCase(
		[]model.Item{item("itm-1", "TUBE-BLUE", 12)},
		map[string]float64{"itm-1": 5},
	)
	ctx := context.Background()

	cases := []dto.PlanInput{
		{SKU: "", Qty: 1},
		{SKU: "TUBE-BLUE", Qty: 0},
		{SKU: "TUBE-BLUE", Qty: -3},
		{SKU: "TUBE-BLUE", Qty: 2.5},
	}
	for _, input := range cases {
		_, err := uc.Plan(ctx, &input)
		assert.True(t, errors.Is(err, apperrors.ErrValidation), "input %+v", input)
	}

	_, err := uc.Plan(ctx, &dto.PlanInput{SKU: "GHOST", Qty: 1})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
