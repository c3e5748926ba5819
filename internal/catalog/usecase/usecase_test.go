package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducktide/factory-service/config"
	"github.com/ducktide/factory-service/internal/model"
	"github.com/ducktide/factory-service/pkg/apperrors"
	"github.com/ducktide/factory-service/pkg/logger"
)

type fakeRepo struct {
	items []model.Item
}

func (f *fakeRepo) FindBySKU(_ context.Context, sku string) (*model.Item, error) {
	for i := range f.items {
		if f.items[i].SKU == sku {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*model.Item, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListByType(_ context.Context, itemType string) ([]model.Item, error) {
	var out []model.Item
	for _, it := range f.items {
		if it.Type == itemType {
			out = append(out, it)
		}
	}
	return out, nil
}

func floatPtr(v float64) *float64 { return &v }

func newTestUseCase(items ...model.Item) *catalogUseCase {
	uc := NewCatalogUseCase(
		&fakeRepo{items: items},
		config.PricingConfig{DefaultUnitPrice: 12.0},
		logger.NewNop(),
	)
	return uc.(*catalogUseCase)
}

func TestResolveItem(t *testing.T) {
	uc := newTestUseCase(model.Item{
		BaseModel: model.BaseModel{ID: "itm-1"},
		SKU:       "TUBE-BLUE",
		Name:      "Blue PVC tube",
		Type:      model.ItemTypeFinishedGood,
	})

	item, err := uc.ResolveItem(context.Background(), "TUBE-BLUE")
	require.NoError(t, err)
	assert.Equal(t, "itm-1", item.ID)

	_, err = uc.ResolveItem(context.Background(), "NOPE")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	_, err = uc.ResolveItem(context.Background(), "")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestUnitPriceFallback(t *testing.T) {
	uc := newTestUseCase()

	priced := &model.Item{SKU: "A", UnitPrice: floatPtr(9.5)}
	unpriced := &model.Item{SKU: "B"}

	assert.Equal(t, 9.5, uc.UnitPrice(priced))
	assert.Equal(t, 12.0, uc.UnitPrice(unpriced))
	assert.Equal(t, 12.0, uc.UnitPrice(nil))
}
