package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducktide/factory-service/internal/model"
)

func TestFindSubstitutionsPriceBand(t *testing.T) {
	// Base price 12.00 with 15% slack: the band is [10.20, 13.80]
	// inclusive.
	requested := item("itm-1", "TUBE-BLUE", 12)
	uc := newTestUseCase(
		[]model.Item{
			requested,
			item("itm-2", "TUBE-CHEAP", 10.19),
			item("itm-3", "TUBE-LOW", 10.20),
			item("itm-4", "TUBE-HIGH", 13.80),
			item("itm-5", "TUBE-PRICEY", 13.81),
		},
		map[string]float64{"itm-2": 10, "itm-3": 10, "itm-4": 10, "itm-5": 10},
	)

	candidates, err := uc.findSubstitutions(context.Background(), &requested, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "TUBE-HIGH", candidates[0].Item.SKU)
	assert.Equal(t, "TUBE-LOW", candidates[1].Item.SKU)
}

func TestFindSubstitutionsExcludesSelfAndOtherTypes(t *testing.T) {
	requested := item("itm-1", "TUBE-BLUE", 12)
	granulate := model.Item{
		BaseModel: model.BaseModel{ID: "itm-2"},
		SKU:       "PVC-GRANULATE",
		Type:      model.ItemTypeMaterial,
		UnitPrice: floatPtr(12),
	}
	uc := newTestUseCase(
		[]model.Item{requested, granulate},
		map[string]float64{"itm-1": 100, "itm-2": 100},
	)

	candidates, err := uc.findSubstitutions(context.Background(), &requested, nil)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFindSubstitutionsSkipsZeroStock(t *testing.T) {
	requested := item("itm-1", "TUBE-BLUE", 12)
	uc := newTestUseCase(
		[]model.Item{requested, item("itm-2", "TUBE-GREEN", 12)},
		map[string]float64{"itm-2": 0},
	)

	candidates, err := uc.findSubstitutions(context.Background(), &requested, nil)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFindSubstitutionsAllowList(t *testing.T) {
	requested := item("itm-1", "TUBE-BLUE", 12)
	uc := newTestUseCase(
		[]model.Item{
			requested,
			item("itm-2", "TUBE-GREEN", 12),
			item("itm-3", "TUBE-RED", 12),
		},
		map[string]float64{"itm-2": 10, "itm-3": 10},
	)
	ctx := context.Background()

	restricted, err := uc.findSubstitutions(ctx, &requested, []string{"TUBE-RED"})
	require.NoError(t, err)
	require.Len(t, restricted, 1)
	assert.Equal(t, "TUBE-RED", restricted[0].Item.SKU)

	// An empty allow-list means no restriction.
	open, err := uc.findSubstitutions(ctx, &requested, nil)
	require.NoError(t, err)
	assert.Len(t, open, 2)
}

func TestFindSubstitutionsSortedBySKU(t *testing.T) {
	requested := item("itm-1", "TUBE-BLUE", 12)
	uc := newTestUseCase(
		[]model.Item{
			requested,
			item("itm-4", "TUBE-ZINC", 12),
			item("itm-2", "TUBE-AMBER", 12),
			item("itm-3", "TUBE-GREEN", 12),
		},
		map[string]float64{"itm-2": 5, "itm-3": 5, "itm-4": 5},
	)

	candidates, err := uc.findSubstitutions(context.Background(), &requested, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "TUBE-AMBER", candidates[0].Item.SKU)
	assert.Equal(t, "TUBE-GREEN", candidates[1].Item.SKU)
	assert.Equal(t, "TUBE-ZINC", candidates[2].Item.SKU)
}
