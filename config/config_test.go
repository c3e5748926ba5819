package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductionLeadDays(t *testing.T) {
	cfg := FulfillmentConfig{
		ProductionLeadDefault: 30,
		ProductionLeadByType:  map[string]int{"finished_good": 14},
	}

	assert.Equal(t, 14, cfg.ProductionLeadDays("finished_good"))
	assert.Equal(t, 30, cfg.ProductionLeadDays("component"))
}

func TestGetEnvIntMap(t *testing.T) {
	t.Setenv("LEAD_MAP", "finished_good=30, component=10")
	got := getEnvIntMap("LEAD_MAP", nil)
	assert.Equal(t, map[string]int{"finished_good": 30, "component": 10}, got)

	fallback := map[string]int{"finished_good": 30}
	assert.Equal(t, fallback, getEnvIntMap("LEAD_MAP_UNSET", fallback))

	t.Setenv("LEAD_MAP_BAD", "garbage")
	assert.Equal(t, fallback, getEnvIntMap("LEAD_MAP_BAD", fallback))
}

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "EUR", cfg.Pricing.Currency)
	assert.Equal(t, 12.0, cfg.Pricing.DefaultUnitPrice)
	assert.Equal(t, 24.0, cfg.Pricing.VolumeQtyThreshold)
	assert.Equal(t, 0.05, cfg.Pricing.VolumeDiscountPct)
	assert.Equal(t, 300.0, cfg.Pricing.FreeShippingThreshold)
	assert.Equal(t, 20.0, cfg.Pricing.FlatShippingFee)

	assert.Equal(t, 2, cfg.Fulfillment.TransitDays)
	assert.Equal(t, 30, cfg.Fulfillment.ProductionLeadDefault)
	assert.Equal(t, 0.15, cfg.Fulfillment.SubstitutionPriceSlack)

	assert.Equal(t, 1, cfg.Production.FinishHandlingDays)
	assert.Equal(t, 2, cfg.Production.ShipHandlingDays)
}
