package dto

import "github.com/ducktide/factory-service/internal/model"

// StockSummary aggregates an item's on-hand quantity across locations.
type StockSummary struct {
	ItemID         string              `json:"item_id"`
	OnHandTotal    float64             `json:"on_hand_total"`
	AvailableTotal float64             `json:"available_total"`
	ByLocation     []model.StockRecord `json:"by_location"`
}

// AvailabilityCheck reports whether an item can cover a required quantity.
type AvailabilityCheck struct {
	ItemSKU        string              `json:"item_sku"`
	ItemName       string              `json:"item_name"`
	QtyRequired    float64             `json:"qty_required"`
	QtyAvailable   float64             `json:"qty_available"`
	IsAvailable    bool                `json:"is_available"`
	Shortfall      float64             `json:"shortfall"`
	StockLocations []model.StockRecord `json:"stock_locations"`
}
