package dto

import "github.com/ducktide/factory-service/internal/model"

type CreateOrderInput struct {
	RecipeID string  `json:"recipe_id"`
	Notes    *string `json:"notes"`
}

// IngredientShortfall reports one ingredient that cannot cover a single
// batch at creation time.
type IngredientShortfall struct {
	IngredientSKU  string  `json:"ingredient_sku"`
	IngredientName string  `json:"ingredient_name"`
	QtyNeeded      float64 `json:"qty_needed"`
	QtyAvailable   float64 `json:"qty_available"`
	Shortfall      float64 `json:"shortfall"`
}

type CreateOrderResult struct {
	Order      *model.ProductionOrder `json:"order"`
	OutputSKU  string                 `json:"output_sku"`
	OutputQty  float64                `json:"output_qty"`
	Shortfalls []IngredientShortfall  `json:"ingredient_shortfalls"`
}

type CompleteOrderInput struct {
	ID          string  `json:"id"`
	QtyProduced float64 `json:"qty_produced"`
	Warehouse   string  `json:"warehouse"`
	Location    string  `json:"location"`
}
