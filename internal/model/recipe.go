package model

// Recipe is static reference data describing how one batch of an output
// item is manufactured. The core never mutates recipes.
type Recipe struct {
	ID                  string  `db:"id" json:"id"`
	OutputItemID        string  `db:"output_item_id" json:"output_item_id"`
	OutputSKU           string  `db:"output_sku" json:"output_sku"`
	OutputName          string  `db:"output_name" json:"output_name"`
	OutputQty           float64 `db:"output_qty" json:"output_qty"`
	ProductionTimeHours float64 `db:"production_time_hours" json:"production_time_hours"`

	Ingredients []RecipeIngredient `db:"-" json:"ingredients"`
	Operations  []RecipeOperation  `db:"-" json:"operations"`
}

type RecipeIngredient struct {
	ID            string  `db:"id" json:"id"`
	RecipeID      string  `db:"recipe_id" json:"recipe_id"`
	InputItemID   string  `db:"input_item_id" json:"input_item_id"`
	IngredientSKU string  `db:"ingredient_sku" json:"ingredient_sku"`
	Name          string  `db:"ingredient_name" json:"ingredient_name"`
	Qty           float64 `db:"input_qty" json:"input_qty"`
	Unit          string  `db:"unit" json:"unit"`
	SequenceOrder int     `db:"sequence_order" json:"sequence_order"`
}

type RecipeOperation struct {
	ID            string  `db:"id" json:"id"`
	RecipeID      string  `db:"recipe_id" json:"recipe_id"`
	Name          string  `db:"operation_name" json:"operation_name"`
	DurationHours float64 `db:"duration_hours" json:"duration_hours"`
	SequenceOrder int     `db:"sequence_order" json:"sequence_order"`
}
