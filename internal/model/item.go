package model

// Item types as stored in the catalog.
const (
	ItemTypeFinishedGood = "finished_good"
	ItemTypeMaterial     = "material"
	ItemTypeComponent    = "component"
)

type Item struct {
	BaseModel
	SKU        string   `db:"sku" json:"sku"`
	Name       string   `db:"name" json:"name"`
	Type       string   `db:"type" json:"type"`
	UnitPrice  *float64 `db:"unit_price" json:"unit_price"` // Nullable; nil means "use default price"
	UOM        string   `db:"uom" json:"uom"`
	ReorderQty float64  `db:"reorder_qty" json:"reorder_qty"`
}
