package dto

import "github.com/ducktide/factory-service/internal/model"

type CreateOrderInput struct {
	SKU          string  `json:"sku"`
	Qty          float64 `json:"qty"`
	SupplierName string  `json:"supplier_name"`
}

type ReceiveInput struct {
	ID        string `json:"id"`
	Warehouse string `json:"warehouse"`
	Location  string `json:"location"`
}

// ReorderCandidate is a material or component whose summed stock sits
// below its reorder threshold.
type ReorderCandidate struct {
	Item         model.Item `json:"item"`
	CurrentStock float64    `json:"current_stock"`
}

type RestockResult struct {
	ItemsChecked   int                   `json:"items_checked"`
	PurchaseOrders []model.PurchaseOrder `json:"purchase_orders"`
}
