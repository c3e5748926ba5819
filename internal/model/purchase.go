package model

import "time"

const (
	PurchaseStatusOrdered  = "ordered"
	PurchaseStatusReceived = "received"
)

type PurchaseOrder struct {
	ID               string     `db:"id" json:"id"`
	SupplierName     string     `db:"supplier_name" json:"supplier_name"`
	ItemID           string     `db:"item_id" json:"item_id"`
	ItemSKU          string     `db:"item_sku" json:"item_sku"`
	Qty              float64    `db:"qty" json:"qty"`
	Status           string     `db:"status" json:"status"`
	ExpectedDelivery time.Time  `db:"expected_delivery" json:"expected_delivery"`
	OrderedAt        time.Time  `db:"ordered_at" json:"ordered_at"`
	ReceivedAt       *time.Time `db:"received_at" json:"received_at"`
}
