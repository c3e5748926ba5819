package model

import "time"

const SalesOrderStatusDraft = "draft"

type SalesOrder struct {
	ID                    string     `db:"id" json:"id"`
	CustomerID            string     `db:"customer_id" json:"customer_id"`
	RequestedDeliveryDate *time.Time `db:"requested_delivery_date" json:"requested_delivery_date"`
	Status                string     `db:"status" json:"status"`
	Note                  *string    `db:"note" json:"note"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`

	Lines []SalesOrderLine `db:"-" json:"lines"`
}

type SalesOrderLine struct {
	ID           string  `db:"id" json:"id"`
	SalesOrderID string  `db:"sales_order_id" json:"sales_order_id"`
	ItemID       string  `db:"item_id" json:"item_id"`
	SKU          string  `db:"sku" json:"sku"`
	Qty          float64 `db:"qty" json:"qty"`
}
