package model

import "time"

// StockRecord is one on-hand bucket for an item at a warehouse location.
// An item's availability is the sum of its records; OnHand never goes
// negative. Records are created by production completion and purchase
// receipt only.
type StockRecord struct {
	ID        string    `db:"id" json:"id"`
	ItemID    string    `db:"item_id" json:"item_id"`
	Warehouse string    `db:"warehouse" json:"warehouse"`
	Location  string    `db:"location" json:"location"`
	OnHand    float64   `db:"on_hand" json:"on_hand"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
