package model

import "time"

// Production order statuses. Transitions are strictly forward:
// waiting -> ready -> in_progress -> completed. There is no cancellation
// or rework path.
const (
	ProductionStatusWaiting    = "waiting"
	ProductionStatusReady      = "ready"
	ProductionStatusInProgress = "in_progress"
	ProductionStatusCompleted  = "completed"
)

const OperationStatusPending = "pending"

type ProductionOrder struct {
	ID               string     `db:"id" json:"id"`
	RecipeID         string     `db:"recipe_id" json:"recipe_id"`
	ItemID           string     `db:"item_id" json:"item_id"`
	Status           string     `db:"status" json:"status"`
	CurrentOperation *string    `db:"current_operation" json:"current_operation"` // Nullable
	QtyProduced      float64    `db:"qty_produced" json:"qty_produced"`
	ETAFinish        time.Time  `db:"eta_finish" json:"eta_finish"`
	ETAShip          time.Time  `db:"eta_ship" json:"eta_ship"`
	Notes            *string    `db:"notes" json:"notes"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	CompletedAt      *time.Time `db:"completed_at" json:"completed_at"`

	Operations []ProductionOperation `db:"-" json:"operations"`
}

// ProductionOperation is one tracked step of a production order, copied
// from the recipe's operations at creation time.
type ProductionOperation struct {
	ID                string  `db:"id" json:"id"`
	ProductionOrderID string  `db:"production_order_id" json:"production_order_id"`
	RecipeOperationID string  `db:"recipe_operation_id" json:"recipe_operation_id"`
	SequenceOrder     int     `db:"sequence_order" json:"sequence_order"`
	Name              string  `db:"operation_name" json:"operation_name"`
	DurationHours     float64 `db:"duration_hours" json:"duration_hours"`
	Status            string  `db:"status" json:"status"`
}
