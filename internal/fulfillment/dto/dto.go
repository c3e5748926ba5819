package dto

import (
	"time"

	"github.com/ducktide/factory-service/internal/model"
)

// Allocation line sources.
const (
	SourceStock      = "stock"
	SourceProduction = "production"
)

type PlanInput struct {
	SKU         string     `json:"sku"`
	Qty         float64    `json:"qty"`
	NeedBy      *time.Time `json:"need_by"`
	AllowedSubs []string   `json:"allowed_subs"`
}

// AllocationLine is one component of a fulfillment option. LeadDays, when
// set, overrides the default production lead for this line.
type AllocationLine struct {
	SKU      string  `json:"sku"`
	Qty      float64 `json:"qty"`
	Source   string  `json:"source"`
	LeadDays *int    `json:"lead_days,omitempty"`
}

// FulfillmentOption is one complete, datable way to satisfy a request.
// Options are ephemeral: computed per call, never stored, numbered in
// emission order.
type FulfillmentOption struct {
	OptionID    string           `json:"option_id"`
	Summary     string           `json:"summary"`
	Lines       []AllocationLine `json:"lines"`
	CanArriveBy time.Time        `json:"can_arrive_by"`
	Notes       string           `json:"notes"`
}

// SubstitutionCandidate is a same-type item within the price band that has
// stock on hand.
type SubstitutionCandidate struct {
	Item      model.Item `json:"item"`
	UnitPrice float64    `json:"unit_price"`
	Available float64    `json:"available"`
}
