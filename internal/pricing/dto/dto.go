package dto

// OrderLine is the pricing input: a quantity of one SKU.
type OrderLine struct {
	SKU string  `json:"sku"`
	Qty float64 `json:"qty"`
}

type LineTotal struct {
	SKU       string  `json:"sku"`
	Qty       float64 `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type DiscountDetail struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type ShippingDetail struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// PriceBreakdown is a derived view over order lines and current catalog
// prices. It is recomputed on demand; any stored copy is a cache, never a
// source of truth.
type PriceBreakdown struct {
	Currency       string           `json:"currency"`
	Subtotal       float64          `json:"subtotal"`
	Discount       float64          `json:"discount"`
	Shipping       float64          `json:"shipping"`
	Total          float64          `json:"total"`
	Lines          []LineTotal      `json:"lines"`
	Discounts      []DiscountDetail `json:"discounts"`
	ShippingDetail ShippingDetail   `json:"shipping_detail"`
}
