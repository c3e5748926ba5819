package dto

import (
	"time"

	"github.com/ducktide/factory-service/internal/model"
	pricingdto "github.com/ducktide/factory-service/internal/pricing/dto"
)

type LineInput struct {
	SKU string  `json:"sku"`
	Qty float64 `json:"qty"`
}

type CreateOrderInput struct {
	CustomerID            string      `json:"customer_id"`
	RequestedDeliveryDate *time.Time  `json:"requested_delivery_date"`
	Note                  *string     `json:"note"`
	Lines                 []LineInput `json:"lines"`
}

// OrderDetails pairs a stored order with a freshly computed price
// breakdown.
type OrderDetails struct {
	Order   *model.SalesOrder          `json:"order"`
	Pricing *pricingdto.PriceBreakdown `json:"pricing"`
}
