package fulfillment

import (
	"context"

	"github.com/ducktide/factory-service/internal/fulfillment/dto"
)

type UseCase interface {
	// Plan enumerates fulfillment options for a requested SKU and quantity
	// in a fixed generation order: requested-SKU baseline first, then one
	// or two options per substitution candidate. It does not rank beyond
	// that order and it reserves nothing.
	Plan(ctx context.Context, input *dto.PlanInput) ([]dto.FulfillmentOption, error)
}
