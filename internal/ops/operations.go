package ops

import (
	"context"
	"time"

	"github.com/ducktide/factory-service/internal/catalog"
	"github.com/ducktide/factory-service/internal/fulfillment"
	fulfillmentdto "github.com/ducktide/factory-service/internal/fulfillment/dto"
	"github.com/ducktide/factory-service/internal/inventory"
	"github.com/ducktide/factory-service/internal/pricing"
	pricingdto "github.com/ducktide/factory-service/internal/pricing/dto"
	"github.com/ducktide/factory-service/internal/production"
	productiondto "github.com/ducktide/factory-service/internal/production/dto"
	"github.com/ducktide/factory-service/internal/purchasing"
	purchasingdto "github.com/ducktide/factory-service/internal/purchasing/dto"
	"github.com/ducktide/factory-service/internal/sales"
	salesdto "github.com/ducktide/factory-service/internal/sales/dto"
	"github.com/ducktide/factory-service/pkg/clock"
)

// Deps are the usecases the registry exposes. SimClock is optional; the
// time operations are only registered when the process runs on a
// simulated clock.
type Deps struct {
	Catalog     catalog.UseCase
	Inventory   inventory.UseCase
	Fulfillment fulfillment.UseCase
	Production  production.UseCase
	Pricing     pricing.UseCase
	Sales       sales.UseCase
	Purchasing  purchasing.UseCase
	Clock       clock.Clock
	SimClock    *clock.Simulated
}

type skuInput struct {
	SKU string `json:"sku"`
}

type idInput struct {
	ID string `json:"id"`
}

type checkAvailabilityInput struct {
	SKU string  `json:"sku"`
	Qty float64 `json:"qty"`
}

type listRecipesInput struct {
	OutputItemID string `json:"output_item_id"`
	Limit        int    `json:"limit"`
}

type priceLinesInput struct {
	Lines []pricingdto.OrderLine `json:"lines"`
}

type advanceTimeInput struct {
	Hours float64 `json:"hours"`
	Days  int     `json:"days"`
}

// Build assembles the full operation table.
func Build(deps Deps) *Registry {
	r := NewRegistry()

	r.Register("resolve_item", typed(func(ctx context.Context, in skuInput) (interface{}, error) {
		return deps.Catalog.ResolveItem(ctx, in.SKU)
	}))
	r.Register("get_stock_summary", typed(func(ctx context.Context, in idInput) (interface{}, error) {
		return deps.Inventory.StockSummary(ctx, in.ID)
	}))
	r.Register("check_availability", typed(func(ctx context.Context, in checkAvailabilityInput) (interface{}, error) {
		return deps.Inventory.CheckAvailability(ctx, in.SKU, in.Qty)
	}))
	r.Register("plan_fulfillment", typed(func(ctx context.Context, in fulfillmentdto.PlanInput) (interface{}, error) {
		return deps.Fulfillment.Plan(ctx, &in)
	}))
	r.Register("create_production_order", typed(func(ctx context.Context, in productiondto.CreateOrderInput) (interface{}, error) {
		return deps.Production.CreateOrder(ctx, &in)
	}))
	r.Register("start_production_order", typed(func(ctx context.Context, in idInput) (interface{}, error) {
		return deps.Production.StartOrder(ctx, in.ID)
	}))
	r.Register("complete_production_order", typed(func(ctx context.Context, in productiondto.CompleteOrderInput) (interface{}, error) {
		return deps.Production.CompleteOrder(ctx, &in)
	}))
	r.Register("get_production_order", typed(func(ctx context.Context, in idInput) (interface{}, error) {
		return deps.Production.GetOrder(ctx, in.ID)
	}))
	r.Register("get_recipe", typed(func(ctx context.Context, in idInput) (interface{}, error) {
		return deps.Production.GetRecipe(ctx, in.ID)
	}))
	r.Register("list_recipes", typed(func(ctx context.Context, in listRecipesInput) (interface{}, error) {
		return deps.Production.ListRecipes(ctx, in.OutputItemID, in.Limit)
	}))
	r.Register("price_order_lines", typed(func(ctx context.Context, in priceLinesInput) (interface{}, error) {
		return deps.Pricing.PriceLines(ctx, in.Lines)
	}))
	r.Register("create_sales_order", typed(func(ctx context.Context, in salesdto.CreateOrderInput) (interface{}, error) {
		return deps.Sales.CreateOrder(ctx, &in)
	}))
	r.Register("get_sales_order", typed(func(ctx context.Context, in idInput) (interface{}, error) {
		return deps.Sales.GetOrder(ctx, in.ID)
	}))
	r.Register("create_purchase_order", typed(func(ctx context.Context, in purchasingdto.CreateOrderInput) (interface{}, error) {
		return deps.Purchasing.CreateOrder(ctx, &in)
	}))
	r.Register("receive_purchase_order", typed(func(ctx context.Context, in purchasingdto.ReceiveInput) (interface{}, error) {
		return deps.Purchasing.Receive(ctx, &in)
	}))
	r.Register("restock_materials", typed(func(ctx context.Context, _ struct{}) (interface{}, error) {
		return deps.Purchasing.RestockMaterials(ctx)
	}))

	r.Register("get_time", typed(func(ctx context.Context, _ struct{}) (interface{}, error) {
		return map[string]time.Time{"now": deps.Clock.Now()}, nil
	}))
	if deps.SimClock != nil {
		r.Register("advance_time", typed(func(ctx context.Context, in advanceTimeInput) (interface{}, error) {
			old := deps.SimClock.Now()
			delta := time.Duration(in.Hours*float64(time.Hour)) + time.Duration(in.Days)*24*time.Hour
			now := deps.SimClock.Advance(delta)
			return map[string]time.Time{"old_time": old, "new_time": now}, nil
		}))
	}

	return r
}
