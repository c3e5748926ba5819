package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ducktide/factory-service/config"
	"github.com/ducktide/factory-service/internal/catalog"
	"github.com/ducktide/factory-service/internal/pricing"
	"github.com/ducktide/factory-service/internal/pricing/dto"
	"github.com/ducktide/factory-service/pkg/apperrors"
	"github.com/ducktide/factory-service/pkg/cache"
	"github.com/ducktide/factory-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const cacheTTL = 10 * time.Minute

type pricingUseCase struct {
	catalog catalog.UseCase
	cfg     config.PricingConfig
	cache   *cache.RedisClient
	logger  logger.ZapLogger
}

func NewPricingUseCase(cat catalog.UseCase, cfg config.PricingConfig, cacheClient *cache.RedisClient, log logger.ZapLogger) pricing.UseCase {
	return &pricingUseCase{
		catalog: cat,
		cfg:     cfg,
		cache:   cacheClient,
		logger:  log,
	}
}

func (uc *pricingUseCase) PriceLines(ctx context.Context, lines []dto.OrderLine) (*dto.PriceBreakdown, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("price lines: %w", apperrors.ErrEmptyOrder)
	}

	// Resolve unit prices up front; the cache key covers them, so a price
	// change can never serve a stale breakdown.
	priced := make([]dto.LineTotal, 0, len(lines))
	for _, line := range lines {
		item, err := uc.catalog.ResolveItem(ctx, line.SKU)
		if err != nil {
			return nil, err
		}
		priced = append(priced, dto.LineTotal{
			SKU:       line.SKU,
			Qty:       line.Qty,
			UnitPrice: uc.catalog.UnitPrice(item),
		})
	}

	cacheKey, keyErr := uc.generateCacheKey(priced)
	if keyErr == nil {
		var cached dto.PriceBreakdown
		if hit, err := uc.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	breakdown := uc.compute(priced)

	if keyErr == nil {
		if err := uc.cache.SetJSON(ctx, cacheKey, breakdown, cacheTTL); err != nil {
			uc.logger.Warn("failed to cache price breakdown", zap.Error(err))
		}
	}

	return breakdown, nil
}

func (uc *pricingUseCase) compute(priced []dto.LineTotal) *dto.PriceBreakdown {
	subtotal := decimal.Zero
	totalQty := decimal.Zero

	for i := range priced {
		qty := decimal.NewFromFloat(priced[i].Qty)
		unit := decimal.NewFromFloat(priced[i].UnitPrice)
		lineTotal := qty.Mul(unit)

		priced[i].LineTotal = lineTotal.Round(2).InexactFloat64()
		subtotal = subtotal.Add(lineTotal)
		totalQty = totalQty.Add(qty)
	}

	discount := decimal.Zero
	var discounts []dto.DiscountDetail
	if totalQty.Cmp(decimal.NewFromFloat(uc.cfg.VolumeQtyThreshold)) >= 0 {
		discount = subtotal.Mul(decimal.NewFromFloat(uc.cfg.VolumeDiscountPct)).Round(2)
		discounts = append(discounts, dto.DiscountDetail{
			Type:        "volume",
			Description: fmt.Sprintf("%v+ units discount", uc.cfg.VolumeQtyThreshold),
			Amount:      discount.Neg().InexactFloat64(),
		})
	}

	shipping := decimal.Zero
	shippingDesc := "Free shipping threshold"
	if subtotal.Cmp(decimal.NewFromFloat(uc.cfg.FreeShippingThreshold)) < 0 {
		shipping = decimal.NewFromFloat(uc.cfg.FlatShippingFee)
		shippingDesc = "Flat shipping"
	}

	total := subtotal.Sub(discount).Add(shipping)

	return &dto.PriceBreakdown{
		Currency:  uc.cfg.Currency,
		Subtotal:  subtotal.Round(2).InexactFloat64(),
		Discount:  discount.InexactFloat64(),
		Shipping:  shipping.InexactFloat64(),
		Total:     total.Round(2).InexactFloat64(),
		Lines:     priced,
		Discounts: discounts,
		ShippingDetail: dto.ShippingDetail{
			Amount:      shipping.InexactFloat64(),
			Description: shippingDesc,
		},
	}
}

// generateCacheKey hashes the priced lines (SKU, qty, resolved unit price),
// so the key changes whenever any pricing input changes.
func (uc *pricingUseCase) generateCacheKey(priced []dto.LineTotal) (string, error) {
	data, err := json.Marshal(priced)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("pricing:%x", md5.Sum(data)), nil
}
