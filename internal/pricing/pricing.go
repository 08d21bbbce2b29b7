// Package pricing computes cart totals. All functions are pure; amounts are
// VND and rounded to whole units.
package pricing

import (
	"math"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/config"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
)

// Policy decides the shipping fee for a computed subtotal.
type Policy interface {
	Fee(subtotal float64, itemCount int) float64
}

// FlatFee charges a fixed fee on any non-empty cart.
type FlatFee float64

func (f FlatFee) Fee(subtotal float64, itemCount int) float64 {
	if itemCount == 0 {
		return 0
	}

	return round(float64(f))
}

// FreeAbove charges FlatFee until the subtotal reaches Threshold.
type FreeAbove struct {
	FlatFee   float64
	Threshold float64
}

func (f FreeAbove) Fee(subtotal float64, itemCount int) float64 {
	if itemCount == 0 || subtotal >= f.Threshold {
		return 0
	}

	return round(f.FlatFee)
}

func PolicyFromConfig(cfg *config.Shipping) Policy {
	if cfg.Mode == "free_above" {
		return FreeAbove{FlatFee: cfg.FlatFee, Threshold: cfg.FreeThreshold}
	}

	return FlatFee(cfg.FlatFee)
}

// EffectivePrice applies the product's discount to its unit price. Discounts
// outside [0,100] are clamped, so the result never exceeds the unit price.
func EffectivePrice(p models.Product) float64 {

	discount := p.DiscountPercent

	if discount < 0 {
		discount = 0
	}

	if discount > 100 {
		discount = 100
	}

	return round(p.UnitPrice * (1 - discount/100))
}

// LineTotal is the effective price times the quantity. A missing quantity
// counts as zero.
func LineTotal(item models.LineItem) float64 {

	qty := item.Quantity

	if qty < 0 {
		qty = 0
	}

	return round(EffectivePrice(item.Product) * float64(qty))
}

// Breakdown recomputes the full price summary for the cart. It is derived
// state: grandTotal = subtotal + shippingFee, and discountTotal is the gap
// between gross (undiscounted) and subtotal.
func Breakdown(items []models.LineItem, policy Policy) models.PriceBreakdown {

	var subtotal, gross float64

	for _, item := range items {

		qty := item.Quantity
		if qty < 0 {
			qty = 0
		}

		subtotal += LineTotal(item)
		gross += round(item.Product.UnitPrice * float64(qty))
	}

	fee := policy.Fee(subtotal, len(items))

	return models.PriceBreakdown{
		Subtotal:      subtotal,
		DiscountTotal: gross - subtotal,
		ShippingFee:   fee,
		GrandTotal:    subtotal + fee,
	}
}

func round(v float64) float64 {
	return math.Round(v)
}
