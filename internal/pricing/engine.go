// Package pricing computes order totals. It does no I/O and keeps no state
// between calls, so the same lines and code always give the same snapshot.
package pricing

import (
	"strings"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/shopspring/decimal"
)

const DefaultShippingFee int64 = 30000

// Placeholder policy: a single hard-coded code, not a coupon engine.
var defaultDiscounts = map[string]decimal.Decimal{
	"SAVE10": decimal.NewFromFloat(0.10),
}

type Engine struct {
	shippingFee int64
	discounts   map[string]decimal.Decimal
}

func NewEngine(shippingFee int64) *Engine {
	if shippingFee < 0 {
		shippingFee = DefaultShippingFee
	}
	return &Engine{
		shippingFee: shippingFee,
		discounts:   defaultDiscounts,
	}
}

func (e *Engine) ShippingFee() int64 {
	return e.shippingFee
}

func (e *Engine) Quote(lines []entities.OrderLine, discountCode string) entities.PricingSnapshot {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.Total()
	}

	code := normalizeCode(discountCode)
	discount := e.discount(subtotal, code)
	if discount == 0 {
		code = ""
	}

	total := subtotal + e.shippingFee - discount
	if total < 0 {
		total = 0
	}

	return entities.PricingSnapshot{
		Subtotal:     subtotal,
		ShippingFee:  e.shippingFee,
		Discount:     discount,
		DiscountCode: code,
		Total:        total,
	}
}

func (e *Engine) discount(subtotal int64, code string) int64 {
	rate, ok := e.discounts[code]
	if !ok || subtotal <= 0 {
		return 0
	}
	return decimal.NewFromInt(subtotal).Mul(rate).Round(0).IntPart()
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
