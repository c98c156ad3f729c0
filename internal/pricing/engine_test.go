package pricing_test

import (
	"testing"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func TestEngine_Quote(t *testing.T) {
	lines := []entities.OrderLine{
		{ProductID: "X", UnitPrice: 1000, Quantity: 2},
		{ProductID: "Y", VariantID: "red", UnitPrice: 500, Quantity: 1},
	}

	testCases := []struct {
		name  string
		lines []entities.OrderLine
		code  string
		want  entities.PricingSnapshot
	}{
		{
			name:  "no discount",
			lines: lines,
			want:  entities.PricingSnapshot{Subtotal: 2500, ShippingFee: 30000, Total: 32500},
		},
		{
			name:  "known code gives ten percent off subtotal",
			lines: lines,
			code:  "SAVE10",
			want:  entities.PricingSnapshot{Subtotal: 2500, ShippingFee: 30000, Discount: 250, DiscountCode: "SAVE10", Total: 32250},
		},
		{
			name:  "code is trimmed and case insensitive",
			lines: lines,
			code:  "  save10 ",
			want:  entities.PricingSnapshot{Subtotal: 2500, ShippingFee: 30000, Discount: 250, DiscountCode: "SAVE10", Total: 32250},
		},
		{
			name:  "unknown code is ignored",
			lines: lines,
			code:  "FREESTUFF",
			want:  entities.PricingSnapshot{Subtotal: 2500, ShippingFee: 30000, Total: 32500},
		},
		{
			name:  "discount rounds half up",
			lines: []entities.OrderLine{{ProductID: "Z", UnitPrice: 15, Quantity: 1}},
			code:  "SAVE10",
			want:  entities.PricingSnapshot{Subtotal: 15, ShippingFee: 30000, Discount: 2, DiscountCode: "SAVE10", Total: 30013},
		},
		{
			name: "no lines",
			want: entities.PricingSnapshot{ShippingFee: 30000, Total: 30000},
		},
	}

	engine := pricing.NewEngine(pricing.DefaultShippingFee)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.Quote(tc.lines, tc.code)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got.Subtotal+got.ShippingFee-got.Discount, got.Total)
		})
	}
}

func TestEngine_QuoteIsDeterministic(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultShippingFee)
	lines := []entities.OrderLine{
		{ProductID: "A", UnitPrice: 1999, Quantity: 3},
		{ProductID: "B", UnitPrice: 45000, Quantity: 1},
	}

	first := engine.Quote(lines, "SAVE10")
	for range 10 {
		assert.Equal(t, first, engine.Quote(lines, "SAVE10"))
	}
}

func TestNewEngine_NegativeShippingFallsBackToDefault(t *testing.T) {
	engine := pricing.NewEngine(-1)
	assert.Equal(t, pricing.DefaultShippingFee, engine.ShippingFee())
}
