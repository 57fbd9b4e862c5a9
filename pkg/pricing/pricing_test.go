package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeBelowFreeShippingThreshold(t *testing.T) {
	breakdown := Compute(decimal.NewFromInt(80))

	if !breakdown.Shipping.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected flat shipping 10, got %s", breakdown.Shipping)
	}
	if !breakdown.Tax.Equal(decimal.NewFromInt(8)) {
		t.Fatalf("expected tax 8, got %s", breakdown.Tax)
	}
	if !breakdown.GrandTotal.Equal(decimal.NewFromInt(98)) {
		t.Fatalf("expected grand total 98, got %s", breakdown.GrandTotal)
	}
}

func TestComputeAtFreeShippingThreshold(t *testing.T) {
	breakdown := Compute(decimal.NewFromInt(150))

	if !breakdown.Shipping.Equal(decimal.Zero) {
		t.Fatalf("expected free shipping, got %s", breakdown.Shipping)
	}
	if !breakdown.Tax.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("expected tax 15, got %s", breakdown.Tax)
	}
	if !breakdown.GrandTotal.Equal(decimal.NewFromInt(165)) {
		t.Fatalf("expected grand total 165, got %s", breakdown.GrandTotal)
	}
}

func TestComputeBoundaryIsInclusive(t *testing.T) {
	breakdown := Compute(decimal.NewFromInt(100))
	if !breakdown.Shipping.Equal(decimal.Zero) {
		t.Fatalf("subtotal of exactly 100 ships free, got %s", breakdown.Shipping)
	}
}

func TestComputeEmptyCart(t *testing.T) {
	breakdown := Compute(decimal.Zero)
	if !breakdown.GrandTotal.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("empty subtotal still carries the flat fee, got %s", breakdown.GrandTotal)
	}
}

func TestComputeRoundsTax(t *testing.T) {
	breakdown := Compute(decimal.RequireFromString("33.33"))
	if !breakdown.Tax.Equal(decimal.RequireFromString("3.33")) {
		t.Fatalf("expected tax rounded to cents, got %s", breakdown.Tax)
	}
}
