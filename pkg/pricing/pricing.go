package pricing

import "github.com/shopspring/decimal"

var (
	// FreeShippingThreshold is the subtotal at which the flat surcharge is waived.
	FreeShippingThreshold = decimal.NewFromInt(100)
	// FlatShippingFee applies below the free-shipping threshold.
	FlatShippingFee = decimal.NewFromInt(10)
	// TaxRate is the flat tax applied to the subtotal.
	TaxRate = decimal.NewFromFloat(0.10)
)

// Breakdown is a derived view over a cart subtotal. It is recomputed on every read
// and never persisted.
type Breakdown struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Compute derives shipping, tax, and the grand total for the given subtotal.
func Compute(subtotal decimal.Decimal) Breakdown {
	shipping := FlatShippingFee
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(TaxRate).Round(2)
	return Breakdown{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		GrandTotal: subtotal.Add(shipping).Add(tax),
	}
}
