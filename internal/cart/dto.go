package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nextplayhq/nextplay-backend/pkg/pricing"
)

// AddItemInput is the payload for adding a product to the cart.
type AddItemInput struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	Quantity      int       `json:"quantity" validate:"omitempty,min=1"`
	SelectedColor string    `json:"selected_color" validate:"omitempty,max=64"`
}

// UpdateItemInput changes the quantity of an existing line.
type UpdateItemInput struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// LineView is one cart line as returned to clients.
type LineView struct {
	Key           string          `json:"key"`
	ProductID     uuid.UUID       `json:"product_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Image         string          `json:"image,omitempty"`
	SelectedColor string          `json:"selected_color,omitempty"`
	Quantity      int             `json:"quantity"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// View is the full cart response: lines plus derived totals and pricing.
type View struct {
	Lines      []LineView        `json:"lines"`
	TotalItems int               `json:"total_items"`
	Pricing    pricing.Breakdown `json:"pricing"`
}

func viewFromState(state *State) View {
	lines := make([]LineView, 0, len(state.Lines))
	for _, l := range state.Lines {
		lines = append(lines, LineView{
			Key:           l.Key(),
			ProductID:     l.ProductID,
			Name:          l.Name,
			UnitPrice:     l.UnitPrice,
			Image:         l.Image,
			SelectedColor: l.SelectedColor,
			Quantity:      l.Quantity,
			LineTotal:     l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	return View{
		Lines:      lines,
		TotalItems: state.TotalItems(),
		Pricing:    pricing.Compute(state.Subtotal()),
	}
}
