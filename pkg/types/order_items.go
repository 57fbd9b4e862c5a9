package types

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is the immutable per-line snapshot written at submission time. It carries
// the values captured when the line was added to the cart, not the live catalog row.
type OrderItem struct {
	ProductID     uuid.UUID       `json:"product_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	SelectedColor string          `json:"selected_color,omitempty"`
}

// OrderItems is stored as a single jsonb document on the order row.
type OrderItems []OrderItem
