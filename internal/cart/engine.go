package cart

import (
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one cart entry. Name, UnitPrice, and Image are snapshots taken when the
// line was first added; later adds for the same key only grow the quantity.
type Line struct {
	ProductID     uuid.UUID       `json:"product_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Image         string          `json:"image,omitempty"`
	SelectedColor string          `json:"selected_color,omitempty"`
	Quantity      int             `json:"quantity"`
}

// Key returns the identity of this line within a cart.
func (l Line) Key() string {
	return LineKey(l.ProductID, l.SelectedColor)
}

// LineKey derives the cart line identity from product and color. The same product
// in two colors is two separate lines. The color is percent-escaped so the key is
// always a single URL path segment, whatever the color contains.
func LineKey(productID uuid.UUID, color string) string {
	if color == "" {
		return productID.String()
	}
	return productID.String() + "|" + url.PathEscape(color)
}

// State is the authoritative cart value. Totals are derived on call and never stored.
type State struct {
	Lines []Line `json:"lines"`
}

// NewState returns an empty cart.
func NewState() *State {
	return &State{}
}

// Add merges the line into the cart. A line with the same (product, color) key grows
// its quantity by the incoming amount and keeps its original snapshot fields.
// Quantities below 1 are clamped to 1.
func (s *State) Add(line Line) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	key := line.Key()
	for i := range s.Lines {
		if s.Lines[i].Key() == key {
			s.Lines[i].Quantity += line.Quantity
			return
		}
	}
	s.Lines = append(s.Lines, line)
}

// UpdateQuantity sets the quantity of the line with the given key, clamping to a
// minimum of 1. Removing a line requires an explicit Remove. Returns false when no
// line matches.
func (s *State) UpdateQuantity(key string, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}
	for i := range s.Lines {
		if s.Lines[i].Key() == key {
			s.Lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove deletes the line with the given key. Removing an absent key is a no-op.
func (s *State) Remove(key string) {
	for i := range s.Lines {
		if s.Lines[i].Key() == key {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (s *State) Clear() {
	s.Lines = nil
}

// Find returns the line with the given key.
func (s *State) Find(key string) (Line, bool) {
	for _, line := range s.Lines {
		if line.Key() == key {
			return line, true
		}
	}
	return Line{}, false
}

// IsEmpty reports whether the cart has no lines.
func (s *State) IsEmpty() bool {
	return len(s.Lines) == 0
}

// TotalItems is the sum of quantities across all lines.
func (s *State) TotalItems() int {
	total := 0
	for _, line := range s.Lines {
		total += line.Quantity
	}
	return total
}

// Subtotal is the sum of unit price times quantity across all lines.
func (s *State) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range s.Lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return subtotal
}
