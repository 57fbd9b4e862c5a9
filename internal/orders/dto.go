package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nextplayhq/nextplay-backend/pkg/db/models"
	"github.com/nextplayhq/nextplay-backend/pkg/types"
)

// SubmitInput carries the delivery contact details for checkout. Every field is
// required before any remote call is made.
type SubmitInput struct {
	Name    string `json:"name" validate:"required,max=120"`
	Phone   string `json:"phone" validate:"required,max=32"`
	Wilaya  string `json:"wilaya" validate:"required,max=64"`
	Baladia string `json:"baladia" validate:"required,max=64"`
}

// OrderView is one persisted order as returned to admin clients.
type OrderView struct {
	ID           uuid.UUID        `json:"id"`
	Items        types.OrderItems `json:"items"`
	TotalPrice   decimal.Decimal  `json:"total_price"`
	CustomerName string           `json:"name"`
	Phone        string           `json:"phone"`
	Wilaya       string           `json:"wilaya"`
	Baladia      string           `json:"baladia"`
	CreatedAt    time.Time        `json:"created_at"`
}

// OrderListView is one page of orders, newest first.
type OrderListView struct {
	Orders     []OrderView `json:"orders"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

func viewFromModel(order *models.Order) OrderView {
	items := order.Items
	if items == nil {
		items = types.OrderItems{}
	}
	return OrderView{
		ID:           order.ID,
		Items:        items,
		TotalPrice:   order.TotalPrice,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Wilaya:       order.Wilaya,
		Baladia:      order.Baladia,
		CreatedAt:    order.CreatedAt,
	}
}

func listViewFromModels(rows []models.Order, nextCursor string) OrderListView {
	views := make([]OrderView, 0, len(rows))
	for i := range rows {
		views = append(views, viewFromModel(&rows[i]))
	}
	return OrderListView{Orders: views, NextCursor: nextCursor}
}
