package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nextplayhq/nextplay-backend/pkg/types"
)

// Order is the point-in-time record produced at checkout. Rows are written once and
// never updated; the items document has no relationship to live catalog rows.
type Order struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Items        types.OrderItems `gorm:"column:items;type:jsonb;serializer:json;not null"`
	TotalPrice   decimal.Decimal  `gorm:"column:total_price;type:numeric(10,2);not null"`
	CustomerName string           `gorm:"column:name;not null"`
	Phone        string           `gorm:"column:phone;not null"`
	Wilaya       string           `gorm:"column:wilaya;not null"`
	Baladia      string           `gorm:"column:baladia;not null"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
}
