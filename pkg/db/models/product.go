package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/nextplayhq/nextplay-backend/pkg/enums"
	"github.com/nextplayhq/nextplay-backend/pkg/types"
)

// Product is the canonical catalog row. Images and Colors are positionally paired:
// Images[i] is the photo shown when Colors[i] is selected. Image is the primary
// (listing) photo.
type Product struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string                `gorm:"column:name;not null"`
	Description string                `gorm:"column:description;not null;default:''"`
	Price       decimal.Decimal       `gorm:"column:price;type:numeric(10,2);not null"`
	Category    enums.ProductCategory `gorm:"column:category;not null"`
	Image       string                `gorm:"column:image;not null;default:''"`
	Images      types.StringList      `gorm:"column:images;type:jsonb;not null;default:'[]'"`
	Colors      types.StringList      `gorm:"column:colors;type:jsonb;not null;default:'[]'"`
	Sizes       pq.StringArray        `gorm:"column:sizes;type:text[]"`
	Featured    bool                  `gorm:"column:featured;not null;default:false"`
	IsNew       bool                  `gorm:"column:is_new;not null;default:false"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
