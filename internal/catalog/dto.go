package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nextplayhq/nextplay-backend/pkg/db/models"
	"github.com/nextplayhq/nextplay-backend/pkg/types"
)

// CreateProductInput is the admin payload for a new catalog row.
type CreateProductInput struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description string           `json:"description" validate:"max=4000"`
	Price       decimal.Decimal  `json:"price" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	Image       string           `json:"image" validate:"required"`
	Images      types.StringList `json:"images"`
	Colors      types.StringList `json:"colors"`
	Sizes       []string         `json:"sizes" validate:"omitempty,dive,oneof=S M L XL"`
	Featured    bool             `json:"featured"`
	IsNew       bool             `json:"is_new"`
}

// UpdateProductInput carries partial updates; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string           `json:"name" validate:"omitempty,max=200"`
	Description *string           `json:"description" validate:"omitempty,max=4000"`
	Price       *decimal.Decimal  `json:"price"`
	Category    *string           `json:"category"`
	Image       *string           `json:"image"`
	Images      *types.StringList `json:"images"`
	Colors      *types.StringList `json:"colors"`
	Sizes       *[]string         `json:"sizes" validate:"omitempty,dive,oneof=S M L XL"`
	Featured    *bool             `json:"featured"`
	IsNew       *bool             `json:"is_new"`
}

// ListInput carries the public/admin listing filters.
type ListInput struct {
	Category string
	Featured *bool
	IsNew    *bool
	Limit    int
	Cursor   string
}

// ProductView is the catalog row as returned to clients.
type ProductView struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Category    string           `json:"category"`
	Image       string           `json:"image"`
	Images      types.StringList `json:"images"`
	Colors      types.StringList `json:"colors"`
	Sizes       []string         `json:"sizes"`
	Featured    bool             `json:"featured"`
	IsNew       bool             `json:"is_new"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProductListView is one page of products.
type ProductListView struct {
	Products   []ProductView `json:"products"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

func viewFromModel(product *models.Product) ProductView {
	sizes := []string(product.Sizes)
	if sizes == nil {
		sizes = []string{}
	}
	return ProductView{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category.String(),
		Image:       product.Image,
		Images:      product.Images,
		Colors:      product.Colors,
		Sizes:       sizes,
		Featured:    product.Featured,
		IsNew:       product.IsNew,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func listViewFromModels(products []models.Product, nextCursor string) ProductListView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, viewFromModel(&products[i]))
	}
	return ProductListView{Products: views, NextCursor: nextCursor}
}
