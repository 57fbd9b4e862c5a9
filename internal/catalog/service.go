package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/multierr"

	"github.com/nextplayhq/nextplay-backend/pkg/config"
	"github.com/nextplayhq/nextplay-backend/pkg/db/models"
	"github.com/nextplayhq/nextplay-backend/pkg/enums"
	pkgerrors "github.com/nextplayhq/nextplay-backend/pkg/errors"
	"github.com/nextplayhq/nextplay-backend/pkg/pagination"
	"github.com/nextplayhq/nextplay-backend/pkg/types"
)

// Service exposes catalog reads for the storefront and writes for admin.
type Service interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, input ListInput) (*ProductListView, error)
	ListRelated(ctx context.Context, id uuid.UUID, limit int) (*ProductListView, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductView, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductView, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	cfg  config.CatalogConfig
}

// NewService builds a catalog service.
func NewService(repo Repository, cfg config.CatalogConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, cfg: cfg}, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := viewFromModel(product)
	return &view, nil
}

func (s *service) FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, input ListInput) (*ProductListView, error) {
	query := ListQuery{
		Pagination: pagination.Params{Limit: input.Limit, Cursor: input.Cursor},
		Featured:   input.Featured,
		IsNew:      input.IsNew,
	}
	if raw := strings.TrimSpace(input.Category); raw != "" {
		category, err := enums.ParseProductCategory(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category filter")
		}
		query.Category = &category
	}
	result, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	view := listViewFromModels(result.Products, result.NextCursor)
	return &view, nil
}

// ListRelated returns products in the same category as the given product,
// excluding the product itself.
func (s *service) ListRelated(ctx context.Context, id uuid.UUID, limit int) (*ProductListView, error) {
	if limit <= 0 {
		limit = s.cfg.RelatedLimit
	}
	if limit > s.cfg.RelatedMaxLimit {
		limit = s.cfg.RelatedMaxLimit
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	related, err := s.repo.ListRelated(ctx, product.Category, product.ID, limit)
	if err != nil {
		return nil, err
	}
	view := listViewFromModels(related, "")
	return &view, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductView, error) {
	category, err := enums.ParseProductCategory(input.Category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	if err := validateImageURLs(input.Image, input.Images); err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Category:    category,
		Image:       input.Image,
		Images:      alignImages(input.Images, input.Colors, input.Image),
		Colors:      input.Colors,
		Sizes:       pq.StringArray(input.Sizes),
		Featured:    input.Featured,
		IsNew:       input.IsNew,
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	view := viewFromModel(created)
	return &view, nil
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductView, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		category, err := enums.ParseProductCategory(*input.Category)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		product.Category = category
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.Colors != nil {
		product.Colors = *input.Colors
	}
	if input.Sizes != nil {
		product.Sizes = pq.StringArray(*input.Sizes)
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	if input.IsNew != nil {
		product.IsNew = *input.IsNew
	}

	if err := validateImageURLs(product.Image, product.Images); err != nil {
		return nil, err
	}
	product.Images = alignImages(product.Images, product.Colors, product.Image)

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	view := viewFromModel(updated)
	return &view, nil
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// validateImageURLs checks every image field and reports all failures at once.
func validateImageURLs(primary string, images types.StringList) error {
	var errs error
	if err := validateImageURL(primary); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("image: %w", err))
	}
	for i, raw := range images {
		if err := validateImageURL(raw); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("images[%d]: %w", i, err))
		}
	}
	if errs == nil {
		return nil
	}
	details := make([]string, 0, len(multierr.Errors(errs)))
	for _, err := range multierr.Errors(errs) {
		details = append(details, err.Error())
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid image url").
		WithDetails(map[string]any{"errors": details})
}

func validateImageURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("empty url")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

// alignImages pads the image list with the primary image until it matches the color
// list, so colors[i] always resolves to images[i]. Extra images beyond the color
// count are kept.
func alignImages(images types.StringList, colors types.StringList, primary string) types.StringList {
	if len(colors) <= len(images) {
		if images == nil {
			return types.StringList{}
		}
		return images
	}
	fill := primary
	if fill == "" && len(images) > 0 {
		fill = images[0]
	}
	aligned := make(types.StringList, 0, len(colors))
	aligned = append(aligned, images...)
	for len(aligned) < len(colors) {
		aligned = append(aligned, fill)
	}
	return aligned
}
