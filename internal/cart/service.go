package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nextplayhq/nextplay-backend/pkg/db/models"
	pkgerrors "github.com/nextplayhq/nextplay-backend/pkg/errors"
)

type productFinder interface {
	FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service orchestrates cart mutations. Every mutation loads the snapshot, applies
// the change to the engine, and saves before returning, so clients always observe
// either the old cart or the fully applied new one.
type Service interface {
	Fetch(ctx context.Context, token string) (*View, error)
	AddItem(ctx context.Context, token string, input AddItemInput) (*View, error)
	UpdateItem(ctx context.Context, token, lineKey string, input UpdateItemInput) (*View, error)
	RemoveItem(ctx context.Context, token, lineKey string) (*View, error)
	Clear(ctx context.Context, token string) (*View, error)
}

type service struct {
	store    Store
	products productFinder
}

// NewService builds a cart service over the given store and catalog reader.
func NewService(store Store, products productFinder) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product finder required")
	}
	return &service{store: store, products: products}, nil
}

func (s *service) Fetch(ctx context.Context, token string) (*View, error) {
	state, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	view := viewFromState(state)
	return &view, nil
}

func (s *service) AddItem(ctx context.Context, token string, input AddItemInput) (*View, error) {
	product, err := s.products.FindProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	state, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	state.Add(Line{
		ProductID:     product.ID,
		Name:          product.Name,
		UnitPrice:     product.Price,
		Image:         product.Image,
		SelectedColor: input.SelectedColor,
		Quantity:      input.Quantity,
	})
	if err := s.store.Save(ctx, token, state); err != nil {
		return nil, err
	}
	view := viewFromState(state)
	return &view, nil
}

func (s *service) UpdateItem(ctx context.Context, token, lineKey string, input UpdateItemInput) (*View, error) {
	state, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	if !state.UpdateQuantity(lineKey, input.Quantity) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
	}
	if err := s.store.Save(ctx, token, state); err != nil {
		return nil, err
	}
	view := viewFromState(state)
	return &view, nil
}

func (s *service) RemoveItem(ctx context.Context, token, lineKey string) (*View, error) {
	state, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	state.Remove(lineKey)
	if err := s.store.Save(ctx, token, state); err != nil {
		return nil, err
	}
	view := viewFromState(state)
	return &view, nil
}

func (s *service) Clear(ctx context.Context, token string) (*View, error) {
	state, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	state.Clear()
	if err := s.store.Delete(ctx, token); err != nil {
		return nil, err
	}
	view := viewFromState(state)
	return &view, nil
}
