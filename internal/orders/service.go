package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nextplayhq/nextplay-backend/internal/cart"
	"github.com/nextplayhq/nextplay-backend/pkg/db/models"
	pkgerrors "github.com/nextplayhq/nextplay-backend/pkg/errors"
	"github.com/nextplayhq/nextplay-backend/pkg/logger"
	"github.com/nextplayhq/nextplay-backend/pkg/pagination"
	"github.com/nextplayhq/nextplay-backend/pkg/types"
)

// Service handles order submission and admin reads.
type Service interface {
	Submit(ctx context.Context, cartToken string, input SubmitInput) (*OrderView, error)
	List(ctx context.Context, params pagination.Params) (*OrderListView, error)
	Get(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type service struct {
	repo  Repository
	carts cart.Store
	lock  SubmissionLock
	logg  *logger.Logger
}

// NewService builds an orders service with the required dependencies.
func NewService(repo Repository, carts cart.Store, lock SubmissionLock, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if lock == nil {
		return nil, fmt.Errorf("submission lock required")
	}
	return &service{repo: repo, carts: carts, lock: lock, logg: logg}, nil
}

// Submit turns the cart behind cartToken into a persisted order. The cart is
// cleared only after the insert succeeds; any failure leaves it intact so the
// client can retry.
func (s *service) Submit(ctx context.Context, cartToken string, input SubmitInput) (*OrderView, error) {
	if err := validateContact(input); err != nil {
		return nil, err
	}

	state, err := s.carts.Load(ctx, cartToken)
	if err != nil {
		return nil, err
	}
	if state.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	acquired, err := s.lock.Acquire(ctx, cartToken)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "an order submission is already in progress for this cart")
	}
	defer func() {
		if err := s.lock.Release(context.WithoutCancel(ctx), cartToken); err != nil && s.logg != nil {
			s.logg.Warn(ctx, "releasing submission lock failed, lock will expire on its own")
		}
	}()

	// Shipping and tax are recomputed wherever the order is displayed; the row
	// records only what the items themselves cost.
	order := &models.Order{
		ID:           uuid.New(),
		Items:        snapshotItems(state),
		TotalPrice:   state.Subtotal(),
		CustomerName: strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Wilaya:       strings.TrimSpace(input.Wilaya),
		Baladia:      strings.TrimSpace(input.Baladia),
	}

	inserted, err := s.repo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := s.carts.Delete(ctx, cartToken); err != nil && s.logg != nil {
		// The order exists; a stale cart snapshot is the lesser problem and the
		// TTL will reap it.
		s.logg.Warn(ctx, "clearing cart after order insert failed")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "order_id", inserted.ID.String()), "order submitted")
	}
	view := viewFromModel(inserted)
	return &view, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*OrderListView, error) {
	result, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	view := listViewFromModels(result.Orders, result.NextCursor)
	return &view, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := viewFromModel(order)
	return &view, nil
}

// validateContact guards the write path even when the HTTP validator is bypassed.
func validateContact(input SubmitInput) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"phone", input.Phone},
		{"wilaya", input.Wilaya},
		{"baladia", input.Baladia},
	}
	missing := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "missing required contact fields").
		WithDetails(map[string]any{"missing": missing})
}

func snapshotItems(state *cart.State) types.OrderItems {
	items := make(types.OrderItems, 0, len(state.Lines))
	for _, line := range state.Lines {
		items = append(items, types.OrderItem{
			ProductID:     line.ProductID,
			Name:          line.Name,
			UnitPrice:     line.UnitPrice,
			Quantity:      line.Quantity,
			SelectedColor: line.SelectedColor,
		})
	}
	return items
}
