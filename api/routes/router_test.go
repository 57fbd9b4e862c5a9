package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	cartsvc "github.com/nextplayhq/nextplay-backend/internal/cart"
	"github.com/nextplayhq/nextplay-backend/internal/catalog"
	"github.com/nextplayhq/nextplay-backend/internal/orders"
	"github.com/nextplayhq/nextplay-backend/pkg/config"
	"github.com/nextplayhq/nextplay-backend/pkg/db/models"
	pkgerrors "github.com/nextplayhq/nextplay-backend/pkg/errors"
	"github.com/nextplayhq/nextplay-backend/pkg/logger"
	"github.com/nextplayhq/nextplay-backend/pkg/metrics"
	"github.com/nextplayhq/nextplay-backend/pkg/pagination"
)

type stubCatalogService struct{}

func (stubCatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.ProductView, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (stubCatalogService) FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (stubCatalogService) ListProducts(ctx context.Context, input catalog.ListInput) (*catalog.ProductListView, error) {
	return &catalog.ProductListView{Products: []catalog.ProductView{}}, nil
}

func (stubCatalogService) ListRelated(ctx context.Context, id uuid.UUID, limit int) (*catalog.ProductListView, error) {
	return &catalog.ProductListView{Products: []catalog.ProductView{}}, nil
}

func (stubCatalogService) CreateProduct(ctx context.Context, input catalog.CreateProductInput) (*catalog.ProductView, error) {
	return &catalog.ProductView{ID: uuid.New()}, nil
}

func (stubCatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input catalog.UpdateProductInput) (*catalog.ProductView, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (stubCatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return nil
}

type stubCartRouteService struct{}

func (stubCartRouteService) Fetch(ctx context.Context, token string) (*cartsvc.View, error) {
	return &cartsvc.View{Lines: []cartsvc.LineView{}}, nil
}

func (stubCartRouteService) AddItem(ctx context.Context, token string, input cartsvc.AddItemInput) (*cartsvc.View, error) {
	return &cartsvc.View{Lines: []cartsvc.LineView{}}, nil
}

func (stubCartRouteService) UpdateItem(ctx context.Context, token, lineKey string, input cartsvc.UpdateItemInput) (*cartsvc.View, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
}

func (stubCartRouteService) RemoveItem(ctx context.Context, token, lineKey string) (*cartsvc.View, error) {
	return &cartsvc.View{Lines: []cartsvc.LineView{}}, nil
}

func (stubCartRouteService) Clear(ctx context.Context, token string) (*cartsvc.View, error) {
	return &cartsvc.View{Lines: []cartsvc.LineView{}}, nil
}

type stubOrdersRouteService struct{}

func (stubOrdersRouteService) Submit(ctx context.Context, cartToken string, input orders.SubmitInput) (*orders.OrderView, error) {
	return &orders.OrderView{ID: uuid.New()}, nil
}

func (stubOrdersRouteService) List(ctx context.Context, params pagination.Params) (*orders.OrderListView, error) {
	return &orders.OrderListView{Orders: []orders.OrderView{}}, nil
}

func (stubOrdersRouteService) Get(ctx context.Context, id uuid.UUID) (*orders.OrderView, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func testRouter() http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	return NewRouter(Deps{
		Config:  cfg,
		Logger:  logg,
		Metrics: metrics.NewHTTPMetrics(nil),
		Catalog: stubCatalogService{},
		Cart:    stubCartRouteService{},
		Orders:  stubOrdersRouteService{},
	})
}

func TestRouterRoutes(t *testing.T) {
	router := testRouter()

	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{"health live", http.MethodGet, "/health/live", http.StatusOK},
		{"products list", http.MethodGet, "/api/v1/products", http.StatusOK},
		{"product detail 404", http.MethodGet, "/api/v1/products/" + uuid.NewString(), http.StatusNotFound},
		{"product related", http.MethodGet, "/api/v1/products/" + uuid.NewString() + "/related", http.StatusOK},
		{"cart fetch", http.MethodGet, "/api/v1/cart", http.StatusOK},
		{"cart clear", http.MethodDelete, "/api/v1/cart", http.StatusOK},
		{"admin products", http.MethodGet, "/api/admin/v1/products", http.StatusOK},
		{"admin orders", http.MethodGet, "/api/admin/v1/orders", http.StatusOK},
		{"admin order 404", http.MethodGet, "/api/admin/v1/orders/" + uuid.NewString(), http.StatusNotFound},
		{"unknown route", http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("%s %s: expected %d, got %d", tt.method, tt.target, tt.want, rec.Code)
			}
		})
	}
}

func TestRouterIssuesCartToken(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	token := rec.Header().Get("X-Cart-Token")
	if token == "" {
		t.Fatal("expected an issued cart token")
	}
	if _, err := uuid.Parse(token); err != nil {
		t.Fatalf("token is not a uuid: %q", token)
	}
}

func TestRouterHealthReadyWithoutStores(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without stores, got %d", rec.Code)
	}
}
