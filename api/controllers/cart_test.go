package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nextplayhq/nextplay-backend/api/middleware"
	cartsvc "github.com/nextplayhq/nextplay-backend/internal/cart"
	pkgerrors "github.com/nextplayhq/nextplay-backend/pkg/errors"
)

type stubCartService struct {
	addCalls    int
	lastToken   string
	lastInput   cartsvc.AddItemInput
	lastLineKey string
	err         error
}

func (s *stubCartService) view() *cartsvc.View {
	return &cartsvc.View{Lines: []cartsvc.LineView{}}
}

func (s *stubCartService) Fetch(ctx context.Context, token string) (*cartsvc.View, error) {
	s.lastToken = token
	if s.err != nil {
		return nil, s.err
	}
	return s.view(), nil
}

func (s *stubCartService) AddItem(ctx context.Context, token string, input cartsvc.AddItemInput) (*cartsvc.View, error) {
	s.addCalls++
	s.lastToken = token
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.view(), nil
}

func (s *stubCartService) UpdateItem(ctx context.Context, token, lineKey string, input cartsvc.UpdateItemInput) (*cartsvc.View, error) {
	s.lastToken = token
	s.lastLineKey = lineKey
	if s.err != nil {
		return nil, s.err
	}
	return s.view(), nil
}

func (s *stubCartService) RemoveItem(ctx context.Context, token, lineKey string) (*cartsvc.View, error) {
	s.lastToken = token
	s.lastLineKey = lineKey
	if s.err != nil {
		return nil, s.err
	}
	return s.view(), nil
}

func (s *stubCartService) Clear(ctx context.Context, token string) (*cartsvc.View, error) {
	s.lastToken = token
	if s.err != nil {
		return nil, s.err
	}
	return s.view(), nil
}

func cartRequest(method, target, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req = req.WithContext(middleware.WithCartToken(req.Context(), "token-1"))
	return req
}

func TestGetCart(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()

	GetCart(svc, nil).ServeHTTP(rec, cartRequest(http.MethodGet, "/api/v1/cart", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastToken != "token-1" {
		t.Fatalf("expected cart token from context, got %q", svc.lastToken)
	}
}

func TestAddCartItem(t *testing.T) {
	productID := uuid.New()

	t.Run("valid payload", func(t *testing.T) {
		svc := &stubCartService{}
		rec := httptest.NewRecorder()
		body := `{"product_id":"` + productID.String() + `","quantity":2,"selected_color":"black"}`

		AddCartItem(svc, nil).ServeHTTP(rec, cartRequest(http.MethodPost, "/api/v1/cart/items", body))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if svc.lastInput.ProductID != productID || svc.lastInput.Quantity != 2 {
			t.Fatalf("unexpected input %+v", svc.lastInput)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		svc := &stubCartService{}
		rec := httptest.NewRecorder()
		body := `{"product_id":"` + productID.String() + `","price":"1.00"}`

		AddCartItem(svc, nil).ServeHTTP(rec, cartRequest(http.MethodPost, "/api/v1/cart/items", body))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if svc.addCalls != 0 {
			t.Fatal("service must not be reached on a bad payload")
		}
	})

	t.Run("missing product id", func(t *testing.T) {
		svc := &stubCartService{}
		rec := httptest.NewRecorder()

		AddCartItem(svc, nil).ServeHTTP(rec, cartRequest(http.MethodPost, "/api/v1/cart/items", `{"quantity":1}`))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("service not found error maps to 404", func(t *testing.T) {
		svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
		rec := httptest.NewRecorder()
		body := `{"product_id":"` + productID.String() + `","quantity":1}`

		AddCartItem(svc, nil).ServeHTTP(rec, cartRequest(http.MethodPost, "/api/v1/cart/items", body))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestUpdateCartItem(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()

	req := cartRequest(http.MethodPatch, "/api/v1/cart/items/abc", `{"quantity":3}`)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("lineKey", "abc")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	UpdateCartItem(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastLineKey != "abc" {
		t.Fatalf("expected line key abc, got %q", svc.lastLineKey)
	}
}

func TestRemoveCartItemDecodesEscapedKey(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()

	// A color with a slash is stored percent-escaped in the key; the client then
	// URL-encodes the whole key, so the route param arrives double-escaped.
	req := cartRequest(http.MethodDelete, "/api/v1/cart/items/abc%7Cmatte%252Fblack", "")
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("lineKey", "abc%7Cmatte%252Fblack")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	RemoveCartItem(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastLineKey != "abc|matte%2Fblack" {
		t.Fatalf("expected decoded line key, got %q", svc.lastLineKey)
	}
}

func TestUpdateCartItemZeroQuantityRejected(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()

	req := cartRequest(http.MethodPatch, "/api/v1/cart/items/abc", `{"quantity":0}`)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("lineKey", "abc")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	UpdateCartItem(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for quantity 0, got %d", rec.Code)
	}
}

func TestRemoveCartItem(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()

	req := cartRequest(http.MethodDelete, "/api/v1/cart/items/abc", "")
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("lineKey", "abc")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	RemoveCartItem(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastLineKey != "abc" {
		t.Fatalf("expected line key abc, got %q", svc.lastLineKey)
	}
}

func TestClearCart(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()

	ClearCart(svc, nil).ServeHTTP(rec, cartRequest(http.MethodDelete, "/api/v1/cart", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
