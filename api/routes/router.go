package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nextplayhq/nextplay-backend/api/controllers"
	"github.com/nextplayhq/nextplay-backend/api/middleware"
	cartsvc "github.com/nextplayhq/nextplay-backend/internal/cart"
	"github.com/nextplayhq/nextplay-backend/internal/catalog"
	"github.com/nextplayhq/nextplay-backend/internal/orders"
	"github.com/nextplayhq/nextplay-backend/pkg/config"
	"github.com/nextplayhq/nextplay-backend/pkg/db"
	"github.com/nextplayhq/nextplay-backend/pkg/logger"
	"github.com/nextplayhq/nextplay-backend/pkg/metrics"
	"github.com/nextplayhq/nextplay-backend/pkg/redis"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    *redis.Client
	Registry *prometheus.Registry
	Metrics  *metrics.HTTPMetrics
	Catalog  catalog.Service
	Cart     cartsvc.Service
	Orders   orders.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Catalog, logg))
			r.Get("/{productId}", controllers.GetProduct(deps.Catalog, logg))
			r.Get("/{productId}/related", controllers.ListRelatedProducts(deps.Catalog, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartToken(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(deps.Cart, logg))
				r.Delete("/", controllers.ClearCart(deps.Cart, logg))
				r.Post("/items", controllers.AddCartItem(deps.Cart, logg))
				r.Patch("/items/{lineKey}", controllers.UpdateCartItem(deps.Cart, logg))
				r.Delete("/items/{lineKey}", controllers.RemoveCartItem(deps.Cart, logg))
			})

			r.With(middleware.Idempotency(deps.Redis, cfg.Checkout.IdempotencyTTL, logg)).
				Post("/checkout", controllers.SubmitOrder(deps.Orders, deps.Metrics, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.AdminListProducts(deps.Catalog, logg))
			r.Post("/", controllers.AdminCreateProduct(deps.Catalog, logg))
			r.Patch("/{productId}", controllers.AdminUpdateProduct(deps.Catalog, logg))
			r.Delete("/{productId}", controllers.AdminDeleteProduct(deps.Catalog, logg))
		})
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminListOrders(deps.Orders, logg))
			r.Get("/{orderId}", controllers.AdminGetOrder(deps.Orders, logg))
		})
	})

	return r
}
