package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pos-backend/infrastructure/cache"
	"pos-backend/infrastructure/config"
	"pos-backend/interfaces/http/rest/handlers"
	"pos-backend/interfaces/http/rest/middleware"
	"pos-backend/pkg/auth"
)

// Handlers bundles the request handlers the router mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Products   *handlers.ProductHandler
	Categories *handlers.CategoryHandler
	Orders     *handlers.OrderHandler
	Customers  *handlers.CustomerHandler
	Staff      *handlers.StaffHandler
}

// NewRouter assembles the HTTP routing tree. Cacheable GET routes pass the
// canonical route pattern to the cache middleware so policy lookup and tag
// invalidation key on the same strings.
func NewRouter(cfg *config.Config, h Handlers, respCache *middleware.ResponseCache, validator *auth.Validator, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)

	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Cache"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", h.Health.Check)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CircuitBreaker(middleware.DefaultCircuitBreakerConfig("api"), logger))
		if cfg.EnableAuth && validator != nil {
			r.Use(middleware.Authenticate(validator))
		}

		r.Route("/products", func(r chi.Router) {
			r.With(respCache.Handle(cache.RouteProducts)).Get("/", h.Products.List)
			r.Post("/", h.Products.Create)
			r.With(respCache.Handle(cache.RouteProductByID)).Get("/{id}", h.Products.Get)
			r.Put("/{id}", h.Products.Update)
			r.Delete("/{id}", h.Products.Delete)
			r.Patch("/{id}/stock", h.Products.AdjustStock)
		})

		r.Route("/categories", func(r chi.Router) {
			r.With(respCache.Handle(cache.RouteCategories)).Get("/", h.Categories.List)
			r.Post("/", h.Categories.Create)
			r.Get("/{id}", h.Categories.Get)
			r.Put("/{id}", h.Categories.Update)
			r.Delete("/{id}", h.Categories.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(respCache.Handle(cache.RouteOrders)).Get("/", h.Orders.List)
			r.Post("/", h.Orders.Create)
			r.With(respCache.Handle(cache.RouteOrderByID)).Get("/{id}", h.Orders.Get)
			r.Patch("/{id}/status", h.Orders.UpdateStatus)
		})

		r.Route("/customers", func(r chi.Router) {
			r.With(respCache.Handle(cache.RouteCustomers)).Get("/", h.Customers.List)
			r.Post("/", h.Customers.Create)
			r.With(respCache.Handle(cache.RouteCustomerByID)).Get("/{id}", h.Customers.Get)
			r.Put("/{id}", h.Customers.Update)
			r.Delete("/{id}", h.Customers.Delete)
			r.Patch("/{id}/loyalty", h.Customers.AdjustLoyalty)
		})

		r.Route("/staff", func(r chi.Router) {
			r.With(respCache.Handle(cache.RouteStaff)).Get("/", h.Staff.List)
			r.Post("/", h.Staff.Create)
			r.Get("/{id}", h.Staff.Get)
			r.Put("/{id}", h.Staff.Update)
			r.Delete("/{id}", h.Staff.Delete)
		})

		r.Route("/reports", func(r chi.Router) {
			r.With(respCache.Handle(cache.RouteSalesReport)).Get("/sales", h.Orders.SalesReport)
		})
	})

	return r
}
