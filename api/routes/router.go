package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/themosthappypiano/thewoofingoven/api/controllers"
	"github.com/themosthappypiano/thewoofingoven/api/middleware"
	cartpkg "github.com/themosthappypiano/thewoofingoven/internal/cart"
	"github.com/themosthappypiano/thewoofingoven/internal/catalog"
	checkoutsvc "github.com/themosthappypiano/thewoofingoven/internal/checkout"
	"github.com/themosthappypiano/thewoofingoven/internal/contact"
	"github.com/themosthappypiano/thewoofingoven/internal/orders"
	"github.com/themosthappypiano/thewoofingoven/internal/reviews"
	"github.com/themosthappypiano/thewoofingoven/pkg/config"
	pkgdb "github.com/themosthappypiano/thewoofingoven/pkg/db"
	"github.com/themosthappypiano/thewoofingoven/pkg/logger"
	pkgredis "github.com/themosthappypiano/thewoofingoven/pkg/redis"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       pkgdb.Pinger
	Redis    *pkgredis.Client
	Catalog  *catalog.Repository
	Cart     *cartpkg.SessionStore
	Checkout *checkoutsvc.Service
	Orders   *orders.Repository
	Reviews  *reviews.Repository
	Contact  *contact.Repository
	Registry *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Catalog, logg))
			r.Get("/{id}", controllers.GetProduct(deps.Catalog, logg))
			r.Get("/{id}/options", controllers.GetProductOptions(deps.Catalog, logg))
		})
		r.Get("/variants/{id}", controllers.GetVariant(deps.Catalog, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.Cart, logg))
			r.Delete("/", controllers.ClearCart(deps.Cart, logg))
			r.Post("/items", controllers.AddCartItem(deps.Cart, deps.Catalog, logg))
			r.Patch("/items/{variantID}", controllers.UpdateCartItem(deps.Cart, logg))
			r.Delete("/items/{variantID}", controllers.RemoveCartItem(deps.Cart, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Use(middleware.Idempotency(deps.Redis, cfg.Checkout.IdempotencyTTL, logg))
			r.Post("/create-session", controllers.CreateCheckoutSession(deps.Checkout, logg))
			r.Post("/shipping-rates", controllers.ShippingRates(deps.Checkout, logg))
		})

		r.Get("/orders/{id}", controllers.GetOrder(deps.Orders, logg))
		r.Get("/reviews", controllers.ListReviews(deps.Reviews, logg))
		r.Post("/contact", controllers.SubmitContactMessage(deps.Contact, logg))
	})

	return r
}
