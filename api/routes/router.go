package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jvboschetti/acai-storefront/api/controllers"
	"github.com/jvboschetti/acai-storefront/api/middleware"
	"github.com/jvboschetti/acai-storefront/internal/catalog"
	checkoutsvc "github.com/jvboschetti/acai-storefront/internal/checkout"
	internalorders "github.com/jvboschetti/acai-storefront/internal/orders"
	"github.com/jvboschetti/acai-storefront/internal/realtime"
	"github.com/jvboschetti/acai-storefront/pkg/config"
	"github.com/jvboschetti/acai-storefront/pkg/db"
	"github.com/jvboschetti/acai-storefront/pkg/logger"
	pkgredis "github.com/jvboschetti/acai-storefront/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    pkgredis.Pinger
	Catalog  *catalog.Catalog
	Checkout *checkoutsvc.Service
	Orders   *internalorders.Service
	Hub      *realtime.Hub
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
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", controllers.Catalog(deps.Catalog))

		r.Route("/checkout/sessions", func(r chi.Router) {
			r.Post("/", controllers.CheckoutCreateSession(deps.Checkout, logg))

			r.Route("/{sessionId}", func(r chi.Router) {
				r.Get("/", controllers.CheckoutGetSession(deps.Checkout, logg))
				r.Post("/lines", controllers.CheckoutAddLine(deps.Checkout, logg))
				r.Patch("/lines/{index}", controllers.CheckoutUpdateLine(deps.Checkout, logg))
				r.Delete("/lines/{index}", controllers.CheckoutRemoveLine(deps.Checkout, logg))
				r.Post("/begin-checkout", controllers.CheckoutBegin(deps.Checkout, logg))
				r.Post("/customer-info", controllers.CheckoutCustomerInfo(deps.Checkout, logg))
				r.Post("/payment-method", controllers.CheckoutPaymentMethod(deps.Checkout, logg))
				r.Post("/back", controllers.CheckoutBack(deps.Checkout, logg))
				r.Post("/confirm", controllers.CheckoutConfirm(deps.Checkout, logg))
				r.Get("/pix", controllers.CheckoutPix(deps.Checkout, logg))
				r.Get("/pix/qr.png", controllers.CheckoutPixQR(deps.Checkout, logg))
			})
		})

		r.Route("/admin/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminListOrders(deps.Orders, logg))
			r.Post("/{orderId}/status", controllers.AdminUpdateOrderStatus(deps.Orders, logg))
			r.Get("/ws", controllers.AdminOrdersFeed(deps.Hub, logg))
		})
	})

	return r
}
