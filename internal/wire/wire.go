package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring builds the booking API: services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	gateway usecase.PaymentGateway,
	mail usecase.Mailer,
	config *utils.Config,
	registry *prometheus.Registry,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, gateway, mail, config, logger)
	handler := adaptor.NewHandler(service, logger)
	tokens := utils.NewTokenIssuer(config.JWT)

	r := newRouter("booking-api", config, registry, logger)

	r.Group(func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))

		wireBooking(r, handler.Booking)
		wirePayment(r, handler.Payment)
		wireSupport(r, handler.Support)
		wireHotel(r, handler.Hotel)
		wireAccount(r, handler.Account, tokens, logger)
	})

	return &App{Router: r}
}

// AuthWiring builds the auth microservice router.
func AuthWiring(
	repo *repository.AuthRepository,
	config *utils.Config,
	registry *prometheus.Registry,
	logger *zap.Logger,
) *App {
	tokens := utils.NewTokenIssuer(config.JWT)
	service := usecase.NewAuthService(repo, tokens, logger)
	handler := adaptor.NewAuthHandler(service, logger)

	r := newRouter("auth", config, registry, logger)

	r.Group(func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))

		wireAuth(r, handler, tokens, logger)
	})

	return &App{Router: r}
}

// newRouter applies the global middleware plus /health and /metrics.
func newRouter(service string, config *utils.Config, registry *prometheus.Registry, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins()))
	r.Use(middleware.Metrics(middleware.NewHTTPMetrics(registry, service)))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, map[string]string{"status": "ok", "service": service})
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
