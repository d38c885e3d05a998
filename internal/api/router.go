package api

import (
	"log/slog"
	"net/http"
	"time"

	"loan-processing-api/internal/api/handler"
	mw "loan-processing-api/internal/api/middleware"
	"loan-processing-api/internal/config"
	"loan-processing-api/internal/domain/customer"
	"loan-processing-api/internal/domain/employment"
	"loan-processing-api/internal/domain/loan"

	_ "loan-processing-api/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Services struct {
	Customer   customer.CustomerService
	Employment employment.EmploymentService
	Loan       loan.LoanService
}

func SetupRouter(services Services, db handler.Pinger, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupHealthRoutes(router, db, cfg, logger)
	setupApplicationRoutes(router, services, logger)
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupHealthRoutes(router *chi.Mux, db handler.Pinger, cfg *config.Config, logger *slog.Logger) {
	h := handler.NewHealthHandler(db, cfg.Environment, logger)
	router.Get("/", h.Root)
	router.Get("/health", h.Check)
}

func setupApplicationRoutes(router *chi.Mux, services Services, logger *slog.Logger) {
	customerHandler := handler.NewCustomerHandler(services.Customer, logger)
	employmentHandler := handler.NewEmploymentHandler(services.Employment, logger)
	loanHandler := handler.NewLoanHandler(services.Loan, logger)
	logger.Info("Route Config")

	router.Route("/api", func(r chi.Router) {
		r.Post("/start-application/personal-details", customerHandler.CreatePersonalDetails)

		r.Route("/users", func(r chi.Router) {
			r.Get("/search", customerHandler.SearchCustomers)
			r.Route("/{customerID}", func(r chi.Router) {
				r.Get("/summary", customerHandler.GetCustomerSummary)
				r.Post("/employment-details", employmentHandler.AddEmploymentDetails)
				r.Post("/loan-info", loanHandler.AddLoanInfo)
			})
		})
	})
}
