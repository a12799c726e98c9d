package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ternarybob/arbor"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/BDR-Fundamentals-Backend/internal/api/middleware"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/config"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, screener *service.ScreenerService, cfg *config.Config, logger arbor.ILogger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		receiptHandler := handlers.NewReceiptHandler(screener)
		r.Get("/receipts", receiptHandler.Receipts)

		r.Route("/report", func(r chi.Router) {
			reportHandler := handlers.NewReportHandler(screener)
			r.Get("/", reportHandler.Report)
			r.Get("/csv", reportHandler.ReportCSV)
			r.Get("/outcomes", reportHandler.Outcomes)
			r.Post("/refresh", reportHandler.Refresh)
			r.With(custommiddleware.ValidateSymbolMiddleware).Get("/rows/{symbol}", reportHandler.ReportRow)
		})
	})

	return r
}
