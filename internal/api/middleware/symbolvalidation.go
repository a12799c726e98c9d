// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/api/response"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/validation"
)

// ValidateSymbolMiddleware validates that the symbol URL parameter is present
// and looks like a receipt code. Returns 400 Bad Request otherwise.
//
// Example usage in router:
//
//	r.Route("/rows/{symbol}", func(r chi.Router) {
//	    r.Use(middleware.ValidateSymbolMiddleware)
//	    r.Get("/", handler.ReportRow)
//	})
func ValidateSymbolMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")

		if symbol == "" {
			response.RespondError(w, http.StatusBadRequest, "receipt symbol is required", "")
			return
		}

		if err := validation.ValidateSymbol(symbol); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid receipt symbol", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
