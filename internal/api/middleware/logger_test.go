package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/api/middleware"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/logging"
)

func TestLogger(t *testing.T) {
	t.Run("passes status through", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		w := httptest.NewRecorder()
		middleware.Logger(logging.NewSilent())(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report", nil))

		if w.Code != http.StatusTeapot {
			t.Errorf("Expected 418, got %d", w.Code)
		}
	})

	t.Run("defaults to 200 when handler writes body only", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		w := httptest.NewRecorder()
		middleware.Logger(logging.NewSilent())(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != http.StatusOK || w.Body.String() != "ok" {
			t.Errorf("Expected 200 ok, got %d %q", w.Code, w.Body.String())
		}
	})
}
