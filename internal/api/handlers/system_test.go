package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/service"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/testutil"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/version"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("returns healthy status before the first run", func(t *testing.T) {
		s := newTestScreener(t, &testutil.MockListingProvider{}, testutil.NewMockFundamentalsProvider())
		handler := NewSystemHandler(service.NewSystemService(s, false))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response HealthResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Status != "healthy" {
			t.Errorf("Expected status 'healthy', got '%s'", response.Status)
		}
		if response.Error != "" {
			t.Errorf("Expected no error, got '%s'", response.Error)
		}
	})

	t.Run("returns 503 when the last run failed", func(t *testing.T) {
		listings := &testutil.MockListingProvider{MockError: apperrors.ErrFailedToRetrieveListings}
		s := newTestScreener(t, listings, testutil.NewMockFundamentalsProvider())
		//nolint:errcheck // The failure is what is under test
		s.Refresh(context.Background())
		handler := NewSystemHandler(service.NewSystemService(s, false))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d", w.Code)
		}

		var response HealthResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Status != "unhealthy" {
			t.Errorf("Expected status 'unhealthy', got '%s'", response.Status)
		}
		if !strings.Contains(response.Error, apperrors.ErrFailedToRetrieveListings.Error()) {
			t.Errorf("Expected error to mention listings, got '%s'", response.Error)
		}
	})
}

func TestSystemHandler_Version(t *testing.T) {
	s := newTestScreener(t, &testutil.MockListingProvider{}, testutil.NewMockFundamentalsProvider())
	handler := NewSystemHandler(service.NewSystemService(s, true))

	req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
	w := httptest.NewRecorder()

	handler.Version(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var response model.VersionInfo
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.AppVersion != version.Version {
		t.Errorf("Expected version %q, got %q", version.Version, response.AppVersion)
	}
	if !response.Features["scheduled_refresh"] {
		t.Error("Expected scheduled_refresh feature to be enabled")
	}
	if !response.Features["csv_export"] {
		t.Error("Expected csv_export feature to be enabled")
	}
}
