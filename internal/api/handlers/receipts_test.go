package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/testutil"
)

func TestReceiptHandler_Receipts(t *testing.T) {
	t.Run("returns resolved receipts", func(t *testing.T) {
		s := newTestScreener(t, &testutil.MockListingProvider{Listings: testutil.SampleListings()}, testutil.NewMockFundamentalsProvider())
		handler := NewReceiptHandler(s)

		req := httptest.NewRequest(http.MethodGet, "/api/receipts", nil)
		w := httptest.NewRecorder()

		handler.Receipts(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Receipt
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 4 {
			t.Fatalf("Expected 4 receipts, got %d", len(response))
		}
		if response[1].ReceiptSymbol != "VISA34" || response[1].UnderlyingSymbol != "V" {
			t.Errorf("Expected VISA34 -> V, got %s -> %s", response[1].ReceiptSymbol, response[1].UnderlyingSymbol)
		}
	})

	t.Run("returns 502 when listing fails", func(t *testing.T) {
		listings := &testutil.MockListingProvider{MockError: errors.New("upstream down")}
		s := newTestScreener(t, listings, testutil.NewMockFundamentalsProvider())
		handler := NewReceiptHandler(s)

		req := httptest.NewRequest(http.MethodGet, "/api/receipts", nil)
		w := httptest.NewRecorder()

		handler.Receipts(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected 502, got %d", w.Code)
		}
	})
}
