package handlers

import (
	"net/http"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/api/response"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/service"
)

// ReceiptHandler serves the receipt-to-underlying mapping.
type ReceiptHandler struct {
	screener *service.ScreenerService
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(screener *service.ScreenerService) *ReceiptHandler {
	return &ReceiptHandler{screener: screener}
}

// Receipts lists the currently traded receipts with their underlying symbols.
//
// Endpoint: GET /api/receipts
// Response: 200 OK with []model.Receipt
// Error: 502 Bad Gateway if the listing provider fails
func (h *ReceiptHandler) Receipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.screener.Receipts(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, "failed to retrieve receipts", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, receipts)
}
