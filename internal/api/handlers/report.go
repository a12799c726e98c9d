package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/api/request"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/api/response"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/service"
)

// ReportHandler serves the latest analysis report and triggers refreshes.
type ReportHandler struct {
	screener *service.ScreenerService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(screener *service.ScreenerService) *ReportHandler {
	return &ReportHandler{screener: screener}
}

// ReportResponse is the filtered view of the latest report.
type ReportResponse struct {
	Summary        model.ReportSummary `json:"summary"`
	Rows           []model.ReportRow   `json:"rows"`
	Skipped        int                 `json:"skipped"`
	FailuresByKind map[string]int      `json:"failuresByKind"`
}

// RefreshResponse acknowledges a background refresh.
type RefreshResponse struct {
	Status string `json:"status"`
}

// Report returns the latest report filtered by the query parameters. The
// summary describes the filtered rows.
//
// Endpoint: GET /api/report?status=Excellent,Good&min_roe=10&min_dividend=1&top=10
// Response: 200 OK with ReportResponse
// Error: 400 Bad Request for invalid filters, 404 Not Found before the first run
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, rows, ok := h.filteredReport(w, r)
	if !ok {
		return
	}

	response.RespondJSON(w, http.StatusOK, ReportResponse{
		Summary:        service.Summarize(report, rows),
		Rows:           rows,
		Skipped:        report.Skipped,
		FailuresByKind: report.FailuresByKind,
	})
}

// ReportCSV exports the filtered rows of the latest report as CSV.
//
// Endpoint: GET /api/report/csv
// Response: 200 OK with text/csv attachment named bdrs_YYYYMMDD_HHMM.csv
// Error: 400 Bad Request for invalid filters, 404 Not Found before the first run
func (h *ReportHandler) ReportCSV(w http.ResponseWriter, r *http.Request) {
	report, rows, ok := h.filteredReport(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := service.ExportCSV(&buf, rows); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToExportReport.Error(), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", CSVFilename(report)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// CSVFilename names an export after the time its report finished.
func CSVFilename(report model.Report) string {
	return fmt.Sprintf("bdrs_%s.csv", report.FinishedAt.Format("20060102_1504"))
}

// Outcomes returns what happened to every receipt in the latest run.
//
// Endpoint: GET /api/report/outcomes
// Response: 200 OK with []model.SymbolOutcome
// Error: 404 Not Found before the first run
func (h *ReportHandler) Outcomes(w http.ResponseWriter, _ *http.Request) {
	report, err := h.screener.Latest()
	if err != nil {
		respondReportError(w, err)
		return
	}
	response.RespondJSON(w, http.StatusOK, report.Outcomes)
}

// ReportRow returns one row of the latest report, including per-period indicators.
//
// Endpoint: GET /api/report/rows/{symbol}
// Response: 200 OK with model.ReportRow
// Error: 404 Not Found when there is no report or the receipt is not in it
func (h *ReportHandler) ReportRow(w http.ResponseWriter, r *http.Request) {
	report, err := h.screener.Latest()
	if err != nil {
		respondReportError(w, err)
		return
	}

	symbol := strings.ToUpper(chi.URLParam(r, "symbol"))
	for _, row := range report.Rows {
		if row.ReceiptSymbol == symbol {
			response.RespondJSON(w, http.StatusOK, row)
			return
		}
	}
	response.RespondError(w, http.StatusNotFound, apperrors.ErrSymbolNotFound.Error(), symbol)
}

// Refresh runs a new analysis. With wait=true (the default) it blocks until
// the run finishes and returns its summary; with wait=false it starts the run
// in the background.
//
// Endpoint: POST /api/report/refresh?wait=false
// Response: 200 OK with model.ReportSummary, or 202 Accepted when not waiting
// Error: 409 Conflict when not waiting and a run is in progress,
// 502 Bad Gateway when the listing provider fails
func (h *ReportHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	wait, err := request.ParseWait(r.URL.Query().Get("wait"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid refresh request", err.Error())
		return
	}

	if !wait {
		if err := h.screener.RefreshAsync(); err != nil {
			respondReportError(w, err)
			return
		}
		response.RespondJSON(w, http.StatusAccepted, RefreshResponse{Status: "started"})
		return
	}

	report, err := h.screener.Refresh(r.Context())
	if err != nil {
		respondReportError(w, err)
		return
	}
	response.RespondJSON(w, http.StatusOK, service.Summarize(report, report.Rows))
}

func (h *ReportHandler) filteredReport(w http.ResponseWriter, r *http.Request) (model.Report, []model.ReportRow, bool) {
	q := r.URL.Query()
	filter, err := request.ParseReportFilters(q.Get("status"), q.Get("min_roe"), q.Get("min_dividend"), q.Get("top"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidFilter.Error(), err.Error())
		return model.Report{}, nil, false
	}

	report, err := h.screener.Latest()
	if err != nil {
		respondReportError(w, err)
		return model.Report{}, nil, false
	}
	return report, filter.Apply(report.Rows), true
}

func respondReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoReport):
		response.RespondError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, apperrors.ErrRunInProgress):
		response.RespondError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, apperrors.ErrFailedToRetrieveListings):
		response.RespondError(w, http.StatusBadGateway, "failed to refresh report", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		response.RespondError(w, http.StatusServiceUnavailable, "analysis run interrupted", err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, "failed to refresh report", err.Error())
	}
}
