package service

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

// ReportFilter selects rows from a report. Zero fields do not filter.
type ReportFilter struct {
	Statuses    []model.Status
	MinROE      float64
	MinDividend float64
	// Top keeps the N rows with the highest mean ROE when positive.
	Top int
}

// Apply returns the rows matching every criterion, in report order. Minimum
// thresholds only apply when positive, and rows with undefined ROE never pass
// a ROE threshold.
func (f ReportFilter) Apply(rows []model.ReportRow) []model.ReportRow {
	statuses := make(map[model.Status]bool, len(f.Statuses))
	for _, s := range f.Statuses {
		statuses[s] = true
	}

	out := make([]model.ReportRow, 0, len(rows))
	for _, row := range rows {
		if len(statuses) > 0 && !statuses[row.Status] {
			continue
		}
		if f.MinROE > 0 {
			roe, ok := row.ReturnOnEquity.Get()
			if !ok || roe < f.MinROE {
				continue
			}
		}
		if f.MinDividend > 0 && row.DividendYield < f.MinDividend {
			continue
		}
		out = append(out, row)
	}

	if f.Top > 0 {
		return TopByROE(out, f.Top)
	}
	return out
}

// TopByROE returns up to n rows with the highest mean ROE, highest first.
// Rows with undefined ROE are left out. The input is not modified.
func TopByROE(rows []model.ReportRow, n int) []model.ReportRow {
	out := make([]model.ReportRow, 0, len(rows))
	for _, row := range rows {
		if row.ReturnOnEquity.IsResolved() {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].ReturnOnEquity.Get()
		b, _ := out[j].ReturnOnEquity.Get()
		return a > b
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Summarize counts rows per status and averages their defined mean ROE.
// Every status appears in ByStatus, with zero when absent.
func Summarize(report model.Report, rows []model.ReportRow) model.ReportSummary {
	summary := model.ReportSummary{
		RunID:      report.RunID,
		FinishedAt: report.FinishedAt,
		Total:      len(rows),
		ByStatus:   make(map[model.Status]int, len(model.ValidStatuses)),
		MeanROE:    model.Unresolved(),
		Successes:  report.Successes,
		Failures:   report.Failures,
	}
	for status := range model.ValidStatuses {
		summary.ByStatus[status] = 0
	}

	var sum float64
	var n int
	for _, row := range rows {
		summary.ByStatus[row.Status]++
		if roe, ok := row.ReturnOnEquity.Get(); ok {
			sum += roe
			n++
		}
	}
	if n > 0 {
		summary.MeanROE = roundValue(model.Resolved(sum/float64(n)), 2)
	}
	return summary
}

// Records flattens rows into fixed-column export records.
func Records(rows []model.ReportRow) []model.ReportRecord {
	records := make([]model.ReportRecord, len(rows))
	for i, row := range rows {
		records[i] = model.ReportRecord{
			Receipt:        row.ReceiptSymbol,
			Underlying:     row.UnderlyingSymbol,
			Company:        row.Company,
			Sector:         row.Sector,
			Status:         string(row.Status),
			Score:          strconv.FormatFloat(row.Score, 'f', 1, 64),
			ReturnOnEquity: formatValue(row.ReturnOnEquity),
			NetMargin:      formatValue(row.NetMargin),
			RevenueGrowth:  formatValue(row.RevenueGrowth),
			PERatio:        formatValue(row.PERatio),
			DividendYield:  strconv.FormatFloat(row.DividendYield, 'f', 2, 64),
			MarketCap:      strconv.FormatFloat(row.MarketCapBillions, 'f', 2, 64),
			Alerts:         row.AlertText(),
		}
	}
	return records
}

// ExportCSV writes rows as CSV with a header line.
func ExportCSV(w io.Writer, rows []model.ReportRow) error {
	if err := gocsv.Marshal(Records(rows), w); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToExportReport, err)
	}
	return nil
}

func formatValue(v model.Value) string {
	f, ok := v.Get()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
