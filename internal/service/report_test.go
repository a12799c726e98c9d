package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

func sampleRows() []model.ReportRow {
	return []model.ReportRow{
		{ReceiptSymbol: "MSFT34", UnderlyingSymbol: "MSFT", Company: "MICROSOFT", Sector: "Technology",
			Status: model.StatusExcellent, Score: 5.5, ReturnOnEquity: model.Resolved(32.41),
			NetMargin: model.Resolved(35.79), RevenueGrowth: model.Resolved(14.2), PERatio: model.Resolved(34.1),
			DividendYield: 0.72, MarketCapBillions: 3120.55, Alerts: []string{}},
		{ReceiptSymbol: "KOCH34", UnderlyingSymbol: "KO", Company: "COCA", Sector: "Consumer Defensive",
			Status: model.StatusGood, Score: 4, ReturnOnEquity: model.Resolved(40.1),
			NetMargin: model.Resolved(23.4), RevenueGrowth: model.Resolved(3.1), PERatio: model.Resolved(24),
			DividendYield: 2.9, MarketCapBillions: 301, Alerts: []string{}},
		{ReceiptSymbol: "NFLX34", UnderlyingSymbol: "NFLX", Company: "NETFLIX", Sector: "Communication Services",
			Status: model.StatusCaution, Score: 3, ReturnOnEquity: model.Unresolved(),
			NetMargin: model.Resolved(16), RevenueGrowth: model.Resolved(12), PERatio: model.Unresolved(),
			DividendYield: 0, MarketCapBillions: 290, Alerts: []string{model.AlertLowROE}},
		{ReceiptSymbol: "INTC34", UnderlyingSymbol: "INTC", Company: "INTEL", Sector: "Technology",
			Status: model.StatusWeak, Score: 1, ReturnOnEquity: model.Resolved(-1.5),
			NetMargin: model.Resolved(-3), RevenueGrowth: model.Resolved(-8), PERatio: model.Resolved(95),
			DividendYield: 1.2, MarketCapBillions: 90,
			Alerts: []string{model.AlertLowROE, model.AlertLowMargin, model.AlertRevenueDeclining, model.AlertPEElevated}},
	}
}

func TestReportFilter_Apply(t *testing.T) {
	rows := sampleRows()

	tests := []struct {
		name   string
		filter ReportFilter
		want   []string
	}{
		{"zero filter keeps everything", ReportFilter{}, []string{"MSFT34", "KOCH34", "NFLX34", "INTC34"}},
		{"status set", ReportFilter{Statuses: []model.Status{model.StatusExcellent, model.StatusGood}}, []string{"MSFT34", "KOCH34"}},
		{"min ROE drops undefined", ReportFilter{MinROE: 1}, []string{"MSFT34", "KOCH34"}},
		{"min dividend", ReportFilter{MinDividend: 1}, []string{"KOCH34", "INTC34"}},
		{"negative thresholds are ignored", ReportFilter{MinROE: -10, MinDividend: -1}, []string{"MSFT34", "KOCH34", "NFLX34", "INTC34"}},
		{"top by ROE", ReportFilter{Top: 2}, []string{"KOCH34", "MSFT34"}},
		{"combined", ReportFilter{Statuses: []model.Status{model.StatusWeak, model.StatusGood}, MinDividend: 2}, []string{"KOCH34"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, receiptsOf(tt.filter.Apply(rows)))
		})
	}

	assert.Equal(t, "MSFT34", rows[0].ReceiptSymbol, "input must not be reordered")
}

func TestTopByROE(t *testing.T) {
	got := TopByROE(sampleRows(), 10)
	assert.Equal(t, []string{"KOCH34", "MSFT34", "INTC34"}, receiptsOf(got))

	assert.Empty(t, TopByROE(nil, 10))
}

func TestSummarize(t *testing.T) {
	report := model.Report{RunID: "run-1", Successes: 4, Failures: 2}

	s := Summarize(report, sampleRows())
	assert.Equal(t, "run-1", s.RunID)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Failures)
	assert.Equal(t, map[model.Status]int{
		model.StatusExcellent: 1,
		model.StatusGood:      1,
		model.StatusCaution:   1,
		model.StatusWeak:      1,
	}, s.ByStatus)
	roe, ok := s.MeanROE.Get()
	require.True(t, ok)
	assert.Equal(t, 23.67, roe)

	empty := Summarize(report, nil)
	assert.False(t, empty.MeanROE.IsResolved())
	assert.Equal(t, 0, empty.ByStatus[model.StatusGood])
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, sampleRows()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "BDR,Ticker US,Company,Sector,Status,Score,ROE (%),Margin (%),Growth (%),P/E,Div Yield (%),Market Cap (B),Alerts", lines[0])
	assert.Equal(t, "MSFT34,MSFT,MICROSOFT,Technology,Excellent,5.5,32.41,35.79,14.20,34.10,0.72,3120.55,OK", lines[1])
	assert.Equal(t, "NFLX34,NFLX,NETFLIX,Communication Services,Caution,3.0,,16.00,12.00,,0.00,290.00,low ROE", lines[3])
	assert.Equal(t, `INTC34,INTC,INTEL,Technology,Weak,1.0,-1.50,-3.00,-8.00,95.00,1.20,90.00,"low ROE, low margin, revenue declining, P/E elevated"`, lines[4])
}
