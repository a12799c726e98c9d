package model

import (
	"strings"
	"time"
)

// Status is the qualitative verdict assigned by the classifier.
type Status string

// Status values, best first.
const (
	StatusExcellent Status = "Excellent"
	StatusGood      Status = "Good"
	StatusCaution   Status = "Caution"
	StatusWeak      Status = "Weak"
)

// ValidStatuses maps each known status for quick validation of user input.
var ValidStatuses = map[Status]bool{
	StatusExcellent: true,
	StatusGood:      true,
	StatusCaution:   true,
	StatusWeak:      true,
}

// ParseStatus matches a status name case-insensitively.
func ParseStatus(s string) (Status, bool) {
	for status := range ValidStatuses {
		if strings.EqualFold(string(status), strings.TrimSpace(s)) {
			return status, true
		}
	}
	return "", false
}

// Alert tags raised by the classifier.
const (
	AlertLowROE           = "low ROE"
	AlertLowMargin        = "low margin"
	AlertRevenueDeclining = "revenue declining"
	AlertPEElevated       = "P/E elevated"
	AlertHighLeverage     = "high leverage"
)

// Classification is the score, status and advisory alerts for one symbol.
type Classification struct {
	Score      float64  `json:"score"`
	Percentage float64  `json:"percentage"`
	Status     Status   `json:"status"`
	Alerts     []string `json:"alerts"`
}

// ReportRow is one successfully analyzed receipt. Rows are built once per run
// and never mutated afterwards.
type ReportRow struct {
	ReceiptSymbol     string         `json:"receiptSymbol"`
	UnderlyingSymbol  string         `json:"underlyingSymbol"`
	Company           string         `json:"company"`
	Sector            string         `json:"sector"`
	Status            Status         `json:"status"`
	Score             float64        `json:"score"`
	ReturnOnEquity    Value          `json:"returnOnEquity"`
	ReturnOnAssets    Value          `json:"returnOnAssets"`
	NetMargin         Value          `json:"netMargin"`
	RevenueGrowth     Value          `json:"revenueGrowth"`
	DebtToEquity      Value          `json:"debtToEquity"`
	Price             Value          `json:"price"`
	PERatio           Value          `json:"peRatio"`
	PriceToBook       Value          `json:"priceToBook"`
	DividendYield     float64        `json:"dividendYield"`
	MarketCapBillions float64        `json:"marketCapBillions"`
	Alerts            []string       `json:"alerts"`
	Periods           []IndicatorSet `json:"periods"`
}

// AlertText joins the alerts for flat output, "OK" when there are none.
func (r ReportRow) AlertText() string {
	if len(r.Alerts) == 0 {
		return "OK"
	}
	return strings.Join(r.Alerts, ", ")
}

// SymbolOutcome records what happened to one receipt during a run.
type SymbolOutcome struct {
	ReceiptSymbol    string `json:"receiptSymbol"`
	UnderlyingSymbol string `json:"underlyingSymbol,omitempty"`
	OK               bool   `json:"ok"`
	Kind             string `json:"kind,omitempty"`
	Detail           string `json:"detail,omitempty"`
	Periods          int    `json:"periods,omitempty"`
}

// Report is the ranked result of one analysis run.
type Report struct {
	RunID          string          `json:"runId"`
	StartedAt      time.Time       `json:"startedAt"`
	FinishedAt     time.Time       `json:"finishedAt"`
	Rows           []ReportRow     `json:"rows"`
	Successes      int             `json:"successes"`
	Failures       int             `json:"failures"`
	Skipped        int             `json:"skipped"`
	FailuresByKind map[string]int  `json:"failuresByKind"`
	Outcomes       []SymbolOutcome `json:"outcomes"`
}

// ReportSummary is the headline view of a report.
type ReportSummary struct {
	RunID      string         `json:"runId"`
	FinishedAt time.Time      `json:"finishedAt"`
	Total      int            `json:"total"`
	ByStatus   map[Status]int `json:"byStatus"`
	MeanROE    Value          `json:"meanRoe"`
	Successes  int            `json:"successes"`
	Failures   int            `json:"failures"`
}

// ReportRecord is the flat, fixed-column export form of a ReportRow.
// Undefined figures are written as empty cells.
type ReportRecord struct {
	Receipt        string `csv:"BDR"`
	Underlying     string `csv:"Ticker US"`
	Company        string `csv:"Company"`
	Sector         string `csv:"Sector"`
	Status         string `csv:"Status"`
	Score          string `csv:"Score"`
	ReturnOnEquity string `csv:"ROE (%)"`
	NetMargin      string `csv:"Margin (%)"`
	RevenueGrowth  string `csv:"Growth (%)"`
	PERatio        string `csv:"P/E"`
	DividendYield  string `csv:"Div Yield (%)"`
	MarketCap      string `csv:"Market Cap (B)"`
	Alerts         string `csv:"Alerts"`
}
