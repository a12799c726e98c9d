package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
)

// TimeseriesPoint is one annual data point in a mock timeseries response.
type TimeseriesPoint struct {
	Date  string
	Value float64
}

// YahooTimeseriesJSON builds a fundamentals-timeseries response body with one
// result per type key. A nil point is emitted as JSON null, the way Yahoo pads
// years a company did not report.
func YahooTimeseriesJSON(series map[string][]*TimeseriesPoint) []byte {
	keys := make([]string, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	results := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		points := make([]any, 0, len(series[key]))
		for _, p := range series[key] {
			if p == nil {
				points = append(points, nil)
				continue
			}
			points = append(points, map[string]any{
				"asOfDate":     p.Date,
				"periodType":   "12M",
				"currencyCode": "USD",
				"reportedValue": map[string]any{
					"raw": p.Value,
				},
			})
		}
		results = append(results, map[string]any{
			"meta": map[string]any{
				"symbol": []string{"MOCK"},
				"type":   []string{key},
			},
			key: points,
		})
	}

	body, _ := json.Marshal(map[string]any{
		"timeseries": map[string]any{"result": results, "error": nil},
	})
	return body
}

// YahooSummaryJSON builds a quoteSummary response body from module name to
// module content. Numeric leaves should be wrapped with Raw.
func YahooSummaryJSON(modules map[string]map[string]any) []byte {
	body, _ := json.Marshal(map[string]any{
		"quoteSummary": map[string]any{
			"result": []any{modules},
			"error":  nil,
		},
	})
	return body
}

// Raw wraps a number the way Yahoo formats values ({"raw": v}).
func Raw(v float64) map[string]any {
	return map[string]any{"raw": v}
}

// DefaultYahooSummary returns a complete valuation snapshot for "Mock Corp".
func DefaultYahooSummary() map[string]map[string]any {
	return map[string]map[string]any{
		"price": {
			"longName":           "Mock Corp",
			"shortName":          "Mock",
			"regularMarketPrice": Raw(101),
			"marketCap":          Raw(2.5e12),
		},
		"summaryDetail": {
			"trailingPE":    Raw(28.5),
			"forwardPE":     Raw(25),
			"dividendYield": Raw(0.0052),
			"previousClose": Raw(99),
		},
		"defaultKeyStatistics": {
			"priceToBook":     Raw(45.2),
			"enterpriseValue": Raw(2.6e12),
		},
		"financialData": {
			"currentPrice": Raw(100.5),
		},
		"assetProfile": {
			"sector":   "Technology",
			"industry": "Consumer Electronics",
		},
	}
}

// MockYahooServer serves canned Yahoo responses over HTTP and counts requests
// per endpoint.
type MockYahooServer struct {
	*httptest.Server

	Timeseries []byte
	Summary    []byte
	// Status, when non-zero, is returned by every endpoint instead of the body.
	Status atomic.Int32

	TimeseriesCalls atomic.Int32
	SummaryCalls    atomic.Int32
	LastQuery       atomic.Value
}

// NewMockYahooServer starts a server that answers both the timeseries and
// quoteSummary endpoints. It is closed when the test ends.
func NewMockYahooServer(t *testing.T, timeseries, summary []byte) *MockYahooServer {
	t.Helper()

	m := &MockYahooServer{Timeseries: timeseries, Summary: summary}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		switch {
		case strings.HasPrefix(r.URL.Path, "/ws/fundamentals-timeseries/"):
			m.TimeseriesCalls.Add(1)
			body = m.Timeseries
		case strings.HasPrefix(r.URL.Path, "/v10/finance/quoteSummary/"):
			m.SummaryCalls.Add(1)
			body = m.Summary
		default:
			http.NotFound(w, r)
			return
		}
		m.LastQuery.Store(r.URL.Query())

		if status := m.Status.Load(); status != 0 {
			w.WriteHeader(int(status))
			_, _ = w.Write([]byte(`{"error":"mock"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(m.Close)

	return m
}
