package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/testutil"
)

func newTestClient(server *testutil.MockYahooServer) *FinanceClient {
	c := NewFinanceClient(Options{
		TimeseriesURL: server.URL,
		SummaryURL:    server.URL + "/",
		Timeout:       5 * time.Second,
	})
	c.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return c
}

func sampleTimeseries() []byte {
	return testutil.YahooTimeseriesJSON(map[string][]*testutil.TimeseriesPoint{
		"annualNetIncome": {
			{Date: "2023-12-31", Value: 10},
			{Date: "2024-12-31", Value: 12},
		},
		"annualTotalRevenue": {
			{Date: "2023-12-31", Value: 100},
			{Date: "2024-12-31", Value: 110},
		},
		"annualStockholdersEquity": {
			{Date: "2023-12-31", Value: 50},
			{Date: "2024-12-31", Value: 60},
		},
		"annualTotalAssets": {
			{Date: "2023-12-31", Value: 200},
			{Date: "2024-12-31", Value: 220},
		},
	})
}

// TestFinanceClient_FetchFundamentals tests the full fetch against a mock Yahoo server.
//
// WHY: Both statements come from one timeseries request, so the split by type
// must put every line item on the right statement.
func TestFinanceClient_FetchFundamentals(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := testutil.NewMockYahooServer(t, sampleTimeseries(), testutil.YahooSummaryJSON(testutil.DefaultYahooSummary()))
		c := newTestClient(server)

		f, err := c.FetchFundamentals(context.Background(), "MOCK")
		require.NoError(t, err)

		assert.Equal(t, "MOCK", f.Symbol)
		assert.Equal(t, "Mock Corp", f.CompanyName)
		require.Len(t, f.IncomeStatement.Rows, 2)
		require.Len(t, f.BalanceSheet.Rows, 2)
		assert.Equal(t, "2024-12-31", f.IncomeStatement.Rows[0].Period)
		assert.Equal(t, 12.0, f.IncomeStatement.Rows[0].Values["Net Income"])
		assert.Equal(t, 220.0, f.BalanceSheet.Rows[0].Values["Total Assets"])
		assert.False(t, f.IncomeStatement.HasColumn("Total Assets"))
		assert.Equal(t, "Technology", f.Valuation.Sector)

		assert.Equal(t, int32(1), server.TimeseriesCalls.Load())
		assert.Equal(t, int32(1), server.SummaryCalls.Load())
	})

	t.Run("no statements is not an error", func(t *testing.T) {
		server := testutil.NewMockYahooServer(t,
			testutil.YahooTimeseriesJSON(map[string][]*testutil.TimeseriesPoint{}),
			testutil.YahooSummaryJSON(testutil.DefaultYahooSummary()))
		c := newTestClient(server)

		f, err := c.FetchFundamentals(context.Background(), "MOCK")
		require.NoError(t, err)
		assert.True(t, f.IncomeStatement.IsEmpty())
		assert.True(t, f.BalanceSheet.IsEmpty())
	})

	t.Run("not found", func(t *testing.T) {
		server := testutil.NewMockYahooServer(t, sampleTimeseries(), nil)
		server.Status.Store(http.StatusNotFound)
		c := newTestClient(server)

		_, err := c.FetchFundamentals(context.Background(), "ZZZZ")
		assert.ErrorIs(t, err, apperrors.ErrSymbolNotFound)
		assert.Equal(t, int32(0), server.SummaryCalls.Load())
	})

	t.Run("server error", func(t *testing.T) {
		server := testutil.NewMockYahooServer(t, sampleTimeseries(), nil)
		server.Status.Store(http.StatusTooManyRequests)
		c := newTestClient(server)

		_, err := c.FetchFundamentals(context.Background(), "MOCK")
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := testutil.NewMockYahooServer(t, sampleTimeseries(), nil)
		c := newTestClient(server)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.FetchFundamentals(ctx, "MOCK")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFinanceClient_QueryTimeseries(t *testing.T) {
	server := testutil.NewMockYahooServer(t, sampleTimeseries(), nil)
	c := newTestClient(server)

	_, err := c.QueryTimeseries(context.Background(), "MOCK", IncomeTypes)
	require.NoError(t, err)

	q, ok := server.LastQuery.Load().(url.Values)
	require.True(t, ok)
	assert.Equal(t, "MOCK", q.Get("symbol"))
	assert.Equal(t, "annualNetIncome,annualNetIncomeCommonStockholders,annualTotalRevenue", q.Get("type"))
	assert.Equal(t, "1433116800", q.Get("period1"))
	assert.Equal(t, "1748736000", q.Get("period2"))
}

func TestFinanceClient_QuerySummary(t *testing.T) {
	server := testutil.NewMockYahooServer(t, nil, testutil.YahooSummaryJSON(testutil.DefaultYahooSummary()))
	c := newTestClient(server)

	_, err := c.QuerySummary(context.Background(), "MOCK")
	require.NoError(t, err)

	q, ok := server.LastQuery.Load().(url.Values)
	require.True(t, ok)
	assert.Equal(t, "price,summaryDetail,defaultKeyStatistics,financialData,assetProfile", q.Get("modules"))
}
