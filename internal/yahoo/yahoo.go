package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

const (
	// DefaultTimeseriesURL is the host serving fundamentals-timeseries.
	DefaultTimeseriesURL = "https://query2.finance.yahoo.com"
	// DefaultSummaryURL is the host serving quoteSummary.
	DefaultSummaryURL = "https://query1.finance.yahoo.com"
	// DefaultUserAgent mimics a browser to avoid API blocking.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	historyYears = 10
)

// Options configures a FinanceClient. Zero fields take the defaults above.
type Options struct {
	TimeseriesURL string
	SummaryURL    string
	Timeout       time.Duration
	UserAgent     string
}

// FinanceClient fetches annual financial statements and the valuation snapshot
// for a US ticker from Yahoo Finance.
type FinanceClient struct {
	http          *resty.Client
	timeseriesURL string
	summaryURL    string
	now           func() time.Time
}

// NewFinanceClient creates a new Yahoo Finance client.
//
// Parameters:
//   - opts: Endpoint, timeout and header settings
//
// Returns:
//   - *FinanceClient: A new client instance ready for use
func NewFinanceClient(opts Options) *FinanceClient {
	if opts.TimeseriesURL == "" {
		opts.TimeseriesURL = DefaultTimeseriesURL
	}
	if opts.SummaryURL == "" {
		opts.SummaryURL = DefaultSummaryURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "application/json")

	return &FinanceClient{
		http:          client,
		timeseriesURL: strings.TrimRight(opts.TimeseriesURL, "/"),
		summaryURL:    strings.TrimRight(opts.SummaryURL, "/"),
		now:           time.Now,
	}
}

// FetchFundamentals retrieves the income statement, balance sheet and
// valuation snapshot for a US ticker.
//
// Both statements come from a single timeseries request. A symbol without
// statements is not an error here: the statements are returned empty and
// normalization rejects them downstream.
//
// Parameters:
//   - ctx: Context for cancellation
//   - symbol: US ticker (e.g., "AAPL")
//
// Returns:
//   - model.Fundamentals: Statements most recent first plus valuation
//   - error: If either request fails or a response cannot be parsed
func (c *FinanceClient) FetchFundamentals(ctx context.Context, symbol string) (model.Fundamentals, error) {
	body, err := c.QueryTimeseries(ctx, symbol, append(append([]string{}, IncomeTypes...), BalanceTypes...))
	if err != nil {
		return model.Fundamentals{}, err
	}

	income, err := ParseTimeseries(body, IncomeTypes)
	if err != nil {
		return model.Fundamentals{}, fmt.Errorf("failed to parse income statement for %s: %w", symbol, err)
	}
	balance, err := ParseTimeseries(body, BalanceTypes)
	if err != nil {
		return model.Fundamentals{}, fmt.Errorf("failed to parse balance sheet for %s: %w", symbol, err)
	}

	body, err = c.QuerySummary(ctx, symbol)
	if err != nil {
		return model.Fundamentals{}, err
	}
	valuation, name, err := ParseQuoteSummary(body)
	if err != nil {
		return model.Fundamentals{}, fmt.Errorf("failed to parse valuation for %s: %w", symbol, err)
	}

	return model.Fundamentals{
		Symbol:          symbol,
		CompanyName:     name,
		IncomeStatement: income,
		BalanceSheet:    balance,
		Valuation:       valuation,
	}, nil
}

// QueryTimeseries fetches the annual fundamentals-timeseries for a symbol,
// covering the last ten years.
//
// Parameters:
//   - ctx: Context for cancellation
//   - symbol: US ticker
//   - types: Timeseries type keys to request
//
// Returns:
//   - []byte: Raw JSON response
//   - error: If the HTTP request fails or Yahoo returns a non-success status
func (c *FinanceClient) QueryTimeseries(ctx context.Context, symbol string, types []string) ([]byte, error) {
	now := c.now()
	endpoint := fmt.Sprintf("%s/ws/fundamentals-timeseries/v1/finance/timeseries/%s", c.timeseriesURL, symbol)
	return c.get(ctx, endpoint, map[string]string{
		"symbol":  symbol,
		"type":    strings.Join(types, ","),
		"period1": fmt.Sprintf("%d", now.AddDate(-historyYears, 0, 0).Unix()),
		"period2": fmt.Sprintf("%d", now.Unix()),
	})
}

// QuerySummary fetches the quoteSummary modules that make up the valuation snapshot.
//
// Parameters:
//   - ctx: Context for cancellation
//   - symbol: US ticker
//
// Returns:
//   - []byte: Raw JSON response
//   - error: If the HTTP request fails or Yahoo returns a non-success status
func (c *FinanceClient) QuerySummary(ctx context.Context, symbol string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s", c.summaryURL, symbol)
	return c.get(ctx, endpoint, map[string]string{
		"modules": strings.Join(SummaryModules, ","),
	})
}

// get executes a GET request and maps HTTP failures to errors. A 404 wraps
// apperrors.ErrSymbolNotFound so callers can tell unknown tickers apart.
func (c *FinanceClient) get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", endpoint, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, endpoint)
	}
	if resp.IsError() {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    string(resp.Body()),
			Endpoint:   endpoint,
		}
	}

	return resp.Body(), nil
}
