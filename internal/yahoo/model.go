package yahoo

import (
	"fmt"
	"strings"
	"unicode"
)

// IncomeTypes are the annual timeseries requested for the income statement.
var IncomeTypes = []string{
	"annualNetIncome",
	"annualNetIncomeCommonStockholders",
	"annualTotalRevenue",
}

// BalanceTypes are the annual timeseries requested for the balance sheet.
var BalanceTypes = []string{
	"annualStockholdersEquity",
	"annualTotalEquityGrossMinorityInterest",
	"annualTotalAssets",
	"annualTotalDebt",
	"annualLongTermDebt",
}

// SummaryModules are the quoteSummary modules that make up the valuation snapshot.
var SummaryModules = []string{
	"price",
	"summaryDetail",
	"defaultKeyStatistics",
	"financialData",
	"assetProfile",
}

// APIError represents a non-success HTTP response from Yahoo Finance.
//
// Fields:
//   - StatusCode: HTTP status returned by Yahoo
//   - Message: Response body, or the error description Yahoo embedded in it
//   - Endpoint: Path that was queried
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Label converts a timeseries type key into the display label Yahoo uses on
// its statement pages, which is also the label the statement aliases expect.
//
// The period prefix (annual, quarterly, trailing) is dropped and a space is
// inserted at every lower-to-upper case boundary:
//
//	annualNetIncome          -> Net Income
//	annualStockholdersEquity -> Stockholders Equity
//	annualTotalDebt          -> Total Debt
func Label(typeKey string) string {
	for _, prefix := range []string{"annual", "quarterly", "trailing"} {
		if strings.HasPrefix(typeKey, prefix) {
			typeKey = typeKey[len(prefix):]
			break
		}
	}

	var b strings.Builder
	runes := []rune(typeKey)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
