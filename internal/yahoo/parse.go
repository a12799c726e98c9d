package yahoo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

// ParseTimeseries builds a statement from a fundamentals-timeseries response,
// keeping only the requested type keys. Rows are keyed by the as-of date and
// ordered most recent first; each type contributes a column named by Label.
//
// Null data points and points without a reported value are skipped, so a
// company that never reported a type simply lacks that column.
//
// Parameters:
//   - body: Raw JSON response
//   - types: Type keys to keep (e.g., IncomeTypes)
//
// Returns:
//   - model.Statement: Rows most recent first, empty when nothing matched
//   - error: If the body is not JSON or Yahoo reported an error
func ParseTimeseries(body []byte, types []string) (model.Statement, error) {
	if !gjson.ValidBytes(body) {
		return model.Statement{}, errors.New("invalid timeseries response")
	}
	if desc := gjson.GetBytes(body, "timeseries.error.description"); desc.Exists() {
		return model.Statement{}, fmt.Errorf("yahoo error: %s", desc.String())
	}

	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	rows := map[string]map[string]float64{}
	for _, result := range gjson.GetBytes(body, "timeseries.result").Array() {
		typeKey := result.Get("meta.type.0").String()
		if !wanted[typeKey] {
			continue
		}
		label := Label(typeKey)

		for _, point := range result.Get(typeKey).Array() {
			if point.Type == gjson.Null {
				continue
			}
			date := point.Get("asOfDate").String()
			raw := point.Get("reportedValue.raw")
			if date == "" || !raw.Exists() {
				continue
			}
			if rows[date] == nil {
				rows[date] = map[string]float64{}
			}
			rows[date][label] = raw.Float()
		}
	}

	dates := make([]string, 0, len(rows))
	for date := range rows {
		dates = append(dates, date)
	}
	// ISO dates sort lexically
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	stmt := model.Statement{Rows: make([]model.StatementRow, 0, len(dates))}
	for _, date := range dates {
		stmt.Rows = append(stmt.Rows, model.StatementRow{Period: date, Values: rows[date]})
	}
	return stmt, nil
}

// ParseQuoteSummary builds the valuation snapshot and company name from a
// quoteSummary response.
//
// Each figure is taken from the first source that carries a non-zero value:
//   - Price: currentPrice, regularMarketPrice, previousClose
//   - P/E: trailingPE, forwardPE
//   - Market cap: marketCap, enterpriseValue, else 0
//   - Sector: sector, industry, else "N/A"
//
// The dividend yield is converted from a fraction to percent and is 0 when absent.
//
// Returns:
//   - model.Valuation: The snapshot
//   - string: Company long name, short name, or empty
//   - error: If the body is not JSON, Yahoo reported an error, or there is no result
func ParseQuoteSummary(body []byte) (model.Valuation, string, error) {
	if !gjson.ValidBytes(body) {
		return model.Valuation{}, "", errors.New("invalid quoteSummary response")
	}
	if desc := gjson.GetBytes(body, "quoteSummary.error.description"); desc.Exists() {
		return model.Valuation{}, "", fmt.Errorf("yahoo error: %s", desc.String())
	}

	r := gjson.GetBytes(body, "quoteSummary.result.0")
	if !r.Exists() {
		return model.Valuation{}, "", apperrors.ErrSymbolNotFound
	}

	v := model.Valuation{
		Price: firstNonZero(r,
			"financialData.currentPrice.raw",
			"price.regularMarketPrice.raw",
			"summaryDetail.regularMarketPrice.raw",
			"summaryDetail.previousClose.raw",
		),
		PERatio: firstNonZero(r,
			"summaryDetail.trailingPE.raw",
			"summaryDetail.forwardPE.raw",
			"defaultKeyStatistics.forwardPE.raw",
		),
		PriceToBook: raw(r, "defaultKeyStatistics.priceToBook.raw"),
		MarketCap: firstNonZero(r,
			"price.marketCap.raw",
			"summaryDetail.marketCap.raw",
			"defaultKeyStatistics.enterpriseValue.raw",
		).Or(0),
		Sector: firstNonEmpty(r, "N/A", "assetProfile.sector", "assetProfile.industry"),
	}
	if dy, ok := firstNonZero(r, "summaryDetail.dividendYield.raw").Get(); ok {
		v.DividendYieldPct = dy * 100
	}

	return v, firstNonEmpty(r, "", "price.longName", "price.shortName"), nil
}

func raw(r gjson.Result, path string) model.Value {
	res := r.Get(path)
	if !res.Exists() || res.Type != gjson.Number {
		return model.Unresolved()
	}
	return model.Resolved(res.Float())
}

func firstNonZero(r gjson.Result, paths ...string) model.Value {
	for _, path := range paths {
		if v, ok := raw(r, path).Get(); ok && v != 0 {
			return model.Resolved(v)
		}
	}
	return model.Unresolved()
}

func firstNonEmpty(r gjson.Result, fallback string, paths ...string) string {
	for _, path := range paths {
		if s := r.Get(path).String(); s != "" {
			return s
		}
	}
	return fallback
}
