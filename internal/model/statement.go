package model

// StatementRow is one reporting period of a financial statement. Line item
// names are whatever the data source reported, so they vary between sources
// and between companies.
type StatementRow struct {
	Period string
	Values map[string]float64
}

// Statement is an ordered sequence of rows, most recent period first.
type Statement struct {
	Rows []StatementRow
}

// IsEmpty reports whether the statement has no rows.
func (s Statement) IsEmpty() bool {
	return len(s.Rows) == 0
}

// Head returns a statement holding at most the first n rows.
func (s Statement) Head(n int) Statement {
	if n < 0 || len(s.Rows) <= n {
		return s
	}
	return Statement{Rows: s.Rows[:n]}
}

// HasColumn reports whether any row carries the named line item.
func (s Statement) HasColumn(name string) bool {
	for _, row := range s.Rows {
		if _, ok := row.Values[name]; ok {
			return true
		}
	}
	return false
}

// Valuation is a point-in-time market snapshot of the underlying security.
// It is sourced independently of the statement history.
type Valuation struct {
	Price            Value   `json:"price"`
	PERatio          Value   `json:"peRatio"`
	PriceToBook      Value   `json:"priceToBook"`
	DividendYieldPct float64 `json:"dividendYieldPct"`
	MarketCap        float64 `json:"marketCap"`
	Sector           string  `json:"sector"`
}

// Fundamentals bundles everything fetched for one underlying symbol.
type Fundamentals struct {
	Symbol          string
	CompanyName     string
	IncomeStatement Statement
	BalanceSheet    Statement
	Valuation       Valuation
}
