// Package statement extracts canonical line items from financial statements
// whose labels vary between data sources and companies.
package statement

import (
	"fmt"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

// DefaultPeriods is the number of most recent periods retained.
const DefaultPeriods = 5

// MinUsablePeriods is the least history a statement must carry.
const MinUsablePeriods = 2

// Normalizer resolves canonical fields through an alias table.
type Normalizer struct {
	aliases AliasTable
	periods int
}

// NewNormalizer creates a Normalizer keeping at most periods rows.
// Non-positive periods fall back to DefaultPeriods.
func NewNormalizer(aliases AliasTable, periods int) *Normalizer {
	if periods <= 0 {
		periods = DefaultPeriods
	}
	return &Normalizer{aliases: aliases, periods: periods}
}

// Columns is the label chosen for each canonical field, empty when unresolved.
type Columns struct {
	NetIncome   string
	Revenue     string
	Equity      string
	TotalAssets string
	TotalDebt   string
}

// Normalize turns an income statement and balance sheet into normalized
// periods, most recent first. It fails with ErrMissingStatement when either
// statement is empty, ErrSchemaMiss when net income, revenue or equity has no
// matching label, and ErrInsufficientHistory when fewer than two periods
// carry any canonical value.
//
// Alias choice is made once per statement, not per row. Balance sheet rows are
// paired with income rows by period label, or by position when labels are absent.
func (n *Normalizer) Normalize(income, balance model.Statement) ([]model.NormalizedPeriod, error) {
	if income.IsEmpty() {
		return nil, fmt.Errorf("income statement: %w", apperrors.ErrMissingStatement)
	}
	if balance.IsEmpty() {
		return nil, fmt.Errorf("balance sheet: %w", apperrors.ErrMissingStatement)
	}

	income = income.Head(n.periods)
	balance = balance.Head(n.periods)

	cols, err := n.ResolveColumns(income, balance)
	if err != nil {
		return nil, err
	}

	byPeriod := make(map[string]model.StatementRow, len(balance.Rows))
	for _, row := range balance.Rows {
		if row.Period != "" {
			byPeriod[row.Period] = row
		}
	}

	periods := make([]model.NormalizedPeriod, 0, len(income.Rows))
	usable := 0
	for i, inc := range income.Rows {
		bal, ok := byPeriod[inc.Period]
		if !ok && (inc.Period == "" || len(byPeriod) == 0) && i < len(balance.Rows) {
			bal = balance.Rows[i]
		}

		p := model.NormalizedPeriod{
			Period:      inc.Period,
			NetIncome:   lookup(inc, cols.NetIncome),
			Revenue:     lookup(inc, cols.Revenue),
			Equity:      lookup(bal, cols.Equity),
			TotalAssets: lookup(bal, cols.TotalAssets),
			TotalDebt:   lookup(bal, cols.TotalDebt),
		}
		if p.HasAny() {
			usable++
		}
		periods = append(periods, p)
	}

	if usable < MinUsablePeriods {
		return nil, fmt.Errorf("%d usable periods: %w", usable, apperrors.ErrInsufficientHistory)
	}

	return periods, nil
}

// ResolveColumns picks the label for every canonical field. Net income and
// revenue are searched in the income statement, the rest in the balance sheet.
func (n *Normalizer) ResolveColumns(income, balance model.Statement) (Columns, error) {
	cols := Columns{
		NetIncome:   firstPresent(income, n.aliases.NetIncome),
		Revenue:     firstPresent(income, n.aliases.Revenue),
		Equity:      firstPresent(balance, n.aliases.Equity),
		TotalAssets: firstPresent(balance, n.aliases.TotalAssets),
		TotalDebt:   firstPresent(balance, n.aliases.TotalDebt),
	}

	required := []struct {
		field Field
		col   string
	}{
		{FieldNetIncome, cols.NetIncome},
		{FieldRevenue, cols.Revenue},
		{FieldEquity, cols.Equity},
	}
	for _, r := range required {
		if r.col == "" {
			return Columns{}, fmt.Errorf("%s: %w", r.field, apperrors.ErrSchemaMiss)
		}
	}

	return cols, nil
}

// firstPresent returns the first alias that is a column of s.
func firstPresent(s model.Statement, aliases []string) string {
	for _, alias := range aliases {
		if s.HasColumn(alias) {
			return alias
		}
	}
	return ""
}

func lookup(row model.StatementRow, col string) model.Value {
	if col == "" || row.Values == nil {
		return model.Unresolved()
	}
	v, ok := row.Values[col]
	if !ok {
		return model.Unresolved()
	}
	return model.Resolved(v)
}
