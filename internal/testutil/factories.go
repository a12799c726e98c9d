package testutil

import (
	"fmt"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

// Standard line item labels used by the builders.
const (
	LabelNetIncome   = "Net Income"
	LabelRevenue     = "Total Revenue"
	LabelEquity      = "Stockholders Equity"
	LabelTotalAssets = "Total Assets"
	LabelTotalDebt   = "Total Debt"
)

// FundamentalsBuilder provides a fluent interface for creating test fundamentals.
type FundamentalsBuilder struct {
	symbol    string
	name      string
	income    []model.StatementRow
	balance   []model.StatementRow
	valuation model.Valuation
}

// NewFundamentals creates a builder with no periods and a neutral valuation.
func NewFundamentals(symbol string) *FundamentalsBuilder {
	return &FundamentalsBuilder{
		symbol: symbol,
		name:   symbol + " Inc.",
		valuation: model.Valuation{
			Price:     model.Resolved(100),
			MarketCap: 1e9,
			Sector:    "Technology",
		},
	}
}

// WithName sets the company name.
func (b *FundamentalsBuilder) WithName(name string) *FundamentalsBuilder {
	b.name = name
	return b
}

// WithPeriod appends a period (older than the ones already added) using the
// standard labels for every line item.
func (b *FundamentalsBuilder) WithPeriod(netIncome, revenue, equity, totalAssets, totalDebt float64) *FundamentalsBuilder {
	period := b.nextPeriod()
	b.income = append(b.income, model.StatementRow{
		Period: period,
		Values: map[string]float64{LabelNetIncome: netIncome, LabelRevenue: revenue},
	})
	b.balance = append(b.balance, model.StatementRow{
		Period: period,
		Values: map[string]float64{LabelEquity: equity, LabelTotalAssets: totalAssets, LabelTotalDebt: totalDebt},
	})
	return b
}

// WithIncomeRow appends a raw income statement row.
func (b *FundamentalsBuilder) WithIncomeRow(period string, values map[string]float64) *FundamentalsBuilder {
	b.income = append(b.income, model.StatementRow{Period: period, Values: values})
	return b
}

// WithBalanceRow appends a raw balance sheet row.
func (b *FundamentalsBuilder) WithBalanceRow(period string, values map[string]float64) *FundamentalsBuilder {
	b.balance = append(b.balance, model.StatementRow{Period: period, Values: values})
	return b
}

// WithoutColumn removes a label from every row of both statements.
func (b *FundamentalsBuilder) WithoutColumn(label string) *FundamentalsBuilder {
	for _, rows := range [][]model.StatementRow{b.income, b.balance} {
		for _, row := range rows {
			delete(row.Values, label)
		}
	}
	return b
}

// WithoutBalanceSheet drops the balance sheet entirely.
func (b *FundamentalsBuilder) WithoutBalanceSheet() *FundamentalsBuilder {
	b.balance = nil
	return b
}

// WithValuation replaces the valuation snapshot.
func (b *FundamentalsBuilder) WithValuation(v model.Valuation) *FundamentalsBuilder {
	b.valuation = v
	return b
}

// WithPE sets the P/E ratio.
func (b *FundamentalsBuilder) WithPE(pe float64) *FundamentalsBuilder {
	b.valuation.PERatio = model.Resolved(pe)
	return b
}

// WithDividendYield sets the dividend yield in percent.
func (b *FundamentalsBuilder) WithDividendYield(pct float64) *FundamentalsBuilder {
	b.valuation.DividendYieldPct = pct
	return b
}

// Build returns the assembled fundamentals.
func (b *FundamentalsBuilder) Build() model.Fundamentals {
	return model.Fundamentals{
		Symbol:          b.symbol,
		CompanyName:     b.name,
		IncomeStatement: model.Statement{Rows: b.income},
		BalanceSheet:    model.Statement{Rows: b.balance},
		Valuation:       b.valuation,
	}
}

// nextPeriod labels periods as fiscal year ends going back from 2025.
func (b *FundamentalsBuilder) nextPeriod() string {
	return fmt.Sprintf("%d-12-31", 2025-len(b.income))
}

// HealthyFundamentals returns three years of strong, growing figures:
// ROE 25%, margin 20%, revenue growth above 10%, debt/equity 30%.
func HealthyFundamentals(symbol string) model.Fundamentals {
	return NewFundamentals(symbol).
		WithPeriod(30, 150, 120, 300, 36).
		WithPeriod(25, 125, 100, 250, 30).
		WithPeriod(20, 100, 80, 200, 24).
		WithPE(20).
		WithDividendYield(3).
		Build()
}

// MediocreFundamentals returns figures that land in the middle tiers:
// ROE 16%, margin 12%, revenue growth 6%, debt/equity 80%.
func MediocreFundamentals(symbol string) model.Fundamentals {
	return NewFundamentals(symbol).
		WithPeriod(13.4832, 112.36, 84.27, 400, 67.416).
		WithPeriod(12.72, 106, 79.5, 400, 63.6).
		WithPeriod(12, 100, 75, 400, 60).
		WithPE(30).
		WithDividendYield(1.5).
		Build()
}

// WeakFundamentals returns two years of shrinking, thin-margin figures.
func WeakFundamentals(symbol string) model.Fundamentals {
	return NewFundamentals(symbol).
		WithPeriod(2, 95, 40, 200, 60).
		WithPeriod(2, 100, 40, 200, 60).
		WithPeriod(3, 105, 40, 200, 60).
		WithPE(60).
		Build()
}
