package model

// NormalizedPeriod holds the canonical line items of one reporting period.
// NetIncome, Revenue and Equity are required for the statement to be accepted;
// TotalAssets and TotalDebt are optional.
type NormalizedPeriod struct {
	Period      string
	NetIncome   Value
	Revenue     Value
	Equity      Value
	TotalAssets Value
	TotalDebt   Value
}

// HasAny reports whether at least one canonical field resolved.
func (p NormalizedPeriod) HasAny() bool {
	return p.NetIncome.IsResolved() || p.Revenue.IsResolved() || p.Equity.IsResolved() ||
		p.TotalAssets.IsResolved() || p.TotalDebt.IsResolved()
}

// IndicatorSet holds the derived ratios, all expressed in percent.
type IndicatorSet struct {
	Period         string `json:"period,omitempty"`
	ReturnOnEquity Value  `json:"returnOnEquity"`
	ReturnOnAssets Value  `json:"returnOnAssets"`
	NetMargin      Value  `json:"netMargin"`
	RevenueGrowth  Value  `json:"revenueGrowth"`
	DebtToEquity   Value  `json:"debtToEquity"`
}

// HasAny reports whether at least one indicator is defined.
func (s IndicatorSet) HasAny() bool {
	return s.ReturnOnEquity.IsResolved() || s.ReturnOnAssets.IsResolved() || s.NetMargin.IsResolved() ||
		s.RevenueGrowth.IsResolved() || s.DebtToEquity.IsResolved()
}

// Indicators is the calculator output: the per-period detail plus the
// element-wise mean over the periods with a defined value.
type Indicators struct {
	Periods []IndicatorSet
	Mean    IndicatorSet
}
