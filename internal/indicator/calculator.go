// Package indicator derives profitability, growth and leverage ratios from
// normalized statement periods.
package indicator

import (
	"fmt"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

// MinPeriods is the least number of periods with a defined indicator for a
// symbol to be scored.
const MinPeriods = 2

// Compute derives the indicator set of every period (index 0 is the most
// recent) and their mean. Revenue growth compares each period with the one
// immediately older, so the oldest period has none.
//
// Periods where no indicator is defined are dropped after growth has been
// computed; fewer than MinPeriods remaining fails with ErrInsufficientHistory.
func Compute(periods []model.NormalizedPeriod) (model.Indicators, error) {
	sets := make([]model.IndicatorSet, 0, len(periods))
	for i, p := range periods {
		set := model.IndicatorSet{
			Period:         p.Period,
			ReturnOnEquity: Percent(p.NetIncome, p.Equity),
			ReturnOnAssets: Percent(p.NetIncome, p.TotalAssets),
			NetMargin:      Percent(p.NetIncome, p.Revenue),
			DebtToEquity:   Percent(p.TotalDebt, p.Equity),
		}
		if i+1 < len(periods) {
			set.RevenueGrowth = Growth(p.Revenue, periods[i+1].Revenue)
		}
		if set.HasAny() {
			sets = append(sets, set)
		}
	}

	if len(sets) < MinPeriods {
		return model.Indicators{}, fmt.Errorf("%d periods with indicators: %w", len(sets), apperrors.ErrInsufficientHistory)
	}

	return model.Indicators{Periods: sets, Mean: Mean(sets)}, nil
}

// Percent returns num / den × 100. It is unresolved when either input is
// unresolved, den is zero, or the result is not finite.
func Percent(num, den model.Value) model.Value {
	n, ok := num.Get()
	if !ok {
		return model.Unresolved()
	}
	d, ok := den.Get()
	if !ok || d == 0 {
		return model.Unresolved()
	}
	return model.Resolved(n / d * 100)
}

// Growth returns the percentage change from prior to current.
func Growth(current, prior model.Value) model.Value {
	c, ok := current.Get()
	if !ok {
		return model.Unresolved()
	}
	p, ok := prior.Get()
	if !ok || p == 0 {
		return model.Unresolved()
	}
	return model.Resolved((c - p) / p * 100)
}

// Mean averages each indicator over the sets where it is defined. An
// indicator is unresolved only when no set defines it.
func Mean(sets []model.IndicatorSet) model.IndicatorSet {
	pick := func(get func(model.IndicatorSet) model.Value) model.Value {
		var sum float64
		var n int
		for _, s := range sets {
			if v, ok := get(s).Get(); ok {
				sum += v
				n++
			}
		}
		if n == 0 {
			return model.Unresolved()
		}
		return model.Resolved(sum / float64(n))
	}

	return model.IndicatorSet{
		ReturnOnEquity: pick(func(s model.IndicatorSet) model.Value { return s.ReturnOnEquity }),
		ReturnOnAssets: pick(func(s model.IndicatorSet) model.Value { return s.ReturnOnAssets }),
		NetMargin:      pick(func(s model.IndicatorSet) model.Value { return s.NetMargin }),
		RevenueGrowth:  pick(func(s model.IndicatorSet) model.Value { return s.RevenueGrowth }),
		DebtToEquity:   pick(func(s model.IndicatorSet) model.Value { return s.DebtToEquity }),
	}
}
