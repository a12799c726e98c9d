// Package classifier scores mean indicators and valuation figures against a
// tiered threshold table.
package classifier

import (
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

// Classifier scores symbols against a Criteria table.
type Classifier struct {
	criteria Criteria
}

// New creates a Classifier using criteria.
func New(criteria Criteria) *Classifier {
	return &Classifier{criteria: criteria}
}

// NewDefault creates a Classifier using DefaultCriteria.
func NewDefault() *Classifier {
	return New(DefaultCriteria)
}

// Classify scores six criteria, each worth 1 point when excellent and 0.5 when
// good, and derives the status from the share of MaxScore. Boundaries belong
// to the higher tier. An undefined ROE or margin scores nothing and raises its
// alert; an undefined growth scores nothing silently. P/E is only scored when
// positive, and debt/equity is skipped entirely when undefined.
func (c *Classifier) Classify(mean model.IndicatorSet, valuation model.Valuation) model.Classification {
	ex, good, caution := c.criteria.Excellent, c.criteria.Good, c.criteria.Caution
	score := 0.0
	alerts := []string{}

	roe, ok := mean.ReturnOnEquity.Get()
	switch {
	case ok && roe >= ex.ROE:
		score += 1
	case ok && roe >= good.ROE:
		score += 0.5
	default:
		alerts = append(alerts, model.AlertLowROE)
	}

	margin, ok := mean.NetMargin.Get()
	switch {
	case ok && margin >= ex.NetMargin:
		score += 1
	case ok && margin >= good.NetMargin:
		score += 0.5
	default:
		alerts = append(alerts, model.AlertLowMargin)
	}

	if growth, ok := mean.RevenueGrowth.Get(); ok {
		switch {
		case growth >= ex.RevenueGrowth:
			score += 1
		case growth >= good.RevenueGrowth:
			score += 0.5
		case growth < caution.RevenueGrowth:
			alerts = append(alerts, model.AlertRevenueDeclining)
		}
	}

	switch dy := valuation.DividendYieldPct; {
	case dy >= ex.DividendYield:
		score += 1
	case dy >= good.DividendYield:
		score += 0.5
	}

	if pe, ok := valuation.PERatio.Get(); ok && pe > 0 {
		switch {
		case pe <= ex.PEMax:
			score += 1
		case pe <= good.PEMax:
			score += 0.5
		case pe > caution.PEMax:
			alerts = append(alerts, model.AlertPEElevated)
		}
	}

	if de, ok := mean.DebtToEquity.Get(); ok {
		switch {
		case de < c.criteria.LeverageExcellent:
			score += 1
		case de < c.criteria.LeverageGood:
			score += 0.5
		default:
			alerts = append(alerts, model.AlertHighLeverage)
		}
	}

	pct := score / MaxScore * 100
	return model.Classification{
		Score:      score,
		Percentage: pct,
		Status:     StatusFor(pct),
		Alerts:     alerts,
	}
}

// StatusFor maps a percentage of MaxScore onto a status.
func StatusFor(pct float64) model.Status {
	switch {
	case pct >= ExcellentPct:
		return model.StatusExcellent
	case pct >= GoodPct:
		return model.StatusGood
	case pct >= CautionPct:
		return model.StatusCaution
	default:
		return model.StatusWeak
	}
}
