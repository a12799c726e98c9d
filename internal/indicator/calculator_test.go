package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

var r = model.Resolved

func period(netIncome, revenue, equity model.Value) model.NormalizedPeriod {
	return model.NormalizedPeriod{NetIncome: netIncome, Revenue: revenue, Equity: equity}
}

// TestPercent tests ratio arithmetic on resolved and unresolved inputs.
//
// WHY: A zero equity must yield "undefined", never an infinite ROE that would
// dominate the averages, and never a zero that would look like a real figure.
func TestPercent(t *testing.T) {
	t.Run("exact ratio", func(t *testing.T) {
		got, ok := Percent(r(20), r(100)).Get()
		require.True(t, ok)
		assert.Equal(t, 20.0, got)
	})

	t.Run("zero denominator is undefined", func(t *testing.T) {
		assert.False(t, Percent(r(20), r(0)).IsResolved())
		assert.False(t, Percent(r(0), r(0)).IsResolved())
	})

	t.Run("unresolved input propagates", func(t *testing.T) {
		assert.False(t, Percent(model.Unresolved(), r(100)).IsResolved())
		assert.False(t, Percent(r(20), model.Unresolved()).IsResolved())
	})

	t.Run("true zero is kept", func(t *testing.T) {
		got, ok := Percent(r(0), r(100)).Get()
		require.True(t, ok)
		assert.Equal(t, 0.0, got)
	})

	t.Run("overflow is undefined", func(t *testing.T) {
		assert.False(t, Percent(r(1e308), r(1e-308)).IsResolved())
	})
}

func TestGrowth(t *testing.T) {
	got, ok := Growth(r(110), r(100)).Get()
	require.True(t, ok)
	assert.InDelta(t, 10.0, got, 1e-9)

	assert.False(t, Growth(r(110), r(0)).IsResolved())
	assert.False(t, Growth(model.Unresolved(), r(100)).IsResolved())
}

// TestCompute tests per-period indicators and their averages.
//
// WHY: Growth must compare each period with the one before it in time, and
// averages must skip undefined periods rather than treat them as zero.
func TestCompute(t *testing.T) {
	t.Run("return on equity and growth", func(t *testing.T) {
		periods := []model.NormalizedPeriod{
			period(r(20), r(110), r(100)),
			period(r(20), r(100), r(100)),
		}

		got, err := Compute(periods)
		require.NoError(t, err)
		require.Len(t, got.Periods, 2)

		roe, _ := got.Periods[0].ReturnOnEquity.Get()
		assert.Equal(t, 20.0, roe)

		growth, ok := got.Periods[0].RevenueGrowth.Get()
		require.True(t, ok)
		assert.InDelta(t, 10.0, growth, 1e-9)
		assert.False(t, got.Periods[1].RevenueGrowth.IsResolved())
	})

	t.Run("optional ratios only when fields resolved", func(t *testing.T) {
		periods := []model.NormalizedPeriod{
			{NetIncome: r(10), Revenue: r(100), Equity: r(50), TotalAssets: r(200), TotalDebt: r(25)},
			{NetIncome: r(8), Revenue: r(90), Equity: r(40)},
		}

		got, err := Compute(periods)
		require.NoError(t, err)

		roa, _ := got.Periods[0].ReturnOnAssets.Get()
		de, _ := got.Periods[0].DebtToEquity.Get()
		assert.Equal(t, 5.0, roa)
		assert.Equal(t, 50.0, de)
		assert.False(t, got.Periods[1].ReturnOnAssets.IsResolved())
		assert.False(t, got.Periods[1].DebtToEquity.IsResolved())

		meanDE, ok := got.Mean.DebtToEquity.Get()
		require.True(t, ok)
		assert.Equal(t, 50.0, meanDE)
	})

	t.Run("mean skips undefined values", func(t *testing.T) {
		periods := []model.NormalizedPeriod{
			period(r(30), r(100), r(100)),
			period(r(10), r(100), r(0)),
			period(r(10), r(100), r(100)),
		}

		got, err := Compute(periods)
		require.NoError(t, err)

		roe, ok := got.Mean.ReturnOnEquity.Get()
		require.True(t, ok)
		assert.Equal(t, 20.0, roe)

		margin, _ := got.Mean.NetMargin.Get()
		assert.InDelta(t, 16.6667, margin, 1e-4)
	})

	t.Run("mean undefined when every period is undefined", func(t *testing.T) {
		periods := []model.NormalizedPeriod{
			period(r(10), r(100), r(50)),
			period(r(10), r(100), r(50)),
		}

		got, err := Compute(periods)
		require.NoError(t, err)
		assert.False(t, got.Mean.DebtToEquity.IsResolved())
		assert.False(t, got.Mean.ReturnOnAssets.IsResolved())
	})

	t.Run("drops periods without any indicator", func(t *testing.T) {
		periods := []model.NormalizedPeriod{
			period(r(10), r(100), r(50)),
			period(model.Unresolved(), model.Unresolved(), r(50)),
			period(r(10), r(100), r(50)),
		}

		got, err := Compute(periods)
		require.NoError(t, err)
		assert.Len(t, got.Periods, 2)
	})

	t.Run("fewer than two defined periods is insufficient", func(t *testing.T) {
		periods := []model.NormalizedPeriod{
			period(r(10), r(100), r(50)),
			period(model.Unresolved(), model.Unresolved(), r(0)),
		}

		_, err := Compute(periods)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientHistory)
	})
}
