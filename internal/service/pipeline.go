package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ternarybob/arbor"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/cache"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/classifier"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/indicator"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/resolver"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/statement"
)

// Pipeline analyzes a batch of receipts: resolve, fetch, normalize, compute
// and classify, one symbol at a time.
type Pipeline struct {
	resolver   *resolver.Resolver
	normalizer *statement.Normalizer
	classifier *classifier.Classifier
	logger     arbor.ILogger
	now        func() time.Time
	newID      func() string
}

// NewPipeline creates a new Pipeline with the provided components.
func NewPipeline(
	resolver *resolver.Resolver,
	normalizer *statement.Normalizer,
	classifier *classifier.Classifier,
	logger arbor.ILogger,
) *Pipeline {
	return &Pipeline{
		resolver:   resolver,
		normalizer: normalizer,
		classifier: classifier,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Run analyzes the first limit listings (all of them when limit <= 0) and
// returns the ranked report.
//
// Processing Flow (per listing, sequential):
//  1. Resolve the receipt code to its underlying symbol
//  2. Fetch fundamentals through store, then provider on a miss
//  3. Normalize the statements
//  4. Compute per-period indicators and their mean
//  5. Classify the mean against the valuation snapshot
//
// A listing that fails any step is left out of the report and recorded in
// Outcomes with its failure kind; the batch always continues. Resolution misses
// count as Skipped, every other kind as a failure.
//
// The context is checked before each listing. When it is done, the batch stops
// and the partial report is returned together with the context error.
//
// Rows are sorted by score, mean ROE, then dividend yield, all descending.
// The sort is stable so equal rows keep listing order.
//
// Parameters:
//   - ctx: Context for cancellation
//   - listings: Receipt listings, already filtered to receipt codes
//   - provider: Source of fundamentals for underlying symbols
//   - store: Cache scoped to this run; nil uses a fresh in-memory cache
//   - limit: Maximum number of listings analyzed
//
// Returns:
//   - model.Report: The ranked report with outcome counters
//   - error: ctx.Err() when the run was cancelled, nil otherwise
func (p *Pipeline) Run(
	ctx context.Context,
	listings []model.Listing,
	provider FundamentalsProvider,
	store cache.Cache[model.Fundamentals],
	limit int,
) (model.Report, error) {
	if limit > 0 && len(listings) > limit {
		listings = listings[:limit]
	}
	if store == nil {
		store = cache.NewMemory[model.Fundamentals]()
	}
	provider = NewCachingProvider(provider, store)

	report := model.Report{
		RunID:          p.newID(),
		StartedAt:      p.now(),
		Rows:           []model.ReportRow{},
		FailuresByKind: map[string]int{},
		Outcomes:       make([]model.SymbolOutcome, 0, len(listings)),
	}

	p.logger.Info().
		Str("run_id", report.RunID).
		Int("symbols", len(listings)).
		Msg("Analysis run started")

	var runErr error
	for _, listing := range listings {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		row, outcome, err := p.analyze(ctx, listing, provider)
		report.Outcomes = append(report.Outcomes, outcome)
		if err != nil {
			kind := apperrors.KindOf(err)
			report.FailuresByKind[string(kind)]++
			if kind == apperrors.KindResolutionMiss {
				report.Skipped++
			} else {
				report.Failures++
			}
			p.logger.Warn().
				Str("receipt", listing.Symbol).
				Str("symbol", outcome.UnderlyingSymbol).
				Str("kind", string(kind)).
				Err(err).
				Msg("Symbol excluded from report")
			continue
		}

		report.Rows = append(report.Rows, row)
		report.Successes++
		p.logger.Debug().
			Str("receipt", row.ReceiptSymbol).
			Str("symbol", row.UnderlyingSymbol).
			Float64("score", row.Score).
			Str("status", string(row.Status)).
			Msg("Symbol analyzed")
	}

	SortRows(report.Rows)
	report.FinishedAt = p.now()

	p.logger.Info().
		Str("run_id", report.RunID).
		Int("successes", report.Successes).
		Int("failures", report.Failures).
		Int("skipped", report.Skipped).
		Str("duration", report.FinishedAt.Sub(report.StartedAt).String()).
		Msg("Analysis run finished")

	return report, runErr
}

// analyze runs one listing through the pipeline. Returned errors are always
// *apperrors.SymbolError.
func (p *Pipeline) analyze(ctx context.Context, listing model.Listing, provider FundamentalsProvider) (model.ReportRow, model.SymbolOutcome, error) {
	outcome := model.SymbolOutcome{ReceiptSymbol: listing.Symbol}

	fail := func(err error) (model.ReportRow, model.SymbolOutcome, error) {
		kind := apperrors.KindOf(err)
		outcome.Kind = string(kind)
		outcome.Detail = err.Error()
		return model.ReportRow{}, outcome, err
	}

	underlying, ok := p.resolver.Resolve(listing.Symbol)
	if !ok {
		return fail(&apperrors.SymbolError{
			Kind:   apperrors.KindResolutionMiss,
			Symbol: listing.Symbol,
			Err:    apperrors.ErrResolutionMiss,
		})
	}
	outcome.UnderlyingSymbol = underlying

	f, err := provider.FetchFundamentals(ctx, underlying)
	if err != nil {
		return fail(&apperrors.SymbolError{
			Kind:   apperrors.KindFetchFailed,
			Symbol: underlying,
			Err:    err,
		})
	}

	periods, err := p.normalizer.Normalize(f.IncomeStatement, f.BalanceSheet)
	if err != nil {
		return fail(apperrors.NewSymbolError(underlying, err))
	}

	indicators, err := indicator.Compute(periods)
	if err != nil {
		return fail(apperrors.NewSymbolError(underlying, err))
	}

	cls := p.classifier.Classify(indicators.Mean, f.Valuation)

	outcome.OK = true
	outcome.Periods = len(indicators.Periods)
	return buildRow(listing, underlying, f, indicators, cls), outcome, nil
}

func buildRow(listing model.Listing, underlying string, f model.Fundamentals, ind model.Indicators, cls model.Classification) model.ReportRow {
	periods := make([]model.IndicatorSet, len(ind.Periods))
	for i, set := range ind.Periods {
		periods[i] = roundSet(set)
	}

	mean := roundSet(ind.Mean)
	return model.ReportRow{
		ReceiptSymbol:     listing.Symbol,
		UnderlyingSymbol:  underlying,
		Company:           companyName(listing, f, underlying),
		Sector:            f.Valuation.Sector,
		Status:            cls.Status,
		Score:             round(cls.Score, 1),
		ReturnOnEquity:    mean.ReturnOnEquity,
		ReturnOnAssets:    mean.ReturnOnAssets,
		NetMargin:         mean.NetMargin,
		RevenueGrowth:     mean.RevenueGrowth,
		DebtToEquity:      mean.DebtToEquity,
		Price:             roundValue(f.Valuation.Price, 2),
		PERatio:           roundValue(f.Valuation.PERatio, 2),
		PriceToBook:       roundValue(f.Valuation.PriceToBook, 2),
		DividendYield:     round(f.Valuation.DividendYieldPct, 2),
		MarketCapBillions: round(f.Valuation.MarketCap/1e9, 2),
		Alerts:            cls.Alerts,
		Periods:           periods,
	}
}

// companyName is the first word of the listing name, falling back to the
// provider's company name and then the underlying symbol.
func companyName(listing model.Listing, f model.Fundamentals, underlying string) string {
	for _, name := range []string{listing.DisplayName, f.CompanyName} {
		if fields := strings.Fields(name); len(fields) > 0 {
			return fields[0]
		}
	}
	return underlying
}

// SortRows orders rows by score, mean ROE and dividend yield, descending.
// Undefined ROE sorts below every defined value. The sort is stable.
func SortRows(rows []model.ReportRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		ra, aok := a.ReturnOnEquity.Get()
		rb, bok := b.ReturnOnEquity.Get()
		if aok != bok {
			return aok
		}
		if aok && ra != rb {
			return ra > rb
		}
		return a.DividendYield > b.DividendYield
	})
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func roundValue(v model.Value, places int32) model.Value {
	f, ok := v.Get()
	if !ok {
		return model.Unresolved()
	}
	return model.Resolved(round(f, places))
}

func roundSet(s model.IndicatorSet) model.IndicatorSet {
	return model.IndicatorSet{
		Period:         s.Period,
		ReturnOnEquity: roundValue(s.ReturnOnEquity, 2),
		ReturnOnAssets: roundValue(s.ReturnOnAssets, 2),
		NetMargin:      roundValue(s.NetMargin, 2),
		RevenueGrowth:  roundValue(s.RevenueGrowth, 2),
		DebtToEquity:   roundValue(s.DebtToEquity, 2),
	}
}
