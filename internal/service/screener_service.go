package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/sync/singleflight"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/cache"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/resolver"
)

// ScreenerService runs analyses over the current receipt listing and keeps
// the latest report in memory.
type ScreenerService struct {
	listings ListingProvider
	provider FundamentalsProvider
	resolver *resolver.Resolver
	pipeline *Pipeline
	limit    int
	logger   arbor.ILogger

	group   singleflight.Group
	running atomic.Bool

	mu      sync.RWMutex
	latest  *model.Report
	lastErr error
	lastRun time.Time

	// background runs are cancelled by Close
	bgCtx    context.Context
	bgCancel context.CancelFunc
}

// NewScreenerService creates a new ScreenerService. The provider should
// already enforce any upstream rate limit; a fresh cache is layered on top of
// it for every run.
func NewScreenerService(
	listings ListingProvider,
	provider FundamentalsProvider,
	resolver *resolver.Resolver,
	pipeline *Pipeline,
	limit int,
	logger arbor.ILogger,
) *ScreenerService {
	ctx, cancel := context.WithCancel(context.Background())
	return &ScreenerService{
		listings: listings,
		provider: provider,
		resolver: resolver,
		pipeline: pipeline,
		limit:    limit,
		logger:   logger,
		bgCtx:    ctx,
		bgCancel: cancel,
	}
}

// Refresh lists the receipts, analyzes them and stores the result as the
// latest report. Concurrent callers share one run and all receive its result;
// the run uses the context of the caller that started it.
//
// A cancelled run returns its partial report with the context error and does
// not replace the latest report.
func (s *ScreenerService) Refresh(ctx context.Context) (model.Report, error) {
	v, err, _ := s.group.Do("refresh", func() (any, error) {
		s.running.Store(true)
		defer s.running.Store(false)
		return s.run(ctx)
	})
	report, _ := v.(model.Report)
	return report, err
}

// RefreshAsync starts a background refresh and returns immediately. It fails
// with ErrRunInProgress when a run is already underway.
func (s *ScreenerService) RefreshAsync() error {
	if s.Running() {
		return apperrors.ErrRunInProgress
	}
	go func() {
		_, _ = s.Refresh(s.bgCtx)
	}()
	return nil
}

func (s *ScreenerService) run(ctx context.Context) (model.Report, error) {
	listings, err := s.listings.ListReceipts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list receipts")
		s.recordRun(nil, err)
		return model.Report{}, fmt.Errorf("refresh: %w", err)
	}

	receipts := resolver.FilterReceipts(listings)
	s.logger.Info().
		Int("listed", len(listings)).
		Int("receipts", len(receipts)).
		Int("limit", s.limit).
		Msg("Receipts listed")

	report, err := s.pipeline.Run(ctx, receipts, s.provider, cache.NewMemory[model.Fundamentals](), s.limit)
	if err != nil {
		s.logger.Warn().Err(err).Str("run_id", report.RunID).Msg("Analysis run interrupted")
		s.recordRun(nil, err)
		return report, err
	}

	s.recordRun(&report, nil)
	return report, nil
}

func (s *ScreenerService) recordRun(report *model.Report, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if report != nil {
		s.latest = report
	}
	s.lastErr = err
	s.lastRun = time.Now()
}

// Latest returns the most recent completed report, or ErrNoReport.
func (s *ScreenerService) Latest() (model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return model.Report{}, apperrors.ErrNoReport
	}
	return *s.latest, nil
}

// LastError returns the error of the most recent run, nil when it succeeded
// or no run has finished yet.
func (s *ScreenerService) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// LastRun returns when the most recent run finished, zero before the first.
func (s *ScreenerService) LastRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

// Running reports whether a refresh is underway.
func (s *ScreenerService) Running() bool {
	return s.running.Load()
}

// Receipts returns the current receipt listing resolved to underlying symbols.
func (s *ScreenerService) Receipts(ctx context.Context) ([]model.Receipt, error) {
	listings, err := s.listings.ListReceipts(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolver.ResolveAll(resolver.FilterReceipts(listings)), nil
}

// Close cancels any background refresh.
func (s *ScreenerService) Close() {
	s.bgCancel()
}
