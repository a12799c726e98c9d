// Package scheduler refreshes the screener report on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
)

// Refresher runs one analysis.
type Refresher interface {
	RefreshAsync() error
}

// Scheduler triggers background refreshes on a cron spec.
type Scheduler struct {
	refresher Refresher
	cron      *cron.Cron
	logger    arbor.ILogger

	mu      sync.Mutex
	running bool
}

// New creates a Scheduler for refresher.
func New(refresher Refresher, logger arbor.ILogger) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		cron:      cron.New(),
		logger:    logger,
	}
}

// Start registers spec and starts the cron loop. An empty spec leaves the
// scheduler idle. With runOnStart a refresh is triggered immediately.
func (s *Scheduler) Start(spec string, runOnStart bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if spec != "" {
		if _, err := s.cron.AddFunc(spec, s.trigger); err != nil {
			return fmt.Errorf("failed to add cron job: %w", err)
		}
		s.cron.Start()
		s.running = true
		s.logger.Info().Str("cron_expr", spec).Msg("Scheduled refresh enabled")
	}

	if runOnStart {
		s.trigger()
	}
	return nil
}

// Stop halts the cron loop and waits for a running trigger to return.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false

	select {
	case <-s.cron.Stop().Done():
		s.logger.Info().Msg("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// trigger starts a refresh unless one is already underway.
func (s *Scheduler) trigger() {
	if err := s.refresher.RefreshAsync(); err != nil {
		s.logger.Info().Err(err).Msg("Scheduled refresh skipped")
		return
	}
	s.logger.Info().Msg("Scheduled refresh started")
}
