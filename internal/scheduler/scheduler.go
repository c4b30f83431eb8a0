package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/robfig/cron/v3"
)

// IntegrityChecker replays the ledger log against the stored balance.
type IntegrityChecker interface {
	CheckIntegrity(ctx context.Context) (*domain.LedgerIntegrity, error)
}

// Scheduler runs the periodic ledger integrity check.
type Scheduler struct {
	cron     *cron.Cron
	checker  IntegrityChecker
	schedule string
	timeout  time.Duration
	logger   *slog.Logger
}

// NewScheduler creates a scheduler for the given cron spec. An empty spec
// yields a scheduler whose Start does nothing.
func NewScheduler(schedule string, checker IntegrityChecker, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:     cron.New(),
		checker:  checker,
		schedule: schedule,
		timeout:  time.Minute,
		logger:   logger.With(slog.String("component", "scheduler")),
	}
}

// Start registers the integrity job and starts the cron loop.
func (s *Scheduler) Start() error {
	if s.schedule == "" {
		s.logger.Info("Ledger integrity check disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.checkLedger); err != nil {
		return fmt.Errorf("invalid integrity check schedule %q: %w", s.schedule, err)
	}

	s.logger.Info("Starting scheduler", slog.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) checkLedger() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.RunIntegrityCheck(ctx)
}

// RunIntegrityCheck performs one check and logs the outcome. A mismatch is
// reported but never corrected.
func (s *Scheduler) RunIntegrityCheck(ctx context.Context) *domain.LedgerIntegrity {
	report, err := s.checker.CheckIntegrity(ctx)
	if err != nil {
		s.logger.Error("Ledger integrity check failed", slog.String("error", err.Error()))
		return nil
	}

	if !report.Consistent {
		s.logger.Error("Ledger balance does not match transaction log",
			slog.String("account_id", report.AccountID),
			slog.String("stored_balance", report.StoredBalance.String()),
			slog.String("replayed_balance", report.ReplayedBalance.String()))
		return report
	}

	s.logger.Info("Ledger integrity verified", slog.String("account_id", report.AccountID), slog.String("balance", report.StoredBalance.String()))
	return report
}
