package scheduler

import (
	"context"
	"time"

	"farmgate/internal/shared/logger"
)

// HandoverSweeper reverts claims stuck in handover with an expired
// passcode, returning how many were reverted.
type HandoverSweeper interface {
	Execute(ctx context.Context) (int, error)
}

// HandoverSweepScheduler periodically sweeps claims whose handover
// passcode lapsed, moving them back to approved so the owner can
// re-issue a code.
type HandoverSweepScheduler struct {
	sweeper  HandoverSweeper
	logger   logger.Interface
	interval time.Duration
	stopChan chan struct{}
}

// NewHandoverSweepScheduler creates a new handover sweep scheduler
func NewHandoverSweepScheduler(sweeper HandoverSweeper, log logger.Interface, interval time.Duration) *HandoverSweepScheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &HandoverSweepScheduler{
		sweeper:  sweeper,
		logger:   log.Named("handover-sweep"),
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start starts the scheduler
func (s *HandoverSweepScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting handover sweep scheduler", "interval", s.interval)
	go s.run(ctx)
}

// Stop stops the scheduler
func (s *HandoverSweepScheduler) Stop() {
	close(s.stopChan)
}

func (s *HandoverSweepScheduler) run(ctx context.Context) {
	// Run immediately on start
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("handover sweep stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("handover sweep stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *HandoverSweepScheduler) sweep(ctx context.Context) {
	reverted, err := s.sweeper.Execute(ctx)
	if err != nil {
		s.logger.Errorw("handover sweep failed", "error", err)
		return
	}
	if reverted > 0 {
		s.logger.Infow("handover sweep reverted stalled claims", "count", reverted)
	}
}
