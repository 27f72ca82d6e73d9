package scheduler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"farmgate/internal/shared/logger"
)

type fakeSweeper struct {
	calls atomic.Int32
	err   error
}

func (f *fakeSweeper) Execute(ctx context.Context) (int, error) {
	f.calls.Add(1)
	return 1, f.err
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandoverSweepScheduler_RunsImmediatelyOnStart(t *testing.T) {
	sweeper := &fakeSweeper{}
	s := NewHandoverSweepScheduler(sweeper, testLogger(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return sweeper.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestHandoverSweepScheduler_KeepsTickingAfterError(t *testing.T) {
	sweeper := &fakeSweeper{err: fmt.Errorf("database gone")}
	s := NewHandoverSweepScheduler(sweeper, testLogger(), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return sweeper.calls.Load() >= 3
	}, time.Second, 10*time.Millisecond)
}

func TestHandoverSweepScheduler_DefaultInterval(t *testing.T) {
	s := NewHandoverSweepScheduler(&fakeSweeper{}, testLogger(), 0)
	assert.Equal(t, 5*time.Minute, s.interval)
}
