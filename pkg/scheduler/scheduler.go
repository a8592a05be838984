package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/kamilkobak/kkdash/pkg/defaults"
	apperrors "github.com/kamilkobak/kkdash/pkg/errors"
	"github.com/kamilkobak/kkdash/pkg/publisher"
	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

const (
	resultOK           = "ok"
	resultPublishError = "publish_error"
)

// Assembler is the snapshot source the scheduler drives once per cycle.
type Assembler interface {
	Assemble(ctx context.Context) *snapshot.Snapshot
}

// CycleStats describes one completed collection cycle.
type CycleStats struct {
	// Started is when the cycle began.
	Started time.Time

	// Snapshot is the assembled snapshot, published or not.
	Snapshot *snapshot.Snapshot

	// Elapsed is the full cycle duration, assembly plus publish.
	Elapsed time.Duration

	// Drifted reports whether the cycle ran longer than the interval.
	Drifted bool

	// PublishErr is the publish failure for this cycle, if any.
	PublishErr error
}

// Scheduler runs collection cycles at a fixed interval. Cycles execute
// sequentially on a single goroutine, so they never overlap. When a
// cycle runs longer than the interval, the ticker's one-pending-tick
// semantics start the next cycle immediately without accumulating a
// backlog.
type Scheduler struct {
	// Interval is the time between cycle starts. If zero or negative,
	// defaults.CollectionInterval is used.
	Interval time.Duration

	// Assembler builds each cycle's snapshot. Required.
	Assembler Assembler

	// Publisher delivers each snapshot. Required.
	Publisher publisher.Publisher

	// OnCycle, when set, is invoked after every cycle with its stats.
	// It runs on the scheduler goroutine and should return quickly.
	OnCycle func(CycleStats)
}

// Run executes the first cycle immediately, then one cycle per tick
// until ctx is canceled. An in-flight cycle always finishes before Run
// returns. Publish failures are logged once per attempt and never stop
// the loop; the only error Run returns is a missing dependency.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.Assembler == nil {
		return apperrors.New(apperrors.ErrCodeInternal, "scheduler requires an assembler")
	}
	if s.Publisher == nil {
		return apperrors.New(apperrors.ErrCodeInternal, "scheduler requires a publisher")
	}

	interval := s.Interval
	if interval <= 0 {
		interval = defaults.CollectionInterval
	}

	slog.Info("scheduler started", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.cycle(ctx, interval)

	for {
		select {
		case <-ticker.C:
			if ctx.Err() != nil {
				slog.Info("scheduler stopped")
				return nil
			}
			s.cycle(ctx, interval)
		case <-ctx.Done():
			slog.Info("scheduler stopped")
			return nil
		}
	}
}

// cycle assembles one snapshot, publishes it, and reports the result.
func (s *Scheduler) cycle(ctx context.Context, interval time.Duration) {
	started := time.Now()

	snap := s.Assembler.Assemble(ctx)
	err := s.Publisher.Publish(ctx, snap)

	elapsed := time.Since(started)
	drifted := elapsed > interval

	if err != nil {
		cyclesTotal.WithLabelValues(resultPublishError).Inc()
		slog.Error("failed to publish snapshot",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed))
	} else {
		cyclesTotal.WithLabelValues(resultOK).Inc()
		lastPublishTimestamp.SetToCurrentTime()
		slog.Debug("cycle complete", slog.Duration("elapsed", elapsed))
	}

	if drifted {
		cycleDriftTotal.Inc()
		slog.Warn("cycle overran the collection interval",
			slog.Duration("elapsed", elapsed),
			slog.Duration("interval", interval))
	}

	if s.OnCycle != nil {
		s.OnCycle(CycleStats{
			Started:    started,
			Snapshot:   snap,
			Elapsed:    elapsed,
			Drifted:    drifted,
			PublishErr: err,
		})
	}
}
