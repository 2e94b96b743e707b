package workers

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper evicts rooms whose grace period elapsed and returns how many it removed.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) int
}

// SweepWorker periodically reaps finished rooms.
type SweepWorker struct {
	log      *slog.Logger
	sweeper  Sweeper
	interval time.Duration
}

func NewSweepWorker(log *slog.Logger, sweeper Sweeper, interval time.Duration) *SweepWorker {
	return &SweepWorker{log: log, sweeper: sweeper, interval: interval}
}

func (w *SweepWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping sweep")
			return nil
		case now := <-ticker.C:
			if n := w.sweeper.Sweep(ctx, now.UTC()); n > 0 {
				w.log.Info("Finished rooms evicted", "count", n)
			}
		}
	}
}
