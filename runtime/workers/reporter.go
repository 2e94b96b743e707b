package workers

import (
	"context"
	"game-backend/observability"
	"log/slog"
	"time"
)

// StatsProvider returns a point in time view of the rooms.
type StatsProvider func() map[string]any

// ReporterWorker logs rooms and runtime counters on every interval.
type ReporterWorker struct {
	log      *slog.Logger
	rooms    StatsProvider
	metrics  *observability.Metrics
	interval time.Duration
}

func NewReporterWorker(log *slog.Logger, rooms StatsProvider, metrics *observability.Metrics, interval time.Duration) *ReporterWorker {
	return &ReporterWorker{log: log, rooms: rooms, metrics: metrics, interval: interval}
}

// Run starts the reporting loop until context cancellation
func (w *ReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report()
			w.log.Debug("Context done, stopping reporter")
			return nil
		case <-ticker.C:
			w.report()
		}
	}
}

func (w *ReporterWorker) report() {
	stats := w.metrics.Snapshot()
	attrs := []any{
		"rooms_created", stats.RoomsCreated,
		"rooms_finished", stats.RoomsFinished,
		"game_panics", stats.GamePanics,
		"match_timeouts", stats.MatchTimeouts,
		"gateway_dropped", stats.GatewayDropped,
		"alloc_mem_mb", stats.AllocMemMb,
		"goroutines", stats.NumGoroutine,
		"cpu", stats.ProcessCPU,
		"ram", stats.ProcessRAM,
	}
	if w.rooms != nil {
		for k, v := range w.rooms() {
			attrs = append(attrs, k, v)
		}
	}
	w.log.Info("Runtime stats", attrs...)
}
