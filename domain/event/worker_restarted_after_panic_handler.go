package event

import (
	"game-backend/errors"
	"game-backend/observability"
	"log/slog"
)

// WorkerRestartedAfterPanicHandler is triggered by the Supervisor when a worker
// recovers from a panic.
type WorkerRestartedAfterPanicHandler struct {
	log     *slog.Logger
	metrics *observability.Metrics
}

func NewWorkerRestartedAfterPanicHandler(log *slog.Logger, metrics *observability.Metrics) *WorkerRestartedAfterPanicHandler {
	return &WorkerRestartedAfterPanicHandler{log: log, metrics: metrics}
}

func (h *WorkerRestartedAfterPanicHandler) Handle(event Event) {
	if event.Type != RestartedAfterPanicType {
		return
	}
	payload, ok := event.Payload.(WorkerRestartedAfterPanic)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
		return
	}
	total := h.metrics.IncrWorkerRestarts()
	h.log.Debug("Worker restarted after panic", "worker", payload.WorkerName, "total", total)
}
