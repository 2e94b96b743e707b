package event

import (
	"fmt"
	"game-backend/errors"
	"game-backend/observability"
	"log/slog"
)

type ProcessTrackerHandler struct {
	log     *slog.Logger
	metrics *observability.Metrics
}

func NewProcessTrackerHandler(log *slog.Logger, metrics *observability.Metrics) *ProcessTrackerHandler {
	return &ProcessTrackerHandler{log: log, metrics: metrics}
}

func (h ProcessTrackerHandler) Handle(event Event) {
	if event.Type != PIDTrackerType {
		return
	}
	payload, ok := event.Payload.(ProcessTracker)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
		return
	}
	h.metrics.SetProcess(string(payload.Status), payload.Cpu, payload.Ram)
	h.log.Debug(fmt.Sprintf("[%s] PID %d | STATUS %s | CPU %.2f%% | RAM %.2f%%",
		payload.Name, payload.PID, payload.Status, payload.Cpu, payload.Ram))
}
