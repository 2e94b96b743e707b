package event

import (
	"game-backend/errors"
	"log/slog"
	"sync"
)

// CensoredHandler keeps a per-word hit count of censored chat messages.
type CensoredHandler struct {
	mu      sync.Mutex
	log     *slog.Logger
	counter uint64
	hit     map[string]uint64
}

func NewCensoredHandler(log *slog.Logger) *CensoredHandler {
	return &CensoredHandler{log: log, hit: make(map[string]uint64)}
}

func (h *CensoredHandler) Handle(event Event) {
	if event.Type != CensorshipHitType {
		return
	}
	payload, ok := event.Payload.(Censored)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.counter++
	for _, w := range payload.Words {
		h.hit[w]++
	}
}

// Hits returns a copy of the per-word counters.
func (h *CensoredHandler) Hits() map[string]uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[string]uint64, len(h.hit))
	for k, v := range h.hit {
		out[k] = v
	}
	return out
}

type GatewayDropHandler struct {
	log *slog.Logger
}

func NewGatewayDropHandler(log *slog.Logger) *GatewayDropHandler {
	return &GatewayDropHandler{log: log}
}

func (h GatewayDropHandler) Handle(event Event) {
	if event.Type != GatewayDropType {
		return
	}
	payload, ok := event.Payload.(GatewayDrop)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
		return
	}
	h.log.Warn("Outbound event dropped", "room_id", payload.Room, "name", payload.Name,
		"attempts", payload.Attempts, "reason", payload.Reason)
}
