package event

import (
	"fmt"
	"game-backend/errors"
	"log/slog"
)

// ChannelCapacityHandler warns when a monitored channel is close to full.
type ChannelCapacityHandler struct {
	log                  *slog.Logger
	lowCapacityThreshold int
}

func NewChannelCapacityHandler(log *slog.Logger, lowCapacityThreshold int) *ChannelCapacityHandler {
	return &ChannelCapacityHandler{log: log, lowCapacityThreshold: lowCapacityThreshold}
}

func (h ChannelCapacityHandler) Handle(event Event) {
	if event.Type != ChannelCapacityType {
		return
	}
	payload, ok := event.Payload.(ChannelCapacity)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
		return
	}
	if payload.Capacity <= 0 {
		return
	}
	if left := payload.Capacity - payload.Length; left <= h.lowCapacityThreshold {
		h.log.Warn(fmt.Sprintf("Channel %s nearly full: %d / %d", payload.ChannelName, payload.Length, payload.Capacity))
	}
}
