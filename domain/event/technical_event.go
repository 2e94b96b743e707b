package event

import (
	"game-backend/domain"
	"time"
)

// Type identifies a technical event travelling on the telemetry channel.
type Type string

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	ChannelCapacityType     Type = "CHANNEL_CAPACITY"
	PIDTrackerType          Type = "PID_TRACKER"
	CensorshipHitType       Type = "CENSORSHIP_HIT"
	GatewayDropType         Type = "GATEWAY_DROP"
)

// Event is the envelope of every technical (non-room) event.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

// Handler Each kind of event has his own handler
// Based on the Chain of responsibility pattern
type Handler interface {
	Handle(event Event)
}

func NewEvent(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}

type ProcessTracker struct {
	PID    domain.PID
	Name   string
	Status domain.PidStatus
	Cpu    float64
	Ram    float32
}

type Censored struct {
	Room  domain.RoomID
	Words []string
}

// GatewayDrop is emitted once an outbound event exhausted its retries.
type GatewayDrop struct {
	Room     domain.RoomID
	Name     string
	Attempts int
	Reason   string
}
