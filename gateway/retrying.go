package gateway

import (
	"context"
	"fmt"
	"game-backend/contract"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/errors"
	"game-backend/observability"
	"game-backend/wire"
	"log/slog"
	"time"
)

// Retrying retries a gateway with exponential backoff. Once the retries are
// exhausted the event is counted, reported on the telemetry channel and dropped.
// Events keep their id across attempts so the receiving side can deduplicate.
type Retrying struct {
	next          contract.Gateway
	log           *slog.Logger
	metrics       *observability.Metrics
	telemetryChan chan event.Event
	retries       int
	backoff       time.Duration
}

func NewRetrying(next contract.Gateway, log *slog.Logger, metrics *observability.Metrics,
	telemetryChan chan event.Event, retries int, backoff time.Duration) *Retrying {
	return &Retrying{
		next:          next,
		log:           log,
		metrics:       metrics,
		telemetryChan: telemetryChan,
		retries:       max(retries, 0),
		backoff:       backoff,
	}
}

func (r *Retrying) SendRoomCommonChange(ctx context.Context, e event.RoomCommonChange) error {
	return r.do(ctx, e.Room, wire.NameRoomCommonChange, func(ctx context.Context) error {
		return r.next.SendRoomCommonChange(ctx, e)
	})
}

func (r *Retrying) SendRoomChat(ctx context.Context, e event.RoomChat) error {
	return r.do(ctx, e.Room, wire.NameRoomChat, func(ctx context.Context) error {
		return r.next.SendRoomChat(ctx, e)
	})
}

func (r *Retrying) SendGameEvent(ctx context.Context, e event.GameEvent) error {
	return r.do(ctx, e.Room, wire.NameGameEvent, func(ctx context.Context) error {
		return r.next.SendGameEvent(ctx, e)
	})
}

func (r *Retrying) do(ctx context.Context, roomID domain.RoomID, name string, send func(ctx context.Context) error) error {
	var err error
	attempts := 0
	delay := r.backoff
	for {
		attempts++
		if err = send(ctx); err == nil {
			return nil
		}
		if attempts > r.retries || ctx.Err() != nil {
			break
		}
		r.metrics.IncrGatewayRetries()
		r.log.Warn("Gateway send failed, retrying", "room_id", roomID, "name", name,
			"attempt", attempts, "error", err)
		if !sleep(ctx, delay) {
			break
		}
		delay *= 2
	}

	r.metrics.IncrGatewayDropped()
	r.log.Error("Gateway send dropped", "room_id", roomID, "name", name, "attempts", attempts, "error", err)
	r.publish(event.NewEvent(event.GatewayDropType, event.GatewayDrop{
		Room:     roomID,
		Name:     name,
		Attempts: attempts,
		Reason:   err.Error(),
	}))
	return fmt.Errorf("%w: %s after %d attempts: %w", errors.ErrGatewaySendFailure, name, attempts, err)
}

func (r *Retrying) publish(evt event.Event) {
	if r.telemetryChan == nil {
		return
	}
	select {
	case r.telemetryChan <- evt:
	default:
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
