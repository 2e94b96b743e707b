package runtime

import (
	"context"
	"fmt"
	"game-backend/contract"
	"game-backend/domain/event"
	"game-backend/errors"
	"game-backend/observability"
	"log/slog"
	"time"
)

const (
	// gameExitGrace bounds how long a cancelled game body may take to return
	// before the room is finished without it.
	gameExitGrace = 5 * time.Second
	sendTimeout   = 10 * time.Second
)

// Driver is the per-room worker: it waits for the start signal, runs the game
// body and emits lifecycle events. It contains every failure of the game.
type Driver struct {
	log            *slog.Logger
	room           *Room
	gateway        contract.Gateway
	resolver       contract.NameResolver
	metrics        *observability.Metrics
	matchTimeout   time.Duration
	waitingTimeout time.Duration
}

func NewDriver(log *slog.Logger, room *Room, gateway contract.Gateway, resolver contract.NameResolver,
	metrics *observability.Metrics, matchTimeout, waitingTimeout time.Duration) *Driver {
	return &Driver{
		log:            log,
		room:           room,
		gateway:        gateway,
		resolver:       resolver,
		metrics:        metrics,
		matchTimeout:   matchTimeout,
		waitingTimeout: waitingTimeout,
	}
}

// Run never returns an error so the supervisor never replays a room.
func (d *Driver) Run(ctx context.Context) error {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Driver panic", "room_id", d.room.ID(), "panic", r)
			d.finish(ctx, fmt.Sprintf("%v: %v", errors.ErrWorkerPanic, r))
		}
	}()

	if !d.awaitStart(ctx) {
		return nil
	}
	d.metrics.IncrRoomsStarted()
	d.emit(ctx, event.ChangeKindGameStart)

	reason := d.play(ctx)
	d.finish(ctx, reason)
	return nil
}

// awaitStart reports false when the room finished without starting.
func (d *Driver) awaitStart(ctx context.Context) bool {
	var waiting <-chan time.Time
	if d.waitingTimeout > 0 {
		t := time.NewTimer(d.waitingTimeout)
		defer t.Stop()
		waiting = t.C
	}

	for {
		select {
		case <-d.room.RosterChanged():
			d.emit(ctx, event.ChangeKindPlayerJoined)
		case <-d.room.Started():
			// the join that started the room still deserves its own event
			select {
			case <-d.room.RosterChanged():
				d.emit(ctx, event.ChangeKindPlayerJoined)
			default:
			}
			return true
		case <-waiting:
			if d.room.Abandon(errors.ErrAbandoned.Error()) {
				d.log.Info("Room abandoned before start", "room_id", d.room.ID(), "players", d.room.PlayerCount())
				d.closeRoom(ctx)
				return false
			}
			// lost the race against a start
			waiting = nil
		case <-ctx.Done():
			if d.room.Abandon(ctx.Err().Error()) {
				d.closeRoom(ctx)
				return false
			}
			waiting = nil
		}
	}
}

// play runs the game body under the match deadline and returns the finish reason.
func (d *Driver) play(ctx context.Context) string {
	var matchCtx context.Context
	var cancel context.CancelFunc
	if d.matchTimeout > 0 {
		matchCtx, cancel = context.WithTimeoutCause(ctx, d.matchTimeout, errors.ErrMatchTimeout)
	} else {
		matchCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	abortCtx, abort := context.WithCancelCause(matchCtx)
	defer abort(nil)
	d.room.setAbort(abort)

	done := make(chan any, 1)
	go func() {
		defer func() { done <- recover() }()
		d.room.game.DoGameLogic(abortCtx, d.room)
	}()

	select {
	case r := <-done:
		if r != nil || abortCtx.Err() == nil {
			return d.exitReason(r)
		}
		// the body returned because the match was interrupted
		return d.interrupted(abortCtx).Error()
	case <-abortCtx.Done():
	}

	cause := d.interrupted(abortCtx)
	select {
	case r := <-done:
		if r != nil {
			return d.exitReason(r)
		}
	case <-time.After(gameExitGrace):
		d.log.Error("Game body ignored cancellation", "room_id", d.room.ID())
	}
	return cause.Error()
}

// interrupted fails the pending awaits of a match whose context ended.
func (d *Driver) interrupted(abortCtx context.Context) error {
	cause := context.Cause(abortCtx)
	if errors.Is(cause, errors.ErrMatchTimeout) {
		d.metrics.IncrMatchTimeouts()
	}
	d.log.Warn("Match interrupted", "room_id", d.room.ID(), "cause", cause)
	d.room.cancelInputs()
	return cause
}

func (d *Driver) exitReason(recovered any) string {
	if recovered == nil {
		return ""
	}
	d.metrics.IncrGamePanics()
	d.log.Error("Game logic panic", "room_id", d.room.ID(), "panic", recovered)
	return fmt.Sprintf("%v: %v", errors.ErrGameLogicPanic, recovered)
}

func (d *Driver) finish(ctx context.Context, reason string) {
	if !d.room.MarkFinished(reason) {
		return
	}
	d.closeRoom(ctx)
}

// closeRoom fails pending awaits and publishes GameEnd for a finished room.
func (d *Driver) closeRoom(ctx context.Context) {
	d.room.cancelInputs()
	d.metrics.IncrRoomsFinished()
	d.emit(ctx, event.ChangeKindGameEnd)
}

// emit survives the cancellation of ctx so GameEnd still goes out on shutdown.
func (d *Driver) emit(ctx context.Context, kind event.ChangeKind) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	change := event.NewRoomCommonChange(kind, d.room.Snapshot(sendCtx, d.resolver))
	if err := d.gateway.SendRoomCommonChange(sendCtx, change); err != nil {
		d.log.Warn("Unable to send room change", "room_id", d.room.ID(), "kind", kind.String(), "error", err)
	}
}
