package gateway

import (
	"context"
	stderrors "errors"
	"game-backend/contract"
	"game-backend/domain/event"
)

// Fanout sends every event to all of its gateways, in order.
// One failing target does not stop the others; the errors are joined.
type Fanout struct {
	targets []contract.Gateway
}

func NewFanout(targets ...contract.Gateway) *Fanout {
	return &Fanout{targets: targets}
}

func (f *Fanout) SendRoomCommonChange(ctx context.Context, e event.RoomCommonChange) error {
	return f.each(func(g contract.Gateway) error { return g.SendRoomCommonChange(ctx, e) })
}

func (f *Fanout) SendRoomChat(ctx context.Context, e event.RoomChat) error {
	return f.each(func(g contract.Gateway) error { return g.SendRoomChat(ctx, e) })
}

func (f *Fanout) SendGameEvent(ctx context.Context, e event.GameEvent) error {
	return f.each(func(g contract.Gateway) error { return g.SendGameEvent(ctx, e) })
}

func (f *Fanout) each(send func(g contract.Gateway) error) error {
	var errs []error
	for _, target := range f.targets {
		if err := send(target); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
