package gateway

import (
	"context"
	"fmt"
	"game-backend/domain/event"
	"game-backend/wire"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// Publisher is the subset of *nats.Conn the gateway needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NatsGateway publishes boxed frames on game.room.<room_id>.<name>.
type NatsGateway struct {
	conn Publisher
	log  *slog.Logger
}

func NewNatsGateway(conn Publisher, log *slog.Logger) *NatsGateway {
	return &NatsGateway{conn: conn, log: log}
}

// DialNats connects to url and returns the gateway with its connection.
func DialNats(url string, log *slog.Logger) (*NatsGateway, *nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("game-backend"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return NewNatsGateway(conn, log), conn, nil
}

func Subject(e event.DomainEvent, name string) string {
	return fmt.Sprintf("game.room.%d.%s", e.RoomID(), name)
}

func (n *NatsGateway) SendRoomCommonChange(ctx context.Context, e event.RoomCommonChange) error {
	return n.publish(ctx, e, wire.NameRoomCommonChange)
}

func (n *NatsGateway) SendRoomChat(ctx context.Context, e event.RoomChat) error {
	return n.publish(ctx, e, wire.NameRoomChat)
}

func (n *NatsGateway) SendGameEvent(ctx context.Context, e event.GameEvent) error {
	return n.publish(ctx, e, wire.NameGameEvent)
}

func (n *NatsGateway) publish(ctx context.Context, e event.DomainEvent, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	frame, err := wire.Frame(e)
	if err != nil {
		return err
	}
	return n.conn.Publish(Subject(e, name), frame)
}
