package gateway

import (
	"context"
	"game-backend/domain/event"
	"log/slog"
)

// LogGateway writes every outbound event at debug level.
type LogGateway struct {
	log *slog.Logger
}

func NewLogGateway(log *slog.Logger) *LogGateway {
	return &LogGateway{log: log}
}

func (l *LogGateway) SendRoomCommonChange(_ context.Context, e event.RoomCommonChange) error {
	l.log.Debug("RoomCommonChange", "room_id", e.Room, "kind", e.Kind.String(),
		"state", e.Snapshot.State.String(), "players", len(e.Snapshot.Players), "error", e.Error)
	return nil
}

func (l *LogGateway) SendRoomChat(_ context.Context, e event.RoomChat) error {
	l.log.Debug("RoomChat", "room_id", e.Room, "user_id", e.UserID, "lang", e.Lang, "text", e.Text)
	return nil
}

func (l *LogGateway) SendGameEvent(_ context.Context, e event.GameEvent) error {
	l.log.Debug("GameEvent", "room_id", e.Room, "user_ids", e.UserIDs, "name", e.Payload.Name)
	return nil
}
