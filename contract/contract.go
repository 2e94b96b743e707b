//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"game-backend/domain"
	"game-backend/domain/event"
	"log/slog"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes, avoiding the need for
// manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Game is the seam between the runtime and a concrete game.
type Game interface {
	// MaxPlayerCount is queried once, when the room is built.
	MaxPlayerCount() int
	// CheckStart must be monotone: once true it stays true for larger counts.
	CheckStart(playerCount int) bool
	// PlayerInput receives a boxed frame while the room is Running.
	PlayerInput(room RoomHandle, userID domain.UserID, frame []byte)
	// DoGameLogic returns when the match is over. Errors are handled inside.
	DoGameLogic(ctx context.Context, room RoomHandle)
}

// GameFactory builds a fresh Game for each room.
type GameFactory func() Game

// RoomHandle is what a running game sees of its room.
type RoomHandle interface {
	ID() domain.RoomID
	Players() []domain.PlayerSlot
	// AwaitInput blocks until a payload named name arrives from userID.
	// A zero timeout waits until the room is cancelled.
	AwaitInput(ctx context.Context, userID domain.UserID, name string, timeout time.Duration) ([]byte, error)
	// Deliver hands a boxed frame to the room's input manager.
	Deliver(userID domain.UserID, frame []byte) error
	SendGameEvent(ctx context.Context, userIDs []domain.UserID, payload domain.Box) error
	MarkReady(userID domain.UserID) error
	Log() *slog.Logger
}

// Gateway fans outbound events out to the room subscribers.
// Implementations own idempotence and deduplication.
type Gateway interface {
	SendRoomCommonChange(ctx context.Context, e event.RoomCommonChange) error
	SendRoomChat(ctx context.Context, e event.RoomChat) error
	SendGameEvent(ctx context.Context, e event.GameEvent) error
}

// EventSink is one live subscriber connection of the local gateway.
// Consume must not block: a slow sink drops the frame.
type EventSink interface {
	Consume(ctx context.Context, frame []byte) error
}

// NameResolver fetches the display name shown in room snapshots.
type NameResolver interface {
	DisplayName(ctx context.Context, userID domain.UserID) (string, error)
}

// RoomArchive keeps the terminal snapshot of swept rooms.
type RoomArchive interface {
	Save(ctx context.Context, info domain.RoomInfo) error
	Load(ctx context.Context, roomID domain.RoomID) (domain.RoomInfo, error)
	List(ctx context.Context, limit int) ([]domain.RoomInfo, error)
}

// Moderator replaces forbidden words and reports which ones were hit.
type Moderator interface {
	Censor(text string) (string, []string)
	Language(text string) string
}

// IRegistry is the room registry as seen by the RPC and websocket layers.
type IRegistry interface {
	Create(ctx context.Context, gameType domain.GameType) (domain.RoomID, error)
	Join(ctx context.Context, roomID domain.RoomID, userID domain.UserID, extra []byte) (domain.JoinResult, error)
	Matchmake(ctx context.Context, gameType domain.GameType, userID domain.UserID, extra []byte) (domain.JoinResult, error)
	FindByUser(userID domain.UserID) (domain.RoomID, bool)
	ForceStart(ctx context.Context, roomID domain.RoomID) error
	Snapshot(ctx context.Context, roomID domain.RoomID) (domain.RoomInfo, error)
	DeliverInput(roomID domain.RoomID, userID domain.UserID, frame []byte) error
	SendChat(ctx context.Context, roomID domain.RoomID, userID domain.UserID, text string) (event.RoomChat, error)
}
