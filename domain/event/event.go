package event

import (
	"game-backend/domain"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is anything the runtime emits towards the Gateway Adapter.
type DomainEvent interface {
	RoomID() domain.RoomID
}

type ChangeKind int32

const (
	ChangeKindUnknown ChangeKind = iota
	ChangeKindPlayerJoined
	ChangeKindGameStart
	ChangeKindGameEnd
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeKindPlayerJoined:
		return "PlayerJoined"
	case ChangeKindGameStart:
		return "GameStart"
	case ChangeKindGameEnd:
		return "GameEnd"
	default:
		return "Unknown"
	}
}

// RoomCommonChange carries a lifecycle transition with the room snapshot.
// ID is stable across retries so adapters can deduplicate.
type RoomCommonChange struct {
	ID       uuid.UUID
	Room     domain.RoomID
	Kind     ChangeKind
	Snapshot domain.RoomInfo
	Error    string
	At       time.Time
}

func (e RoomCommonChange) RoomID() domain.RoomID { return e.Room }

type RoomChat struct {
	ID     uuid.UUID
	Room   domain.RoomID
	UserID domain.UserID
	Text   string
	// Lang is the ISO 639-1 code detected from Text, empty when unsure.
	Lang string
	// CensoredWords lists the dictionary hits replaced in Text.
	CensoredWords []string
	At            time.Time
}

func (e RoomChat) RoomID() domain.RoomID { return e.Room }

// GameEvent is a game-specific payload addressed to a subset of the room.
// An empty UserIDs slice targets every subscriber of the room.
type GameEvent struct {
	ID      uuid.UUID
	Room    domain.RoomID
	UserIDs []domain.UserID
	Payload domain.Box
	At      time.Time
}

func (e GameEvent) RoomID() domain.RoomID { return e.Room }

func NewRoomCommonChange(kind ChangeKind, snapshot domain.RoomInfo) RoomCommonChange {
	return RoomCommonChange{
		ID:       uuid.New(),
		Room:     snapshot.ID,
		Kind:     kind,
		Snapshot: snapshot,
		Error:    snapshot.Error,
		At:       time.Now().UTC(),
	}
}
