// Package domain contains the core concepts of the game room runtime.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"fmt"
	"strings"
	"time"
)

type RoomID int64

type UserID int64

// GameType selects which game implementation a room runs.
type GameType int32

const (
	GameTypeUnknown GameType = iota
	GameTypeFuruyoni
	GameTypeHearthstone
)

func (g GameType) String() string {
	switch g {
	case GameTypeFuruyoni:
		return "Furuyoni"
	case GameTypeHearthstone:
		return "Hearthstone"
	default:
		return fmt.Sprintf("GameType(%d)", int32(g))
	}
}

// ParseGameType accepts the game name case-insensitively.
func ParseGameType(name string) (GameType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "furuyoni":
		return GameTypeFuruyoni, true
	case "hearthstone":
		return GameTypeHearthstone, true
	default:
		return GameTypeUnknown, false
	}
}

// RoomState only moves forward: WaitingForPlayers -> Running -> Finished.
type RoomState int32

const (
	RoomStateWaitingForPlayers RoomState = iota
	RoomStateRunning
	RoomStateFinished
)

func (s RoomState) String() string {
	switch s {
	case RoomStateWaitingForPlayers:
		return "WaitingForPlayers"
	case RoomStateRunning:
		return "Running"
	case RoomStateFinished:
		return "Finished"
	default:
		return fmt.Sprintf("RoomState(%d)", int32(s))
	}
}

// Active reports whether the room still holds its players.
func (s RoomState) Active() bool {
	return s == RoomStateWaitingForPlayers || s == RoomStateRunning
}

// PlayerSlot is a seat in a room. Index is the position at join time and never shifts.
type PlayerSlot struct {
	UserID   UserID
	JoinedAt time.Time
	Extra    []byte
	Ready    bool
	Index    int
}

// PlayerInfo is the public view of a PlayerSlot.
type PlayerInfo struct {
	UserID      UserID
	Index       int
	Ready       bool
	DisplayName string
}

// RoomInfo is an immutable snapshot of a room, safe to serialize.
type RoomInfo struct {
	ID         RoomID
	GameType   GameType
	State      RoomState
	MaxPlayers int
	Players    []PlayerInfo
	CreatedAt  time.Time
	StartedAt  time.Time
	FinishedAt time.Time
	// Error is set when the room finished abnormally (panic, timeout, abandon).
	Error string
}

func (r RoomInfo) HasPlayer(userID UserID) bool {
	for _, p := range r.Players {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

type JoinResult struct {
	RoomID      RoomID
	Index       int
	PlayerCount int
	// Started is true when this join moved the room to Running.
	Started bool
}
