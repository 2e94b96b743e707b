package games

import (
	"context"
	"game-backend/contract"
	"time"
)

const hearthstonePlayers = 4

// Hearthstone is a four-player free-for-all. It needs a full table to start
// but keeps playing while at least two ready players remain.
type Hearthstone struct {
	turnBased
}

func NewHearthstone(rules Rules) *Hearthstone {
	if rules.MinPlayers < 2 {
		rules.MinPlayers = 2
	}
	return &Hearthstone{turnBased: turnBased{rules: rules}}
}

func DefaultHearthstoneRules() Rules {
	return Rules{ReadyTimeout: 45 * time.Second, TurnTimeout: 75 * time.Second, MaxTurns: 120, MinPlayers: 2}
}

func (g *Hearthstone) MaxPlayerCount() int { return hearthstonePlayers }

func (g *Hearthstone) CheckStart(playerCount int) bool { return playerCount >= hearthstonePlayers }

func (g *Hearthstone) DoGameLogic(ctx context.Context, room contract.RoomHandle) {
	g.play(ctx, room)
}
