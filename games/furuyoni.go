package games

import (
	"context"
	"game-backend/contract"
	"time"
)

const furuyoniPlayers = 2

// Furuyoni is a two-player duel. It starts as soon as both seats are taken.
type Furuyoni struct {
	turnBased
}

func NewFuruyoni(rules Rules) *Furuyoni {
	rules.MinPlayers = furuyoniPlayers
	return &Furuyoni{turnBased: turnBased{rules: rules}}
}

func DefaultFuruyoniRules() Rules {
	return Rules{ReadyTimeout: 30 * time.Second, TurnTimeout: 90 * time.Second, MaxTurns: 60}
}

func (g *Furuyoni) MaxPlayerCount() int { return furuyoniPlayers }

func (g *Furuyoni) CheckStart(playerCount int) bool { return playerCount >= furuyoniPlayers }

func (g *Furuyoni) DoGameLogic(ctx context.Context, room contract.RoomHandle) {
	g.play(ctx, room)
}
