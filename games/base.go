// Package games holds the concrete games plugged into the room runtime.
package games

import (
	"context"
	"fmt"
	"game-backend/contract"
	"game-backend/domain"
	"game-backend/errors"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/encoding/protowire"
)

// Inbound message names.
const (
	MsgReady      = "Ready"
	MsgTurnAction = "TurnAction"
)

// Outbound game event names.
const (
	EvtPlayerReady = "PlayerReady"
	EvtTurnStarted = "TurnStarted"
	EvtEliminated  = "PlayerEliminated"
	EvtGameOver    = "GameOver"
	EvtGameAborted = "GameAborted"
)

// TurnAction payloads.
const (
	ActionEndTurn = "end_turn"
	ActionConcede = "concede"
)

// BaseGame forwards every inbound frame to the room's input manager.
type BaseGame struct{}

func (BaseGame) PlayerInput(room contract.RoomHandle, userID domain.UserID, frame []byte) {
	if err := room.Deliver(userID, frame); err != nil {
		room.Log().Debug("Input rejected", "user_id", userID, "error", err)
	}
}

// Rules tune the shared turn engine.
type Rules struct {
	ReadyTimeout time.Duration
	TurnTimeout  time.Duration
	MaxTurns     int
	// MinPlayers is the number of ready players needed to play at all.
	MinPlayers int
}

// turnBased is the engine shared by the card games: a ready round, then
// players act in seat order until one is left or the turn budget is spent.
type turnBased struct {
	BaseGame
	rules Rules
}

func (g turnBased) play(ctx context.Context, room contract.RoomHandle) {
	log := room.Log()
	players := lo.Map(room.Players(), func(p domain.PlayerSlot, _ int) domain.UserID { return p.UserID })

	alive, err := g.readyRound(ctx, room, players)
	if err != nil {
		log.Debug("Ready round interrupted", "error", err)
		return
	}
	if len(alive) < g.rules.MinPlayers {
		g.broadcast(ctx, room, players, EvtGameAborted, encodeUsers(alive))
		return
	}

	// seat indexes alive; an eliminated seat is taken by the next player, so
	// the cursor only moves on a finished turn
	seat := 0
	for turn := 1; len(alive) > 1 && (g.rules.MaxTurns <= 0 || turn <= g.rules.MaxTurns); turn++ {
		seat %= len(alive)
		current := alive[seat]
		g.broadcast(ctx, room, players, EvtTurnStarted, encodeTurn(current, turn))

		payload, err := room.AwaitInput(ctx, current, MsgTurnAction, g.rules.TurnTimeout)
		switch {
		case err == nil && string(payload) == ActionEndTurn:
			seat++
		case err == nil && string(payload) == ActionConcede,
			errors.Is(err, errors.ErrInputTimeout):
			alive = lo.Without(alive, current)
			g.broadcast(ctx, room, players, EvtEliminated, encodeTurn(current, turn))
			// the next seat inherits this turn number
			turn--
		case err == nil:
			log.Debug("Unknown turn action ignored", "user_id", current, "action", string(payload))
			turn--
		default:
			log.Debug("Match interrupted", "error", err)
			return
		}
	}
	g.broadcast(ctx, room, players, EvtGameOver, encodeUsers(alive))
}

// readyRound waits for every player concurrently. Players that time out are
// left out of the match.
func (g turnBased) readyRound(ctx context.Context, room contract.RoomHandle, players []domain.UserID) ([]domain.UserID, error) {
	ready := make([]bool, len(players))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, userID := range players {
		eg.Go(func() error {
			_, err := room.AwaitInput(egCtx, userID, MsgReady, g.rules.ReadyTimeout)
			if errors.Is(err, errors.ErrInputTimeout) {
				return nil
			}
			if err != nil {
				return err
			}
			ready[i] = true
			if err := room.MarkReady(userID); err != nil {
				return err
			}
			g.broadcast(egCtx, room, players, EvtPlayerReady, encodeUsers([]domain.UserID{userID}))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return lo.Filter(players, func(_ domain.UserID, i int) bool { return ready[i] }), nil
}

func (g turnBased) broadcast(ctx context.Context, room contract.RoomHandle, to []domain.UserID, name string, payload []byte) {
	if err := room.SendGameEvent(ctx, to, domain.Box{Name: name, Payload: payload}); err != nil {
		room.Log().Warn(fmt.Sprintf("Unable to send %s", name), "error", err)
	}
}

// TurnStarted, PlayerEliminated { int64 user_id = 1; uint32 turn = 2; }
func encodeTurn(userID domain.UserID, turn int) []byte {
	b := protowire.AppendTag(nil, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(userID))
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(turn))
}

// PlayerReady, GameOver, GameAborted { repeated int64 user_ids = 1 [packed]; }
func encodeUsers(userIDs []domain.UserID) []byte {
	var packed []byte
	for _, id := range userIDs {
		packed = protowire.AppendVarint(packed, uint64(id))
	}
	if len(packed) == 0 {
		return nil
	}
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}
