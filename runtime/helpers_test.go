package runtime

import (
	"context"
	"game-backend/contract"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/observability"
	"game-backend/runtime/workers"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
)

// scriptedGame starts once threshold players joined and runs body as its game logic.
type scriptedGame struct {
	max       int
	threshold int
	body      func(ctx context.Context, room contract.RoomHandle)
}

func (g scriptedGame) MaxPlayerCount() int { return g.max }

func (g scriptedGame) CheckStart(playerCount int) bool { return playerCount >= g.threshold }

func (g scriptedGame) PlayerInput(room contract.RoomHandle, userID domain.UserID, frame []byte) {
	_ = room.Deliver(userID, frame)
}

func (g scriptedGame) DoGameLogic(ctx context.Context, room contract.RoomHandle) {
	if g.body != nil {
		g.body(ctx, room)
	}
}

// recordingGateway keeps every event it receives.
type recordingGateway struct {
	mu      sync.Mutex
	changes []event.RoomCommonChange
	chats   []event.RoomChat
	games   []event.GameEvent
}

func (g *recordingGateway) SendRoomCommonChange(_ context.Context, e event.RoomCommonChange) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.changes = append(g.changes, e)
	return nil
}

func (g *recordingGateway) SendRoomChat(_ context.Context, e event.RoomChat) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.chats = append(g.chats, e)
	return nil
}

func (g *recordingGateway) SendGameEvent(_ context.Context, e event.GameEvent) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.games = append(g.games, e)
	return nil
}

func (g *recordingGateway) kinds(roomID domain.RoomID) []event.ChangeKind {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo.FilterMap(g.changes, func(c event.RoomCommonChange, _ int) (event.ChangeKind, bool) {
		return c.Kind, c.Room == roomID
	})
}

func (g *recordingGateway) last(roomID domain.RoomID, kind event.ChangeKind) (event.RoomCommonChange, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	change, _, ok := lo.FindLastIndexOf(g.changes, func(c event.RoomCommonChange) bool {
		return c.Room == roomID && c.Kind == kind
	})
	return change, ok
}

const (
	gameTwoPlayers  domain.GameType = domain.GameTypeFuruyoni
	gameFourPlayers domain.GameType = domain.GameTypeHearthstone
)

type registryFixture struct {
	registry *Registry
	gateway  *recordingGateway
	metrics  *observability.Metrics
}

// newRegistryFixture builds a registry whose two-player game runs body.
func newRegistryFixture(t *testing.T, cfg Config, body func(ctx context.Context, room contract.RoomHandle)) registryFixture {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	supervisor := workers.NewSupervisor(slog.Default(), nil, 10*time.Millisecond)
	t.Cleanup(func() {
		cancel()
		supervisor.Wait()
	})

	gateway := &recordingGateway{}
	metrics := observability.NewMetrics()
	games := map[domain.GameType]contract.GameFactory{
		gameTwoPlayers: func() contract.Game {
			return scriptedGame{max: 2, threshold: 2, body: body}
		},
		gameFourPlayers: func() contract.Game {
			return scriptedGame{max: 4, threshold: 4, body: body}
		},
	}
	registry := NewRegistry(ctx, slog.Default(), supervisor, gateway, games, cfg).WithMetrics(metrics)
	return registryFixture{registry: registry, gateway: gateway, metrics: metrics}
}

func defaultTestConfig() Config {
	return Config{
		InboxDepth:       1,
		MatchMaxDuration: time.Minute,
		FinishedGrace:    time.Minute,
		WaitingTimeout:   time.Minute,
	}
}

// blockUntilCancelled keeps a match running until its room ends.
func blockUntilCancelled(ctx context.Context, _ contract.RoomHandle) {
	<-ctx.Done()
}
