package runtime

import (
	"context"
	"game-backend/contract"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/errors"
	"game-backend/wire"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Room is the shared handle over one match. Every mutation happens under mu,
// which is never held across a gateway send or an input await.
// state, count and finishedAt are mirrored atomically so the registry can
// read them without taking the room lock.
type Room struct {
	log      *slog.Logger
	id       domain.RoomID
	gameType domain.GameType
	game     contract.Game
	input    *InputManager
	gateway  contract.Gateway

	maxPlayers int
	createdAt  time.Time

	mu         sync.Mutex
	players    []domain.PlayerSlot
	startedAt  time.Time
	errMessage string
	abort      context.CancelCauseFunc

	stateMirror    atomic.Int32
	countMirror    atomic.Int32
	finishedMirror atomic.Int64

	started       chan struct{}
	rosterChanged chan struct{}
}

var _ contract.RoomHandle = (*Room)(nil)

func NewRoom(log *slog.Logger, id domain.RoomID, gameType domain.GameType,
	game contract.Game, input *InputManager, gateway contract.Gateway) *Room {
	return &Room{
		log:           log.With("room_id", id, "game_type", gameType.String()),
		id:            id,
		gameType:      gameType,
		game:          game,
		input:         input,
		gateway:       gateway,
		maxPlayers:    game.MaxPlayerCount(),
		createdAt:     time.Now().UTC(),
		started:       make(chan struct{}),
		rosterChanged: make(chan struct{}, 1),
	}
}

func (r *Room) ID() domain.RoomID { return r.id }

func (r *Room) GameType() domain.GameType { return r.gameType }

func (r *Room) Log() *slog.Logger { return r.log }

func (r *Room) State() domain.RoomState { return domain.RoomState(r.stateMirror.Load()) }

func (r *Room) PlayerCount() int { return int(r.countMirror.Load()) }

func (r *Room) MaxPlayers() int { return r.maxPlayers }

// FinishedAt is zero until the room reaches Finished.
func (r *Room) FinishedAt() time.Time {
	nanos := r.finishedMirror.Load()
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos).UTC()
}

// Started is closed exactly once, when the room enters Running.
// It is never closed for a room finishing without having started.
func (r *Room) Started() <-chan struct{} { return r.started }

// RosterChanged coalesces join notifications for the driver.
func (r *Room) RosterChanged() <-chan struct{} { return r.rosterChanged }

// TryJoin appends userID to the roster. When the join satisfies the start
// predicate the room is Running before TryJoin returns.
func (r *Room) TryJoin(userID domain.UserID, extra []byte) (domain.JoinResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.State() != domain.RoomStateWaitingForPlayers {
		return domain.JoinResult{}, errors.ErrRoomClosed
	}
	if r.indexOfLocked(userID) >= 0 {
		return domain.JoinResult{}, errors.ErrAlreadyJoined
	}
	if len(r.players) >= r.maxPlayers {
		return domain.JoinResult{}, errors.ErrRoomFull
	}

	slot := domain.PlayerSlot{
		UserID:   userID,
		JoinedAt: time.Now().UTC(),
		Extra:    append([]byte(nil), extra...),
		Index:    len(r.players),
	}
	r.players = append(r.players, slot)
	r.countMirror.Store(int32(len(r.players)))

	started := false
	if r.game.CheckStart(len(r.players)) {
		r.startLocked()
		started = true
	}
	r.notifyRosterChanged()

	return domain.JoinResult{
		RoomID:      r.id,
		Index:       slot.Index,
		PlayerCount: len(r.players),
		Started:     started,
	}, nil
}

// ForceStart moves a waiting room to Running regardless of the start predicate.
func (r *Room) ForceStart() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.State() {
	case domain.RoomStateWaitingForPlayers:
		r.startLocked()
		return nil
	case domain.RoomStateRunning:
		return errors.ErrAlreadyStarted
	default:
		if r.startedAt.IsZero() {
			return errors.ErrRoomClosed
		}
		return errors.ErrAlreadyStarted
	}
}

func (r *Room) startLocked() {
	r.startedAt = time.Now().UTC()
	r.stateMirror.Store(int32(domain.RoomStateRunning))
	close(r.started)
}

// MarkFinished is absorbing: it returns false when the room was already Finished.
func (r *Room) MarkFinished(reason string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finishLocked(reason)
}

// Abandon finishes the room only if it never started.
func (r *Room) Abandon(reason string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.State() != domain.RoomStateWaitingForPlayers {
		return false
	}
	return r.finishLocked(reason)
}

func (r *Room) finishLocked(reason string) bool {
	if r.State() == domain.RoomStateFinished {
		return false
	}
	r.errMessage = reason
	r.finishedMirror.Store(time.Now().UTC().UnixNano())
	r.stateMirror.Store(int32(domain.RoomStateFinished))
	return true
}

func (r *Room) notifyRosterChanged() {
	select {
	case r.rosterChanged <- struct{}{}:
	default:
	}
}

func (r *Room) indexOfLocked(userID domain.UserID) int {
	_, index, ok := lo.FindIndexOf(r.players, func(p domain.PlayerSlot) bool {
		return p.UserID == userID
	})
	if !ok {
		return -1
	}
	return index
}

func (r *Room) HasPlayer(userID domain.UserID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.indexOfLocked(userID) >= 0
}

// Players returns a copy of the roster in join order.
func (r *Room) Players() []domain.PlayerSlot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo.Map(r.players, func(p domain.PlayerSlot, _ int) domain.PlayerSlot {
		p.Extra = append([]byte(nil), p.Extra...)
		return p
	})
}

func (r *Room) MarkReady(userID domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	index := r.indexOfLocked(userID)
	if index < 0 {
		return errors.ErrNotInRoom
	}
	r.players[index].Ready = true
	return nil
}

// Snapshot clones the room under its lock, then resolves display names
// without holding it.
func (r *Room) Snapshot(ctx context.Context, resolver contract.NameResolver) domain.RoomInfo {
	r.mu.Lock()
	info := domain.RoomInfo{
		ID:         r.id,
		GameType:   r.gameType,
		State:      r.State(),
		MaxPlayers: r.maxPlayers,
		Players: lo.Map(r.players, func(p domain.PlayerSlot, _ int) domain.PlayerInfo {
			return domain.PlayerInfo{UserID: p.UserID, Index: p.Index, Ready: p.Ready}
		}),
		CreatedAt:  r.createdAt,
		StartedAt:  r.startedAt,
		FinishedAt: r.FinishedAt(),
		Error:      r.errMessage,
	}
	r.mu.Unlock()

	if resolver == nil {
		return info
	}
	for i := range info.Players {
		name, err := resolver.DisplayName(ctx, info.Players[i].UserID)
		if err != nil {
			r.log.Debug("Unable to resolve display name", "user_id", info.Players[i].UserID, "error", err)
			continue
		}
		info.Players[i].DisplayName = name
	}
	return info
}

// DeliverInput hands a boxed frame to the game while the room is Running.
// Frames for other states or from non-members are dropped.
func (r *Room) DeliverInput(userID domain.UserID, frame []byte) error {
	if r.State() != domain.RoomStateRunning || !r.HasPlayer(userID) {
		r.log.Debug("Input dropped", "user_id", userID, "state", r.State().String())
		return nil
	}
	if _, err := wire.UnmarshalBox(frame); err != nil {
		return err
	}
	r.game.PlayerInput(r, userID, frame)
	return nil
}

// Deliver forwards a frame to the input manager.
func (r *Room) Deliver(userID domain.UserID, frame []byte) error {
	return r.input.Deliver(userID, frame)
}

// AwaitInput waits for the next payload named name from userID. Arming a second
// waiter on the same key is a game bug and aborts the match.
func (r *Room) AwaitInput(ctx context.Context, userID domain.UserID, name string, timeout time.Duration) ([]byte, error) {
	payload, err := r.input.AwaitInput(ctx, userID, name, timeout)
	if errors.Is(err, errors.ErrWaiterConflict) {
		r.log.Error("Input waiter conflict, aborting match", "user_id", userID, "name", name)
		r.abortMatch(err)
	}
	return payload, err
}

func (r *Room) SendGameEvent(ctx context.Context, userIDs []domain.UserID, payload domain.Box) error {
	return r.gateway.SendGameEvent(ctx, newGameEvent(r.id, userIDs, payload))
}

func (r *Room) setAbort(abort context.CancelCauseFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.abort = abort
}

func (r *Room) abortMatch(cause error) {
	r.mu.Lock()
	abort := r.abort
	r.mu.Unlock()
	if abort != nil {
		abort(cause)
	}
}

func (r *Room) cancelInputs() {
	r.input.CancelAll()
}

func newGameEvent(roomID domain.RoomID, userIDs []domain.UserID, payload domain.Box) event.GameEvent {
	return event.GameEvent{
		ID:      uuid.New(),
		Room:    roomID,
		UserIDs: append([]domain.UserID(nil), userIDs...),
		Payload: payload,
		At:      time.Now().UTC(),
	}
}
