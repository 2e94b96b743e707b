package runtime

import (
	"cmp"
	"context"
	"game-backend/contract"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/errors"
	"game-backend/observability"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Config struct {
	InboxDepth       int
	MatchMaxDuration time.Duration
	FinishedGrace    time.Duration
	WaitingTimeout   time.Duration
}

// Registry is the process-wide map of rooms.
// Its lock guards the maps only: room mutation always happens under the
// room's own lock, never while the registry lock is held.
type Registry struct {
	ctx        context.Context
	log        *slog.Logger
	supervisor contract.ISupervisor
	gateway    contract.Gateway
	games      map[domain.GameType]contract.GameFactory
	cfg        Config

	resolver      contract.NameResolver
	archive       contract.RoomArchive
	moderator     contract.Moderator
	metrics       *observability.Metrics
	telemetryChan chan event.Event

	nextID atomic.Int64

	mu        sync.RWMutex
	rooms     map[domain.RoomID]*Room
	userRooms map[domain.UserID]domain.RoomID
}

var _ contract.IRegistry = (*Registry)(nil)

// NewRegistry builds an empty registry. Drivers of the rooms it creates are
// started on supervisor and live as long as ctx.
func NewRegistry(ctx context.Context, log *slog.Logger, supervisor contract.ISupervisor,
	gateway contract.Gateway, games map[domain.GameType]contract.GameFactory, cfg Config) *Registry {
	return &Registry{
		ctx:        ctx,
		log:        log,
		supervisor: supervisor,
		gateway:    gateway,
		games:      games,
		cfg:        cfg,
		rooms:      make(map[domain.RoomID]*Room),
		userRooms:  make(map[domain.UserID]domain.RoomID),
	}
}

func (r *Registry) WithResolver(resolver contract.NameResolver) *Registry {
	r.resolver = resolver
	return r
}

func (r *Registry) WithArchive(archive contract.RoomArchive) *Registry {
	r.archive = archive
	return r
}

func (r *Registry) WithModerator(moderator contract.Moderator) *Registry {
	r.moderator = moderator
	return r
}

func (r *Registry) WithMetrics(metrics *observability.Metrics) *Registry {
	r.metrics = metrics
	return r
}

func (r *Registry) WithTelemetry(telemetryChan chan event.Event) *Registry {
	r.telemetryChan = telemetryChan
	return r
}

// Create builds a waiting room for gameType and starts its driver.
func (r *Registry) Create(ctx context.Context, gameType domain.GameType) (domain.RoomID, error) {
	factory, ok := r.games[gameType]
	if !ok {
		return 0, errors.ErrInvalidGameType
	}
	id := domain.RoomID(r.nextID.Add(1))
	input := NewInputManager(r.log, r.metrics, r.cfg.InboxDepth)
	room := NewRoom(r.log, id, gameType, factory(), input, r.gateway)

	r.mu.Lock()
	r.rooms[id] = room
	r.mu.Unlock()

	r.metrics.IncrRoomsCreated()
	r.supervisor.Start(r.ctx, NewDriver(r.log, room, r.gateway, r.resolver, r.metrics,
		r.cfg.MatchMaxDuration, r.cfg.WaitingTimeout))
	r.log.Debug("Room created", "room_id", id, "game_type", gameType.String())
	return id, nil
}

// Join seats userID in roomID. The user is reserved in the per-user index
// before the room lock is taken and released again if the room refuses.
func (r *Registry) Join(ctx context.Context, roomID domain.RoomID, userID domain.UserID, extra []byte) (domain.JoinResult, error) {
	r.mu.Lock()
	room, ok := r.rooms[roomID]
	if !ok {
		r.mu.Unlock()
		return domain.JoinResult{}, errors.ErrRoomNotFound
	}
	if current, ok := r.userRooms[userID]; ok {
		if other, exists := r.rooms[current]; exists && other.State().Active() {
			r.mu.Unlock()
			return domain.JoinResult{}, errors.ErrAlreadyJoined
		}
	}
	r.userRooms[userID] = roomID
	r.mu.Unlock()

	result, err := room.TryJoin(userID, extra)
	if err != nil {
		r.mu.Lock()
		if r.userRooms[userID] == roomID {
			delete(r.userRooms, userID)
		}
		r.mu.Unlock()
		return domain.JoinResult{}, err
	}
	r.log.Debug("Player joined", "room_id", roomID, "user_id", userID, "index", result.Index, "started", result.Started)
	return result, nil
}

// Matchmake seats userID in the oldest waiting room of gameType with a free
// seat, creating one when none is left.
func (r *Registry) Matchmake(ctx context.Context, gameType domain.GameType, userID domain.UserID, extra []byte) (domain.JoinResult, error) {
	if _, ok := r.games[gameType]; !ok {
		return domain.JoinResult{}, errors.ErrInvalidGameType
	}

	r.mu.RLock()
	candidates := lo.Filter(lo.Values(r.rooms), func(room *Room, _ int) bool {
		return room.GameType() == gameType &&
			room.State() == domain.RoomStateWaitingForPlayers &&
			room.PlayerCount() < room.MaxPlayers()
	})
	r.mu.RUnlock()
	slices.SortFunc(candidates, func(a, b *Room) int { return cmp.Compare(a.ID(), b.ID()) })

	for _, room := range candidates {
		result, err := r.Join(ctx, room.ID(), userID, extra)
		switch {
		case err == nil:
			return result, nil
		case errors.Is(err, errors.ErrRoomFull), errors.Is(err, errors.ErrRoomClosed), errors.Is(err, errors.ErrRoomNotFound):
			continue
		default:
			return domain.JoinResult{}, err
		}
	}

	roomID, err := r.Create(ctx, gameType)
	if err != nil {
		return domain.JoinResult{}, err
	}
	return r.Join(ctx, roomID, userID, extra)
}

// FindByUser returns the active room of userID.
func (r *Registry) FindByUser(userID domain.UserID) (domain.RoomID, bool) {
	r.mu.RLock()
	roomID, ok := r.userRooms[userID]
	room, exists := r.rooms[roomID]
	r.mu.RUnlock()

	if !ok || !exists || !room.State().Active() || !room.HasPlayer(userID) {
		return 0, false
	}
	return roomID, true
}

func (r *Registry) ForceStart(ctx context.Context, roomID domain.RoomID) error {
	room, ok := r.room(roomID)
	if !ok {
		return errors.ErrRoomNotFound
	}
	if err := room.ForceStart(); err != nil {
		return err
	}
	r.log.Info("Room force started", "room_id", roomID, "players", room.PlayerCount())
	return nil
}

// Snapshot returns the live view of roomID, or its archived terminal view
// once the room has been swept.
func (r *Registry) Snapshot(ctx context.Context, roomID domain.RoomID) (domain.RoomInfo, error) {
	if room, ok := r.room(roomID); ok {
		return room.Snapshot(ctx, r.resolver), nil
	}
	if r.archive == nil {
		return domain.RoomInfo{}, errors.ErrRoomNotFound
	}
	return r.archive.Load(ctx, roomID)
}

// DeliverInput routes an inbound websocket frame to its room.
func (r *Registry) DeliverInput(roomID domain.RoomID, userID domain.UserID, frame []byte) error {
	room, ok := r.room(roomID)
	if !ok {
		return errors.ErrRoomNotFound
	}
	return room.DeliverInput(userID, frame)
}

// SendChat moderates text and broadcasts it to the room.
func (r *Registry) SendChat(ctx context.Context, roomID domain.RoomID, userID domain.UserID, text string) (event.RoomChat, error) {
	room, ok := r.room(roomID)
	if !ok {
		return event.RoomChat{}, errors.ErrRoomNotFound
	}
	if !room.HasPlayer(userID) {
		return event.RoomChat{}, errors.ErrNotInRoom
	}

	chat := event.RoomChat{
		ID:     uuid.New(),
		Room:   roomID,
		UserID: userID,
		Text:   text,
		At:     time.Now().UTC(),
	}
	if r.moderator != nil {
		chat.Lang = r.moderator.Language(text)
		chat.Text, chat.CensoredWords = r.moderator.Censor(text)
	}
	if len(chat.CensoredWords) > 0 {
		r.publish(event.NewEvent(event.CensorshipHitType, event.Censored{Room: roomID, Words: chat.CensoredWords}))
	}
	if err := r.gateway.SendRoomChat(ctx, chat); err != nil {
		return event.RoomChat{}, err
	}
	return chat, nil
}

// Sweep evicts rooms finished for longer than the grace period, archives
// their terminal snapshot and cleans stale per-user entries.
func (r *Registry) Sweep(ctx context.Context, now time.Time) int {
	r.mu.Lock()
	var evicted []*Room
	for id, room := range r.rooms {
		if room.State() != domain.RoomStateFinished {
			continue
		}
		if now.Sub(room.FinishedAt()) < r.cfg.FinishedGrace {
			continue
		}
		evicted = append(evicted, room)
		delete(r.rooms, id)
	}
	for userID, roomID := range r.userRooms {
		if room, ok := r.rooms[roomID]; !ok || !room.State().Active() {
			delete(r.userRooms, userID)
		}
	}
	r.mu.Unlock()

	for _, room := range evicted {
		if r.archive == nil {
			continue
		}
		if err := r.archive.Save(ctx, room.Snapshot(ctx, r.resolver)); err != nil {
			r.log.Warn("Unable to archive room", "room_id", room.ID(), "error", err)
		}
	}
	if len(evicted) > 0 {
		r.metrics.AddRoomsEvicted(len(evicted))
		r.log.Debug("Rooms swept", "count", len(evicted))
	}
	return len(evicted)
}

// Stats counts live rooms per state.
func (r *Registry) Stats() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := lo.CountValuesBy(lo.Values(r.rooms), func(room *Room) string {
		return room.State().String()
	})
	stats := make(map[string]any, len(counts)+2)
	for state, n := range counts {
		stats[state] = n
	}
	stats["rooms"] = len(r.rooms)
	stats["players"] = len(r.userRooms)
	return stats
}

func (r *Registry) room(roomID domain.RoomID) (*Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[roomID]
	return room, ok
}

func (r *Registry) publish(evt event.Event) {
	if r.telemetryChan == nil {
		return
	}
	select {
	case r.telemetryChan <- evt:
	default:
		r.log.Debug("Telemetry event lost", "type", evt.Type)
	}
}
