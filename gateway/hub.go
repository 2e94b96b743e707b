// Package gateway holds the Gateway Adapter implementations the runtime emits to.
package gateway

import (
	"context"
	"fmt"
	"game-backend/contract"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/errors"
	"game-backend/wire"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// Hub is the in-process gateway: it frames outbound events and pushes them to
// the websocket clients of the room. It also serves the websocket endpoint and
// forwards inbound frames to the registry.
type Hub struct {
	log        *slog.Logger
	subs       *Subscriptions
	registry   atomic.Pointer[registryRef]
	upgrader   websocket.Upgrader
	sendBuffer int
}

type registryRef struct{ contract.IRegistry }

func NewHub(log *slog.Logger, sendBuffer int) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = 64
	}
	return &Hub{
		log:        log,
		subs:       NewSubscriptions(),
		sendBuffer: sendBuffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Bind attaches the registry once both sides are built.
func (h *Hub) Bind(registry contract.IRegistry) {
	h.registry.Store(&registryRef{registry})
}

func (h *Hub) Subscriptions() *Subscriptions { return h.subs }

func (h *Hub) SendRoomCommonChange(ctx context.Context, e event.RoomCommonChange) error {
	return h.broadcast(ctx, e, nil)
}

func (h *Hub) SendRoomChat(ctx context.Context, e event.RoomChat) error {
	return h.broadcast(ctx, e, nil)
}

func (h *Hub) SendGameEvent(ctx context.Context, e event.GameEvent) error {
	return h.broadcast(ctx, e, e.UserIDs)
}

// broadcast is best effort per subscriber: a slow or closed client loses the frame
// without failing the send for the others.
func (h *Hub) broadcast(ctx context.Context, e event.DomainEvent, targets []domain.UserID) error {
	frame, err := wire.Frame(e)
	if err != nil {
		return err
	}
	for _, sink := range h.subs.SinksForRoom(e.RoomID(), targets) {
		if err := sink.Consume(ctx, frame); err != nil {
			h.log.Debug("Frame dropped for subscriber", "room_id", e.RoomID(), "error", err)
		}
	}
	return nil
}

// ServeHTTP upgrades /ws?room_id=&user_id= for a member of the room.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ref := h.registry.Load()
	if ref == nil {
		http.Error(w, errors.ErrNoGateway.Error(), http.StatusServiceUnavailable)
		return
	}
	roomID, userID, err := parseSubscription(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if current, ok := ref.FindByUser(userID); !ok || current != roomID {
		http.Error(w, errors.ErrNotInRoom.Error(), http.StatusForbidden)
		return
	}
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "error", err)
		return
	}

	conn := newConnection(h.log, ws, roomID, userID, h.sendBuffer)
	h.subs.Subscribe(userID, roomID, conn)
	defer h.subs.Unsubscribe(userID, roomID, conn)
	h.log.Debug("Subscriber connected", "room_id", roomID, "user_id", userID)

	go conn.writePump()
	conn.readPump(func(frame []byte) { h.inbound(r.Context(), ref, roomID, userID, frame) })
	h.log.Debug("Subscriber disconnected", "room_id", roomID, "user_id", userID)
}

func (h *Hub) inbound(ctx context.Context, registry contract.IRegistry, roomID domain.RoomID, userID domain.UserID, frame []byte) {
	box, err := wire.UnmarshalBox(frame)
	if err != nil {
		h.log.Debug("Malformed inbound frame", "room_id", roomID, "user_id", userID, "error", err)
		return
	}
	if box.Name == wire.NameChatMessage {
		text, err := wire.UnmarshalChatMessage(box.Payload)
		if err == nil {
			_, err = registry.SendChat(ctx, roomID, userID, text)
		}
		if err != nil {
			h.log.Debug("Chat rejected", "room_id", roomID, "user_id", userID, "error", err)
		}
		return
	}
	if err := registry.DeliverInput(roomID, userID, frame); err != nil {
		h.log.Debug("Input rejected", "room_id", roomID, "user_id", userID, "error", err)
	}
}

func parseSubscription(r *http.Request) (domain.RoomID, domain.UserID, error) {
	q := r.URL.Query()
	roomID, err := strconv.ParseInt(q.Get("room_id"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: room_id", errors.ErrInvalidRequest)
	}
	userID, err := strconv.ParseInt(q.Get("user_id"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: user_id", errors.ErrInvalidRequest)
	}
	return domain.RoomID(roomID), domain.UserID(userID), nil
}
