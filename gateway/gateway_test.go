package gateway

import (
	"context"
	"fmt"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/errors"
	"game-backend/mocks"
	"game-backend/observability"
	"game-backend/wire"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubscriptions_SinksForRoom(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	subs := NewSubscriptions()
	alice, bob, other := mocks.NewMockEventSink(ctrl), mocks.NewMockEventSink(ctrl), mocks.NewMockEventSink(ctrl)

	// Given two players of room 1 and one of room 2
	subs.Subscribe(1, 1, alice)
	subs.Subscribe(2, 1, bob)
	subs.Subscribe(3, 2, other)

	// Then the room and the targeted lookups only return members
	req.ElementsMatch([]any{alice, bob}, toAny(subs.SinksForRoom(1, nil)))
	req.ElementsMatch([]any{bob}, toAny(subs.SinksForRoom(1, []domain.UserID{2, 3})))
	req.Empty(subs.SinksForRoom(42, nil))

	// When a stale connection unsubscribes, the current one is kept
	replaced := mocks.NewMockEventSink(ctrl)
	subs.Subscribe(1, 1, replaced)
	subs.Unsubscribe(1, 1, alice)
	req.ElementsMatch([]any{replaced, bob}, toAny(subs.SinksForRoom(1, nil)))

	subs.Unsubscribe(1, 1, replaced)
	subs.Unsubscribe(2, 1, bob)
	req.Nil(subs.SinksForRoom(1, nil))
	req.Equal(1, subs.Count())
}

func TestRetrying_SucceedsAfterFailures(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	next := mocks.NewMockGateway(ctrl)
	metrics := observability.NewMetrics()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	retrying := NewRetrying(next, log, metrics, nil, 3, time.Millisecond)
	evt := event.GameEvent{ID: uuid.New(), Room: 4}

	// Given a gateway failing twice with the same event id
	gomock.InOrder(
		next.EXPECT().SendGameEvent(gomock.Any(), evt).Return(fmt.Errorf("unavailable")).Times(2),
		next.EXPECT().SendGameEvent(gomock.Any(), evt).Return(nil),
	)

	// When the event is sent
	err := retrying.SendGameEvent(context.Background(), evt)

	// Then the third attempt goes through
	req.NoError(err)
	req.Equal(uint64(2), metrics.Snapshot().GatewayRetries)
	req.Zero(metrics.Snapshot().GatewayDropped)
}

func TestRetrying_DropsAfterExhaustion(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	next := mocks.NewMockGateway(ctrl)
	metrics := observability.NewMetrics()
	telemetry := make(chan event.Event, 1)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	retrying := NewRetrying(next, log, metrics, telemetry, 2, time.Millisecond)

	next.EXPECT().SendRoomChat(gomock.Any(), gomock.Any()).Return(fmt.Errorf("unavailable")).Times(3)

	err := retrying.SendRoomChat(context.Background(), event.RoomChat{Room: 9})

	req.ErrorIs(err, errors.ErrGatewaySendFailure)
	req.Equal(uint64(1), metrics.Snapshot().GatewayDropped)
	drop := <-telemetry
	req.Equal(event.GatewayDropType, drop.Type)
	payload := drop.Payload.(event.GatewayDrop)
	req.Equal(domain.RoomID(9), payload.Room)
	req.Equal(3, payload.Attempts)
	req.Equal(wire.NameRoomChat, payload.Name)
}

func TestRetrying_StopsOnCancelledContext(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	next := mocks.NewMockGateway(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	retrying := NewRetrying(next, log, nil, nil, 5, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	next.EXPECT().SendRoomCommonChange(gomock.Any(), gomock.Any()).Return(context.Canceled).Times(1)

	err := retrying.SendRoomCommonChange(ctx, event.RoomCommonChange{Room: 1})
	req.ErrorIs(err, errors.ErrGatewaySendFailure)
	req.ErrorIs(err, context.Canceled)
}

func TestFanout_JoinsErrors(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	first, second := mocks.NewMockGateway(ctrl), mocks.NewMockGateway(ctrl)
	fanout := NewFanout(first, second)
	evt := event.RoomCommonChange{Room: 3, Kind: event.ChangeKindGameStart}

	// Given a failing first target, the second one is still called
	first.EXPECT().SendRoomCommonChange(gomock.Any(), evt).Return(errors.ErrGatewaySendFailure)
	second.EXPECT().SendRoomCommonChange(gomock.Any(), evt).Return(nil)

	err := fanout.SendRoomCommonChange(context.Background(), evt)
	req.ErrorIs(err, errors.ErrGatewaySendFailure)

	first.EXPECT().SendGameEvent(gomock.Any(), gomock.Any()).Return(nil)
	second.EXPECT().SendGameEvent(gomock.Any(), gomock.Any()).Return(nil)
	req.NoError(fanout.SendGameEvent(context.Background(), event.GameEvent{Room: 3}))
}

type fakePublisher struct {
	mu       sync.Mutex
	subjects []string
	frames   [][]byte
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjects = append(f.subjects, subject)
	f.frames = append(f.frames, data)
	return nil
}

func TestNatsGateway_PublishesFramesPerRoomSubject(t *testing.T) {
	req := require.New(t)
	publisher := &fakePublisher{}
	gw := NewNatsGateway(publisher, logs.GetLoggerFromLevel(slog.LevelDebug))
	evt := event.RoomChat{ID: uuid.New(), Room: 12, UserID: 3, Text: "gg", At: time.Now().UTC()}

	req.NoError(gw.SendRoomChat(context.Background(), evt))

	req.Equal([]string{"game.room.12.RoomChat"}, publisher.subjects)
	box, err := wire.UnmarshalBox(publisher.frames[0])
	req.NoError(err)
	req.Equal(wire.NameRoomChat, box.Name)
	decoded, err := wire.UnmarshalRoomChat(box.Payload)
	req.NoError(err)
	req.Equal(evt.ID, decoded.ID)
	req.Equal("gg", decoded.Text)
}

func TestHub_RejectsNonMembers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug), 8)
	hub.Bind(registry)
	server := httptest.NewServer(hub)
	defer server.Close()

	registry.EXPECT().FindByUser(domain.UserID(7)).Return(domain.RoomID(2), true)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(server, 1, 7), nil)
	req.Error(err)
	req.Equal(http.StatusForbidden, resp.StatusCode)

	_, resp, err = websocket.DefaultDialer.Dial(strings.Replace(wsURL(server, 1, 7), "room_id=1", "room_id=x", 1), nil)
	req.Error(err)
	req.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestHub_RoundTrip(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug), 8)
	hub.Bind(registry)
	server := httptest.NewServer(hub)
	defer server.Close()

	inputs := make(chan []byte, 1)
	chats := make(chan string, 1)
	registry.EXPECT().FindByUser(domain.UserID(7)).Return(domain.RoomID(1), true)
	registry.EXPECT().DeliverInput(domain.RoomID(1), domain.UserID(7), gomock.Any()).
		DoAndReturn(func(_ domain.RoomID, _ domain.UserID, frame []byte) error {
			inputs <- frame
			return nil
		})
	registry.EXPECT().SendChat(gomock.Any(), domain.RoomID(1), domain.UserID(7), "hello").
		DoAndReturn(func(_ context.Context, _ domain.RoomID, _ domain.UserID, text string) (event.RoomChat, error) {
			chats <- text
			return event.RoomChat{}, nil
		})

	// Given a connected member
	client, _, err := websocket.DefaultDialer.Dial(wsURL(server, 1, 7), nil)
	req.NoError(err)
	defer func() { _ = client.Close() }()
	req.Eventually(func() bool { return hub.Subscriptions().Count() == 1 }, time.Second, 5*time.Millisecond)

	// When the client sends a game input and a chat message
	input := wire.Wrap("Ready", []byte{0xAB})
	req.NoError(client.WriteMessage(websocket.BinaryMessage, input))
	req.NoError(client.WriteMessage(websocket.BinaryMessage, wire.Wrap(wire.NameChatMessage, wire.MarshalChatMessage("hello"))))

	// Then the input reaches the registry and the chat goes through moderation
	req.Equal(input, <-inputs)
	req.Equal("hello", <-chats)

	// When a game event targets another player, then this one is skipped
	req.NoError(hub.SendGameEvent(context.Background(), event.GameEvent{ID: uuid.New(), Room: 1, UserIDs: []domain.UserID{8},
		Payload: domain.Box{Name: "Skipped"}}))
	// And a targeted event reaches it
	evt := event.GameEvent{ID: uuid.New(), Room: 1, UserIDs: []domain.UserID{7}, Payload: domain.Box{Name: "TurnStarted", Payload: []byte{1}}}
	req.NoError(hub.SendGameEvent(context.Background(), evt))

	req.NoError(client.SetReadDeadline(time.Now().Add(2 * time.Second)))
	messageType, frame, err := client.ReadMessage()
	req.NoError(err)
	req.Equal(websocket.BinaryMessage, messageType)
	box, err := wire.UnmarshalBox(frame)
	req.NoError(err)
	req.Equal(wire.NameGameEvent, box.Name)
	decoded, err := wire.UnmarshalGameEvent(box.Payload)
	req.NoError(err)
	req.Equal(evt.ID, decoded.ID)
	req.Equal("TurnStarted", decoded.Payload.Name)

	// When the client leaves, the subscription is released
	_ = client.Close()
	req.Eventually(func() bool { return hub.Subscriptions().Count() == 0 }, time.Second, 5*time.Millisecond)
}

func TestConnection_ConsumeDropsWhenFull(t *testing.T) {
	req := require.New(t)
	c := &connection{send: make(chan []byte, 1), closeChan: make(chan struct{})}

	req.NoError(c.Consume(context.Background(), []byte{1}))
	req.ErrorIs(c.Consume(context.Background(), []byte{2}), errors.ErrSubscriberSlow)

	close(c.closeChan)
	req.ErrorIs(c.Consume(context.Background(), []byte{3}), errors.ErrSubscriberGone)
}

func wsURL(server *httptest.Server, roomID, userID int) string {
	return fmt.Sprintf("ws%s/ws?room_id=%d&user_id=%d", strings.TrimPrefix(server.URL, "http"), roomID, userID)
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
