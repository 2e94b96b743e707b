package server

import (
	"context"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/errors"
	"game-backend/gateway"
	"game-backend/mocks"
	"game-backend/rpc"
	"game-backend/services"
	"game-backend/wire"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fixture struct {
	client   *rpc.GameServiceClient
	registry *mocks.MockIRegistry
	gateway  *mocks.MockGateway
	subs     *gateway.Subscriptions
	conn     *grpc.ClientConn
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	gw := mocks.NewMockGateway(ctrl)
	subs := gateway.NewSubscriptions()

	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer(rpc.ServerOption())
	rpc.RegisterGameServiceServer(server, NewGameServer(log, services.NewRoomService(log, registry, subs), 4))
	rpc.RegisterGatewayServiceServer(server, NewGatewayServer(gw))
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		rpc.DialOption(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return fixture{client: rpc.NewGameServiceClient(conn), registry: registry, gateway: gw, subs: subs, conn: conn}
}

func TestGameServer_JoinRoom(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	// Given no room id, the registry matchmakes
	f.registry.EXPECT().Matchmake(gomock.Any(), domain.GameTypeFuruyoni, domain.UserID(1), []byte{0x01}).
		Return(domain.JoinResult{RoomID: 10, Index: 1, PlayerCount: 2, Started: true}, nil)

	resp, err := f.client.JoinRoom(ctx, &wire.JoinRoomRequest{GameType: "Furuyoni", UserID: 1, ExtraData: []byte{0x01}})
	req.NoError(err)
	req.Equal(int64(10), resp.RoomID)
	req.Equal(uint32(1), resp.AssignedIndex)
	req.Equal(uint32(2), resp.PlayerCount)
	req.True(resp.Started)

	// Given a room id, the registry joins it and errors map to status codes
	f.registry.EXPECT().Join(gomock.Any(), domain.RoomID(10), domain.UserID(3), gomock.Any()).Return(domain.JoinResult{}, errors.ErrRoomFull)
	_, err = f.client.JoinRoom(ctx, &wire.JoinRoomRequest{GameType: "Furuyoni", UserID: 3, RoomID: lo.ToPtr(int64(10))})
	req.Equal(codes.ResourceExhausted, status.Code(err))

	_, err = f.client.JoinRoom(ctx, &wire.JoinRoomRequest{GameType: "chess", UserID: 3})
	req.Equal(codes.InvalidArgument, status.Code(err))
}

func TestGameServer_ForceStartAndGetRoom(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	f.registry.EXPECT().ForceStart(gomock.Any(), domain.RoomID(4)).Return(errors.ErrRoomNotFound)
	_, err := f.client.ForceStart(ctx, &wire.RoomRequest{RoomID: 4})
	req.Equal(codes.NotFound, status.Code(err))

	f.registry.EXPECT().ForceStart(gomock.Any(), domain.RoomID(5)).Return(errors.ErrAlreadyStarted)
	_, err = f.client.ForceStart(ctx, &wire.RoomRequest{RoomID: 5})
	req.Equal(codes.FailedPrecondition, status.Code(err))

	info := domain.RoomInfo{
		ID:         5,
		GameType:   domain.GameTypeHearthstone,
		State:      domain.RoomStateRunning,
		MaxPlayers: 4,
		Players:    []domain.PlayerInfo{{UserID: 1, Index: 0, DisplayName: "alice"}, {UserID: 2, Index: 1, Ready: true}},
		CreatedAt:  time.Unix(100, 0).UTC(),
	}
	f.registry.EXPECT().Snapshot(gomock.Any(), domain.RoomID(5)).Return(info, nil)
	snapshot, err := f.client.GetRoom(ctx, &wire.RoomRequest{RoomID: 5})
	req.NoError(err)
	req.Equal(info, snapshot.Info)
}

func TestGameServer_SendChat(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.registry.EXPECT().SendChat(gomock.Any(), domain.RoomID(2), domain.UserID(9), "you noob").
		Return(event.RoomChat{Text: "you ****", CensoredWords: []string{"noob"}, Lang: "en"}, nil)

	resp, err := f.client.SendChat(context.Background(), &wire.SendChatRequest{RoomID: 2, UserID: 9, Text: "you noob"})
	req.NoError(err)
	req.Equal("you ****", resp.Text)
	req.Equal([]string{"noob"}, resp.CensoredWords)
	req.Equal("en", resp.Lang)

	f.registry.EXPECT().SendChat(gomock.Any(), domain.RoomID(2), domain.UserID(8), "hi").Return(event.RoomChat{}, errors.ErrNotInRoom)
	_, err = f.client.SendChat(context.Background(), &wire.SendChatRequest{RoomID: 2, UserID: 8, Text: "hi"})
	req.Equal(codes.PermissionDenied, status.Code(err))
}

func TestGameServer_Subscribe(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.registry.EXPECT().FindByUser(domain.UserID(9)).Return(domain.RoomID(2), true)

	// Given a member subscribed to its room
	stream, err := f.client.Subscribe(ctx, &wire.SubscribeRequest{RoomID: 2, UserID: 9})
	req.NoError(err)
	req.Eventually(func() bool { return f.subs.Count() == 1 }, time.Second, 5*time.Millisecond)

	// When a frame is broadcast to the room
	frame := wire.Wrap(wire.NameGameEvent, []byte{0x0A})
	for _, sink := range f.subs.SinksForRoom(2, nil) {
		req.NoError(sink.Consume(ctx, frame))
	}

	// Then the stream delivers the same bytes
	msg, err := stream.Recv()
	req.NoError(err)
	req.Equal(frame, msg.Frame)

	// When the client goes away the sink is detached
	cancel()
	req.Eventually(func() bool { return f.subs.Count() == 0 }, time.Second, 5*time.Millisecond)
}

func TestGameServer_SubscribeRejectsNonMembers(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.registry.EXPECT().FindByUser(domain.UserID(9)).Return(domain.RoomID(0), false)

	stream, err := f.client.Subscribe(context.Background(), &wire.SubscribeRequest{RoomID: 2, UserID: 9})
	req.NoError(err)
	_, err = stream.Recv()
	req.Equal(codes.PermissionDenied, status.Code(err))
}
