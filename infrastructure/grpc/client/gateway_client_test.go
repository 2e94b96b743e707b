package client

import (
	"context"
	"fmt"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/infrastructure/grpc/server"
	"game-backend/mocks"
	"game-backend/rpc"
	"game-backend/wire"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestGatewayClient_ForwardsEventsOverGRPC(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockGateway(ctrl)

	// Given a remote gateway served over bufconn
	listener := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer(rpc.ServerOption())
	rpc.RegisterGatewayServiceServer(srv, server.NewGatewayServer(remote))
	go func() { _ = srv.Serve(listener) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		rpc.DialOption(),
	)
	req.NoError(err)
	defer func() { _ = conn.Close() }()
	gw := NewGatewayClient(rpc.NewGatewayServiceClient(conn), time.Second)

	change := event.RoomCommonChange{
		ID:   uuid.New(),
		Room: 3,
		Kind: event.ChangeKindGameEnd,
		Snapshot: domain.RoomInfo{ID: 3, State: domain.RoomStateFinished, MaxPlayers: 2,
			Players: []domain.PlayerInfo{{UserID: 1, Index: 0}, {UserID: 2, Index: 1}}, Error: "match timeout"},
		Error: "match timeout",
		At:    time.Unix(1700000000, 0).UTC(),
	}
	gameEvent := event.GameEvent{
		ID:      uuid.New(),
		Room:    3,
		UserIDs: []domain.UserID{2},
		Payload: domain.Box{Name: "TurnStarted", Payload: []byte{0x08, 0x01}},
		At:      time.Unix(1700000001, 0).UTC(),
	}

	// Then the remote side receives the events unchanged
	remote.EXPECT().SendRoomCommonChange(gomock.Any(), change).Return(nil)
	remote.EXPECT().SendGameEvent(gomock.Any(), gameEvent).Return(fmt.Errorf("hub down"))

	// When they are sent through the client
	req.NoError(gw.SendRoomCommonChange(context.Background(), change))
	err = gw.SendGameEvent(context.Background(), gameEvent)
	req.Equal(codes.Internal, status.Code(err))
}

type stubGatewayService struct {
	GatewayServiceClient
	chats []event.RoomChat
	ctxOK bool
}

func (s *stubGatewayService) SendRoomChat(ctx context.Context, in *wire.RoomChatMessage, _ ...grpc.CallOption) (*wire.Empty, error) {
	_, s.ctxOK = ctx.Deadline()
	s.chats = append(s.chats, in.Event)
	return &wire.Empty{}, nil
}

func TestGatewayClient_BoundsEachCall(t *testing.T) {
	req := require.New(t)
	stub := &stubGatewayService{}
	gw := NewGatewayClient(stub, 50*time.Millisecond)

	req.NoError(gw.SendRoomChat(context.Background(), event.RoomChat{Room: 1, Text: "gg"}))

	req.True(stub.ctxOK)
	req.Len(stub.chats, 1)
	req.Equal("gg", stub.chats[0].Text)
}
