package client

import (
	"context"
	"fmt"
	"game-backend/domain/event"
	"game-backend/rpc"
	"game-backend/wire"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GatewayServiceClient is the subset of rpc.GatewayServiceClient used here.
type GatewayServiceClient interface {
	SendRoomCommonChange(ctx context.Context, in *wire.RoomCommonChangeMessage, opts ...grpc.CallOption) (*wire.Empty, error)
	SendRoomChat(ctx context.Context, in *wire.RoomChatMessage, opts ...grpc.CallOption) (*wire.Empty, error)
	SendGameEvent(ctx context.Context, in *wire.GameEventMessage, opts ...grpc.CallOption) (*wire.Empty, error)
}

// GatewayClient forwards outbound events to a remote gateway over gRPC.
// Each call is bounded by callTimeout; retries belong to gateway.Retrying.
type GatewayClient struct {
	client      GatewayServiceClient
	callTimeout time.Duration
}

func NewGatewayClient(client GatewayServiceClient, callTimeout time.Duration) *GatewayClient {
	return &GatewayClient{client: client, callTimeout: callTimeout}
}

// DialGateway opens a lazy client connection to addr.
func DialGateway(addr string, callTimeout time.Duration) (*GatewayClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		rpc.DialOption(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("dial gateway %s: %w", addr, err)
	}
	return NewGatewayClient(rpc.NewGatewayServiceClient(conn), callTimeout), conn, nil
}

func (c *GatewayClient) SendRoomCommonChange(ctx context.Context, e event.RoomCommonChange) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	_, err := c.client.SendRoomCommonChange(ctx, &wire.RoomCommonChangeMessage{Event: e})
	return err
}

func (c *GatewayClient) SendRoomChat(ctx context.Context, e event.RoomChat) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	_, err := c.client.SendRoomChat(ctx, &wire.RoomChatMessage{Event: e})
	return err
}

func (c *GatewayClient) SendGameEvent(ctx context.Context, e event.GameEvent) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	_, err := c.client.SendGameEvent(ctx, &wire.GameEventMessage{Event: e})
	return err
}

func (c *GatewayClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.callTimeout)
}
