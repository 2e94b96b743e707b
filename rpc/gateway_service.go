package rpc

import (
	"context"
	"game-backend/wire"

	"google.golang.org/grpc"
)

const (
	GatewayServiceName = "game.v1.GatewayService"

	GatewayService_SendRoomCommonChange_FullMethodName = "/game.v1.GatewayService/SendRoomCommonChange"
	GatewayService_SendRoomChat_FullMethodName         = "/game.v1.GatewayService/SendRoomChat"
	GatewayService_SendGameEvent_FullMethodName        = "/game.v1.GatewayService/SendGameEvent"
)

// GatewayServiceServer receives the outbound events of a remote game backend.
type GatewayServiceServer interface {
	SendRoomCommonChange(context.Context, *wire.RoomCommonChangeMessage) (*wire.Empty, error)
	SendRoomChat(context.Context, *wire.RoomChatMessage) (*wire.Empty, error)
	SendGameEvent(context.Context, *wire.GameEventMessage) (*wire.Empty, error)
}

var GatewayService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: GatewayServiceName,
	HandlerType: (*GatewayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(GatewayServiceName, "SendRoomCommonChange", GatewayServiceServer.SendRoomCommonChange),
		unaryMethod(GatewayServiceName, "SendRoomChat", GatewayServiceServer.SendRoomChat),
		unaryMethod(GatewayServiceName, "SendGameEvent", GatewayServiceServer.SendGameEvent),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "game/v1/gateway.proto",
}

func RegisterGatewayServiceServer(s grpc.ServiceRegistrar, srv GatewayServiceServer) {
	s.RegisterService(&GatewayService_ServiceDesc, srv)
}

type GatewayServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGatewayServiceClient(cc grpc.ClientConnInterface) *GatewayServiceClient {
	return &GatewayServiceClient{cc: cc}
}

func (c *GatewayServiceClient) SendRoomCommonChange(ctx context.Context, in *wire.RoomCommonChangeMessage, opts ...grpc.CallOption) (*wire.Empty, error) {
	return invoke[wire.Empty](ctx, c.cc, GatewayService_SendRoomCommonChange_FullMethodName, in, opts)
}

func (c *GatewayServiceClient) SendRoomChat(ctx context.Context, in *wire.RoomChatMessage, opts ...grpc.CallOption) (*wire.Empty, error) {
	return invoke[wire.Empty](ctx, c.cc, GatewayService_SendRoomChat_FullMethodName, in, opts)
}

func (c *GatewayServiceClient) SendGameEvent(ctx context.Context, in *wire.GameEventMessage, opts ...grpc.CallOption) (*wire.Empty, error) {
	return invoke[wire.Empty](ctx, c.cc, GatewayService_SendGameEvent_FullMethodName, in, opts)
}
