package rpc

import (
	"context"
	"game-backend/wire"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	GameServiceName = "game.v1.GameService"

	GameService_JoinRoom_FullMethodName   = "/game.v1.GameService/JoinRoom"
	GameService_ForceStart_FullMethodName = "/game.v1.GameService/ForceStart"
	GameService_GetRoom_FullMethodName    = "/game.v1.GameService/GetRoom"
	GameService_SendChat_FullMethodName   = "/game.v1.GameService/SendChat"
	GameService_Subscribe_FullMethodName  = "/game.v1.GameService/Subscribe"
)

// GameServiceServer is the inbound API of the game backend.
type GameServiceServer interface {
	JoinRoom(context.Context, *wire.JoinRoomRequest) (*wire.JoinRoomResponse, error)
	ForceStart(context.Context, *wire.RoomRequest) (*wire.Empty, error)
	GetRoom(context.Context, *wire.RoomRequest) (*wire.RoomSnapshot, error)
	SendChat(context.Context, *wire.SendChatRequest) (*wire.SendChatResponse, error)
	// Subscribe streams the boxed outbound events of a room to one of its players.
	Subscribe(*wire.SubscribeRequest, grpc.ServerStreamingServer[wire.FrameMessage]) error
}

// UnimplementedGameServiceServer can be embedded to keep forward compatibility.
type UnimplementedGameServiceServer struct{}

func (UnimplementedGameServiceServer) JoinRoom(context.Context, *wire.JoinRoomRequest) (*wire.JoinRoomResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method JoinRoom not implemented")
}

func (UnimplementedGameServiceServer) ForceStart(context.Context, *wire.RoomRequest) (*wire.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method ForceStart not implemented")
}

func (UnimplementedGameServiceServer) GetRoom(context.Context, *wire.RoomRequest) (*wire.RoomSnapshot, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRoom not implemented")
}

func (UnimplementedGameServiceServer) SendChat(context.Context, *wire.SendChatRequest) (*wire.SendChatResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendChat not implemented")
}

func (UnimplementedGameServiceServer) Subscribe(*wire.SubscribeRequest, grpc.ServerStreamingServer[wire.FrameMessage]) error {
	return status.Error(codes.Unimplemented, "method Subscribe not implemented")
}

var GameService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: GameServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(GameServiceName, "JoinRoom", GameServiceServer.JoinRoom),
		unaryMethod(GameServiceName, "ForceStart", GameServiceServer.ForceStart),
		unaryMethod(GameServiceName, "GetRoom", GameServiceServer.GetRoom),
		unaryMethod(GameServiceName, "SendChat", GameServiceServer.SendChat),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       subscribeHandler,
			ServerStreams: true,
		},
	},
	Metadata: "game/v1/game.proto",
}

func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameService_ServiceDesc, srv)
}

func subscribeHandler(srv any, stream grpc.ServerStream) error {
	in := new(wire.SubscribeRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(GameServiceServer).Subscribe(in, &grpc.GenericServerStream[wire.SubscribeRequest, wire.FrameMessage]{ServerStream: stream})
}

type GameServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGameServiceClient(cc grpc.ClientConnInterface) *GameServiceClient {
	return &GameServiceClient{cc: cc}
}

func (c *GameServiceClient) JoinRoom(ctx context.Context, in *wire.JoinRoomRequest, opts ...grpc.CallOption) (*wire.JoinRoomResponse, error) {
	return invoke[wire.JoinRoomResponse](ctx, c.cc, GameService_JoinRoom_FullMethodName, in, opts)
}

func (c *GameServiceClient) ForceStart(ctx context.Context, in *wire.RoomRequest, opts ...grpc.CallOption) (*wire.Empty, error) {
	return invoke[wire.Empty](ctx, c.cc, GameService_ForceStart_FullMethodName, in, opts)
}

func (c *GameServiceClient) GetRoom(ctx context.Context, in *wire.RoomRequest, opts ...grpc.CallOption) (*wire.RoomSnapshot, error) {
	return invoke[wire.RoomSnapshot](ctx, c.cc, GameService_GetRoom_FullMethodName, in, opts)
}

func (c *GameServiceClient) SendChat(ctx context.Context, in *wire.SendChatRequest, opts ...grpc.CallOption) (*wire.SendChatResponse, error) {
	return invoke[wire.SendChatResponse](ctx, c.cc, GameService_SendChat_FullMethodName, in, opts)
}

func (c *GameServiceClient) Subscribe(ctx context.Context, in *wire.SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[wire.FrameMessage], error) {
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	stream, err := c.cc.NewStream(ctx, &GameService_ServiceDesc.Streams[0], GameService_Subscribe_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[wire.SubscribeRequest, wire.FrameMessage]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
