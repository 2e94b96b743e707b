package server

import (
	"context"
	"game-backend/contract"
	"game-backend/errors"
	"game-backend/wire"
)

// GatewayServer exposes a local gateway to remote game backends.
type GatewayServer struct {
	gateway contract.Gateway
}

func NewGatewayServer(gateway contract.Gateway) *GatewayServer {
	return &GatewayServer{gateway: gateway}
}

func (s *GatewayServer) SendRoomCommonChange(ctx context.Context, req *wire.RoomCommonChangeMessage) (*wire.Empty, error) {
	if err := s.gateway.SendRoomCommonChange(ctx, req.Event); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &wire.Empty{}, nil
}

func (s *GatewayServer) SendRoomChat(ctx context.Context, req *wire.RoomChatMessage) (*wire.Empty, error) {
	if err := s.gateway.SendRoomChat(ctx, req.Event); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &wire.Empty{}, nil
}

func (s *GatewayServer) SendGameEvent(ctx context.Context, req *wire.GameEventMessage) (*wire.Empty, error) {
	if err := s.gateway.SendGameEvent(ctx, req.Event); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &wire.Empty{}, nil
}
