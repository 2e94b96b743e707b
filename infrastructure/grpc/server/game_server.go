package server

import (
	"context"
	"game-backend/domain"
	"game-backend/errors"
	"game-backend/gateway"
	"game-backend/rpc"
	"game-backend/services"
	"game-backend/wire"
	"log/slog"

	"github.com/samber/lo"
	"google.golang.org/grpc"
)

type GameServer struct {
	rpc.UnimplementedGameServiceServer
	roomService          services.IRoomService
	connectionBufferSize int
	log                  *slog.Logger
}

func NewGameServer(log *slog.Logger, roomService services.IRoomService, connectionBufferSize int) *GameServer {
	return &GameServer{roomService: roomService, connectionBufferSize: connectionBufferSize, log: log}
}

// JoinRoom seats the user in the requested room, or in the oldest waiting room
// of the game type when no room id is given. When the join fills the start
// condition the room is already Running when the response is sent.
func (s *GameServer) JoinRoom(ctx context.Context, req *wire.JoinRoomRequest) (*wire.JoinRoomResponse, error) {
	cmd := domain.JoinRoomCommand{
		GameType: req.GameType,
		UserID:   domain.UserID(req.UserID),
		Extra:    req.ExtraData,
	}
	if req.RoomID != nil {
		cmd.Room = lo.ToPtr(domain.RoomID(*req.RoomID))
	}
	result, err := s.roomService.JoinRoom(ctx, cmd)
	if err != nil {
		s.log.Debug("Join rejected", "user_id", req.UserID, "game_type", req.GameType, "error", err)
		return nil, errors.MapToGRPCError(err)
	}
	return wire.NewJoinRoomResponse(result), nil
}

func (s *GameServer) ForceStart(ctx context.Context, req *wire.RoomRequest) (*wire.Empty, error) {
	if err := s.roomService.ForceStart(ctx, domain.RoomID(req.RoomID)); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &wire.Empty{}, nil
}

func (s *GameServer) GetRoom(ctx context.Context, req *wire.RoomRequest) (*wire.RoomSnapshot, error) {
	info, err := s.roomService.GetRoom(ctx, domain.RoomID(req.RoomID))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &wire.RoomSnapshot{Info: info}, nil
}

func (s *GameServer) SendChat(ctx context.Context, req *wire.SendChatRequest) (*wire.SendChatResponse, error) {
	chat, err := s.roomService.SendChat(ctx, domain.SendChatCommand{
		Room:   domain.RoomID(req.RoomID),
		UserID: domain.UserID(req.UserID),
		Text:   req.Text,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &wire.SendChatResponse{Text: chat.Text, CensoredWords: chat.CensoredWords, Lang: chat.Lang}, nil
}

// Subscribe streams the boxed outbound events of the room until the client
// disconnects. Frames are the same bytes the websocket clients receive.
func (s *GameServer) Subscribe(req *wire.SubscribeRequest, stream grpc.ServerStreamingServer[wire.FrameMessage]) error {
	sink := gateway.NewStreamSink(s.connectionBufferSize)
	roomID, userID := domain.RoomID(req.RoomID), domain.UserID(req.UserID)
	detach, err := s.roomService.Subscribe(roomID, userID, sink)
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	defer detach()

	for {
		select {
		case <-stream.Context().Done():
			s.log.Debug("Subscriber disconnected", "room_id", roomID, "user_id", userID)
			return nil
		case frame := <-sink.Frames:
			if err := stream.Send(&wire.FrameMessage{Frame: frame}); err != nil {
				s.log.Error("failed to push frame to stream",
					"user_id", userID,
					"room_id", roomID,
					"error", err)
				return err
			}
		}
	}
}
