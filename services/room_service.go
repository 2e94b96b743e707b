package services

import (
	"context"
	"fmt"
	"game-backend/contract"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/errors"
	"game-backend/gateway"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

type IRoomService interface {
	JoinRoom(ctx context.Context, cmd domain.JoinRoomCommand) (domain.JoinResult, error)
	ForceStart(ctx context.Context, roomID domain.RoomID) error
	GetRoom(ctx context.Context, roomID domain.RoomID) (domain.RoomInfo, error)
	SendChat(ctx context.Context, cmd domain.SendChatCommand) (event.RoomChat, error)
	Subscribe(roomID domain.RoomID, userID domain.UserID, sink contract.EventSink) (func(), error)
}

// RoomService validates inbound requests before they reach the registry.
type RoomService struct {
	log       *slog.Logger
	validator *validator.Validate
	registry  contract.IRegistry
	subs      *gateway.Subscriptions
}

func NewRoomService(log *slog.Logger, registry contract.IRegistry, subs *gateway.Subscriptions) *RoomService {
	return &RoomService{
		log:       log,
		validator: validator.New(),
		registry:  registry,
		subs:      subs,
	}
}

func (s *RoomService) JoinRoom(ctx context.Context, cmd domain.JoinRoomCommand) (domain.JoinResult, error) {
	if err := s.validate(cmd); err != nil {
		return domain.JoinResult{}, err
	}
	gameType, ok := domain.ParseGameType(cmd.GameType)
	if !ok {
		return domain.JoinResult{}, fmt.Errorf("%w: %q", errors.ErrInvalidGameType, cmd.GameType)
	}
	if cmd.Room == nil {
		return s.registry.Matchmake(ctx, gameType, cmd.UserID, cmd.Extra)
	}
	return s.registry.Join(ctx, *cmd.Room, cmd.UserID, cmd.Extra)
}

func (s *RoomService) ForceStart(ctx context.Context, roomID domain.RoomID) error {
	if roomID <= 0 {
		return fmt.Errorf("%w: room_id", errors.ErrInvalidRequest)
	}
	return s.registry.ForceStart(ctx, roomID)
}

func (s *RoomService) GetRoom(ctx context.Context, roomID domain.RoomID) (domain.RoomInfo, error) {
	if roomID <= 0 {
		return domain.RoomInfo{}, fmt.Errorf("%w: room_id", errors.ErrInvalidRequest)
	}
	return s.registry.Snapshot(ctx, roomID)
}

func (s *RoomService) SendChat(ctx context.Context, cmd domain.SendChatCommand) (event.RoomChat, error) {
	if err := s.validate(cmd); err != nil {
		return event.RoomChat{}, err
	}
	return s.registry.SendChat(ctx, cmd.Room, cmd.UserID, cmd.Text)
}

// Subscribe attaches a sink to the room of a current member.
// The returned func detaches it.
func (s *RoomService) Subscribe(roomID domain.RoomID, userID domain.UserID, sink contract.EventSink) (func(), error) {
	if s.subs == nil {
		return nil, errors.ErrNoGateway
	}
	if current, ok := s.registry.FindByUser(userID); !ok || current != roomID {
		return nil, fmt.Errorf("%w: user %d room %d", errors.ErrNotInRoom, userID, roomID)
	}
	s.subs.Subscribe(userID, roomID, sink)
	return func() { s.subs.Unsubscribe(userID, roomID, sink) }, nil
}

func (s *RoomService) validate(cmd domain.Command) error {
	if err := s.validator.Struct(cmd); err != nil {
		s.log.Debug("Invalid command", "room_id", cmd.RoomID(), "error", err)
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return nil
}
