package services

import (
	"context"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/errors"
	"game-backend/gateway"
	"game-backend/mocks"
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomService_JoinRoom_Validation(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	service := NewRoomService(log, registry, nil)

	baseCommand := domain.JoinRoomCommand{GameType: "Furuyoni", UserID: 7}

	tests := []struct {
		description string
		modify      func(c *domain.JoinRoomCommand)
		wantErr     error
	}{
		{"Should fail if game type is empty", func(c *domain.JoinRoomCommand) { c.GameType = "" }, errors.ErrInvalidRequest},
		{"Should fail if user id is not positive", func(c *domain.JoinRoomCommand) { c.UserID = 0 }, errors.ErrInvalidRequest},
		{"Should fail if room id is not positive", func(c *domain.JoinRoomCommand) { c.Room = lo.ToPtr(domain.RoomID(-1)) }, errors.ErrInvalidRequest},
		{"Should fail if extra data is too large", func(c *domain.JoinRoomCommand) { c.Extra = make([]byte, 4097) }, errors.ErrInvalidRequest},
		{"Should fail on unknown game", func(c *domain.JoinRoomCommand) { c.GameType = "chess" }, errors.ErrInvalidGameType},
	}

	for _, tt := range tests {
		cmd := baseCommand
		tt.modify(&cmd)
		_, err := service.JoinRoom(ctx, cmd)
		req.ErrorIs(err, tt.wantErr, tt.description)
	}
}

func TestRoomService_JoinRoom_Routes(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	service := NewRoomService(log, registry, nil)

	// Without a room id the registry matchmakes
	registry.EXPECT().Matchmake(ctx, domain.GameTypeHearthstone, domain.UserID(7), []byte("deck")).
		Return(domain.JoinResult{RoomID: 3, Index: 1, PlayerCount: 2}, nil)
	result, err := service.JoinRoom(ctx, domain.JoinRoomCommand{GameType: "hearthstone", UserID: 7, Extra: []byte("deck")})
	req.NoError(err)
	req.Equal(domain.RoomID(3), result.RoomID)

	// With a room id it joins that room
	registry.EXPECT().Join(ctx, domain.RoomID(5), domain.UserID(8), gomock.Nil()).Return(domain.JoinResult{}, errors.ErrRoomFull)
	_, err = service.JoinRoom(ctx, domain.JoinRoomCommand{GameType: "Furuyoni", UserID: 8, Room: lo.ToPtr(domain.RoomID(5))})
	req.ErrorIs(err, errors.ErrRoomFull)
}

func TestRoomService_SendChat(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	service := NewRoomService(log, registry, nil)

	_, err := service.SendChat(ctx, domain.SendChatCommand{Room: 1, UserID: 2, Text: strings.Repeat("a", 1001)})
	req.ErrorIs(err, errors.ErrInvalidRequest)

	registry.EXPECT().SendChat(ctx, domain.RoomID(1), domain.UserID(2), "gg").Return(event.RoomChat{Text: "gg", Lang: ""}, nil)
	chat, err := service.SendChat(ctx, domain.SendChatCommand{Room: 1, UserID: 2, Text: "gg"})
	req.NoError(err)
	req.Equal("gg", chat.Text)
}

func TestRoomService_ForceStartAndGetRoom(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	service := NewRoomService(log, registry, nil)

	req.ErrorIs(service.ForceStart(ctx, 0), errors.ErrInvalidRequest)
	_, err := service.GetRoom(ctx, -2)
	req.ErrorIs(err, errors.ErrInvalidRequest)

	registry.EXPECT().ForceStart(ctx, domain.RoomID(4)).Return(errors.ErrAlreadyStarted)
	req.ErrorIs(service.ForceStart(ctx, 4), errors.ErrAlreadyStarted)

	registry.EXPECT().Snapshot(ctx, domain.RoomID(4)).Return(domain.RoomInfo{ID: 4, State: domain.RoomStateRunning}, nil)
	info, err := service.GetRoom(ctx, 4)
	req.NoError(err)
	req.Equal(domain.RoomStateRunning, info.State)
}

func TestRoomService_Subscribe(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	subs := gateway.NewSubscriptions()
	service := NewRoomService(log, registry, subs)
	sink := mocks.NewMockEventSink(ctrl)

	// Given a user sitting in another room
	registry.EXPECT().FindByUser(domain.UserID(2)).Return(domain.RoomID(9), true)
	_, err := service.Subscribe(1, 2, sink)
	req.ErrorIs(err, errors.ErrNotInRoom)

	// When the user subscribes to its own room
	registry.EXPECT().FindByUser(domain.UserID(2)).Return(domain.RoomID(1), true)
	detach, err := service.Subscribe(1, 2, sink)
	req.NoError(err)
	req.Len(subs.SinksForRoom(1, nil), 1)

	// Then detaching releases the sink
	detach()
	req.Zero(subs.Count())

	_, err = NewRoomService(log, registry, nil).Subscribe(1, 2, sink)
	req.ErrorIs(err, errors.ErrNoGateway)
}
