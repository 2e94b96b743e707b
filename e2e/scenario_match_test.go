package e2e

import (
	"context"
	"game-backend/domain"
	"game-backend/rpc"
	"game-backend/wire"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type testMatchSuite struct {
	BaseGrpcSuite
	userSeed int64
}

func TestMatchSuite(t *testing.T) {
	suite.Run(t, &testMatchSuite{})
}

// nextUser avoids clashing with users seated by previous runs against the same server.
func (s *testMatchSuite) nextUser() int64 {
	if s.userSeed == 0 {
		s.userSeed = time.Now().UnixNano() % 1_000_000_000_000
	}
	s.userSeed++
	return s.userSeed
}

func (s *testMatchSuite) TestDuelStartsWhenBothSeatsAreTaken() {
	alice, bob := s.nextUser(), s.nextUser()
	var roomID int64

	s.Run("Step 1: first player opens a room", func() {
		s.WithGame("Alice joins Furuyoni", func(ctx context.Context, client *rpc.GameServiceClient) {
			resp, err := client.JoinRoom(ctx, &wire.JoinRoomRequest{GameType: "Furuyoni", UserID: alice})
			s.Require().NoError(err)
			s.Require().False(resp.Started)
			roomID = resp.RoomID
		})
	})

	s.Run("Step 2: second player fills the room", func() {
		s.WithGame("Bob joins the same room", func(ctx context.Context, client *rpc.GameServiceClient) {
			resp, err := client.JoinRoom(ctx, &wire.JoinRoomRequest{GameType: "Furuyoni", UserID: bob, RoomID: lo.ToPtr(roomID)})
			s.Require().NoError(err)
			s.Require().True(resp.Started)
			s.Require().Equal(uint32(1), resp.AssignedIndex)
			s.Require().Equal(uint32(2), resp.PlayerCount)
		})
	})

	s.Run("Step 3: the room is running and a third player is refused", func() {
		s.WithGame("Snapshot and late join", func(ctx context.Context, client *rpc.GameServiceClient) {
			snapshot, err := client.GetRoom(ctx, &wire.RoomRequest{RoomID: roomID})
			s.Require().NoError(err)
			s.Require().Equal(domain.RoomStateRunning, snapshot.Info.State)

			_, err = client.JoinRoom(ctx, &wire.JoinRoomRequest{GameType: "Furuyoni", UserID: s.nextUser(), RoomID: lo.ToPtr(roomID)})
			s.Require().Error(err)
		})
	})

	s.Run("Step 4: chat is moderated", func() {
		s.WithGame("Alice talks", func(ctx context.Context, client *rpc.GameServiceClient) {
			resp, err := client.SendChat(ctx, &wire.SendChatRequest{RoomID: roomID, UserID: alice, Text: "good luck, have fun"})
			s.Require().NoError(err)
			s.Require().NotEmpty(resp.Text)
		})
	})
}

func (s *testMatchSuite) TestForceStartOnlyOnce() {
	host := s.nextUser()

	s.WithGame("Host opens a Hearthstone table and forces the start", func(ctx context.Context, client *rpc.GameServiceClient) {
		resp, err := client.JoinRoom(ctx, &wire.JoinRoomRequest{GameType: "Hearthstone", UserID: host})
		s.Require().NoError(err)
		if resp.Started {
			s.T().Skip("matchmaking completed a table left by another run")
		}

		_, err = client.ForceStart(ctx, &wire.RoomRequest{RoomID: resp.RoomID})
		s.Require().NoError(err)

		_, err = client.ForceStart(ctx, &wire.RoomRequest{RoomID: resp.RoomID})
		s.Require().Equal(codes.FailedPrecondition, status.Code(err))
	})
}
