package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"game-backend/domain"
	"game-backend/mocks"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func finishedRoom() domain.RoomInfo {
	return domain.RoomInfo{
		ID:         42,
		GameType:   domain.GameTypeFuruyoni,
		State:      domain.RoomStateFinished,
		MaxPlayers: 2,
		Players: []domain.PlayerInfo{
			{UserID: 1, Index: 0, DisplayName: "alice"},
			{UserID: 2, Index: 1},
		},
		StartedAt:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		Error:      "match timeout",
	}
}

func TestDebugServer_Stats(t *testing.T) {
	req := require.New(t)
	srv := NewDebugServer(logs.GetLoggerFromLevel(slog.LevelDebug), 0, func() map[string]any {
		return map[string]any{"rooms": 3}
	}, nil)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/stats", nil))

	req.Equal(http.StatusOK, rec.Code)
	var body map[string]any
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	req.Equal(float64(3), body["rooms"])
}

func TestDebugServer_ArchiveAndInspect(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	archive := mocks.NewMockRoomArchive(ctrl)
	srv := NewDebugServer(logs.GetLoggerFromLevel(slog.LevelDebug), 0, nil, archive)

	// Given an archive holding one finished room
	archive.EXPECT().List(gomock.Any(), 5).Return([]domain.RoomInfo{finishedRoom()}, nil)
	archive.EXPECT().List(gomock.Any(), defaultArchiveLimit).Return([]domain.RoomInfo{finishedRoom()}, nil)

	// When listing it as JSON
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/archive?limit=5", nil))

	// Then the snapshot is returned
	req.Equal(http.StatusOK, rec.Code)
	var rooms []domain.RoomInfo
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &rooms))
	req.Len(rooms, 1)
	req.Equal(domain.RoomID(42), rooms[0].ID)

	// When rendering the table
	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inspect", nil))

	// Then the row shows the players and the error
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), "Furuyoni")
	req.Contains(rec.Body.String(), "2/2 0:alice 1:2")
	req.Contains(rec.Body.String(), "match timeout")
}

func TestDebugServer_ArchiveErrors(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	archive := mocks.NewMockRoomArchive(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	rec := httptest.NewRecorder()
	NewDebugServer(log, 0, nil, nil).Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/archive", nil))
	req.Equal(http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	NewDebugServer(log, 0, nil, archive).Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inspect?limit=abc", nil))
	req.Equal(http.StatusBadRequest, rec.Code)

	archive.EXPECT().List(gomock.Any(), defaultArchiveLimit).Return(nil, fmt.Errorf("disk gone"))
	rec = httptest.NewRecorder()
	NewDebugServer(log, 0, nil, archive).Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/archive", nil))
	req.Equal(http.StatusInternalServerError, rec.Code)
}

func TestToInspectRow_WaitingRoom(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	row := ToInspectRow(domain.RoomInfo{ID: 7, GameType: domain.GameTypeHearthstone, MaxPlayers: 4})
	RenderTable(&out, []InspectRow{row})

	req.Equal("WaitingForPlayers", row.State)
	req.Equal("--:--:--", row.Started)
	req.Contains(out.String(), "Hearthstone")
}
