package wire

import (
	"game-backend/domain"
	"game-backend/domain/event"
	"os"
	"regexp"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

var (
	protoMessage = regexp.MustCompile(`(?s)message (\w+) \{(.*?)\}`)
	protoField   = regexp.MustCompile(`(?m)^\s*(?:optional |repeated )?\w+ \w+ = (\d+);`)
)

// protoFieldNumbers maps every message of the committed .proto file to its field numbers.
func protoFieldNumbers(t *testing.T) map[string][]int {
	t.Helper()
	raw, err := os.ReadFile("../proto/game/v1/game.proto")
	require.NoError(t, err)

	messages := map[string][]int{}
	for _, m := range protoMessage.FindAllStringSubmatch(string(raw), -1) {
		numbers := []int{}
		for _, f := range protoField.FindAllStringSubmatch(m[2], -1) {
			n, err := strconv.Atoi(f[1])
			require.NoError(t, err)
			numbers = append(numbers, n)
		}
		sort.Ints(numbers)
		messages[m[1]] = numbers
	}
	return messages
}

// encodedFieldNumbers lists the distinct top level field numbers of b.
func encodedFieldNumbers(t *testing.T, b []byte) []int {
	t.Helper()
	seen := map[int]bool{}
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		seen[int(num)] = true
		return protowire.ConsumeFieldValue(num, typ, b)
	})
	require.NoError(t, err)

	numbers := []int{}
	for n := range seen {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

func marshal(t *testing.T, m Message) []byte {
	t.Helper()
	b, err := m.MarshalWire()
	require.NoError(t, err)
	return b
}

func TestEncoders_MatchProtoFieldNumbers(t *testing.T) {
	// Given every message fully populated so no field is omitted
	now := time.Now().UTC()
	roomID := int64(9)
	player := domain.PlayerInfo{UserID: 3, Index: 1, Ready: true, DisplayName: "player-3"}
	info := domain.RoomInfo{
		ID:         9,
		GameType:   domain.GameTypeFuruyoni,
		State:      domain.RoomStateFinished,
		MaxPlayers: 2,
		Players:    []domain.PlayerInfo{player},
		CreatedAt:  now,
		StartedAt:  now,
		FinishedAt: now,
		Error:      "timeout",
	}

	encoded := map[string][]byte{
		"BoxProtobufPayload": MarshalBox(domain.Box{Name: "Ready", Payload: []byte{1}}),
		"ChatMessage":        MarshalChatMessage("hello"),
		"Empty":              marshal(t, &Empty{}),
		"JoinRoomRequest": marshal(t, &JoinRoomRequest{
			GameType: "furuyoni", UserID: 3, RoomID: &roomID, ExtraData: []byte{1},
		}),
		"JoinRoomResponse": marshal(t, &JoinRoomResponse{RoomID: 9, AssignedIndex: 1, PlayerCount: 2, Started: true}),
		"RoomRequest":      marshal(t, &RoomRequest{RoomID: 9}),
		"SendChatRequest":  marshal(t, &SendChatRequest{RoomID: 9, UserID: 3, Text: "hi"}),
		"SendChatResponse": marshal(t, &SendChatResponse{Text: "hi", CensoredWords: []string{"x"}, Lang: "en"}),
		"SubscribeRequest": marshal(t, &SubscribeRequest{RoomID: 9, UserID: 3}),
		"FrameMessage":     marshal(t, &FrameMessage{Frame: []byte{1}}),
		"PlayerInfo":       marshalPlayerInfo(player),
		"RoomInfo":         MarshalRoomInfo(info),
		"RoomCommonChange": MarshalRoomCommonChange(event.RoomCommonChange{
			ID: uuid.New(), Room: 9, Kind: event.ChangeKindGameEnd, Snapshot: info, Error: "timeout", At: now,
		}),
		"RoomChat": MarshalRoomChat(event.RoomChat{
			ID: uuid.New(), Room: 9, UserID: 3, Text: "hi", Lang: "en", At: now,
		}),
		"GameEvent": MarshalGameEvent(event.GameEvent{
			ID: uuid.New(), Room: 9, UserIDs: []domain.UserID{3}, Payload: domain.Box{Name: "Ready"}, At: now,
		}),
	}

	// When the committed .proto file is parsed
	declared := protoFieldNumbers(t)

	// Then each encoder writes exactly the declared field numbers
	for name, b := range encoded {
		t.Run(name, func(t *testing.T) {
			want, ok := declared[name]
			require.True(t, ok, "message %s missing from game.proto", name)
			require.Equal(t, want, encodedFieldNumbers(t, b))
		})
	}

	// And the .proto file declares no message without an encoder
	for name := range declared {
		require.Contains(t, encoded, name)
	}
}
