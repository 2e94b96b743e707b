package wire

import (
	"game-backend/domain"
	"game-backend/domain/event"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every request and response carried over gRPC.
type Message interface {
	MarshalWire() ([]byte, error)
	UnmarshalWire(b []byte) error
}

// JoinRoomRequest { string game_type = 1; int64 user_id = 2; optional int64 room_id = 3; bytes extra_data = 4; }
// A missing room_id asks for matchmaking.
type JoinRoomRequest struct {
	GameType  string
	UserID    int64
	RoomID    *int64
	ExtraData []byte
}

func (m *JoinRoomRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.GameType)
	b = appendInt64(b, 2, m.UserID)
	if m.RoomID != nil {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*m.RoomID))
	}
	b = appendBytes(b, 4, m.ExtraData)
	return b, nil
}

func (m *JoinRoomRequest) UnmarshalWire(b []byte) error {
	*m = JoinRoomRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.GameType = v
			return n
		case num == 2 && typ == protowire.VarintType:
			return consumeInt64(b, &m.UserID)
		case num == 3 && typ == protowire.VarintType:
			var v int64
			n := consumeInt64(b, &v)
			m.RoomID = &v
			return n
		case num == 4 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			m.ExtraData = append([]byte(nil), v...)
			return n
		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
}

// JoinRoomResponse { int64 room_id = 1; uint32 assigned_index = 2; uint32 player_count = 3; bool started = 4; }
type JoinRoomResponse struct {
	RoomID        int64
	AssignedIndex uint32
	PlayerCount   uint32
	Started       bool
}

func NewJoinRoomResponse(result domain.JoinResult) *JoinRoomResponse {
	return &JoinRoomResponse{
		RoomID:        int64(result.RoomID),
		AssignedIndex: uint32(result.Index),
		PlayerCount:   uint32(result.PlayerCount),
		Started:       result.Started,
	}
}

func (m *JoinRoomResponse) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.RoomID)
	b = appendInt64(b, 2, int64(m.AssignedIndex))
	b = appendInt64(b, 3, int64(m.PlayerCount))
	b = appendBool(b, 4, m.Started)
	return b, nil
}

func (m *JoinRoomResponse) UnmarshalWire(b []byte) error {
	*m = JoinRoomResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if typ != protowire.VarintType {
			return protowire.ConsumeFieldValue(num, typ, b)
		}
		var v int64
		n := consumeInt64(b, &v)
		switch num {
		case 1:
			m.RoomID = v
		case 2:
			m.AssignedIndex = uint32(v)
		case 3:
			m.PlayerCount = uint32(v)
		case 4:
			m.Started = v != 0
		}
		return n
	})
}

// RoomRequest { int64 room_id = 1; } addresses ForceStart and GetRoom.
type RoomRequest struct {
	RoomID int64
}

func (m *RoomRequest) MarshalWire() ([]byte, error) {
	return appendInt64(nil, 1, m.RoomID), nil
}

func (m *RoomRequest) UnmarshalWire(b []byte) error {
	*m = RoomRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 && typ == protowire.VarintType {
			return consumeInt64(b, &m.RoomID)
		}
		return protowire.ConsumeFieldValue(num, typ, b)
	})
}

// Empty {}
type Empty struct{}

func (*Empty) MarshalWire() ([]byte, error) { return nil, nil }

func (*Empty) UnmarshalWire(b []byte) error {
	return consumeFields(b, protowire.ConsumeFieldValue)
}

// RoomSnapshot carries a RoomInfo as a top level message.
type RoomSnapshot struct {
	Info domain.RoomInfo
}

func (m *RoomSnapshot) MarshalWire() ([]byte, error) {
	return MarshalRoomInfo(m.Info), nil
}

func (m *RoomSnapshot) UnmarshalWire(b []byte) error {
	info, err := UnmarshalRoomInfo(b)
	m.Info = info
	return err
}

// SendChatRequest { int64 room_id = 1; int64 user_id = 2; string text = 3; }
type SendChatRequest struct {
	RoomID int64
	UserID int64
	Text   string
}

func (m *SendChatRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.RoomID)
	b = appendInt64(b, 2, m.UserID)
	b = appendString(b, 3, m.Text)
	return b, nil
}

func (m *SendChatRequest) UnmarshalWire(b []byte) error {
	*m = SendChatRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeInt64(b, &m.RoomID)
		case num == 2 && typ == protowire.VarintType:
			return consumeInt64(b, &m.UserID)
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Text = v
			return n
		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
}

// SendChatResponse { string text = 1; repeated string censored_words = 2; string lang = 3; }
type SendChatResponse struct {
	Text          string
	CensoredWords []string
	Lang          string
}

func (m *SendChatResponse) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Text)
	for _, w := range m.CensoredWords {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, w)
	}
	b = appendString(b, 3, m.Lang)
	return b, nil
}

func (m *SendChatResponse) UnmarshalWire(b []byte) error {
	*m = SendChatResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if typ != protowire.BytesType {
			return protowire.ConsumeFieldValue(num, typ, b)
		}
		v, n := protowire.ConsumeString(b)
		switch num {
		case 1:
			m.Text = v
		case 2:
			m.CensoredWords = append(m.CensoredWords, v)
		case 3:
			m.Lang = v
		}
		return n
	})
}

// RoomCommonChangeMessage, RoomChatMessage and GameEventMessage carry the
// outbound events to a remote gateway.
type RoomCommonChangeMessage struct {
	Event event.RoomCommonChange
}

func (m *RoomCommonChangeMessage) MarshalWire() ([]byte, error) {
	return MarshalRoomCommonChange(m.Event), nil
}

func (m *RoomCommonChangeMessage) UnmarshalWire(b []byte) error {
	e, err := UnmarshalRoomCommonChange(b)
	m.Event = e
	return err
}

type RoomChatMessage struct {
	Event event.RoomChat
}

func (m *RoomChatMessage) MarshalWire() ([]byte, error) {
	return MarshalRoomChat(m.Event), nil
}

func (m *RoomChatMessage) UnmarshalWire(b []byte) error {
	e, err := UnmarshalRoomChat(b)
	m.Event = e
	return err
}

type GameEventMessage struct {
	Event event.GameEvent
}

func (m *GameEventMessage) MarshalWire() ([]byte, error) {
	return MarshalGameEvent(m.Event), nil
}

func (m *GameEventMessage) UnmarshalWire(b []byte) error {
	e, err := UnmarshalGameEvent(b)
	m.Event = e
	return err
}

// SubscribeRequest { int64 room_id = 1; int64 user_id = 2; }
type SubscribeRequest struct {
	RoomID int64
	UserID int64
}

func (m *SubscribeRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.RoomID)
	b = appendInt64(b, 2, m.UserID)
	return b, nil
}

func (m *SubscribeRequest) UnmarshalWire(b []byte) error {
	*m = SubscribeRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeInt64(b, &m.RoomID)
		case num == 2 && typ == protowire.VarintType:
			return consumeInt64(b, &m.UserID)
		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
}

// FrameMessage { bytes frame = 1; } carries one boxed outbound event.
type FrameMessage struct {
	Frame []byte
}

func (m *FrameMessage) MarshalWire() ([]byte, error) {
	return appendBytes(nil, 1, m.Frame), nil
}

func (m *FrameMessage) UnmarshalWire(b []byte) error {
	*m = FrameMessage{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			m.Frame = append([]byte(nil), v...)
			return n
		}
		return protowire.ConsumeFieldValue(num, typ, b)
	})
}
