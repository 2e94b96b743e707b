package wire

import (
	"fmt"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/errors"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers shared by the three outbound messages.
// RoomCommonChange { string event_id = 1; int64 room_id = 2; int32 kind = 3; RoomInfo snapshot = 4; string error = 5; int64 at = 6; }
// RoomChat         { string event_id = 1; int64 room_id = 2; int64 user_id = 3; string text = 4; string lang = 5; int64 at = 6; }
// GameEvent        { string event_id = 1; int64 room_id = 2; repeated int64 user_ids = 3; BoxProtobufPayload payload = 4; int64 at = 6; }
const (
	evtID       protowire.Number = 1
	evtRoomID   protowire.Number = 2
	evtKind     protowire.Number = 3
	evtUserID   protowire.Number = 3
	evtUserIDs  protowire.Number = 3
	evtSnapshot protowire.Number = 4
	evtText     protowire.Number = 4
	evtPayload  protowire.Number = 4
	evtError    protowire.Number = 5
	evtLang     protowire.Number = 5
	evtAt       protowire.Number = 6
)

func MarshalRoomCommonChange(e event.RoomCommonChange) []byte {
	var b []byte
	b = appendString(b, evtID, e.ID.String())
	b = appendInt64(b, evtRoomID, int64(e.Room))
	b = appendInt64(b, evtKind, int64(e.Kind))
	b = appendMessage(b, evtSnapshot, MarshalRoomInfo(e.Snapshot))
	b = appendString(b, evtError, e.Error)
	b = appendTime(b, evtAt, e.At)
	return b
}

func UnmarshalRoomCommonChange(b []byte) (event.RoomCommonChange, error) {
	var e event.RoomCommonChange
	var id string
	var snapshot []byte
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		var v int64
		switch {
		case num == evtID && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(b)
			id = s
			return n
		case num == evtRoomID && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			e.Room = domain.RoomID(v)
			return n
		case num == evtKind && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			e.Kind = event.ChangeKind(v)
			return n
		case num == evtSnapshot && typ == protowire.BytesType:
			raw, n := protowire.ConsumeBytes(b)
			snapshot = raw
			return n
		case num == evtError && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(b)
			e.Error = s
			return n
		case num == evtAt && typ == protowire.VarintType:
			return consumeTime(b, &e.At)
		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
	if err != nil {
		return event.RoomCommonChange{}, err
	}
	if e.ID, err = parseEventID(id); err != nil {
		return event.RoomCommonChange{}, err
	}
	if e.Snapshot, err = UnmarshalRoomInfo(snapshot); err != nil {
		return event.RoomCommonChange{}, err
	}
	return e, nil
}

func MarshalRoomChat(e event.RoomChat) []byte {
	var b []byte
	b = appendString(b, evtID, e.ID.String())
	b = appendInt64(b, evtRoomID, int64(e.Room))
	b = appendInt64(b, evtUserID, int64(e.UserID))
	b = appendString(b, evtText, e.Text)
	b = appendString(b, evtLang, e.Lang)
	b = appendTime(b, evtAt, e.At)
	return b
}

func UnmarshalRoomChat(b []byte) (event.RoomChat, error) {
	var e event.RoomChat
	var id string
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		var v int64
		switch {
		case num == evtID && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(b)
			id = s
			return n
		case num == evtRoomID && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			e.Room = domain.RoomID(v)
			return n
		case num == evtUserID && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			e.UserID = domain.UserID(v)
			return n
		case num == evtText && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(b)
			e.Text = s
			return n
		case num == evtLang && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(b)
			e.Lang = s
			return n
		case num == evtAt && typ == protowire.VarintType:
			return consumeTime(b, &e.At)
		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
	if err != nil {
		return event.RoomChat{}, err
	}
	if e.ID, err = parseEventID(id); err != nil {
		return event.RoomChat{}, err
	}
	return e, nil
}

func MarshalGameEvent(e event.GameEvent) []byte {
	var b []byte
	b = appendString(b, evtID, e.ID.String())
	b = appendInt64(b, evtRoomID, int64(e.Room))
	if len(e.UserIDs) > 0 {
		var packed []byte
		for _, id := range e.UserIDs {
			packed = protowire.AppendVarint(packed, uint64(id))
		}
		b = appendMessage(b, evtUserIDs, packed)
	}
	b = appendMessage(b, evtPayload, MarshalBox(e.Payload))
	b = appendTime(b, evtAt, e.At)
	return b
}

func UnmarshalGameEvent(b []byte) (event.GameEvent, error) {
	var e event.GameEvent
	var id string
	var payload []byte
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		var v int64
		switch {
		case num == evtID && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(b)
			id = s
			return n
		case num == evtRoomID && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			e.Room = domain.RoomID(v)
			return n
		case num == evtUserIDs && typ == protowire.VarintType:
			// unpacked encoding is accepted as well
			n := consumeInt64(b, &v)
			e.UserIDs = append(e.UserIDs, domain.UserID(v))
			return n
		case num == evtUserIDs && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n
			}
			for len(packed) > 0 {
				u, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return m
				}
				e.UserIDs = append(e.UserIDs, domain.UserID(int64(u)))
				packed = packed[m:]
			}
			return n
		case num == evtPayload && typ == protowire.BytesType:
			raw, n := protowire.ConsumeBytes(b)
			payload = raw
			return n
		case num == evtAt && typ == protowire.VarintType:
			return consumeTime(b, &e.At)
		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
	if err != nil {
		return event.GameEvent{}, err
	}
	if e.ID, err = parseEventID(id); err != nil {
		return event.GameEvent{}, err
	}
	if e.Payload, err = UnmarshalBox(payload); err != nil {
		return event.GameEvent{}, err
	}
	return e, nil
}

// ChatMessage { string text = 1; }
const chatText protowire.Number = 1

func MarshalChatMessage(text string) []byte {
	return appendString(nil, chatText, text)
}

func UnmarshalChatMessage(b []byte) (string, error) {
	var text string
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == chatText && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(b)
			text = v
			return n
		}
		return protowire.ConsumeFieldValue(num, typ, b)
	})
	return text, err
}

// Frame boxes an outbound event for the websocket and NATS transports.
func Frame(e event.DomainEvent) ([]byte, error) {
	switch evt := e.(type) {
	case event.RoomCommonChange:
		return Wrap(NameRoomCommonChange, MarshalRoomCommonChange(evt)), nil
	case event.RoomChat:
		return Wrap(NameRoomChat, MarshalRoomChat(evt)), nil
	case event.GameEvent:
		return Wrap(NameGameEvent, MarshalGameEvent(evt)), nil
	default:
		return nil, fmt.Errorf("%w: unsupported event %T", errors.ErrMalformedPayload, e)
	}
}

func parseEventID(id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, nil
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: event id %q", errors.ErrMalformedPayload, id)
	}
	return parsed, nil
}
