// Package wire encodes the runtime messages in protobuf wire format.
//
// The field numbers below are the contract with clients and with the gateway;
// never renumber a field, only append new ones.
package wire

import (
	"fmt"
	"game-backend/domain"
	"game-backend/errors"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	NameRoomCommonChange = "RoomCommonChange"
	NameRoomChat         = "RoomChat"
	NameGameEvent        = "GameEvent"

	// NameChatMessage is the only inbound box handled by the gateway itself.
	NameChatMessage = "ChatMessage"
)

// BoxProtobufPayload { string name = 1; bytes payload = 2; }
const (
	boxName    protowire.Number = 1
	boxPayload protowire.Number = 2
)

// MarshalBox encodes the envelope used on both websocket directions.
func MarshalBox(box domain.Box) []byte {
	var b []byte
	b = appendString(b, boxName, box.Name)
	b = appendBytes(b, boxPayload, box.Payload)
	return b
}

// UnmarshalBox decodes an envelope. The returned payload does not alias the input.
func UnmarshalBox(b []byte) (domain.Box, error) {
	var box domain.Box
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == boxName && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			box.Name = v
			return n
		case num == boxPayload && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			box.Payload = append([]byte(nil), v...)
			return n
		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
	return box, err
}

// Wrap boxes an already encoded message under name.
func Wrap(name string, payload []byte) []byte {
	return MarshalBox(domain.Box{Name: name, Payload: payload})
}

// consumeFields walks every field of b. fn returns the number of bytes it consumed
// for the field value, or a negative protowire error code.
func consumeFields(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) int) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return malformed(n)
		}
		b = b[n:]
		m := fn(num, typ, b)
		if m < 0 {
			return malformed(m)
		}
		b = b[m:]
	}
	return nil
}

func malformed(code int) error {
	return fmt.Errorf("%w: %v", errors.ErrMalformedPayload, protowire.ParseError(code))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendTime(b []byte, num protowire.Number, t time.Time) []byte {
	if t.IsZero() {
		return b
	}
	return appendInt64(b, num, t.UnixNano())
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func consumeInt64(b []byte, dst *int64) int {
	v, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*dst = int64(v)
	}
	return n
}

func consumeTime(b []byte, dst *time.Time) int {
	var nanos int64
	n := consumeInt64(b, &nanos)
	if n >= 0 && nanos != 0 {
		*dst = time.Unix(0, nanos).UTC()
	}
	return n
}
