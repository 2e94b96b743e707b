// Package rpc declares the gRPC services of the game backend and their clients.
// Messages are the hand-encoded types of package wire; the codec below keeps
// them on the standard protobuf wire format so generated clients interoperate.
package rpc

import (
	"fmt"
	"game-backend/wire"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

// Codec marshals wire.Message values and falls back to proto.Message.
type Codec struct{}

func (Codec) Name() string { return "proto" }

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case wire.Message:
		return m.MarshalWire()
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, fmt.Errorf("rpc codec: cannot marshal %T", v)
	}
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case wire.Message:
		return m.UnmarshalWire(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	default:
		return fmt.Errorf("rpc codec: cannot unmarshal into %T", v)
	}
}

// ServerOption installs the codec on a grpc.Server.
func ServerOption() grpc.ServerOption {
	return grpc.ForceServerCodec(Codec{})
}

// DialOption installs the codec on every call of a client connection.
func DialOption() grpc.DialOption {
	return grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{}))
}
