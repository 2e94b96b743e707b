package wire

import (
	"game-backend/domain"

	"google.golang.org/protobuf/encoding/protowire"
)

// PlayerInfo { int64 user_id = 1; uint32 index = 2; bool ready = 3; string display_name = 4; }
const (
	playerUserID      protowire.Number = 1
	playerIndex       protowire.Number = 2
	playerReady       protowire.Number = 3
	playerDisplayName protowire.Number = 4
)

// RoomInfo { int64 id = 1; int32 game_type = 2; int32 state = 3; uint32 max_players = 4;
// repeated PlayerInfo players = 5; int64 created_at = 6; int64 started_at = 7;
// int64 finished_at = 8; string error = 9; }
const (
	roomID         protowire.Number = 1
	roomGameType   protowire.Number = 2
	roomState      protowire.Number = 3
	roomMaxPlayers protowire.Number = 4
	roomPlayers    protowire.Number = 5
	roomCreatedAt  protowire.Number = 6
	roomStartedAt  protowire.Number = 7
	roomFinishedAt protowire.Number = 8
	roomError      protowire.Number = 9
)

func MarshalRoomInfo(info domain.RoomInfo) []byte {
	var b []byte
	b = appendInt64(b, roomID, int64(info.ID))
	b = appendInt64(b, roomGameType, int64(info.GameType))
	b = appendInt64(b, roomState, int64(info.State))
	b = appendInt64(b, roomMaxPlayers, int64(info.MaxPlayers))
	for _, p := range info.Players {
		b = appendMessage(b, roomPlayers, marshalPlayerInfo(p))
	}
	b = appendTime(b, roomCreatedAt, info.CreatedAt)
	b = appendTime(b, roomStartedAt, info.StartedAt)
	b = appendTime(b, roomFinishedAt, info.FinishedAt)
	b = appendString(b, roomError, info.Error)
	return b
}

func UnmarshalRoomInfo(b []byte) (domain.RoomInfo, error) {
	var info domain.RoomInfo
	var perr error
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		var v int64
		switch {
		case num == roomID && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			info.ID = domain.RoomID(v)
			return n
		case num == roomGameType && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			info.GameType = domain.GameType(v)
			return n
		case num == roomState && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			info.State = domain.RoomState(v)
			return n
		case num == roomMaxPlayers && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			info.MaxPlayers = int(v)
			return n
		case num == roomPlayers && typ == protowire.BytesType:
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n
			}
			player, err := unmarshalPlayerInfo(raw)
			if err != nil {
				perr = err
				return n
			}
			info.Players = append(info.Players, player)
			return n
		case num == roomCreatedAt && typ == protowire.VarintType:
			return consumeTime(b, &info.CreatedAt)
		case num == roomStartedAt && typ == protowire.VarintType:
			return consumeTime(b, &info.StartedAt)
		case num == roomFinishedAt && typ == protowire.VarintType:
			return consumeTime(b, &info.FinishedAt)
		case num == roomError && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(b)
			info.Error = s
			return n
		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
	if err != nil {
		return domain.RoomInfo{}, err
	}
	if perr != nil {
		return domain.RoomInfo{}, perr
	}
	return info, nil
}

func marshalPlayerInfo(p domain.PlayerInfo) []byte {
	var b []byte
	b = appendInt64(b, playerUserID, int64(p.UserID))
	b = appendInt64(b, playerIndex, int64(p.Index))
	b = appendBool(b, playerReady, p.Ready)
	b = appendString(b, playerDisplayName, p.DisplayName)
	return b
}

func unmarshalPlayerInfo(b []byte) (domain.PlayerInfo, error) {
	var p domain.PlayerInfo
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		var v int64
		switch {
		case num == playerUserID && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			p.UserID = domain.UserID(v)
			return n
		case num == playerIndex && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			p.Index = int(v)
			return n
		case num == playerReady && typ == protowire.VarintType:
			n := consumeInt64(b, &v)
			p.Ready = protowire.DecodeBool(uint64(v))
			return n
		case num == playerDisplayName && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(b)
			p.DisplayName = s
			return n
		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
	return p, err
}
