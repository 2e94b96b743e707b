package domain

// Command is an inbound request addressed to a room.
type Command interface {
	RoomID() RoomID
}

// JoinRoomCommand joins Room, or matchmakes when Room is nil.
type JoinRoomCommand struct {
	GameType string  `validate:"required,max=32"`
	UserID   UserID  `validate:"gt=0"`
	Room     *RoomID `validate:"omitnil,gt=0"`
	Extra    []byte  `validate:"max=4096"`
}

func (c JoinRoomCommand) RoomID() RoomID {
	if c.Room == nil {
		return 0
	}
	return *c.Room
}

type SendChatCommand struct {
	Room   RoomID `validate:"gt=0"`
	UserID UserID `validate:"gt=0"`
	Text   string `validate:"required,max=1000"`
}

func (c SendChatCommand) RoomID() RoomID {
	return c.Room
}
