package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrRoomFull           = fmt.Errorf("room is full")
	ErrRoomClosed         = fmt.Errorf("room is not accepting players")
	ErrAlreadyJoined      = fmt.Errorf("user already joined a room")
	ErrRoomNotFound       = fmt.Errorf("room not found")
	ErrInvalidGameType    = fmt.Errorf("invalid game type")
	ErrAlreadyStarted     = fmt.Errorf("room already started")
	ErrNotInRoom          = fmt.Errorf("user is not a member of the room")
	ErrInvalidRequest     = fmt.Errorf("invalid request")
	ErrWaiterConflict     = fmt.Errorf("an input waiter is already armed for this key")
	ErrInputTimeout       = fmt.Errorf("timed out waiting for input")
	ErrCancelled          = fmt.Errorf("room cancelled")
	ErrMalformedPayload   = fmt.Errorf("malformed payload")
	ErrGatewaySendFailure = fmt.Errorf("gateway send failed")
	ErrGameLogicPanic     = fmt.Errorf("game logic panic")
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
	ErrInvalidPayload     = fmt.Errorf("invalid event payload")
	ErrMatchTimeout       = fmt.Errorf("match timeout")
	ErrAbandoned          = fmt.Errorf("room abandoned before start")
	ErrNoGateway          = fmt.Errorf("no gateway configured")
	ErrSubscriberSlow     = fmt.Errorf("subscriber buffer is full")
	ErrSubscriberGone     = fmt.Errorf("subscriber connection closed")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
