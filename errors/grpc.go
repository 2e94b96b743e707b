package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError converts a runtime error into a gRPC status at the RPC boundary.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codeOf(err), err.Error())
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, ErrRoomFull):
		return codes.ResourceExhausted
	case errors.Is(err, ErrRoomClosed), errors.Is(err, ErrAlreadyStarted):
		return codes.FailedPrecondition
	case errors.Is(err, ErrAlreadyJoined):
		return codes.AlreadyExists
	case errors.Is(err, ErrRoomNotFound):
		return codes.NotFound
	case errors.Is(err, ErrInvalidGameType), errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrMalformedPayload):
		return codes.InvalidArgument
	case errors.Is(err, ErrNotInRoom):
		return codes.PermissionDenied
	case errors.Is(err, ErrInputTimeout):
		return codes.DeadlineExceeded
	case errors.Is(err, ErrCancelled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}
