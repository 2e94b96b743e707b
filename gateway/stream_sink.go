package gateway

import (
	"context"
	"game-backend/errors"
)

// StreamSink buffers frames for a gRPC subscriber stream.
// The handler owning the stream drains Frames.
type StreamSink struct {
	Frames chan []byte
}

func NewStreamSink(bufferSize int) *StreamSink {
	return &StreamSink{Frames: make(chan []byte, max(bufferSize, 1))}
}

// Consume is called by the hub broadcast. A full buffer drops the frame.
func (s *StreamSink) Consume(ctx context.Context, frame []byte) error {
	select {
	case s.Frames <- frame:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrSubscriberSlow
	}
}
