package gateway

import (
	"context"
	"game-backend/domain"
	"game-backend/errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	pongWait             = 10 * time.Second
	writeWait            = 10 * time.Second
	pingInterval         = (pongWait * 9) / 10
	maxMessageSize int64 = 64 * 1024
)

// connection is the EventSink of one websocket client.
type connection struct {
	log       *slog.Logger
	conn      *websocket.Conn
	roomID    domain.RoomID
	userID    domain.UserID
	send      chan []byte
	closeChan chan struct{}
	closeOnce sync.Once
}

func newConnection(log *slog.Logger, conn *websocket.Conn, roomID domain.RoomID, userID domain.UserID, buffer int) *connection {
	return &connection{
		log:       log.With("room_id", roomID, "user_id", userID),
		conn:      conn,
		roomID:    roomID,
		userID:    userID,
		send:      make(chan []byte, buffer),
		closeChan: make(chan struct{}),
	}
}

// Consume queues a frame for the write pump without blocking.
func (c *connection) Consume(ctx context.Context, frame []byte) error {
	select {
	case <-c.closeChan:
		return errors.ErrSubscriberGone
	default:
	}
	select {
	case c.send <- frame:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrSubscriberSlow
	}
}

// readPump blocks until the client goes away. Binary frames are handed to onFrame.
func (c *connection) readPump(onFrame func(frame []byte)) {
	defer c.Close()
	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.Error("SetReadDeadline failed", "error", err)
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn("Websocket closed unexpectedly", "error", err)
			}
			return
		}
		if messageType != websocket.BinaryMessage {
			c.log.Debug("Ignoring non binary frame", "type", messageType)
			continue
		}
		onFrame(message)
	}
}

func (c *connection) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Close()
	}()
	for {
		select {
		case frame := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				c.log.Debug("Write failed", "error", err)
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-c.closeChan:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		}
	}
}

func (c *connection) Close() {
	c.closeOnce.Do(func() {
		close(c.closeChan)
		_ = c.conn.Close()
	})
}
