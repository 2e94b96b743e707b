package runtime

import (
	"context"
	"game-backend/domain"
	"game-backend/errors"
	"game-backend/observability"
	"game-backend/wire"
	"log/slog"
	"sync"
	"time"
)

type inputKey struct {
	userID domain.UserID
	name   string
}

// waiter is a single-shot slot armed by AwaitInput.
type waiter struct {
	ch chan []byte
}

// InputManager rendezvous inbound payloads with the game task awaiting them.
// For a fixed (user, name) key payloads are consumed in delivery order.
type InputManager struct {
	log     *slog.Logger
	metrics *observability.Metrics
	depth   int

	mu        sync.Mutex
	waiters   map[inputKey]*waiter
	inboxes   map[inputKey][][]byte
	cancelled bool
	done      chan struct{}
}

func NewInputManager(log *slog.Logger, metrics *observability.Metrics, depth int) *InputManager {
	if depth < 1 {
		depth = 1
	}
	return &InputManager{
		log:     log,
		metrics: metrics,
		depth:   depth,
		waiters: make(map[inputKey]*waiter),
		inboxes: make(map[inputKey][][]byte),
		done:    make(chan struct{}),
	}
}

// Deliver decodes a boxed frame and routes its payload to the armed waiter,
// or buffers it. Frames arriving after CancelAll are dropped.
func (m *InputManager) Deliver(userID domain.UserID, frame []byte) error {
	box, err := wire.UnmarshalBox(frame)
	if err != nil {
		return err
	}
	if box.Name == "" {
		return errors.ErrMalformedPayload
	}
	m.push(inputKey{userID: userID, name: box.Name}, box.Payload)
	return nil
}

func (m *InputManager) push(key inputKey, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancelled {
		return
	}
	if w, ok := m.waiters[key]; ok {
		delete(m.waiters, key)
		// capacity 1 and removed under the lock: never blocks
		w.ch <- payload
		return
	}
	inbox := m.inboxes[key]
	if len(inbox) >= m.depth {
		inbox = inbox[1:]
		m.metrics.IncrInboxOverflows()
		m.log.Debug("Inbox overflow, oldest payload dropped", "user_id", key.userID, "name", key.name)
	}
	m.inboxes[key] = append(inbox, payload)
}

// AwaitInput returns the next payload named name sent by userID.
// A zero timeout means no deadline other than ctx and CancelAll.
func (m *InputManager) AwaitInput(ctx context.Context, userID domain.UserID, name string, timeout time.Duration) ([]byte, error) {
	key := inputKey{userID: userID, name: name}

	m.mu.Lock()
	if inbox := m.inboxes[key]; len(inbox) > 0 {
		payload := inbox[0]
		if len(inbox) == 1 {
			delete(m.inboxes, key)
		} else {
			m.inboxes[key] = inbox[1:]
		}
		m.mu.Unlock()
		return payload, nil
	}
	if m.cancelled {
		m.mu.Unlock()
		return nil, errors.ErrCancelled
	}
	if _, ok := m.waiters[key]; ok {
		m.mu.Unlock()
		return nil, errors.ErrWaiterConflict
	}
	w := &waiter{ch: make(chan []byte, 1)}
	m.waiters[key] = w
	m.mu.Unlock()

	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	select {
	case payload := <-w.ch:
		return payload, nil
	case <-timer:
		return m.disarm(key, w, errors.ErrInputTimeout)
	case <-ctx.Done():
		return m.disarm(key, w, errors.ErrCancelled)
	case <-m.done:
		return m.disarm(key, w, errors.ErrCancelled)
	}
}

// disarm removes w unless a delivery already won the race, in which case the
// delivered payload is returned instead of err.
func (m *InputManager) disarm(key inputKey, w *waiter, err error) ([]byte, error) {
	m.mu.Lock()
	if current, ok := m.waiters[key]; ok && current == w {
		delete(m.waiters, key)
	}
	m.mu.Unlock()

	select {
	case payload := <-w.ch:
		return payload, nil
	default:
		return nil, err
	}
}

// CancelAll fails every armed waiter with ErrCancelled and drops buffered payloads.
// Calling it more than once is harmless.
func (m *InputManager) CancelAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancelled {
		return
	}
	m.cancelled = true
	clear(m.waiters)
	clear(m.inboxes)
	close(m.done)
}

// Pending reports how many waiters are armed.
func (m *InputManager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.waiters)
}
