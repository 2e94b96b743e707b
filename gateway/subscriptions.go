package gateway

import (
	"game-backend/contract"
	"game-backend/domain"
	"sync"
)

type Set map[domain.UserID]struct{}

// Subscriptions maps rooms to the live connections of their players.
type Subscriptions struct {
	mu          sync.RWMutex
	sessions    map[domain.UserID]contract.EventSink // map player -> Sink
	roomMembers map[domain.RoomID]Set                // map room to players
}

func NewSubscriptions() *Subscriptions {
	return &Subscriptions{
		sessions:    make(map[domain.UserID]contract.EventSink),
		roomMembers: make(map[domain.RoomID]Set),
	}
}

// SinksForRoom returns the sinks of the room members.
// A non-empty targets slice restricts the result to those players.
func (s *Subscriptions) SinksForRoom(roomID domain.RoomID, targets []domain.UserID) []contract.EventSink {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members, ok := s.roomMembers[roomID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	if len(targets) > 0 {
		for _, userID := range targets {
			if _, member := members[userID]; !member {
				continue
			}
			if sink, exists := s.sessions[userID]; exists {
				activeSinks = append(activeSinks, sink)
			}
		}
		return activeSinks
	}
	for userID := range members {
		if sink, exists := s.sessions[userID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe registers the player's connection for a room.
// A second connection of the same player replaces the first one.
func (s *Subscriptions) Subscribe(userID domain.UserID, roomID domain.RoomID, sink contract.EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = sink

	if _, ok := s.roomMembers[roomID]; !ok {
		s.roomMembers[roomID] = make(Set)
	}
	s.roomMembers[roomID][userID] = struct{}{}
}

// Unsubscribe removes the player only if sink is still its current connection.
func (s *Subscriptions) Unsubscribe(userID domain.UserID, roomID domain.RoomID, sink contract.EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.sessions[userID]; !ok || current != sink {
		return
	}
	delete(s.sessions, userID)

	if members, ok := s.roomMembers[roomID]; ok {
		delete(members, userID)

		// If no one is left in the room, remove the room entry entirely
		if len(members) == 0 {
			delete(s.roomMembers, roomID)
		}
	}
}

// Count returns the number of live connections.
func (s *Subscriptions) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
