// Package names resolves the display names shown in room snapshots.
package names

import (
	"context"
	"fmt"
	"game-backend/domain"
	"sync"
)

// StaticResolver serves names registered in memory and falls back to "player-<id>".
type StaticResolver struct {
	mu    sync.RWMutex
	names map[domain.UserID]string
}

func NewStaticResolver(names map[domain.UserID]string) *StaticResolver {
	copied := make(map[domain.UserID]string, len(names))
	for k, v := range names {
		copied[k] = v
	}
	return &StaticResolver{names: copied}
}

func (s *StaticResolver) Register(userID domain.UserID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[userID] = name
}

func (s *StaticResolver) DisplayName(ctx context.Context, userID domain.UserID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if name, ok := s.names[userID]; ok {
		return name, nil
	}
	return Fallback(userID), nil
}

func Fallback(userID domain.UserID) string {
	return fmt.Sprintf("player-%d", userID)
}
