package names

import (
	"context"
	"fmt"
	"game-backend/contract"
	"game-backend/domain"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// CachedResolver keeps resolved names for ttl in front of a slower resolver.
// Failed lookups are not cached.
type CachedResolver struct {
	next  contract.NameResolver
	cache *ristretto.Cache[int64, string]
	ttl   time.Duration
}

func NewCachedResolver(next contract.NameResolver, maxEntries int64, ttl time.Duration) (*CachedResolver, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[int64, string]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("name cache: %w", err)
	}
	return &CachedResolver{next: next, cache: cache, ttl: ttl}, nil
}

func (c *CachedResolver) DisplayName(ctx context.Context, userID domain.UserID) (string, error) {
	if name, ok := c.cache.Get(int64(userID)); ok {
		return name, nil
	}
	name, err := c.next.DisplayName(ctx, userID)
	if err != nil {
		return "", err
	}
	c.cache.SetWithTTL(int64(userID), name, 1, c.ttl)
	return name, nil
}

// Wait blocks until pending writes are visible to Get.
func (c *CachedResolver) Wait() { c.cache.Wait() }

func (c *CachedResolver) Close() { c.cache.Close() }
