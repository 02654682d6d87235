package services

import (
	"context"
	"sync"

	"github.com/uxdsrini/quick-admin/internal/app/ports"
)

// UnresolvedStoreName is returned when a store name cannot be resolved.
// It is never cached, so a later request retries the lookup.
const UnresolvedStoreName = "Unknown store"

// StoreNameCache memoizes store display names for the session. Store names
// are treated as static, so entries are never invalidated. Concurrent
// resolves for the same uncached id may race into duplicate lookups; the
// cached value is consistent once any lookup succeeds.
type StoreNameCache struct {
	directory ports.StoreDirectory

	mu    sync.RWMutex
	names map[string]string
}

// NewStoreNameCache creates a cache backed by the given directory.
func NewStoreNameCache(directory ports.StoreDirectory) *StoreNameCache {
	return &StoreNameCache{
		directory: directory,
		names:     make(map[string]string),
	}
}

// Resolve returns the display name for a store identifier, looking it up
// on first reference. Lookup failures return UnresolvedStoreName.
func (c *StoreNameCache) Resolve(ctx context.Context, storeID string) string {
	c.mu.RLock()
	name, ok := c.names[storeID]
	c.mu.RUnlock()
	if ok {
		return name
	}

	store, err := c.directory.GetStore(ctx, storeID)
	if err != nil {
		return UnresolvedStoreName
	}

	c.mu.Lock()
	c.names[storeID] = store.Name
	c.mu.Unlock()
	return store.Name
}
