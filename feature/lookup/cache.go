package lookup

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache holds the session's lookup table. The table is loaded lazily on first
// use and replaced wholesale on refresh; concurrent loaders are collapsed via
// singleflight so the source is hit at most once per refresh.
type Cache struct {
	loader *Loader

	mu     sync.RWMutex
	table  Table
	loaded bool
	sf     singleflight.Group
}

// NewCache creates a cache backed by the given loader.
func NewCache(loader *Loader) *Cache {
	return &Cache{loader: loader}
}

// Table returns the current table, fetching it on first use.
func (c *Cache) Table(ctx context.Context) (Table, error) {
	c.mu.RLock()
	table, loaded := c.table, c.loaded
	c.mu.RUnlock()

	if loaded {
		return table, nil
	}
	return c.refresh(ctx)
}

// Refresh discards the cached table and fetches a fresh one.
func (c *Cache) Refresh(ctx context.Context) (Table, error) {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()

	return c.refresh(ctx)
}

func (c *Cache) refresh(ctx context.Context) (Table, error) {
	result, err, _ := c.sf.Do("table", func() (interface{}, error) {
		// Double-check after acquiring the singleflight lock.
		c.mu.RLock()
		table, loaded := c.table, c.loaded
		c.mu.RUnlock()
		if loaded {
			return table, nil
		}

		fresh, err := c.loader.Fetch(ctx)
		if err != nil {
			return Table{}, err
		}

		c.mu.Lock()
		c.table = fresh
		c.loaded = true
		c.mu.Unlock()

		return fresh, nil
	})
	if err != nil {
		return Table{}, err
	}
	return result.(Table), nil
}
