package cache

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/agentsmd/internal/app"
)

// LRU keeps fetched contributors data in memory.
type LRU struct {
	cache *lru.Cache
}

var _ app.Cache = &LRU{}

// NewLRU creates new LRU instance.
func NewLRU(size int) (*LRU, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache: %w", err)
	}

	return &LRU{
		cache: c,
	}, nil
}

// Get returns entry stored under given key.
func (c *LRU) Get(key string) (app.CacheEntry, bool) {
	val, ok := c.cache.Get(key)
	if !ok {
		return app.CacheEntry{}, false
	}
	entry, ok := val.(app.CacheEntry)

	return entry, ok
}

// Add stores entry under given key, replacing previous one.
func (c *LRU) Add(key string, entry app.CacheEntry) {
	c.cache.Add(key, entry)
}

// Len returns number of stored entries.
func (c *LRU) Len() int {
	return c.cache.Len()
}
