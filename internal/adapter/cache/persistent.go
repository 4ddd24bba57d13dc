package cache

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// Persistent wraps app.Cache and keeps a snapshot of every added entry in KVStore.
//
// On memory miss snapshot is read from the store and put back into memory, so data
// fetched before restart is served without calling github again.
// Store errors are logged and treated as a miss.
type Persistent struct {
	cache app.Cache
	store KVStore
	l     logrus.FieldLogger
}

var _ app.Cache = &Persistent{}

// NewPersistent creates new Persistent instance.
func NewPersistent(cache app.Cache, store KVStore, l logrus.FieldLogger) *Persistent {
	return &Persistent{
		cache: cache,
		store: store,
		l:     l,
	}
}

// Get returns entry from memory or from store snapshot.
func (c *Persistent) Get(key string) (app.CacheEntry, bool) {
	if entry, ok := c.cache.Get(key); ok {
		return entry, true
	}

	data, err := c.store.ReadKey(c.dbKey(key))
	if err != nil {
		c.l.Errorf("reading snapshot %s: %v", key, err)
		return app.CacheEntry{}, false
	}
	if data == nil {
		return app.CacheEntry{}, false
	}

	entry, err := c.unserialize(data)
	if err != nil {
		c.l.Errorf("unserializing snapshot %s: %v", key, err)
		return app.CacheEntry{}, false
	}
	c.cache.Add(key, entry)
	c.l.Infof("restored snapshot %s fetched at %s", key, entry.FetchedAt.Format(time.RFC3339))

	return entry, true
}

// Add stores entry in memory and saves its snapshot.
func (c *Persistent) Add(key string, entry app.CacheEntry) {
	c.cache.Add(key, entry)

	data, err := c.serialize(entry)
	if err != nil {
		c.l.Errorf("serializing snapshot %s: %v", key, err)
		return
	}
	if err := c.store.UpdateKey(c.dbKey(key), data); err != nil {
		c.l.Errorf("saving snapshot %s: %v", key, err)
	}
}

func (c *Persistent) dbKey(key string) []byte {
	return []byte("contributors/" + key)
}

func (c *Persistent) serialize(entry app.CacheEntry) ([]byte, error) {
	data, err := json.Marshal(snapshotEntry{
		Created:  entry.FetchedAt.Unix(),
		Data:     entry.Data,
		Degraded: entry.Degraded,
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling json: %w", err)
	}

	return data, nil
}

func (c *Persistent) unserialize(data []byte) (app.CacheEntry, error) {
	var entry snapshotEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return app.CacheEntry{}, fmt.Errorf("unmarshalling json: %w", err)
	}

	for repo, s := range entry.Data {
		if s.Avatars == nil {
			s.Avatars = []string{}
			entry.Data[repo] = s
		}
	}

	return app.CacheEntry{
		Data:      entry.Data,
		Degraded:  entry.Degraded,
		FetchedAt: time.Unix(entry.Created, 0),
	}, nil
}

type snapshotEntry struct {
	Created  int64
	Data     map[string]app.ContributorSummary
	Degraded map[string]bool `json:",omitempty"`
}
