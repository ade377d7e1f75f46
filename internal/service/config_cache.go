package service

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/psisite/internal/content"
	"github.com/psisite/internal/db"
)

type configLister interface {
	List() ([]db.ConfigEntry, error)
}

// ConfigCache keeps the full config list in memory after the first read. It
// never refreshes on its own: only Invalidate or Patch change what it serves.
type ConfigCache struct {
	source  configLister
	mu      sync.RWMutex
	entries []db.ConfigEntry
	loaded  bool
}

// NewConfigCache wraps a config source.
func NewConfigCache(source configLister) *ConfigCache {
	return &ConfigCache{source: source}
}

// Entries returns a copy of the cached list, loading it on first use.
func (c *ConfigCache) Entries() ([]db.ConfigEntry, error) {
	c.mu.RLock()
	if c.loaded {
		out := copyEntries(c.entries)
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		entries, err := c.source.List()
		if err != nil {
			return nil, err
		}
		c.entries = entries
		c.loaded = true
	}
	return copyEntries(c.entries), nil
}

// Invalidate drops the cached list so the next read reloads it.
func (c *ConfigCache) Invalidate() {
	c.mu.Lock()
	c.entries = nil
	c.loaded = false
	c.mu.Unlock()
}

// Patch splices entry into the cached list by key without reloading. Before
// the first load there is nothing to patch; the load will see the write.
func (c *ConfigCache) Patch(entry db.ConfigEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return
	}
	for i := range c.entries {
		if c.entries[i].Key == entry.Key {
			c.entries[i] = entry
			return
		}
	}
	c.entries = append(c.entries, entry)
}

// Apply runs the given cache strategy for a freshly stored entry.
func (c *ConfigCache) Apply(strategy string, entry db.ConfigEntry) {
	if strategy == content.StrategyOptimistic {
		c.Patch(entry)
		return
	}
	c.Invalidate()
}

// Values returns the cached values keyed by config key.
func (c *ConfigCache) Values() (map[string]json.RawMessage, error) {
	entries, err := c.Entries()
	if err != nil {
		return nil, err
	}
	values := make(map[string]json.RawMessage, len(entries))
	for _, entry := range entries {
		values[entry.Key] = json.RawMessage(entry.Value)
	}
	return values, nil
}

// SiteContent builds typed content from the cache. When the store cannot be
// read the page still renders with built-in defaults.
func (c *ConfigCache) SiteContent() content.SiteContent {
	values, err := c.Values()
	if err != nil {
		log.Printf("[config] serving defaults, config list unavailable: %v", err)
		return content.FromEntries(nil)
	}
	return content.FromEntries(values)
}

// Lookup returns the cached raw value for key.
func (c *ConfigCache) Lookup(key string) (json.RawMessage, bool, error) {
	values, err := c.Values()
	if err != nil {
		return nil, false, err
	}
	raw, ok := values[key]
	return raw, ok, nil
}

func copyEntries(entries []db.ConfigEntry) []db.ConfigEntry {
	out := make([]db.ConfigEntry, len(entries))
	copy(out, entries)
	return out
}
