// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"sort"
	"sync"

	"github.com/apex/log"

	"github.com/staranto/taxogo/internal/item"
)

// Cache maps taxonomy keys to their loaded items. A key moves from unloaded
// to loaded exactly once and is never replaced afterwards.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]item.Items
}

func New() *Cache {
	return &Cache{entries: make(map[string]item.Items)}
}

// Has reports whether key has been loaded.
func (c *Cache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// Get returns the items stored for key. The returned map is shared and must
// not be modified.
func (c *Cache) Get(key string) (item.Items, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, ok := c.entries[key]
	return items, ok
}

// Store commits items for key. It returns false and leaves the cache untouched
// if key is already loaded.
func (c *Cache) Store(key string, items item.Items) bool {
	if items == nil {
		items = item.Items{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		log.WithField("taxonomy", key).Warn("ignoring second store for loaded taxonomy")
		return false
	}
	c.entries[key] = items
	return true
}

// Keys returns the loaded taxonomy keys in sorted order.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
