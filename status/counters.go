// Package status keeps named counters of dialog activity for the debug log.
package status

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/personform/engine"
)

// Counters is a thread-safe set of named counters
// Registration uses the mutex; cached pointers are updated lock-free
type Counters struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewCounters creates an empty set
func NewCounters() *Counters {
	return &Counters{items: make(map[string]*atomic.Int64)}
}

// Get returns the counter for key, creating it on first use
func (c *Counters) Get(key string) *atomic.Int64 {
	c.mu.RLock()
	if ptr, ok := c.items[key]; ok {
		c.mu.RUnlock()
		return ptr
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if ptr, ok := c.items[key]; ok {
		return ptr
	}
	ptr := new(atomic.Int64)
	c.items[key] = ptr
	return ptr
}

// Value returns the current count, 0 for unknown keys
func (c *Counters) Value(key string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if ptr, ok := c.items[key]; ok {
		return ptr.Load()
	}
	return 0
}

// Range visits counters in sorted key order
func (c *Counters) Range(fn func(key string, value int64)) {
	c.mu.RLock()
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	c.mu.RUnlock()
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, c.Value(k))
	}
}

// String formats all counters as key=value pairs
func (c *Counters) String() string {
	var parts []string
	c.Range(func(k string, v int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v))
	})
	return strings.Join(parts, " ")
}

// Inc bumps a counter when the world carries a *Counters resource
func Inc(w *engine.World, key string) {
	if c, ok := engine.GetResource[*Counters](w.Resources); ok {
		c.Get(key).Add(1)
	}
}
