// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package imports

import (
	"fmt"
	"sort"
	"sync"
)

type entryState int

const (
	statePending entryState = iota
	stateReady
)

type cacheEntry struct {
	ref   Ref
	state entryState
	info  *ModuleInfo
}

// Cache memoizes import results for one compilation session. A reference
// is parsed and typechecked at most once; once published, its ModuleInfo
// never changes identity, so repeated lookups return the same shared
// instance. Failures are never stored. Entries also carry a pending state
// while an import is in flight, which is how re-entrant import cycles are
// caught.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	pending []Ref // in-flight imports, outermost first
}

func NewCache() *Cache {

	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Contains reports whether a published entry exists for ref. In-flight
// (pending) imports do not count.
func (c *Cache) Contains(ref Ref) bool {

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[ref.key()]
	return ok && entry.state == stateReady
}

// Get returns the published entry for ref. Calling Get when Contains
// reports false is a programming error, not a runtime failure path.
func (c *Cache) Get(ref Ref) *ModuleInfo {

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[ref.key()]
	if !ok || entry.state != stateReady {
		panic(fmt.Sprintf("imports: Get(%s) without a published cache entry", ref))
	}
	return entry.info
}

// Put publishes info under ref and returns the now-cache-owned shared
// instance. If ref is already published, the existing entry is returned
// unchanged; a published ModuleInfo never changes identity.
func (c *Cache) Put(ref Ref, info *ModuleInfo) *ModuleInfo {

	c.mu.Lock()
	defer c.mu.Unlock()

	key := ref.key()
	if entry, ok := c.entries[key]; ok {
		if entry.state == stateReady {
			return entry.info
		}
		entry.state = stateReady
		entry.info = info
		c.removePending(key)
		return info
	}

	c.entries[key] = &cacheEntry{ref: ref, state: stateReady, info: info}
	return info
}

// Len returns the number of published entries.
func (c *Cache) Len() (n int) {

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, entry := range c.entries {
		if entry.state == stateReady {
			n++
		}
	}
	return
}

// Refs returns the published references, sorted by canonical text.
func (c *Cache) Refs() (refs []Ref) {

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, entry := range c.entries {
		if entry.state == stateReady {
			refs = append(refs, entry.ref)
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].String() < refs[j].String() })
	return
}

// begin marks ref as in flight. If ref is already in flight the import has
// cycled and a *CycleError is returned; if ref was published in the
// meantime the existing info is returned instead.
func (c *Cache) begin(ref Ref) (ready *ModuleInfo, err error) {

	c.mu.Lock()
	defer c.mu.Unlock()

	key := ref.key()
	if entry, ok := c.entries[key]; ok {
		if entry.state == stateReady {
			ready = entry.info
			return
		}
		chain := append(append([]Ref(nil), c.pending...), ref)
		err = &CycleError{Ref: ref, Chain: chain}
		return
	}

	c.entries[key] = &cacheEntry{ref: ref, state: statePending}
	c.pending = append(c.pending, ref)
	return
}

// abandon removes the pending marker after a failed import so the next
// request for ref starts from scratch.
func (c *Cache) abandon(ref Ref) {

	c.mu.Lock()
	defer c.mu.Unlock()

	key := ref.key()
	if entry, ok := c.entries[key]; ok && entry.state == statePending {
		delete(c.entries, key)
		c.removePending(key)
	}
}

func (c *Cache) removePending(key string) {

	for i, ref := range c.pending {
		if ref.key() == key {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}
