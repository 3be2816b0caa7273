package cache

import (
	"sync"
	"sync/atomic"
)

// Map is a generic thread-safe map without eviction.
//
// Reads take a read lock, so concurrent lookups do not serialize. Store is
// an upsert: when two writers race on a key, the last one wins.
type Map[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V

	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]V)}
}

// Load returns the value for key and records a hit or a miss.
func (m *Map[K, V]) Load(key K) (V, bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()

	if ok {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}
	return v, ok
}

// Peek returns the value for key without touching the statistics.
func (m *Map[K, V]) Peek(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Store sets the value for key.
func (m *Map[K, V]) Store(key K, value V) {
	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()
}

// LoadOrStore returns the existing value for key if present. Otherwise it
// stores value and returns it. loaded reports whether the value was
// already present.
func (m *Map[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		return v, true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.entries[key]; ok {
		return v, true
	}
	m.entries[key] = value
	return value, false
}

// Delete removes key. Returns true if it was present.
func (m *Map[K, V]) Delete(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; ok {
		delete(m.entries, key)
		return true
	}
	return false
}

// Clear removes every entry. Statistics are kept.
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	m.entries = make(map[K]V)
	m.mu.Unlock()
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Range calls f for every entry until f returns false. The map is read
// locked while Range runs, so f must not modify it.
func (m *Map[K, V]) Range(f func(K, V) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for k, v := range m.entries {
		if !f(k, v) {
			return
		}
	}
}

// Snapshot returns a copy of the entries.
func (m *Map[K, V]) Snapshot() map[K]V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// Stats holds map statistics.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns the current statistics.
func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Len:    m.Len(),
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
	}
}

