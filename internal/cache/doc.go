// Package cache provides the generic map behind the width cache.
//
// # Map[K, V]
//
// An unbounded, reader/writer-locked map. Entries are never evicted; they
// leave the map only through Delete or Clear.
//
//	m := cache.New[string, float64]()
//	m.Store("a", 9.5)
//	w, ok := m.Load("a")
//
// # Thread Safety
//
// Map is safe for concurrent use and must not be copied after creation.
package cache
