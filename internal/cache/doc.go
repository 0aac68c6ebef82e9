// Package cache provides the generic keyed store behind the glyph and
// kerning caches.
//
// # Map[K, V]
//
// An unbounded map that remembers insertion order and counts hits and
// misses. Entries are never evicted; iteration with All visits them in the
// order they were first stored, which makes atlas repacking deterministic.
//
//	m := cache.New[rune, *Glyph](128)
//	m.Set('A', g)
//	g, ok := m.Get('A')
//
// # Thread Safety
//
// Map is NOT safe for concurrent use. Callers that share a Map across
// goroutines must provide their own mutual exclusion.
package cache
