package cache

import "iter"

// Map is an insertion-ordered cache with no eviction.
//
// Map is NOT safe for concurrent use.
type Map[K comparable, V any] struct {
	entries map[K]int // key -> index into order
	order   []entry[K, V]

	hits   uint64
	misses uint64
}

// entry holds a cached value together with its key so that iteration can
// yield both without a second lookup.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a map with room for sizeHint entries.
func New[K comparable, V any](sizeHint int) *Map[K, V] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Map[K, V]{
		entries: make(map[K]int, sizeHint),
		order:   make([]entry[K, V], 0, sizeHint),
	}
}

// Get retrieves a value from the map.
// Returns (value, true) if found, (zero, false) otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	idx, ok := m.entries[key]
	if !ok {
		m.misses++
		var zero V
		return zero, false
	}
	m.hits++
	return m.order[idx].value, true
}

// Set stores a value. Replacing an existing key keeps its original
// position in iteration order.
func (m *Map[K, V]) Set(key K, value V) {
	if idx, ok := m.entries[key]; ok {
		m.order[idx].value = value
		return
	}
	m.entries[key] = len(m.order)
	m.order = append(m.order, entry[K, V]{key: key, value: value})
}

// GetOrCreate returns the cached value for key, calling create and storing
// its result on a miss. create runs at most once per key.
func (m *Map[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	v := create()
	m.Set(key, v)
	return v
}

// Delete removes key, shifting later entries down one slot so iteration
// order is preserved. Returns true if the entry was present.
func (m *Map[K, V]) Delete(key K) bool {
	idx, ok := m.entries[key]
	if !ok {
		return false
	}
	delete(m.entries, key)
	copy(m.order[idx:], m.order[idx+1:])
	m.order[len(m.order)-1] = entry[K, V]{}
	m.order = m.order[:len(m.order)-1]
	for i := idx; i < len(m.order); i++ {
		m.entries[m.order[i].key] = i
	}
	return true
}

// Contains reports whether key is present without touching statistics.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// All iterates over entries in insertion order.
// The map must not be modified during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.order {
			if !yield(m.order[i].key, m.order[i].value) {
				return
			}
		}
	}
}

// Clear removes all entries and resets statistics.
func (m *Map[K, V]) Clear() {
	clear(m.entries)
	m.order = m.order[:0]
	m.hits = 0
	m.misses = 0
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return len(m.order)
}

// Stats returns map statistics.
func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Len:    len(m.order),
		Hits:   m.hits,
		Misses: m.misses,
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of successful lookups.
	Hits uint64
	// Misses is the number of failed lookups.
	Misses uint64
}

// HitRate returns the hit rate as a fraction in [0, 1].
// Returns 0 when no lookups have been recorded.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
