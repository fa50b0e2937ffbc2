package cache

import "sync"

// Registry is a thread-safe keyed store without eviction.
//
// Registry must not be copied after creation (has mutex).
type Registry[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
	order   []K // Insertion order, for Keys
	hits    uint64
	misses  uint64
}

// New creates an empty registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		entries: make(map[K]V),
	}
}

// Get retrieves a value from the registry.
// Returns (value, true) if found, (zero, false) otherwise.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.entries[key]
	if ok {
		r.hits++
	}
	return v, ok
}

// GetOrCreate returns the registered value for key or creates it.
// create is called under lock, so it runs at most once per key even with
// concurrent callers. A failed create stores nothing and the next call
// retries. The created result reports whether this call built the value.
func (r *Registry[K, V]) GetOrCreate(key K, create func() (V, error)) (v V, created bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.entries[key]; ok {
		r.hits++
		return v, false, nil
	}

	r.misses++
	v, err = create()
	if err != nil {
		var zero V
		return zero, false, err
	}

	r.entries[key] = v
	r.order = append(r.order, key)
	return v, true, nil
}

// Len returns the number of entries.
func (r *Registry[K, V]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Keys returns the registered keys in insertion order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]K, len(r.order))
	copy(keys, r.order)
	return keys
}

// Clear removes all entries and resets statistics.
func (r *Registry[K, V]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[K]V)
	r.order = nil
	r.hits = 0
	r.misses = 0
}

// Stats returns registry statistics.
func (r *Registry[K, V]) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Stats{
		Len:    len(r.entries),
		Hits:   r.hits,
		Misses: r.misses,
	}
	if total := r.hits + r.misses; total > 0 {
		s.HitRate = float64(r.hits) / float64(total)
	}
	return s
}

// Stats contains registry statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of lookups answered from the registry.
	Hits uint64
	// Misses is the number of GetOrCreate calls that had to build.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0.0 to 1.0.
	HitRate float64
}
