// Package cache is a TTL-bounded memo of query results, keyed by query name
// and arguments. Expiry and manual clearing are operations on the store,
// not ambient state.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultTTL bounds how long a query result is reused before the warehouse
// is asked again.
const DefaultTTL = 300 * time.Second

type entry struct {
	value   interface{}
	expires time.Time
}

// Store holds memoized results with per-entry expiration.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]entry)}
}

// Get returns the cached value for key if present and not expired.
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key. A non-positive ttl uses DefaultTTL.
func (s *Store) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expires: time.Now().Add(ttl)}
}

// Clear drops every cached result. The refresh action uses it to force a
// full recomputation on the next render.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
}

// Key builds a cache key from a query name and its integer arguments.
func Key(name string, args ...int) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		parts = append(parts, fmt.Sprintf("%d", a))
	}
	return strings.Join(parts, ":")
}

// Results is the process-wide store used by the dashboard handlers.
var Results = NewStore()
