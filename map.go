// File: store/map.go
package store

import (
	"iter"
	"strings"
	"sync"
)

// mapStore is the in-memory leaf backend. A sync.RWMutex protects the data
// map; the decorators above it add no locking of their own, so concurrent
// use of a composite is exactly as safe as concurrent use of its leaves.
type mapStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// Map returns a mutable in-memory store seeded with a copy of initial.
// A nil initial map yields an empty store.
func Map(initial map[string]string) *Store {
	data := make(map[string]string, len(initial))
	for k, v := range initial {
		if k == "" {
			continue
		}
		data[k] = v
	}
	return &Store{b: &mapStore{data: data}}
}

func (m *mapStore) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}

func (m *mapStore) Lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *mapStore) Put(key string, value *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value == nil {
		delete(m.data, key)
		return nil
	}
	m.data[key] = *value
	return nil
}

// Keys yields a snapshot of the key set taken under the read lock, so the
// sequence stays valid while other goroutines mutate the store.
func (m *mapStore) Keys() iter.Seq[string] {
	m.mu.RLock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	m.mu.RUnlock()

	return func(yield func(string) bool) {
		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *mapStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.data)
	return nil
}

func (m *mapStore) ReadOnly() bool {
	return false
}

func (m *mapStore) Describe(sb *strings.Builder) {
	sb.WriteString("map")
}
