// File: store/store.go
package store

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Backend is the contract every concrete store satisfies, leaf or composite.
// Keys reaching a Backend have already been validated non-empty by the public
// Store facade; implementations trust them.
//
// Absence is distinct from the empty string throughout: a key mapped to ""
// is present.
type Backend interface {
	// Has reports whether the key currently has a value.
	Has(key string) bool

	// Lookup returns the value for key, and whether it is present.
	Lookup(key string) (string, bool)

	// Put sets the value for key. A nil value removes the key.
	// Put must return ErrImmutable from a read-only store, never no-op.
	Put(key string, value *string) error

	// Keys yields the full known key set. Order is not guaranteed and
	// the sequence is not required to be sorted.
	Keys() iter.Seq[string]

	// Clear removes all keys. Each concrete store defines its own
	// bulk-clear semantics; composites over multiple members refuse it.
	Clear() error

	// ReadOnly reports whether the store rejects mutation. The result is
	// stable for the lifetime of the instance.
	ReadOnly() bool

	// Describe appends a short structural description, e.g. `"p."->map`.
	Describe(sb *strings.Builder)
}

// Store is the validated public facade over a Backend. Public methods
// validate arguments before any backend hook runs; backends never see an
// empty key. Decorator factories (Prefix, Immutable, Transform, Concat)
// return new Store values holding references to the same backends, never
// copies of their data.
type Store struct {
	b Backend
}

// New wraps a backend in the public facade.
func New(b Backend) (*Store, error) {
	if b == nil {
		return nil, fmt.Errorf("cannot wrap backend: %w", ErrNilStore)
	}
	return &Store{b: b}, nil
}

// Backend returns the wrapped backend. Useful for callers composing their
// own decorators over an existing store.
func (s *Store) Backend() Backend {
	return s.b
}

// Get returns the raw string value for key.
// Returns ErrEmptyKey for an empty key and ErrNotFound for an absent one.
func (s *Store) Get(key string) (string, error) {
	if err := validKey(key); err != nil {
		return "", err
	}
	v, ok := s.b.Lookup(key)
	if !ok {
		return "", fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	return v, nil
}

// Contains reports whether key has a value.
func (s *Store) Contains(key string) (bool, error) {
	if err := validKey(key); err != nil {
		return false, err
	}
	return s.b.Has(key), nil
}

// Set assigns value to key.
func (s *Store) Set(key, value string) error {
	if err := validKey(key); err != nil {
		return err
	}
	return s.b.Put(key, &value)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	return s.b.Put(key, nil)
}

// Clear removes all keys.
func (s *Store) Clear() error {
	return s.b.Clear()
}

// IsImmutable reports whether the store rejects mutation.
func (s *Store) IsImmutable() bool {
	return s.b.ReadOnly()
}

// Keys returns the known key set, collected from the backend sequence.
func (s *Store) Keys() []string {
	return slices.Collect(s.b.Keys())
}

// Prefix returns a view of the store scoped to keys sharing the given
// prefix. Chained calls fold into a single level of indirection:
// s.Prefix("a.").Prefix("b.") behaves identically to s.Prefix("b.a.") and
// costs the same per lookup.
func (s *Store) Prefix(prefix string) (*Store, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if inner, ok := s.b.(*prefixStore); ok {
		// Fold one level: the new prefix is applied outermost.
		return &Store{b: &prefixStore{proxy: inner.proxy, prefix: prefix + inner.prefix}}, nil
	}
	return &Store{b: &prefixStore{proxy: proxy{next: s.b}, prefix: prefix}}, nil
}

// Immutable returns a read-only view of the store. If the store is already
// immutable the receiver is returned unchanged.
func (s *Store) Immutable() *Store {
	if s.b.ReadOnly() {
		return s
	}
	return &Store{b: &immutableStore{proxy: proxy{next: s.b}}}
}

// String renders the structural description of the store chain.
func (s *Store) String() string {
	var sb strings.Builder
	sb.WriteString("Store[")
	s.b.Describe(&sb)
	sb.WriteString("]")
	return sb.String()
}

// validKey rejects empty keys before they reach any backend hook.
func validKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
