// File: store/transform.go
package store

import (
	"fmt"
	"strings"
)

// TransformFunc rewrites a raw value read from a wrapped store. Returning
// false marks the value absent. The function must be pure; it is invoked on
// every read, uncached.
type TransformFunc func(raw string) (string, bool)

// transformStore rewrites values read from the wrapped backend through a
// pure function. Containment intentionally tracks the transformed result
// rather than the wrapped store's raw containment: a function that maps a
// present value to absent also changes Has. Writes pass through
// untransformed; the function is read-direction only.
type transformStore struct {
	proxy
	name string
	fn   TransformFunc
}

// Transform returns a view of the store whose read values are rewritten by
// fn. The name appears in the structural description.
func Transform(s *Store, name string, fn TransformFunc) (*Store, error) {
	if s == nil {
		return nil, fmt.Errorf("cannot transform: %w", ErrNilStore)
	}
	if fn == nil {
		return nil, fmt.Errorf("transform function cannot be nil")
	}
	return &Store{b: &transformStore{proxy: proxy{next: s.b}, name: name, fn: fn}}, nil
}

// Normalize returns a view of the store whose values are trimmed of leading
// and trailing whitespace, with values that are blank after trimming treated
// as absent.
func Normalize(s *Store) (*Store, error) {
	return Transform(s, "normalize", func(raw string) (string, bool) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return "", false
		}
		return trimmed, true
	})
}

func (t *transformStore) Lookup(key string) (string, bool) {
	raw, ok := t.next.Lookup(key)
	if !ok {
		return "", false
	}
	return t.fn(raw)
}

func (t *transformStore) Has(key string) bool {
	_, ok := t.Lookup(key)
	return ok
}

func (t *transformStore) Describe(sb *strings.Builder) {
	t.describeAfter(sb, t.name)
}
