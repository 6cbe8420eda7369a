// File: store/concat.go
package store

import (
	"iter"
	"strings"
)

// concatStore is a read-only composite over an ordered member sequence with
// first-match-wins lookup: the earliest member defining a key shadows every
// later one. It holds references to its members, never copies of their data,
// so mutations through a shared backend are visible immediately.
type concatStore struct {
	members []Backend
}

// Concat combines stores with first-match-wins precedence: earlier stores
// shadow later ones, the usual "primary with fallback defaults" layering.
// Nil entries are elided, so optional override layers cost nothing when
// absent:
//
//	0 stores, or all nil  -> nil
//	1 remaining store     -> that store, unwrapped
//	otherwise             -> a read-only composite
//
// The fold is pairwise left-to-right, so the elision rule applies at every
// step and no composite is built around a pass-through result.
func Concat(stores ...*Store) *Store {
	var acc *Store
	for _, s := range stores {
		acc = concatPair(acc, s)
	}
	return acc
}

func concatPair(a, b *Store) *Store {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &Store{b: &concatStore{members: []Backend{a.b, b.b}}}
}

func (c *concatStore) Has(key string) bool {
	for _, m := range c.members {
		if m.Has(key) {
			return true
		}
	}
	return false
}

func (c *concatStore) Lookup(key string) (string, bool) {
	for _, m := range c.members {
		if v, ok := m.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

func (c *concatStore) Put(string, *string) error {
	return ErrImmutable
}

// Clear is rejected outright; no member is touched.
func (c *concatStore) Clear() error {
	return ErrImmutable
}

func (c *concatStore) ReadOnly() bool {
	return true
}

// Keys yields the union of every member's keys in member order,
// de-duplicated with the first occurrence winning.
func (c *concatStore) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, m := range c.members {
			for k := range m.Keys() {
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				if !yield(k) {
					return
				}
			}
		}
	}
}

func (c *concatStore) Describe(sb *strings.Builder) {
	for i, m := range c.members {
		if i > 0 {
			sb.WriteString(" | ")
		}
		m.Describe(sb)
	}
}
