// File: store/prefix.go
package store

import (
	"iter"
	"strconv"
	"strings"
)

// prefixStore scopes a wrapped backend to keys sharing a literal prefix.
// Key traffic is rewritten as prefix+key in both directions; the wrapped
// backend's hooks are called directly since the local key was already
// validated by the public facade.
//
// Nested prefix stores never occur: Store.Prefix folds a direct
// prefix-over-prefix chain into one prefixStore at construction time.
type prefixStore struct {
	proxy
	prefix string
}

func (p *prefixStore) Has(key string) bool {
	return p.next.Has(p.prefix + key)
}

func (p *prefixStore) Lookup(key string) (string, bool) {
	return p.next.Lookup(p.prefix + key)
}

func (p *prefixStore) Put(key string, value *string) error {
	return p.next.Put(p.prefix+key, value)
}

// Keys filters the wrapped key sequence to those carrying the prefix,
// strips it, and de-duplicates. Order beyond that is whatever the wrapped
// store yields.
func (p *prefixStore) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for k := range p.next.Keys() {
			local, ok := strings.CutPrefix(k, p.prefix)
			if !ok {
				continue
			}
			if _, dup := seen[local]; dup {
				continue
			}
			seen[local] = struct{}{}
			if !yield(local) {
				return
			}
		}
	}
}

func (p *prefixStore) Describe(sb *strings.Builder) {
	p.describeAfter(sb, strconv.Quote(p.prefix))
}
