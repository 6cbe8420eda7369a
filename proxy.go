// File: store/proxy.go
package store

import (
	"iter"
	"strings"
)

// proxy forwards every hook to a single wrapped backend. Decorators embed it
// and override only the hooks they change; it exists purely to eliminate
// repetition. proxy itself carries no Describe: each decorator renders its
// own description in front of the wrapped one.
type proxy struct {
	next Backend
}

func (p *proxy) Has(key string) bool {
	return p.next.Has(key)
}

func (p *proxy) Lookup(key string) (string, bool) {
	return p.next.Lookup(key)
}

func (p *proxy) Put(key string, value *string) error {
	return p.next.Put(key, value)
}

func (p *proxy) Keys() iter.Seq[string] {
	return p.next.Keys()
}

func (p *proxy) Clear() error {
	return p.next.Clear()
}

func (p *proxy) ReadOnly() bool {
	return p.next.ReadOnly()
}

// describeAfter renders self followed by the wrapped store's description.
func (p *proxy) describeAfter(sb *strings.Builder, self string) {
	sb.WriteString(self)
	sb.WriteString("->")
	p.next.Describe(sb)
}
