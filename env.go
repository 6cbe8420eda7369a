// File: store/env.go
package store

import (
	"fmt"
	"iter"
	"os"
	"strings"
)

// envStore is a read-only leaf over the process environment. A store key
// maps to a variable name by replacing dots with underscores, uppercasing,
// and prepending the prefix: with prefix "MYAPP_", "server.port" reads
// MYAPP_SERVER_PORT. Key enumeration applies the reverse mapping to every
// matching variable, so keys whose original spelling contained underscores
// or lowercase letters come back in dotted form.
type envStore struct {
	prefix string
}

// Env returns a read-only store backed by the process environment.
// The prefix may be empty, exposing the entire environment.
func Env(envPrefix string) *Store {
	return &Store{b: &envStore{prefix: envPrefix}}
}

func (e *envStore) varName(key string) string {
	name := strings.ReplaceAll(key, ".", "_")
	return e.prefix + strings.ToUpper(name)
}

func (e *envStore) keyName(varName string) string {
	key := strings.ReplaceAll(varName, "_", ".")
	return strings.ToLower(key)
}

func (e *envStore) Has(key string) bool {
	_, ok := os.LookupEnv(e.varName(key))
	return ok
}

func (e *envStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(e.varName(key))
}

func (e *envStore) Put(string, *string) error {
	return ErrImmutable
}

func (e *envStore) Clear() error {
	return ErrImmutable
}

func (e *envStore) ReadOnly() bool {
	return true
}

func (e *envStore) Keys() iter.Seq[string] {
	environ := os.Environ()
	return func(yield func(string) bool) {
		for _, entry := range environ {
			name, _, ok := strings.Cut(entry, "=")
			if !ok {
				continue
			}
			suffix, ok := strings.CutPrefix(name, e.prefix)
			if !ok || suffix == "" {
				continue
			}
			if !yield(e.keyName(suffix)) {
				return
			}
		}
	}
}

func (e *envStore) Describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "env(%q)", e.prefix)
}
