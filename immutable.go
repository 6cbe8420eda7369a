// File: store/immutable.go
package store

import "strings"

// immutableStore rejects all mutation and forwards all reads. Constructed
// through Store.Immutable, which skips the wrap when the store is already
// read-only.
type immutableStore struct {
	proxy
}

func (i *immutableStore) Put(string, *string) error {
	return ErrImmutable
}

func (i *immutableStore) Clear() error {
	return ErrImmutable
}

func (i *immutableStore) ReadOnly() bool {
	return true
}

func (i *immutableStore) Describe(sb *strings.Builder) {
	i.describeAfter(sb, "immutable")
}
