// File: store/errors.go
package store

import "errors"

var (
	// ErrNotFound indicates the requested key has no value in the store.
	ErrNotFound = errors.New("key not found")

	// ErrEmptyKey indicates an empty key was passed to a public operation.
	ErrEmptyKey = errors.New("key cannot be empty")

	// ErrImmutable indicates a mutating operation reached a read-only store.
	ErrImmutable = errors.New("store is immutable")

	// ErrEmptyPrefix indicates an empty prefix was passed to Prefix.
	ErrEmptyPrefix = errors.New("prefix cannot be empty")

	// ErrNilStore indicates a nil backend or nil store where one is required.
	ErrNilStore = errors.New("store cannot be nil")

	// ErrFileNotFound indicates the configuration file does not exist.
	// It is non-fatal for the Builder, which skips the file layer.
	ErrFileNotFound = errors.New("configuration file not found")
)
