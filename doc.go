// File: store/doc.go

// Package store provides a composable key/value configuration abstraction:
// a base contract for string-keyed, string-valued stores, plus structural
// decorators that combine, scope, transform, and lock configuration sources
// without copying their data.
//
// Features:
//   - First-match-wins layering of stores with Concat (primary with
//     fallback defaults)
//   - Key scoping with Prefix, with chained prefixes folded to a single
//     level of indirection
//   - Value rewriting with Transform, including whitespace normalization
//     that treats blank values as missing
//   - Enforced immutability with Immutable and always-read-only composites
//   - Leaf backends for in-memory maps, environment variables, and
//     TOML/JSON/YAML files
//   - Typed accessors and struct decoding over the raw string values
//   - Builder for the common overrides > env > file > defaults stack
//
// Quick Start:
//
//	cfg, err := store.Quick(map[string]string{
//	    "server.host": "localhost",
//	    "server.port": "8080",
//	}, "MYAPP_", "config.toml")
//	if err != nil && !errors.Is(err, store.ErrFileNotFound) {
//	    log.Fatal(err)
//	}
//
//	host, _ := cfg.Get("server.host")
//	port, _ := cfg.Int64("server.port")
//
// Composition by hand:
//
//	base := store.Map(map[string]string{"x": "1"})
//	over := store.Map(map[string]string{"x": "2", "y": "3"})
//	merged := store.Concat(over, base) // over shadows base
//	scoped, _ := merged.Prefix("server.")
//
// Decorators hold references to their member stores, never copies: a write
// through one view of a shared backend is immediately visible through every
// other view. The package adds no caching and no locking of its own;
// concurrency guarantees are exactly those of the leaf backends (the
// in-memory leaves use a sync.RWMutex, the environment leaf is read-only).
package store
