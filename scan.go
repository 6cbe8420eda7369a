// File: store/scan.go
package store

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the store's data under basePath into the target struct or
// map. Dotted keys are nested back into tables before decoding, so a store
// holding "server.host" and "server.port" scans into a struct with a Server
// section. The target must be a non-nil pointer; fields map through the
// "toml" struct tag. Decoding is weakly typed: the raw string values convert
// to the target's field types, with hooks for durations and comma-separated
// slices.
func (s *Store) Scan(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	// Allow a trailing dot on the base path for convenience.
	basePath = strings.TrimSuffix(basePath, ".")

	nested := make(map[string]any)
	for key := range s.b.Keys() {
		if value, ok := s.b.Lookup(key); ok {
			setNestedValue(nested, key, value)
		}
	}

	sectionData := navigateToPath(nested, basePath)
	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		if sectionData == nil {
			sectionMap = make(map[string]any) // Empty section
		} else {
			return fmt.Errorf("path %q refers to non-map value (type %T)", basePath, sectionData)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", basePath, target, err)
	}

	return nil
}
