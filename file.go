// File: store/file.go
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileStore is a leaf backend loaded from a configuration file. Nested
// tables are flattened to dotted keys and every scalar is rendered as a
// string at load time. Mutation happens in memory; SaveFile persists the
// current state back to disk.
type fileStore struct {
	mapStore
	path string
}

// File loads a configuration file into a mutable store. The format is
// determined from the extension (.toml, .json, .yaml/.yml), falling back to
// content detection. A missing file is reported as ErrFileNotFound.
func File(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("store file %q: %w", path, ErrFileNotFound)
		}
		return nil, fmt.Errorf("failed to read store file %q: %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("unable to determine store format for file %q", path)
		}
	}

	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML store file %q: %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON store file %q: %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML store file %q: %w", path, err)
		}
	}

	flat := flattenMap(raw, "")
	values := make(map[string]string, len(flat))
	for key, value := range flat {
		if key == "" {
			continue
		}
		values[key] = renderScalar(value)
	}

	fs := &fileStore{path: path}
	fs.data = values
	return &Store{b: fs}, nil
}

// SaveFile writes the store's current state to a TOML file, nesting dotted
// keys back into tables. The write is atomic: data goes to a temporary file
// in the target directory which is then renamed over the destination.
func SaveFile(s *Store, path string) error {
	if s == nil {
		return fmt.Errorf("cannot save: %w", ErrNilStore)
	}

	nested := make(map[string]any)
	for key := range s.b.Keys() {
		if value, ok := s.b.Lookup(key); ok {
			setNestedValue(nested, key, value)
		}
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(nested); err != nil {
		return fmt.Errorf("failed to marshal store data to TOML: %w", err)
	}

	return atomicWriteFile(path, buf.Bytes())
}

func (f *fileStore) Describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "file(%q)", f.path)
}

// atomicWriteFile performs an atomic file write.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary store file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary store file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary store file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary store file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set store file permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary store file: %w", err)
	}

	return nil
}

// detectFileFormat determines format from the file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing. JSON is the
// strictest so it goes first; YAML is a JSON superset so it goes second.
func detectFormatFromContent(data []byte) string {
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}

// renderScalar converts a parsed file value to its raw string form.
// Slices render comma-joined so the decode hooks in Scan can split them
// back apart.
func renderScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format(time.RFC3339)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = renderScalar(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", val)
	}
}
