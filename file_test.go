// File: store/file_test.go
package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileStoreTOML(t *testing.T) {
	path := writeTempFile(t, "config.toml", `
name = "test"
debug = true
limit = 100

[server]
host = "localhost"
port = 8080

[server.tls]
enabled = false
`)

	s, err := File(path)
	require.NoError(t, err)

	tests := map[string]string{
		"name":               "test",
		"debug":              "true",
		"limit":              "100",
		"server.host":        "localhost",
		"server.port":        "8080",
		"server.tls.enabled": "false",
	}
	for key, want := range tests {
		v, err := s.Get(key)
		require.NoError(t, err, "key %q", key)
		assert.Equal(t, want, v, "key %q", key)
	}

	assert.False(t, s.IsImmutable())
}

func TestFileStoreJSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{
  "name": "test",
  "server": {"port": 8080, "ratio": 0.5},
  "tags": ["a", "b"]
}`)

	s, err := File(path)
	require.NoError(t, err)

	v, err := s.Get("server.port")
	require.NoError(t, err)
	assert.Equal(t, "8080", v) // json.Number preserves precision

	v, err = s.Get("server.ratio")
	require.NoError(t, err)
	assert.Equal(t, "0.5", v)

	v, err = s.Get("tags")
	require.NoError(t, err)
	assert.Equal(t, "a,b", v)
}

func TestFileStoreYAML(t *testing.T) {
	path := writeTempFile(t, "config.yaml", `
name: test
server:
  host: localhost
  port: 8080
`)

	s, err := File(path)
	require.NoError(t, err)

	v, err := s.Get("server.host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", v)

	v, err = s.Get("server.port")
	require.NoError(t, err)
	assert.Equal(t, "8080", v)
}

// TestFileStoreContentDetection loads files whose extension gives no format
// hint.
func TestFileStoreContentDetection(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		path := writeTempFile(t, "app.conf", `{"key": "json-value"}`)
		s, err := File(path)
		require.NoError(t, err)

		v, err := s.Get("key")
		require.NoError(t, err)
		assert.Equal(t, "json-value", v)
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeTempFile(t, "app.conf", "key: yaml-value\n")
		s, err := File(path)
		require.NoError(t, err)

		v, err := s.Get("key")
		require.NoError(t, err)
		assert.Equal(t, "yaml-value", v)
	})
}

func TestFileStoreMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

// TestFileStoreUnparseable verifies a parse failure names the offending
// store file.
func TestFileStoreUnparseable(t *testing.T) {
	path := writeTempFile(t, "broken.toml", "= this is not valid\n")

	_, err := File(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store file")
	assert.Contains(t, err.Error(), path)
}

// TestSaveFileRoundTrip mutates a loaded store, saves it, and reloads.
func TestSaveFileRoundTrip(t *testing.T) {
	path := writeTempFile(t, "config.toml", `
[server]
host = "localhost"
`)

	s, err := File(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("server.port", "9090"))
	require.NoError(t, s.Remove("server.host"))

	out := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, SaveFile(s, out))

	reloaded, err := File(out)
	require.NoError(t, err)

	v, err := reloaded.Get("server.port")
	require.NoError(t, err)
	assert.Equal(t, "9090", v)

	_, err = reloaded.Get("server.host")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestSaveFileOfComposite persists the merged view of a layered store.
func TestSaveFileOfComposite(t *testing.T) {
	merged := Concat(
		Map(map[string]string{"a": "override"}),
		Map(map[string]string{"a": "base", "b": "kept"}),
	)

	out := filepath.Join(t.TempDir(), "merged.toml")
	require.NoError(t, SaveFile(merged, out))

	reloaded, err := File(out)
	require.NoError(t, err)

	v, err := reloaded.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "override", v)

	v, err = reloaded.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "kept", v)
}

func TestSaveFileNilStore(t *testing.T) {
	assert.ErrorIs(t, SaveFile(nil, "x.toml"), ErrNilStore)
}
