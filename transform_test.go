// File: store/transform_test.go
package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	raw := Map(map[string]string{
		"padded": "  a  ",
		"blank":  "   ",
		"plain":  "b",
	})
	norm, err := Normalize(raw)
	require.NoError(t, err)

	t.Run("TrimsWhitespace", func(t *testing.T) {
		v, err := norm.Get("padded")
		require.NoError(t, err)
		assert.Equal(t, "a", v)
	})

	t.Run("BlankReadsAsAbsent", func(t *testing.T) {
		_, err := norm.Get("blank")
		assert.ErrorIs(t, err, ErrNotFound)

		// Containment tracks the transformed result, not the raw store.
		ok, err := norm.Contains("blank")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = raw.Contains("blank")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("PassThrough", func(t *testing.T) {
		v, err := norm.Get("plain")
		require.NoError(t, err)
		assert.Equal(t, "b", v)

		ok, err := norm.Contains("plain")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

// TestTransformWritesUntransformed verifies the function is read-direction
// only: writes reach the wrapped store verbatim.
func TestTransformWritesUntransformed(t *testing.T) {
	raw := Map(nil)
	norm, err := Normalize(raw)
	require.NoError(t, err)

	require.NoError(t, norm.Set("k", "  spaced  "))

	v, err := raw.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "  spaced  ", v)

	// Reading back through the transform trims again.
	v, err = norm.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "spaced", v)
}

func TestTransformCustomFunc(t *testing.T) {
	raw := Map(map[string]string{"k": "value", "hidden": "secret"})

	upper, err := Transform(raw, "upper", func(v string) (string, bool) {
		if v == "secret" {
			return "", false
		}
		return strings.ToUpper(v), true
	})
	require.NoError(t, err)

	v, err := upper.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "VALUE", v)

	_, err = upper.Get("hidden")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, "Store[upper->map]", upper.String())
}

func TestTransformConstruction(t *testing.T) {
	_, err := Transform(nil, "noop", func(v string) (string, bool) { return v, true })
	assert.ErrorIs(t, err, ErrNilStore)

	_, err = Transform(Map(nil), "noop", nil)
	assert.Error(t, err)
}

// TestTransformInheritsMutability verifies the transform view forwards
// immutability and clear to the wrapped store.
func TestTransformInheritsMutability(t *testing.T) {
	raw := Map(map[string]string{"k": "v"})
	norm, err := Normalize(raw)
	require.NoError(t, err)

	assert.False(t, norm.IsImmutable())
	require.NoError(t, norm.Clear())
	assert.Empty(t, raw.Keys())
}
