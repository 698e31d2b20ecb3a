package pathnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/pathnorm/pkg/pathnorm"
)

func TestNormalizeSeparators(t *testing.T) {
	t.Parallel()

	t.Run("preserve is identity", func(t *testing.T) {
		t.Parallel()

		got, err := pathnorm.NormalizeSeparators(`a\b/c`, pathnorm.SeparatorsPreserve)
		require.NoError(t, err)
		assert.Equal(t, `a\b/c`, got)
	})
	t.Run("unix rewrites backslashes", func(t *testing.T) {
		t.Parallel()

		got, err := pathnorm.NormalizeSeparators(`a\b\c`, pathnorm.SeparatorsUnix)
		require.NoError(t, err)
		assert.Equal(t, "a/b/c", got)
	})
	t.Run("windows rewrites forward slashes", func(t *testing.T) {
		t.Parallel()

		got, err := pathnorm.NormalizeSeparators("a/b/c", pathnorm.SeparatorsWindows)
		require.NoError(t, err)
		assert.Equal(t, `a\b\c`, got)
	})
	t.Run("native matches the host separator", func(t *testing.T) {
		t.Parallel()

		sep := string(pathnorm.NativeOS().Separator())

		got, err := pathnorm.NormalizeSeparators(`a/b\c`, pathnorm.SeparatorsNative)
		require.NoError(t, err)
		assert.Equal(t, "a"+sep+"b"+sep+"c", got)
	})
	t.Run("invalid mode", func(t *testing.T) {
		t.Parallel()

		_, err := pathnorm.NormalizeSeparators("a/b", pathnorm.SeparatorMode(99))
		require.ErrorIs(t, err, pathnorm.ErrInvalidMode)
	})
}

func TestSeparatorConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a/b/c", pathnorm.ToUnixPath(`a\b/c`))
	assert.Equal(t, `a\b\c`, pathnorm.ToWindowsPath(`a\b/c`))

	sep := string(pathnorm.NativeOS().Separator())
	assert.Equal(t, "a"+sep+"b", pathnorm.ToNativePath("a/b"))
}

func TestParseSeparatorMode(t *testing.T) {
	t.Parallel()

	m, err := pathnorm.ParseSeparatorMode("Windows")
	require.NoError(t, err)
	assert.Equal(t, pathnorm.SeparatorsWindows, m)

	_, err = pathnorm.ParseSeparatorMode("dos")
	require.ErrorIs(t, err, pathnorm.ErrInvalidMode)
}
