package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/pathnorm/pkg/config"
	"github.com/MacroPower/pathnorm/pkg/pathnorm"
)

var testDataDir string

func init() {
	_, filename, _, _ := runtime.Caller(0)
	testDataDir = filepath.Join(filepath.Dir(filename), "testdata")
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	t.Run("preset with overrides", func(t *testing.T) {
		t.Parallel()

		p, err := config.LoadProfile(filepath.Join(testDataDir, "unix_strict.yaml"))
		require.NoError(t, err)

		opts, err := p.Options()
		require.NoError(t, err)

		want := pathnorm.UnixOptions().
			WithErrorOnEmptySegments(true).
			WithRequireAbsoluteFirstSegment(true).
			WithTrailing(pathnorm.TrailingRemove)
		assert.Equal(t, want, opts)
	})
	t.Run("empty profile resolves to default", func(t *testing.T) {
		t.Parallel()

		p, err := config.LoadProfile(filepath.Join(testDataDir, "empty.yaml"))
		require.NoError(t, err)

		opts, err := p.Options()
		require.NoError(t, err)
		assert.Equal(t, pathnorm.DefaultOptions(), opts)
	})
	t.Run("unknown key is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadProfile(filepath.Join(testDataDir, "unknown_key.yaml"))
		require.ErrorIs(t, err, config.ErrParseProfile)
	})
	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadProfile(filepath.Join(testDataDir, "does_not_exist.yaml"))
		require.ErrorIs(t, err, config.ErrReadProfile)
	})
}

func TestProfileOptions_Invalid(t *testing.T) {
	t.Parallel()

	t.Run("unknown preset", func(t *testing.T) {
		t.Parallel()

		p := &config.Profile{Preset: "plan9"}

		_, err := p.Options()
		require.ErrorIs(t, err, config.ErrUnknownPreset)
	})
	t.Run("invalid target os", func(t *testing.T) {
		t.Parallel()

		bad := "beos"
		p := &config.Profile{TargetOS: &bad}

		_, err := p.Options()
		require.ErrorIs(t, err, config.ErrParseProfile)
		require.ErrorIs(t, err, pathnorm.ErrInvalidOperatingSystem)
	})
	t.Run("invalid separator mode", func(t *testing.T) {
		t.Parallel()

		bad := "dos"
		p := &config.Profile{Separators: &bad}

		_, err := p.Options()
		require.ErrorIs(t, err, pathnorm.ErrInvalidMode)
	})
}

func TestPresetOptions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		name string
		want pathnorm.Options
	}{
		"empty is default": {name: "", want: pathnorm.DefaultOptions()},
		"default":          {name: "default", want: pathnorm.DefaultOptions()},
		"native":           {name: "native", want: pathnorm.NativeOptions()},
		"unix":             {name: "Unix", want: pathnorm.UnixOptions()},
		"windows":          {name: "windows", want: pathnorm.WindowsOptions()},
		"minimal":          {name: "minimal", want: pathnorm.MinimalOptions()},
		"unknown":          {name: "plan9", err: config.ErrUnknownPreset},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := config.PresetOptions(tc.name)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
