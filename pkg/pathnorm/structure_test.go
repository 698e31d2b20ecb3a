package pathnorm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/pathnorm/pkg/pathnorm"
)

func TestNormalizeStructure(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err    error
		path   string
		want   string
		target pathnorm.OperatingSystem
	}{
		"dotdot removes previous segment": {
			path: "folder/subfolder/../file.txt", target: pathnorm.Linux,
			want: "folder/file.txt",
		},
		"dotdot clamps at root": {
			path: "/../../file.txt", target: pathnorm.Linux,
			want: "/file.txt",
		},
		"dot segments collapse": {
			path: "./a/./b/.", target: pathnorm.Linux,
			want: "a/b",
		},
		"redundant separators collapse": {
			path: "a//b///c", target: pathnorm.Linux,
			want: "a/b/c",
		},
		"trailing separator is dropped": {
			path: "a/b/", target: pathnorm.Linux,
			want: "a/b",
		},
		"relative dotdot is preserved": {
			path: "../../a", target: pathnorm.Linux,
			want: "../../a",
		},
		"relative dotdot escapes after pop": {
			path: "a/../../b", target: pathnorm.Linux,
			want: "../b",
		},
		"single dot": {
			path: ".", target: pathnorm.Linux,
			want: "",
		},
		"bare dotdot": {
			path: "..", target: pathnorm.Linux,
			want: "..",
		},
		"empty": {
			path: "", target: pathnorm.Linux,
			want: "",
		},
		"whitespace passes through": {
			path: "   ", target: pathnorm.Linux,
			want: "   ",
		},
		"rooted path clamps to bare root": {
			path: "/a/b/../../..", target: pathnorm.Linux,
			want: "/",
		},
		"mixed separators join with first observed": {
			path: `a\b/../c`, target: pathnorm.Linux,
			want: `a\c`,
		},
		"drive absolute": {
			path: `C:\x\..\y`, target: pathnorm.Windows,
			want: `C:\y`,
		},
		"drive absolute clamps": {
			path: `C:\..\..`, target: pathnorm.Windows,
			want: `C:\`,
		},
		"drive relative clamps": {
			path: `C:..\x`, target: pathnorm.Windows,
			want: "C:x",
		},
		"root relative clamps on windows": {
			path: `\..\x`, target: pathnorm.Windows,
			want: `\x`,
		},
		"unc root is preserved": {
			path: `\\server\share\a\..\..\..\b`, target: pathnorm.Windows,
			want: `\\server\share\b`,
		},
		"extended root is preserved": {
			path: `\\?\C:\a\..\..\b`, target: pathnorm.Windows,
			want: `\\?\C:\b`,
		},
		"malformed unc": {
			path: `\\`, target: pathnorm.Windows,
			err: pathnorm.ErrMalformedUNC,
		},
		"windows syntax rejected on linux": {
			path: `\\server\share\x`, target: pathnorm.Linux,
			err: pathnorm.ErrUnsupportedRootSyntax,
		},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := pathnorm.NormalizeStructure(tc.path, tc.target)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeStructure_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"folder/subfolder/../file.txt",
		"/../../file.txt",
		"../../a",
		"a//b/./c/",
		`C:\x\..\y`,
		`\\server\share\a\..\b`,
	}

	for _, input := range inputs {
		once, err := pathnorm.NormalizeStructure(input, pathnorm.Windows)
		require.NoError(t, err)

		twice, err := pathnorm.NormalizeStructure(once, pathnorm.Windows)
		require.NoError(t, err)

		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestNormalizeStructure_PreservesRoot(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`C:\a\..\..\..\b`,
		`\\server\share\..\..`,
		`\\?\C:\..\x`,
		`\..\..`,
		"C:a/../../b",
	}

	for _, input := range inputs {
		root, err := pathnorm.RootLength(input, pathnorm.Windows)
		require.NoError(t, err)

		got, err := pathnorm.NormalizeStructure(input, pathnorm.Windows)
		require.NoError(t, err)

		require.GreaterOrEqual(t, len(got), root.Length, "input %q", input)
		assert.Equal(t, input[:root.Length], got[:root.Length], "input %q", input)
	}
}

func TestNormalizeStructure_ClampNeverUnderflows(t *testing.T) {
	t.Parallel()

	base := "/data"
	for n := 1; n <= 64; n *= 2 {
		input := base + strings.Repeat("/..", n)

		got, err := pathnorm.NormalizeStructure(input, pathnorm.Linux)
		require.NoError(t, err)
		assert.Equal(t, "/", got, "input with %d dotdot segments", n)
	}
}

func TestNormalizeStructure_DeepInputs(t *testing.T) {
	t.Parallel()

	t.Run("5000 segments", func(t *testing.T) {
		t.Parallel()

		input := strings.Repeat("x/", 5000) + "file"

		got, err := pathnorm.NormalizeStructure(input, pathnorm.Linux)
		require.NoError(t, err)
		assert.Equal(t, input, got)
	})
	t.Run("10000 dotdot segments clamp at root", func(t *testing.T) {
		t.Parallel()

		input := "/" + strings.Repeat("../", 10000) + "etc"

		got, err := pathnorm.NormalizeStructure(input, pathnorm.Linux)
		require.NoError(t, err)
		assert.Equal(t, "/etc", got)
	})
	t.Run("10000 relative dotdot segments are preserved", func(t *testing.T) {
		t.Parallel()

		input := strings.Repeat("../", 10000)
		want := ".." + strings.Repeat("/..", 9999)

		got, err := pathnorm.NormalizeStructure(input, pathnorm.Linux)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func BenchmarkNormalizeStructure(b *testing.B) {
	input := "/" + strings.Repeat("a/b/../", 1000) + "file"

	for i := 0; i < b.N; i++ {
		_, err := pathnorm.NormalizeStructure(input, pathnorm.Linux)
		require.NoError(b, err)
	}
}
