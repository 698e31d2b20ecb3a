package pathnorm

import (
	"fmt"
	"strings"
)

// isSeparator reports whether c is a path separator. Both `/` and `\` act as
// separators regardless of the target operating system.
func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// NormalizeSeparators rewrites every separator character in path to the
// mode's target separator. SeparatorsPreserve is the identity.
func NormalizeSeparators(path string, mode SeparatorMode) (string, error) {
	switch mode {
	case SeparatorsPreserve:
		return path, nil
	case SeparatorsUnix:
		return rewriteSeparators(path, '/'), nil
	case SeparatorsWindows:
		return rewriteSeparators(path, '\\'), nil
	case SeparatorsNative:
		return rewriteSeparators(path, NativeOS().Separator()), nil
	default:
		return "", fmt.Errorf("%w: separator mode %d", ErrInvalidMode, int(mode))
	}
}

// ToUnixPath rewrites every separator in path to `/`.
func ToUnixPath(path string) string {
	return rewriteSeparators(path, '/')
}

// ToWindowsPath rewrites every separator in path to `\`.
func ToWindowsPath(path string) string {
	return rewriteSeparators(path, '\\')
}

// ToNativePath rewrites every separator in path to the host separator.
func ToNativePath(path string) string {
	return rewriteSeparators(path, NativeOS().Separator())
}

func rewriteSeparators(path string, sep byte) string {
	other := byte('/')
	if sep == '/' {
		other = '\\'
	}

	return strings.ReplaceAll(path, string(other), string(sep))
}

// firstSeparator returns the first separator character observed in path,
// falling back to the target's canonical separator if none is present.
func firstSeparator(path string, target OperatingSystem) byte {
	for i := 0; i < len(path); i++ {
		if isSeparator(path[i]) {
			return path[i]
		}
	}

	return target.Separator()
}
