package pathnorm

import (
	"fmt"
)

// HandleTrailingSeparator applies the trailing separator mode to path. An
// empty path always passes through unchanged: there is no content to anchor a
// separator to.
func HandleTrailingSeparator(path string, mode TrailingSeparatorMode) (string, error) {
	if path == "" {
		return path, nil
	}

	switch mode {
	case TrailingPreserve:
		return path, nil
	case TrailingRemove:
		return RemoveTrailingSeparator(path), nil
	case TrailingEnsure:
		return EnsureTrailingSeparator(path), nil
	default:
		return "", fmt.Errorf("%w: trailing separator mode %d", ErrInvalidMode, int(mode))
	}
}

// RemoveTrailingSeparator strips one trailing separator from path, if present.
func RemoveTrailingSeparator(path string) string {
	if n := len(path); n > 0 && isSeparator(path[n-1]) {
		return path[:n-1]
	}

	return path
}

// EnsureTrailingSeparator appends the native separator to path, unless path is
// empty or already ends in a separator.
func EnsureTrailingSeparator(path string) string {
	if path == "" || isSeparator(path[len(path)-1]) {
		return path
	}

	return path + string(NativeOS().Separator())
}
