package pathnorm

import (
	"fmt"
)

// Root describes the leading root of a path: how many characters it spans, and
// whether it anchors the path to a fixed location rather than leaving it
// dependent on an ambient current drive or directory.
type Root struct {
	Length         int
	FullyQualified bool
}

// IsRooted reports whether the path begins with a recognized root marker.
func (r Root) IsRooted() bool {
	return r.Length > 0
}

// RootLength classifies the leading root of path under the target operating
// system's grammar, longest match first. On Windows targets it recognizes
// extended-length and NT-native prefixes (`\\?\`, `\??\`), device prefixes
// (`\\.\`), UNC shares (`\\host\share`), drive letters, and root-relative
// separators. On Unix targets only a single leading separator roots a path;
// input exhibiting Windows network or device syntax is an error rather than a
// guess, since silently reading a literal file name as a network path is a
// correctness bug.
func RootLength(path string, target OperatingSystem) (Root, error) {
	if !target.Valid() {
		return Root{}, fmt.Errorf("%w: %s", ErrInvalidOperatingSystem, target)
	}

	if path == "" {
		return Root{}, nil
	}

	if target.IsWindows() {
		return windowsRoot(path)
	}

	return unixRoot(path)
}

// IsFullyQualified reports whether path resolves to a fixed location with no
// dependency on an ambient current drive or directory.
func IsFullyQualified(path string, target OperatingSystem) (bool, error) {
	root, err := RootLength(path, target)
	if err != nil {
		return false, err
	}

	return root.FullyQualified, nil
}

// IsRooted reports whether path begins with a recognized root marker, fully
// qualified or not.
func IsRooted(path string, target OperatingSystem) (bool, error) {
	root, err := RootLength(path, target)
	if err != nil {
		return false, err
	}

	return root.IsRooted(), nil
}

func windowsRoot(path string) (Root, error) {
	n := len(path)

	if !isSeparator(path[0]) {
		// Drive letter, or no root at all. A colon later in the string (an
		// NTFS alternate data stream marker) never forms a root.
		if n >= 2 && path[1] == ':' && isDriveLetter(path[0]) {
			if n >= 3 && isSeparator(path[2]) {
				return Root{Length: 3, FullyQualified: true}, nil
			}

			// Drive-relative: rooted, but dependent on the drive's current
			// directory.
			return Root{Length: 2}, nil
		}

		return Root{}, nil
	}

	if isExtendedPrefix(path) || isDevicePrefix(path) {
		return deviceSpaceRoot(path), nil
	}

	if n >= 2 && isSeparator(path[1]) {
		// A device-space prefix too short to complete its pattern, such as
		// `\\?` or `\\.x`, degrades to a root-relative classification rather
		// than failing or inventing a UNC host.
		if n >= 3 && (path[2] == '?' || path[2] == '.') {
			return Root{Length: 1}, nil
		}

		return uncRoot(path)
	}

	// A single leading separator is rooted but still depends on the ambient
	// current drive. Incomplete `\??` prefixes land here as well.
	return Root{Length: 1}, nil
}

func unixRoot(path string) (Root, error) {
	if !isSeparator(path[0]) {
		// Drive letters are ordinary file name text on Unix targets, so `C:`
		// contributes no root here.
		return Root{}, nil
	}

	if len(path) >= 2 && isSeparator(path[1]) {
		return Root{}, fmt.Errorf("%w: %q has a Windows network or device prefix", ErrUnsupportedRootSyntax, path)
	}

	if len(path) >= 3 && path[1] == '?' && path[2] == '?' && (len(path) == 3 || isSeparator(path[3])) {
		return Root{}, fmt.Errorf("%w: %q has a Windows NT-native prefix", ErrUnsupportedRootSyntax, path)
	}

	return Root{Length: 1, FullyQualified: true}, nil
}

// isExtendedPrefix reports whether path begins with a 4-character
// extended-length or NT-native prefix: `\\?\` or `\??\`, with either
// separator in any separator position.
func isExtendedPrefix(path string) bool {
	if len(path) < 4 || !isSeparator(path[0]) || !isSeparator(path[3]) {
		return false
	}

	if isSeparator(path[1]) {
		return path[2] == '?'
	}

	return path[1] == '?' && path[2] == '?'
}

// isDevicePrefix reports whether path begins with a device prefix: `\\.\` or
// `//./`.
func isDevicePrefix(path string) bool {
	return len(path) >= 4 &&
		isSeparator(path[0]) && isSeparator(path[1]) &&
		path[2] == '.' && isSeparator(path[3])
}

// deviceSpaceRoot consumes the continuation of an extended-length or device
// prefix: a UNC share, a drive, or an arbitrary device name.
func deviceSpaceRoot(path string) Root {
	rest := path[4:]

	if hasPrefixFold(rest, "UNC") {
		switch {
		case len(rest) == 3:
			return Root{Length: 7, FullyQualified: true}
		case isSeparator(rest[3]):
			return Root{Length: 8 + uncSpan(rest[4:]), FullyQualified: true}
		}
	}

	if len(rest) >= 2 && isDriveLetter(rest[0]) && rest[1] == ':' {
		l := 6
		if len(rest) >= 3 && isSeparator(rest[2]) {
			l = 7
		}

		return Root{Length: l, FullyQualified: true}
	}

	// Arbitrary device name, consumed through the separator that closes it or
	// to the end of the string.
	i := 0
	for i < len(rest) && !isSeparator(rest[i]) {
		i++
	}

	if i < len(rest) {
		i++
	}

	return Root{Length: 4 + i, FullyQualified: true}
}

func uncRoot(path string) (Root, error) {
	rest := path[2:]
	if rest == "" || isSeparator(rest[0]) {
		// Bare `\\`, or three or more leading separators: no resolvable host.
		return Root{}, fmt.Errorf("%w: %q", ErrMalformedUNC, path)
	}

	return Root{Length: 2 + uncSpan(rest), FullyQualified: true}, nil
}

// uncSpan returns the length of `host`, `host<sep>share`, or
// `host<sep>share<sep>` at the start of s. A missing share keeps the root at
// the host alone.
func uncSpan(s string) int {
	hostEnd := 0
	for hostEnd < len(s) && !isSeparator(s[hostEnd]) {
		hostEnd++
	}

	if hostEnd == len(s) {
		return hostEnd
	}

	shareStart := hostEnd + 1

	shareEnd := shareStart
	for shareEnd < len(s) && !isSeparator(s[shareEnd]) {
		shareEnd++
	}

	if shareEnd == shareStart {
		return hostEnd
	}

	if shareEnd < len(s) {
		// One trailing separator belongs to the root.
		return shareEnd + 1
	}

	return shareEnd
}

func isDriveLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// hasPrefixFold reports whether s begins with prefix under ASCII case folding.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}

	for i := 0; i < len(prefix); i++ {
		if asciiUpper(s[i]) != asciiUpper(prefix[i]) {
			return false
		}
	}

	return true
}

func asciiUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}
