package pathnorm

import (
	"fmt"
	"runtime"
	"strings"
)

// OperatingSystem selects which root grammar is legal for a path.
type OperatingSystem int

const (
	// Windows accepts drive letters, UNC shares, and device or extended-length
	// prefixes.
	Windows OperatingSystem = iota + 1

	// Linux accepts only separator-rooted paths.
	Linux

	// MacOS accepts only separator-rooted paths.
	MacOS
)

// NativeOS returns the operating system the process is running on.
func NativeOS() OperatingSystem {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return Linux
	}
}

// IsWindows reports whether o uses the Windows root grammar.
func (o OperatingSystem) IsWindows() bool {
	return o == Windows
}

// Separator returns the canonical separator character for o.
func (o OperatingSystem) Separator() byte {
	if o == Windows {
		return '\\'
	}

	return '/'
}

// Valid reports whether o is a recognized operating system value.
func (o OperatingSystem) Valid() bool {
	switch o {
	case Windows, Linux, MacOS:
		return true
	default:
		return false
	}
}

func (o OperatingSystem) String() string {
	switch o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	default:
		return fmt.Sprintf("OperatingSystem(%d)", int(o))
	}
}

// ParseOperatingSystem parses a case-insensitive operating system name.
// "darwin" is accepted as an alias for "macos", and "native" resolves to the
// host operating system.
func ParseOperatingSystem(s string) (OperatingSystem, error) {
	switch strings.ToLower(s) {
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "macos", "darwin":
		return MacOS, nil
	case "native":
		return NativeOS(), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperatingSystem, s)
	}
}
