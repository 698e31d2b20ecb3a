// Package version provides version information for the application.
//
// Version metadata is read from the build info embedded by the Go toolchain,
// with ldflags overrides taking precedence at release time.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version, set via ldflags at release time.
	Version = "dev"

	// Revision is the VCS revision embedded in the build.
	Revision = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// GetVersionString returns a human-readable version string.
func GetVersionString() string {
	return fmt.Sprintf("%s (%s)", Version, Revision)
}
