package pathnorm

import (
	"errors"
)

var (
	// ErrMalformedUNC indicates a `\\` or `//` prefix with no resolvable host.
	ErrMalformedUNC = errors.New("malformed UNC path")

	// ErrUnsupportedRootSyntax indicates Windows-only root syntax (UNC, device,
	// or extended-length prefixes) under a non-Windows target.
	ErrUnsupportedRootSyntax = errors.New("unsupported root syntax for target operating system")

	// ErrEmptySegment indicates a null, empty, or whitespace segment rejected
	// under a strict segment policy.
	ErrEmptySegment = errors.New("empty path segment")

	// ErrNoSegments indicates every provided segment was empty or dropped.
	ErrNoSegments = errors.New("no path segments provided")

	// ErrNotFullyQualified indicates a first segment that does not resolve to a
	// fixed location.
	ErrNotFullyQualified = errors.New("path is not fully qualified")

	// ErrNotRelative indicates a rooted segment in a position that requires a
	// relative path.
	ErrNotRelative = errors.New("path is not relative")

	// ErrInvalidUnicode indicates input that is not valid UTF-8, which is how
	// unpaired surrogate code units surface in Go strings.
	ErrInvalidUnicode = errors.New("invalid unicode in path")

	// ErrInvalidMode indicates an unrecognized normalization mode value.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidOperatingSystem indicates an unrecognized target operating
	// system value.
	ErrInvalidOperatingSystem = errors.New("invalid operating system")
)
