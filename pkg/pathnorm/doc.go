// Package pathnorm normalizes and combines path strings.
//
// This package implements purely lexical path manipulation: root grammar
// parsing (drive letters, UNC shares, device and extended-length prefixes),
// dot-segment resolution with root clamping, separator and trailing-separator
// rewriting, Unicode composition, and a validating combiner that joins path
// fragments without letting a later rooted fragment displace an earlier base
// path. It never touches a filesystem.
package pathnorm
