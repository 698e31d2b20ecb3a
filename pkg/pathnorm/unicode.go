package pathnorm

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeUnicode composes path to Unicode canonical form (NFC). Input that
// is not valid UTF-8, which is how unpaired surrogate code units surface in Go
// strings, is rejected rather than passed through.
func NormalizeUnicode(path string) (string, error) {
	if !utf8.ValidString(path) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnicode, path)
	}

	return norm.NFC.String(path), nil
}
