package pathnorm

import (
	"strings"
)

// NormalizeStructure resolves `.` and `..` segments in path lexically. The
// root substring identified by [RootLength] is copied into the output verbatim
// and never traversed above: `..` segments clamp at the root of a rooted path.
// On a purely relative path, leading `..` segments are preserved, since there
// is no fixed root to clamp against. Redundant separators always collapse, and
// remaining segments are rejoined with the first separator character observed
// in the input.
//
// Empty or whitespace input passes through unchanged. An all-dots relative
// input such as `.` normalizes to the empty string; a bare `..` normalizes to
// itself.
func NormalizeStructure(path string, target OperatingSystem) (string, error) {
	if strings.TrimSpace(path) == "" {
		return path, nil
	}

	root, err := RootLength(path, target)
	if err != nil {
		return "", err
	}

	rest := path[root.Length:]
	sep := firstSeparator(path, target)

	// Explicit slice-backed stack, never recursion: adversarial inputs with
	// tens of thousands of `..` segments must resolve in linear time without
	// growing the call stack.
	stack := make([]string, 0, 8)

	start := 0
	for i := 0; i <= len(rest); i++ {
		if i < len(rest) && !isSeparator(rest[i]) {
			continue
		}

		seg := rest[start:i]
		start = i + 1

		switch seg {
		case "", ".":
			// Redundant separators and current-directory markers collapse.
		case "..":
			switch {
			case root.IsRooted():
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				// Clamped at the root otherwise: a rooted path never
				// traverses above its root.
			case len(stack) > 0 && stack[len(stack)-1] != "..":
				stack = stack[:len(stack)-1]
			default:
				stack = append(stack, "..")
			}
		default:
			stack = append(stack, seg)
		}
	}

	return path[:root.Length] + strings.Join(stack, string(sep)), nil
}
