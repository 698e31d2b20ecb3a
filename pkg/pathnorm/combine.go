package pathnorm

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Combine validates segments against the policy in opts, joins the survivors,
// and runs [Normalize] over the result.
//
// Empty and whitespace segments are dropped, or rejected when
// Options.ErrorOnEmptySegments is set. With
// Options.ValidateSubsequentRelative, every segment after the first must be
// relative; a rooted later segment is rejected rather than silently
// displacing the base path joined before it. Violations across multiple
// segments are aggregated into a single error naming each offending value.
func Combine(opts Options, segments ...string) (string, error) {
	return combine(opts, false, segments)
}

// CombineToAbsolute is [Combine] with a fully qualified first segment
// required, so the result is always anchored to a fixed location.
func CombineToAbsolute(opts Options, segments ...string) (string, error) {
	return combine(opts.WithRequireAbsoluteFirstSegment(true), false, segments)
}

// CombineRelative is [Combine] with every segment, including the first,
// required to be relative, so the result is always a relative path.
func CombineRelative(opts Options, segments ...string) (string, error) {
	o := opts.
		WithRequireAbsoluteFirstSegment(false).
		WithValidateSubsequentRelative(true)

	return combine(o, true, segments)
}

// CombineNative is [Combine] pinned to the host operating system and its
// separator.
func CombineNative(opts Options, segments ...string) (string, error) {
	o := opts.
		WithSeparators(SeparatorsNative).
		WithTargetOS(NativeOS())

	return combine(o, false, segments)
}

// CombineWindows is [Combine] pinned to the Windows root grammar and `\`
// separators.
func CombineWindows(opts Options, segments ...string) (string, error) {
	o := opts.
		WithSeparators(SeparatorsWindows).
		WithTargetOS(Windows)

	return combine(o, false, segments)
}

// CombineUnix is [Combine] pinned to the Unix root grammar and `/`
// separators.
func CombineUnix(opts Options, segments ...string) (string, error) {
	o := opts.
		WithSeparators(SeparatorsUnix).
		WithTargetOS(Linux)

	return combine(o, false, segments)
}

func combine(opts Options, requireRelativeFirst bool, segments []string) (string, error) {
	var merr error

	kept := make([]string, 0, len(segments))

	for i, seg := range segments {
		if opts.TrimSegments {
			seg = strings.TrimSpace(seg)
		}

		if strings.TrimSpace(seg) == "" {
			if opts.ErrorOnEmptySegments {
				merr = multierror.Append(merr, fmt.Errorf("%w: segment %d", ErrEmptySegment, i))
			}

			continue
		}

		kept = append(kept, seg)
	}

	if merr != nil {
		return "", merr
	}

	if len(kept) == 0 {
		if opts.RequireAtLeastOneSegment {
			return "", ErrNoSegments
		}

		return "", nil
	}

	if opts.RequireAbsoluteFirstSegment || requireRelativeFirst {
		first, err := RootLength(kept[0], opts.TargetOS)
		if err != nil {
			return "", err
		}

		if opts.RequireAbsoluteFirstSegment && !first.FullyQualified {
			return "", fmt.Errorf("%w: %q", ErrNotFullyQualified, kept[0])
		}

		if requireRelativeFirst && first.IsRooted() {
			return "", fmt.Errorf("%w: %q must be a relative path", ErrNotRelative, kept[0])
		}
	}

	if opts.ValidateSubsequentRelative {
		for _, seg := range kept[1:] {
			root, err := RootLength(seg, opts.TargetOS)
			if err != nil {
				merr = multierror.Append(merr, err)

				continue
			}

			if root.IsRooted() {
				merr = multierror.Append(merr, fmt.Errorf("%w: %q must be a relative path", ErrNotRelative, seg))
			}
		}

		if merr != nil {
			return "", merr
		}
	}

	joined := joinSegments(kept, joinSeparator(opts, kept[0]), opts.TargetOS)

	return Normalize(joined, opts)
}

func joinSeparator(opts Options, first string) byte {
	switch opts.Separators {
	case SeparatorsUnix:
		return '/'
	case SeparatorsWindows:
		return '\\'
	case SeparatorsNative:
		return NativeOS().Separator()
	default:
		return firstSeparator(first, opts.TargetOS)
	}
}

// joinSegments joins segments with sep, without doubling separators at the
// seams.
func joinSegments(segments []string, sep byte, target OperatingSystem) string {
	var b strings.Builder

	for _, seg := range segments {
		if b.Len() == 0 {
			b.WriteString(seg)

			continue
		}

		joined := b.String()
		last := joined[len(joined)-1]

		switch {
		case isSeparator(last):
			for len(seg) > 0 && isSeparator(seg[0]) {
				seg = seg[1:]
			}
		case target.IsWindows() && last == ':' && b.Len() == 2:
			// A bare drive first segment stays drive-relative: `C:` joined
			// with `f` is `C:f`, not `C:\f`.
		case len(seg) > 0 && isSeparator(seg[0]):
		default:
			b.WriteByte(sep)
		}

		b.WriteString(seg)
	}

	return b.String()
}
