package pathnorm

import (
	"fmt"
	"strings"
)

// SeparatorMode selects how separator characters are rewritten.
type SeparatorMode int

const (
	// SeparatorsPreserve leaves every separator as written.
	SeparatorsPreserve SeparatorMode = iota

	// SeparatorsUnix rewrites every separator to `/`.
	SeparatorsUnix

	// SeparatorsWindows rewrites every separator to `\`.
	SeparatorsWindows

	// SeparatorsNative rewrites every separator to the host separator.
	SeparatorsNative
)

func (m SeparatorMode) String() string {
	switch m {
	case SeparatorsPreserve:
		return "preserve"
	case SeparatorsUnix:
		return "unix"
	case SeparatorsWindows:
		return "windows"
	case SeparatorsNative:
		return "native"
	default:
		return fmt.Sprintf("SeparatorMode(%d)", int(m))
	}
}

// ParseSeparatorMode parses a case-insensitive separator mode name.
func ParseSeparatorMode(s string) (SeparatorMode, error) {
	switch strings.ToLower(s) {
	case "preserve":
		return SeparatorsPreserve, nil
	case "unix":
		return SeparatorsUnix, nil
	case "windows":
		return SeparatorsWindows, nil
	case "native":
		return SeparatorsNative, nil
	default:
		return 0, fmt.Errorf("%w: separator mode %q", ErrInvalidMode, s)
	}
}

// TrailingSeparatorMode selects how a trailing separator is handled.
type TrailingSeparatorMode int

const (
	// TrailingPreserve leaves the trailing separator as written.
	TrailingPreserve TrailingSeparatorMode = iota

	// TrailingRemove strips one trailing separator if present.
	TrailingRemove

	// TrailingEnsure appends the native separator if absent.
	TrailingEnsure
)

func (m TrailingSeparatorMode) String() string {
	switch m {
	case TrailingPreserve:
		return "preserve"
	case TrailingRemove:
		return "remove"
	case TrailingEnsure:
		return "ensure"
	default:
		return fmt.Sprintf("TrailingSeparatorMode(%d)", int(m))
	}
}

// ParseTrailingSeparatorMode parses a case-insensitive trailing separator mode
// name.
func ParseTrailingSeparatorMode(s string) (TrailingSeparatorMode, error) {
	switch strings.ToLower(s) {
	case "preserve":
		return TrailingPreserve, nil
	case "remove":
		return TrailingRemove, nil
	case "ensure":
		return TrailingEnsure, nil
	default:
		return 0, fmt.Errorf("%w: trailing separator mode %q", ErrInvalidMode, s)
	}
}

// Options configures segment validation and normalization for [Combine] and
// [Normalize]. It is a plain value: the With methods return modified copies,
// and the preset constructors return fresh values, so shared Options are never
// mutated.
type Options struct {
	// ErrorOnEmptySegments rejects empty or whitespace segments instead of
	// silently dropping them.
	ErrorOnEmptySegments bool

	// TrimSegments trims whitespace from each segment before validation.
	TrimSegments bool

	// RequireAtLeastOneSegment rejects input where every segment was dropped.
	RequireAtLeastOneSegment bool

	// RequireAbsoluteFirstSegment requires the first surviving segment to be
	// fully qualified.
	RequireAbsoluteFirstSegment bool

	// ValidateSubsequentRelative rejects rooted segments after the first. This
	// is the injection guard: without it, a later rooted fragment would
	// silently displace everything joined before it.
	ValidateSubsequentRelative bool

	// NormalizeUnicode enables NFC composition.
	NormalizeUnicode bool

	// NormalizeStructure enables dot-segment resolution.
	NormalizeStructure bool

	// Separators selects separator rewriting.
	Separators SeparatorMode

	// Trailing selects trailing separator handling.
	Trailing TrailingSeparatorMode

	// TargetOS governs which root grammar is legal.
	TargetOS OperatingSystem
}

// DefaultOptions returns the default policy: trim and drop empty segments,
// require at least one survivor, guard against rooted later segments, resolve
// dot segments and compose Unicode, and leave separators as written for the
// native operating system.
func DefaultOptions() Options {
	return Options{
		TrimSegments:               true,
		RequireAtLeastOneSegment:   true,
		ValidateSubsequentRelative: true,
		NormalizeUnicode:           true,
		NormalizeStructure:         true,
		Separators:                 SeparatorsPreserve,
		Trailing:                   TrailingPreserve,
		TargetOS:                   NativeOS(),
	}
}

// NativeOptions returns [DefaultOptions] with separators rewritten to the host
// separator.
func NativeOptions() Options {
	o := DefaultOptions()
	o.Separators = SeparatorsNative

	return o
}

// UnixOptions returns [DefaultOptions] targeting Linux with `/` separators.
func UnixOptions() Options {
	o := DefaultOptions()
	o.Separators = SeparatorsUnix
	o.TargetOS = Linux

	return o
}

// WindowsOptions returns [DefaultOptions] targeting Windows with `\`
// separators.
func WindowsOptions() Options {
	o := DefaultOptions()
	o.Separators = SeparatorsWindows
	o.TargetOS = Windows

	return o
}

// MinimalOptions returns a policy that joins segments verbatim: no validation
// beyond dropping empty segments, and no normalization.
func MinimalOptions() Options {
	return Options{
		Separators: SeparatorsPreserve,
		Trailing:   TrailingPreserve,
		TargetOS:   NativeOS(),
	}
}

// WithErrorOnEmptySegments returns a copy of o with the empty segment policy
// set to v.
func (o Options) WithErrorOnEmptySegments(v bool) Options {
	o.ErrorOnEmptySegments = v

	return o
}

// WithTrimSegments returns a copy of o with segment trimming set to v.
func (o Options) WithTrimSegments(v bool) Options {
	o.TrimSegments = v

	return o
}

// WithRequireAtLeastOneSegment returns a copy of o with the any-segment
// requirement set to v.
func (o Options) WithRequireAtLeastOneSegment(v bool) Options {
	o.RequireAtLeastOneSegment = v

	return o
}

// WithRequireAbsoluteFirstSegment returns a copy of o with the absolute-first
// requirement set to v.
func (o Options) WithRequireAbsoluteFirstSegment(v bool) Options {
	o.RequireAbsoluteFirstSegment = v

	return o
}

// WithValidateSubsequentRelative returns a copy of o with the injection guard
// set to v.
func (o Options) WithValidateSubsequentRelative(v bool) Options {
	o.ValidateSubsequentRelative = v

	return o
}

// WithNormalizeUnicode returns a copy of o with Unicode composition set to v.
func (o Options) WithNormalizeUnicode(v bool) Options {
	o.NormalizeUnicode = v

	return o
}

// WithNormalizeStructure returns a copy of o with dot-segment resolution set
// to v.
func (o Options) WithNormalizeStructure(v bool) Options {
	o.NormalizeStructure = v

	return o
}

// WithSeparators returns a copy of o with the separator mode set to m.
func (o Options) WithSeparators(m SeparatorMode) Options {
	o.Separators = m

	return o
}

// WithTrailing returns a copy of o with the trailing separator mode set to m.
func (o Options) WithTrailing(m TrailingSeparatorMode) Options {
	o.Trailing = m

	return o
}

// WithTargetOS returns a copy of o with the target operating system set to t.
func (o Options) WithTargetOS(t OperatingSystem) Options {
	o.TargetOS = t

	return o
}
