package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MacroPower/pathnorm/pkg/pathnorm"
)

var (
	// ErrReadProfile indicates the profile file could not be read.
	ErrReadProfile = errors.New("read profile")

	// ErrParseProfile indicates the profile file is not valid YAML or contains
	// unknown keys.
	ErrParseProfile = errors.New("parse profile")

	// ErrUnknownPreset indicates an unrecognized preset name.
	ErrUnknownPreset = errors.New("unknown preset")
)

// Profile is a file-backed normalization policy: a named preset plus optional
// per-field overrides. Absent keys inherit the preset's value.
type Profile struct {
	TargetOS                    *string `yaml:"targetOS,omitempty"`
	Separators                  *string `yaml:"separators,omitempty"`
	TrailingSeparator           *string `yaml:"trailingSeparator,omitempty"`
	NormalizeUnicode            *bool   `yaml:"normalizeUnicode,omitempty"`
	NormalizeStructure          *bool   `yaml:"normalizeStructure,omitempty"`
	TrimSegments                *bool   `yaml:"trimSegments,omitempty"`
	ErrorOnEmptySegments        *bool   `yaml:"errorOnEmptySegments,omitempty"`
	RequireAtLeastOneSegment    *bool   `yaml:"requireAtLeastOneSegment,omitempty"`
	RequireAbsoluteFirstSegment *bool   `yaml:"requireAbsoluteFirstSegment,omitempty"`
	ValidateSubsequentRelative  *bool   `yaml:"validateSubsequentRelative,omitempty"`
	Preset                      string  `yaml:"preset,omitempty"`
}

// LoadProfile reads and parses a YAML profile. Unknown keys are rejected, so a
// typoed field fails loudly instead of silently inheriting the preset.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // The profile path is caller-provided configuration.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadProfile, err)
	}

	p := &Profile{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseProfile, path, err)
	}

	return p, nil
}

// PresetOptions returns the named options preset. An empty name resolves to
// the default preset.
func PresetOptions(name string) (pathnorm.Options, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return pathnorm.DefaultOptions(), nil
	case "native":
		return pathnorm.NativeOptions(), nil
	case "unix":
		return pathnorm.UnixOptions(), nil
	case "windows":
		return pathnorm.WindowsOptions(), nil
	case "minimal":
		return pathnorm.MinimalOptions(), nil
	default:
		return pathnorm.Options{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// Options resolves the profile into a [pathnorm.Options] value: the preset,
// with every present override applied on top.
func (p *Profile) Options() (pathnorm.Options, error) {
	opts, err := PresetOptions(p.Preset)
	if err != nil {
		return pathnorm.Options{}, err
	}

	if p.TargetOS != nil {
		target, err := pathnorm.ParseOperatingSystem(*p.TargetOS)
		if err != nil {
			return pathnorm.Options{}, fmt.Errorf("%w: %w", ErrParseProfile, err)
		}

		opts = opts.WithTargetOS(target)
	}

	if p.Separators != nil {
		mode, err := pathnorm.ParseSeparatorMode(*p.Separators)
		if err != nil {
			return pathnorm.Options{}, fmt.Errorf("%w: %w", ErrParseProfile, err)
		}

		opts = opts.WithSeparators(mode)
	}

	if p.TrailingSeparator != nil {
		mode, err := pathnorm.ParseTrailingSeparatorMode(*p.TrailingSeparator)
		if err != nil {
			return pathnorm.Options{}, fmt.Errorf("%w: %w", ErrParseProfile, err)
		}

		opts = opts.WithTrailing(mode)
	}

	if p.NormalizeUnicode != nil {
		opts = opts.WithNormalizeUnicode(*p.NormalizeUnicode)
	}

	if p.NormalizeStructure != nil {
		opts = opts.WithNormalizeStructure(*p.NormalizeStructure)
	}

	if p.TrimSegments != nil {
		opts = opts.WithTrimSegments(*p.TrimSegments)
	}

	if p.ErrorOnEmptySegments != nil {
		opts = opts.WithErrorOnEmptySegments(*p.ErrorOnEmptySegments)
	}

	if p.RequireAtLeastOneSegment != nil {
		opts = opts.WithRequireAtLeastOneSegment(*p.RequireAtLeastOneSegment)
	}

	if p.RequireAbsoluteFirstSegment != nil {
		opts = opts.WithRequireAbsoluteFirstSegment(*p.RequireAbsoluteFirstSegment)
	}

	if p.ValidateSubsequentRelative != nil {
		opts = opts.WithValidateSubsequentRelative(*p.ValidateSubsequentRelative)
	}

	return opts, nil
}
