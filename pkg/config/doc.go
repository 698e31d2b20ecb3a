// Package config loads normalization profiles from YAML files.
//
// A profile names a preset and optionally overrides individual policy fields,
// letting callers keep normalization policy in configuration rather than code.
package config
