package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MacroPower/pathnorm/pkg/config"
	"github.com/MacroPower/pathnorm/pkg/pathnorm"
)

// addOptionFlags registers the normalization policy flags shared by the
// normalize and combine subcommands.
func addOptionFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.String("preset", "default", "Options preset (default, native, unix, windows, minimal)")
	flags.String("profile", "", "Path to a YAML profile overriding the preset")
	flags.String("os", "", "Target operating system (windows, linux, macos, native)")
	flags.String("separators", "", "Separator mode (preserve, unix, windows, native)")
	flags.String("trailing", "", "Trailing separator mode (preserve, remove, ensure)")
	flags.Bool("structure", true, "Resolve . and .. segments")
	flags.Bool("unicode", true, "Compose Unicode to NFC")
}

// resolveOptions builds a [pathnorm.Options] from the profile or preset, with
// explicitly set flags applied on top.
func resolveOptions(cmd *cobra.Command) (pathnorm.Options, error) {
	flags := cmd.Flags()

	profilePath, err := flags.GetString("profile")
	if err != nil {
		return pathnorm.Options{}, fmt.Errorf("invalid argument: %w", err)
	}

	var opts pathnorm.Options

	if profilePath != "" {
		p, err := config.LoadProfile(profilePath)
		if err != nil {
			return pathnorm.Options{}, fmt.Errorf("load profile: %w", err)
		}

		opts, err = p.Options()
		if err != nil {
			return pathnorm.Options{}, fmt.Errorf("load profile: %w", err)
		}
	} else {
		preset, err := flags.GetString("preset")
		if err != nil {
			return pathnorm.Options{}, fmt.Errorf("invalid argument: %w", err)
		}

		opts, err = config.PresetOptions(preset)
		if err != nil {
			return pathnorm.Options{}, err
		}
	}

	if flags.Changed("os") {
		name, _ := flags.GetString("os")

		target, err := pathnorm.ParseOperatingSystem(name)
		if err != nil {
			return pathnorm.Options{}, err
		}

		opts = opts.WithTargetOS(target)
	}

	if flags.Changed("separators") {
		name, _ := flags.GetString("separators")

		mode, err := pathnorm.ParseSeparatorMode(name)
		if err != nil {
			return pathnorm.Options{}, err
		}

		opts = opts.WithSeparators(mode)
	}

	if flags.Changed("trailing") {
		name, _ := flags.GetString("trailing")

		mode, err := pathnorm.ParseTrailingSeparatorMode(name)
		if err != nil {
			return pathnorm.Options{}, err
		}

		opts = opts.WithTrailing(mode)
	}

	if flags.Changed("structure") {
		v, _ := flags.GetBool("structure")
		opts = opts.WithNormalizeStructure(v)
	}

	if flags.Changed("unicode") {
		v, _ := flags.GetBool("unicode")
		opts = opts.WithNormalizeUnicode(v)
	}

	slog.Debug("resolved options",
		"targetOS", opts.TargetOS.String(),
		"separators", opts.Separators.String(),
		"trailing", opts.Trailing.String(),
	)

	return opts, nil
}
