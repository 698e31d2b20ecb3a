package pathnorm

// Normalize runs the normalization pipeline over path in a fixed order:
// Unicode composition, structural resolution, separator rewriting, and
// trailing separator handling, each gated by its option.
func Normalize(path string, opts Options) (string, error) {
	out := path

	if opts.NormalizeUnicode {
		var err error

		out, err = NormalizeUnicode(out)
		if err != nil {
			return "", err
		}
	}

	if opts.NormalizeStructure {
		var err error

		out, err = NormalizeStructure(out, opts.TargetOS)
		if err != nil {
			return "", err
		}
	}

	out, err := NormalizeSeparators(out, opts.Separators)
	if err != nil {
		return "", err
	}

	out, err = HandleTrailingSeparator(out, opts.Trailing)
	if err != nil {
		return "", err
	}

	return out, nil
}
