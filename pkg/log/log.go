// Package log builds slog handlers for the CLI surface.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
	AutoFormat   = "auto"
)

// ErrUnknownFormat indicates an unrecognized log format name.
var ErrUnknownFormat = errors.New("unknown log format")

// CreateHandler creates a [slog.Handler] by strings. The empty format and
// AutoFormat resolve to TextFormat when w is a terminal and JSONFormat
// otherwise.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level := GetLevel(logLevel)

	format := strings.ToLower(logFormat)
	if format == "" || format == AutoFormat {
		format = JSONFormat
		if isTerminal(w) {
			format = TextFormat
		}
	}

	switch format {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case TextFormat:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(level),
			ReportTimestamp: true,
		}), nil
	case LogfmtFormat:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(level),
			Formatter:       charmlog.LogfmtFormatter,
			ReportTimestamp: true,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, logFormat)
	}
}

// GetLevel parses a log level name, defaulting to info.
func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug", "trace":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
