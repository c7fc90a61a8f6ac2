package diag

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "charm.land/log/v2"
)

// Level is the minimum severity of reported diagnostics.
type Level string

const (
	// LevelError reports only errors.
	LevelError Level = "error"
	// LevelWarn reports warnings and errors.
	LevelWarn Level = "warn"
	// LevelInfo reports informational messages and above.
	LevelInfo Level = "info"
	// LevelDebug reports everything.
	LevelDebug Level = "debug"
)

// Format is the diagnostics output format.
type Format string

const (
	// FormatJSON outputs one JSON object per line.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logfmt key=value pairs.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs human-readable, styled lines.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// GetAllLevelStrings returns every accepted level name.
func GetAllLevelStrings() []string {
	return []string{string(LevelError), string(LevelWarn), string(LevelInfo), string(LevelDebug)}
}

// GetAllFormatStrings returns every accepted format name.
func GetAllFormatStrings() []string {
	return []string{string(FormatJSON), string(FormatLogfmt), string(FormatText)}
}

// ParseLevel parses a case-insensitive level name. "warning" is accepted as
// an alias of "warn".
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return "", ErrUnknownLogLevel
}

// ParseFormat parses a case-insensitive format name.
func ParseFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(format)); f {
	case FormatJSON, FormatLogfmt, FormatText:
		return f, nil
	}

	return "", ErrUnknownLogFormat
}

// Slog returns the [slog.Level] for l. Unknown values map to
// [slog.LevelInfo].
func (l Level) Slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// NewHandlerFromStrings parses level and format and calls [NewHandler].
func NewHandlerFromStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	f, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, f), nil
}

// NewHandler creates a [slog.Handler] writing to w. Unknown formats fall back
// to [FormatText].
func NewHandler(w io.Writer, level Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level.Slog(),
	}

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts)
	case FormatLogfmt:
		return slog.NewTextHandler(w, opts)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level.Slog()),
		ReportTimestamp: true,
		Prefix:          "loghorn",
	})
}

// Default returns a logger writing text diagnostics at [LevelWarn] to w.
func Default(w io.Writer) *slog.Logger {
	return slog.New(NewHandler(w, LevelWarn, FormatText))
}
