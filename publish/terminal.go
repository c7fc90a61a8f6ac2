package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"golang.org/x/term"

	"go.jacobcolvin.com/loghorn/level"
	"go.jacobcolvin.com/loghorn/record"
)

// Streams maps each level to the writer its lines go to.
type Streams map[level.Level]io.Writer

// DefaultStreams routes Error, Warn and Trace to stderr and every other level
// to stdout.
func DefaultStreams(stdout, stderr io.Writer) Streams {
	return Streams{
		level.Error: stderr,
		level.Warn:  stderr,
		level.Info:  stdout,
		level.Log:   stdout,
		level.Debug: stdout,
		level.Trace: stderr,
	}
}

// Terminal writes one line per record to a level-dependent stream.
//
// Lines are formatted by [Terminal.Format]. Writes are serialized, so a
// Terminal is safe for concurrent use.
//
// Create instances with [NewTerminal].
type Terminal struct {
	streams  Streams
	mu       sync.Mutex
	color    bool
	colorSet bool
}

// TerminalOption configures a [Terminal].
type TerminalOption func(*Terminal)

// WithStreams replaces the default stdout/stderr routing.
func WithStreams(s Streams) TerminalOption {
	return func(t *Terminal) {
		t.streams = s
	}
}

// WithColor forces ANSI colouring on or off. Without it colouring is enabled
// only when the Log stream is a terminal.
func WithColor(enabled bool) TerminalOption {
	return func(t *Terminal) {
		t.color = enabled
		t.colorSet = true
	}
}

// NewTerminal creates a [Terminal] writing to os.Stdout and os.Stderr.
func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{
		streams: DefaultStreams(os.Stdout, os.Stderr),
	}
	for _, opt := range opts {
		opt(t)
	}

	if !t.colorSet {
		t.color = IsTerminal(t.streams[level.Log])
	}

	return t
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // Descriptors fit in int.
}

// Publish implements [Publisher]. Levels without a stream are dropped.
func (t *Terminal) Publish(_ context.Context, r *record.Record) error {
	w := t.streams[r.Level]
	if w == nil {
		return nil
	}

	line := t.Format(r)

	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := io.WriteString(w, line)
	if err != nil {
		return fmt.Errorf("write %s line: %w", r.Level, err)
	}

	return nil
}

// Format renders r as newline-terminated text: the emoji and headline
// (coloured when enabled), then the label on its own line, then the payload
// elements separated by spaces. Trace records are followed by the calling
// goroutine's stack.
func (t *Terminal) Format(r *record.Record) string {
	var sb strings.Builder

	if t.color {
		sb.WriteString(ansiColors[r.Level])
	}

	sb.WriteString(Emoji(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(Headline(r))

	if t.color {
		sb.WriteString(ansiReset)
	}

	if r.Label != "" {
		sb.WriteByte('\n')
		sb.WriteString(r.Label)
	}

	for _, d := range r.Data {
		sb.WriteByte(' ')
		sb.WriteString(FormatArg(d))
	}

	sb.WriteByte('\n')

	if r.Level == level.Trace {
		sb.Write(debug.Stack())
	}

	return sb.String()
}
