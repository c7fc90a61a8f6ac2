package publish

import (
	"context"
	"errors"

	"go.jacobcolvin.com/loghorn/level"
	"go.jacobcolvin.com/loghorn/record"
)

// ErrNoConsole indicates a [Browser] without a console binding.
var ErrNoConsole = errors.New("no browser console")

// JSConsole calls a method of the browser's console object.
type JSConsole interface {
	Call(method string, args ...any)
}

var consoleMethods = map[level.Level]string{
	level.Error: "error",
	level.Warn:  "warn",
	level.Debug: "debug",
	level.Trace: "trace",
}

// ConsoleMethod returns the console method used for lvl; levels without a
// dedicated method use "log".
func ConsoleMethod(lvl level.Level) string {
	if m, ok := consoleMethods[lvl]; ok {
		return m
	}

	return "log"
}

// Browser sends records to the browser console using a "%c" styled headline
// instead of ANSI colours.
//
// Create instances with [NewBrowser].
type Browser struct {
	console JSConsole
}

// NewBrowser creates a [Browser] writing to console.
func NewBrowser(console JSConsole) *Browser {
	return &Browser{console: console}
}

// Args returns the console arguments for r: the styled headline, its CSS,
// the label on a new line (or "") and each payload element.
func (b *Browser) Args(r *record.Record) []any {
	label := ""
	if r.Label != "" {
		label = "\n" + r.Label
	}

	args := make([]any, 0, 3+len(r.Data))
	args = append(args,
		"%c"+Emoji(r.Level)+" "+Headline(r),
		BrowserStyle(r.Level),
		label,
	)

	return append(args, r.Data...)
}

// Publish implements [Publisher].
func (b *Browser) Publish(_ context.Context, r *record.Record) error {
	if b.console == nil {
		return ErrNoConsole
	}

	b.console.Call(ConsoleMethod(r.Level), b.Args(r)...)

	return nil
}
