package publish

import (
	"context"
	"slices"
	"strings"
	"unicode"

	"go.jacobcolvin.com/loghorn/record"
)

// Publisher delivers a record to one destination.
type Publisher interface {
	Publish(ctx context.Context, r *record.Record) error
}

// Func adapts a function to [Publisher].
type Func func(ctx context.Context, r *record.Record) error

// Publish implements [Publisher].
func (f Func) Publish(ctx context.Context, r *record.Record) error {
	return f(ctx, r)
}

// Destination is a kind of local output.
type Destination string

const (
	// DestinationConsole is the process terminal.
	DestinationConsole Destination = "console"
	// DestinationBrowser is the browser devtools console.
	DestinationBrowser Destination = "browser"
	// DestinationFile is reserved for file output.
	DestinationFile Destination = "file"
)

// GetAllDestinationStrings returns the destination names accepted by
// [ParseDestinations].
func GetAllDestinationStrings() []string {
	return []string{
		string(DestinationConsole),
		string(DestinationBrowser),
		string(DestinationFile),
	}
}

// ParseDestinations splits a list such as "console, browser" on commas,
// semicolons or whitespace. Names are case-insensitive; unknown names and
// duplicates are dropped and the first-seen order is kept.
func ParseDestinations(s string) []Destination {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})

	var out []Destination

	for _, f := range fields {
		d := Destination(strings.ToLower(f))
		if !slices.Contains(GetAllDestinationStrings(), string(d)) || slices.Contains(out, d) {
			continue
		}

		out = append(out, d)
	}

	return out
}
