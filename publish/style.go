package publish

import (
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"go.jacobcolvin.com/loghorn/level"
	"go.jacobcolvin.com/loghorn/record"
)

// TimestampLayout renders timestamps as ISO-8601 in UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const ansiReset = "\x1b[0m"

var emojis = map[level.Level]string{
	level.Trace: "🤿",
	level.Debug: "🐞",
	level.Info:  "✔",
	level.Log:   "📝",
	level.Warn:  "🙄",
	level.Error: "😱",
}

var ansiColors = map[level.Level]string{
	level.Trace: "\x1b[31m",
	level.Debug: "\x1b[34m",
	level.Info:  "\x1b[32m",
	level.Log:   "\x1b[0m",
	level.Warn:  "\x1b[35m",
	level.Error: "\x1b[31m",
}

var labelColors = map[level.Level]string{
	level.Trace: "#e42c64",
	level.Debug: "#00BFFE",
	level.Info:  "#1ee3cf",
	level.Warn:  "#FF6419",
	level.Error: "#F1062D",
	level.Log:   "#000000",
}

var browserStyles = strings.Join([]string{
	"font-size: 1.1em",
	"font-weight: 600",
	"padding: 3px 6px",
}, ";")

// Emoji returns the icon shown for lvl.
func Emoji(lvl level.Level) string {
	return emojis[lvl]
}

// LabelColor returns the CSS colour used for lvl in the browser.
func LabelColor(lvl level.Level) string {
	if c, ok := labelColors[lvl]; ok {
		return c
	}

	return "#000000"
}

// BrowserStyle returns the CSS applied to the headline in the browser.
func BrowserStyle(lvl level.Level) string {
	return fmt.Sprintf("color: %s; %s", LabelColor(lvl), browserStyles)
}

// Headline renders the level, application, environment and timestamp of r,
// e.g. "Info [shop] [production] at 2024-01-02T03:04:05.000Z".
func Headline(r *record.Record) string {
	var sb strings.Builder

	sb.WriteString(r.Level.String())

	if r.Application != "" {
		sb.WriteString(" [")
		sb.WriteString(r.Application)
		sb.WriteByte(']')
	}

	sb.WriteString(" [")
	sb.WriteString(r.Env)
	sb.WriteString("] at ")
	sb.WriteString(FormatTimestamp(r.Timestamp))

	return sb.String()
}

// FormatTimestamp renders ts with [TimestampLayout].
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(TimestampLayout)
}

// FormatArg renders one payload element for text output. Strings and errors
// are printed as-is, cyclic values as "[Circular]" and everything else as
// JSON, falling back to %v when encoding fails.
func FormatArg(v any) string {
	switch vv := v.(type) {
	case string:
		return vv
	case error:
		return vv.Error()
	case fmt.Stringer:
		return vv.String()
	}

	if record.CheckAcyclic(v) != nil {
		return "[Circular]"
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(b)
}
