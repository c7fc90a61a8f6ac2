package level

import (
	"strings"
	"sync"
)

// Level is a message severity. Smaller weights are more severe.
type Level int

const (
	// Error reports a failure affecting functionality.
	Error Level = 1 << iota
	// Warn reports an unexpected but tolerated condition.
	Warn
	// Info reports normal operational events.
	Info
	// Log is plain application output.
	Log
	// Debug is verbose diagnostic output.
	Debug
	// Trace is the noisiest level.
	Trace
)

// Default is the threshold used when none is configured.
const Default = Info

var names = map[Level]string{
	Error: "Error",
	Warn:  "Warn",
	Info:  "Info",
	Log:   "Log",
	Debug: "Debug",
	Trace: "Trace",
}

// All returns every level, most severe first.
func All() []Level {
	return []Level{Error, Warn, Info, Log, Debug, Trace}
}

// GetAllLevelStrings returns the lowercase names accepted by [ParseLevel].
func GetAllLevelStrings() []string {
	all := All()

	out := make([]string, 0, len(all))
	for _, l := range all {
		out = append(out, strings.ToLower(l.String()))
	}

	return out
}

// String returns the display name of the level, e.g. "Info".
func (l Level) String() string {
	if n, ok := names[l]; ok {
		return n
	}

	return "Unknown"
}

// Weight returns the numeric weight of the level.
func (l Level) Weight() int {
	return int(l)
}

// Valid reports whether l is one of the six defined levels.
func (l Level) Valid() bool {
	_, ok := names[l]

	return ok
}

// Enabled reports whether a message at level msg passes the threshold.
func Enabled(msg, threshold Level) bool {
	return msg <= threshold
}

// Lookup maps a case-insensitive level name to its [Level]. The boolean is
// false when the name is not recognised.
func Lookup(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return Error, true
	case "warn":
		return Warn, true
	case "info":
		return Info, true
	case "log":
		return Log, true
	case "debug":
		return Debug, true
	case "trace":
		return Trace, true
	}

	return Default, false
}

// ParseLevel maps a case-insensitive level name to its [Level]. Empty or
// unrecognised names resolve to [Default].
func ParseLevel(name string) Level {
	l, _ := Lookup(name)

	return l
}

// Memoize returns a function that parses the value produced by source on its
// first call and returns the same [Level] on every later call, even if source
// would now produce something else. Concurrent first calls are safe; source
// runs at most once.
func Memoize(source func() string) func() Level {
	return sync.OnceValue(func() Level {
		if source == nil {
			return Default
		}

		return ParseLevel(source())
	})
}
