// Package host reports the execution context a logger runs in and reads the
// correlation cookie when that context is a browser.
//
// Native builds always run outside a browser. Builds for js/wasm check for
// the global window and document objects and read document.cookie.
package host

import "strings"

// Host describes the current execution context.
type Host interface {
	// Browser reports whether code runs inside a browser page.
	Browser() bool
	// Cookies returns the raw cookie string, e.g. "a=1; b=2".
	Cookies() string
}

// Static is a [Host] with fixed answers.
type Static struct {
	Cookie    string
	IsBrowser bool
}

// Server is the [Host] of any process outside a browser.
var Server Host = Static{}

// Browser implements [Host].
func (s Static) Browser() bool { return s.IsBrowser }

// Cookies implements [Host].
func (s Static) Cookies() string { return s.Cookie }

// Detect returns the [Host] for the running process.
func Detect() Host {
	return detect()
}

// CorrelationID returns the value of the named cookie when h is a browser,
// and an empty string otherwise.
func CorrelationID(h Host, name string) string {
	if h == nil || !h.Browser() {
		return ""
	}

	return CookieValue(h.Cookies(), name)
}

// CookieValue returns the value of the named cookie in a "k=v; k2=v2" string.
// Missing cookies yield an empty string.
func CookieValue(cookies, name string) string {
	if name == "" {
		return ""
	}

	for pair := range strings.SplitSeq(cookies, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if ok && k == name {
			return v
		}
	}

	return ""
}
