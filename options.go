package loghorn

import (
	"log/slog"
	"net/http"
	"time"

	"go.jacobcolvin.com/loghorn/host"
	"go.jacobcolvin.com/loghorn/publish"
)

type options struct {
	host       host.Host
	diag       *slog.Logger
	now        func() time.Time
	streams    publish.Streams
	color      *bool
	console    publish.JSConsole
	httpClient *http.Client
	extra      []publish.Publisher
}

// Option configures a [Dispatcher].
type Option func(*options)

// WithHost overrides execution-context detection.
func WithHost(h host.Host) Option {
	return func(o *options) {
		if h != nil {
			o.host = h
		}
	}
}

// WithDiagnostics sets the logger receiving internal failure reports. The
// default writes text to stderr at warn level.
func WithDiagnostics(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.diag = l
		}
	}
}

// WithClock sets the time source for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithStreams sets the terminal writers per level.
func WithStreams(s publish.Streams) Option {
	return func(o *options) {
		o.streams = s
	}
}

// WithColor forces terminal colouring on or off.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = &enabled
	}
}

// WithBrowserConsole sets the console used by the browser publisher.
func WithBrowserConsole(c publish.JSConsole) Option {
	return func(o *options) {
		o.console = c
	}
}

// WithHTTPClient sets the client used by the remote collector publisher.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithPublisher adds a publisher that receives every enabled record after
// the built-in destinations.
func WithPublisher(p publish.Publisher) Option {
	return func(o *options) {
		if p != nil {
			o.extra = append(o.extra, p)
		}
	}
}

type callOptions struct {
	err        error
	tags       []string
	middleware bool
}

// CallOption configures a single log call.
type CallOption func(*callOptions)

// Middleware marks the call as coming from request middleware. Such calls
// are dropped unless middleware logging is enabled.
func Middleware() CallOption {
	return func(c *callOptions) {
		c.middleware = true
	}
}

// WithTags attaches free-form tags to the record.
func WithTags(tags ...string) CallOption {
	return func(c *callOptions) {
		c.tags = append(c.tags, tags...)
	}
}

// WithError attaches err as the record's exception.
func WithError(err error) CallOption {
	return func(c *callOptions) {
		c.err = err
	}
}
