package loghorn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"

	"go.jacobcolvin.com/loghorn/diag"
	"go.jacobcolvin.com/loghorn/host"
	"go.jacobcolvin.com/loghorn/level"
	"go.jacobcolvin.com/loghorn/publish"
	"go.jacobcolvin.com/loghorn/record"
)

// ErrPublisherPanic indicates a publisher panicked while handling a record.
var ErrPublisherPanic = errors.New("publisher panicked")

// Dispatcher decides whether a call is logged, builds its [record.Record] and
// hands it to every configured publisher in order. A failing publisher does
// not stop the others.
//
// Create instances with [Config.NewDispatcher].
type Dispatcher struct {
	host       host.Host
	threshold  func() level.Level
	now        func() time.Time
	diag       *slog.Logger
	app        string
	appVersion string
	env        string
	template   string
	cookieKey  string
	publishers []publish.Publisher
	enabled    bool
	middleware bool
}

func newDispatcher(c *Config, opts ...Option) *Dispatcher {
	o := options{
		host:    host.Detect(),
		now:     time.Now,
		console: publish.DefaultJSConsole(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.diag == nil {
		o.diag = diag.Default(os.Stderr)
	}

	d := &Dispatcher{
		host:       o.host,
		threshold:  level.Memoize(func() string { return c.Level }),
		now:        o.now,
		diag:       o.diag,
		app:        c.AppName,
		appVersion: c.AppVersion,
		env:        c.Env,
		template:   c.MessageTemplate,
		cookieKey:  c.CookieKey,
		enabled:    c.Enabled,
		middleware: c.Middleware,
	}

	for _, dest := range publish.ParseDestinations(c.WriteTo) {
		switch dest {
		case publish.DestinationConsole:
			if o.host.Browser() {
				continue
			}

			var topts []publish.TerminalOption
			if o.streams != nil {
				topts = append(topts, publish.WithStreams(o.streams))
			}

			if o.color != nil {
				topts = append(topts, publish.WithColor(*o.color))
			}

			d.publishers = append(d.publishers, publish.NewTerminal(topts...))

		case publish.DestinationBrowser:
			if !o.host.Browser() {
				continue
			}

			d.publishers = append(d.publishers, publish.NewBrowser(o.console))

		case publish.DestinationFile:
			d.publishers = append(d.publishers, publish.File{})
		}
	}

	if c.Seq {
		d.publishers = append(d.publishers, publish.NewSeq(c.SeqURL,
			publish.WithAPIKey(c.SeqAPIKey),
			publish.WithHTTPClient(o.httpClient),
			publish.WithLogger(o.diag),
		))
	}

	d.publishers = append(d.publishers, o.extra...)

	return d
}

// Publishers returns the publishers records are sent to, in order.
func (d *Dispatcher) Publishers() []publish.Publisher {
	if d == nil {
		return nil
	}

	return append([]publish.Publisher(nil), d.publishers...)
}

// Enabled reports whether a call at lvl would be dispatched. Logging must be
// enabled, middleware calls additionally need middleware logging, and lvl
// must pass the threshold. A nil Dispatcher is never enabled.
func (d *Dispatcher) Enabled(lvl level.Level, middleware bool) bool {
	if d == nil || !d.enabled || (middleware && !d.middleware) || !lvl.Valid() {
		return false
	}

	return level.Enabled(lvl, d.threshold())
}

// Dispatch logs payload at lvl under label. The payload is normalized with
// [record.ToSlice]. Dispatch never panics; publisher failures and panics are
// reported to the diagnostics logger. Calls on a nil Dispatcher do nothing.
func (d *Dispatcher) Dispatch(ctx context.Context, lvl level.Level, label string, payload any, opts ...CallOption) {
	if d == nil {
		return
	}

	defer func() {
		if p := recover(); p != nil {
			d.diagnostics().ErrorContext(ctx, "loghorn: dispatch failed", slog.Any("error", p))
		}
	}()

	var call callOptions
	for _, opt := range opts {
		opt(&call)
	}

	if !d.Enabled(lvl, call.middleware) {
		return
	}

	r := record.New(record.ToSlice(payload),
		record.WithTimestamp(d.now()),
		record.WithLevel(lvl),
		record.WithLabel(label),
		record.WithLogUUID(host.CorrelationID(d.host, d.cookieKey)),
		record.WithException(call.err),
		record.WithTemplate(d.template),
		record.WithTags(call.tags...),
		record.WithApplication(d.app, d.appVersion, d.env),
	)

	var merr *multierror.Error

	for _, p := range d.publishers {
		err := publishSafe(ctx, p, r)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		d.diagnostics().ErrorContext(ctx, "loghorn: publish failed",
			slog.String("event_id", r.EventID),
			slog.Any("error", err),
		)
	}
}

// Wait blocks until background deliveries started by earlier calls finish.
// It is a shutdown hook: call it only after the last [Dispatcher.Dispatch]
// has returned, never concurrently with one.
func (d *Dispatcher) Wait() {
	if d == nil {
		return
	}

	for _, p := range d.publishers {
		if w, ok := p.(interface{ Wait() }); ok {
			w.Wait()
		}
	}
}

func (d *Dispatcher) diagnostics() *slog.Logger {
	if d.diag == nil {
		return slog.Default()
	}

	return d.diag
}

func publishSafe(ctx context.Context, p publish.Publisher, r *record.Record) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%w: %v", ErrPublisherPanic, v)
		}
	}()

	return p.Publish(ctx, r)
}
