package record

import (
	"time"

	"github.com/google/uuid"

	"go.jacobcolvin.com/loghorn/level"
)

// DefaultTemplate is the message template used when none is configured.
// Placeholders are for display by the collector only.
const DefaultTemplate = "{@LogLevel} {@Application} {@Env} at {Timestamp}"

// Record is one log event.
//
// Create instances with [New].
type Record struct {
	Timestamp       time.Time
	Exception       error
	EventID         string
	Label           string
	MessageTemplate string
	LogUUID         string
	Application     string
	AppVersion      string
	Env             string
	Data            []any
	Tags            []string
	Level           level.Level
}

// Option configures a [Record] in [New].
type Option func(*Record)

// WithLabel sets the human-assigned label.
func WithLabel(label string) Option {
	return func(r *Record) {
		r.Label = label
	}
}

// WithLevel sets the severity. Invalid levels are ignored.
func WithLevel(lvl level.Level) Option {
	return func(r *Record) {
		if lvl.Valid() {
			r.Level = lvl
		}
	}
}

// WithLogUUID sets the correlation identifier.
func WithLogUUID(id string) Option {
	return func(r *Record) {
		r.LogUUID = id
	}
}

// WithException attaches an error value.
func WithException(err error) Option {
	return func(r *Record) {
		r.Exception = err
	}
}

// WithTemplate overrides the message template. An empty template keeps
// [DefaultTemplate].
func WithTemplate(tmpl string) Option {
	return func(r *Record) {
		if tmpl != "" {
			r.MessageTemplate = tmpl
		}
	}
}

// WithTags appends free-form tags.
func WithTags(tags ...string) Option {
	return func(r *Record) {
		r.Tags = append(r.Tags, tags...)
	}
}

// WithTimestamp overrides the creation time.
func WithTimestamp(ts time.Time) Option {
	return func(r *Record) {
		r.Timestamp = ts
	}
}

// WithApplication sets the application name, version and environment.
func WithApplication(name, version, env string) Option {
	return func(r *Record) {
		r.Application = name
		r.AppVersion = version
		r.Env = env
	}
}

// New creates a [Record] holding data. A fresh event identifier and the
// current time are assigned before options run; the level defaults to
// [level.Info] and the template to [DefaultTemplate].
func New(data []any, opts ...Option) *Record {
	r := &Record{
		EventID:         uuid.NewString(),
		Timestamp:       time.Now(),
		Level:           level.Info,
		MessageTemplate: DefaultTemplate,
		Data:            data,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}
