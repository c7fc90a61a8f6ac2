package loghorn

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"

	"go.jacobcolvin.com/loghorn/level"
	"go.jacobcolvin.com/loghorn/record"
)

// Logger exposes one method per level, each delegating to a [Dispatcher].
// A nil or zero Logger discards every call.
//
// Create instances with [NewLogger] or [Config.NewLogger].
type Logger struct {
	d *Dispatcher
}

// NewLogger creates a [Logger] for d.
func NewLogger(d *Dispatcher) *Logger {
	return &Logger{d: d}
}

// Dispatcher returns the underlying [Dispatcher], which is nil for a zero
// Logger.
func (l *Logger) Dispatcher() *Dispatcher {
	if l == nil {
		return nil
	}

	return l.d
}

func (l *Logger) write(lvl level.Level, label string, payload any, opts []CallOption) {
	if l == nil || l.d == nil {
		return
	}

	l.d.Dispatch(context.Background(), lvl, label, record.ToSlice(payload), opts...)
}

// Log logs at [level.Log].
func (l *Logger) Log(label string, payload any, opts ...CallOption) {
	l.write(level.Log, label, payload, opts)
}

// Info logs at [level.Info].
func (l *Logger) Info(label string, payload any, opts ...CallOption) {
	l.write(level.Info, label, payload, opts)
}

// Debug logs at [level.Debug].
func (l *Logger) Debug(label string, payload any, opts ...CallOption) {
	l.write(level.Debug, label, payload, opts)
}

// Error logs at [level.Error].
func (l *Logger) Error(label string, payload any, opts ...CallOption) {
	l.write(level.Error, label, payload, opts)
}

// Warn logs at [level.Warn].
func (l *Logger) Warn(label string, payload any, opts ...CallOption) {
	l.write(level.Warn, label, payload, opts)
}

// Trace logs at [level.Trace].
func (l *Logger) Trace(label string, payload any, opts ...CallOption) {
	l.write(level.Trace, label, payload, opts)
}

var (
	defaultLogger atomic.Pointer[Logger]
	defaultOnce   sync.Once
)

// Default returns the process-wide [Logger]. Unless [SetDefault] was called
// first, it is built on first use from environment variables and kept for
// the life of the process.
func Default() *Logger {
	defaultOnce.Do(func() {
		if defaultLogger.Load() != nil {
			return
		}

		cfg := NewConfig()

		//nolint:errcheck // Binding fixed, non-empty keys cannot fail.
		cfg.Load(viper.New(), nil)

		defaultLogger.CompareAndSwap(nil, cfg.NewLogger())
	})

	return defaultLogger.Load()
}

// SetDefault replaces the process-wide [Logger] used by the package-level
// functions. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// Log logs at [level.Log] with the [Default] logger.
func Log(label string, payload any, opts ...CallOption) {
	Default().Log(label, payload, opts...)
}

// Info logs at [level.Info] with the [Default] logger.
func Info(label string, payload any, opts ...CallOption) {
	Default().Info(label, payload, opts...)
}

// Debug logs at [level.Debug] with the [Default] logger.
func Debug(label string, payload any, opts ...CallOption) {
	Default().Debug(label, payload, opts...)
}

// Error logs at [level.Error] with the [Default] logger.
func Error(label string, payload any, opts ...CallOption) {
	Default().Error(label, payload, opts...)
}

// Warn logs at [level.Warn] with the [Default] logger.
func Warn(label string, payload any, opts ...CallOption) {
	Default().Warn(label, payload, opts...)
}

// Trace logs at [level.Trace] with the [Default] logger.
func Trace(label string, payload any, opts ...CallOption) {
	Default().Trace(label, payload, opts...)
}
