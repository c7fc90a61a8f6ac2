package loghorn_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"go.jacobcolvin.com/loghorn"
	"go.jacobcolvin.com/loghorn/record"
)

type recorder struct {
	records []*record.Record
	mu      sync.Mutex
}

func (r *recorder) Publish(_ context.Context, rec *record.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)

	return nil
}

func (r *recorder) Records() []*record.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*record.Record(nil), r.records...)
}

// syncBuffer is a bytes.Buffer safe for use from background senders.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func enabledConfig() *loghorn.Config {
	cfg := loghorn.NewConfig()
	cfg.Enabled = true
	cfg.Level = "trace"
	cfg.WriteTo = ""

	return cfg
}

func diagLogger(w *syncBuffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil))
}

type consoleCall struct {
	method string
	args   []any
}

type fakeConsole struct {
	calls []consoleCall
	mu    sync.Mutex
}

func (c *fakeConsole) Call(method string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, consoleCall{method: method, args: args})
}

func (c *fakeConsole) Calls() []consoleCall {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]consoleCall(nil), c.calls...)
}
