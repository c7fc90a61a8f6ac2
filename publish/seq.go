package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	json "github.com/goccy/go-json"

	"go.jacobcolvin.com/loghorn/record"
)

// APIKeyHeader carries the collector credential.
const APIKeyHeader = "X-Seq-ApiKey"

// ErrRemoteStatus indicates the collector answered with a non-2xx status.
var ErrRemoteStatus = errors.New("unexpected collector status")

// Seq posts each record to a Seq-compatible collector as
// {"events": [<event>]}.
//
// [Seq.Publish] encodes synchronously and sends in the background: transport
// failures are reported to the configured [*slog.Logger] and never returned.
// There is no retry, batching or timeout beyond the HTTP client's own.
//
// Create instances with [NewSeq].
type Seq struct {
	client *http.Client
	log    *slog.Logger
	url    string
	apiKey string
	wg     sync.WaitGroup
}

// SeqOption configures a [Seq].
type SeqOption func(*Seq)

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(c *http.Client) SeqOption {
	return func(s *Seq) {
		if c != nil {
			s.client = c
		}
	}
}

// WithAPIKey sends key in the [APIKeyHeader] header.
func WithAPIKey(key string) SeqOption {
	return func(s *Seq) {
		s.apiKey = key
	}
}

// WithLogger sets the logger that receives delivery failures.
func WithLogger(l *slog.Logger) SeqOption {
	return func(s *Seq) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSeq creates a [Seq] posting to url.
func NewSeq(url string, opts ...SeqOption) *Seq {
	s := &Seq{
		client: http.DefaultClient,
		log:    slog.Default(),
		url:    url,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Encode returns the request body for r.
func Encode(r *record.Record) ([]byte, error) {
	ev, err := r.Wire()
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(record.Envelope{Events: []record.Event{ev}})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", record.ErrEncode, err)
	}

	return b, nil
}

// Publish implements [Publisher]. Only encoding errors are returned; the
// request itself runs after Publish returns and is detached from ctx's
// cancellation.
func (s *Seq) Publish(ctx context.Context, r *record.Record) error {
	body, err := Encode(r)
	if err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)
	id := r.EventID

	s.wg.Go(func() {
		err := s.send(ctx, body)
		if err != nil {
			s.log.ErrorContext(ctx, "seq: an error occurred",
				slog.String("event_id", id),
				slog.Any("error", err),
			)
		}
	})

	return nil
}

// Wait blocks until every request started by [Seq.Publish] has finished.
// Call it only after the last Publish has returned.
func (s *Seq) Wait() {
	s.wg.Wait()
}

func (s *Seq) send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if s.apiKey != "" {
		req.Header.Set(APIKeyHeader, s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post event: %w", err)
	}

	defer func() {
		//nolint:errcheck // Body is drained and discarded.
		io.Copy(io.Discard, resp.Body)
		//nolint:errcheck // Nothing to report on close.
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", ErrRemoteStatus, resp.Status)
	}

	return nil
}
