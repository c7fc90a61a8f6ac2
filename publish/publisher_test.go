package publish_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/loghorn/publish"
	"go.jacobcolvin.com/loghorn/record"
)

func TestParseDestinations(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []publish.Destination
	}{
		"single": {
			input: "console",
			want:  []publish.Destination{publish.DestinationConsole},
		},
		"comma list": {
			input: "console,browser",
			want:  []publish.Destination{publish.DestinationConsole, publish.DestinationBrowser},
		},
		"mixed separators and case": {
			input: " Browser; FILE  console ",
			want: []publish.Destination{
				publish.DestinationBrowser,
				publish.DestinationFile,
				publish.DestinationConsole,
			},
		},
		"duplicates and unknown dropped": {
			input: "console,seq,console",
			want:  []publish.Destination{publish.DestinationConsole},
		},
		"empty": {
			input: "",
			want:  nil,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, publish.ParseDestinations(tc.input))
		})
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()

	var got *record.Record

	p := publish.Func(func(_ context.Context, r *record.Record) error {
		got = r

		return nil
	})

	r := record.New(nil)
	require.NoError(t, p.Publish(t.Context(), r))
	assert.Same(t, r, got)
}

func TestFile(t *testing.T) {
	t.Parallel()

	require.NoError(t, publish.File{}.Publish(t.Context(), record.New([]any{"x"})))
}
