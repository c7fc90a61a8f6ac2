package publish

import (
	"context"

	"go.jacobcolvin.com/loghorn/record"
)

// File is the publisher for [DestinationFile]. File output is not
// implemented yet; records are accepted and discarded.
type File struct{}

// Publish implements [Publisher].
func (File) Publish(context.Context, *record.Record) error {
	return nil
}
