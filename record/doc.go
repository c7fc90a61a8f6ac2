// Package record builds the in-memory representation of a single log event
// and projects it into the flat envelope sent to a remote collector.
//
// A [Record] is created with [New] for every dispatched call and is not
// modified afterwards. [Record.Wire] returns the collector form, whose
// Properties.Data field holds the payload encoded to JSON on its own:
//
//	r := record.New([]any{"hello"}, record.WithLabel("greeting"))
//	ev, err := r.Wire()
//	// ev.Properties.Data == `["hello"]`
//
// Payloads containing reference cycles cannot be encoded. [CheckAcyclic]
// detects them up front and [Record.Wire] fails with [ErrCyclicPayload]
// rather than recursing forever.
package record
