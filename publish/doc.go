// Package publish contains the sinks a log [record.Record] can be delivered
// to.
//
// Every sink implements [Publisher]. The package provides:
//
//   - [Terminal], which writes a colourised line to a per-level stream.
//   - [Browser], which calls the browser console with CSS styling. On js/wasm
//     builds [DefaultJSConsole] binds it to the page's console object.
//   - [Seq], which POSTs the event to a remote structured-log collector
//     without blocking the caller.
//   - [File], an accepted destination that currently discards records.
//
// Which sinks run is decided by the caller; [ParseDestinations] turns a
// configuration value such as "console,browser" into [Destination] kinds.
package publish
