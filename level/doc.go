// Package level defines the severity levels understood by loghorn and the rule
// deciding whether a message at one level passes a configured threshold.
//
// Levels carry power-of-two weights, from [Error] (1) to [Trace] (32). A
// message is enabled when its weight is less than or equal to the threshold's
// weight, so a threshold of [Info] admits [Error], [Warn] and [Info]:
//
//	level.Enabled(level.Debug, level.Info) // false
//	level.Enabled(level.Error, level.Info) // true
//
// Threshold names are parsed with [ParseLevel], which never fails and falls
// back to [Info]. Use [Memoize] to resolve a threshold from a changing source
// exactly once.
package level
