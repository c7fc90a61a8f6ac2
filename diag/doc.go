// Package diag builds the [log/slog] handler loghorn uses to report its own
// failures, such as an unreachable collector or a payload that cannot be
// encoded. These reports never reach the application's publishers.
//
// It supports the formats [FormatJSON], [FormatLogfmt] and [FormatText] (the
// last rendered by [charm.land/log/v2]) and the levels [LevelError],
// [LevelWarn], [LevelInfo] and [LevelDebug]. Use [NewHandler] directly, or
// [Config] for CLI flag integration via [github.com/spf13/pflag]:
//
//	cfg := diag.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	logger := slog.New(handler)
package diag
