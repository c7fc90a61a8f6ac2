// Package loghorn is an environment-aware logging façade that formats log
// calls and routes them to the terminal, the browser console and a remote
// Seq-compatible collector.
//
// Each call carries a level, a label and an arbitrary payload:
//
//	loghorn.Info("checkout", map[string]any{"order": 42})
//	loghorn.Error("payment", err, loghorn.WithError(err), loghorn.WithTags("billing"))
//
// The package-level functions use [Default], which is configured once from
// environment variables (ENABLE_LOGS, LOG_LEVEL, WRITE_LOGS_TO, ... and their
// NEXT_PUBLIC_ aliases). Applications wanting explicit setup build a [Config],
// optionally bind it to CLI flags, and create a [Logger]:
//
//	cfg := loghorn.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	err := cfg.Load(viper.New(), rootCmd.PersistentFlags())
//	logger := cfg.NewLogger()
//	loghorn.SetDefault(logger)
//
// A call is dropped unless logging is enabled, the call passes the middleware
// gate and its level passes the configured threshold (see
// [go.jacobcolvin.com/loghorn/level]). Logging never panics or returns errors
// to the caller: failures are reported on a separate diagnostics logger (see
// [go.jacobcolvin.com/loghorn/diag]). Remote delivery runs in the background;
// [Dispatcher.Wait] blocks until in-flight sends finish.
package loghorn
