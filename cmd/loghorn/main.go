// Package main provides the CLI entry point for loghorn, a tool that sends
// one log event through the configured destinations. It is useful for
// checking terminal output and collector connectivity from a shell.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.jacobcolvin.com/loghorn"
	"go.jacobcolvin.com/loghorn/diag"
	"go.jacobcolvin.com/loghorn/host"
	"go.jacobcolvin.com/loghorn/level"
	"go.jacobcolvin.com/loghorn/publish"
	"go.jacobcolvin.com/loghorn/record"
	"go.jacobcolvin.com/loghorn/version"
)

var (
	// ErrUnknownLevel indicates the level argument is not a level name.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrReadData indicates the data file could not be read or parsed.
	ErrReadData = errors.New("read data")
	// ErrWriteOutput indicates output could not be written.
	ErrWriteOutput = errors.New("write output")
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := loghorn.NewConfig()
	diagCfg := diag.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "loghorn",
		Short: "Send log events through loghorn destinations",
		Long: `loghorn sends log events to the terminal and, when enabled, to a remote
collector. Every setting can also be taken from the environment, e.g.
ENABLE_LOGS, LOG_LEVEL or NEXT_PUBLIC_SEQ_URL.`,
		Version:       version.Get().String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.Load(viper.New(), cmd.Flags())
		},
	}

	cfg.RegisterFlags(rootCmd.PersistentFlags())
	diagCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{
		cfg.RegisterCompletions,
		diagCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(newEmitCmd(cfg, diagCfg), newSchemaCmd())

	return rootCmd
}

type emitFlags struct {
	dataFile   string
	errMsg     string
	tags       []string
	middleware bool
}

func newEmitCmd(cfg *loghorn.Config, diagCfg *diag.Config) *cobra.Command {
	f := &emitFlags{}

	cmd := &cobra.Command{
		Use:   "emit <level> <label> [payload ...]",
		Short: "Log one event",
		Long: `emit logs one event at the given level. Each payload argument becomes one
payload element; --data-file appends a YAML or JSON document ("-" reads
stdin). Nothing is written unless logging is enabled.`,
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return level.GetAllLevelStrings(), cobra.ShellCompDirectiveNoFileComp
			}

			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, cfg, diagCfg, f, args)
		},
	}

	cmd.Flags().StringVar(&f.dataFile, "data-file", "", "YAML or JSON file appended to the payload")
	cmd.Flags().StringVar(&f.errMsg, "error", "", "exception message attached to the event")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "tag attached to the event (repeatable)")
	cmd.Flags().BoolVar(&f.middleware, "middleware", false, "mark the event as a middleware call")

	return cmd
}

func runEmit(cmd *cobra.Command, cfg *loghorn.Config, diagCfg *diag.Config, f *emitFlags, args []string) error {
	lvl, ok := level.Lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, args[0])
	}

	payload := make([]any, 0, len(args)-1)
	for _, arg := range args[2:] {
		payload = append(payload, arg)
	}

	if f.dataFile != "" {
		v, err := readData(cmd.InOrStdin(), f.dataFile)
		if err != nil {
			return err
		}

		payload = append(payload, v)
	}

	diagLog, err := diagCfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	d := cfg.NewDispatcher(
		loghorn.WithHost(host.Server),
		loghorn.WithStreams(publish.DefaultStreams(cmd.OutOrStdout(), cmd.ErrOrStderr())),
		loghorn.WithDiagnostics(diagLog),
	)

	opts := []loghorn.CallOption{loghorn.WithTags(f.tags...)}
	if f.errMsg != "" {
		opts = append(opts, loghorn.WithError(errors.New(f.errMsg)))
	}

	if f.middleware {
		opts = append(opts, loghorn.Middleware())
	}

	d.Dispatch(cmd.Context(), lvl, args[1], payload, opts...)
	d.Wait()

	return nil
}

func readData(stdin io.Reader, path string) (any, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadData, err)
	}

	var v any

	err = yaml.Unmarshal(data, &v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadData, path, err)
	}

	return v, nil
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the collector request body",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := jsonschema.For[record.Envelope](nil)
			if err != nil {
				return fmt.Errorf("infer schema: %w", err)
			}

			out, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return nil
		},
	}
}
