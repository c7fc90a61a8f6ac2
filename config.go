package loghorn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go.jacobcolvin.com/loghorn/level"
	"go.jacobcolvin.com/loghorn/publish"
	"go.jacobcolvin.com/loghorn/record"
)

// Flags holds CLI flag names (which double as configuration keys), allowing
// callers to customize them while keeping sensible defaults via [NewConfig].
type Flags struct {
	Enabled         string
	Middleware      string
	Level           string
	AppName         string
	AppVersion      string
	Env             string
	MessageTemplate string
	WriteTo         string
	Seq             string
	SeqURL          string
	SeqAPIKey       string
	CookieKey       string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Level:           "info",
		Env:             "development",
		MessageTemplate: record.DefaultTemplate,
		WriteTo:         string(publish.DestinationConsole),
		CookieKey:       "logUuid",
		Flags:           f,
	}
}

// Config holds logger settings.
//
// Create instances with [NewConfig], then fill them from flags with
// [Config.RegisterFlags] and from the environment with [Config.Load]. Use
// [Config.NewDispatcher] or [Config.NewLogger] to build the pipeline.
type Config struct {
	Level           string
	AppName         string
	AppVersion      string
	Env             string
	MessageTemplate string
	// WriteTo lists local destinations, e.g. "console,browser".
	WriteTo   string
	SeqURL    string
	SeqAPIKey string
	// CookieKey names the cookie holding the correlation identifier.
	CookieKey  string
	Flags      Flags
	Enabled    bool
	Middleware bool
	Seq        bool
}

// NewConfig returns a [Config] with default flag names and values. Logging is
// disabled until Enabled is set.
func NewConfig() *Config {
	f := Flags{
		Enabled:         "enable-logs",
		Middleware:      "middleware-logs",
		Level:           "log-level",
		AppName:         "log-app-name",
		AppVersion:      "log-app-version",
		Env:             "log-env",
		MessageTemplate: "log-message-template",
		WriteTo:         "write-logs-to",
		Seq:             "write-logs-to-seq",
		SeqURL:          "seq-url",
		SeqAPIKey:       "seq-api-key",
		CookieKey:       "log-uuid-cookie-key",
	}

	return f.NewConfig()
}

// RegisterFlags adds logger flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.Enabled, c.Flags.Enabled, c.Enabled, "enable logging")
	flags.BoolVar(&c.Middleware, c.Flags.Middleware, c.Middleware, "enable logging of middleware calls")
	flags.StringVar(&c.Level, c.Flags.Level, c.Level,
		fmt.Sprintf("log level, one of: %s", level.GetAllLevelStrings()))
	flags.StringVar(&c.AppName, c.Flags.AppName, c.AppName, "application name shown in log lines")
	flags.StringVar(&c.AppVersion, c.Flags.AppVersion, c.AppVersion, "application version sent to the collector")
	flags.StringVar(&c.Env, c.Flags.Env, c.Env, "environment name shown in log lines")
	flags.StringVar(&c.MessageTemplate, c.Flags.MessageTemplate, c.MessageTemplate,
		"message template sent to the collector")
	flags.StringVar(&c.WriteTo, c.Flags.WriteTo, c.WriteTo,
		fmt.Sprintf("comma-separated destinations, any of: %s", publish.GetAllDestinationStrings()))
	flags.BoolVar(&c.Seq, c.Flags.Seq, c.Seq, "send events to the remote collector")
	flags.StringVar(&c.SeqURL, c.Flags.SeqURL, c.SeqURL, "remote collector URL")
	flags.StringVar(&c.SeqAPIKey, c.Flags.SeqAPIKey, c.SeqAPIKey, "remote collector API key")
	flags.StringVar(&c.CookieKey, c.Flags.CookieKey, c.CookieKey, "cookie holding the correlation id")
}

// RegisterCompletions registers shell completions for logger flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Level,
		cobra.FixedCompletions(level.GetAllLevelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Level, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.WriteTo,
		cobra.FixedCompletions(publish.GetAllDestinationStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.WriteTo, err)
	}

	return nil
}

type binding struct {
	str  *string
	on   *bool
	key  string
	envs []string
}

func (c *Config) bindings() []binding {
	envs := func(name string) []string {
		return []string{name, "NEXT_PUBLIC_" + name}
	}

	return []binding{
		{key: c.Flags.Enabled, on: &c.Enabled, envs: envs("ENABLE_LOGS")},
		{key: c.Flags.Middleware, on: &c.Middleware, envs: envs("MIDDLEWARE_LOGS")},
		{key: c.Flags.Level, str: &c.Level, envs: envs("LOG_LEVEL")},
		{key: c.Flags.AppName, str: &c.AppName, envs: envs("LOG_APP_NAME")},
		{key: c.Flags.AppVersion, str: &c.AppVersion, envs: envs("LOG_APP_VERSION")},
		{key: c.Flags.Env, str: &c.Env, envs: append(envs("LOG_ENV"), "NODE_ENV")},
		{key: c.Flags.MessageTemplate, str: &c.MessageTemplate, envs: envs("LOG_MESSAGE_TEMPLATE")},
		{key: c.Flags.WriteTo, str: &c.WriteTo, envs: envs("WRITE_LOGS_TO")},
		{key: c.Flags.Seq, on: &c.Seq, envs: envs("WRITE_LOGS_TO_SEQ")},
		{key: c.Flags.SeqURL, str: &c.SeqURL, envs: envs("SEQ_URL")},
		{key: c.Flags.SeqAPIKey, str: &c.SeqAPIKey, envs: envs("SEQ_API_KEY")},
		{key: c.Flags.CookieKey, str: &c.CookieKey, envs: envs("LOG_UUID_COOKIE_KEY")},
	}
}

// Load fills c from v. For every key the first source that is set wins:
// a changed flag in flags (which may be nil), then the environment variables
// (the plain name before its NEXT_PUBLIC_ alias), then the current value of
// c. Boolean keys are true only for a case-insensitive "true".
func (c *Config) Load(v *viper.Viper, flags *pflag.FlagSet) error {
	bs := c.bindings()

	for _, b := range bs {
		err := v.BindEnv(append([]string{b.key}, b.envs...)...)
		if err != nil {
			return fmt.Errorf("binding %s: %w", b.key, err)
		}

		if b.on != nil {
			v.SetDefault(b.key, strconv.FormatBool(*b.on))
		} else {
			v.SetDefault(b.key, *b.str)
		}

		if flags == nil {
			continue
		}

		if f := flags.Lookup(b.key); f != nil {
			err := v.BindPFlag(b.key, f)
			if err != nil {
				return fmt.Errorf("binding %s: %w", b.key, err)
			}
		}
	}

	for _, b := range bs {
		s := v.GetString(b.key)
		if b.on != nil {
			*b.on = isTrue(s)
		} else {
			*b.str = s
		}
	}

	return nil
}

func isTrue(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// NewDispatcher builds a [Dispatcher] from c. Destination publishers are
// chosen once here: the terminal only outside a browser, the browser console
// only inside one, and the remote collector when Seq is set.
//
// The level threshold is read from c on the first dispatched call and is
// fixed from then on.
func (c *Config) NewDispatcher(opts ...Option) *Dispatcher {
	return newDispatcher(c, opts...)
}

// NewLogger wraps [Config.NewDispatcher] in a [Logger].
func (c *Config) NewLogger(opts ...Option) *Logger {
	return NewLogger(c.NewDispatcher(opts...))
}
