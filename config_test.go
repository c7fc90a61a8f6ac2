package loghorn_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/loghorn"
	"go.jacobcolvin.com/loghorn/record"
)

var envNames = []string{
	"ENABLE_LOGS", "MIDDLEWARE_LOGS", "LOG_LEVEL", "LOG_APP_NAME",
	"LOG_APP_VERSION", "LOG_ENV", "NODE_ENV", "LOG_MESSAGE_TEMPLATE",
	"WRITE_LOGS_TO", "WRITE_LOGS_TO_SEQ", "SEQ_URL", "SEQ_API_KEY",
	"LOG_UUID_COOKIE_KEY",
}

// clearEnv blanks every variable Load reads. Empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range envNames {
		t.Setenv(name, "")

		if name != "NODE_ENV" {
			t.Setenv("NEXT_PUBLIC_"+name, "")
		}
	}
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := loghorn.NewConfig()

	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.Middleware)
	assert.False(t, cfg.Seq)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "console", cfg.WriteTo)
	assert.Equal(t, "logUuid", cfg.CookieKey)
	assert.Equal(t, record.DefaultTemplate, cfg.MessageTemplate)
}

func TestConfigLoadEnv(t *testing.T) {
	tcs := map[string]struct {
		env   map[string]string
		check func(t *testing.T, cfg *loghorn.Config)
	}{
		"no environment keeps defaults": {
			check: func(t *testing.T, cfg *loghorn.Config) {
				t.Helper()

				assert.False(t, cfg.Enabled)
				assert.Equal(t, "info", cfg.Level)
				assert.Equal(t, "development", cfg.Env)
				assert.Equal(t, "console", cfg.WriteTo)
			},
		},
		"plain names": {
			env: map[string]string{
				"ENABLE_LOGS":         "true",
				"MIDDLEWARE_LOGS":     "true",
				"LOG_LEVEL":           "debug",
				"LOG_APP_NAME":        "shop",
				"LOG_APP_VERSION":     "2.1.0",
				"LOG_ENV":             "staging",
				"WRITE_LOGS_TO":       "console,browser",
				"WRITE_LOGS_TO_SEQ":   "true",
				"SEQ_URL":             "http://seq:5341/api/events/raw",
				"SEQ_API_KEY":         "secret",
				"LOG_UUID_COOKIE_KEY": "sid",
			},
			check: func(t *testing.T, cfg *loghorn.Config) {
				t.Helper()

				assert.True(t, cfg.Enabled)
				assert.True(t, cfg.Middleware)
				assert.True(t, cfg.Seq)
				assert.Equal(t, "debug", cfg.Level)
				assert.Equal(t, "shop", cfg.AppName)
				assert.Equal(t, "2.1.0", cfg.AppVersion)
				assert.Equal(t, "staging", cfg.Env)
				assert.Equal(t, "console,browser", cfg.WriteTo)
				assert.Equal(t, "http://seq:5341/api/events/raw", cfg.SeqURL)
				assert.Equal(t, "secret", cfg.SeqAPIKey)
				assert.Equal(t, "sid", cfg.CookieKey)
			},
		},
		"public aliases": {
			env: map[string]string{
				"NEXT_PUBLIC_ENABLE_LOGS":  "true",
				"NEXT_PUBLIC_LOG_LEVEL":    "trace",
				"NEXT_PUBLIC_LOG_APP_NAME": "web",
			},
			check: func(t *testing.T, cfg *loghorn.Config) {
				t.Helper()

				assert.True(t, cfg.Enabled)
				assert.Equal(t, "trace", cfg.Level)
				assert.Equal(t, "web", cfg.AppName)
			},
		},
		"plain name wins over alias": {
			env: map[string]string{
				"LOG_LEVEL":             "warn",
				"NEXT_PUBLIC_LOG_LEVEL": "trace",
			},
			check: func(t *testing.T, cfg *loghorn.Config) {
				t.Helper()

				assert.Equal(t, "warn", cfg.Level)
			},
		},
		"node env fallback": {
			env: map[string]string{
				"NODE_ENV": "production",
			},
			check: func(t *testing.T, cfg *loghorn.Config) {
				t.Helper()

				assert.Equal(t, "production", cfg.Env)
			},
		},
		"log env wins over node env": {
			env: map[string]string{
				"LOG_ENV":  "qa",
				"NODE_ENV": "production",
			},
			check: func(t *testing.T, cfg *loghorn.Config) {
				t.Helper()

				assert.Equal(t, "qa", cfg.Env)
			},
		},
		"booleans are case-insensitive": {
			env: map[string]string{
				"ENABLE_LOGS":       "TRUE",
				"WRITE_LOGS_TO_SEQ": "True",
			},
			check: func(t *testing.T, cfg *loghorn.Config) {
				t.Helper()

				assert.True(t, cfg.Enabled)
				assert.True(t, cfg.Seq)
			},
		},
		"other boolean values are false": {
			env: map[string]string{
				"ENABLE_LOGS":     "yes",
				"MIDDLEWARE_LOGS": "1",
			},
			check: func(t *testing.T, cfg *loghorn.Config) {
				t.Helper()

				assert.False(t, cfg.Enabled)
				assert.False(t, cfg.Middleware)
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)

			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg := loghorn.NewConfig()
			require.NoError(t, cfg.Load(viper.New(), nil))

			tc.check(t, cfg)
		})
	}
}

func TestConfigLoadFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_APP_NAME", "from-env")

	cfg := loghorn.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--log-level=error", "--enable-logs"}))
	require.NoError(t, cfg.Load(viper.New(), flags))

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "error", cfg.Level)
	assert.Equal(t, "from-env", cfg.AppName)
	assert.Equal(t, "development", cfg.Env)
}

func TestConfigRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := loghorn.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	for _, name := range []string{
		"enable-logs", "middleware-logs", "log-level", "log-app-name",
		"log-app-version", "log-env", "log-message-template", "write-logs-to",
		"write-logs-to-seq", "seq-url", "seq-api-key", "log-uuid-cookie-key",
	} {
		assert.NotNil(t, flags.Lookup(name), name)
	}

	err := flags.Parse([]string{
		"--write-logs-to=file",
		"--write-logs-to-seq",
		"--seq-url=http://localhost:5341",
	})
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.WriteTo)
	assert.True(t, cfg.Seq)
	assert.Equal(t, "http://localhost:5341", cfg.SeqURL)
}

func TestConfigCustomFlagNames(t *testing.T) {
	t.Parallel()

	f := loghorn.NewConfig().Flags
	f.Level = "verbosity"

	cfg := f.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	assert.NotNil(t, flags.Lookup("verbosity"))
	assert.Nil(t, flags.Lookup("log-level"))
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := loghorn.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	fn, ok := cmd.GetFlagCompletionFunc("log-level")
	require.True(t, ok)

	got, _ := fn(cmd, nil, "")
	assert.Equal(t, []string{"error", "warn", "info", "log", "debug", "trace"}, got)
}

func TestConfigRegisterCompletionsMissingFlag(t *testing.T) {
	t.Parallel()

	cfg := loghorn.NewConfig()
	cmd := &cobra.Command{Use: "test"}

	require.Error(t, cfg.RegisterCompletions(cmd))
}
