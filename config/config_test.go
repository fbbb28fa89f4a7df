package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/gopatterns/config"
)

//
// -----------------------------------------------------------------------------
// Defaults and validation
// -----------------------------------------------------------------------------

// TestLoad_DefaultsWithoutFile verifies a bare Loader yields the defaults.
func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "dev", cfg.Logging.Mode)
	assert.Equal(t, "USD", cfg.Delivery.Currency)
	assert.NotEmpty(t, cfg.Policy.DefaultAccount)
}

// TestValidate verifies each guarded field rejects bad values with context.
func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		mutate    func(c *config.Config)
		wantField string
	}{
		{
			name:      "unknown logging mode",
			mutate:    func(c *config.Config) { c.Logging.Mode = "loud" },
			wantField: "logging.mode",
		},
		{
			name:      "short currency",
			mutate:    func(c *config.Config) { c.Delivery.Currency = "US" },
			wantField: "delivery.currency",
		},
		{
			name:      "non-letter currency",
			mutate:    func(c *config.Config) { c.Delivery.Currency = "U5D" },
			wantField: "delivery.currency",
		},
		{
			name:      "empty default account",
			mutate:    func(c *config.Config) { c.Policy.DefaultAccount = "" },
			wantField: "policy.default_account",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var iv config.InvalidValueError
			require.True(t, errors.As(err, &iv))
			assert.Equal(t, tc.wantField, iv.Field)
		})
	}
}

// TestValidate_ModeAliases verifies prod spellings pass validation.
func TestValidate_ModeAliases(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"dev", "prod", "production", "PROD"} {
		cfg := config.Default()
		cfg.Logging.Mode = mode
		assert.NoError(t, cfg.Validate(), "mode %q", mode)
	}
}

//
// -----------------------------------------------------------------------------
// Sources and precedence
// -----------------------------------------------------------------------------

// TestLoad_FromFile verifies an explicit config file is read and validated.
func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gopatterns.yml")
	body := "env: staging\nlogging:\n  mode: prod\ndelivery:\n  currency: eur\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	l := config.NewLoader()
	l.SetConfigFile(path)

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, "prod", cfg.Logging.Mode)
	assert.Equal(t, "eur", cfg.Delivery.Currency)
	// Untouched keys keep their defaults.
	assert.Equal(t, config.Default().Policy.DefaultAccount, cfg.Policy.DefaultAccount)
}

// TestLoad_MissingExplicitFile verifies an explicitly set file must exist.
func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	l := config.NewLoader()
	l.SetConfigFile(filepath.Join(t.TempDir(), "nope.yml"))

	_, err := l.Load()
	require.Error(t, err)
}

// TestLoad_InvalidFileValue verifies file values still pass validation.
func TestLoad_InvalidFileValue(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  mode: loud\n"), 0o644))

	l := config.NewLoader()
	l.SetConfigFile(path)

	_, err := l.Load()
	require.Error(t, err)

	var iv config.InvalidValueError
	require.True(t, errors.As(err, &iv))
	assert.Equal(t, "logging.mode", iv.Field)
}

// TestLoad_EnvOverride verifies GOPATTERNS_* variables win over defaults.
// Not parallel: t.Setenv mutates process state.
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GOPATTERNS_LOGGING_MODE", "prod")
	t.Setenv("GOPATTERNS_DELIVERY_CURRENCY", "CHF")

	cfg, err := config.NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Logging.Mode)
	assert.Equal(t, "CHF", cfg.Delivery.Currency)
}

// TestBindFlags verifies bound flag values win over defaults, and that
// unknown flags are skipped without error.
func TestBindFlags(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-mode", "dev", "")
	fs.String("currency", "USD", "")
	require.NoError(t, fs.Parse([]string{"--log-mode=prod", "--currency=GBP"}))

	l := config.NewLoader()
	require.NoError(t, l.BindFlags(fs))

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Logging.Mode)
	assert.Equal(t, "GBP", cfg.Delivery.Currency)

	// A flag set without the known names binds nothing.
	empty := pflag.NewFlagSet("empty", pflag.ContinueOnError)
	assert.NoError(t, config.NewLoader().BindFlags(empty))
}

//
// -----------------------------------------------------------------------------
// WriteDefault
// -----------------------------------------------------------------------------

// TestWriteDefault verifies the written file round-trips to the defaults and
// is never overwritten.
func TestWriteDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), config.DefaultFile)

	require.NoError(t, config.WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *config.Default(), cfg)

	// Second write refuses to clobber.
	err = config.WriteDefault(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfigExists))
}

// TestWriteDefault_LoadsBack verifies a written default file loads cleanly.
func TestWriteDefault_LoadsBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, config.WriteDefault(path))

	l := config.NewLoader()
	l.SetConfigFile(path)

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
