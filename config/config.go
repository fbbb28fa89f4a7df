// Package config loads the demo CLI's configuration.
//
// Sources, lowest to highest precedence: built-in defaults, a .gopatterns.yml
// file in the working directory (or an explicit file), GOPATTERNS_* environment
// variables, and bound command-line flags. Loading is instance-based (build a
// Loader, point it at sources, Load) so tests never share hidden state.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file written by WriteDefault and picked up from
// the working directory.
const DefaultFile = ".gopatterns.yml"

// envPrefix namespaces environment overrides, e.g. GOPATTERNS_LOGGING_MODE.
const envPrefix = "GOPATTERNS"

// Config is the full demo configuration.
type Config struct {
	Env      string         `mapstructure:"env" yaml:"env"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Delivery DeliveryConfig `mapstructure:"delivery" yaml:"delivery"`
	Policy   PolicyConfig   `mapstructure:"policy" yaml:"policy"`
}

// LoggingConfig selects the logger mode.
type LoggingConfig struct {
	// Mode is "dev" or "prod" (alias "production").
	Mode string `mapstructure:"mode" yaml:"mode"`
}

// DeliveryConfig configures the order pricing demo.
type DeliveryConfig struct {
	// Currency is the ISO 4217 code totals are labeled with.
	Currency string `mapstructure:"currency" yaml:"currency"`
}

// PolicyConfig configures the policy pricing demo.
type PolicyConfig struct {
	// DefaultAccount is the account quoted when none is given.
	DefaultAccount string `mapstructure:"default_account" yaml:"default_account"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Env: "local",
		Logging: LoggingConfig{
			Mode: "dev",
		},
		Delivery: DeliveryConfig{
			Currency: "USD",
		},
		Policy: PolicyConfig{
			DefaultAccount: "ACC-1001",
		},
	}
}

// InvalidValueError is returned when a configuration field holds a value the
// demos cannot run with.
type InvalidValueError struct {
	Field string
	Value string
}

// Error implements the error interface.
func (e InvalidValueError) Error() string {
	// Example: config: invalid value "loud" for logging.mode
	return "config: invalid value " + strconv.Quote(e.Value) + " for " + e.Field
}

// Validate checks the fields the demos depend on.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Mode) {
	case "dev", "prod", "production":
	default:
		return InvalidValueError{Field: "logging.mode", Value: c.Logging.Mode}
	}
	if !isCurrency(c.Delivery.Currency) {
		return InvalidValueError{Field: "delivery.currency", Value: c.Delivery.Currency}
	}
	if c.Policy.DefaultAccount == "" {
		return InvalidValueError{Field: "policy.default_account", Value: ""}
	}
	return nil
}

// isCurrency accepts three ASCII letters, the shape of an ISO 4217 code.
func isCurrency(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// Loader reads a Config from defaults, file, environment, and bound flags.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with defaults registered and the environment
// wired under the GOPATTERNS_ prefix.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yml"))
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("env", def.Env)
	v.SetDefault("logging.mode", def.Logging.Mode)
	v.SetDefault("delivery.currency", def.Delivery.Currency)
	v.SetDefault("policy.default_account", def.Policy.DefaultAccount)

	return &Loader{v: v}
}

// SetConfigFile points the Loader at an explicit file instead of searching the
// working directory. The file must then exist.
func (l *Loader) SetConfigFile(path string) {
	l.v.SetConfigFile(path)
}

// BindFlags binds known flags to their config keys so flag values win over
// file and environment. Unknown flags are ignored.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"logging.mode":      "log-mode",
		"delivery.currency": "currency",
	}
	for key, name := range bindings {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads all sources and returns a validated Config.
//
// A missing file in the search path is fine; defaults, environment, and flags
// still apply. An explicitly set file that cannot be read is an error.
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ErrConfigExists is returned by WriteDefault when the target already exists;
// an existing file is never overwritten.
var ErrConfigExists = errors.New("config: file already exists")

// WriteDefault writes the built-in configuration to path as YAML.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return ErrConfigExists
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config: marshal defaults: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
