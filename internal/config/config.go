// Package config resolves wikiquiz settings from flags, environment
// variables and an optional YAML file through viper.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every environment variable, so log.level is
// read from WIKIQUIZ_LOG_LEVEL.
const EnvPrefix = "WIKIQUIZ"

// Keys understood by Load. Flags are bound to the same names.
const (
	KeyServiceURL = "service_url"
	KeyTimeout    = "timeout"
	KeyRetries    = "retries"
	KeyLogFile    = "log.file"
	KeyLogLevel   = "log.level"
)

// Config holds the resolved settings.
type Config struct {
	// ServiceURL is the base URL of the quiz service.
	ServiceURL string

	// Timeout bounds each request to the service. Generation runs an LLM
	// on the server side, so the default is generous.
	Timeout time.Duration

	// Retries is how many times a failed history or quiz lookup is
	// repeated. Zero, the default, surfaces the first failure. Generation
	// is never repeated.
	Retries int

	Log LogConfig
}

// LogConfig controls where diagnostics go. The TUI owns stdout, so logs
// default to a file.
type LogConfig struct {
	// File is the log destination. "-" means stderr.
	File  string
	Level string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		ServiceURL: "http://localhost:8000",
		Timeout:    2 * time.Minute,
		Retries:    0,
		Log: LogConfig{
			File:  DefaultLogFile(),
			Level: "info",
		},
	}
}

// DefaultLogFile resolves the log path in priority order:
// 1. $XDG_STATE_HOME/wikiquiz/wikiquiz.log
// 2. ~/.local/state/wikiquiz/wikiquiz.log
// It falls back to stderr when no home directory is known.
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "-"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "wikiquiz", "wikiquiz.log")
}

// DefaultConfigFile returns $XDG_CONFIG_HOME/wikiquiz/config.yaml, or ""
// when the config directory cannot be resolved.
func DefaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wikiquiz", "config.yaml")
}

// NewViper returns a viper instance with defaults and environment lookup
// configured. Callers bind their flags to it before calling Load.
func NewViper() *viper.Viper {
	def := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyServiceURL, def.ServiceURL)
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyRetries, def.Retries)
	v.SetDefault(KeyLogFile, def.Log.File)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	return v
}

// Load reads file (or the default config file when file is empty and it
// exists) into v, then resolves and validates the settings. Precedence is
// flags, environment, file, defaults.
func Load(v *viper.Viper, file string) (Config, error) {
	explicit := file != ""
	if !explicit {
		file = DefaultConfigFile()
	}
	if file != "" {
		if _, err := os.Stat(file); err == nil || explicit {
			v.SetConfigFile(file)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", file, err)
			}
		}
	}

	cfg := Config{
		ServiceURL: strings.TrimSpace(v.GetString(KeyServiceURL)),
		Timeout:    v.GetDuration(KeyTimeout),
		Retries:    v.GetInt(KeyRetries),
		Log: LogConfig{
			File:  strings.TrimSpace(v.GetString(KeyLogFile)),
			Level: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.ServiceURL == "" {
		return errors.New("service_url is required")
	}
	u, err := url.Parse(c.ServiceURL)
	if err != nil {
		return fmt.Errorf("service_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("service_url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("service_url: missing host")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}

	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", c.Retries)
	}

	if c.Log.File == "" {
		return errors.New("log.file is required")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
