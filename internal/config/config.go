package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prefix is prepended to every environment variable, e.g. NUTRITRACK_API_BASE.
const Prefix = "NUTRITRACK"

// Config holds CLI configuration read from the environment.
type Config struct {
	APIBase  string        `envconfig:"API_BASE" default:"http://localhost:8000"`
	Token    string        `envconfig:"TOKEN"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"30s"`
	LogLevel string        `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool          `envconfig:"DEBUG" default:"false"`
}

// Load parses NUTRITRACK_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%s_TIMEOUT must be > 0, got %s", Prefix, cfg.Timeout)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level returns the parsed log level; Debug forces debug.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Init configures the global logger and logs the effective configuration.
func (c *Config) Init() {
	InitLogger()
	SetLogLevel(c.Level())

	log.Debug().
		Str("api_base", c.APIBase).
		Bool("token_present", c.Token != "").
		Dur("timeout", c.Timeout).
		Str("log_level", c.Level().String()).
		Msg("configuration loaded")
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unsupported %s_LOG_LEVEL: %s", Prefix, s)
	}
}
