package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/spf13/viper"
)

// Default values.
const (
	DefaultServerAddr = ":8000"
	DefaultServerMode = "release"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
	DefaultConfigName = "config"
	DefaultEnvPrefix  = "TXCAT"
)

// Config is the typed application configuration.
type Config struct {
	Logging LoggingConfig
	Model   ModelConfig
	Rules   RulesConfig
	Server  ServerConfig
	Batch   BatchConfig
}

// LoggingConfig controls the global slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// ModelConfig locates the classifier artifact.
type ModelConfig struct {
	Path string
}

// RulesConfig selects where the rule table comes from. At most one of
// File and DB may be set; neither means the built-in table.
type RulesConfig struct {
	File string
	DB   string
}

// ServerConfig configures the HTTP boundary.
type ServerConfig struct {
	Addr string
	Mode string
}

// BatchConfig configures file classification.
type BatchConfig struct {
	Concurrency int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("model.path", DefaultModelPath())
	v.SetDefault("rules.file", "")
	v.SetDefault("rules.db", "")
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("server.mode", DefaultServerMode)
	v.SetDefault("batch.concurrency", runtime.NumCPU())
}

// Load builds and validates a Config from v. Paths are expanded.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	cfg := Config{
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("logging.level")),
			Format: strings.ToLower(v.GetString("logging.format")),
		},
		Model: ModelConfig{
			Path: ExpandPath(v.GetString("model.path")),
		},
		Rules: RulesConfig{
			File: ExpandPath(v.GetString("rules.file")),
			DB:   ExpandPath(v.GetString("rules.db")),
		},
		Server: ServerConfig{
			Addr: v.GetString("server.addr"),
			Mode: v.GetString("server.mode"),
		},
		Batch: BatchConfig{
			Concurrency: v.GetInt("batch.concurrency"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}

	if c.Rules.File != "" && c.Rules.DB != "" {
		return fmt.Errorf("%w: rules.file and rules.db are mutually exclusive", common.ErrInvalidConfig)
	}

	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr", common.ErrMissingConfig)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: server.mode %q", common.ErrInvalidConfig, c.Server.Mode)
	}

	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("%w: batch.concurrency must be at least 1, got %d", common.ErrInvalidConfig, c.Batch.Concurrency)
	}
	return nil
}
