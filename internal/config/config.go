package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log     LogConfig
	Display DisplayConfig
	Batch   BatchConfig
}

// LogConfig holds slog settings.
type LogConfig struct {
	Level  string
	Format string
}

// DisplayConfig controls the extra output printed after each run.
type DisplayConfig struct {
	Map   bool
	Audit bool
}

// BatchConfig bounds how many mission files are simulated at once.
type BatchConfig struct {
	Workers int
}

// Load reads configuration from path (or $MARTIANROBOTS_CONFIG, or
// ~/.config/martianrobots/config.toml) and env. Env var overrides use prefix
// MARTIANROBOTS_. A missing default config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("display.map", false)
	v.SetDefault("display.audit", false)
	v.SetDefault("batch.workers", 4)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("MARTIANROBOTS_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "martianrobots"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MARTIANROBOTS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Batch.Workers < 1 {
		c.Batch.Workers = 1
	}
	return c, nil
}

