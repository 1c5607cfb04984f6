package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// SMTP holds the mail transport settings.
type SMTP struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
}

// Log holds the logging settings.
type Log struct {
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

// Config is the per-run configuration. IntervalMinutes is informational
// only: scheduling is the external timer's job, the binary runs one
// check per invocation.
type Config struct {
	URL             string `mapstructure:"url"`
	StateFile       string `mapstructure:"state_file"`
	DumpFile        string `mapstructure:"dump_file"`
	IntervalMinutes int    `mapstructure:"interval_minutes"`
	Log             Log    `mapstructure:"log"`
	SMTP            SMTP   `mapstructure:"smtp"`
}

// Load parses the YAML config file at path. The SMTP password may be
// supplied via PARKWATCH_SMTP_PASSWORD instead of the file.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("state_file", "parkwatch_state.json")
	v.SetDefault("dump_file", "parkwatch_dump.html")
	v.SetDefault("interval_minutes", 10)
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", "info")
	v.SetDefault("smtp.port", 587)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Secrets stay out of the file when the environment provides them.
	if pw := os.Getenv("PARKWATCH_SMTP_PASSWORD"); pw != "" {
		cfg.SMTP.Password = pw
	}

	if cfg.URL == "" {
		return nil, fmt.Errorf("invalid configuration: url is required")
	}

	return &cfg, nil
}
