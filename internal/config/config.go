package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the application needs at startup. Values come
// from todoapp.yaml if present, overridden by TODOAPP_* environment
// variables (e.g. TODOAPP_ADDR, TODOAPP_DSN, TODOAPP_SESSION_TTL).
type Config struct {
	Addr       string        `mapstructure:"addr"`
	DSN        string        `mapstructure:"dsn"`
	HTMLDir    string        `mapstructure:"html_dir"`
	StaticDir  string        `mapstructure:"static_dir"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":4000")
	v.SetDefault("dsn", "./todo.db")
	v.SetDefault("html_dir", "./ui/html")
	v.SetDefault("static_dir", "./ui/static")
	v.SetDefault("session_ttl", 24*time.Hour)

	v.SetConfigName("todoapp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TODOAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults and env cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
