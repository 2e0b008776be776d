package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix           = "CLUBSPOT"
	defaultDatabasePath = "clubspot.db"
	defaultLogLevel     = "info"
	defaultMoveTTL      = 2
)

// AppConfig captures runtime configuration for the bot.
type AppConfig struct {
	DiscordToken string
	DatabasePath string
	LogLevel     string
	MoveTTL      time.Duration
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	configViper := viper.New()
	ApplyDefaults(configViper)
	return configViper
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(configViper *viper.Viper) {
	configViper.SetEnvPrefix(envPrefix)
	configViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	configViper.AutomaticEnv()

	configViper.SetDefault("database.path", defaultDatabasePath)
	configViper.SetDefault("log.level", defaultLogLevel)
	configViper.SetDefault("move.ttl_minutes", defaultMoveTTL)
}

// Load parses runtime configuration from viper.
func Load(configViper *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		DiscordToken: configViper.GetString("discord.token"),
		DatabasePath: configViper.GetString("database.path"),
		LogLevel:     configViper.GetString("log.level"),
		MoveTTL:      time.Duration(configViper.GetInt("move.ttl_minutes")) * time.Minute,
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func (c AppConfig) validate() error {
	if strings.TrimSpace(c.DiscordToken) == "" {
		return fmt.Errorf("discord.token is required")
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.MoveTTL <= 0 {
		return fmt.Errorf("move.ttl_minutes must be positive")
	}
	return nil
}
