// Package config loads application settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config holds all runtime settings. The bot token is the single required
// value; everything else has a working default.
type Config struct {
	// DiscordToken authenticates the bot with the chat platform
	DiscordToken string `env:"DISCORD_BOT_TOKEN,required"`

	// CommandPrefix introduces bot commands in chat
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`

	// Endpoints are the ban-check URL templates, tried in order
	Endpoints []string `env:"BAN_CHECK_ENDPOINTS" envSeparator:"," envDefault:"http://raw.thug4ff.com/check_ban/check_ban/"`

	// AllowMockFallback enables deterministic demo data when every
	// endpoint is unreachable
	AllowMockFallback bool `env:"ALLOW_MOCK_FALLBACK" envDefault:"true"`

	// StorageType selects the restriction store backend
	// ("file", "memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"file"`

	// ConfigFile is the JSON config path for the file backend
	ConfigFile string `env:"CONFIG_FILE" envDefault:"bot_config.json"`

	// RedisURL is required when StorageType is "redis"
	RedisURL string `env:"REDIS_URL"`

	// AssetsDir holds the optional verdict images attached to results
	AssetsDir string `env:"ASSETS_DIR" envDefault:"assets"`

	// HTTPPort is the health server listen port
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`
}

// Load reads .env (when present) and parses the environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
