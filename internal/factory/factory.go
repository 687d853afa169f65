// Package factory wires application components together.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ffcommunity/banwatch/internal/config"
	"github.com/ffcommunity/banwatch/internal/dependencies/clock"
	"github.com/ffcommunity/banwatch/internal/discord"
	"github.com/ffcommunity/banwatch/internal/services/gate"
	"github.com/ffcommunity/banwatch/internal/services/lookup"
	"github.com/ffcommunity/banwatch/internal/services/prefs"
	"github.com/ffcommunity/banwatch/internal/storage"
	filestorage "github.com/ffcommunity/banwatch/internal/storage/file"
	"github.com/ffcommunity/banwatch/internal/storage/memory"
	redisstorage "github.com/ffcommunity/banwatch/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Clock clock.Clock

	// Services
	Resolver     *lookup.Resolver
	GateService  *gate.Service
	PrefsService *prefs.Service

	// Chat command routing, with every command registered
	Router *discord.Router
}

// Config holds configuration for the application factory
type Config struct {
	// CommandPrefix introduces bot commands in chat
	// If empty, defaults to "!"
	CommandPrefix string
	// AssetsDir holds the optional verdict images (optional)
	AssetsDir string
	// Lookup configures the ban-status resolver
	// If zero value, defaults to lookup.DefaultConfig()
	Lookup lookup.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("file", "memory" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// ConfigFile is the JSON path for the file backend
	ConfigFile string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// FromEnv maps loaded environment settings onto a factory config
func FromEnv(cfg *config.Config, logger *slog.Logger) Config {
	lookupCfg := lookup.DefaultConfig()
	lookupCfg.Endpoints = cfg.Endpoints
	lookupCfg.AllowMockFallback = cfg.AllowMockFallback

	factoryCfg := Config{
		CommandPrefix: cfg.CommandPrefix,
		AssetsDir:     cfg.AssetsDir,
		Lookup:        lookupCfg,
		Logger:        logger,
		StorageType:   cfg.StorageType,
		ConfigFile:    cfg.ConfigFile,
	}
	if cfg.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		if cfg.RedisURL != "" {
			redisCfg.URL = cfg.RedisURL
		}
		factoryCfg.RedisConfig = &redisCfg
	}
	return factoryCfg
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeFile
	}

	var store storage.Store
	switch storageType {
	case config.StorageTypeFile:
		path := cfg.ConfigFile
		if path == "" {
			path = "bot_config.json"
		}
		store = filestorage.New(path, clk, logger)
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'file', 'memory' or 'redis'")
	}

	lookupCfg := cfg.Lookup
	if len(lookupCfg.Endpoints) == 0 && lookupCfg.RequestTimeout == 0 {
		lookupCfg = lookup.DefaultConfig()
	}

	prefix := cfg.CommandPrefix
	if prefix == "" {
		prefix = "!"
	}

	return newWithDependencies(store, clk, lookupCfg, prefix, cfg.AssetsDir, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, clk clock.Clock, lookupCfg lookup.Config, prefix, assetsDir string, logger *slog.Logger) *App {
	resolver := lookup.New(lookupCfg, clk, logger)
	gateService := gate.New(store, logger)
	prefsService := prefs.New()

	router := discord.NewRouter(prefix, gateService, prefsService, logger)
	router.Register(discord.NewCheckBanCommand(resolver, assetsDir, logger))
	router.Register(discord.NewLangCommand(prefsService))
	router.Register(discord.NewGuildsCommand(clk))
	router.Register(discord.NewSetChannelCommand(store, clk, logger))
	router.Register(discord.NewRemoveChannelCommand(store, clk, logger))
	router.Register(discord.NewHelpChannelCommand(store, clk))
	router.Register(discord.NewBotInfoCommand(prefix, clk))
	router.Register(discord.NewPingCommand())
	router.Register(discord.NewAPIStatusCommand(resolver, clk))

	return &App{
		Storage:      store,
		Clock:        clk,
		Resolver:     resolver,
		GateService:  gateService,
		PrefsService: prefsService,
		Router:       router,
	}
}
