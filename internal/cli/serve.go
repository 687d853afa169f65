package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ffcommunity/banwatch/internal/api"
	"github.com/ffcommunity/banwatch/internal/config"
	"github.com/ffcommunity/banwatch/internal/discord"
	"github.com/ffcommunity/banwatch/internal/factory"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot and the health HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}))
			slog.SetDefault(logger)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			app, err := factory.New(factory.FromEnv(cfg, logger))
			if err != nil {
				return err
			}

			bot, err := discord.New(cfg.DiscordToken, cfg.CommandPrefix, app.Router, app.Storage, app.Clock, logger)
			if err != nil {
				return err
			}

			apiRouter := api.NewRouter(api.RouterConfig{
				Logger:   logger,
				Resolver: app.Resolver,
				Guilds:   bot,
				Clock:    app.Clock,
			})

			serverConfig := api.DefaultServerConfig()
			serverConfig.Port = cfg.HTTPPort
			server := api.NewServer(apiRouter, serverConfig, logger)

			if err := bot.Start(); err != nil {
				return err
			}

			// Handle graceful shutdown
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				logger.Info("shutdown signal received")
				cancel()
			}()

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			logger.Info("bot running",
				slog.String("prefix", cfg.CommandPrefix),
				slog.String("addr", server.Addr()))

			// Wait for shutdown or server error
			select {
			case err := <-errCh:
				if err != nil {
					_ = bot.Stop()
					return err
				}
			case <-ctx.Done():
				if err := server.Shutdown(context.Background()); err != nil {
					logger.Error("shutdown error", slog.String("error", err.Error()))
				}
				if err := bot.Stop(); err != nil {
					logger.Error("bot stop error", slog.String("error", err.Error()))
				}
			}

			logger.Info("stopped")
			return nil
		},
	}
}
