package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ffcommunity/banwatch/internal/model"
	"github.com/ffcommunity/banwatch/internal/services/format"
	"github.com/ffcommunity/banwatch/internal/services/lookup"
	"github.com/ffcommunity/banwatch/internal/services/playerid"
)

// CheckBanCommand implements !ID <player_id>, the bot's main command
type CheckBanCommand struct {
	resolver  *lookup.Resolver
	assetsDir string
	logger    *slog.Logger
}

// NewCheckBanCommand creates the ban-check command. assetsDir may hold
// banned.gif / notbanned.gif to attach to results; missing files degrade
// to an embed-only reply.
func NewCheckBanCommand(resolver *lookup.Resolver, assetsDir string, logger *slog.Logger) *CheckBanCommand {
	return &CheckBanCommand{
		resolver:  resolver,
		assetsDir: assetsDir,
		logger:    logger,
	}
}

func (c *CheckBanCommand) Name() string      { return "ID" }
func (c *CheckBanCommand) Aliases() []string { return nil }
func (c *CheckBanCommand) AdminOnly() bool   { return false }
func (c *CheckBanCommand) BypassGate() bool  { return false }

func (c *CheckBanCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	if len(cmdCtx.Args) == 0 {
		return cmdCtx.Reply("❌ " + cmdCtx.Bundle.Errors.MissingID)
	}

	id := cmdCtx.Args[0]
	if !playerid.Valid(id) {
		return cmdCtx.Reply("⚠️ " + cmdCtx.Bundle.Errors.InvalidID)
	}

	cmdCtx.Out.Typing(cmdCtx.Message.ChannelID)

	status, err := c.resolver.Resolve(ctx, model.PlayerID(id))
	if err != nil {
		if errors.Is(err, model.ErrLookupUnavailable) {
			return cmdCtx.Reply("🔧 " + cmdCtx.Bundle.Errors.APIError)
		}
		return fmt.Errorf("resolve %s: %w", id, err)
	}

	payload, err := format.Build(status, cmdCtx.Lang)
	if err != nil {
		return fmt.Errorf("format %s: %w", id, err)
	}

	return c.sendResult(cmdCtx, payload, status.Banned)
}

// sendResult attaches the verdict GIF when present, otherwise sends the
// embed alone
func (c *CheckBanCommand) sendResult(cmdCtx *Context, payload *model.EmbedPayload, banned bool) error {
	name := "notbanned.gif"
	if banned {
		name = "banned.gif"
	}

	gif, err := os.Open(filepath.Join(c.assetsDir, name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.logger.Warn("could not open result gif",
				slog.String("file", name),
				slog.String("error", err.Error()),
			)
		}
		return cmdCtx.ReplyEmbed(payload)
	}
	defer gif.Close()

	return cmdCtx.Out.SendEmbedFile(cmdCtx.Message.ChannelID, payload, name, gif)
}
