package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ffcommunity/banwatch/internal/dependencies/clock"
	"github.com/ffcommunity/banwatch/internal/model"
	"github.com/ffcommunity/banwatch/internal/storage"
)

// SetChannelCommand implements !setchannel (admin only): restricts the
// bot's commands to the invoking channel.
type SetChannelCommand struct {
	store  storage.Store
	clock  clock.Clock
	logger *slog.Logger
}

// NewSetChannelCommand creates the restriction-set command
func NewSetChannelCommand(store storage.Store, clk clock.Clock, logger *slog.Logger) *SetChannelCommand {
	return &SetChannelCommand{store: store, clock: clk, logger: logger}
}

func (c *SetChannelCommand) Name() string      { return "setchannel" }
func (c *SetChannelCommand) Aliases() []string { return nil }
func (c *SetChannelCommand) AdminOnly() bool   { return true }
func (c *SetChannelCommand) BypassGate() bool  { return true }

func (c *SetChannelCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	msg := cmdCtx.Message
	if msg.GuildID == "" {
		return cmdCtx.Reply("ℹ️ This command can only be used in a server.")
	}

	if err := c.store.SetRestriction(ctx, msg.GuildID, msg.ChannelID); err != nil {
		// Store failures are masked from the user; the in-memory map
		// still holds the restriction for this process
		c.logger.Error("could not persist channel restriction",
			slog.String("guild_id", msg.GuildID),
			slog.String("error", err.Error()),
		)
	}

	return cmdCtx.ReplyEmbed(&model.EmbedPayload{
		Title: "✅ Channel Restriction Set",
		Description: fmt.Sprintf(
			"Bot commands are now restricted to this channel only.\n"+
				"**Channel:** <#%s>\n\n"+
				"To remove the restriction, use `!removechannel` (Admin only).",
			msg.ChannelID,
		),
		Color:     model.ColorClean,
		Footer:    footerText,
		Timestamp: c.clock.Now(),
	})
}

// RemoveChannelCommand implements !removechannel (admin only)
type RemoveChannelCommand struct {
	store  storage.Store
	clock  clock.Clock
	logger *slog.Logger
}

// NewRemoveChannelCommand creates the restriction-remove command
func NewRemoveChannelCommand(store storage.Store, clk clock.Clock, logger *slog.Logger) *RemoveChannelCommand {
	return &RemoveChannelCommand{store: store, clock: clk, logger: logger}
}

func (c *RemoveChannelCommand) Name() string      { return "removechannel" }
func (c *RemoveChannelCommand) Aliases() []string { return nil }
func (c *RemoveChannelCommand) AdminOnly() bool   { return true }
func (c *RemoveChannelCommand) BypassGate() bool  { return true }

func (c *RemoveChannelCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	msg := cmdCtx.Message
	if msg.GuildID == "" {
		return cmdCtx.Reply("ℹ️ This command can only be used in a server.")
	}

	_, ok, err := c.store.Restriction(ctx, msg.GuildID)
	if err != nil {
		return fmt.Errorf("read restriction: %w", err)
	}
	if !ok {
		return cmdCtx.Reply("ℹ️ No channel restriction was set for this server.")
	}

	if err := c.store.RemoveRestriction(ctx, msg.GuildID); err != nil {
		c.logger.Error("could not persist restriction removal",
			slog.String("guild_id", msg.GuildID),
			slog.String("error", err.Error()),
		)
	}

	return cmdCtx.ReplyEmbed(&model.EmbedPayload{
		Title: "✅ Channel Restriction Removed",
		Description: "Channel restriction has been removed.\n" +
			"Bot commands will now work in all channels.",
		Color:     model.ColorClean,
		Footer:    footerText,
		Timestamp: c.clock.Now(),
	})
}

// HelpChannelCommand implements !helpchannel, reporting the current
// restriction state. It works in any channel so users can always find out
// where the bot may be used.
type HelpChannelCommand struct {
	store storage.Store
	clock clock.Clock
}

// NewHelpChannelCommand creates the restriction-info command
func NewHelpChannelCommand(store storage.Store, clk clock.Clock) *HelpChannelCommand {
	return &HelpChannelCommand{store: store, clock: clk}
}

func (c *HelpChannelCommand) Name() string      { return "helpchannel" }
func (c *HelpChannelCommand) Aliases() []string { return nil }
func (c *HelpChannelCommand) AdminOnly() bool   { return false }
func (c *HelpChannelCommand) BypassGate() bool  { return true }

func (c *HelpChannelCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	msg := cmdCtx.Message
	if msg.GuildID == "" {
		return cmdCtx.Reply("ℹ️ Channel restrictions do not apply to direct messages.")
	}

	channelID, ok, err := c.store.Restriction(ctx, msg.GuildID)
	if err != nil {
		return fmt.Errorf("read restriction: %w", err)
	}

	payload := &model.EmbedPayload{
		Footer:    footerText,
		Timestamp: c.clock.Now(),
	}

	switch {
	case !ok:
		payload.Title = "ℹ️ Channel Restriction Info"
		payload.Description = "No channel restriction is set for this server.\n" +
			"Bot commands work in all channels.\n\n" +
			"To restrict to a specific channel, use `!setchannel` (Admin only)."
		payload.Color = model.ColorNeutral

	case cmdCtx.Dir.ChannelExists(msg.GuildID, channelID):
		name, _ := cmdCtx.Dir.ChannelName(msg.GuildID, channelID)
		payload.Title = "📌 Channel Restriction Info"
		payload.Description = fmt.Sprintf(
			"Bot commands are restricted to: <#%s>\n"+
				"**Channel Name:** %s\n\n"+
				"Only administrators can change this setting using `!setchannel`.",
			channelID, name,
		)
		payload.Color = model.ColorWarning

	default:
		payload.Title = "⚠️ Channel Restriction Info"
		payload.Description = fmt.Sprintf(
			"A restriction is set for channel ID: `%s`\n"+
				"But this channel no longer exists in the server.\n\n"+
				"Please use `!setchannel` in a new channel to update.",
			channelID,
		)
		payload.Color = model.ColorBanned
	}

	return cmdCtx.ReplyEmbed(payload)
}
