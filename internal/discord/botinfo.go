package discord

import (
	"context"

	"github.com/ffcommunity/banwatch/internal/dependencies/clock"
	"github.com/ffcommunity/banwatch/internal/model"
)

// BotInfoCommand implements !botinfo
type BotInfoCommand struct {
	prefix string
	clock  clock.Clock
}

// NewBotInfoCommand creates the bot-info command
func NewBotInfoCommand(prefix string, clk clock.Clock) *BotInfoCommand {
	return &BotInfoCommand{prefix: prefix, clock: clk}
}

func (c *BotInfoCommand) Name() string      { return "botinfo" }
func (c *BotInfoCommand) Aliases() []string { return []string{"info"} }
func (c *BotInfoCommand) AdminOnly() bool   { return false }
func (c *BotInfoCommand) BypassGate() bool  { return true }

func (c *BotInfoCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	p := c.prefix

	return cmdCtx.ReplyEmbed(&model.EmbedPayload{
		Title: "🤖 Free Fire Ban Checker",
		Description: "A Discord bot to check Free Fire player ban status\n\n" +
			"**Main Commands:**\n" +
			"• `" + p + "ID <player_id>` - Check if a player is banned\n" +
			"• `" + p + "lang en/fr` - Set your language\n" +
			"• `" + p + "guilds` - Show server count\n" +
			"• `" + p + "apistatus` - Check lookup endpoints\n" +
			"• `" + p + "botinfo` - Show this info\n\n" +
			"**Admin Commands:**\n" +
			"• `" + p + "setchannel` - Restrict bot to current channel\n" +
			"• `" + p + "removechannel` - Remove channel restriction\n" +
			"• `" + p + "helpchannel` - Show current restriction\n",
		Color: model.ColorNeutral,
		Fields: []model.EmbedField{
			{Label: "Prefix", Value: "`" + p + "`", Inline: true},
			{Label: "Support", Value: "Contact a server admin for help", Inline: true},
		},
		Footer:    footerText,
		Timestamp: c.clock.Now(),
	})
}
