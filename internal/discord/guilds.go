package discord

import (
	"context"
	"fmt"

	"github.com/ffcommunity/banwatch/internal/dependencies/clock"
	"github.com/ffcommunity/banwatch/internal/model"
)

// GuildsCommand implements !guilds, reporting the server count
type GuildsCommand struct {
	clock clock.Clock
}

// NewGuildsCommand creates the server-count command
func NewGuildsCommand(clk clock.Clock) *GuildsCommand {
	return &GuildsCommand{clock: clk}
}

func (c *GuildsCommand) Name() string      { return "guilds" }
func (c *GuildsCommand) Aliases() []string { return []string{"servers"} }
func (c *GuildsCommand) AdminOnly() bool   { return false }
func (c *GuildsCommand) BypassGate() bool  { return false }

func (c *GuildsCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	count := cmdCtx.Dir.GuildCount()

	return cmdCtx.ReplyEmbed(&model.EmbedPayload{
		Title:       cmdCtx.Bundle.Guilds.Title,
		Description: fmt.Sprintf(cmdCtx.Bundle.Guilds.Description, count),
		Color:       model.ColorNeutral,
		Footer:      footerText,
		Timestamp:   c.clock.Now(),
	})
}

// footerText is the shared footer for informational embeds
const footerText = "banwatch"
