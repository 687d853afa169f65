package discord

import "context"

// PingCommand implements !ping
type PingCommand struct{}

// NewPingCommand creates the liveness command
func NewPingCommand() *PingCommand {
	return &PingCommand{}
}

func (c *PingCommand) Name() string      { return "ping" }
func (c *PingCommand) Aliases() []string { return nil }
func (c *PingCommand) AdminOnly() bool   { return false }
func (c *PingCommand) BypassGate() bool  { return false }

func (c *PingCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	return cmdCtx.Reply("🏓 Pong!")
}
