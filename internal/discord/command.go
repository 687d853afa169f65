package discord

import (
	"context"
	"io"

	"github.com/ffcommunity/banwatch/internal/i18n"
	"github.com/ffcommunity/banwatch/internal/model"
	"github.com/ffcommunity/banwatch/internal/services/gate"
)

// Message is one incoming chat command invocation, normalized away from
// the wire event. An empty GuildID means a direct message.
type Message struct {
	GuildID   string
	ChannelID string
	UserID    string
	Username  string
	Content   string

	// IsAdmin is true when the author holds Administrator, Manage
	// Server, or Manage Channels in the invoking channel. Filled by the
	// session adapter; always false in direct messages.
	IsAdmin bool
}

// Responder sends replies back through the chat platform
type Responder interface {
	SendText(channelID, content string) error
	SendEmbed(channelID string, payload *model.EmbedPayload) error
	SendEmbedFile(channelID string, payload *model.EmbedPayload, filename string, file io.Reader) error
	// Typing shows a typing indicator while a lookup is in flight
	Typing(channelID string)
}

// Directory answers questions about the bot's current guild state
type Directory interface {
	gate.ChannelResolver
	ChannelName(guildID, channelID string) (string, bool)
	GuildCount() int
}

// Context carries everything a command handler needs for one invocation
type Context struct {
	Message Message
	Args    []string

	// Lang and Bundle are resolved from the author's preference before
	// dispatch
	Lang   model.Lang
	Bundle i18n.Bundle

	Out Responder
	Dir Directory
}

// Reply sends a plain-text response to the invoking channel
func (c *Context) Reply(content string) error {
	return c.Out.SendText(c.Message.ChannelID, content)
}

// ReplyEmbed sends an embed response to the invoking channel
func (c *Context) ReplyEmbed(payload *model.EmbedPayload) error {
	return c.Out.SendEmbed(c.Message.ChannelID, payload)
}

// Command is one chat command
type Command interface {
	Name() string
	Aliases() []string

	// AdminOnly commands require guild admin permission
	AdminOnly() bool
	// BypassGate commands run even outside the restricted channel
	// (admin and informational commands must work anywhere)
	BypassGate() bool

	Handle(ctx context.Context, c *Context) error
}
