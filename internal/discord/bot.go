// Package discord connects the command pipeline to the Discord gateway.
// The host SDK owns connection lifecycle, message parsing, and permission
// primitives; this package supplies handlers and the glue between wire
// events and the internal command types.
package discord

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ffcommunity/banwatch/internal/dependencies/clock"
	"github.com/ffcommunity/banwatch/internal/model"
	"github.com/ffcommunity/banwatch/internal/storage"
)

// adminPermissions are the guild permissions that qualify a user to run
// admin commands
const adminPermissions = discordgo.PermissionAdministrator |
	discordgo.PermissionManageServer |
	discordgo.PermissionManageChannels

// Bot owns the gateway session and routes message events into the command
// router
type Bot struct {
	session *discordgo.Session
	router  *Router
	store   storage.Store
	clock   clock.Clock
	logger  *slog.Logger
	prefix  string
}

// New creates a bot over a fresh gateway session. The session is not
// opened until Start.
func New(token, prefix string, router *Router, store storage.Store, clk clock.Clock, logger *slog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	b := &Bot{
		session: session,
		router:  router,
		store:   store,
		clock:   clk,
		logger:  logger,
		prefix:  prefix,
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onGuildCreate)
	session.AddHandler(b.onGuildRemove)
	session.AddHandler(b.onMessage)

	return b, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// Event handlers

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("bot is online",
		slog.String("username", r.User.Username),
		slog.Int("guilds", len(r.Guilds)),
	)

	if err := s.UpdateWatchStatus(0, b.prefix+"ID <player_id>"); err != nil {
		b.logger.Warn("could not set presence", slog.String("error", err.Error()))
	}
}

// onGuildCreate sends a welcome embed to the system channel when the bot
// joins a new guild. Best effort; a missing channel or denied send is only
// logged.
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	// GuildCreate also fires for every existing guild during startup
	if g.Unavailable {
		return
	}
	if g.SystemChannelID == "" {
		return
	}
	joined := g.JoinedAt
	if b.clock.Now().Sub(joined) > welcomeWindow {
		return
	}

	b.logger.Info("joined guild",
		slog.String("guild_id", g.ID),
		slog.String("name", g.Name),
	)

	p := b.prefix
	err := b.SendEmbed(g.SystemChannelID, &model.EmbedPayload{
		Title: "Free Fire Ban Checker",
		Description: "Thanks for adding me to your server!\n\n" +
			"**Available Commands:**\n" +
			"`" + p + "ID <player_id>` - Check ban status\n" +
			"`" + p + "setchannel` - Set restricted channel (Admin only)\n" +
			"`" + p + "lang en/fr` - Set your language\n" +
			"`" + p + "guilds` - Show server count\n" +
			"`" + p + "helpchannel` - Show current channel restriction\n",
		Color:     model.ColorNeutral,
		Footer:    footerText,
		Timestamp: b.clock.Now(),
	})
	if err != nil {
		b.logger.Warn("could not send welcome message",
			slog.String("guild_id", g.ID),
			slog.String("error", err.Error()),
		)
	}
}

// onGuildRemove drops the guild's channel restriction when the bot is
// kicked
func (b *Bot) onGuildRemove(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Unavailable {
		// Outage, not a removal
		return
	}

	b.logger.Info("removed from guild", slog.String("guild_id", g.ID))

	if err := b.store.RemoveRestriction(context.Background(), g.ID); err != nil {
		b.logger.Warn("could not clean up restriction",
			slog.String("guild_id", g.ID),
			slog.String("error", err.Error()),
		)
	}
}

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore our own and other bots' messages
	if m.Author == nil || m.Author.Bot {
		return
	}

	b.router.Dispatch(context.Background(), Message{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		Username:  m.Author.Username,
		Content:   m.Content,
		IsAdmin:   b.isAdmin(m),
	}, b, b)
}

// isAdmin resolves the author's effective permissions in the invoking
// channel
func (b *Bot) isAdmin(m *discordgo.MessageCreate) bool {
	if m.GuildID == "" {
		return false
	}
	perms, err := b.session.State.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		b.logger.Warn("could not resolve permissions",
			slog.String("user_id", m.Author.ID),
			slog.String("error", err.Error()),
		)
		return false
	}
	return perms&adminPermissions != 0
}

// welcomeWindow bounds how old a GuildCreate may be to still count as a
// fresh join; startup replays every existing guild as a GuildCreate
const welcomeWindow = time.Minute

// Responder implementation

// SendText sends a plain message
func (b *Bot) SendText(channelID, content string) error {
	_, err := b.session.ChannelMessageSend(channelID, content)
	return err
}

// SendEmbed sends an embed built from a display payload
func (b *Bot) SendEmbed(channelID string, payload *model.EmbedPayload) error {
	_, err := b.session.ChannelMessageSendEmbed(channelID, toWireEmbed(payload))
	return err
}

// SendEmbedFile sends an embed with an attached file
func (b *Bot) SendEmbedFile(channelID string, payload *model.EmbedPayload, filename string, file io.Reader) error {
	_, err := b.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{toWireEmbed(payload)},
		Files: []*discordgo.File{{
			Name:   filename,
			Reader: file,
		}},
	})
	return err
}

// Typing shows the typing indicator; failures are ignored, it is cosmetic
func (b *Bot) Typing(channelID string) {
	_ = b.session.ChannelTyping(channelID)
}

// Directory implementation

// ChannelExists reports whether channelID still names a channel in the
// guild
func (b *Bot) ChannelExists(guildID, channelID string) bool {
	ch, err := b.session.State.Channel(channelID)
	if err != nil {
		ch, err = b.session.Channel(channelID)
		if err != nil {
			return false
		}
	}
	return ch.GuildID == guildID
}

// ChannelName resolves a channel's display name
func (b *Bot) ChannelName(guildID, channelID string) (string, bool) {
	ch, err := b.session.State.Channel(channelID)
	if err != nil {
		ch, err = b.session.Channel(channelID)
		if err != nil {
			return "", false
		}
	}
	if ch.GuildID != guildID {
		return "", false
	}
	return ch.Name, true
}

// GuildCount returns how many guilds the bot is joined to
func (b *Bot) GuildCount() int {
	return len(b.session.State.Guilds)
}
