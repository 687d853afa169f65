// Package gate decides whether a command may proceed in a given guild
// channel, based on the per-guild restriction map.
package gate

import (
	"context"
	"log/slog"

	"github.com/ffcommunity/banwatch/internal/storage"
)

// ChannelResolver answers whether a channel id still names a real channel
// in a guild. The discord session implements this; tests stub it.
type ChannelResolver interface {
	ChannelExists(guildID, channelID string) bool
}

// Decision is the outcome of enforcing the gate for one invocation
type Decision struct {
	Allowed bool

	// AllowedChannelID is the mapped channel when the gate denies
	AllowedChannelID string
	// ChannelExists reports whether the mapped channel still resolves.
	// A denial for a deleted channel tells the user the mapping is
	// stale; the mapping itself is left in place for an admin to fix.
	ChannelExists bool
}

// Service evaluates channel restrictions
type Service struct {
	store  storage.Store
	logger *slog.Logger
}

// New creates a new gate service
func New(store storage.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Allowed reports whether a command in the given channel may proceed.
// Rules, in order: direct messages (empty guild id) always pass; a guild
// with no restriction passes; otherwise only the mapped channel passes.
// A store read failure is logged and masked as unrestricted.
func (s *Service) Allowed(ctx context.Context, guildID, channelID string) bool {
	if guildID == "" {
		return true
	}

	allowed, ok, err := s.store.Restriction(ctx, guildID)
	if err != nil {
		s.logger.Error("restriction lookup failed, allowing command",
			slog.String("guild_id", guildID),
			slog.String("error", err.Error()),
		)
		return true
	}
	if !ok {
		return true
	}

	return channelID == allowed
}

// Enforce evaluates the gate and, on denial, resolves whether the mapped
// channel still exists so the caller can word the denial message.
func (s *Service) Enforce(ctx context.Context, guildID, channelID string, channels ChannelResolver) Decision {
	if s.Allowed(ctx, guildID, channelID) {
		return Decision{Allowed: true}
	}

	mapped, _, err := s.store.Restriction(ctx, guildID)
	if err != nil {
		return Decision{Allowed: true}
	}

	return Decision{
		Allowed:          false,
		AllowedChannelID: mapped,
		ChannelExists:    channels != nil && channels.ChannelExists(guildID, mapped),
	}
}
