package storage

import "context"

// Store defines the interface for persisting the per-guild channel
// restriction map. Absence of a guild key means the guild is unrestricted.
type Store interface {
	// Restrictions returns the full guild -> channel map
	Restrictions(ctx context.Context) (map[string]string, error)

	// Restriction returns the allowed channel for a guild, if one is set
	Restriction(ctx context.Context, guildID string) (string, bool, error)

	// SetRestriction limits a guild's commands to a single channel
	SetRestriction(ctx context.Context, guildID, channelID string) error

	// RemoveRestriction lifts a guild's restriction. Removing a guild
	// with no restriction is not an error.
	RemoveRestriction(ctx context.Context, guildID string) error
}
