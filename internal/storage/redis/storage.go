// Package redis implements the restriction store over a Redis hash, for
// deployments where the bot's filesystem is not durable.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ffcommunity/banwatch/internal/storage"
)

// restrictionsKey is the hash holding guild id -> allowed channel id
const restrictionsKey = "banwatch:allowed_channels"

// Storage is a Redis-backed implementation of the restriction store
type Storage struct {
	client *redis.Client
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) Restrictions(ctx context.Context) (map[string]string, error) {
	out, err := s.client.HGetAll(ctx, restrictionsKey).Result()
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Storage) Restriction(ctx context.Context, guildID string) (string, bool, error) {
	channelID, err := s.client.HGet(ctx, restrictionsKey, guildID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return channelID, true, nil
}

func (s *Storage) SetRestriction(ctx context.Context, guildID, channelID string) error {
	return s.client.HSet(ctx, restrictionsKey, guildID, channelID).Err()
}

func (s *Storage) RemoveRestriction(ctx context.Context, guildID string) error {
	return s.client.HDel(ctx, restrictionsKey, guildID).Err()
}
