package memory

import (
	"context"
	"sync"

	"github.com/ffcommunity/banwatch/internal/storage"
)

// Storage is an in-memory implementation of the restriction store
type Storage struct {
	mu           sync.RWMutex
	restrictions map[string]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		restrictions: make(map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) Restrictions(ctx context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.restrictions))
	for guildID, channelID := range s.restrictions {
		out[guildID] = channelID
	}
	return out, nil
}

func (s *Storage) Restriction(ctx context.Context, guildID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	channelID, ok := s.restrictions[guildID]
	return channelID, ok, nil
}

func (s *Storage) SetRestriction(ctx context.Context, guildID, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.restrictions[guildID] = channelID
	return nil
}

func (s *Storage) RemoveRestriction(ctx context.Context, guildID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.restrictions, guildID)
	return nil
}
