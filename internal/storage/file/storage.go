// Package file implements the restriction store as a single JSON document
// rewritten wholesale on every mutation.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ffcommunity/banwatch/internal/dependencies/clock"
	"github.com/ffcommunity/banwatch/internal/storage"
)

// document is the on-disk config schema
type document struct {
	AllowedChannels map[string]string `json:"allowed_channels"`
	UpdatedAt       string            `json:"updated_at,omitempty"`
}

// Storage persists the restriction map to a JSON file. The map is held in
// memory and flushed to disk on every mutation; load failures are masked
// so a missing or corrupt file never takes the bot down.
type Storage struct {
	path   string
	clock  clock.Clock
	logger *slog.Logger

	mu           sync.RWMutex
	restrictions map[string]string
}

// New creates a file-backed store and loads any existing config. A missing,
// unreadable, or malformed file is logged and treated as an empty map.
func New(path string, clk clock.Clock, logger *slog.Logger) *Storage {
	s := &Storage{
		path:         path,
		clock:        clk,
		logger:       logger,
		restrictions: make(map[string]string),
	}
	s.load()
	return s
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("could not read config file",
				slog.String("path", s.path),
				slog.String("error", err.Error()),
			)
		}
		return
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("config file is malformed, starting with empty map",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return
	}

	if doc.AllowedChannels != nil {
		s.restrictions = doc.AllowedChannels
	}
}

// flush rewrites the whole document. Callers must hold the write lock.
// The write goes through a temp file and rename so a crash mid-write
// cannot leave a truncated config behind.
func (s *Storage) flush() error {
	doc := document{
		AllowedChannels: s.restrictions,
		UpdatedAt:       s.clock.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".banwatch-config-*")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close config: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

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
	return s.flush()
}

func (s *Storage) RemoveRestriction(ctx context.Context, guildID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.restrictions, guildID)
	return s.flush()
}
