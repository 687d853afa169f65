// Package prefs tracks per-user language preferences. Preferences live for
// the process lifetime only and reset on restart.
package prefs

import (
	"sync"

	"github.com/ffcommunity/banwatch/internal/i18n"
	"github.com/ffcommunity/banwatch/internal/model"
)

// Service holds the user -> language map
type Service struct {
	mu        sync.RWMutex
	languages map[string]model.Lang
}

// New creates a new preference service
func New() *Service {
	return &Service{
		languages: make(map[string]model.Lang),
	}
}

// Language returns the user's preferred language, or the default when the
// user has not set one.
func (s *Service) Language(userID string) model.Lang {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if lang, ok := s.languages[userID]; ok {
		return lang
	}
	return model.DefaultLang
}

// SetLanguage records a user's preference. Unknown codes are rejected with
// model.ErrUnknownLanguage.
func (s *Service) SetLanguage(userID string, lang model.Lang) error {
	if !i18n.Supported(lang) {
		return model.ErrUnknownLanguage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.languages[userID] = lang
	return nil
}
