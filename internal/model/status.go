package model

import "time"

// PlayerID is the digit-string naming a player account, as supplied by the
// end user. It is validated on every use and never stored.
type PlayerID string

// String returns the raw identifier
func (id PlayerID) String() string {
	return string(id)
}

// PlayerStatus is the result of one ban-status lookup.
// It is produced by the lookup resolver and consumed once by the formatter.
type PlayerStatus struct {
	ID     PlayerID `json:"id"`
	Name   string   `json:"name"`
	Banned bool     `json:"banned"`
	// Mock is true when the record was synthesized locally because no
	// endpoint was reachable
	Mock       bool      `json:"mock"`
	ObservedAt time.Time `json:"observed_at"`
}

// Lang is a user-facing language code from the closed supported set
type Lang string

const (
	LangEnglish Lang = "en"
	LangFrench  Lang = "fr"

	// DefaultLang applies when a user has not set a preference
	DefaultLang = LangEnglish
)
