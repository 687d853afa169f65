package model

import "time"

// Embed color codes used for lookup results
const (
	ColorBanned  = 0xFF0000
	ColorClean   = 0x00FF00
	ColorNeutral = 0x5865F2
	ColorWarning = 0xFFA500
)

// EmbedField is one labelled value inside an embed payload
type EmbedField struct {
	Label  string
	Value  string
	Inline bool
}

// EmbedPayload is the structured display message built for the user.
// It is transport-agnostic; the discord layer converts it to the wire
// embed type, and the CLI renders it as text.
type EmbedPayload struct {
	Title       string
	Description string
	Color       int
	Fields      []EmbedField
	Footer      string
	Timestamp   time.Time
}
