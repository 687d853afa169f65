// Package format turns a ban-status record into a display payload in the
// user's language.
package format

import (
	"fmt"

	"github.com/ffcommunity/banwatch/internal/i18n"
	"github.com/ffcommunity/banwatch/internal/model"
)

// DemoMarker is appended to the footer of synthesized records
const DemoMarker = "Demo mode"

// Emoji prefixes for the verdict title
const (
	bannedEmoji    = "\U0001F6AB" // no entry sign
	notBannedEmoji = "✅"     // check mark
)

// Build maps a status record and a language code to a display payload.
// It is pure: the same record and language always produce the same
// payload. The caller must have validated lang against the supported set;
// an unknown code is a precondition violation and fails with
// model.ErrUnknownLanguage.
func Build(record *model.PlayerStatus, lang model.Lang) (*model.EmbedPayload, error) {
	bundle, ok := i18n.ForLang(lang)
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownLanguage, lang)
	}

	verdict := bundle.NotBanned
	color := model.ColorClean
	emoji := notBannedEmoji
	if record.Banned {
		verdict = bundle.Banned
		color = model.ColorBanned
		emoji = bannedEmoji
	}

	footer := verdict.Footer
	if record.Mock {
		footer += " • " + DemoMarker
	}

	return &model.EmbedPayload{
		Title: emoji + " " + verdict.Title,
		Color: color,
		Fields: []model.EmbedField{
			{Label: bundle.Fields.PlayerID, Value: "`" + record.ID.String() + "`", Inline: true},
			{Label: bundle.Fields.PlayerName, Value: record.Name, Inline: true},
			{Label: bundle.Fields.Status, Value: verdict.Description, Inline: false},
		},
		Footer:    footer,
		Timestamp: record.ObservedAt,
	}, nil
}
