// Package i18n holds the static translation table for user-facing strings.
// The table is read-only after process start.
package i18n

import "github.com/ffcommunity/banwatch/internal/model"

// VerdictText is the template bundle for one lookup verdict
type VerdictText struct {
	Title       string
	Description string
	Footer      string
}

// FieldLabels names the three embed fields, in display order
type FieldLabels struct {
	PlayerID   string
	PlayerName string
	Status     string
}

// ErrorText holds user-facing error strings
type ErrorText struct {
	MissingID  string
	InvalidID  string
	APIError   string
	Unexpected string
}

// GuildsText holds strings for the server-count command
type GuildsText struct {
	Title       string
	Description string // printf format, takes the guild count
}

// Bundle is the full set of translated strings for one language
type Bundle struct {
	Banned      VerdictText
	NotBanned   VerdictText
	Fields      FieldLabels
	Errors      ErrorText
	LanguageSet string
	Guilds      GuildsText
}

var bundles = map[model.Lang]Bundle{
	model.LangEnglish: {
		Banned: VerdictText{
			Title:       "Account Banned",
			Description: "This player account has been **permanently banned** from Free Fire.",
			Footer:      "Violation detected",
		},
		NotBanned: VerdictText{
			Title:       "Account Clean",
			Description: "This player account is **not banned** and can play normally.",
			Footer:      "No violations found",
		},
		Fields: FieldLabels{
			PlayerID:   "Player ID",
			PlayerName: "Player Name",
			Status:     "Ban Status",
		},
		Errors: ErrorText{
			MissingID:  "Please provide a player ID. Usage: `!ID <player_id>`",
			InvalidID:  "Player ID must be 6-20 digits.",
			APIError:   "Unable to check ban status at this time. Please try again later.",
			Unexpected: "An unexpected error occurred. Please try again.",
		},
		LanguageSet: "Your language has been set to English.",
		Guilds: GuildsText{
			Title:       "Server Count",
			Description: "This bot is currently serving **%d** Discord servers.",
		},
	},
	model.LangFrench: {
		Banned: VerdictText{
			Title:       "Compte Banni",
			Description: "Ce compte joueur a été **définitivement banni** de Free Fire.",
			Footer:      "Violation détectée",
		},
		NotBanned: VerdictText{
			Title:       "Compte Propre",
			Description: "Ce compte joueur **n'est pas banni** et peut jouer normalement.",
			Footer:      "Aucune violation trouvée",
		},
		Fields: FieldLabels{
			PlayerID:   "ID du Joueur",
			PlayerName: "Nom du Joueur",
			Status:     "Statut du Bannissement",
		},
		Errors: ErrorText{
			MissingID:  "Veuillez fournir un ID joueur. Utilisation : `!ID <player_id>`",
			InvalidID:  "L'ID joueur doit contenir entre 6 et 20 chiffres.",
			APIError:   "Impossible de vérifier le statut de bannissement pour le moment. Réessayez plus tard.",
			Unexpected: "Une erreur inattendue est survenue. Veuillez réessayer.",
		},
		LanguageSet: "Votre langue a été définie sur Français.",
		Guilds: GuildsText{
			Title:       "Nombre de Serveurs",
			Description: "Ce bot est actuellement utilisé sur **%d** serveurs Discord.",
		},
	},
}

// Supported reports whether code is in the closed set of languages
func Supported(code model.Lang) bool {
	_, ok := bundles[code]
	return ok
}

// Languages returns the supported language codes in a stable order
func Languages() []model.Lang {
	return []model.Lang{model.LangEnglish, model.LangFrench}
}

// ForLang returns the bundle for a supported language code
func ForLang(code model.Lang) (Bundle, bool) {
	b, ok := bundles[code]
	return b, ok
}

// MustForLang returns the bundle for code, falling back to the default
// language when code is unknown. Use only where the caller has already
// validated the code or an approximate message is acceptable.
func MustForLang(code model.Lang) Bundle {
	if b, ok := bundles[code]; ok {
		return b
	}
	return bundles[model.DefaultLang]
}
