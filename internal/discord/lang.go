package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ffcommunity/banwatch/internal/i18n"
	"github.com/ffcommunity/banwatch/internal/model"
	"github.com/ffcommunity/banwatch/internal/services/prefs"
)

// LangCommand implements !lang [en|fr]
type LangCommand struct {
	prefs *prefs.Service
}

// NewLangCommand creates the language preference command
func NewLangCommand(prefService *prefs.Service) *LangCommand {
	return &LangCommand{prefs: prefService}
}

func (c *LangCommand) Name() string      { return "lang" }
func (c *LangCommand) Aliases() []string { return []string{"language"} }
func (c *LangCommand) AdminOnly() bool   { return false }
func (c *LangCommand) BypassGate() bool  { return false }

func (c *LangCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	// No argument reports the current preference
	if len(cmdCtx.Args) == 0 {
		return cmdCtx.Reply(fmt.Sprintf("ℹ️ Current language: `%s`", cmdCtx.Lang))
	}

	code := model.Lang(strings.ToLower(strings.TrimSpace(cmdCtx.Args[0])))
	if err := c.prefs.SetLanguage(cmdCtx.Message.UserID, code); err != nil {
		if errors.Is(err, model.ErrUnknownLanguage) {
			return cmdCtx.Reply("⚠️ Available languages: `en` (English) or `fr` (French)")
		}
		return err
	}

	// Confirm in the newly selected language
	return cmdCtx.Reply("✅ " + i18n.MustForLang(code).LanguageSet)
}
