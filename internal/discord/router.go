package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ffcommunity/banwatch/internal/i18n"
	"github.com/ffcommunity/banwatch/internal/model"
	"github.com/ffcommunity/banwatch/internal/services/gate"
	"github.com/ffcommunity/banwatch/internal/services/prefs"
)

// Router parses prefixed chat messages and dispatches them to commands,
// applying the channel gate and admin guard before each handler.
type Router struct {
	prefix   string
	cmdIndex map[string]Command

	gate   *gate.Service
	prefs  *prefs.Service
	logger *slog.Logger
}

// NewRouter creates an empty command router
func NewRouter(prefix string, gateService *gate.Service, prefService *prefs.Service, logger *slog.Logger) *Router {
	return &Router{
		prefix:   prefix,
		cmdIndex: make(map[string]Command),
		gate:     gateService,
		prefs:    prefService,
		logger:   logger,
	}
}

// Register adds a command under its name and aliases. Matching is
// case-insensitive, so !ID and !id reach the same handler.
func (r *Router) Register(cmd Command) {
	r.cmdIndex[strings.ToLower(cmd.Name())] = cmd
	for _, alias := range cmd.Aliases() {
		r.cmdIndex[strings.ToLower(alias)] = cmd
	}
}

// Dispatch routes one incoming message. Non-command messages and unknown
// commands are silently ignored. A panicking handler is recovered, logged,
// and reported to the user as a generic failure; the process never dies on
// a command.
func (r *Router) Dispatch(ctx context.Context, msg Message, out Responder, dir Directory) {
	text := strings.TrimSpace(msg.Content)
	if !strings.HasPrefix(text, r.prefix) {
		return
	}

	parts := strings.Fields(strings.TrimPrefix(text, r.prefix))
	if len(parts) == 0 {
		return
	}

	cmd, ok := r.cmdIndex[strings.ToLower(parts[0])]
	if !ok {
		return
	}

	lang := r.prefs.Language(msg.UserID)
	cmdCtx := &Context{
		Message: msg,
		Args:    parts[1:],
		Lang:    lang,
		Bundle:  i18n.MustForLang(lang),
		Out:     out,
		Dir:     dir,
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("command panicked",
				slog.String("command", cmd.Name()),
				slog.Any("error", rec),
			)
			_ = cmdCtx.Reply("💥 " + cmdCtx.Bundle.Errors.Unexpected)
		}
	}()

	if err := r.checkAccess(ctx, cmd, cmdCtx); err != nil {
		r.logger.Info("command denied",
			slog.String("command", cmd.Name()),
			slog.String("user_id", msg.UserID),
			slog.String("error", err.Error()),
		)
		_ = cmdCtx.Reply(r.denialMessage(err))
		return
	}

	if err := cmd.Handle(ctx, cmdCtx); err != nil {
		r.logger.Error("command failed",
			slog.String("command", cmd.Name()),
			slog.String("user_id", msg.UserID),
			slog.String("error", err.Error()),
		)
		_ = cmdCtx.Reply("💥 " + cmdCtx.Bundle.Errors.Unexpected)
	}
}

// checkAccess runs the admin guard and the channel gate, in that order
func (r *Router) checkAccess(ctx context.Context, cmd Command, c *Context) error {
	if cmd.AdminOnly() && !c.Message.IsAdmin {
		return fmt.Errorf("%w: %s is admin-only", model.ErrPermissionDenied, cmd.Name())
	}

	if cmd.BypassGate() {
		return nil
	}

	decision := r.gate.Enforce(ctx, c.Message.GuildID, c.Message.ChannelID, c.Dir)
	if decision.Allowed {
		return nil
	}
	return &restrictedError{decision: decision}
}

// denialMessage maps an access error to the user-facing explanation
func (r *Router) denialMessage(err error) string {
	var restricted *restrictedError
	if errors.As(err, &restricted) {
		if restricted.decision.ChannelExists {
			return fmt.Sprintf(
				"⚠️ This bot is restricted to <#%s> only. Please use commands there.",
				restricted.decision.AllowedChannelID,
			)
		}
		return "⚠️ This bot is restricted to a specific channel, but that channel no longer exists. " +
			"Please ask an admin to use `" + r.prefix + "setchannel` to set a new one."
	}
	return "❌ You need **Administrator** permissions to use this command."
}

// restrictedError is a gate denial carrying the decision that produced it
type restrictedError struct {
	decision gate.Decision
}

func (e *restrictedError) Error() string {
	return fmt.Sprintf("%v: allowed channel %s", model.ErrChannelRestricted, e.decision.AllowedChannelID)
}

func (e *restrictedError) Unwrap() error {
	return model.ErrChannelRestricted
}
