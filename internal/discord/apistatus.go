package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/ffcommunity/banwatch/internal/dependencies/clock"
	"github.com/ffcommunity/banwatch/internal/model"
	"github.com/ffcommunity/banwatch/internal/services/lookup"
)

// APIStatusCommand implements !apistatus, probing each configured
// endpoint once and reporting reachability.
type APIStatusCommand struct {
	resolver *lookup.Resolver
	clock    clock.Clock
}

// NewAPIStatusCommand creates the endpoint-status command
func NewAPIStatusCommand(resolver *lookup.Resolver, clk clock.Clock) *APIStatusCommand {
	return &APIStatusCommand{resolver: resolver, clock: clk}
}

func (c *APIStatusCommand) Name() string      { return "apistatus" }
func (c *APIStatusCommand) Aliases() []string { return nil }
func (c *APIStatusCommand) AdminOnly() bool   { return false }
func (c *APIStatusCommand) BypassGate() bool  { return false }

func (c *APIStatusCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	cmdCtx.Out.Typing(cmdCtx.Message.ChannelID)

	statuses := c.resolver.Ping(ctx)

	var b strings.Builder
	reachable := 0
	for _, st := range statuses {
		if st.Reachable {
			reachable++
			fmt.Fprintf(&b, "✅ `%s` (HTTP %d, %dms)\n", st.URL, st.StatusCode, st.Latency.Milliseconds())
		} else {
			fmt.Fprintf(&b, "❌ `%s` — unreachable\n", st.URL)
		}
	}

	if c.resolver.MockEnabled() {
		b.WriteString("\nDemo-mode fallback is **enabled** when all endpoints are down.")
	} else {
		b.WriteString("\nDemo-mode fallback is **disabled**.")
	}

	color := model.ColorClean
	if reachable == 0 {
		color = model.ColorBanned
	} else if reachable < len(statuses) {
		color = model.ColorWarning
	}

	return cmdCtx.ReplyEmbed(&model.EmbedPayload{
		Title:       "📡 API Status",
		Description: b.String(),
		Color:       color,
		Footer:      footerText,
		Timestamp:   c.clock.Now(),
	})
}
