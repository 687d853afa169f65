package discord

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ffcommunity/banwatch/internal/dependencies/mocks"
	"github.com/ffcommunity/banwatch/internal/model"
	"github.com/ffcommunity/banwatch/internal/services/format"
	"github.com/ffcommunity/banwatch/internal/services/gate"
	"github.com/ffcommunity/banwatch/internal/services/lookup"
	"github.com/ffcommunity/banwatch/internal/services/prefs"
	"github.com/ffcommunity/banwatch/internal/storage/memory"
	"github.com/ffcommunity/banwatch/internal/testutil"
)

// recordingResponder captures everything a command sends
type recordingResponder struct {
	texts  []string
	embeds []*model.EmbedPayload
	files  []string
	typing int
}

func (r *recordingResponder) SendText(channelID, content string) error {
	r.texts = append(r.texts, content)
	return nil
}

func (r *recordingResponder) SendEmbed(channelID string, payload *model.EmbedPayload) error {
	r.embeds = append(r.embeds, payload)
	return nil
}

func (r *recordingResponder) SendEmbedFile(channelID string, payload *model.EmbedPayload, filename string, file io.Reader) error {
	r.embeds = append(r.embeds, payload)
	r.files = append(r.files, filename)
	return nil
}

func (r *recordingResponder) Typing(channelID string) {
	r.typing++
}

// stubDirectory serves channel lookups from fixed maps
type stubDirectory struct {
	channels map[string]string // guildID/channelID -> name
	guilds   int
}

func (d *stubDirectory) ChannelExists(guildID, channelID string) bool {
	_, ok := d.channels[guildID+"/"+channelID]
	return ok
}

func (d *stubDirectory) ChannelName(guildID, channelID string) (string, bool) {
	name, ok := d.channels[guildID+"/"+channelID]
	return name, ok
}

func (d *stubDirectory) GuildCount() int {
	return d.guilds
}

// panicCommand always panics, for handler-boundary tests
type panicCommand struct{}

func (c *panicCommand) Name() string      { return "boom" }
func (c *panicCommand) Aliases() []string { return nil }
func (c *panicCommand) AdminOnly() bool   { return false }
func (c *panicCommand) BypassGate() bool  { return true }
func (c *panicCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	panic("kaboom")
}

type RouterSuite struct {
	suite.Suite
	storage   *memory.Storage
	prefs     *prefs.Service
	clock     *mocks.MockClock
	out       *recordingResponder
	dir       *stubDirectory
	router    *Router
	endpoint  *httptest.Server
	hits      atomic.Int32
	ctx       context.Context
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.storage = memory.New()
	s.prefs = prefs.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.out = &recordingResponder{}
	s.dir = &stubDirectory{channels: make(map[string]string), guilds: 3}
	s.hits.Store(0)
	s.ctx = context.Background()

	s.endpoint = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		w.Write([]byte(`{"id": "123456789", "name": "Striker", "banned": true}`))
	}))

	logger := testutil.NopLogger()
	resolver := lookup.New(lookup.Config{
		Endpoints:         []string{s.endpoint.URL + "/"},
		AllowMockFallback: true,
		RequestTimeout:    2 * time.Second,
		ConnectTimeout:    time.Second,
	}, s.clock, logger)

	s.router = NewRouter("!", gate.New(s.storage, logger), s.prefs, logger)
	s.router.Register(NewCheckBanCommand(resolver, s.T().TempDir(), logger))
	s.router.Register(NewLangCommand(s.prefs))
	s.router.Register(NewGuildsCommand(s.clock))
	s.router.Register(NewSetChannelCommand(s.storage, s.clock, logger))
	s.router.Register(NewRemoveChannelCommand(s.storage, s.clock, logger))
	s.router.Register(NewHelpChannelCommand(s.storage, s.clock))
	s.router.Register(NewBotInfoCommand("!", s.clock))
	s.router.Register(NewPingCommand())
	s.router.Register(NewAPIStatusCommand(resolver, s.clock))
	s.router.Register(&panicCommand{})
}

func (s *RouterSuite) TearDownTest() {
	if s.endpoint != nil {
		s.endpoint.Close()
	}
}

func (s *RouterSuite) dispatch(content string) {
	s.dispatchFrom("guild-1", "chan-a", "user-1", false, content)
}

func (s *RouterSuite) dispatchFrom(guildID, channelID, userID string, admin bool, content string) {
	s.router.Dispatch(s.ctx, Message{
		GuildID:   guildID,
		ChannelID: channelID,
		UserID:    userID,
		Username:  "alice",
		Content:   content,
		IsAdmin:   admin,
	}, s.out, s.dir)
}

// Dispatch basics

func (s *RouterSuite) TestIgnoresUnprefixedMessages() {
	s.dispatch("hello there")
	s.Empty(s.out.texts)
	s.Empty(s.out.embeds)
}

func (s *RouterSuite) TestIgnoresUnknownCommands() {
	s.dispatch("!nosuchcommand")
	s.Empty(s.out.texts)
	s.Empty(s.out.embeds)
}

func (s *RouterSuite) TestCommandNameIsCaseInsensitive() {
	s.dispatch("!id 123456789")
	s.Require().Len(s.out.embeds, 1)
}

// !ID

func (s *RouterSuite) TestCheckBanHappyPath() {
	s.dispatch("!ID 123456789")

	s.Require().Len(s.out.embeds, 1)
	payload := s.out.embeds[0]
	s.Contains(payload.Title, "Account Banned")
	s.Equal(model.ColorBanned, payload.Color)
	s.Equal(1, s.out.typing)
	s.Equal(int32(1), s.hits.Load())
}

func (s *RouterSuite) TestCheckBanMissingArgument() {
	s.dispatch("!ID")

	s.Require().Len(s.out.texts, 1)
	s.Contains(s.out.texts[0], "provide a player ID")
	s.Equal(int32(0), s.hits.Load())
}

func (s *RouterSuite) TestCheckBanInvalidIDSkipsLookup() {
	s.dispatch("!ID 12")

	s.Require().Len(s.out.texts, 1)
	s.Contains(s.out.texts[0], "6-20 digits")
	// No HTTP call is attempted for an invalid identifier
	s.Equal(int32(0), s.hits.Load())
}

func (s *RouterSuite) TestCheckBanFrenchPreference() {
	s.Require().NoError(s.prefs.SetLanguage("user-1", model.LangFrench))

	s.dispatch("!ID 123456789")

	s.Require().Len(s.out.embeds, 1)
	s.Contains(s.out.embeds[0].Title, "Compte Banni")
}

func (s *RouterSuite) TestCheckBanMockFallbackIsStable() {
	s.endpoint.Close()

	s.dispatch("!ID 123456")
	s.dispatch("!ID 123456")

	s.Require().Len(s.out.embeds, 2)
	s.Equal(s.out.embeds[0].Title, s.out.embeds[1].Title)
	s.Contains(s.out.embeds[0].Footer, format.DemoMarker)
}

// Channel gate

func (s *RouterSuite) TestGateDeniesOutsideRestrictedChannel() {
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-a"))
	s.dir.channels["guild-1/chan-a"] = "bots"

	s.dispatchFrom("guild-1", "chan-b", "user-1", false, "!ID 123456789")

	s.Require().Len(s.out.texts, 1)
	s.Contains(s.out.texts[0], "<#chan-a>")
	s.Equal(int32(0), s.hits.Load())
}

func (s *RouterSuite) TestGateStaleChannelAsksForReset() {
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-gone"))

	s.dispatchFrom("guild-1", "chan-b", "user-1", false, "!ID 123456789")

	s.Require().Len(s.out.texts, 1)
	s.Contains(s.out.texts[0], "no longer exists")
}

func (s *RouterSuite) TestGateAllowsAfterRemoval() {
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-a"))
	s.Require().NoError(s.storage.RemoveRestriction(s.ctx, "guild-1"))

	s.dispatchFrom("guild-1", "chan-b", "user-1", false, "!ID 123456789")

	s.Require().Len(s.out.embeds, 1)
}

func (s *RouterSuite) TestGateSkippedForDirectMessages() {
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-a"))

	s.dispatchFrom("", "dm-chan", "user-1", false, "!ping")

	s.Require().Len(s.out.texts, 1)
	s.Contains(s.out.texts[0], "Pong")
}

// Admin guard

func (s *RouterSuite) TestSetChannelRequiresAdmin() {
	s.dispatchFrom("guild-1", "chan-a", "user-1", false, "!setchannel")

	s.Require().Len(s.out.texts, 1)
	s.Contains(s.out.texts[0], "Administrator")

	_, ok, err := s.storage.Restriction(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RouterSuite) TestSetChannelAsAdmin() {
	s.dispatchFrom("guild-1", "chan-a", "admin-1", true, "!setchannel")

	s.Require().Len(s.out.embeds, 1)
	s.Contains(s.out.embeds[0].Title, "Restriction Set")

	channelID, ok, err := s.storage.Restriction(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("chan-a", channelID)
}

func (s *RouterSuite) TestSetChannelWorksOutsideRestrictedChannel() {
	// An admin must be able to move the restriction from anywhere
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-a"))

	s.dispatchFrom("guild-1", "chan-b", "admin-1", true, "!setchannel")

	channelID, _, err := s.storage.Restriction(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Equal("chan-b", channelID)
}

func (s *RouterSuite) TestRemoveChannelWithoutRestriction() {
	s.dispatchFrom("guild-1", "chan-a", "admin-1", true, "!removechannel")

	s.Require().Len(s.out.texts, 1)
	s.Contains(s.out.texts[0], "No channel restriction")
}

func (s *RouterSuite) TestRemoveChannelClearsRestriction() {
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-a"))

	s.dispatchFrom("guild-1", "chan-a", "admin-1", true, "!removechannel")

	s.Require().Len(s.out.embeds, 1)
	_, ok, err := s.storage.Restriction(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.False(ok)
}

// !helpchannel

func (s *RouterSuite) TestHelpChannelUnrestricted() {
	s.dispatch("!helpchannel")

	s.Require().Len(s.out.embeds, 1)
	s.Contains(s.out.embeds[0].Description, "No channel restriction")
	s.Equal(model.ColorNeutral, s.out.embeds[0].Color)
}

func (s *RouterSuite) TestHelpChannelLiveRestriction() {
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-a"))
	s.dir.channels["guild-1/chan-a"] = "bots"

	s.dispatch("!helpchannel")

	s.Require().Len(s.out.embeds, 1)
	s.Contains(s.out.embeds[0].Description, "bots")
	s.Equal(model.ColorWarning, s.out.embeds[0].Color)
}

func (s *RouterSuite) TestHelpChannelStaleRestriction() {
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-gone"))

	s.dispatch("!helpchannel")

	s.Require().Len(s.out.embeds, 1)
	s.Contains(s.out.embeds[0].Description, "no longer exists")
	s.Equal(model.ColorBanned, s.out.embeds[0].Color)
}

// !lang

func (s *RouterSuite) TestLangReportsCurrentPreference() {
	s.dispatch("!lang")

	s.Require().Len(s.out.texts, 1)
	s.Contains(s.out.texts[0], "`en`")
}

func (s *RouterSuite) TestLangSetsPreference() {
	s.dispatch("!lang fr")

	s.Require().Len(s.out.texts, 1)
	s.Contains(s.out.texts[0], "Français")
	s.Equal(model.LangFrench, s.prefs.Language("user-1"))
}

func (s *RouterSuite) TestLangRejectsUnknownCode() {
	s.dispatch("!lang de")

	s.Require().Len(s.out.texts, 1)
	s.Contains(s.out.texts[0], "Available languages")
	s.Equal(model.DefaultLang, s.prefs.Language("user-1"))
}

// Misc commands

func (s *RouterSuite) TestGuildsReportsCount() {
	s.dispatch("!guilds")

	s.Require().Len(s.out.embeds, 1)
	s.Contains(s.out.embeds[0].Description, "**3**")
}

func (s *RouterSuite) TestAPIStatusReportsEndpoints() {
	s.dispatch("!apistatus")

	s.Require().Len(s.out.embeds, 1)
	s.Contains(s.out.embeds[0].Description, "✅")
	s.Equal(model.ColorClean, s.out.embeds[0].Color)
}

// Failure handling

func (s *RouterSuite) TestPanicIsRecoveredAndReported() {
	s.NotPanics(func() {
		s.dispatch("!boom")
	})

	s.Require().Len(s.out.texts, 1)
	s.Contains(s.out.texts[0], "unexpected error")
}
