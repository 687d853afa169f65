package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ffcommunity/banwatch/internal/api/middleware"
	"github.com/ffcommunity/banwatch/internal/api/response"
	"github.com/ffcommunity/banwatch/internal/dependencies/clock"
	"github.com/ffcommunity/banwatch/internal/services/lookup"
)

// GuildCounter reports how many guilds the bot is currently joined to.
// The discord session implements this; tests stub it.
type GuildCounter interface {
	GuildCount() int
}

// RouterConfig holds dependencies for the health router
type RouterConfig struct {
	Logger   *slog.Logger
	Resolver *lookup.Resolver
	Guilds   GuildCounter
	Clock    clock.Clock
}

// statusBody is the GET / response shape
type statusBody struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Guilds    int    `json:"guilds"`
	Timestamp string `json:"timestamp"`
}

// apiTestBody is the GET /api-test response shape
type apiTestBody struct {
	MockEnabled bool                    `json:"mock_enabled"`
	Endpoints   []lookup.EndpointStatus `json:"endpoints"`
}

// NewRouter creates the health router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		guilds := 0
		if cfg.Guilds != nil {
			guilds = cfg.Guilds.GuildCount()
		}
		response.JSON(w, http.StatusOK, statusBody{
			Status:    "online",
			Service:   "banwatch",
			Guilds:    guilds,
			Timestamp: cfg.Clock.Now().UTC().Format(time.RFC3339),
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		response.Text(w, http.StatusOK, "OK")
	}).Methods(http.MethodGet)

	r.HandleFunc("/api-test", func(w http.ResponseWriter, req *http.Request) {
		response.JSON(w, http.StatusOK, apiTestBody{
			MockEnabled: cfg.Resolver.MockEnabled(),
			Endpoints:   cfg.Resolver.Ping(req.Context()),
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/setup", func(w http.ResponseWriter, req *http.Request) {
		response.HTML(w, http.StatusOK, setupPage)
	}).Methods(http.MethodGet)

	return r
}
