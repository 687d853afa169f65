// Package lookup resolves a player identifier to a ban-status record by
// querying the configured HTTP endpoints in order, with an optional
// deterministic mock fallback when no endpoint is reachable.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ffcommunity/banwatch/internal/dependencies/clock"
	"github.com/ffcommunity/banwatch/internal/model"
)

// Config holds resolver behavior settings
type Config struct {
	// Endpoints are URL templates tried in order; the player id is
	// appended to the path. Attempts are sequential and stop at the
	// first accepted response.
	Endpoints []string

	// AllowMockFallback enables synthesized status records when every
	// endpoint fails
	AllowMockFallback bool

	// RequestTimeout bounds one full endpoint attempt
	RequestTimeout time.Duration
	// ConnectTimeout bounds dialing and response headers separately
	ConnectTimeout time.Duration
}

// DefaultConfig returns the defensive timeout settings
func DefaultConfig() Config {
	return Config{
		Endpoints:         []string{"http://raw.thug4ff.com/check_ban/check_ban/"},
		AllowMockFallback: true,
		RequestTimeout:    10 * time.Second,
		ConnectTimeout:    5 * time.Second,
	}
}

// Resolver performs ban-status lookups
type Resolver struct {
	cfg    Config
	client *http.Client
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a resolver with its own HTTP client built from cfg
func New(cfg Config, clk clock.Clock, logger *slog.Logger) *Resolver {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: cfg.ConnectTimeout,
			}).DialContext,
			ResponseHeaderTimeout: cfg.ConnectTimeout,
		},
	}
	return NewWithClient(cfg, client, clk, logger)
}

// NewWithClient creates a resolver with an existing HTTP client (for testing)
func NewWithClient(cfg Config, client *http.Client, clk clock.Clock, logger *slog.Logger) *Resolver {
	return &Resolver{
		cfg:    cfg,
		client: client,
		clock:  clk,
		logger: logger,
	}
}

// statusResponse is the remote JSON schema. Only id is required; anything
// missing it is treated as a failed attempt rather than an answer.
type statusResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Banned bool   `json:"banned"`
}

// Resolve looks up the ban status for id. Endpoints are attempted once
// each, in order; the first accepted response wins. When every endpoint
// fails, a deterministic mock record is returned if mock fallback is
// enabled, otherwise model.ErrLookupUnavailable.
//
// The caller is expected to have validated id; digits-only identifiers
// make the path concatenation below safe without URL encoding.
func (r *Resolver) Resolve(ctx context.Context, id model.PlayerID) (*model.PlayerStatus, error) {
	for _, endpoint := range r.cfg.Endpoints {
		status, err := r.fetch(ctx, endpoint, id)
		if err != nil {
			r.logger.Warn("endpoint attempt failed",
				slog.String("endpoint", endpoint),
				slog.String("player_id", id.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		return status, nil
	}

	if r.cfg.AllowMockFallback {
		r.logger.Info("all endpoints failed, using mock fallback",
			slog.String("player_id", id.String()),
		)
		return r.mockStatus(id), nil
	}

	return nil, model.ErrLookupUnavailable
}

// fetch performs one endpoint attempt
func (r *Resolver) fetch(ctx context.Context, endpoint string, id model.PlayerID) (*model.PlayerStatus, error) {
	url := endpoint + id.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var parsed statusResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}
	if parsed.ID == "" {
		return nil, model.ErrMalformedStatus
	}

	name := parsed.Name
	if name == "" {
		name = "Unknown"
	}

	return &model.PlayerStatus{
		ID:         model.PlayerID(parsed.ID),
		Name:       name,
		Banned:     parsed.Banned,
		ObservedAt: r.clock.Now(),
	}, nil
}

// maxBodyBytes caps a status response body; real payloads are tiny
const maxBodyBytes = 1 << 20
