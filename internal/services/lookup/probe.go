package lookup

import (
	"context"
	"net/http"
	"time"
)

// probeID is a fixed well-formed identifier used for reachability checks
const probeID = "123456789"

// EndpointStatus is the outcome of probing one endpoint
type EndpointStatus struct {
	URL        string        `json:"url"`
	Reachable  bool          `json:"reachable"`
	StatusCode int           `json:"status_code,omitempty"`
	Latency    time.Duration `json:"latency_ns"`
	Error      string        `json:"error,omitempty"`
}

// Ping probes every configured endpoint once, in order, and reports
// per-endpoint reachability. A non-200 answer still counts as reachable;
// only transport failures do not.
func (r *Resolver) Ping(ctx context.Context) []EndpointStatus {
	out := make([]EndpointStatus, 0, len(r.cfg.Endpoints))

	for _, endpoint := range r.cfg.Endpoints {
		status := EndpointStatus{URL: endpoint}
		start := time.Now()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+probeID, nil)
		if err != nil {
			status.Error = err.Error()
			out = append(out, status)
			continue
		}

		resp, err := r.client.Do(req)
		status.Latency = time.Since(start)
		if err != nil {
			status.Error = err.Error()
			out = append(out, status)
			continue
		}
		resp.Body.Close()

		status.Reachable = true
		status.StatusCode = resp.StatusCode
		out = append(out, status)
	}

	return out
}

// MockEnabled reports whether the resolver will fall back to demo data
func (r *Resolver) MockEnabled() bool {
	return r.cfg.AllowMockFallback
}

// Endpoints returns the configured endpoint templates
func (r *Resolver) Endpoints() []string {
	return append([]string(nil), r.cfg.Endpoints...)
}
