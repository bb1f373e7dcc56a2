package ratelimit

import "time"

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Exact path, or a prefix when it ends with "/"
	Method string        // HTTP method
	Limit  int           // Maximum requests per window; 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// DefaultEndpointConfigs returns the per-endpoint tiers.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Rasterizing is the only CPU-heavy route.
		{Path: "/scene.png", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Projection is cheap but unbounded callers can still flood it.
		{Path: "/scene", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},

		// Snapshot reads hit the database.
		{Path: "/snapshots", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/snapshots/", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},

		{Path: "/health", Method: "GET", Limit: 0},
		// Remaining reads use the default limit.
	}
}
