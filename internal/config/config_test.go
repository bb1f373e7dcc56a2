package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swingtrack/swing-pose/internal/projection"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
	assert.Equal(t, projection.DefaultCamera(), cfg.CameraValue())
	assert.Equal(t, projection.Viewport{Width: 390, Height: 320}, cfg.ViewportValue())
	assert.Equal(t, projection.DefaultGrid(), cfg.GridValue())
	assert.Equal(t, "#2B2F35", cfg.Render.Background)
	assert.Equal(t, "#F2F6FA", cfg.Render.JointColor)
	assert.Equal(t, 4, cfg.Render.Concurrency)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 600, cfg.RateLimit.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.DefaultWindow)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.CleanupInterval)
	assert.Empty(t, cfg.RateLimit.Whitelist)
	assert.Empty(t, cfg.Database.URL)
}

func TestLoad_JSONFile(t *testing.T) {
	content := `{
		"logLevel": "debug",
		"camera": { "position": [0, 1.5, 4], "target": [0, 1, 0] },
		"viewport": { "width": 640, "height": 480 },
		"grid": { "divisions": 12 },
		"server": { "port": 9090 },
		"rateLimit": { "defaultLimit": 120, "defaultWindow": "30s", "blacklist": ["203.0.113.7"] }
	}`

	path := filepath.Join(t.TempDir(), "swing_pose.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []float64{0, 1.5, 4}, cfg.Camera.Position)
	assert.Equal(t, 640, cfg.Viewport.Width)
	assert.Equal(t, 12, cfg.Grid.Divisions)
	assert.Equal(t, projection.DefaultGridSize, cfg.Grid.Size)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 120, cfg.RateLimit.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.DefaultWindow)
	assert.Equal(t, []string{"203.0.113.7"}, cfg.RateLimit.Blacklist)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SWING_POSE_SERVER_PORT", "7070")
	t.Setenv("SWING_POSE_DATABASE_URL", "postgres://localhost/swing")
	t.Setenv("SWING_POSE_LOGJSON", "true")
	t.Setenv("SWING_POSE_RATELIMIT_DEFAULTLIMIT", "42")
	t.Setenv("SWING_POSE_RATELIMIT_CLEANUPINTERVAL", "90s")
	t.Setenv("SWING_POSE_RATELIMIT_WHITELIST", "10.0.0.1,10.0.0.2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.RateLimit.DefaultLimit)
	assert.Equal(t, 90*time.Second, cfg.RateLimit.CleanupInterval)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RateLimit.Whitelist)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/swing", cfg.Database.URL)
	assert.True(t, cfg.LogJSON)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/swing_pose.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"log level", `{"logLevel": "loud"}`},
		{"camera arity", `{"camera": {"position": [1, 2]}}`},
		{"viewport", `{"viewport": {"width": 0}}`},
		{"grid size", `{"grid": {"size": -1}}`},
		{"background", `{"render": {"background": "grey"}}`},
		{"concurrency", `{"render": {"concurrency": 0}}`},
		{"port", `{"server": {"port": 70000}}`},
		{"rate limit window", `{"rateLimit": {"defaultWindow": "0s"}}`},
		{"rate limit negative", `{"rateLimit": {"defaultLimit": -1}}`},
		{"whitelist entry", `{"rateLimit": {"whitelist": ["not-an-ip"]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "swing_pose.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := Load(path)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "config error")
		})
	}
}

func TestCameraValue_BadArity(t *testing.T) {
	cfg := Config{Camera: CameraConfig{Position: []float64{1}}}
	assert.Equal(t, projection.Camera{}, cfg.CameraValue())
}

func TestLoad_RateLimitDisabledByEnv(t *testing.T) {
	t.Setenv("SWING_POSE_RATELIMIT_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.RateLimit.Enabled)

	rl := cfg.RateLimitValue()
	assert.False(t, rl.Enabled)
	assert.Empty(t, rl.EndpointConfigs)
}

func TestRateLimitValue(t *testing.T) {
	cfg := Config{RateLimit: RateLimitConfig{
		Enabled:         true,
		DefaultLimit:    50,
		DefaultWindow:   time.Minute,
		CleanupInterval: 2 * time.Minute,
		Whitelist:       []string{"10.0.0.1"},
		Blacklist:       []string{"203.0.113.7", "2001:db8::1"},
	}}

	rl := cfg.RateLimitValue()
	assert.True(t, rl.Enabled)
	assert.Equal(t, 50, rl.DefaultLimit)
	assert.Equal(t, time.Minute, rl.DefaultWindow)
	assert.Equal(t, 2*time.Minute, rl.CleanupInterval)
	assert.Equal(t, map[string]bool{"10.0.0.1": true}, rl.Whitelist)
	assert.True(t, rl.Blacklist["2001:db8::1"])
	assert.Len(t, rl.Blacklist, 2)
	assert.NotEmpty(t, rl.EndpointConfigs)
}
