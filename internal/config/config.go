// Package config loads process configuration from defaults, an optional config file and
// SWING_POSE_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/swingtrack/swing-pose/internal/geometry"
	"github.com/swingtrack/swing-pose/internal/projection"
	"github.com/swingtrack/swing-pose/internal/server/ratelimit"
)

// EnvPrefix is prepended to every environment override, e.g. SWING_POSE_SERVER_PORT.
const EnvPrefix = "SWING_POSE"

// MaxViewportSide bounds both viewport dimensions.
const MaxViewportSide = 8192

// Config is the full process configuration.
type Config struct {
	LogLevel  string          `mapstructure:"logLevel" validate:"oneof=TRACE DEBUG INFO WARN ERROR trace debug info warn error"`
	LogJSON   bool            `mapstructure:"logJSON"`
	Camera    CameraConfig    `mapstructure:"camera"`
	Viewport  ViewportConfig  `mapstructure:"viewport"`
	Grid      GridConfig      `mapstructure:"grid"`
	Render    RenderConfig    `mapstructure:"render"`
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
	Database  DatabaseConfig  `mapstructure:"database"`
}

// CameraConfig holds the eye and look-at points as [x, y, z].
type CameraConfig struct {
	Position []float64 `mapstructure:"position" validate:"len=3"`
	Target   []float64 `mapstructure:"target" validate:"len=3"`
}

// ViewportConfig is the output size in pixels.
type ViewportConfig struct {
	Width  int `mapstructure:"width" validate:"gt=0,lte=8192"`
	Height int `mapstructure:"height" validate:"gt=0,lte=8192"`
}

// GridConfig is the ground grid.
type GridConfig struct {
	Size      float64 `mapstructure:"size" validate:"gt=0"`
	Divisions int     `mapstructure:"divisions" validate:"gte=0,lte=240"`
}

// RenderConfig controls PNG output.
type RenderConfig struct {
	Background  string `mapstructure:"background" validate:"hexcolor"`
	JointColor  string `mapstructure:"jointColor" validate:"hexcolor"`
	Concurrency int    `mapstructure:"concurrency" validate:"gte=1,lte=64"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
}

// RateLimitConfig controls per-client throttling of the HTTP API. Per-endpoint tiers are
// fixed in the ratelimit package; the limit and window here apply to every other route.
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"defaultLimit" validate:"gte=0"`
	DefaultWindow   time.Duration `mapstructure:"defaultWindow" validate:"gt=0"`
	CleanupInterval time.Duration `mapstructure:"cleanupInterval" validate:"gte=0"`
	Whitelist       []string      `mapstructure:"whitelist" validate:"dive,ip"`
	Blacklist       []string      `mapstructure:"blacklist" validate:"dive,ip"`
}

// DatabaseConfig locates the snapshot store. An empty URL disables it.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// SetDefaults registers a default for every key. Keys without a default are invisible to
// environment overrides.
func SetDefaults(v *viper.Viper) {
	camera := projection.DefaultCamera()
	grid := projection.DefaultGrid()

	v.SetDefault("logLevel", "INFO")
	v.SetDefault("logJSON", false)

	v.SetDefault("camera.position", vecSlice(camera.Position))
	v.SetDefault("camera.target", vecSlice(camera.Target))

	v.SetDefault("viewport.width", 390)
	v.SetDefault("viewport.height", 320)

	v.SetDefault("grid.size", grid.Size)
	v.SetDefault("grid.divisions", grid.Divisions)

	v.SetDefault("render.background", "#2B2F35")
	v.SetDefault("render.jointColor", projection.DefaultPalette().Joint)
	v.SetDefault("render.concurrency", 4)

	v.SetDefault("server.port", 8080)

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.defaultLimit", 600)
	v.SetDefault("rateLimit.defaultWindow", time.Minute)
	v.SetDefault("rateLimit.cleanupInterval", 5*time.Minute)
	v.SetDefault("rateLimit.whitelist", []string{})
	v.SetDefault("rateLimit.blacklist", []string{})

	v.SetDefault("database.url", "")
}

// Load reads the configuration. path may be empty, in which case only defaults and
// environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// CameraValue converts the configured camera for the projector.
func (c *Config) CameraValue() projection.Camera {
	return projection.Camera{
		Position: sliceVec(c.Camera.Position),
		Target:   sliceVec(c.Camera.Target),
	}
}

// ViewportValue converts the configured viewport for the projector.
func (c *Config) ViewportValue() projection.Viewport {
	return projection.Viewport{Width: float64(c.Viewport.Width), Height: float64(c.Viewport.Height)}
}

// GridValue converts the configured grid for the projector.
func (c *Config) GridValue() projection.GridConfig {
	return projection.GridConfig{Size: c.Grid.Size, Divisions: c.Grid.Divisions}
}

// RateLimitValue converts the rate limit section for the server's limiter.
func (c *Config) RateLimitValue() *ratelimit.Config {
	if !c.RateLimit.Enabled {
		return &ratelimit.Config{Enabled: false}
	}
	return &ratelimit.Config{
		Enabled:         true,
		DefaultLimit:    c.RateLimit.DefaultLimit,
		DefaultWindow:   c.RateLimit.DefaultWindow,
		CleanupInterval: c.RateLimit.CleanupInterval,
		Whitelist:       ipSet(c.RateLimit.Whitelist),
		Blacklist:       ipSet(c.RateLimit.Blacklist),
		EndpointConfigs: ratelimit.DefaultEndpointConfigs(),
	}
}

func ipSet(ips []string) map[string]bool {
	set := make(map[string]bool, len(ips))
	for _, ip := range ips {
		set[ip] = true
	}
	return set
}

func vecSlice(v geometry.Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

func sliceVec(s []float64) geometry.Vec3 {
	if len(s) != 3 {
		return geometry.Zero
	}
	return geometry.Vec3{X: s[0], Y: s[1], Z: s[2]}
}
