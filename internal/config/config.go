package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment overrides.
const (
	AssetsDirEnv    = "TRANSIT_ASSETS_DIR"
	OTLPEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	ServiceNameEnv  = "OTEL_SERVICE_NAME"
)

// Duration is a time.Duration that reads and writes as a Go duration string ("360ms").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// D wraps a time.Duration.
func D(v time.Duration) Duration { return Duration{v} }

// Config represents the main configuration
type Config struct {
	PeopleFile string          `toml:"people_file"` // Optional TOML/YAML override of the built-in people data
	Timings    TimingsConfig   `toml:"timings"`
	Links      LinksConfig     `toml:"links"`
	Assets     AssetsConfig    `toml:"assets"`
	UI         UIConfig        `toml:"ui"`
	Log        LogConfig       `toml:"log"`
	Telemetry  TelemetryConfig `toml:"telemetry"`
}

// TimingsConfig holds every timed window of the choreography.
type TimingsConfig struct {
	Loader        Duration `toml:"loader"`         // Splash shown before the fade starts
	LoaderFade    Duration `toml:"loader_fade"`    // Colour fade of the splash
	LoaderRemove  Duration `toml:"loader_remove"`  // Fade start to removal
	LoaderSafety  Duration `toml:"loader_safety"`  // Forced removal, measured from start
	Tunnel        Duration `toml:"tunnel"`         // Splash train run
	SwapDelay     Duration `toml:"swap_delay"`     // Transition request to panel swap
	RevealDelay   Duration `toml:"reveal_delay"`   // Swap to active state
	TrainMotion   Duration `toml:"train_motion"`   // Train overlay travel time
	TrainLifetime Duration `toml:"train_lifetime"` // Train overlay removal
	EmblemFlip    Duration `toml:"emblem_flip"`
	Toast         Duration `toml:"toast"`
	Frame         Duration `toml:"frame"` // Animation frame interval
}

// LinksConfig holds external link targets.
type LinksConfig struct {
	Discord string `toml:"discord"`
	Twitter string `toml:"twitter"`
	Map     string `toml:"map"`
}

// AssetsConfig locates local fallback assets.
type AssetsConfig struct {
	Dir     string `toml:"dir"`      // Base directory; images live under <dir>/images
	LogoURL string `toml:"logo_url"` // Brand and welcome logo
}

// UIConfig toggles presentation features.
type UIConfig struct {
	ReducedMotion bool   `toml:"reduced_motion"` // Zero delays, no decorative animation
	Mouse         bool   `toml:"mouse"`
	SkipLoader    bool   `toml:"skip_loader"`
	StartPanel    string `toml:"start_panel"`
}

// LogConfig controls the slog output.
type LogConfig struct {
	File   string `toml:"file"`   // "-" disables logging
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
}

// TelemetryConfig controls OTLP export of choreography spans.
type TelemetryConfig struct {
	OTLPEndpoint string `toml:"otlp_endpoint"` // Empty disables export
	ServiceName  string `toml:"service_name"`
	MaxSpans     int    `toml:"max_spans"` // Recent spans kept in memory
}

// DefaultTimings returns the site's original timing constants.
func DefaultTimings() TimingsConfig {
	return TimingsConfig{
		Loader:        D(3 * time.Second),
		LoaderFade:    D(420 * time.Millisecond),
		LoaderRemove:  D(480 * time.Millisecond),
		LoaderSafety:  D(8 * time.Second),
		Tunnel:        D(1800 * time.Millisecond),
		SwapDelay:     D(360 * time.Millisecond),
		RevealDelay:   D(20 * time.Millisecond),
		TrainMotion:   D(900 * time.Millisecond),
		TrainLifetime: D(time.Second),
		EmblemFlip:    D(700 * time.Millisecond),
		Toast:         D(2200 * time.Millisecond),
		Frame:         D(33 * time.Millisecond),
	}
}

// DefaultLinks returns the community link targets.
func DefaultLinks() LinksConfig {
	return LinksConfig{
		Discord: "https://discord.com/invite/3stars",
		Twitter: "https://x.com/3StarsEsports",
		Map:     "https://www.fortnite.com/@blagoje/9179-7247-4725?lang=en-US",
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timings: DefaultTimings(),
		Links:   DefaultLinks(),
		Assets: AssetsConfig{
			Dir:     DefaultAssetsDir(),
			LogoURL: "https://media.discordapp.net/attachments/1455083612650344576/1457623721643610152/whitetransit.png?format=webp&quality=lossless&width=2430&height=2430",
		},
		UI: UIConfig{
			Mouse:      true,
			StartPanel: "welcome",
		},
		Log: LogConfig{
			File:   DefaultLogPath(),
			Level:  "info",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "transit",
			MaxSpans:    32,
		},
	}
}

// DefaultPath returns the default config file path
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "transit", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "transit", "config.toml")
}

// DefaultLogPath returns the default log file path under the XDG state dir.
func DefaultLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "transit", "transit.log")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "transit", "transit.log")
}

// DefaultAssetsDir returns the default local asset directory.
func DefaultAssetsDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".transit", "assets")
}

// Load reads the config at path. An empty path means DefaultPath; a missing
// default file yields Default. Zero values are filled from Default and
// environment overrides are applied last.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg Config
		md, err := toml.Decode(string(data), &fileCfg)
		if err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		cfg = merge(cfg, &fileCfg, md)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No config file; defaults only.
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge overlays non-zero values from f onto base.
// Booleans are taken from the file only when their key is present.
func merge(base, f *Config, md toml.MetaData) *Config {
	if f.PeopleFile != "" {
		base.PeopleFile = f.PeopleFile
	}

	mergeDuration(&base.Timings.Loader, f.Timings.Loader)
	mergeDuration(&base.Timings.LoaderFade, f.Timings.LoaderFade)
	mergeDuration(&base.Timings.LoaderRemove, f.Timings.LoaderRemove)
	mergeDuration(&base.Timings.LoaderSafety, f.Timings.LoaderSafety)
	mergeDuration(&base.Timings.Tunnel, f.Timings.Tunnel)
	mergeDuration(&base.Timings.SwapDelay, f.Timings.SwapDelay)
	mergeDuration(&base.Timings.RevealDelay, f.Timings.RevealDelay)
	mergeDuration(&base.Timings.TrainMotion, f.Timings.TrainMotion)
	mergeDuration(&base.Timings.TrainLifetime, f.Timings.TrainLifetime)
	mergeDuration(&base.Timings.EmblemFlip, f.Timings.EmblemFlip)
	mergeDuration(&base.Timings.Toast, f.Timings.Toast)
	mergeDuration(&base.Timings.Frame, f.Timings.Frame)

	mergeString(&base.Links.Discord, f.Links.Discord)
	mergeString(&base.Links.Twitter, f.Links.Twitter)
	mergeString(&base.Links.Map, f.Links.Map)
	mergeString(&base.Assets.Dir, f.Assets.Dir)
	mergeString(&base.Assets.LogoURL, f.Assets.LogoURL)
	mergeString(&base.UI.StartPanel, f.UI.StartPanel)
	mergeString(&base.Log.File, f.Log.File)
	mergeString(&base.Log.Level, f.Log.Level)
	mergeString(&base.Log.Format, f.Log.Format)
	mergeString(&base.Telemetry.OTLPEndpoint, f.Telemetry.OTLPEndpoint)
	mergeString(&base.Telemetry.ServiceName, f.Telemetry.ServiceName)
	if f.Telemetry.MaxSpans > 0 {
		base.Telemetry.MaxSpans = f.Telemetry.MaxSpans
	}

	if md.IsDefined("ui", "reduced_motion") {
		base.UI.ReducedMotion = f.UI.ReducedMotion
	}
	if md.IsDefined("ui", "mouse") {
		base.UI.Mouse = f.UI.Mouse
	}
	if md.IsDefined("ui", "skip_loader") {
		base.UI.SkipLoader = f.UI.SkipLoader
	}
	return base
}

func mergeDuration(dst *Duration, v Duration) {
	if v.Duration != 0 {
		*dst = v
	}
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func applyEnv(cfg *Config) {
	if dir := os.Getenv(AssetsDirEnv); dir != "" {
		cfg.Assets.Dir = dir
	}
	if ep := os.Getenv(OTLPEndpointEnv); ep != "" {
		cfg.Telemetry.OTLPEndpoint = ep
	}
	if name := os.Getenv(ServiceNameEnv); name != "" {
		cfg.Telemetry.ServiceName = name
	}
}

// Validate checks the timing relationships the choreography depends on.
func (c *Config) Validate() error {
	t := c.Timings
	if t.LoaderSafety.Duration <= t.Loader.Duration+t.LoaderRemove.Duration {
		return fmt.Errorf("timings: loader_safety (%s) must exceed loader + loader_remove (%s)",
			t.LoaderSafety.Duration, t.Loader.Duration+t.LoaderRemove.Duration)
	}
	if t.TrainLifetime.Duration < t.TrainMotion.Duration {
		return fmt.Errorf("timings: train_lifetime (%s) shorter than train_motion (%s)",
			t.TrainLifetime.Duration, t.TrainMotion.Duration)
	}
	if t.Frame.Duration <= 0 {
		return fmt.Errorf("timings: frame must be positive")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log: unknown format %q", c.Log.Format)
	}
	return nil
}

// Print writes the effective configuration as TOML.
func Print(cfg *Config, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
