// Package config handles loading and saving tix configuration.
//
// Configuration follows the XDG Base Directory conventions:
//   - Config:  ~/.config/tix/config.yaml
//
// Values are layered: defaults, then the config file, then TIX_* environment
// variables, then command-line flags (applied by the caller).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/tix/pkg/window"
)

// UIConfig holds list layout and interaction settings.
type UIConfig struct {
	ItemHeight   int  `yaml:"item_height,omitempty"`   // Terminal rows per ticket
	Gap          int  `yaml:"gap,omitempty"`           // Blank rows between tickets
	SkeletonRows int  `yaml:"skeleton_rows,omitempty"` // Placeholders shown while loading
	WheelDelta   int  `yaml:"wheel_delta,omitempty"`   // Rows scrolled per wheel notch
	ShowHelp     bool `yaml:"show_help"`               // Key help bar under the list
}

// DataConfig controls the mock data source.
type DataConfig struct {
	Count    int           `yaml:"count,omitempty"`     // Generated tickets
	Seed     int64         `yaml:"seed,omitempty"`      // Generator seed (0 = random)
	Latency  time.Duration `yaml:"latency,omitempty"`   // Simulated fetch delay
	FailRate float64       `yaml:"fail_rate,omitempty"` // Injected fetch failure probability
	Store    string        `yaml:"store,omitempty"`     // memory or sqlite
}

// Config is the top-level configuration for tix.
type Config struct {
	UI   UIConfig   `yaml:"ui,omitempty"`
	Data DataConfig `yaml:"data,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			ItemHeight:   2,
			Gap:          0,
			SkeletonRows: 30,
			WheelDelta:   3,
			ShowHelp:     true,
		},
		Data: DataConfig{
			Count:   10000,
			Seed:    42,
			Latency: time.Second,
			Store:   "memory",
		},
	}
}

// Geometry returns the row layout for the list. ContainerHeight is left at
// zero for the viewport sizer to fill in.
func (c Config) Geometry() window.Geometry {
	return window.Geometry{ItemHeight: c.UI.ItemHeight, Gap: c.UI.Gap}
}

// Validate clamps out-of-range values in place. It returns an error only for
// values that cannot be repaired.
func (c *Config) Validate() error {
	if c.UI.ItemHeight < 1 {
		c.UI.ItemHeight = 1
	}
	if c.UI.Gap < 0 {
		c.UI.Gap = 0
	}
	if c.UI.SkeletonRows < 0 {
		c.UI.SkeletonRows = 0
	}
	if c.UI.WheelDelta < 1 {
		c.UI.WheelDelta = 1
	}
	if c.Data.Count < 0 {
		c.Data.Count = 0
	}
	if c.Data.Latency < 0 {
		c.Data.Latency = 0
	}
	if c.Data.FailRate < 0 {
		c.Data.FailRate = 0
	}
	if c.Data.FailRate > 1 {
		c.Data.FailRate = 1
	}
	c.Data.Store = strings.ToLower(strings.TrimSpace(c.Data.Store))
	switch c.Data.Store {
	case "":
		c.Data.Store = "memory"
	case "memory", "sqlite":
	default:
		return fmt.Errorf("invalid store %q (want memory or sqlite)", c.Data.Store)
	}
	return nil
}

// ConfigDir returns the XDG config directory for tix.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tix")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tix")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ApplyEnv overrides cfg with TIX_* variables read through getenv.
// Unset variables are ignored; malformed ones are reported together.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	var errs []string
	intVar := func(name string, dst *int) {
		if v := getenv(name); v != "" {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s=%q: not an integer", name, v))
				return
			}
			*dst = n
		}
	}

	intVar("TIX_ITEM_HEIGHT", &cfg.UI.ItemHeight)
	intVar("TIX_GAP", &cfg.UI.Gap)
	intVar("TIX_SKELETON_ROWS", &cfg.UI.SkeletonRows)
	intVar("TIX_WHEEL_DELTA", &cfg.UI.WheelDelta)
	intVar("TIX_COUNT", &cfg.Data.Count)

	if v := getenv("TIX_SEED"); v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("TIX_SEED=%q: not an integer", v))
		} else {
			cfg.Data.Seed = n
		}
	}
	if v := getenv("TIX_LATENCY"); v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Sprintf("TIX_LATENCY=%q: %v", v, err))
		} else {
			cfg.Data.Latency = d
		}
	}
	if v := getenv("TIX_FAIL_RATE"); v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("TIX_FAIL_RATE=%q: not a number", v))
		} else {
			cfg.Data.FailRate = f
		}
	}
	if v := getenv("TIX_STORE"); v != "" {
		cfg.Data.Store = v
	}

	if len(errs) > 0 {
		return fmt.Errorf("environment: %s", strings.Join(errs, "; "))
	}
	return cfg.Validate()
}
