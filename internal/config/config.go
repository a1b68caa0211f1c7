package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Garsondee/Ghost-Lanes/internal/sim"
)

// Config is one session's tunables plus window settings.
type Config struct {
	LaneCount        int
	CaptureLane      int
	Charges          int
	Reputation       int
	CopiesPerVariant int
	Seed             int64 // 0 picks a time-based seed
	WindowScale      float64
}

// ghostlanes.toml key mapping.
type fileConfig struct {
	LaneCount        int     `toml:"lane_count"`
	CaptureLane      int     `toml:"capture_lane"`
	Charges          int     `toml:"charges"`
	Reputation       int     `toml:"reputation"`
	CopiesPerVariant int     `toml:"copies_per_variant"`
	Seed             int64   `toml:"seed"`
	WindowScale      float64 `toml:"window_scale"`
}

// Default mirrors sim.DefaultRules.
func Default() Config {
	r := sim.DefaultRules()
	return Config{
		LaneCount:        r.LaneCount,
		CaptureLane:      r.CaptureLane,
		Charges:          r.Charges,
		Reputation:       r.Reputation,
		CopiesPerVariant: r.CopiesPerVariant,
		WindowScale:      1,
	}
}

// Load reads a TOML file and overlays the keys it defines onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("lane_count") {
		cfg.LaneCount = raw.LaneCount
	}
	if meta.IsDefined("capture_lane") {
		cfg.CaptureLane = raw.CaptureLane
	}
	if meta.IsDefined("charges") {
		cfg.Charges = raw.Charges
	}
	if meta.IsDefined("reputation") {
		cfg.Reputation = raw.Reputation
	}
	if meta.IsDefined("copies_per_variant") {
		cfg.CopiesPerVariant = raw.CopiesPerVariant
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	if meta.IsDefined("window_scale") {
		cfg.WindowScale = raw.WindowScale
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every setting the simulation core would reject.
func (c Config) Validate() error {
	var errs []error
	if c.LaneCount < 3 {
		errs = append(errs, fmt.Errorf("lane_count must be at least 3, got %d", c.LaneCount))
	}
	if c.CaptureLane < 0 || c.CaptureLane >= c.LaneCount {
		errs = append(errs, fmt.Errorf("capture_lane %d outside [0,%d)", c.CaptureLane, c.LaneCount))
	}
	if c.LaneCount == 3 && c.CaptureLane == 1 {
		errs = append(errs, errors.New("capture_lane 1 leaves no spawn lane on a 3-lane track"))
	}
	if c.Charges < 1 {
		errs = append(errs, fmt.Errorf("charges must be positive, got %d", c.Charges))
	}
	if c.Reputation < 1 {
		errs = append(errs, fmt.Errorf("reputation must be positive, got %d", c.Reputation))
	}
	if c.CopiesPerVariant < 1 {
		errs = append(errs, fmt.Errorf("copies_per_variant must be positive, got %d", c.CopiesPerVariant))
	}
	if c.WindowScale <= 0 {
		errs = append(errs, fmt.Errorf("window_scale must be positive, got %g", c.WindowScale))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Rules converts the session part of the config for sim.NewSession.
func (c Config) Rules() sim.Rules {
	return sim.Rules{
		LaneCount:        c.LaneCount,
		CaptureLane:      c.CaptureLane,
		Charges:          c.Charges,
		Reputation:       c.Reputation,
		CopiesPerVariant: c.CopiesPerVariant,
	}
}
