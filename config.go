package felt

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Design constants at unit scale. These are tuned values, not derived ones;
// Config exposes all of them so embedders can override via TOML.
const (
	defaultFanSpacing   = 22.5
	defaultPileStagger  = 2.0
	defaultStackBandMin = 22.5
	defaultStackBandMax = 45.0
	defaultDoubleClick  = 500 * time.Millisecond
	defaultCardWidth    = 45.0
	defaultCardHeight   = 63.0
	defaultFlipDuration = 0.25
)

// Config holds the table's interaction and layout constants.
type Config struct {
	// FanSpacing is the distance between adjacent fanned cards in a stack,
	// at scale 1.
	FanSpacing float64 `toml:"fan_spacing"`

	// PileStagger is the visual offset of a pile's underlying cards.
	PileStagger float64 `toml:"pile_stagger"`

	// StackBandMin and StackBandMax bound the drop offset (at scale 1) that
	// turns two cards into a fanned stack. Offsets below StackBandMin make a
	// pile instead.
	StackBandMin float64 `toml:"stack_band_min"`
	StackBandMax float64 `toml:"stack_band_max"`

	// DoubleClickMs is the double-click window in milliseconds. A second
	// press exactly at the window is NOT a double click.
	DoubleClickMs int `toml:"double_click_ms"`

	// CardWidth and CardHeight are the natural card dimensions at scale 1.
	CardWidth  float64 `toml:"card_width"`
	CardHeight float64 `toml:"card_height"`

	// FlipDuration is the face-flip animation length in seconds.
	FlipDuration float64 `toml:"flip_duration"`
}

// DefaultConfig returns the built-in design constants.
func DefaultConfig() Config {
	return Config{
		FanSpacing:    defaultFanSpacing,
		PileStagger:   defaultPileStagger,
		StackBandMin:  defaultStackBandMin,
		StackBandMax:  defaultStackBandMax,
		DoubleClickMs: int(defaultDoubleClick / time.Millisecond),
		CardWidth:     defaultCardWidth,
		CardHeight:    defaultCardHeight,
		FlipDuration:  defaultFlipDuration,
	}
}

// DoubleClickWindow returns the double-click window as a duration.
func (c Config) DoubleClickWindow() time.Duration {
	return time.Duration(c.DoubleClickMs) * time.Millisecond
}

// LoadConfig reads a TOML config file over the defaults, so a file only
// needs to name the values it changes.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.FanSpacing <= 0 {
		return fmt.Errorf("fan_spacing must be positive, got %v", c.FanSpacing)
	}
	if c.PileStagger < 0 {
		return fmt.Errorf("pile_stagger must not be negative, got %v", c.PileStagger)
	}
	if c.StackBandMin < 0 {
		return fmt.Errorf("stack_band_min must not be negative, got %v", c.StackBandMin)
	}
	if c.StackBandMin >= c.StackBandMax {
		return fmt.Errorf("stack_band_min %v must be below stack_band_max %v",
			c.StackBandMin, c.StackBandMax)
	}
	if c.DoubleClickMs <= 0 {
		return fmt.Errorf("double_click_ms must be positive, got %d", c.DoubleClickMs)
	}
	if c.CardWidth <= 0 || c.CardHeight <= 0 {
		return fmt.Errorf("card dimensions must be positive, got %vx%v",
			c.CardWidth, c.CardHeight)
	}
	return nil
}
