// Package config provides YAML-based configuration loading for the snake
// game: frame rate, food mode, glyphs and frontend selection.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/snake"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Frontend names.
const (
	FrontendTcell = "tcell"
	FrontendTea   = "tea"
)

// Scheduling shapes for the tcell frontend.
const (
	SchedThreaded = "threaded"
	SchedPolled   = "polled"
)

// Frame rate limits in frames per second.
const (
	MinFrameRate = 1
	MaxFrameRate = 120
)

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	FrameRate  int         `yaml:"frame_rate"`
	Speed      string      `yaml:"speed"` // Optional preset, overrides frame_rate
	Food       FoodConfig  `yaml:"food"`
	Glyphs     GlyphConfig `yaml:"glyphs"`
	Frontend   string      `yaml:"frontend"`   // "tcell" or "tea"
	Scheduling string      `yaml:"scheduling"` // "threaded" or "polled"
}

// FoodConfig defines how food appears.
type FoodConfig struct {
	Mode        string  `yaml:"mode"`         // "single" or "multi"
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick chance of an extra item in multi mode
	MaxItems    int     `yaml:"max_items"`    // Cap on simultaneous items in multi mode
}

// GlyphConfig defines the characters drawn for each element.
type GlyphConfig struct {
	Segment string `yaml:"segment"`
	Food    string `yaml:"food"`
}

// Validate checks every field and returns the first problem found.
func (c SnakeConfig) Validate() error {
	if c.FrameRate < MinFrameRate || c.FrameRate > MaxFrameRate {
		return fmt.Errorf("%w: frame_rate %d not in [%d, %d]", ErrInvalid, c.FrameRate, MinFrameRate, MaxFrameRate)
	}
	if c.Speed != "" {
		if _, ok := FrameRateForPreset(SpeedPreset(c.Speed)); !ok {
			return fmt.Errorf("%w: speed %q", ErrInvalid, c.Speed)
		}
	}

	switch snake.FoodMode(c.Food.Mode) {
	case snake.FoodSingle:
	case snake.FoodMulti:
		if c.Food.SpawnChance < 0 || c.Food.SpawnChance > 1 {
			return fmt.Errorf("%w: food.spawn_chance %v not in [0, 1]", ErrInvalid, c.Food.SpawnChance)
		}
		if c.Food.MaxItems < 1 {
			return fmt.Errorf("%w: food.max_items must be at least 1", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: food.mode %q", ErrInvalid, c.Food.Mode)
	}

	if utf8.RuneCountInString(c.Glyphs.Segment) != 1 {
		return fmt.Errorf("%w: glyphs.segment must be a single character", ErrInvalid)
	}
	if utf8.RuneCountInString(c.Glyphs.Food) != 1 {
		return fmt.Errorf("%w: glyphs.food must be a single character", ErrInvalid)
	}
	if c.Glyphs.Segment == c.Glyphs.Food {
		return fmt.Errorf("%w: glyphs.segment and glyphs.food must differ", ErrInvalid)
	}

	switch c.Frontend {
	case FrontendTcell, FrontendTea:
	default:
		return fmt.Errorf("%w: frontend %q", ErrInvalid, c.Frontend)
	}
	switch c.Scheduling {
	case SchedThreaded, SchedPolled:
	default:
		return fmt.Errorf("%w: scheduling %q", ErrInvalid, c.Scheduling)
	}
	return nil
}

// GameOptions converts the config into options for snake.New.
// The config must be valid.
func (c SnakeConfig) GameOptions() snake.Options {
	opts := snake.DefaultOptions()
	opts.FoodMode = snake.FoodMode(c.Food.Mode)
	opts.SpawnChance = c.Food.SpawnChance
	opts.MaxFood = c.Food.MaxItems
	opts.SegmentGlyph, _ = utf8.DecodeRuneInString(c.Glyphs.Segment)
	opts.FoodGlyph, _ = utf8.DecodeRuneInString(c.Glyphs.Food)
	return opts
}

// Runtime builds the runtime config for a screen of the given size.
func (c SnakeConfig) Runtime(width, height int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: c.FrameRate,
		Seed:      seed,
	}
}
