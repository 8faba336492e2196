package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		FrameRate: 10,
		Food: FoodConfig{
			Mode:        "single",
			SpawnChance: 0.05,
			MaxItems:    5,
		},
		Glyphs: GlyphConfig{
			Segment: "x",
			Food:    "o",
		},
		Frontend:   FrontendTcell,
		Scheduling: SchedThreaded,
	}
}
