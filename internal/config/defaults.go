package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default Crossroad configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Theme: CrossingTheme{
			Frog:         "@",
			FrogBitten:   "~",
			Car:          "▄",
			Bus:          "█",
			Plank:        "=",
			Croc:         "<",
			Turtle:       "o",
			Snake:        "s",
			TargetOpen:   "U",
			TargetFilled: "X",
			Powerup:      "+",
			River:        "░",
			Color:        true,
		},
		HUD: CrossingHUD{
			ShowLevel:     true,
			ShowHighScore: true,
		},
	}
}
