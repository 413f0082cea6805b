// Package config provides YAML-based presentation configuration for the
// arcade. Only looks are configurable: the simulation's field geometry and
// speeds are compile-time constants, so two players with different themes
// still run the identical game.
package config

// CrossingConfig contains all configuration for the Crossroad game.
type CrossingConfig struct {
	Theme CrossingTheme `yaml:"theme"`
	HUD   CrossingHUD   `yaml:"hud"`
}

// CrossingTheme maps each entity kind to the rune it is drawn with.
type CrossingTheme struct {
	Frog         string `yaml:"frog"`
	FrogBitten   string `yaml:"frog_bitten"` // Shown while the snake bite holds
	Car          string `yaml:"car"`
	Bus          string `yaml:"bus"`
	Plank        string `yaml:"plank"`
	Croc         string `yaml:"croc"`
	Turtle       string `yaml:"turtle"`
	Snake        string `yaml:"snake"`
	TargetOpen   string `yaml:"target_open"`
	TargetFilled string `yaml:"target_filled"`
	Powerup      string `yaml:"powerup"`
	River        string `yaml:"river"` // Background fill for the river band
	Color        bool   `yaml:"color"`
}

// CrossingHUD controls the status line.
type CrossingHUD struct {
	ShowLevel     bool `yaml:"show_level"`
	ShowHighScore bool `yaml:"show_high_score"`
}

// Rune returns the first rune of s, or fallback when s is empty.
func Rune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
