// Package config provides YAML-based game configuration loading and
// difficulty management for the snake platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board"`
	Clock      SnakeClock       `yaml:"clock"`
	Render     SnakeRender      `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeBoard defines the board dimensions in cells.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Bounds returns the board size as grid bounds.
func (b SnakeBoard) Bounds() grid.Bounds {
	return grid.Bounds{W: b.Width, H: b.Height}
}

// SnakeClock defines the frame clock and the logical update rate derived from it.
type SnakeClock struct {
	FrameRate     int     `yaml:"frame_rate"`      // Frames per second delivered by the platform
	UpdatesPerSec float64 `yaml:"updates_per_sec"` // Simulation ticks per second
}

// SnakeRender defines presentation parameters.
type SnakeRender struct {
	CellWidth int `yaml:"cell_width"` // Terminal columns per board cell
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "length", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Snake length/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Clock.FrameRate < 1 {
		return fmt.Errorf("config: frame_rate must be positive, got %d", c.Clock.FrameRate)
	}
	if c.Clock.UpdatesPerSec <= 0 {
		return fmt.Errorf("config: updates_per_sec must be positive, got %g", c.Clock.UpdatesPerSec)
	}
	if c.Clock.UpdatesPerSec > float64(c.Clock.FrameRate) {
		return fmt.Errorf("config: updates_per_sec (%g) cannot exceed frame_rate (%d)",
			c.Clock.UpdatesPerSec, c.Clock.FrameRate)
	}
	if c.Render.CellWidth < 1 {
		return fmt.Errorf("config: cell_width must be positive, got %d", c.Render.CellWidth)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "length", "time":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
