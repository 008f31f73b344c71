package config

import "github.com/vovakirdan/tui-snake/internal/core"

// DifficultyManager calculates the logical update rate from snake length or elapsed ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on length/ticks.
func (d *DifficultyManager) Level(length int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "length":
		// A fresh snake has length 1, which is zero progress.
		progress = float64(length-1) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the logical update rate for the current difficulty level.
// It grows from base to base * (1 + speed_multiplier); with progression
// disabled it stays at the initial level.
func (d *DifficultyManager) Speed(base float64, length int, ticks uint64) float64 {
	level := d.Level(length, ticks)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}
