package config

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultSnakeConfig().Difficulty)
	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	for _, length := range []int{1, 10, 100} {
		if got := d.Speed(4, length, 0); got != 4 {
			t.Errorf("Speed(4, %d) = %g, expected 4", length, got)
		}
	}
}

func TestDifficultyLengthProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "length", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		length   int
		expected float64
	}{
		{1, 4},   // fresh snake, no progress
		{6, 6},   // halfway
		{11, 8},  // max
		{50, 8},  // clamped
	}
	for _, tc := range tests {
		if got := d.Speed(4, tc.length, 0); !almostEqual(got, tc.expected) {
			t.Errorf("Speed(4, len=%d) = %g, expected %g", tc.length, got, tc.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 2.0},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(1, 0); !almostEqual(got, 0.5) {
		t.Errorf("Level at tick 0 = %g, expected initial 0.5", got)
	}
	if got := d.Level(1, 50); !almostEqual(got, 0.75) {
		t.Errorf("Level at tick 50 = %g, expected 0.75", got)
	}
	if got := d.Speed(4, 1, 100); !almostEqual(got, 12) {
		t.Errorf("Speed at max = %g, expected 12", got)
	}
}

func TestDifficultyNoneStaysDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "none"}})
	if d.IsEnabled() {
		t.Error(`progression type "none" should stay disabled`)
	}
}

func TestDifficultyInitialLevelClamped(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{InitialLevel: 3})
	if got := d.Level(1, 0); got != 1.0 {
		t.Errorf("initial level should clamp to 1.0, got %g", got)
	}

	d = NewDifficultyManager(DifficultyConfig{InitialLevel: -0.5})
	if got := d.Level(1, 0); got != 0.0 {
		t.Errorf("initial level should clamp to 0.0, got %g", got)
	}
}
