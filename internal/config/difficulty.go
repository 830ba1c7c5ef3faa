package config

import "math"

// MinScrollIntervalMs is the fastest the cave may scroll.
const MinScrollIntervalMs = 100

// DifficultyManager calculates the scroll interval from score or elapsed ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty scaling is active at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ScrollInterval returns the scroll interval for the current level.
// Speed grows from 1x to (1+speed_multiplier)x, so the interval shrinks by the same factor.
// When difficulty is disabled the base interval is returned unchanged.
func (d *DifficultyManager) ScrollInterval(baseMs int64, score int, ticks int) int64 {
	if !d.IsEnabled() {
		return baseMs
	}
	level := d.Level(score, ticks)
	interval := int64(math.Round(float64(baseMs) / (1.0 + level*d.cfg.Scaling.SpeedMultiplier)))
	if interval < MinScrollIntervalMs {
		interval = min(baseMs, MinScrollIntervalMs)
	}
	return interval
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
