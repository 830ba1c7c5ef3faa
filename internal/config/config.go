// Package config provides YAML-based game configuration loading, validation
// and difficulty management.
package config

import (
	"errors"
	"fmt"
	"math"
)

// CaveConfig contains all configuration for a cave run.
type CaveConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Cave       CaveGeneration   `yaml:"cave"`
	Player     PlayerConfig     `yaml:"player"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Loop       LoopConfig       `yaml:"loop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig defines the world size in pixels and the tile size.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`
}

// CaveGeneration defines scroll timing and stalactite/stalagmite generation.
type CaveGeneration struct {
	ScrollIntervalMs int64 `yaml:"scroll_interval_ms"`
	MaxMagnitude     int   `yaml:"max_magnitude"` // magnitudes are drawn from [0, max)
	VisibleMin       int   `yaml:"visible_min"`   // exclusive
	VisibleMax       int   `yaml:"visible_max"`   // inclusive
}

// PlayerConfig defines the sprite and its control velocities.
type PlayerConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Lift       float64 `yaml:"lift"` // vertical velocity while confirm is held (negative = up)
	Fall       float64 `yaml:"fall"` // vertical velocity after release
	RespawnRow int     `yaml:"respawn_row"`
	RespawnCol int     `yaml:"respawn_col"`
}

// LivesPolicy decides what happens when the last life is lost.
type LivesPolicy string

const (
	LivesToMenu   LivesPolicy = "menu"
	LivesToQuit   LivesPolicy = "quit"
	LivesContinue LivesPolicy = "continue"
)

// GameplayConfig defines lives and scoring.
type GameplayConfig struct {
	Lives             int         `yaml:"lives"`
	PointsPerObstacle int         `yaml:"points_per_obstacle"`
	OnLivesExhausted  LivesPolicy `yaml:"on_lives_exhausted"`
}

// LoopConfig defines frame pacing.
type LoopConfig struct {
	TargetFPS      int   `yaml:"target_fps"`
	ReleaseAfterMs int64 `yaml:"release_after_ms"`
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
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // scroll speed gained at max difficulty
}

// Rows returns the tile grid height.
func (c CaveConfig) Rows() int {
	return c.Screen.Height / c.Screen.TileSize
}

// Cols returns the tile grid width: one screen plus one column sliding in.
func (c CaveConfig) Cols() int {
	return c.Screen.Width/c.Screen.TileSize + 1
}

// RespawnCell returns the fixed safe cell. A negative row means the vertical center.
func (c CaveConfig) RespawnCell() (row, col int) {
	row = c.Player.RespawnRow
	if row < 0 {
		row = c.Rows() / 2
	}
	return row, c.Player.RespawnCol
}

// FrameBudgetMs returns the per-frame time budget derived from the target rate.
func (c CaveConfig) FrameBudgetMs() int64 {
	return int64(1000 / c.Loop.TargetFPS)
}

// Validate checks that the geometry keeps every grid lookup in range.
func (c CaveConfig) Validate() error {
	var errs []error

	s := c.Screen
	if s.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("screen.tile_size must be positive, got %d", s.TileSize))
	} else {
		if s.Width <= 0 || s.Width%s.TileSize != 0 {
			errs = append(errs, fmt.Errorf("screen.width %d must be a positive multiple of tile_size %d", s.Width, s.TileSize))
		}
		if s.Height <= 0 || s.Height%s.TileSize != 0 {
			errs = append(errs, fmt.Errorf("screen.height %d must be a positive multiple of tile_size %d", s.Height, s.TileSize))
		} else if c.Rows() < 3 {
			errs = append(errs, fmt.Errorf("screen.height %d leaves fewer than 3 tile rows", s.Height))
		}
	}

	g := c.Cave
	if g.ScrollIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("cave.scroll_interval_ms must be positive, got %d", g.ScrollIntervalMs))
	}
	if g.MaxMagnitude <= 0 {
		errs = append(errs, fmt.Errorf("cave.max_magnitude must be positive, got %d", g.MaxMagnitude))
	}
	if g.VisibleMin < 0 || g.VisibleMax < g.VisibleMin {
		errs = append(errs, fmt.Errorf("cave.visible_min %d / visible_max %d out of order", g.VisibleMin, g.VisibleMax))
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %dx%d", p.Width, p.Height))
	}
	if s.TileSize > 0 && s.Width > 0 && s.Height > 0 {
		row, col := c.RespawnCell()
		if row <= 0 || row >= c.Rows()-1 || col < 0 || col >= c.Cols() {
			errs = append(errs, fmt.Errorf("respawn cell (%d, %d) must be inside the cave interior", row, col))
		} else if 2*row*s.TileSize < p.Height {
			errs = append(errs, fmt.Errorf("respawn cell (%d, %d) sits above half the player height %d", row, col, p.Height))
		}
	}
	// A faster step could skip the floor row and never touch it.
	if s.TileSize > 0 {
		if math.Abs(p.Lift) >= float64(s.TileSize) || math.Abs(p.Fall) >= float64(s.TileSize) {
			errs = append(errs, fmt.Errorf("player lift %v and fall %v must be smaller than tile_size %d", p.Lift, p.Fall, s.TileSize))
		}
	}

	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	switch c.Gameplay.OnLivesExhausted {
	case LivesToMenu, LivesToQuit, LivesContinue:
	default:
		errs = append(errs, fmt.Errorf("gameplay.on_lives_exhausted %q is not one of menu, quit, continue", c.Gameplay.OnLivesExhausted))
	}

	if c.Loop.TargetFPS <= 0 || c.Loop.TargetFPS > 1000 {
		errs = append(errs, fmt.Errorf("loop.target_fps must be in (0, 1000], got %d", c.Loop.TargetFPS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
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

// ParsePreset validates a preset name. Empty means no preset.
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
