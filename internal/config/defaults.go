package config

import (
	_ "embed"
)

//go:embed defaults/cave.yaml
var defaultCaveYAML []byte

// DefaultCaveConfig returns the built-in configuration.
// It mirrors defaults/cave.yaml and is used when the embedded file cannot be parsed.
func DefaultCaveConfig() CaveConfig {
	return CaveConfig{
		Screen: ScreenConfig{
			Width:    800,
			Height:   600,
			TileSize: 20,
		},
		Cave: CaveGeneration{
			ScrollIntervalMs: 750,
			MaxMagnitude:     64,
			VisibleMin:       2,
			VisibleMax:       8,
		},
		Player: PlayerConfig{
			Width:      20,
			Height:     20,
			Lift:       -6,
			Fall:       3,
			RespawnRow: -1,
			RespawnCol: 0,
		},
		Gameplay: GameplayConfig{
			Lives:             3,
			PointsPerObstacle: 10,
			OnLivesExhausted:  LivesToMenu,
		},
		Loop: LoopConfig{
			TargetFPS:      60,
			ReleaseAfterMs: 250,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCaveYAML
}
