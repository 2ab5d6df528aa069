package config

import (
	_ "embed"

	"github.com/vovakirdan/lane-runner/internal/core"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration. It matches the
// embedded defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Screen: ScreenConfig{
			Width:    800,
			Height:   600,
			Horizon:  150,
			GroundY:  550,
			TickRate: 60,
		},
		Lanes: []float64{-150, 0, 150},
		Player: PlayerConfig{
			Width:       50,
			Height:      80,
			StartLane:   1,
			LaneEase:    0.15,
			ShadowRatio: 0.4,
			ShadowFade:  100,
		},
		Obstacles: ObstacleConfig{
			Width:          50,
			Height:         50,
			SpawnDepth:     -0.2,
			DespawnDepth:   1.1,
			Elevations:     []float64{0, 50},
			HitboxFraction: 0.1,
			Color:          core.Color{R: 255},
		},
		Spawn: SpawnConfig{
			JitterMin: 0.8,
			JitterMax: 1.2,
		},
		Road: RoadConfig{
			TopLeft:     0.4,
			TopRight:    0.6,
			BottomLeft:  0.1,
			BottomRight: 0.9,
			Dashes:      40,
			LineWidth:   2,
			Sky:         core.ColorSkyBlue,
			Surface:     core.ColorRoad,
			Marking:     core.ColorWhite,
		},
		Difficulties: []DifficultyProfile{
			{Name: DifficultyEasy, Speed: 0.005, IntervalMs: 1500, JumpStrength: 20, Gravity: 0.2, GroupWeights: []float64{0.8, 0.2, 0.0}},
			{Name: DifficultyMedium, Speed: 0.008, IntervalMs: 1000, JumpStrength: 15, Gravity: 0.3, GroupWeights: []float64{0.6, 0.3, 0.1}},
			{Name: DifficultyHard, Speed: 0.012, IntervalMs: 800, JumpStrength: 10, Gravity: 0.4, GroupWeights: []float64{0.4, 0.4, 0.2}},
		},
		Colors: []PlayerColor{
			{Name: "BLUE", Color: core.Color{B: 255}},
			{Name: "RED", Color: core.Color{R: 255}},
			{Name: "GREEN", Color: core.Color{G: 255}},
			{Name: "YELLOW", Color: core.Color{R: 255, G: 255}},
			{Name: "PURPLE", Color: core.Color{R: 128, B: 128}},
		},
		Defaults: MenuDefaults{
			Difficulty: DifficultyHard,
			Color:      "BLUE",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
