// Package config provides YAML-based configuration loading and validation
// for the runner: screen geometry, lane table, entity dimensions,
// difficulty profiles and the player color palette.
package config

import "github.com/vovakirdan/lane-runner/internal/core"

// RunnerConfig contains all configuration for the game.
// It is loaded once at startup and passed by value into the game.
type RunnerConfig struct {
	Screen       ScreenConfig        `yaml:"screen"`
	Lanes        []float64           `yaml:"lanes"`
	Player       PlayerConfig        `yaml:"player"`
	Obstacles    ObstacleConfig      `yaml:"obstacles"`
	Spawn        SpawnConfig         `yaml:"spawn"`
	Road         RoadConfig          `yaml:"road"`
	Difficulties []DifficultyProfile `yaml:"difficulties"`
	Colors       []PlayerColor       `yaml:"colors"`
	Defaults     MenuDefaults        `yaml:"defaults"`
}

// ScreenConfig defines the logical drawing area and the perspective window.
type ScreenConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Horizon  float64 `yaml:"horizon"`   // Screen y of world depth 0
	GroundY  float64 `yaml:"ground_y"`  // Screen y of world depth 1
	TickRate int     `yaml:"tick_rate"` // Target frames per second
}

// PlayerConfig defines player dimensions and movement.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartLane   int     `yaml:"start_lane"`
	LaneEase    float64 `yaml:"lane_ease"`    // Fraction of remaining distance covered per tick
	ShadowRatio float64 `yaml:"shadow_ratio"` // Shadow radius relative to drawn width
	ShadowFade  float64 `yaml:"shadow_fade"`  // Height at which the shadow vanishes
}

// ObstacleConfig defines obstacle dimensions and lifecycle bounds.
type ObstacleConfig struct {
	Width          float64    `yaml:"width"`
	Height         float64    `yaml:"height"`
	SpawnDepth     float64    `yaml:"spawn_depth"`
	DespawnDepth   float64    `yaml:"despawn_depth"`
	Elevations     []float64  `yaml:"elevations"`
	HitboxFraction float64    `yaml:"hitbox_fraction"` // Top share of the drawn height that collides
	Color          core.Color `yaml:"color"`
}

// SpawnConfig defines spawn interval jitter.
type SpawnConfig struct {
	JitterMin float64 `yaml:"jitter_min"`
	JitterMax float64 `yaml:"jitter_max"`
}

// RoadConfig defines the perspective road and its lane markings.
// Edge values are fractions of the screen width.
type RoadConfig struct {
	TopLeft     float64    `yaml:"top_left"`
	TopRight    float64    `yaml:"top_right"`
	BottomLeft  float64    `yaml:"bottom_left"`
	BottomRight float64    `yaml:"bottom_right"`
	Dashes      int        `yaml:"dashes"`
	LineWidth   float64    `yaml:"line_width"`
	Sky         core.Color `yaml:"sky"`
	Surface     core.Color `yaml:"surface"`
	Marking     core.Color `yaml:"marking"`
}

// DifficultyProfile is an immutable bundle of pace parameters.
type DifficultyProfile struct {
	Name         Difficulty `yaml:"name"`
	Speed        float64    `yaml:"speed"`       // World depth per tick
	IntervalMs   int        `yaml:"interval_ms"` // Base spawn interval
	JumpStrength float64    `yaml:"jump_strength"`
	Gravity      float64    `yaml:"gravity"`
	GroupWeights []float64  `yaml:"group_weights"` // Weight of spawning 1, 2, 3... obstacles at once
}

// PlayerColor is a named entry of the player palette.
type PlayerColor struct {
	Name  string     `yaml:"name"`
	Color core.Color `yaml:"rgb"`
}

// MenuDefaults are the menu selections shown on startup.
type MenuDefaults struct {
	Difficulty Difficulty `yaml:"difficulty"`
	Color      string     `yaml:"color"`
}

// Profile returns the difficulty profile with the given name.
func (c RunnerConfig) Profile(name Difficulty) (DifficultyProfile, error) {
	i, err := c.ProfileIndex(name)
	if err != nil {
		return DifficultyProfile{}, err
	}
	return c.Difficulties[i], nil
}

// ProfileIndex returns the position of the named profile in Difficulties.
func (c RunnerConfig) ProfileIndex(name Difficulty) (int, error) {
	for i, p := range c.Difficulties {
		if equalFold(string(p.Name), string(name)) {
			return i, nil
		}
	}
	return 0, unknownDifficulty(name)
}

// ColorIndex returns the position of the named color in Colors.
// Names are matched case-insensitively.
func (c RunnerConfig) ColorIndex(name string) (int, error) {
	for i, pc := range c.Colors {
		if equalFold(pc.Name, name) {
			return i, nil
		}
	}
	return 0, unknownColor(name)
}

// DifficultyNames returns the profile names in menu order.
func (c RunnerConfig) DifficultyNames() []string {
	names := make([]string, len(c.Difficulties))
	for i, p := range c.Difficulties {
		names[i] = string(p.Name)
	}
	return names
}

// ColorNames returns the palette names in menu order.
func (c RunnerConfig) ColorNames() []string {
	names := make([]string, len(c.Colors))
	for i, pc := range c.Colors {
		names[i] = pc.Name
	}
	return names
}
